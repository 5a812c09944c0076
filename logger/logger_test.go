package logger_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/cpuscore/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf)
	require.Equal(t, logger.Info, l.Level())

	l.Debugf("hidden %d\n", 1)
	l.Infof("plain %d\n", 2)
	l.Warnf("careful\n")
	l.Errorf("broken\n")
	assert.Equal(t, "plain 2\nWarning: careful\nERROR: broken\n", buf.String())

	buf.Reset()
	l.SetLevel(logger.Debug)
	l.Debugf("shown\n")
	assert.Equal(t, "shown\n", buf.String())

	buf.Reset()
	l.SetLevel(logger.Error)
	l.Infof("no\n")
	l.Warnf("no\n")
	l.Errorf("yes\n")
	assert.Equal(t, "ERROR: yes\n", buf.String())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warn", logger.Warn.String())
	assert.Equal(t, "debug", logger.Debug.String())
	assert.Equal(t, "level(9)", logger.Level(9).String())
}

func TestDiscard(t *testing.T) {
	l := logger.Discard()
	assert.NotPanics(t, func() { l.Errorf("x") })
	assert.False(t, l.IsInfo())
}
