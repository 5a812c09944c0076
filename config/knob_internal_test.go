package config

import (
	"testing"

	"github.com/katalvlaran/cpuscore/bench"
	"github.com/stretchr/testify/require"
)

// withDefaultSeconds swaps the build-time knob for the duration of a test.
func withDefaultSeconds(t *testing.T, v string) {
	t.Helper()
	old := defaultSeconds
	defaultSeconds = v
	t.Cleanup(func() { defaultSeconds = old })
}

func TestDefaultSecondsKnob(t *testing.T) {
	withDefaultSeconds(t, "0.2")
	require.Equal(t, 0.2, Default().Seconds)

	p := Parse([]string{"-t=abc"})
	require.Equal(t, 0.2, p.Settings.Seconds)
	require.Len(t, p.Warnings, 1)
}

func TestDefaultSecondsKnobInvalid(t *testing.T) {
	for _, v := range []string{"", "zero", "0", "-1"} {
		withDefaultSeconds(t, v)
		require.Equal(t, bench.DefaultSeconds, Default().Seconds, v)
	}
}

func TestDefaultsMatchBench(t *testing.T) {
	d := Default()
	require.Equal(t, 180.0, d.Seconds)
	require.Equal(t, 8, d.Threads)
	require.Equal(t, bench.PolicyBarrier, d.Policy)
}
