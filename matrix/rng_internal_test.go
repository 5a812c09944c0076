package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMixSeedAvalanche(t *testing.T) {
	a := mixSeed(1, 0)
	b := mixSeed(1, 1)
	c := mixSeed(2, 0)
	require.NotEqual(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, a, mixSeed(1, 0))
}

func TestHostSeedNonZero(t *testing.T) {
	for i := 0; i < 32; i++ {
		require.NotZero(t, hostSeed())
	}
}

func TestRngFromSeedZeroPolicy(t *testing.T) {
	require.Equal(t, rngFromSeed(0).Int63(), rngFromSeed(defaultRNGSeed).Int63())
}
