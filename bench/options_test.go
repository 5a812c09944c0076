package bench_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/cpuscore/bench"
	"github.com/stretchr/testify/require"
)

func TestOptionPanics(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"threads zero", func() { bench.WithThreads(0) }},
		{"threads negative", func() { bench.WithThreads(-2) }},
		{"seconds zero", func() { bench.WithSeconds(0) }},
		{"seconds negative", func() { bench.WithSeconds(-1) }},
		{"seconds NaN", func() { bench.WithSeconds(math.NaN()) }},
		{"seconds Inf", func() { bench.WithSeconds(math.Inf(1)) }},
		{"budget zero", func() { bench.WithBudget(0) }},
		{"policy unknown", func() { bench.WithPolicy(bench.Policy(7)) }},
		{"poll negative", func() { bench.WithPollInterval(-time.Millisecond) }},
		{"source nil", func() { bench.WithSource(nil) }},
		{"workload nil", func() { bench.WithWorkload(nil) }},
		{"logger nil", func() { bench.WithLogger(nil) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, tc.fn)
		})
	}
}

func TestWithBudgetSetsSeconds(t *testing.T) {
	res, _ := run(t, bench.WithMatrix(mustSeeded(t)), bench.WithBudget(40*time.Millisecond))
	require.InDelta(t, 0.04, res.Seconds, 1e-12)
}

func TestParsePolicy(t *testing.T) {
	for in, want := range map[string]bench.Policy{
		"b": bench.PolicyBarrier, "barrier": bench.PolicyBarrier, "B": bench.PolicyBarrier,
		"s": bench.PolicySteady, "steady": bench.PolicySteady, " Steady ": bench.PolicySteady,
	} {
		got, err := bench.ParsePolicy(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := bench.ParsePolicy("pool")
	require.ErrorIs(t, err, bench.ErrUnknownPolicy)
}

func TestStringers(t *testing.T) {
	require.Equal(t, "barrier", bench.PolicyBarrier.String())
	require.Equal(t, "steady", bench.PolicySteady.String())
	require.Equal(t, "policy(9)", bench.Policy(9).String())
	require.Equal(t, "DRAINING", bench.StateDraining.String())
	require.Equal(t, "State(9)", bench.State(9).String())
}

func TestFormatSeconds(t *testing.T) {
	require.Equal(t, "180", bench.FormatSeconds(180))
	require.Equal(t, "0.25", bench.FormatSeconds(0.25))
	require.Equal(t, "1", bench.FormatSeconds(1.0))
}
