// SPDX-License-Identifier: MIT

// Package bench: functional configuration of a benchmark run. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that fills in defaults.
//
// Notes:
//   - User input is validated by the config package before it reaches these
//     constructors, so a panic here is a programmer error, never bad input.
//   - Observers (WithProgress, WithStateHook) run on the dispatcher goroutine
//     and must not block.
package bench

import (
	"io"
	"math"
	"time"

	"github.com/katalvlaran/cpuscore/host"
	"github.com/katalvlaran/cpuscore/kernel"
	"github.com/katalvlaran/cpuscore/logger"
	"github.com/katalvlaran/cpuscore/matrix"
	"github.com/katalvlaran/cpuscore/worker"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreads is the concurrency level T.
	DefaultThreads = 8

	// DefaultSeconds is the measurement window S in seconds.
	DefaultSeconds = 180.0

	// DefaultPolicy keeps the batch-and-join discipline of earlier releases.
	DefaultPolicy = PolicyBarrier

	// DefaultPollInterval is the pause after a steady-state sweep that found
	// no finished worker.
	DefaultPollInterval = 50 * time.Microsecond
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThreadsInvalid = "bench: WithThreads: threads must be > 0"
	panicSecondsInvalid = "bench: WithSeconds: seconds must be finite and > 0"
	panicBudgetInvalid  = "bench: WithBudget: budget must be > 0"
	panicPolicyInvalid  = "bench: WithPolicy: unknown policy"
	panicPollInvalid    = "bench: WithPollInterval: interval must be >= 0"
	panicSourceNil      = "bench: WithSource: source must not be nil"
	panicWorkloadNil    = "bench: WithWorkload: workload must not be nil"
	panicLoggerNil      = "bench: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	threads  int
	seconds  float64
	policy   Policy
	poll     time.Duration
	source   func() (*matrix.Dense, error)
	workload worker.Workload
	log      *logger.Logger
	host     *host.Info

	progress  func(completed uint64)
	stateHook func(State)
}

// WithThreads sets the concurrency level T.
// Panics when n <= 0.
func WithThreads(n int) Option {
	if n <= 0 {
		panic(panicThreadsInvalid)
	}
	return func(o *Options) { o.threads = n }
}

// WithSeconds sets the measurement window S in (possibly fractional) seconds.
// The score divides by exactly this value.
// Panics when s is NaN, infinite or not strictly positive.
func WithSeconds(s float64) Option {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		panic(panicSecondsInvalid)
	}
	return func(o *Options) { o.seconds = s }
}

// WithBudget is WithSeconds for a time.Duration.
func WithBudget(d time.Duration) Option {
	if d <= 0 {
		panic(panicBudgetInvalid)
	}
	s := d.Seconds()
	return func(o *Options) { o.seconds = s }
}

// WithPolicy selects the dispatch discipline.
func WithPolicy(p Policy) Option {
	if !p.valid() {
		panic(panicPolicyInvalid)
	}
	return func(o *Options) { o.policy = p }
}

// WithPollInterval sets the steady-state pause after an empty sweep.
// Zero yields the processor (runtime.Gosched) instead of sleeping.
func WithPollInterval(d time.Duration) Option {
	if d < 0 {
		panic(panicPollInvalid)
	}
	return func(o *Options) { o.poll = d }
}

// WithSource replaces matrix.Shared as the provider of D.
// The source runs once, during INIT, before the window opens.
func WithSource(src func() (*matrix.Dense, error)) Option {
	if src == nil {
		panic(panicSourceNil)
	}
	return func(o *Options) { o.source = src }
}

// WithMatrix uses an already built matrix as D.
func WithMatrix(d *matrix.Dense) Option {
	return WithSource(func() (*matrix.Dense, error) { return d, nil })
}

// WithWorkload replaces kernel.Run. Used to inject faults in tests.
func WithWorkload(w worker.Workload) Option {
	if w == nil {
		panic(panicWorkloadNil)
	}
	return func(o *Options) { o.workload = w }
}

// WithOutput sends the report to w through a new Info-level logger.
func WithOutput(w io.Writer) Option {
	return func(o *Options) { o.log = logger.New(w) }
}

// WithLogger sends the report to l.
func WithLogger(l *logger.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.log = l }
}

// WithHost replaces host.Detect for the banner and oversubscription check.
func WithHost(info host.Info) Option {
	return func(o *Options) { o.host = &info }
}

// WithProgress registers an observer called with the completion counter
// each time it advances.
func WithProgress(fn func(completed uint64)) Option {
	return func(o *Options) { o.progress = fn }
}

// WithStateHook registers an observer called on every state transition.
func WithStateHook(fn func(State)) Option {
	return func(o *Options) { o.stateHook = fn }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		threads:  DefaultThreads,
		seconds:  DefaultSeconds,
		policy:   DefaultPolicy,
		poll:     DefaultPollInterval,
		source:   matrix.Shared,
		workload: kernel.Run,
	}
}

// gatherOptions applies opts over the defaults and resolves lazy fields.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.log == nil {
		o.log = logger.New(nil)
	}
	if o.host == nil {
		info := host.Detect()
		o.host = &info
	}

	return o
}
