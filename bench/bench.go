// Package bench is the measurement harness: it prepares the shared matrix,
// keeps T workers in flight for S seconds, counts completed workloads and
// reports completions / S as the score.
//
// The window opens at a monotonic timestamp taken immediately before the
// first spawn, so data preparation is excluded. It closes on the first gate
// check with now − start > S; a workload that started before that point is
// allowed to finish, so a run may overshoot S by one batch (barrier) or one
// kernel invocation (steady).
//
// The completion counter belongs to the dispatcher goroutine; workers never
// touch it. Failed workers are dropped silently and never retried.
package bench

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
	"time"

	"github.com/katalvlaran/cpuscore/host"
	"github.com/katalvlaran/cpuscore/logger"
	"github.com/katalvlaran/cpuscore/matrix"
	"github.com/katalvlaran/cpuscore/worker"
)

// Result summarises one run.
type Result struct {
	Policy  Policy
	Threads int
	Seconds float64 // configured window S

	Prepared time.Duration // data preparation, outside the window
	Elapsed  time.Duration // window start to DONE

	Completed uint64
	Failed    uint64
	Abandoned int    // steady policy: in flight when the gate tripped
	Batches   uint64 // barrier policy: joined batches

	Score float64
}

// Run executes one benchmark and returns its result. The report goes to the
// configured logger (stdout by default) in this order: banner, preparation
// line, "starting test...", and "finished with score:". The score value
// itself is left to the caller.
//
// The only error is a failure of the data source, wrapped in ErrPrepare.
func Run(opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	d := &dispatcher{opts: o, log: o.log}

	return d.run()
}

type dispatcher struct {
	opts Options
	log  *logger.Logger
	res  Result
}

func (d *dispatcher) enter(s State) {
	if d.opts.stateHook != nil {
		d.opts.stateHook(s)
	}
}

func (d *dispatcher) run() (Result, error) {
	o := d.opts
	d.res = Result{Policy: o.policy, Threads: o.threads, Seconds: o.seconds}

	d.enter(StateInit)
	data, err := d.prepare()
	if err != nil {
		return d.res, err
	}

	budget := secondsToDuration(o.seconds)
	d.log.Infof("starting test...\n")
	d.enter(StateRunning)
	start := time.Now()
	switch o.policy {
	case PolicySteady:
		d.runSteady(data, start, budget)
	default:
		d.runBarrier(data, start, budget)
	}
	d.res.Elapsed = time.Since(start)

	d.enter(StateDone)
	d.res.Score = float64(d.res.Completed) / o.seconds
	d.log.Debugf("completed %s workloads, %d failed, %d abandoned in %v\n",
		host.FormatCount(d.res.Completed), d.res.Failed, d.res.Abandoned, d.res.Elapsed)
	d.log.Infof("finished with score:\n")

	return d.res, nil
}

// prepare prints the banner and materialises D through the configured source.
func (d *dispatcher) prepare() (*matrix.Dense, error) {
	o := d.opts
	d.log.Infof("starting benchmark on settings:\n")
	d.log.Infof("time:%s, cores:%d\n", FormatSeconds(o.seconds), o.threads)
	d.log.Infof("host: %s, %d logical cores, policy: %s\n", o.host.Brand, o.host.LogicalCores, o.policy)
	if o.host.Oversubscribed(o.threads) {
		d.log.Warnf("cores:%d exceeds the %d logical cores of this host, expect a lower score\n",
			o.threads, o.host.LogicalCores)
	}

	d.log.Infof("preparing data...\n")
	pStart := time.Now()
	data, err := o.source()
	if err == nil && data == nil {
		err = matrix.ErrNilMatrix
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrepare, err)
	}
	dummy := data.Cell(0, 0)
	d.res.Prepared = time.Since(pStart)
	d.log.Infof("(dummy: %v), data prepared in: %v\n", dummy, d.res.Prepared)
	d.log.Infof("working set: %s, peak memory ~%s\n",
		host.FormatBytes(data.Bytes()), host.FormatBytes(host.Footprint(data.Rows(), o.threads)))

	return data, nil
}

// collect joins h and folds its outcome into the counters.
func (d *dispatcher) collect(h *worker.Handle) {
	if !h.Join() {
		d.res.Failed++
		d.log.Debugf("worker fault: %v\n", h.Err())
		return
	}
	d.res.Completed++
	if d.opts.progress != nil {
		d.opts.progress(d.res.Completed)
	}
}

// runBarrier spawns T workers, joins them all, and checks the gate after
// every batch. Each batch is fully joined before the gate check, so DRAINING
// finds nothing in flight.
func (d *dispatcher) runBarrier(data *matrix.Dense, start time.Time, budget time.Duration) {
	o := d.opts
	batch := make([]*worker.Handle, o.threads)
	for {
		var i int
		for i = range batch {
			batch[i] = worker.Spawn(o.workload, data)
		}
		for i = range batch {
			d.collect(batch[i])
			batch[i] = nil
		}
		d.res.Batches++
		if time.Since(start) > budget {
			break
		}
	}
	d.enter(StateDraining)
}

// runSteady tops the pool up to T and reaps finished workers, checking the
// gate on every iteration. Workers still running at the gate are abandoned;
// their threads exit on their own once the kernel returns.
func (d *dispatcher) runSteady(data *matrix.Dense, start time.Time, budget time.Duration) {
	o := d.opts
	pool := make([]*worker.Handle, 0, o.threads)
	for time.Since(start) <= budget {
		if len(pool) < o.threads {
			pool = append(pool, worker.Spawn(o.workload, data))
			continue
		}

		kept := pool[:0]
		for _, h := range pool {
			if h.Finished() {
				d.collect(h)
			} else {
				kept = append(kept, h)
			}
		}
		reaped := len(pool) - len(kept)
		clear(pool[len(kept):])
		pool = kept

		if reaped == 0 {
			d.pause()
		}
	}

	d.enter(StateDraining)
	d.res.Abandoned = len(pool)
}

func (d *dispatcher) pause() {
	if d.opts.poll == 0 {
		runtime.Gosched()
		return
	}
	time.Sleep(d.opts.poll)
}

// secondsToDuration converts S to a Duration, saturating at the largest
// representable value.
func secondsToDuration(s float64) time.Duration {
	ns := s * float64(time.Second)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(ns)
}

// FormatSeconds renders S the way the banner shows it: the shortest decimal
// that round-trips, so 180 prints as "180" and 0.25 as "0.25".
func FormatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
