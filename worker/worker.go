// Package worker runs exactly one workload on a dedicated OS thread.
//
// Spawn starts a goroutine that wires itself to a fresh OS thread with
// runtime.LockOSThread and never unlocks it, so the runtime tears the thread
// down when the workload returns. Thread creation and teardown are therefore
// part of every workload's cost; there is no pool and no reuse.
//
// A panic inside the workload is recovered and reported as a failed Handle.
// It never reaches the spawning goroutine.
package worker

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/cpuscore/matrix"
)

// ErrWorkerPanic is wrapped by Handle.Err when the workload panicked.
var ErrWorkerPanic = errors.New("worker: workload panicked")

// Workload reduces d into v and returns the extended vector.
// kernel.Run satisfies it.
type Workload func(d *matrix.Dense, v []float64) []float64

// Handle observes one spawned workload.
// ok and err are written before done is closed and read only after.
type Handle struct {
	done chan struct{}
	ok   bool
	err  error
}

// Spawn starts w against d on its own OS thread and returns immediately.
// The result vector is allocated with capacity d.Rows() and dropped when the
// workload returns; only completion is observable.
func Spawn(w Workload, d *matrix.Dense) *Handle {
	h := &Handle{done: make(chan struct{})}
	go h.run(w, d)

	return h
}

func (h *Handle) run(w Workload, d *matrix.Dense) {
	// Left locked on purpose: the thread exits together with this goroutine.
	runtime.LockOSThread()
	defer close(h.done)
	defer func() {
		if r := recover(); r != nil {
			h.ok = false
			h.err = fmt.Errorf("%w: %v", ErrWorkerPanic, r)
		}
	}()

	v := w(d, make([]float64, 0, d.Rows()))
	runtime.KeepAlive(v)
	h.ok = true
}

// Join blocks until the workload ends and reports whether it succeeded.
func (h *Handle) Join() bool {
	<-h.done
	return h.ok
}

// Finished reports, without blocking, whether the workload has ended.
func (h *Handle) Finished() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when the workload ends.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the recovered fault of a failed workload, or nil. It blocks
// until the workload ends.
func (h *Handle) Err() error {
	<-h.done
	return h.err
}
