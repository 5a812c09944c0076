package matrix

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Size is the side length N of the shared matrix. Scores are only comparable
// between builds that use the same Size; 1024 gives an 8 MiB working set.
const Size = 1024

var (
	sharedReady atomic.Bool

	// shared is created on first call and lives until the process exits.
	shared = sync.OnceValues(func() (*Dense, error) {
		d, err := NewHostSeeded(Size)
		if err != nil {
			return nil, fmt.Errorf("matrix: prepare shared %dx%d: %w", Size, Size, err)
		}
		sharedReady.Store(true)

		return d, nil
	})
)

// Shared returns the process-wide Size×Size matrix, building it on the
// first call. Every caller observes the same fully initialised instance.
func Shared() (*Dense, error) {
	return shared()
}

// SharedPrepared reports whether Shared has already built its matrix.
func SharedPrepared() bool {
	return sharedReady.Load()
}
