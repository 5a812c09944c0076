package bench

import "errors"

var (
	// ErrPrepare wraps any failure of the data source during INIT.
	// The run cannot produce a meaningful score after it.
	ErrPrepare = errors.New("bench: data preparation failed")

	// ErrUnknownPolicy is returned by ParsePolicy.
	ErrUnknownPolicy = errors.New("bench: unknown policy")
)
