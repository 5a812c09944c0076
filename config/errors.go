package config

import (
	"errors"
	"strconv"
)

var (
	// ErrWrongParameter marks a recognised flag with an unusable value.
	ErrWrongParameter = errors.New("config: wrong parameter")

	// ErrUnknownArgument marks a token that is not a recognised flag.
	ErrUnknownArgument = errors.New("config: unknown argument")
)

// ArgError is a recognised flag whose value was rejected; the default stands.
// Its message is the diagnostic line shown to the user.
type ArgError struct {
	Flag  string // single letter, without dash
	Value string
	Err   error // optional underlying cause
}

func (e *ArgError) Error() string {
	return "wrong parameter in argument -" + e.Flag + "="
}

// Unwrap exposes ErrWrongParameter and the underlying cause to errors.Is.
func (e *ArgError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrWrongParameter}
	}
	return []error{ErrWrongParameter, e.Err}
}

// UnknownArgError is a token that was ignored.
type UnknownArgError struct {
	Arg string
}

func (e *UnknownArgError) Error() string {
	return "ignoring unknown argument " + strconv.Quote(e.Arg) + ", see --help"
}

func (e *UnknownArgError) Unwrap() error { return ErrUnknownArgument }
