package gol

import (
	"errors"
	"fmt"
)

// ErrInterrupted marks a run stopped by cancellation. It never escapes Run,
// the distributor turns it into the Cancelled state.
var ErrInterrupted = errors.New("simulation interrupted")

// ConfigurationError is reported before any simulation work starts
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// IOError wraps a failed frame or video operation
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
