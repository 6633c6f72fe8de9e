package nn

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrTopologyTooShort = errors.New("topology needs an input stage and at least one layer")
	ErrInvalidWidth     = errors.New("stage width must be a positive integer")
	ErrInputWidth       = errors.New("input width mismatch")
)

// TopologyError provides detailed information about a rejected topology.
type TopologyError struct {
	Stage   int   // Offending stage index, -1 when the topology as a whole is invalid
	Err     error // One of the sentinel errors above
	Details string
}

// Error implements the error interface.
func (e *TopologyError) Error() string {
	if e.Stage >= 0 {
		return fmt.Sprintf("%v: stage %d: %s", e.Err, e.Stage, e.Details)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Details)
}

// Unwrap returns the underlying sentinel error.
func (e *TopologyError) Unwrap() error {
	return e.Err
}

// CheckInput returns an error wrapping ErrInputWidth if inputs cannot be
// propagated through p. Callers handling untrusted vectors use it to get an
// error instead of the panic Propagate raises.
func CheckInput(p Propagator, inputs []float32) error {
	if want := p.InputWidth(); len(inputs) != want {
		return fmt.Errorf("%w: expected %d values, got %d", ErrInputWidth, want, len(inputs))
	}
	return nil
}
