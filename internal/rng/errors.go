package rng

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnknownAlgorithm = errors.New("unknown generator algorithm")
)

// AlgorithmError reports an algorithm name that could not be resolved.
type AlgorithmError struct {
	Name string // Name as supplied by the caller
}

// Error implements the error interface.
func (e *AlgorithmError) Error() string {
	return fmt.Sprintf("%v: %q (supported: %s, %s)", ErrUnknownAlgorithm, e.Name, ChaCha8, PCG)
}

// Unwrap returns ErrUnknownAlgorithm so callers can use errors.Is.
func (e *AlgorithmError) Unwrap() error {
	return ErrUnknownAlgorithm
}
