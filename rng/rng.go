// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rng provides seeded, versioned pseudo-random sources for network
// initialization.
//
// Example:
//
//	src := rng.New(42) // chacha8/v1
//	pcg, err := rng.NewWithAlgorithm(rng.PCG, 42)
package rng

import (
	"github.com/born-ml/ffnn/internal/rng"
)

// Source draws uniform float32 values on a closed interval.
type Source = rng.Source

// Generator is the math/rand/v2 backed Source.
type Generator = rng.Generator

// Algorithm names a versioned generator algorithm.
type Algorithm = rng.Algorithm

// AlgorithmError reports an unknown algorithm name.
type AlgorithmError = rng.AlgorithmError

// Supported algorithms.
const (
	ChaCha8 = rng.ChaCha8
	PCG     = rng.PCG
	Default = rng.Default
)

// ErrUnknownAlgorithm is returned for unsupported algorithm names.
var ErrUnknownAlgorithm = rng.ErrUnknownAlgorithm

// New returns a Generator using the default algorithm.
func New(seed uint64) *Generator {
	return rng.New(seed)
}

// NewWithAlgorithm returns a Generator for alg.
func NewWithAlgorithm(alg Algorithm, seed uint64) (*Generator, error) {
	return rng.NewWithAlgorithm(alg, seed)
}

// ParseAlgorithm resolves an algorithm name such as "pcg" or "chacha8/v1".
func ParseAlgorithm(name string) (Algorithm, error) {
	return rng.ParseAlgorithm(name)
}
