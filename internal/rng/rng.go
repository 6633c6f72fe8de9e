// Package rng provides the seeded pseudo-random sources used to initialize
// network parameters.
//
// Reproducibility is defined by three things: the Algorithm name, the seed,
// and the draw-to-bit mapping. Given the same three, a Generator yields the
// same sequence of values on every platform.
//
// Mapping (v1): every draw consumes exactly one 64-bit word u from the
// underlying algorithm. The top 24 bits m = u >> 40 are scaled to
// t = m / (2^24 - 1), a float32 in the closed interval [0, 1]. The result is
// low + (high-low)*t, each operation rounded to float32, clamped to
// [low, high].
package rng

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
)

// Source is a deterministic source of uniform float32 values.
//
// Uniform returns a value in the closed interval [low, high]. Implementations
// are stateful and not safe for concurrent use: the draw order is part of
// the reproducibility contract.
type Source interface {
	Uniform(low, high float32) float32
}

// Algorithm names a versioned generator algorithm.
type Algorithm string

const (
	// ChaCha8 is math/rand/v2's ChaCha8. The seed is stored little-endian
	// in bytes 0..7 of the 32-byte key; bytes 8..31 are zero.
	ChaCha8 Algorithm = "chacha8/v1"

	// PCG is math/rand/v2's PCG-DXSM seeded with (seed, 0).
	PCG Algorithm = "pcg-dxsm/v1"

	// Default is used by New.
	Default = ChaCha8
)

// mantissaBits is the number of random bits kept per draw.
const mantissaBits = 24

// unitScale maps a mantissaBits-wide integer onto [0, 1].
const unitScale = float32(1<<mantissaBits - 1)

// ParseAlgorithm resolves an algorithm name. Matching is case-insensitive
// and the "/v1" suffix may be omitted.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", string(ChaCha8), "chacha8":
		return ChaCha8, nil
	case string(PCG), "pcg-dxsm", "pcg":
		return PCG, nil
	}
	return "", &AlgorithmError{Name: name}
}

// Generator is the Source implementation backed by math/rand/v2.
type Generator struct {
	alg   Algorithm
	seed  uint64
	src   rand.Source
	draws uint64
}

var _ Source = (*Generator)(nil)

// New returns a Generator using the Default algorithm.
//
// Example:
//
//	src := rng.New(42)
//	net := nn.RandomNetwork(nn.NewTopology(4, 3, 1), src)
func New(seed uint64) *Generator {
	g, err := NewWithAlgorithm(Default, seed)
	if err != nil {
		panic(err)
	}
	return g
}

// NewWithAlgorithm returns a Generator for the given algorithm and seed.
func NewWithAlgorithm(alg Algorithm, seed uint64) (*Generator, error) {
	var src rand.Source
	switch alg {
	case ChaCha8:
		var key [32]byte
		binary.LittleEndian.PutUint64(key[:8], seed)
		src = rand.NewChaCha8(key)
	case PCG:
		src = rand.NewPCG(seed, 0)
	default:
		return nil, &AlgorithmError{Name: string(alg)}
	}

	return &Generator{alg: alg, seed: seed, src: src}, nil
}

// Uniform draws one value from the closed interval [low, high].
//
// Panics if low > high or either bound is NaN or infinite.
func (g *Generator) Uniform(low, high float32) float32 {
	if !finite(low) || !finite(high) || low > high {
		panic(fmt.Sprintf("Generator.Uniform: invalid interval [%v, %v]", low, high))
	}

	g.draws++
	m := g.src.Uint64() >> (64 - mantissaBits)
	t := float32(m) / unitScale

	// Explicit conversions keep each step rounded to float32.
	v := low + float32(float32(high-low)*t)
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func finite(x float32) bool {
	return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
}

// Algorithm returns the generator's algorithm name.
func (g *Generator) Algorithm() Algorithm {
	return g.alg
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Draws returns the number of values drawn so far.
func (g *Generator) Draws() uint64 {
	return g.draws
}

// String describes the generator state, e.g. "chacha8/v1(seed=42, draws=19)".
func (g *Generator) String() string {
	return fmt.Sprintf("%s(seed=%d, draws=%d)", g.alg, g.seed, g.draws)
}
