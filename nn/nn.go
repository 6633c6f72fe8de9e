// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/ffnn/internal/nn"
	"github.com/born-ml/ffnn/internal/parallel"
	"github.com/born-ml/ffnn/rng"
)

// Neuron is a single ReLU unit.
type Neuron = nn.Neuron

// Layer is an ordered set of neurons sharing one input vector.
type Layer = nn.Layer

// Network is a feedforward stack of layers.
type Network = nn.Network

// LayerTopology is the width of one network stage.
type LayerTopology = nn.LayerTopology

// Propagator is implemented by Layer and Network.
type Propagator = nn.Propagator

// TopologyError describes a rejected topology.
type TopologyError = nn.TopologyError

// ParallelConfig controls PropagateBatch fan-out.
type ParallelConfig = parallel.Config

// Errors

var (
	ErrTopologyTooShort = nn.ErrTopologyTooShort
	ErrInvalidWidth     = nn.ErrInvalidWidth
	ErrInputWidth       = nn.ErrInputWidth
)

// Construction

// NewNeuron creates a neuron with explicit parameters.
//
// Example:
//
//	n := nn.NewNeuron(0.5, []float32{-0.3, 0.8})
//	n.Propagate([]float32{0.5, 1.0}) // 1.15
func NewNeuron(bias float32, weights []float32) Neuron {
	return nn.NewNeuron(bias, weights)
}

// NewLayer creates a layer from neurons of equal input width.
func NewLayer(neurons []Neuron) Layer {
	return nn.NewLayer(neurons)
}

// NewNetwork creates a network from width-compatible layers.
func NewNetwork(layers []Layer) Network {
	return nn.NewNetwork(layers)
}

// RandomNeuron draws a neuron accepting inputs values.
func RandomNeuron(src rng.Source, inputs int) Neuron {
	return nn.RandomNeuron(src, inputs)
}

// RandomLayer draws a layer of outputs neurons accepting inputs values.
func RandomLayer(inputs, outputs int, src rng.Source) Layer {
	return nn.RandomLayer(inputs, outputs, src)
}

// RandomNetwork draws a network shaped by topology.
//
// Example:
//
//	net := nn.RandomNetwork(nn.NewTopology(4, 3, 1), rng.New(42))
func RandomNetwork(topology []LayerTopology, src rng.Source) Network {
	return nn.RandomNetwork(topology, src)
}

// Topology

// NewTopology builds a topology from stage widths, input width first.
func NewTopology(widths ...int) []LayerTopology {
	return nn.NewTopology(widths...)
}

// ParseTopology parses comma separated widths such as "4,3,1".
func ParseTopology(s string) ([]LayerTopology, error) {
	return nn.ParseTopology(s)
}

// ValidateTopology checks that t describes a buildable network.
func ValidateTopology(t []LayerTopology) error {
	return nn.ValidateTopology(t)
}

// FormatTopology renders t as comma separated widths.
func FormatTopology(t []LayerTopology) string {
	return nn.FormatTopology(t)
}

// Evaluation

// ReLU applies max(0, x); NaN maps to 0.
func ReLU(x float32) float32 {
	return nn.ReLU(x)
}

// PropagateBatch propagates independent inputs concurrently.
func PropagateBatch(p Propagator, batch [][]float32, cfg ParallelConfig) [][]float32 {
	return nn.PropagateBatch(p, batch, cfg)
}

// DefaultParallelConfig returns a fan-out sized to the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// CheckInput returns an error if inputs cannot be propagated through p.
func CheckInput(p Propagator, inputs []float32) error {
	return nn.CheckInput(p, inputs)
}
