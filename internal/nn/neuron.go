package nn

import (
	"fmt"
)

// Neuron is a single ReLU unit: a bias plus one weight per input.
//
// Neurons are immutable values. NewNeuron copies its weights and Weights
// returns a copy, so a Neuron can be shared freely between goroutines.
type Neuron struct {
	bias    float32
	weights []float32
}

// NewNeuron creates a neuron with the given bias and weights.
//
// The number of weights fixes the neuron's input width.
func NewNeuron(bias float32, weights []float32) Neuron {
	w := make([]float32, len(weights))
	copy(w, weights)
	return Neuron{bias: bias, weights: w}
}

// Propagate computes relu(dot(inputs, weights) + bias).
//
// Products are accumulated in float32 in index order, then the bias is
// added. Panics if len(inputs) differs from the neuron's input width.
func (n Neuron) Propagate(inputs []float32) float32 {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Propagate: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	var output float32
	for i, input := range inputs {
		// The conversion rounds the product and prevents FMA fusion.
		output += float32(input * n.weights[i])
	}
	output += n.bias

	return ReLU(output)
}

// Bias returns the neuron's bias.
func (n Neuron) Bias() float32 {
	return n.bias
}

// Weights returns a copy of the neuron's weights.
func (n Neuron) Weights() []float32 {
	w := make([]float32, len(n.weights))
	copy(w, n.weights)
	return w
}

// InputWidth returns the number of inputs the neuron accepts.
func (n Neuron) InputWidth() int {
	return len(n.weights)
}
