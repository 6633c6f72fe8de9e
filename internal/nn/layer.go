package nn

import (
	"fmt"
)

// Layer is an ordered set of neurons that share one input vector.
//
// Output i of Propagate is the output of neuron i.
type Layer struct {
	neurons []Neuron
}

// NewLayer creates a layer from the given neurons.
//
// Panics if neurons is empty or the neurons disagree on input width.
func NewLayer(neurons []Neuron) Layer {
	if len(neurons) == 0 {
		panic("NewLayer: a layer needs at least one neuron")
	}

	width := neurons[0].InputWidth()
	for i, n := range neurons[1:] {
		if n.InputWidth() != width {
			panic(fmt.Sprintf("NewLayer: neuron %d has %d weights, neuron 0 has %d",
				i+1, n.InputWidth(), width))
		}
	}

	ns := make([]Neuron, len(neurons))
	copy(ns, neurons)
	return Layer{neurons: ns}
}

// Propagate applies every neuron to inputs and returns one output per neuron.
func (l Layer) Propagate(inputs []float32) []float32 {
	if len(inputs) != l.InputWidth() {
		panic(fmt.Sprintf("Layer.Propagate: expected %d inputs, got %d", l.InputWidth(), len(inputs)))
	}

	outputs := make([]float32, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Propagate(inputs)
	}
	return outputs
}

// Neurons returns a copy of the layer's neuron list.
func (l Layer) Neurons() []Neuron {
	ns := make([]Neuron, len(l.neurons))
	copy(ns, l.neurons)
	return ns
}

// InputWidth returns the length of input vector the layer accepts.
func (l Layer) InputWidth() int {
	if len(l.neurons) == 0 {
		return 0
	}
	return l.neurons[0].InputWidth()
}

// OutputWidth returns the number of neurons in the layer.
func (l Layer) OutputWidth() int {
	return len(l.neurons)
}
