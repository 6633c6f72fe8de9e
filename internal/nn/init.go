package nn

import (
	"fmt"

	"github.com/born-ml/ffnn/internal/rng"
)

// Every parameter is one draw from src on [paramLow, paramHigh]. Draws go
// layer by layer, neuron by neuron, bias before weights.
const (
	paramLow  float32 = -1
	paramHigh float32 = 1
)

// RandomNeuron draws a neuron with the given input width from src.
//
// The bias is drawn first, then the weights in ascending index order.
func RandomNeuron(src rng.Source, inputs int) Neuron {
	if inputs < 0 {
		panic(fmt.Sprintf("RandomNeuron: negative input width %d", inputs))
	}

	bias := src.Uniform(paramLow, paramHigh)
	weights := make([]float32, inputs)
	for i := range weights {
		weights[i] = src.Uniform(paramLow, paramHigh)
	}

	return Neuron{bias: bias, weights: weights}
}

// RandomLayer draws a layer of outputs neurons, each accepting inputs values.
//
// Neuron 0 is fully drawn before neuron 1 begins.
func RandomLayer(inputs, outputs int, src rng.Source) Layer {
	if outputs <= 0 {
		panic(fmt.Sprintf("RandomLayer: expected a positive neuron count, got %d", outputs))
	}

	neurons := make([]Neuron, outputs)
	for i := range neurons {
		neurons[i] = RandomNeuron(src, inputs)
	}

	return Layer{neurons: neurons}
}

// RandomNetwork draws a network shaped by topology from src.
//
// topology[0] is the input width; every following stage adds one layer whose
// neurons take the previous stage's width as input. Layers are drawn in
// order, layer 0 fully before layer 1.
//
// Panics if topology has fewer than two stages or a non-positive width.
// Use ValidateTopology to check untrusted topologies first.
func RandomNetwork(topology []LayerTopology, src rng.Source) Network {
	if err := ValidateTopology(topology); err != nil {
		panic(fmt.Sprintf("RandomNetwork: %v", err))
	}

	layers := make([]Layer, 0, len(topology)-1)
	for k := 0; k+1 < len(topology); k++ {
		layers = append(layers, RandomLayer(topology[k].Neurons, topology[k+1].Neurons, src))
	}

	return Network{layers: layers}
}
