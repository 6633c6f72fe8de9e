package nn

import (
	"fmt"
)

// Network is a feedforward stack of layers.
//
// Propagate feeds each layer's output into the next one:
//
//	src := rng.New(42)
//	net := nn.RandomNetwork(nn.NewTopology(4, 3, 1), src)
//	out := net.Propagate([]float32{0.1, 0.2, 0.3, 0.4}) // len(out) == 1
//
// A Network is immutable and safe for concurrent use by multiple goroutines.
type Network struct {
	layers []Layer
}

// NewNetwork creates a network from the given layers.
//
// Panics if layers is empty or if the output width of a layer differs from
// the input width of the layer after it.
func NewNetwork(layers []Layer) Network {
	if len(layers) == 0 {
		panic("NewNetwork: a network needs at least one layer")
	}

	for k := 1; k < len(layers); k++ {
		if layers[k-1].OutputWidth() != layers[k].InputWidth() {
			panic(fmt.Sprintf("NewNetwork: layer %d produces %d values, layer %d expects %d",
				k-1, layers[k-1].OutputWidth(), k, layers[k].InputWidth()))
		}
	}

	ls := make([]Layer, len(layers))
	copy(ls, layers)
	return Network{layers: ls}
}

// Propagate runs a forward pass and returns the last layer's output.
//
// Panics if len(inputs) differs from the network's input width.
func (n Network) Propagate(inputs []float32) []float32 {
	if len(inputs) != n.InputWidth() {
		panic(fmt.Sprintf("Network.Propagate: expected %d inputs, got %d", n.InputWidth(), len(inputs)))
	}

	outputs := inputs
	for _, layer := range n.layers {
		outputs = layer.Propagate(outputs)
	}
	return outputs
}

// Layers returns a copy of the network's layer list.
func (n Network) Layers() []Layer {
	ls := make([]Layer, len(n.layers))
	copy(ls, n.layers)
	return ls
}

// InputWidth returns the length of input vector the network accepts.
func (n Network) InputWidth() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[0].InputWidth()
}

// OutputWidth returns the length of vector Propagate returns.
func (n Network) OutputWidth() int {
	if len(n.layers) == 0 {
		return 0
	}
	return n.layers[len(n.layers)-1].OutputWidth()
}

// Topology reconstructs the stage widths the network was built from.
func (n Network) Topology() []LayerTopology {
	if len(n.layers) == 0 {
		return nil
	}

	t := make([]LayerTopology, 0, len(n.layers)+1)
	t = append(t, LayerTopology{Neurons: n.InputWidth()})
	for _, l := range n.layers {
		t = append(t, LayerTopology{Neurons: l.OutputWidth()})
	}
	return t
}

// ParameterCount returns the total number of weights and biases.
func (n Network) ParameterCount() int {
	count := 0
	for _, l := range n.layers {
		count += l.OutputWidth() * (l.InputWidth() + 1)
	}
	return count
}
