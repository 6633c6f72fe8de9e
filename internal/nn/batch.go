package nn

import (
	"fmt"

	"github.com/born-ml/ffnn/internal/parallel"
)

// Propagator is implemented by values that map an input vector to an output
// vector: Layer and Network.
type Propagator interface {
	// Propagate computes the output vector for inputs.
	Propagate(inputs []float32) []float32

	// InputWidth returns the expected length of inputs.
	InputWidth() int

	// OutputWidth returns the length of the vector Propagate returns.
	OutputWidth() int
}

var (
	_ Propagator = Layer{}
	_ Propagator = Network{}
)

// PropagateBatch propagates every input of batch through p.
//
// Inputs are independent, so they are spread over cfg's workers; p is only
// read. outputs[i] is bit-identical to p.Propagate(batch[i]).
//
// Panics, before any work starts, if an input has the wrong width.
func PropagateBatch(p Propagator, batch [][]float32, cfg parallel.Config) [][]float32 {
	for i, inputs := range batch {
		if len(inputs) != p.InputWidth() {
			panic(fmt.Sprintf("PropagateBatch: input %d: expected %d values, got %d",
				i, p.InputWidth(), len(inputs)))
		}
	}

	outputs := make([][]float32, len(batch))
	parallel.For(len(batch), func(i int) {
		outputs[i] = p.Propagate(batch[i])
	}, cfg)
	return outputs
}
