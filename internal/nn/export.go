package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// WeightMatrix returns the layer's weights as a float64 matrix with one row
// per neuron and one column per input.
//
// The matrix is a copy meant for inspection and reference arithmetic;
// Propagate always uses the float32 parameters.
func (l Layer) WeightMatrix() *mat.Dense {
	rows, cols := l.OutputWidth(), l.InputWidth()
	if rows == 0 || cols == 0 {
		// gonum rejects zero-sized matrices.
		return nil
	}

	data := make([]float64, 0, rows*cols)
	for _, n := range l.neurons {
		for _, w := range n.weights {
			data = append(data, float64(w))
		}
	}
	return mat.NewDense(rows, cols, data)
}

// BiasVector returns the neuron biases as a float64 vector.
//
// Panics on a layer without neurons.
func (l Layer) BiasVector() *mat.VecDense {
	if len(l.neurons) == 0 {
		panic("Layer.BiasVector: layer has no neurons")
	}

	data := make([]float64, len(l.neurons))
	for i, n := range l.neurons {
		data[i] = float64(n.bias)
	}
	return mat.NewVecDense(len(data), data)
}

// Reference computes relu(W*x + b) for one layer in float64 with gonum.
//
// It does not reproduce float32 rounding and exists to cross-check
// Propagate within a tolerance.
func (l Layer) Reference(inputs []float64) []float64 {
	if len(inputs) != l.InputWidth() {
		panic(fmt.Sprintf("Layer.Reference: expected %d inputs, got %d", l.InputWidth(), len(inputs)))
	}

	w := l.WeightMatrix()
	if w == nil {
		out := make([]float64, l.OutputWidth())
		for i, n := range l.neurons {
			out[i] = max(float64(n.bias), 0)
		}
		return out
	}

	var y mat.VecDense
	y.MulVec(w, mat.NewVecDense(len(inputs), inputs))
	y.AddVec(&y, l.BiasVector())

	out := make([]float64, y.Len())
	for i := range out {
		out[i] = max(y.AtVec(i), 0)
	}
	return out
}

// Reference folds Layer.Reference over the network's layers.
func (n Network) Reference(inputs []float64) []float64 {
	outputs := inputs
	for _, l := range n.layers {
		outputs = l.Reference(outputs)
	}
	return outputs
}
