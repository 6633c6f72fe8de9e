package nn

import (
	"testing"

	"github.com/born-ml/ffnn/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomNetwork_Topology431(t *testing.T) {
	net := RandomNetwork(NewTopology(4, 3, 1), rng.New(42))

	layers := net.Layers()
	require.Len(t, layers, 2)

	require.Equal(t, 3, layers[0].OutputWidth())
	for _, n := range layers[0].Neurons() {
		assert.Len(t, n.Weights(), 4)
	}

	require.Equal(t, 1, layers[1].OutputWidth())
	assert.Len(t, layers[1].Neurons()[0].Weights(), 3)

	out := net.Propagate([]float32{0.1, 0.2, 0.3, 0.4})
	assert.Len(t, out, 1)
}

func TestRandomNetwork_ShapePreservation(t *testing.T) {
	topologies := [][]int{
		{1, 1},
		{4, 3, 1},
		{2, 8, 8, 3},
		{10, 1, 10},
		{5, 16, 32, 16, 2},
	}

	for _, widths := range topologies {
		t.Run(FormatTopology(NewTopology(widths...)), func(t *testing.T) {
			src := rng.New(7)
			net := RandomNetwork(NewTopology(widths...), src)

			inputs := make([]float32, widths[0])
			for i := range inputs {
				inputs[i] = src.Uniform(-1, 1)
			}

			out := net.Propagate(inputs)
			assert.Len(t, out, widths[len(widths)-1])
			for _, v := range out {
				assert.GreaterOrEqual(t, v, float32(0))
			}
			assert.Equal(t, widths[0], net.InputWidth())
			assert.Equal(t, widths[len(widths)-1], net.OutputWidth())
		})
	}
}

func TestRandomNetwork_Deterministic(t *testing.T) {
	topology := NewTopology(4, 8, 3)

	for _, alg := range []rng.Algorithm{rng.ChaCha8, rng.PCG} {
		t.Run(string(alg), func(t *testing.T) {
			a, err := rng.NewWithAlgorithm(alg, 1234)
			require.NoError(t, err)
			b, err := rng.NewWithAlgorithm(alg, 1234)
			require.NoError(t, err)

			netA := RandomNetwork(topology, a)
			netB := RandomNetwork(topology, b)
			assert.Equal(t, netA, netB)

			inputs := []float32{0.25, -0.5, 0.75, -1}
			assert.Equal(t, netA.Propagate(inputs), netB.Propagate(inputs))
		})
	}
}

func TestRandomNetwork_Golden(t *testing.T) {
	net := RandomNetwork(NewTopology(4, 3, 1), rng.New(42))
	layers := net.Layers()
	require.Len(t, layers, 2)

	hidden := layers[0].Neurons()
	require.Len(t, hidden, 3)
	want := []struct {
		bias    float32
		weights []float32
	}{
		{0.7067921, []float32{-0.5888798, -0.46600467, 0.8132032, 0.55614066}},
		{-0.92840207, []float32{-0.24065131, 0.6453885, -0.91759217, 0.3444618}},
		{0.1894089, []float32{0.57925117, 0.90414226, 0.5381819, 0.65327775}},
	}
	for i, n := range hidden {
		assert.Equal(t, want[i].bias, n.Bias(), "neuron %d bias", i)
		assert.Equal(t, want[i].weights, n.Weights(), "neuron %d weights", i)
	}

	out := layers[1].Neurons()[0]
	assert.Equal(t, float32(-0.77366114), out.Bias())
	assert.Equal(t, []float32{-0.84134233, -0.093850195, -0.35594863}, out.Weights())

	inputs := []float32{0.1, 0.2, 0.3, 0.4}
	assert.Equal(t, []float32{1.0211204, 0, 0.8509282}, layers[0].Propagate(inputs))
	// Every output weight and the bias are negative.
	assert.Equal(t, []float32{0}, net.Propagate(inputs))
}

func TestRandomNetwork_SeedsDiffer(t *testing.T) {
	topology := NewTopology(4, 3, 1)
	assert.NotEqual(t, RandomNetwork(topology, rng.New(1)), RandomNetwork(topology, rng.New(2)))
}

func TestRandomNetwork_SequentialDraws(t *testing.T) {
	src := &sequenceSource{}
	net := RandomNetwork(NewTopology(4, 3, 1), src)

	layers := net.Layers()

	// Layer 0 consumes 3 * (4 + 1) = 15 draws before layer 1 begins.
	last := layers[0].Neurons()[2]
	assert.Equal(t, []float32{12, 13, 14, 15}, last.Weights())

	out := layers[1].Neurons()[0]
	assert.Equal(t, float32(16), out.Bias())
	assert.Equal(t, []float32{17, 18, 19}, out.Weights())
	assert.Len(t, src.intervals, net.ParameterCount())
}

func TestRandomNetwork_DrawCount(t *testing.T) {
	g := rng.New(3)
	net := RandomNetwork(NewTopology(5, 4, 3, 2), g)

	// (4*6) + (3*5) + (2*4)
	assert.Equal(t, 47, net.ParameterCount())
	assert.Equal(t, uint64(47), g.Draws())
}

func TestRandomNetwork_InvalidTopologyPanics(t *testing.T) {
	assert.Panics(t, func() { RandomNetwork(nil, rng.New(1)) })
	assert.Panics(t, func() { RandomNetwork(NewTopology(4), rng.New(1)) })
	assert.Panics(t, func() { RandomNetwork(NewTopology(4, 0, 1), rng.New(1)) })
}

func TestNetwork_Composition(t *testing.T) {
	net := RandomNetwork(NewTopology(3, 5, 4, 2), rng.New(77))
	inputs := []float32{0.9, -0.1, 0.4}

	want := inputs
	for _, l := range net.Layers() {
		want = l.Propagate(want)
	}

	assert.Equal(t, want, net.Propagate(inputs))
}

func TestNetwork_ManualTwoLayer(t *testing.T) {
	hidden := NewLayer([]Neuron{
		NewNeuron(0.5, []float32{-0.3, 0.8}),
		NewNeuron(-0.1, []float32{0.2, -0.4}),
	})
	output := NewLayer([]Neuron{
		NewNeuron(0.1, []float32{1.0, 2.0}),
	})
	net := NewNetwork([]Layer{hidden, output})

	// hidden: [1.15, relu(0.1 - 0.4 - 0.1)] = [1.15, 0]
	// output: 1.15 + 0 + 0.1
	out := net.Propagate([]float32{0.5, 1.0})
	require.Len(t, out, 1)
	assert.InDelta(t, 1.25, out[0], 1e-6)
}

func TestNetwork_PropagateWidthMismatchPanics(t *testing.T) {
	net := RandomNetwork(NewTopology(4, 3, 1), rng.New(42))

	assert.PanicsWithValue(t, "Network.Propagate: expected 4 inputs, got 3", func() {
		net.Propagate([]float32{1, 2, 3})
	})
}

func TestNetwork_PropagateDoesNotMutateInput(t *testing.T) {
	net := RandomNetwork(NewTopology(2, 2), rng.New(9))
	inputs := []float32{0.3, 0.7}

	net.Propagate(inputs)
	assert.Equal(t, []float32{0.3, 0.7}, inputs)
}

func TestNewNetwork_Invalid(t *testing.T) {
	assert.Panics(t, func() { NewNetwork(nil) })
	assert.Panics(t, func() {
		NewNetwork([]Layer{
			RandomLayer(4, 3, rng.New(1)),
			RandomLayer(2, 1, rng.New(1)),
		})
	})
}

func TestNetwork_Topology(t *testing.T) {
	topology := NewTopology(6, 4, 4, 2)
	net := RandomNetwork(topology, rng.New(1))

	assert.Equal(t, topology, net.Topology())
	assert.Nil(t, Network{}.Topology())
}

func BenchmarkNetwork_Propagate(b *testing.B) {
	net := RandomNetwork(NewTopology(64, 128, 128, 10), rng.New(1))
	inputs := make([]float32, 64)
	for i := range inputs {
		inputs[i] = float32(i) / 64
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = net.Propagate(inputs)
	}
}
