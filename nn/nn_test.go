// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/ffnn/nn"
	"github.com/born-ml/ffnn/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPropagatorInterface verifies that Layer and Network satisfy Propagator.
func TestPropagatorInterface(t *testing.T) {
	src := rng.New(1)

	tests := []struct {
		name       string
		propagator nn.Propagator
		in, out    int
	}{
		{name: "Layer", propagator: nn.RandomLayer(4, 3, src), in: 4, out: 3},
		{name: "Network", propagator: nn.RandomNetwork(nn.NewTopology(4, 3, 1), src), in: 4, out: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, tt.propagator.InputWidth())
			assert.Equal(t, tt.out, tt.propagator.OutputWidth())

			out := tt.propagator.Propagate(make([]float32, tt.in))
			assert.Len(t, out, tt.out)
		})
	}
}

func TestNeuronExample(t *testing.T) {
	n := nn.NewNeuron(0.5, []float32{-0.3, 0.8})

	assert.InDelta(t, 1.15, n.Propagate([]float32{0.5, 1.0}), 1e-6)
	assert.Equal(t, float32(0), n.Propagate([]float32{-10, -10}))
}

func TestRandomNetworkFromParsedTopology(t *testing.T) {
	topology, err := nn.ParseTopology("4,3,1")
	require.NoError(t, err)

	src, err := rng.NewWithAlgorithm(rng.PCG, 42)
	require.NoError(t, err)

	net := nn.RandomNetwork(topology, src)
	batch := [][]float32{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}
	out := nn.PropagateBatch(net, batch, nn.DefaultParallelConfig())

	require.Len(t, out, 3)
	for _, o := range out {
		assert.Len(t, o, 1)
	}
	assert.ErrorIs(t, nn.CheckInput(net, []float32{1}), nn.ErrInputWidth)
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := rng.ParseAlgorithm("chacha8")
	require.NoError(t, err)
	assert.Equal(t, rng.ChaCha8, alg)

	_, err = rng.ParseAlgorithm("lcg")
	assert.ErrorIs(t, err, rng.ErrUnknownAlgorithm)
}
