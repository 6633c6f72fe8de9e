// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a minimal feedforward network evaluator.
//
// # Overview
//
// This package contains:
//   - Neuron: a bias and one weight per input, ReLU activation
//   - Layer: neurons sharing the same input vector
//   - Network: layers applied in order
//   - Seeded construction: RandomNeuron, RandomLayer, RandomNetwork
//   - Batch evaluation: PropagateBatch
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ffnn/nn"
//	    "github.com/born-ml/ffnn/rng"
//	)
//
//	func main() {
//	    src := rng.New(42)
//
//	    // 4 inputs, a hidden layer of 3 neurons, 1 output
//	    net := nn.RandomNetwork(nn.NewTopology(4, 3, 1), src)
//
//	    output := net.Propagate([]float32{0.1, 0.2, 0.3, 0.4})
//	}
//
// # Reproducibility
//
// Parameters are drawn from an rng.Source: the bias of each neuron first,
// then its weights, neuron by neuron and layer by layer. The same seed and
// algorithm always produce the same network.
//
// # Contracts
//
// Width mismatches are programming errors and panic. Use ValidateTopology
// and CheckInput to turn untrusted input into errors first.
package nn
