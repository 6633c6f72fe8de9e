// Package nn implements the feedforward evaluator.
//
// This package provides:
//   - Neuron: bias + weights, ReLU activation
//   - Layer: neurons sharing one input vector
//   - Network: layers applied in order
//   - RandomNeuron, RandomLayer, RandomNetwork: seeded parameter generation
//   - PropagateBatch: concurrent evaluation of independent inputs
//   - WeightMatrix, BiasVector, Reference: gonum views for inspection
//
// All values are immutable after construction. Shape mismatches are
// programming errors and panic; ValidateTopology and CheckInput return errors
// for callers handling untrusted input.
package nn
