// Package main provides the ffnn CLI.
//
// Usage:
//
//	ffnn version
//	ffnn run     -topology 4,3,1 -seed 42 -input 0.1,0.2,0.3,0.4
//	ffnn inspect -topology 4,3,1 -seed 42
//	ffnn batch   -topology 4,3,1 -seed 42 -workers 4 < inputs.txt
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnn/nn"
	"github.com/born-ml/ffnn/rng"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one CLI command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	var err error
	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "ffnn %s\n", version)
	case "run":
		err = runCommand(args[1:], stdout)
	case "inspect":
		err = inspectCommand(args[1:], stdout)
	case "batch":
		err = batchCommand(args[1:], stdin, stdout)
	case "help", "-h", "--help":
		usage(stdout)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	if err != nil {
		fmt.Fprintf(stderr, "ffnn: %v\n", err)
		if errors.Is(err, errUsage) {
			usage(stderr)
			return 2
		}
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "ffnn - seeded feedforward network evaluator")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  run        Build a network and propagate one input (-input)")
	fmt.Fprintln(w, "  inspect    Print every layer's weights and biases")
	fmt.Fprintln(w, "  batch      Propagate one input per stdin line")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'ffnn <command> -h' for command flags.")
}

// networkFlags are shared by every command that builds a network.
type networkFlags struct {
	topology  string
	seed      uint64
	algorithm string
}

func (f *networkFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.topology, "topology", "4,3,1", "Comma separated stage widths, input width first")
	fs.Uint64Var(&f.seed, "seed", 0, "Generator seed")
	fs.StringVar(&f.algorithm, "algorithm", string(rng.Default), "Generator algorithm (chacha8/v1, pcg-dxsm/v1)")
}

func (f *networkFlags) build() (nn.Network, *rng.Generator, error) {
	topology, err := nn.ParseTopology(f.topology)
	if err != nil {
		return nn.Network{}, nil, fmt.Errorf("topology: %w", err)
	}

	alg, err := rng.ParseAlgorithm(f.algorithm)
	if err != nil {
		return nn.Network{}, nil, err
	}

	src, err := rng.NewWithAlgorithm(alg, f.seed)
	if err != nil {
		return nn.Network{}, nil, err
	}

	return nn.RandomNetwork(topology, src), src, nil
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %s: unexpected arguments %v", errUsage, fs.Name(), fs.Args())
	}
	return nil
}

func runCommand(args []string, stdout io.Writer) error {
	var nf networkFlags
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	nf.register(fs)
	input := fs.String("input", "", "Comma separated input vector")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	net, _, err := nf.build()
	if err != nil {
		return err
	}

	inputs, err := parseVector(*input)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if err := nn.CheckInput(net, inputs); err != nil {
		return fmt.Errorf("input: %w", err)
	}

	fmt.Fprintln(stdout, formatVector(net.Propagate(inputs)))
	return nil
}

func inspectCommand(args []string, stdout io.Writer) error {
	var nf networkFlags
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	nf.register(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	net, src, err := nf.build()
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "topology:   %s\n", nn.FormatTopology(net.Topology()))
	fmt.Fprintf(stdout, "generator:  %s\n", src)
	fmt.Fprintf(stdout, "parameters: %d\n", net.ParameterCount())

	for k, l := range net.Layers() {
		fmt.Fprintf(stdout, "\nlayer %d (%d -> %d)\n", k, l.InputWidth(), l.OutputWidth())
		fmt.Fprintf(stdout, "weights =\n%v\n", mat.Formatted(l.WeightMatrix(), mat.Prefix("    "), mat.Squeeze()))
		fmt.Fprintf(stdout, "bias =\n%v\n", mat.Formatted(l.BiasVector().T(), mat.Prefix("    "), mat.Squeeze()))
	}
	return nil
}

func batchCommand(args []string, stdin io.Reader, stdout io.Writer) error {
	var nf networkFlags
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	nf.register(fs)
	workers := fs.Int("workers", 0, "Worker goroutines (0 = number of CPUs, 1 = sequential)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	net, _, err := nf.build()
	if err != nil {
		return err
	}

	var batch [][]float32
	scanner := bufio.NewScanner(stdin)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		inputs, err := parseVector(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := nn.CheckInput(net, inputs); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		batch = append(batch, inputs)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading inputs: %w", err)
	}

	cfg := nn.DefaultParallelConfig()
	if *workers > 0 {
		cfg = cfg.WithWorkers(*workers)
	}

	for _, out := range nn.PropagateBatch(net, batch, cfg) {
		fmt.Fprintln(stdout, formatVector(out))
	}
	return nil
}

// parseVector parses comma separated float32 values.
func parseVector(s string) ([]float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty vector")
	}

	fields := strings.Split(s, ",")
	v := make([]float32, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		v[i] = float32(x)
	}
	return v, nil
}

// formatVector prints float32 values with the shortest exact representation.
func formatVector(v []float32) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(float64(x), 'g', -1, 32)
	}
	return strings.Join(parts, ",")
}
