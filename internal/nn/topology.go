package nn

import (
	"fmt"
	"strconv"
	"strings"
)

// LayerTopology is the width of one network stage.
type LayerTopology struct {
	Neurons int
}

// NewTopology builds a topology from stage widths, input width first.
//
//	nn.NewTopology(4, 3, 1) // 4 inputs, a 3-neuron layer, a 1-neuron layer
func NewTopology(widths ...int) []LayerTopology {
	t := make([]LayerTopology, len(widths))
	for i, w := range widths {
		t[i] = LayerTopology{Neurons: w}
	}
	return t
}

// ParseTopology parses comma separated stage widths such as "4,3,1".
//
// The result is validated with ValidateTopology.
func ParseTopology(s string) ([]LayerTopology, error) {
	fields := strings.Split(s, ",")
	widths := make([]int, 0, len(fields))

	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" && len(fields) == 1 {
			break
		}
		w, err := strconv.Atoi(f)
		if err != nil {
			return nil, &TopologyError{Stage: i, Err: ErrInvalidWidth, Details: fmt.Sprintf("%q is not an integer", f)}
		}
		widths = append(widths, w)
	}

	t := NewTopology(widths...)
	if err := ValidateTopology(t); err != nil {
		return nil, err
	}
	return t, nil
}

// ValidateTopology reports whether t describes a buildable network: at least
// two stages, every width positive.
func ValidateTopology(t []LayerTopology) error {
	if len(t) < 2 {
		return &TopologyError{Stage: -1, Err: ErrTopologyTooShort, Details: fmt.Sprintf("got %d stage(s)", len(t))}
	}

	for i, stage := range t {
		if stage.Neurons <= 0 {
			return &TopologyError{Stage: i, Err: ErrInvalidWidth, Details: fmt.Sprintf("width %d", stage.Neurons)}
		}
	}
	return nil
}

// FormatTopology renders t the way ParseTopology reads it.
func FormatTopology(t []LayerTopology) string {
	parts := make([]string, len(t))
	for i, stage := range t {
		parts[i] = strconv.Itoa(stage.Neurons)
	}
	return strings.Join(parts, ",")
}
