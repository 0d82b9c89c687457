// Package spacefile decodes YAML descriptions of sample spaces.
//
// A file lists outcomes, optional exact weights and named events:
//
//	outcomes: [H, T]
//	weights:
//	  H: 1/5
//	events:
//	  heads: [H]
//
// Weights accept decimals ("0.2") and fractions ("1/5"); outcomes named only
// in weights are appended to the space in file order.
package spacefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/odds/internal/core/probability"
	apperrors "github.com/louisbranch/odds/internal/platform/errors"
)

// File is the decoded form of a space file.
type File struct {
	Name     string              `yaml:"name"`
	Outcomes []string            `yaml:"outcomes"`
	Weights  Weights             `yaml:"weights"`
	Events   map[string][]string `yaml:"events"`
}

// Weight assigns an exact probability to one outcome.
type Weight struct {
	Outcome string
	Value   *big.Rat
}

// Weights keeps the mapping order of the file.
type Weights []Weight

// UnmarshalYAML decodes a mapping of outcome to weight.
func (w *Weights) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: weights must be a mapping", node.Line)
	}
	out := make(Weights, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: weight for %q must be a number", value.Line, key.Value)
		}
		r, ok := new(big.Rat).SetString(strings.TrimSpace(value.Value))
		if !ok {
			return fmt.Errorf("line %d: weight %q for %q is not a number", value.Line, value.Value, key.Value)
		}
		out = append(out, Weight{Outcome: key.Value, Value: r})
	}
	*w = out
	return nil
}

// Model is a built space with its named events.
type Model struct {
	Name   string
	Space  *probability.SampleSpace[string]
	Events map[string]*probability.Event[string]
}

// EventNames returns the event names in sorted order.
func (m *Model) EventNames() []string {
	names := make([]string, 0, len(m.Events))
	for name := range m.Events {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse decodes a space file. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, invalid("file is empty", nil)
		}
		return nil, invalid(err.Error(), err)
	}
	return &f, nil
}

// Load reads and decodes the space file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read space file: %w", err)
	}
	return Parse(data)
}

// Build constructs the sample space and resolves every named event against
// it. Errors from space construction are returned unchanged.
func (f *File) Build(opts ...probability.Option[string]) (*Model, error) {
	all := make([]probability.Option[string], 0, len(f.Weights)+len(opts))
	for _, w := range f.Weights {
		all = append(all, probability.WithExactWeight(w.Outcome, w.Value))
	}
	all = append(all, opts...)

	space, err := probability.NewSampleSpace(f.Outcomes, all...)
	if err != nil {
		return nil, err
	}

	model := &Model{
		Name:   f.Name,
		Space:  space,
		Events: make(map[string]*probability.Event[string], len(f.Events)),
	}
	for name, outcomes := range f.Events {
		for _, o := range outcomes {
			if !space.Contains(o) {
				return nil, invalid(fmt.Sprintf("event %q names unknown outcome %q", name, o), nil)
			}
		}
		model.Events[name] = space.EventByValues(outcomes...).Named(name)
	}
	return model, nil
}

func invalid(reason string, cause error) error {
	return &apperrors.Error{
		Code:     apperrors.CodeSpaceFileInvalid,
		Message:  "invalid space file: " + reason,
		Metadata: map[string]string{"Reason": reason},
		Cause:    cause,
	}
}
