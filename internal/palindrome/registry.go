package palindrome

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mwiater/palbench/internal/sampler"
)

// ErrUnknownCandidate is returned when a candidate name is not registered.
var ErrUnknownCandidate = errors.New("unknown candidate")

// DefaultCandidate is benchmarked when no candidate is named.
const DefaultCandidate = "array"

// Candidate is a named function under test.
type Candidate struct {
	Name        string
	Description string
	Func        sampler.Func
}

var registry = map[string]Candidate{
	"map": {
		Name:        "map",
		Description: "hash map of byte counts with early exit on the second odd count",
		Func:        CountMap,
	},
	"array": {
		Name:        "array",
		Description: "256-entry array of byte counts",
		Func:        CountArray,
	},
	"bitset": {
		Name:        "bitset",
		Description: "256-bit parity set with popcount",
		Func:        ParityBits,
	},
}

// Lookup returns the candidate registered under name.
func Lookup(name string) (Candidate, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultCandidate
	}
	c, ok := registry[key]
	if !ok {
		return Candidate{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownCandidate, name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Names lists registered candidate names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered candidate, sorted by name.
func All() []Candidate {
	out := make([]Candidate, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}

// Resolve looks up each name in order. An empty list resolves to every candidate.
func Resolve(names []string) ([]Candidate, error) {
	if len(names) == 0 {
		return All(), nil
	}
	out := make([]Candidate, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		c, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		out = append(out, c)
	}
	return out, nil
}
