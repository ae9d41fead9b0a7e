// Package normalization maps loosely written user input onto typed enum values.
package normalization

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Normalizer resolves case-insensitive, whitespace-tolerant spellings to T.
// Several spellings may map to one value to accept aliases.
type Normalizer[T comparable] struct {
	name     string
	values   map[string]T
	fallback T
	keys     []string
}

// NewNormalizer returns a normalizer named name (used in error messages) that
// falls back to fallback for empty input.
func NewNormalizer[T comparable](name string, values map[string]T, fallback T) *Normalizer[T] {
	n := &Normalizer[T]{name: name, values: make(map[string]T, len(values)), fallback: fallback}
	for k, v := range values {
		n.values[clean(k)] = v
	}
	n.keys = slices.Sorted(maps.Keys(n.values))
	return n
}

// Lookup returns the value spelled raw and whether it is known.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[clean(raw)]
	return v, ok
}

// Normalize returns the value spelled raw, or the fallback.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.Lookup(raw); ok {
		return v
	}
	return n.fallback
}

// NormalizeWithError is Normalize for strict input: blank input still yields
// the fallback, but an unknown spelling is an error listing the valid ones.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if clean(raw) == "" {
		return n.fallback, nil
	}
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q, valid options: %v", n.name, raw, n.keys)
}

// IsValid reports whether raw names a known value.
func (n *Normalizer[T]) IsValid(raw string) bool {
	_, ok := n.Lookup(raw)
	return ok
}

// ValidKeys returns the accepted spellings, sorted.
func (n *Normalizer[T]) ValidKeys() []string {
	return slices.Clone(n.keys)
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
