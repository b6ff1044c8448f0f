package doctree

import (
	"fmt"
	"math/bits"
)

const typeSetWords = (int(numTypes) + 63) / 64

// TypeSet is an immutable-by-value set of [Type] values.
// The zero value is the empty set.
type TypeSet struct {
	words [typeSetWords]uint64
}

// NewTypeSet returns a set containing types.
func NewTypeSet(types ...Type) TypeSet {
	var s TypeSet
	for _, t := range types {
		s = s.With(t)
	}

	return s
}

// ParseTypeSet resolves each name with [ParseType].
func ParseTypeSet(names ...string) (TypeSet, error) {
	var s TypeSet

	for _, name := range names {
		t, err := ParseType(name)
		if err != nil {
			return TypeSet{}, err
		}

		s = s.With(t)
	}

	return s, nil
}

// With returns a copy of s that also contains t.
func (s TypeSet) With(t Type) TypeSet {
	if !t.Valid() {
		panic(fmt.Sprintf("doctree: invalid type %d in TypeSet", int(t)))
	}

	s.words[t/64] |= 1 << (uint(t) % 64)

	return s
}

// Has reports whether t is in s.
func (s TypeSet) Has(t Type) bool {
	if !t.Valid() {
		return false
	}

	return s.words[t/64]&(1<<(uint(t)%64)) != 0
}

// Union returns the set of types in s or o.
func (s TypeSet) Union(o TypeSet) TypeSet {
	for i := range s.words {
		s.words[i] |= o.words[i]
	}

	return s
}

// Difference returns the types in s that are not in o.
func (s TypeSet) Difference(o TypeSet) TypeSet {
	for i := range s.words {
		s.words[i] &^= o.words[i]
	}

	return s
}

// IsSubsetOf reports whether every type in s is also in o.
func (s TypeSet) IsSubsetOf(o TypeSet) bool {
	return s.Difference(o).Empty()
}

// Empty reports whether s has no members.
func (s TypeSet) Empty() bool {
	return s.Len() == 0
}

// Len returns the number of types in s.
func (s TypeSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Types returns the members of s in ascending order.
func (s TypeSet) Types() []Type {
	types := make([]Type, 0, s.Len())
	for t := Javadoc; t < numTypes; t++ {
		if s.Has(t) {
			types = append(types, t)
		}
	}

	return types
}

// Strings returns the names of the members of s in ascending type order.
func (s TypeSet) Strings() []string {
	types := s.Types()

	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}

	return names
}
