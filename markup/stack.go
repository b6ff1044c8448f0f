package markup

import "strings"

// Stack holds open elements, innermost last. It counts the open elements
// of each name, so looking up a name that is not open costs nothing and a
// lookup that succeeds only scans the elements it is about to pop.
// Names match case-insensitively.
type Stack[T any] struct {
	name   func(T) string
	counts map[string]int
	items  []T
}

// NewStack returns an empty stack whose element names are given by name.
func NewStack[T any](name func(T) string) *Stack[T] {
	return &Stack[T]{name: name, counts: map[string]int{}}
}

// Len returns the number of open elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// At returns the i-th element from the bottom.
func (s *Stack[T]) At(i int) T { return s.items[i] }

// Items returns the open elements, outermost first. The slice is only valid
// until the stack changes.
func (s *Stack[T]) Items() []T { return s.items }

// Push opens e.
func (s *Stack[T]) Push(e T) {
	s.items = append(s.items, e)
	s.counts[strings.ToLower(s.name(e))]++
}

// Truncate closes every element at index n and above.
func (s *Stack[T]) Truncate(n int) {
	for _, e := range s.items[n:] {
		s.counts[strings.ToLower(s.name(e))]--
	}

	clear(s.items[n:])
	s.items = s.items[:n]
}

// Index returns the index of the innermost open element named name, or -1.
func (s *Stack[T]) Index(name string) int {
	if s.counts[strings.ToLower(name)] == 0 {
		return -1
	}

	for i := len(s.items) - 1; i >= 0; i-- {
		if strings.EqualFold(s.name(s.items[i]), name) {
			return i
		}
	}

	return -1
}
