package doclint

import (
	"fmt"
	"slices"
	"strings"
)

// Registry maps check names to constructors. Every constructor call must
// return a fresh, unconfigured check.
type Registry map[string]func() Check

// Add registers constructors under the names of the checks they build.
func (r Registry) Add(ctors ...func() Check) {
	for _, ctor := range ctors {
		r[ctor().Name()] = ctor
	}
}

// Names returns the registered names, sorted.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// New builds the check registered under name.
func (r Registry) New(name string) (Check, error) {
	ctor, ok := r[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCheck, name)
	}

	return ctor(), nil
}
