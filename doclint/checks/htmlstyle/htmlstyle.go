// Package htmlstyle reports unbalanced markup in documentation comments.
//
// The check consumes the tag balance diagnostics computed from the raw
// comment text, so it also reports on comments the parser rejects. Type
// parameter names of the documented declaration, such as the "T" in
// "<T>", are not reported as unclosed.
package htmlstyle

import (
	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
	"go.jacobcolvin.com/doclint/markup"
)

// Name is the registry name of the check.
const Name = "html-style"

// Check reports [markup.Diagnostic] values as findings.
type Check struct{}

// New returns the check.
func New() *Check { return &Check{} }

// Name returns the check name.
func (c *Check) Name() string { return Name }

// DefaultTypes returns the root type only; the check works on markup
// diagnostics rather than nodes.
func (c *Check) DefaultTypes() doctree.TypeSet { return doctree.NewTypeSet(doctree.Javadoc) }

// AcceptableTypes returns the default types.
func (c *Check) AcceptableTypes() doctree.TypeSet { return c.DefaultTypes() }

// RequiredTypes returns the empty set.
func (c *Check) RequiredTypes() doctree.TypeSet { return doctree.TypeSet{} }

// ForFile returns c, which has no state.
func (c *Check) ForFile(string) doclint.Check { return c }

// Visit does nothing.
func (c *Check) Visit(*doclint.Pass, *doctree.Node) {}

// CheckMarkup reports diags, recomputing them when the declaration has type
// parameters.
func (c *Check) CheckMarkup(pass *doclint.Pass, diags []markup.Diagnostic) {
	if d, ok := pass.Declaration().(doctree.Declaration); ok && len(d.TypeParameters()) > 0 {
		diags = markup.Validate(pass.Result().Tags, markup.WithIgnored(d.TypeParameters()...))
	}

	for _, diag := range diags {
		if diag.Kind == markup.IncompleteTag {
			pass.Report(diag.Tag.Line, diag.Key(), diag.Args()...)

			continue
		}

		pass.ReportAt(diag.Tag.Line, diag.Tag.Column+1, diag.Key(), diag.Args()...)
	}
}
