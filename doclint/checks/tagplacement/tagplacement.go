// Package tagplacement checks that standard tags are used only on
// declarations they apply to, for example that @return does not document a
// field and {@inheritDoc} does not document a static method.
//
// Comments whose declaration is unknown are not checked.
package tagplacement

import (
	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
)

// Name is the registry name of the check.
const Name = "tag-placement"

// Message keys.
const (
	// MsgInvalidPlacement arguments: the tag, the declaration kind.
	MsgInvalidPlacement = "javadoc.tag.invalid.placement"
	// MsgInvalidInheritDoc is reported for {@inheritDoc} outside an
	// overridable method.
	MsgInvalidInheritDoc = "javadoc.invalidInheritDoc"
)

var defaultTypes = doctree.NewTypeSet(doctree.JavadocTag, doctree.JavadocInlineTag)

// Check reports misplaced standard tags.
type Check struct{}

// New returns the check.
func New() *Check { return &Check{} }

// Name returns the check name.
func (c *Check) Name() string { return Name }

// DefaultTypes returns block and inline tags.
func (c *Check) DefaultTypes() doctree.TypeSet { return defaultTypes }

// AcceptableTypes returns the default types.
func (c *Check) AcceptableTypes() doctree.TypeSet { return defaultTypes }

// RequiredTypes returns the empty set.
func (c *Check) RequiredTypes() doctree.TypeSet { return doctree.TypeSet{} }

// Messages returns the message templates of the check.
func (c *Check) Messages() map[string]string {
	return map[string]string{
		MsgInvalidPlacement:  "Tag '%s' is not valid on a %s.",
		MsgInvalidInheritDoc: "Invalid use of the {@inheritDoc} tag.",
	}
}

// ForFile returns c, which has no state.
func (c *Check) ForFile(string) doclint.Check { return c }

// Visit checks one block or inline tag.
func (c *Check) Visit(pass *doclint.Pass, n *doctree.Node) {
	d, ok := pass.Declaration().(doctree.Declaration)
	if !ok || d.Kind() == doctree.DeclUnknown {
		return
	}

	tag, ok := lookup(n)
	if !ok || doctree.ValidOn(tag, d) {
		return
	}

	if tag == doctree.TagInheritDoc {
		pass.ReportNode(n, MsgInvalidInheritDoc)

		return
	}

	pass.ReportNode(n, MsgInvalidPlacement, tag.String(), d.Kind().String())
}

// lookup returns the standard tag of a block or inline tag node.
func lookup(n *doctree.Node) (doctree.Tag, bool) {
	lit := n.FirstChild()
	if n.Type() == doctree.JavadocInlineTag && lit != nil {
		lit = lit.NextSibling()
	}

	if lit == nil {
		return 0, false
	}

	return doctree.TagForLiteral(lit.Type())
}
