// Package emptydescription checks that block tags carry a description.
package emptydescription

import (
	"strings"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
)

// Name is the registry name of the check.
const Name = "empty-description"

// MsgKey is reported for a block tag without description.
const MsgKey = "non.empty.atclause"

var defaultTypes = doctree.NewTypeSet(
	doctree.ParamLiteral,
	doctree.ReturnLiteral,
	doctree.ThrowsLiteral,
	doctree.ExceptionLiteral,
	doctree.DeprecatedLiteral,
)

// Check reports block tags whose description is missing or blank. The
// configured node types select which tag literals are checked.
type Check struct{}

// New returns the check.
func New() *Check { return &Check{} }

// Name returns the check name.
func (c *Check) Name() string { return Name }

// DefaultTypes returns the literals of @param, @return, @throws,
// @exception and @deprecated.
func (c *Check) DefaultTypes() doctree.TypeSet { return defaultTypes }

// AcceptableTypes returns the default types.
func (c *Check) AcceptableTypes() doctree.TypeSet { return defaultTypes }

// RequiredTypes returns the empty set.
func (c *Check) RequiredTypes() doctree.TypeSet { return doctree.TypeSet{} }

// Messages returns the message templates of the check.
func (c *Check) Messages() map[string]string {
	return map[string]string{MsgKey: "At-clause should have a non-empty description."}
}

// ForFile returns c, which has no state.
func (c *Check) ForFile(string) doclint.Check { return c }

// Visit checks the block tag a literal belongs to.
func (c *Check) Visit(pass *doclint.Pass, lit *doctree.Node) {
	tag := lit.Parent()
	if tag == nil || tag.Type() != doctree.JavadocTag {
		return
	}

	if isBlank(tag.FindFirstChildOfType(doctree.Description)) {
		pass.Report(lit.Line(), MsgKey)
	}
}

func isBlank(desc *doctree.Node) bool {
	if desc == nil {
		return true
	}

	for _, n := range desc.Children() {
		switch n.Type() {
		case doctree.WS, doctree.Newline, doctree.LeadingAsterisk:
		case doctree.Text:
			if strings.TrimSpace(n.Text()) != "" {
				return false
			}
		default:
			return false
		}
	}

	return true
}
