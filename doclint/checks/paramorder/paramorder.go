// Package paramorder checks that @param tags follow the order of the
// documented parameters.
//
// Type parameters come first, in declaration order, followed by the
// parameters. Tags for names the declaration does not have are ignored, as
// are comments on declarations without parameters.
package paramorder

import (
	"slices"
	"strings"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
)

// Name is the registry name of the check.
const Name = "param-order"

// MsgKey is reported for an @param tag that is out of order. Argument: the
// parameter name.
const MsgKey = "javadoc.tag.order"

// Check reports @param tags that are out of order.
type Check struct{}

// New returns the check.
func New() *Check { return &Check{} }

// Name returns the check name.
func (c *Check) Name() string { return Name }

// DefaultTypes returns [doctree.Javadoc].
func (c *Check) DefaultTypes() doctree.TypeSet { return doctree.NewTypeSet(doctree.Javadoc) }

// AcceptableTypes returns the default types.
func (c *Check) AcceptableTypes() doctree.TypeSet { return c.DefaultTypes() }

// RequiredTypes returns the default types.
func (c *Check) RequiredTypes() doctree.TypeSet { return c.DefaultTypes() }

// Messages returns the message templates of the check.
func (c *Check) Messages() map[string]string {
	return map[string]string{MsgKey: "Javadoc @param for '%s' is out of order."}
}

// ForFile returns c, which has no state.
func (c *Check) ForFile(string) doclint.Check { return c }

type paramTag struct {
	name string
	line int
}

// Visit checks the @param tags of a comment root.
func (c *Check) Visit(pass *doclint.Pass, root *doctree.Node) {
	d, ok := pass.Declaration().(doctree.Declaration)
	if !ok || !hasParameters(d.Kind()) {
		return
	}

	var tags []paramTag

	for _, tag := range root.FindChildrenOfType(doctree.JavadocTag) {
		name := tag.FindFirstChildOfType(doctree.ParameterName)
		if tag.FirstChild().Type() != doctree.ParamLiteral || name == nil {
			continue
		}

		text := name.Text()
		if strings.HasPrefix(text, "<") && strings.HasSuffix(text, ">") {
			text = text[1 : len(text)-1]
		}

		tags = append(tags, paramTag{name: text, line: tag.Line()})
	}

	declared := slices.Concat(d.TypeParameters(), d.Parameters())
	misplaced := misplacedNames(tags, declared)

	for i, tag := range tags {
		bad, known := misplaced[tag.name]
		if !known {
			continue
		}

		if bad {
			pass.Report(tag.line, MsgKey, tag.name)

			continue
		}

		// A repeated tag is out of order once another tag came between.
		if i < len(tags)-1 && tags[i+1].name != tag.name {
			misplaced[tag.name] = true
		}
	}
}

// misplacedNames pairs the documented names that the declaration has, in
// documentation order, with the declared names that are documented, in
// declaration order. A name is misplaced when the two orders disagree at
// its position.
func misplacedNames(tags []paramTag, declared []string) map[string]bool {
	var documented []string

	for _, tag := range tags {
		if slices.Contains(declared, tag.name) && !slices.Contains(documented, tag.name) {
			documented = append(documented, tag.name)
		}
	}

	var expected []string

	for _, name := range declared {
		if slices.Contains(documented, name) {
			expected = append(expected, name)
		}
	}

	out := make(map[string]bool, len(documented))
	for i, name := range documented {
		out[name] = expected[i] != name
	}

	return out
}

func hasParameters(k doctree.DeclKind) bool {
	switch k {
	case doctree.DeclMethod, doctree.DeclConstructor, doctree.DeclClass,
		doctree.DeclInterface, doctree.DeclRecord:
		return true
	default:
		return false
	}
}
