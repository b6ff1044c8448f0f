// Package tagorder checks that block tags appear in a configured order.
//
// Tags missing from the order are ignored. A tag is reported when a tag
// that comes later in the order appeared before it in the same comment.
//
// Options:
//
//	tagOrder: ["@author", "@version", "@param", "@return"]
package tagorder

import (
	"fmt"
	"slices"
	"strings"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
)

// Name is the registry name of the check.
const Name = "tag-order"

// MsgKey is reported for a misplaced tag. Argument: the configured order.
const MsgKey = "at.clause.order"

// DefaultOrder is the tag order used without configuration.
var DefaultOrder = []string{
	"@author", "@version", "@param", "@return", "@throws", "@exception",
	"@see", "@since", "@serial", "@serialField", "@serialData", "@deprecated",
}

// Options configure the check.
type Options struct {
	TagOrder []string `yaml:"tagOrder"`
}

// Check reports block tags that are out of order.
type Check struct {
	order   []string
	display string
}

// New returns the check with [DefaultOrder].
func New() *Check {
	c := &Check{}
	c.setOrder(DefaultOrder)

	return c
}

// Name returns the check name.
func (c *Check) Name() string { return Name }

// DefaultTypes returns [doctree.Javadoc].
func (c *Check) DefaultTypes() doctree.TypeSet { return doctree.NewTypeSet(doctree.Javadoc) }

// AcceptableTypes returns the default types.
func (c *Check) AcceptableTypes() doctree.TypeSet { return c.DefaultTypes() }

// RequiredTypes returns the default types.
func (c *Check) RequiredTypes() doctree.TypeSet { return c.DefaultTypes() }

// Configure sets the tag order.
func (c *Check) Configure(options map[string]any) error {
	var opts Options

	err := doclint.DecodeOptions(options, &opts)
	if err != nil {
		return err
	}

	if len(opts.TagOrder) == 0 {
		return nil
	}

	for _, tag := range opts.TagOrder {
		if !strings.HasPrefix(tag, "@") || len(tag) < 2 {
			return fmt.Errorf("tagOrder: %q is not a block tag", tag)
		}
	}

	c.setOrder(opts.TagOrder)

	return nil
}

// Messages returns the message templates of the check.
func (c *Check) Messages() map[string]string {
	return map[string]string{MsgKey: "Block tags have to appear in the order '%s'."}
}

// ForFile returns c, which has no per-file state.
func (c *Check) ForFile(string) doclint.Check { return c }

// Visit checks the block tags of a comment root.
func (c *Check) Visit(pass *doclint.Pass, root *doctree.Node) {
	maxIndex := -1

	for _, tag := range root.FindChildrenOfType(doctree.JavadocTag) {
		lit := tag.FirstChild()
		if lit == nil {
			continue
		}

		idx := slices.Index(c.order, lit.Text())
		if idx < 0 {
			continue
		}

		if idx < maxIndex {
			pass.Report(tag.Line(), MsgKey, c.display)

			continue
		}

		maxIndex = idx
	}
}

func (c *Check) setOrder(order []string) {
	c.order = slices.Clone(order)
	c.display = "[" + strings.Join(order, ", ") + "]"
}
