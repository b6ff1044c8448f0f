// Package preferinlinetags suggests inline tags over equivalent markup:
// {@code} over <code>, {@link} over in-page anchors, and {@literal} over
// the &lt; and &gt; entities.
//
// Content of <pre> elements is not checked, nor is the text of {@code} and
// {@literal} tags.
package preferinlinetags

import (
	"strings"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/docparse"
	"go.jacobcolvin.com/doclint/doctree"
)

// Name is the registry name of the check.
const Name = "prefer-inline-tags"

// MsgKey is reported for markup with an inline tag equivalent. Arguments:
// the suggested inline tag, the markup found.
const MsgKey = "prefer.javadoc.inline.tag"

var defaultTypes = doctree.NewTypeSet(doctree.HTMLElement, doctree.Text, doctree.JavadocInlineTag)

var entities = []struct {
	entity  string
	literal string
}{
	{entity: "&lt;", literal: "{@literal <}"},
	{entity: "&gt;", literal: "{@literal >}"},
}

// Check reports markup that an inline tag expresses better.
type Check struct {
	// pre and literal count the enclosing <pre> elements and {@code} or
	// {@literal} tags of the node being visited.
	pre     int
	literal int
}

// New returns the check.
func New() *Check { return &Check{} }

// Name returns the check name.
func (c *Check) Name() string { return Name }

// DefaultTypes returns [doctree.HTMLElement], [doctree.Text] and
// [doctree.JavadocInlineTag].
func (c *Check) DefaultTypes() doctree.TypeSet { return defaultTypes }

// AcceptableTypes returns the default types.
func (c *Check) AcceptableTypes() doctree.TypeSet { return defaultTypes }

// RequiredTypes returns the default types.
func (c *Check) RequiredTypes() doctree.TypeSet { return defaultTypes }

// Messages returns the message templates of the check.
func (c *Check) Messages() map[string]string {
	return map[string]string{MsgKey: "Prefer Javadoc inline tag '%s' over '%s'."}
}

// ForFile returns a fresh instance.
func (c *Check) ForFile(string) doclint.Check { return New() }

// BeginTree resets the nesting counts.
func (c *Check) BeginTree(*doclint.Pass, *doctree.Node) {
	c.pre, c.literal = 0, 0
}

// Visit checks one element or text node.
func (c *Check) Visit(pass *doclint.Pass, n *doctree.Node) {
	inPre := c.pre > 0
	c.enter(n, 1)

	if inPre {
		return
	}

	switch n.Type() {
	case doctree.HTMLElement:
		visitElement(pass, n)
	case doctree.Text:
		if c.literal > 0 {
			return
		}

		text := n.Text()
		for _, e := range entities {
			for off := 0; ; {
				i := strings.Index(text[off:], e.entity)
				if i < 0 {
					break
				}

				pass.ReportAt(n.Line(), n.Column()+off+i+1, MsgKey, e.literal, e.entity)
				off += i + len(e.entity)
			}
		}
	}
}

func visitElement(pass *doclint.Pass, n *doctree.Node) {
	start := n.FindFirstChildOfType(doctree.HTMLElementStart)
	if start == nil {
		return
	}

	switch strings.ToLower(docparse.ElementName(n)) {
	case "code":
		pass.ReportNode(n, MsgKey, "{@code ...}", "<code>")
	case "a":
		for _, attr := range start.FindChildrenOfType(doctree.Attribute) {
			name := attr.FindFirstChildOfType(doctree.HTMLTagName)
			value := attr.FindFirstChildOfType(doctree.AttrValue)

			if name == nil || value == nil || !strings.EqualFold(name.Text(), "href") {
				continue
			}

			v := strings.Trim(value.Text(), `"'`)
			if strings.HasPrefix(v, "#") {
				pass.ReportNode(n, MsgKey, "{@link ...}", `<a href="#...">`)
			}
		}
	}
}

// Leave closes the scope opened by n.
func (c *Check) Leave(_ *doclint.Pass, n *doctree.Node) {
	c.enter(n, -1)
}

// enter adds delta to the count n belongs to, if any.
func (c *Check) enter(n *doctree.Node, delta int) {
	switch n.Type() {
	case doctree.HTMLElement:
		if strings.EqualFold(docparse.ElementName(n), "pre") {
			c.pre += delta
		}
	case doctree.JavadocInlineTag:
		tag, ok := lookupInline(n)
		if ok && (tag == doctree.TagCode || tag == doctree.TagLiteral) {
			c.literal += delta
		}
	}
}

func lookupInline(n *doctree.Node) (doctree.Tag, bool) {
	start := n.FirstChild()
	if start == nil || start.NextSibling() == nil {
		return 0, false
	}

	return doctree.TagForLiteral(start.NextSibling().Type())
}
