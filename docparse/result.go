package docparse

import (
	"fmt"
	"strings"

	"go.jacobcolvin.com/doclint/doctree"
	"go.jacobcolvin.com/doclint/markup"
)

// Message keys for parse failures.
const (
	// MsgMissedHTMLClose is reported for an element that must be closed
	// explicitly but is not. Arguments: column, element name.
	MsgMissedHTMLClose = "javadoc.missed.html.close"
	// MsgWrongSingletonTag is reported for a closing tag of an element that
	// can never have content. Arguments: column, element name.
	MsgWrongSingletonTag = "javadoc.wrong.singleton.html.tag"
	// MsgParseRuleError is reported when a construct is never terminated.
	// Arguments: column, detail, rule name.
	MsgParseRuleError = "javadoc.parse.rule.error"
	// MsgUnclosedHTMLTag is reported by checks that reject non-tight
	// markup. Arguments: element name.
	MsgUnclosedHTMLTag = "javadoc.unclosed.html.tag"
)

// Comment is the raw text of one documentation comment.
type Comment struct {
	// Lines holds the comment text split into lines. Lines[0] starts with
	// the opening "/**" and the last line ends with the closing "*/".
	Lines []string
	// Line is the 1-based source line of Lines[0].
	Line int
	// Column is the 0-based source column of the opening "/**".
	Column int
}

// IsDocComment reports whether lines form a documentation comment rather
// than an ordinary block comment.
func IsDocComment(lines []string) bool {
	if len(lines) == 0 {
		return false
	}

	first := lines[0]

	return strings.HasPrefix(first, "/**") && !strings.HasPrefix(first, "/**/")
}

// Error describes the first construct the parser could not handle.
type Error struct {
	Key    string
	Args   []any
	Line   int
	Column int
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s %v", e.Line, e.Key, e.Args)
}

// Result is the outcome of parsing one comment. Exactly one of Tree and
// Error is non-nil.
type Result struct {
	// Tree is the parsed comment, or nil when parsing failed.
	Tree *doctree.Tree
	// Error is the parse failure, or nil when parsing succeeded.
	Error *Error
	// FirstNonTight is the start (or orphan end) node of the first element
	// whose closing was implied rather than written.
	FirstNonTight *doctree.Node
	// NonTightTag is the element name of FirstNonTight.
	NonTightTag string
	// Tags holds the markup tags scanned from the raw comment text.
	Tags []markup.Tag
	// Markup holds the tag balance diagnostics for Tags. It is computed
	// whether or not the tree could be built.
	Markup []markup.Diagnostic
	// NonTight is set when the tree contains elements whose closing was
	// implied.
	NonTight bool
}

// Root returns the tree root, or nil when parsing failed.
func (r *Result) Root() *doctree.Node {
	if r.Tree == nil {
		return nil
	}

	return r.Tree.Root()
}

// ElementName returns the element name of an [doctree.HTMLElement],
// [doctree.HTMLElementStart] or [doctree.HTMLElementEnd] node.
func ElementName(n *doctree.Node) string {
	if n == nil {
		return ""
	}

	if n.Type() == doctree.HTMLElement {
		tag := n.FindFirstChildOfType(doctree.HTMLElementStart)
		if tag == nil {
			tag = n.FindFirstChildOfType(doctree.HTMLElementEnd)
		}

		if tag == nil {
			return ""
		}

		n = tag
	}

	if name := n.FindFirstChildOfType(doctree.HTMLTagName); name != nil {
		return name.Text()
	}

	return ""
}
