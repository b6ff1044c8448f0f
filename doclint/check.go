package doclint

import (
	"go.jacobcolvin.com/doclint/docparse"
	"go.jacobcolvin.com/doclint/doctree"
	"go.jacobcolvin.com/doclint/markup"
)

// Comment is one comment handed over by the host front end.
type Comment struct {
	// Declaration is the element the comment documents. The engine passes
	// it through to checks untouched; checks that need it type-assert it
	// to [doctree.Declaration].
	Declaration any
	docparse.Comment
}

// Check is a single rule that inspects parsed documentation comments.
//
// Check values stored in a [Registry] or passed to [Engine.Register] act as
// configured prototypes. [Check.ForFile] is called once for every analyzed
// file and must return an instance whose mutable state is not shared with
// any other file, since files may be analyzed concurrently. A check that
// really wants state spanning files may return its receiver, in which case
// it must synchronize that state itself.
type Check interface {
	// Name identifies the check in configuration and in findings.
	Name() string

	// DefaultTypes is the set of node types the check visits when the
	// configuration does not select any.
	DefaultTypes() doctree.TypeSet

	// AcceptableTypes is the set configuration may select from.
	AcceptableTypes() doctree.TypeSet

	// RequiredTypes is always visited whatever the configuration selects.
	// It must be a subset of DefaultTypes.
	RequiredTypes() doctree.TypeSet

	// ForFile returns the instance used for one file.
	ForFile(path string) Check

	// Visit is called for every node of an interesting type, in document
	// order.
	Visit(pass *Pass, n *doctree.Node)
}

// Leaver is implemented by checks that want a callback once every
// descendant of an interesting node has been visited.
type Leaver interface {
	Leave(pass *Pass, n *doctree.Node)
}

// TreeBeginner is implemented by checks that want a callback before the
// first node of each comment is visited.
type TreeBeginner interface {
	BeginTree(pass *Pass, root *doctree.Node)
}

// TreeFinisher is implemented by checks that want a callback after each
// comment has been walked.
type TreeFinisher interface {
	FinishTree(pass *Pass, root *doctree.Node)
}

// FileFinisher is implemented by checks that aggregate over a whole file.
// [Pass.Comment] is nil during the call.
type FileFinisher interface {
	FinishFile(pass *Pass)
}

// NonTightAcceptor is implemented by checks that decide whether they can
// work on trees with implicitly closed markup elements. Checks that do not
// implement it accept such trees.
type NonTightAcceptor interface {
	AcceptsNonTightHTML() bool
}

// MarkupChecker is implemented by checks that consume the tag balance
// diagnostics of every documentation comment. CheckMarkup is called even
// when the comment could not be parsed into a tree.
type MarkupChecker interface {
	CheckMarkup(pass *Pass, diags []markup.Diagnostic)
}

// Configurable is implemented by checks that take options. Configure is
// called on the prototype once, at registration, with the options from the
// configuration file. See [DecodeOptions].
type Configurable interface {
	Configure(options map[string]any) error
}

// MessageProvider is implemented by checks that bring their own message
// templates. The templates are added to the engine [Catalog].
type MessageProvider interface {
	Messages() map[string]string
}

func acceptsNonTight(c Check) bool {
	if a, ok := c.(NonTightAcceptor); ok {
		return a.AcceptsNonTightHTML()
	}

	return true
}
