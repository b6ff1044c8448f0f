package markup

import (
	"fmt"
	"slices"
)

// Message keys for [Diagnostic] values.
const (
	MsgUnclosedHTML  = "javadoc.unclosedHtml"
	MsgExtraHTML     = "javadoc.extraHtml"
	MsgIncompleteTag = "javadoc.incompleteTag"
)

// DiagnosticKind classifies a tag balance problem.
type DiagnosticKind int

const (
	// Unclosed is an element that was opened but never closed.
	Unclosed DiagnosticKind = iota + 1
	// Extra is a closing tag without a matching opening tag.
	Extra
	// IncompleteTag is a tag with no closing ">".
	IncompleteTag
)

func (k DiagnosticKind) String() string {
	switch k {
	case Unclosed:
		return "unclosed"
	case Extra:
		return "extra"
	case IncompleteTag:
		return "incomplete"
	}

	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is one tag balance problem.
type Diagnostic struct {
	Tag  Tag
	Kind DiagnosticKind
}

// Key returns the message key for d.
func (d Diagnostic) Key() string {
	switch d.Kind {
	case Unclosed:
		return MsgUnclosedHTML
	case Extra:
		return MsgExtraHTML
	case IncompleteTag:
		return MsgIncompleteTag
	}

	panic(fmt.Sprintf("markup: unknown diagnostic kind %d", int(d.Kind)))
}

// Args returns the message arguments for d: the full line for incomplete
// tags, the tag text otherwise.
func (d Diagnostic) Args() []any {
	if d.Kind == IncompleteTag {
		return []any{d.Tag.LineText}
	}

	return []any{d.Tag.String()}
}

// ValidateOption configures [Validate].
type ValidateOption func(*validator)

// WithIgnored excludes elements with the given IDs from the unclosed
// elements reported at the end of the comment. Use it for the type
// parameter names of the documented declaration.
func WithIgnored(ids ...string) ValidateOption {
	return func(v *validator) {
		v.ignored = append(v.ignored, ids...)
	}
}

type validator struct {
	ignored []string
	stack   *Stack[Tag]
	diags   []Diagnostic
}

// Validate checks the balance of tags, as returned by [Scan], and returns
// the problems in the order they are found.
//
// Opening tags for allowed, non-self-closed elements are pushed on a stack.
// A closing tag with no case-insensitive match on the stack is [Extra].
// Otherwise the stack is popped down to the match, and every popped
// non-singleton element above it is [Unclosed], reported in the order the
// elements were opened. Elements still open at the end are [Unclosed], in
// the order they were opened, skipping adjacent repeats of the same ID. An
// incomplete tag stops validation and is the last diagnostic.
func Validate(tags []Tag, opts ...ValidateOption) []Diagnostic {
	v := &validator{stack: NewStack(func(t Tag) string { return t.ID })}
	for _, opt := range opts {
		opt(v)
	}

	for _, tag := range tags {
		switch {
		case tag.Incomplete:
			v.report(IncompleteTag, tag)

			return v.diags

		case tag.SelfClosed:
			continue

		case !tag.Closing:
			if IsAllowed(tag.ID) {
				v.stack.Push(tag)
			}

		case v.stack.Index(tag.ID) < 0:
			v.report(Extra, tag)

		default:
			v.close(tag.ID)
		}
	}

	last := ""

	for _, tag := range v.stack.Items() {
		if IsSingleton(tag.ID) || tag.ID == last || slices.Contains(v.ignored, tag.ID) {
			continue
		}

		v.report(Unclosed, tag)
		last = tag.ID
	}

	return v.diags
}

func (v *validator) report(kind DiagnosticKind, tag Tag) {
	v.diags = append(v.diags, Diagnostic{Kind: kind, Tag: tag})
}

// close pops the stack down to and including the innermost open element
// named id, reporting the unclosed elements above it.
func (v *validator) close(id string) {
	i := v.stack.Index(id)

	last := ""

	for _, tag := range v.stack.Items()[i+1:] {
		if IsSingleton(tag.ID) || tag.ID == last {
			continue
		}

		v.report(Unclosed, tag)
		last = tag.ID
	}

	v.stack.Truncate(i)
}
