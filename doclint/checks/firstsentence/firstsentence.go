// Package firstsentence checks the main description of documentation
// comments: its first sentence must end with a period, question mark or
// exclamation mark, and, optionally, it must not be empty.
//
// A comment consisting of only {@inheritDoc} is accepted on declarations
// that can inherit documentation.
//
// Options:
//
//	checkFirstSentence: true      # default true
//	checkEmptyJavadoc: false      # default false
//	endOfSentenceFormat: '([.?!][ \t\n\r\f<])|([.?!]$)'
package firstsentence

import (
	"fmt"
	"regexp"
	"strings"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
)

// Name is the registry name of the check.
const Name = "first-sentence"

// Message keys.
const (
	MsgNoPeriod = "javadoc.noperiod"
	MsgEmpty    = "javadoc.empty"
)

// DefaultEndOfSentence matches the end of the first sentence.
const DefaultEndOfSentence = `([.?!][ \t\n\r\f<])|([.?!]$)`

const inheritDoc = "{@inheritDoc}"

// Options configure the check.
type Options struct {
	CheckFirstSentence  *bool  `yaml:"checkFirstSentence"`
	CheckEmptyJavadoc   *bool  `yaml:"checkEmptyJavadoc"`
	EndOfSentenceFormat string `yaml:"endOfSentenceFormat"`
}

// Check reports comments whose first sentence is not terminated.
type Check struct {
	endOfSentence *regexp.Regexp
	firstSentence bool
	empty         bool
}

// New returns the check with default options.
func New() *Check {
	return &Check{
		endOfSentence: regexp.MustCompile(DefaultEndOfSentence),
		firstSentence: true,
	}
}

// Name returns the check name.
func (c *Check) Name() string { return Name }

// DefaultTypes returns [doctree.Javadoc].
func (c *Check) DefaultTypes() doctree.TypeSet { return doctree.NewTypeSet(doctree.Javadoc) }

// AcceptableTypes returns the default types.
func (c *Check) AcceptableTypes() doctree.TypeSet { return c.DefaultTypes() }

// RequiredTypes returns the default types.
func (c *Check) RequiredTypes() doctree.TypeSet { return c.DefaultTypes() }

// AcceptsNonTightHTML returns false: sentence boundaries inside implicitly
// closed elements are ambiguous.
func (c *Check) AcceptsNonTightHTML() bool { return false }

// Configure applies [Options].
func (c *Check) Configure(options map[string]any) error {
	var opts Options

	err := doclint.DecodeOptions(options, &opts)
	if err != nil {
		return err
	}

	if opts.CheckFirstSentence != nil {
		c.firstSentence = *opts.CheckFirstSentence
	}

	if opts.CheckEmptyJavadoc != nil {
		c.empty = *opts.CheckEmptyJavadoc
	}

	if opts.EndOfSentenceFormat != "" {
		re, err := regexp.Compile(opts.EndOfSentenceFormat)
		if err != nil {
			return fmt.Errorf("endOfSentenceFormat: %w", err)
		}

		c.endOfSentence = re
	}

	return nil
}

// Messages returns the message templates of the check.
func (c *Check) Messages() map[string]string {
	return map[string]string{
		MsgNoPeriod: "First sentence should end with a period.",
		MsgEmpty:    "Javadoc has empty description section.",
	}
}

// ForFile returns c, which has no per-file state.
func (c *Check) ForFile(string) doclint.Check { return c }

// Visit checks the main description of a comment root.
func (c *Check) Visit(pass *doclint.Pass, root *doctree.Node) {
	text := Description(root)
	line := pass.Comment().Line

	if text == "" {
		if c.empty {
			pass.Report(line, MsgEmpty)
		}

		return
	}

	if !c.firstSentence || c.endOfSentence.MatchString(text) {
		return
	}

	if text == inheritDoc {
		if d, ok := pass.Declaration().(doctree.Declaration); ok && doctree.ValidOn(doctree.TagInheritDoc, d) {
			return
		}
	}

	pass.Report(line, MsgNoPeriod)
}

// Description returns the main description of a comment: the text before
// the first block tag, without leading asterisks, with every line trimmed
// and blank lines dropped.
func Description(root *doctree.Node) string {
	var sb strings.Builder

	for _, n := range root.Children() {
		if n.Type() == doctree.JavadocTag {
			break
		}

		writeText(&sb, n)
	}

	return joinLines(sb.String())
}

func writeText(sb *strings.Builder, n *doctree.Node) {
	switch n.Type() {
	case doctree.LeadingAsterisk, doctree.EOF:
	case doctree.Newline:
		sb.WriteByte('\n')
	default:
		if n.ChildCount() == 0 {
			sb.WriteString(n.Text())

			return
		}

		for _, c := range n.Children() {
			writeText(sb, c)
		}
	}
}

func joinLines(s string) string {
	var lines []string

	for line := range strings.SplitSeq(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}
