package doclint

import (
	"fmt"
	"maps"

	"go.jacobcolvin.com/doclint/docparse"
	"go.jacobcolvin.com/doclint/markup"
)

// ParserCheck is the check name findings for parse failures are attributed
// to.
const ParserCheck = "parser"

// Finding is one reported problem.
type Finding struct {
	File    string `json:"file"              yaml:"file"`
	Check   string `json:"check"             yaml:"check"`
	Key     string `json:"key"               yaml:"key"`
	Message string `json:"message"           yaml:"message"`
	Args    []any  `json:"args,omitempty"    yaml:"args,omitempty"`
	Line    int    `json:"line"              yaml:"line"`
	// Column is 1-based. Zero means the finding has no column.
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
}

// String formats f as "path:line:col: message [check]".
func (f Finding) String() string {
	if f.Column > 0 {
		return fmt.Sprintf("%s:%d:%d: %s [%s]", f.File, f.Line, f.Column, f.Message, f.Check)
	}

	return fmt.Sprintf("%s:%d: %s [%s]", f.File, f.Line, f.Message, f.Check)
}

// Catalog maps message keys to [fmt] format strings.
type Catalog map[string]string

// DefaultCatalog returns the templates for the messages produced by the
// parser and the markup validator.
func DefaultCatalog() Catalog {
	return Catalog{
		docparse.MsgMissedHTMLClose: "Javadoc comment at column %d has parse error. " +
			"Missed HTML close tag '%s'. Sometimes it means that close tag missed for one of previous tags.",
		docparse.MsgWrongSingletonTag: "Javadoc comment at column %d has parse error. " +
			"It is forbidden to close singleton HTML tags. Tag: %s.",
		docparse.MsgParseRuleError: "Javadoc comment at column %d has parse error. Details: %s while parsing %s",
		docparse.MsgUnclosedHTMLTag: "Unclosed HTML tag found: %s",
		markup.MsgUnclosedHTML:      "Unclosed HTML tag found: %s",
		markup.MsgExtraHTML:         "Extra HTML tag found: %s",
		markup.MsgIncompleteTag:     "Incomplete HTML tag found: %s",
	}
}

// Merge adds the templates of other, replacing existing keys.
func (c Catalog) Merge(other map[string]string) {
	maps.Copy(c, other)
}

// Format renders the message for key. Unknown keys render as the key
// followed by the arguments.
func (c Catalog) Format(key string, args ...any) string {
	tmpl, ok := c[key]
	if !ok {
		if len(args) == 0 {
			return key
		}

		return fmt.Sprintf("%s %v", key, args)
	}

	return fmt.Sprintf(tmpl, args...)
}
