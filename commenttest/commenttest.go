// Package commenttest provides helpers for building documentation comment
// fixtures in tests.
package commenttest

import (
	"strings"

	"go.jacobcolvin.com/doclint/docparse"
)

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := commenttest.JoinLF(
//		"JAVADOC [1:3]",
//		"  EOF -> \"\" [1:4]",
//	) // -> "JAVADOC [1:3]\n  EOF -> \"\" [1:4]"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// Input removes one leading and one trailing newline from s, then strips
// the indentation common to every non-blank line. It lets fixtures be
// written as indented raw string literals.
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	if indent <= 0 {
		return s
	}

	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}

	return strings.Join(lines, "\n")
}

// Comment builds a [docparse.Comment] from text, which is passed through
// [Input] first. The comment starts at the given 1-based line and 0-based
// column.
func Comment(line, column int, text string) docparse.Comment {
	return docparse.Comment{
		Lines:  strings.Split(Input(text), "\n"),
		Line:   line,
		Column: column,
	}
}

// Lines builds a [docparse.Comment] at line 1, column 0 from explicit lines.
func Lines(lines ...string) docparse.Comment {
	return docparse.Comment{Lines: lines, Line: 1}
}
