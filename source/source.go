// Package source finds the documentation comments of Java source files and
// describes the declarations they document well enough for tag placement
// and parameter checks.
//
// Files are parsed with the tree-sitter Java grammar. A documentation
// comment documents the node that follows it among its siblings, skipping
// ordinary comments. A comment followed by another documentation comment,
// by a statement that declares nothing, or by nothing at all gets a
// [Declaration] of kind [doctree.DeclUnknown].
package source

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"go.jacobcolvin.com/doclint/docparse"
)

// File holds the documentation comments of one source file.
type File struct {
	Path     string
	Comments []Comment
}

// Comment is a documentation comment with its declaration.
type Comment struct {
	Declaration *Declaration
	docparse.Comment
}

// Extract returns the documentation comments of src in source order.
// A parser is created per call, so Extract may run concurrently.
func Extract(ctx context.Context, path string, src []byte) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	f := &File{Path: path}
	f.collect(tree.RootNode(), src)

	return f, nil
}

// ReadFile reads and extracts the file at path.
func ReadFile(ctx context.Context, path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Extract(ctx, path, src)
}

func (f *File) collect(n *sitter.Node, src []byte) {
	for i := range int(n.ChildCount()) {
		c := n.Child(i)

		if lines, ok := docLines(c, src); ok {
			f.Comments = append(f.Comments, Comment{
				Comment: docparse.Comment{
					Lines:  lines,
					Line:   int(c.StartPoint().Row) + 1,
					Column: int(c.StartPoint().Column),
				},
				Declaration: declare(documented(c, src), src),
			})

			continue
		}

		f.collect(c, src)
	}
}

// isComment reports whether n is a comment of any style. Grammar versions
// differ between a single "comment" type and "line_comment"/"block_comment".
func isComment(n *sitter.Node) bool {
	return strings.HasSuffix(n.Type(), "comment")
}

// docLines returns the lines of n when it is a documentation comment.
func docLines(n *sitter.Node, src []byte) ([]string, bool) {
	if !isComment(n) {
		return nil, false
	}

	lines := strings.Split(n.Content(src), "\n")
	if !docparse.IsDocComment(lines) {
		return nil, false
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines, true
}

// documented returns the sibling that the documentation comment n
// documents, or nil.
func documented(n *sitter.Node, src []byte) *sitter.Node {
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if !isComment(s) {
			if !s.IsNamed() {
				return nil
			}

			return s
		}

		if _, ok := docLines(s, src); ok {
			return nil
		}
	}

	return nil
}
