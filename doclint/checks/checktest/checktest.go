// Package checktest runs single checks over comment fixtures.
package checktest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/commenttest"
	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
)

// Decl is a [doctree.Declaration] built from literal values.
type Decl struct {
	DeclName   string
	Return     string
	Mods       []string
	TypeParams []string
	Params     []string
	DeclKind   doctree.DeclKind
}

// Method returns a method declaration.
func Method(name, ret string, params ...string) *Decl {
	return &Decl{DeclKind: doctree.DeclMethod, DeclName: name, Return: ret, Params: params}
}

// Of returns a declaration of kind k named name.
func Of(k doctree.DeclKind, name string) *Decl {
	return &Decl{DeclKind: k, DeclName: name}
}

func (d *Decl) Kind() doctree.DeclKind   { return d.DeclKind }
func (d *Decl) Name() string             { return d.DeclName }
func (d *Decl) Modifiers() []string      { return d.Mods }
func (d *Decl) TypeParameters() []string { return d.TypeParams }
func (d *Decl) Parameters() []string     { return d.Params }
func (d *Decl) ReturnType() string       { return d.Return }

// Run registers c with cfg, processes text as a comment at line 1 documenting
// decl, and returns the rendered findings as "line:col: message [check]"
// without the file name. decl may be nil.
func Run(t *testing.T, c doclint.Check, cfg doclint.CheckConfig, decl doctree.Declaration, text string) []string {
	t.Helper()

	e := doclint.NewEngine()
	require.NoError(t, e.Register(c, cfg))

	f := e.NewFile("")

	comment := doclint.Comment{Comment: commenttest.Comment(1, 0, text)}
	if decl != nil {
		comment.Declaration = decl
	}

	f.Process(comment)

	var out []string
	for _, finding := range f.Finish() {
		out = append(out, finding.String()[1:])
	}

	return out
}
