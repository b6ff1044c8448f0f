package doclint_test

import (
	"fmt"

	"go.jacobcolvin.com/doclint/commenttest"
	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
	"go.jacobcolvin.com/doclint/markup"
)

// recorder is a configurable check that logs every callback.
type recorder struct {
	events      *[]string
	name        string
	defaults    doctree.TypeSet
	acceptable  doctree.TypeSet
	required    doctree.TypeSet
	files       int
	rejectTight bool
	report      bool
}

func newRecorder(name string, events *[]string, types ...doctree.Type) *recorder {
	set := doctree.NewTypeSet(types...)

	return &recorder{
		name:       name,
		events:     events,
		defaults:   set,
		acceptable: set,
	}
}

func (r *recorder) Name() string                     { return r.name }
func (r *recorder) DefaultTypes() doctree.TypeSet    { return r.defaults }
func (r *recorder) AcceptableTypes() doctree.TypeSet { return r.acceptable }
func (r *recorder) RequiredTypes() doctree.TypeSet   { return r.required }
func (r *recorder) AcceptsNonTightHTML() bool        { return !r.rejectTight }

func (r *recorder) ForFile(string) doclint.Check {
	clone := *r
	clone.files = 0

	return &clone
}

func (r *recorder) log(format string, args ...any) {
	if r.events != nil {
		*r.events = append(*r.events, r.name+" "+fmt.Sprintf(format, args...))
	}
}

func (r *recorder) Visit(pass *doclint.Pass, n *doctree.Node) {
	r.log("visit %s", n.Type())

	if r.report {
		pass.ReportNode(n, "test.visit", n.Type().String())
	}
}

func (r *recorder) Leave(_ *doclint.Pass, n *doctree.Node) {
	r.log("leave %s", n.Type())
}

func (r *recorder) BeginTree(_ *doclint.Pass, root *doctree.Node) {
	r.files++
	r.log("begin %d", root.Line())
}

func (r *recorder) FinishTree(_ *doclint.Pass, root *doctree.Node) {
	r.log("finish %d", root.Line())
}

func (r *recorder) FinishFile(pass *doclint.Pass) {
	pass.Report(0, "test.trees", r.files)
}

func (r *recorder) Messages() map[string]string {
	return map[string]string{
		"test.visit": "visited %s",
		"test.trees": "%d trees",
	}
}

// markupRecorder collects markup diagnostics.
type markupRecorder struct {
	diags *[]markup.Diagnostic
	*recorder
}

func (m *markupRecorder) ForFile(string) doclint.Check { return m }

func (m *markupRecorder) CheckMarkup(_ *doclint.Pass, diags []markup.Diagnostic) {
	*m.diags = append(*m.diags, diags...)
}

func comment(line int, text string) doclint.Comment {
	return doclint.Comment{Comment: commenttest.Comment(line, 0, text)}
}
