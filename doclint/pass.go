package doclint

import (
	"go.jacobcolvin.com/doclint/docparse"
	"go.jacobcolvin.com/doclint/doctree"
)

// Pass is the side channel handed to check callbacks. It gives access to
// the comment being analyzed and records findings.
type Pass struct {
	file    *File
	comment *Comment
	result  *docparse.Result
	check   string
}

// File returns the path of the analyzed file.
func (p *Pass) File() string { return p.file.path }

// Check returns the name of the check the pass belongs to.
func (p *Pass) Check() string { return p.check }

// Comment returns the comment being analyzed, or nil in
// [FileFinisher.FinishFile].
func (p *Pass) Comment() *Comment { return p.comment }

// Result returns the parse result of the comment, or nil in
// [FileFinisher.FinishFile].
func (p *Pass) Result() *docparse.Result { return p.result }

// Declaration returns the declaration handle of the comment, or nil.
func (p *Pass) Declaration() any {
	if p.comment == nil {
		return nil
	}

	return p.comment.Declaration
}

// Report records a finding on a line without a column.
func (p *Pass) Report(line int, key string, args ...any) {
	p.file.report(p.check, line, 0, key, args)
}

// ReportAt records a finding at a 1-based column.
func (p *Pass) ReportAt(line, column int, key string, args ...any) {
	p.file.report(p.check, line, column, key, args)
}

// ReportNode records a finding at the position of n.
func (p *Pass) ReportNode(n *doctree.Node, key string, args ...any) {
	p.file.report(p.check, n.Line(), n.Column()+1, key, args)
}
