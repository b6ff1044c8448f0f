package doclint

import (
	"log/slog"

	"go.jacobcolvin.com/doclint/docparse"
	"go.jacobcolvin.com/doclint/doctree"
)

type fileCheck struct {
	check Check
	reg   *registration
}

// File is the analysis context of one source file. It owns the parse cache
// and the check instances for that file, so nothing it holds is shared with
// other files.
//
// A File is not safe for concurrent use. Comments must be processed in
// source order.
type File struct {
	engine   *Engine
	cache    *ParseCache
	path     string
	checks   []fileCheck
	findings []Finding
	done     bool
}

// Path returns the path of the file.
func (f *File) Path() string { return f.path }

// Cache returns the parse cache of the file.
func (f *File) Cache() *ParseCache { return f.cache }

// Process runs every check over one comment. Comments that are not
// documentation comments are ignored.
//
// When the comment cannot be parsed, one finding is reported for it,
// attributed to [ParserCheck], and no check sees a tree. When the tree
// holds implicitly closed markup, checks that do not accept such trees are
// skipped for the comment, and those registered with
// ViolateOnNonTightHTML report [docparse.MsgUnclosedHTMLTag] at the first
// implicitly closed element.
func (f *File) Process(c Comment) {
	if f.done || !docparse.IsDocComment(c.Lines) {
		return
	}

	parseErrorReported := false

	for _, fc := range f.checks {
		res := f.cache.GetOrParse(c.Comment)
		pass := &Pass{file: f, comment: &c, result: res, check: fc.reg.name}

		if res.Error != nil && !parseErrorReported {
			parseErrorReported = true

			f.reportParseError(res.Error)
		}

		if mc, ok := fc.check.(MarkupChecker); ok {
			mc.CheckMarkup(pass, res.Markup)
		}

		if res.Error != nil {
			continue
		}

		if res.NonTight && !acceptsNonTight(fc.check) {
			if fc.reg.violateNonTight {
				pass.ReportNode(res.FirstNonTight, docparse.MsgUnclosedHTMLTag, res.NonTightTag)
			}

			f.engine.logger.Debug("skipping comment with implicitly closed markup",
				slog.String("file", f.path),
				slog.Int("line", c.Line),
				slog.String("check", fc.reg.name),
				slog.String("tag", res.NonTightTag),
			)

			continue
		}

		walkCheck(fc, pass, res.Root())
	}
}

// Findings returns the findings reported so far, in report order.
func (f *File) Findings() []Finding { return f.findings }

// Finish runs the file level callbacks, releases the parse cache and
// returns every finding of the file. Comments processed after Finish are
// ignored.
func (f *File) Finish() []Finding {
	if f.done {
		return f.findings
	}

	for _, fc := range f.checks {
		if ff, ok := fc.check.(FileFinisher); ok {
			ff.FinishFile(&Pass{file: f, check: fc.reg.name})
		}
	}

	f.cache.Clear()
	f.done = true

	return f.findings
}

func walkCheck(fc fileCheck, pass *Pass, root *doctree.Node) {
	if b, ok := fc.check.(TreeBeginner); ok {
		b.BeginTree(pass, root)
	}

	v := doctree.VisitorFuncs{
		OnVisit: func(n *doctree.Node) { fc.check.Visit(pass, n) },
	}

	if l, ok := fc.check.(Leaver); ok {
		v.OnLeave = func(n *doctree.Node) { l.Leave(pass, n) }
	}

	doctree.Walk(root, fc.reg.interest, v)

	if fin, ok := fc.check.(TreeFinisher); ok {
		fin.FinishTree(pass, root)
	}
}

func (f *File) reportParseError(err *docparse.Error) {
	f.engine.logger.Debug("comment parse failed",
		slog.String("file", f.path),
		slog.Int("line", err.Line),
		slog.String("key", err.Key),
	)

	f.report(ParserCheck, err.Line, 0, err.Key, err.Args)
}

func (f *File) report(check string, line, column int, key string, args []any) {
	f.findings = append(f.findings, Finding{
		File:    f.path,
		Check:   check,
		Key:     key,
		Args:    args,
		Message: f.engine.catalog.Format(key, args...),
		Line:    line,
		Column:  column,
	})
}
