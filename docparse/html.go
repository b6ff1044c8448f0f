package docparse

import (
	"strings"

	"go.jacobcolvin.com/doclint/doctree"
	"go.jacobcolvin.com/doclint/markup"
)

// htmlComment parses "<!-- ... -->", which may span lines.
func (p *parser) htmlComment(parent doctree.ID) {
	line, col := p.pos()
	id := p.b.Open(parent, doctree.HTMLComment)

	for {
		rest := p.cur()
		if i := strings.Index(rest, "-->"); i >= 0 {
			p.leaf(id, doctree.Text, i+3)

			return
		}

		if rest != "" {
			p.leaf(id, doctree.Text, len(rest))
		}

		if p.lastLine() {
			p.fail(line, MsgParseRuleError, col, "unterminated markup comment", "HTML_COMMENT")

			return
		}

		p.frame(id)
	}
}

// htmlTag parses an opening or closing markup tag at the cursor.
func (p *parser) htmlTag(parent doctree.ID) {
	if strings.HasPrefix(p.cur(), "</") {
		p.closeTag()

		return
	}

	p.openTag(parent)
}

func (p *parser) openTag(parent doctree.ID) {
	line, col := p.pos()
	name := identRun(p.cur()[1:])

	for n := p.open.Len(); n > 0; n = p.open.Len() {
		top := p.open.At(n - 1)
		if !closedBy(top.name, name) {
			break
		}

		p.markNonTight(top.start, top.name, top.line, top.column)
		p.open.Truncate(n - 1)
		parent = p.container()
	}

	elem := p.b.Open(parent, doctree.HTMLElement)
	start := p.b.Open(elem, doctree.HTMLElementStart)
	p.leaf(start, doctree.Start, 1)
	p.leaf(start, doctree.HTMLTagName, len(name))

	selfClosed, ok := p.attributes(start)
	if !ok {
		p.fail(line, MsgParseRuleError, col, "unterminated markup tag <"+name, "HTML_TAG")

		return
	}

	if selfClosed || markup.IsVoid(name) {
		return
	}

	p.open.Push(element{
		name:   name,
		id:     elem,
		start:  start,
		line:   line,
		column: col,
	})
}

func (p *parser) closeTag() {
	line, col := p.pos()
	name := identRun(p.cur()[2:])

	if markup.IsVoid(name) {
		p.fail(line, MsgWrongSingletonTag, col, name)

		return
	}

	var (
		elem   doctree.ID
		orphan bool
	)

	if k := p.open.Index(name); k >= 0 {
		for i := p.open.Len() - 1; i > k; i-- {
			e := p.open.At(i)
			if !markup.IsOptionalClose(e.name) {
				p.fail(e.line, MsgMissedHTMLClose, e.column, e.name)

				return
			}

			p.markNonTight(e.start, e.name, e.line, e.column)
		}

		elem = p.open.At(k).id
		p.open.Truncate(k)
	} else {
		elem = p.b.Open(p.container(), doctree.HTMLElement)
		orphan = true
	}

	end := p.b.Open(elem, doctree.HTMLElementEnd)
	p.leaf(end, doctree.Start, 1)
	p.leaf(end, doctree.Slash, 1)

	if name != "" {
		p.leaf(end, doctree.HTMLTagName, len(name))
	}

	if _, ok := p.attributes(end); !ok {
		p.fail(line, MsgParseRuleError, col, "unterminated markup tag </"+name, "HTML_TAG")

		return
	}

	if orphan {
		p.markNonTight(end, name, line, col)
	}
}

// attributes consumes attributes up to and including the ">" or "/>" that
// ends a tag. The tag may span lines. It reports whether the tag was
// self-closing and whether an end was found at all.
func (p *parser) attributes(parent doctree.ID) (selfClosed, ok bool) {
	for {
		if p.eol() {
			if p.lastLine() {
				return false, false
			}

			p.frame(parent)

			continue
		}

		rest := p.cur()

		switch {
		case isSpace(rest[0]):
			p.ws(parent)

		case rest[0] == '>':
			p.leaf(parent, doctree.End, 1)

			return false, true

		case strings.HasPrefix(rest, "/>"):
			p.leaf(parent, doctree.SlashEnd, 2)

			return true, true

		default:
			p.attribute(parent)
		}
	}
}

// attribute parses `name`, `name=value`, `name="value"` or `name='value'`.
func (p *parser) attribute(parent doctree.ID) {
	rest := p.cur()

	n := 0
	for n < len(rest) && !isSpace(rest[n]) && rest[n] != '=' && rest[n] != '>' &&
		!strings.HasPrefix(rest[n:], "/>") {
		n++
	}

	if n == 0 {
		p.text(parent, 1)

		return
	}

	attr := p.b.Open(parent, doctree.Attribute)
	p.leaf(attr, doctree.HTMLTagName, n)

	rest = p.cur()

	eq := spaceLen(rest)
	if eq >= len(rest) || rest[eq] != '=' {
		return
	}

	p.ws(attr)
	p.leaf(attr, doctree.Equals, 1)
	p.ws(attr)

	rest = p.cur()
	if rest == "" {
		return
	}

	var v int

	switch q := rest[0]; q {
	case '"', '\'':
		v = len(rest)
		if i := strings.IndexByte(rest[1:], q); i >= 0 {
			v = i + 2
		}

	default:
		for v < len(rest) && !isSpace(rest[v]) && rest[v] != '>' && !strings.HasPrefix(rest[v:], "/>") {
			v++
		}
	}

	if v > 0 {
		p.leaf(attr, doctree.AttrValue, v)
	}
}

// closedBy reports whether an open element named open is closed implicitly
// when an element named next starts.
func closedBy(open, next string) bool {
	open, next = strings.ToLower(open), strings.ToLower(next)
	if !markup.IsOptionalClose(open) {
		return false
	}

	switch open {
	case "p":
		return blockElements[next]
	case "li":
		return next == "li"
	case "dt", "dd":
		return next == "dt" || next == "dd"
	case "td", "th":
		return next == "td" || next == "th" || next == "tr"
	case "tr":
		return next == "tr"
	case "option":
		return next == "option"
	case "thead", "tbody":
		return next == "tbody" || next == "tfoot"
	}

	return false
}

var blockElements = map[string]bool{
	"p": true, "div": true, "table": true, "ul": true, "ol": true,
	"dl": true, "pre": true, "blockquote": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "hr": true,
}
