package docparse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.jacobcolvin.com/doclint/doctree"
	"go.jacobcolvin.com/doclint/markup"
)

// Parse parses one documentation comment.
//
// The result always carries the scanned markup tags and their balance
// diagnostics. When the comment cannot be parsed, the result holds the
// first failure and no tree.
func Parse(c Comment) *Result {
	tags := markup.Scan(c.Lines, c.Line, c.Column)
	res := &Result{
		Tags:   tags,
		Markup: markup.Validate(tags),
	}

	p := newParser(c)
	p.run()

	if p.err != nil {
		res.Error = p.err

		return res
	}

	res.Tree = p.b.Build()
	if p.nonTight != nil {
		res.NonTight = true
		res.FirstNonTight = res.Tree.Node(p.nonTight.node)
		res.NonTightTag = p.nonTight.name
	}

	return res
}

// element is an open markup element.
type element struct {
	name   string
	id     doctree.ID
	start  doctree.ID
	line   int
	column int
}

type parser struct {
	b        *doctree.Builder
	err      *Error
	nonTight *nonTight
	lines    []string
	offsets  []int
	open     *markup.Stack[element]
	line0    int
	ln, col  int
	tag      doctree.ID
	desc     doctree.ID
}

type nonTight struct {
	name         string
	node         doctree.ID
	line, column int
}

func newParser(c Comment) *parser {
	lines := make([]string, len(c.Lines))
	copy(lines, c.Lines)

	offsets := make([]int, len(lines))

	if len(lines) == 0 {
		lines = []string{""}
		offsets = []int{c.Column}
	}

	last := len(lines) - 1
	if i := strings.LastIndex(lines[last], "*/"); i >= 0 && (last > 0 || i >= 3) {
		lines[last] = lines[last][:i]
	}

	if strings.HasPrefix(lines[0], "/**") {
		lines[0] = lines[0][3:]
		offsets[0] = c.Column + 3
	} else {
		offsets[0] = c.Column
	}

	return &parser{
		b:       doctree.NewBuilder(doctree.Javadoc),
		lines:   lines,
		offsets: offsets,
		line0:   c.Line,
		tag:     doctree.NoID,
		desc:    doctree.NoID,
		open:    markup.NewStack(func(e element) string { return e.name }),
	}
}

func (p *parser) run() {
	p.startLine()

	for p.err == nil {
		if p.eol() {
			if p.lastLine() {
				break
			}

			p.nextLine()

			continue
		}

		p.item(p.container())
	}

	if p.err != nil {
		return
	}

	p.closeScope()

	if p.err != nil {
		return
	}

	line, col := p.pos()
	p.b.AddChild(p.b.Root(), doctree.EOF, "", line, col)
}

// Cursor helpers.

func (p *parser) cur() string { return p.lines[p.ln][p.col:] }

func (p *parser) eol() bool { return p.col >= len(p.lines[p.ln]) }

func (p *parser) lastLine() bool { return p.ln == len(p.lines)-1 }

func (p *parser) peek() byte {
	if p.eol() {
		return 0
	}

	return p.lines[p.ln][p.col]
}

func (p *parser) pos() (int, int) {
	return p.line0 + p.ln, p.offsets[p.ln] + p.col
}

// leaf adds the next n bytes of the current line as a leaf of parent.
func (p *parser) leaf(parent doctree.ID, t doctree.Type, n int) doctree.ID {
	line, col := p.pos()
	id := p.b.AddChild(parent, t, p.cur()[:n], line, col)
	p.col += n

	return id
}

// text adds the next n bytes as TEXT, or WS when they are all whitespace.
func (p *parser) text(parent doctree.ID, n int) {
	t := doctree.Text
	if strings.TrimLeft(p.cur()[:n], " \t\f\r") == "" {
		t = doctree.WS
	}

	p.leaf(parent, t, n)
}

// ws consumes a run of blanks on the current line into parent. It reports
// whether more content follows on the line.
func (p *parser) ws(parent doctree.ID) bool {
	n := spaceLen(p.cur())
	if n > 0 {
		p.leaf(parent, doctree.WS, n)
	}

	return !p.eol()
}

func (p *parser) fail(line int, key string, args ...any) {
	if p.err == nil {
		p.err = &Error{Line: line, Column: p.columnArg(args), Key: key, Args: args}
	}
}

func (p *parser) columnArg(args []any) int {
	if len(args) > 0 {
		if col, ok := args[0].(int); ok {
			return col
		}
	}

	return 0
}

// container returns the node new content is appended to: the innermost
// open element, else the description of the current block tag, else the
// root.
func (p *parser) container() doctree.ID {
	if n := p.open.Len(); n > 0 {
		return p.open.At(n - 1).id
	}

	if p.tag != doctree.NoID {
		if p.desc == doctree.NoID {
			p.desc = p.b.Open(p.tag, doctree.Description)
		}

		return p.desc
	}

	return p.b.Root()
}

// frame moves the cursor to the start of the next line, adding the newline
// and any leading asterisk to parent.
func (p *parser) frame(parent doctree.ID) {
	p.b.AddChild(parent, doctree.Newline, "\n", p.line0+p.ln, p.offsets[p.ln]+len(p.lines[p.ln]))
	p.ln++
	p.col = 0

	if n := asteriskLen(p.lines[p.ln]); n > 0 {
		p.leaf(parent, doctree.LeadingAsterisk, n)
	}
}

// nextLine handles the line break at the cursor. A line that starts a block
// tag ends the current tag and any open elements.
func (p *parser) nextLine() {
	parent := p.b.Root()

	if p.blockTagAt(p.ln + 1) {
		p.closeScope()

		if p.err != nil {
			return
		}

		p.tag, p.desc = doctree.NoID, doctree.NoID
	} else {
		parent = p.container()
	}

	p.frame(parent)
	p.startLine()
}

// startLine parses a block tag when the current line starts one.
func (p *parser) startLine() {
	if !p.blockTagAtCursor() {
		return
	}

	p.ws(p.b.Root())
	p.blockTag()
}

func (p *parser) blockTagAt(ln int) bool {
	if ln >= len(p.lines) {
		return false
	}

	line := p.lines[ln]

	return isBlockTagStart(line[asteriskLen(line):])
}

func (p *parser) blockTagAtCursor() bool {
	return isBlockTagStart(p.cur())
}

// closeScope ends every open element at a block tag or the end of the
// comment. Elements with optional closing tags are closed implicitly; any
// other open element is a failure.
func (p *parser) closeScope() {
	for i := p.open.Len() - 1; i >= 0; i-- {
		e := p.open.At(i)
		if !markup.IsOptionalClose(e.name) {
			p.fail(e.line, MsgMissedHTMLClose, e.column, e.name)

			return
		}

		p.markNonTight(e.start, e.name, e.line, e.column)
	}

	p.open.Truncate(0)
}

func (p *parser) markNonTight(node doctree.ID, name string, line, column int) {
	nt := p.nonTight
	if nt != nil && (nt.line < line || nt.line == line && nt.column <= column) {
		return
	}

	p.nonTight = &nonTight{name: name, node: node, line: line, column: column}
}

// item parses one construct starting at the cursor into parent.
func (p *parser) item(parent doctree.ID) {
	rest := p.cur()

	switch {
	case isInlineTagStart(rest):
		p.inlineTag(parent)

	case strings.HasPrefix(rest, "<!--"):
		p.htmlComment(parent)

	case isMarkupStart(rest):
		p.htmlTag(parent)

	default:
		n := 1
		for n < len(rest) && !isInlineTagStart(rest[n:]) &&
			!strings.HasPrefix(rest[n:], "<!--") && !isMarkupStart(rest[n:]) {
			n++
		}

		p.text(parent, n)
	}
}

// blockTag parses the name and arguments of the block tag at the cursor.
func (p *parser) blockTag() {
	p.tag = p.b.Open(p.b.Root(), doctree.JavadocTag)
	p.desc = doctree.NoID

	name := tagNameRun(p.cur()[1:])
	lit := doctree.CustomName

	if t, ok := doctree.LookupTag(doctree.BlockTag, name); ok {
		lit = t.Literal()
	}

	p.leaf(p.tag, lit, 1+len(name))

	if !p.ws(p.tag) {
		return
	}

	switch lit {
	case doctree.ParamLiteral:
		p.paramName(p.tag)

	case doctree.ThrowsLiteral, doctree.ExceptionLiteral:
		p.word(p.tag, doctree.ClassName)

	case doctree.SeeLiteral:
		switch p.peek() {
		case '"':
			p.quoted(p.tag)
		case '<':
		default:
			p.reference(p.tag)
		}

	case doctree.SerialFieldLiteral:
		p.word(p.tag, doctree.FieldName)

		if p.ws(p.tag) {
			p.word(p.tag, doctree.FieldType)
		}

	case doctree.SerialLiteral:
		switch wordRun(p.cur()) {
		case "include":
			p.word(p.tag, doctree.LiteralInclude)
		case "exclude":
			p.word(p.tag, doctree.LiteralExclude)
		}

	default:
		return
	}

	p.ws(p.tag)
}

func (p *parser) paramName(parent doctree.ID) {
	rest := p.cur()
	if rest[0] == '<' {
		if i := strings.IndexByte(rest, '>'); i > 0 {
			p.leaf(parent, doctree.ParameterName, i+1)

			return
		}
	}

	p.word(parent, doctree.ParameterName)
}

func (p *parser) word(parent doctree.ID, t doctree.Type) {
	if n := len(wordRun(p.cur())); n > 0 {
		p.leaf(parent, t, n)
	}
}

func (p *parser) quoted(parent doctree.ID) {
	rest := p.cur()

	n := len(rest)
	if i := strings.IndexByte(rest[1:], '"'); i >= 0 {
		n = i + 2
	}

	p.leaf(parent, doctree.String, n)
}

// reference parses a program element reference such as
// "java.util.List#add(int, Object)" into a REFERENCE node.
func (p *parser) reference(parent doctree.ID) {
	rest := p.cur()

	n, depth := 0, 0
	for n < len(rest) {
		c := rest[n]
		if depth == 0 && (isSpace(c) || c == '}') {
			break
		}

		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}

		n++
	}

	if n == 0 {
		return
	}

	ref := rest[:n]
	id := p.b.Open(parent, doctree.Reference)

	hash := strings.IndexByte(ref, '#')
	if hash < 0 {
		hash = len(ref)
	}

	if paren := strings.IndexByte(ref, '('); paren >= 0 && paren < hash {
		hash = len(ref)
	}

	if hash > 0 {
		p.leaf(id, doctree.PackageClass, hash)
	}

	if hash == len(ref) {
		return
	}

	p.leaf(id, doctree.Hash, 1)

	member := ref[hash+1:]
	if paren := strings.IndexByte(member, '('); paren >= 0 {
		if paren > 0 {
			p.leaf(id, doctree.Member, paren)
		}

		p.leaf(id, doctree.Parameters, len(member)-paren)
	} else if member != "" {
		p.leaf(id, doctree.Member, len(member))
	}
}

// Lexical helpers.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\f' || c == '\r'
}

func spaceLen(s string) int {
	n := 0
	for n < len(s) && isSpace(s[n]) {
		n++
	}

	return n
}

// asteriskLen returns the length of the leading "   *" decoration of line,
// or 0 when there is none.
func asteriskLen(line string) int {
	n := spaceLen(line)
	if n < len(line) && line[n] == '*' {
		return n + 1
	}

	return 0
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func startsWithIdent(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)

	return s != "" && isIdentStart(r)
}

// identRun returns the identifier prefix of s.
func identRun(s string) string {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isIdentPart(r) && r != '-' {
			break
		}

		n += size
	}

	return s[:n]
}

// tagNameRun returns the tag name prefix of s. Custom tag names may contain
// dots and colons, e.g. "@implNote" or "@apiNote" or "@jls.spec".
func tagNameRun(s string) string {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isIdentPart(r) && r != '.' && r != ':' && r != '-' {
			break
		}

		n += size
	}

	return s[:n]
}

func wordRun(s string) string {
	n := 0
	for n < len(s) && !isSpace(s[n]) {
		n++
	}

	return s[:n]
}

// isBlockTagStart reports whether s, after blanks, starts with "@" and a
// tag name.
func isBlockTagStart(s string) bool {
	s = s[spaceLen(s):]

	return strings.HasPrefix(s, "@") && startsWithIdent(s[1:])
}

func isInlineTagStart(s string) bool {
	return strings.HasPrefix(s, "{@") && startsWithIdent(s[2:])
}

// isMarkupStart reports whether s starts a markup tag: "<" followed by an
// identifier character or "/".
func isMarkupStart(s string) bool {
	if len(s) < 2 || s[0] != '<' {
		return false
	}

	return s[1] == '/' || startsWithIdent(s[1:])
}
