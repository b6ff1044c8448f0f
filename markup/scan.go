package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxTagText bounds the text returned by [Tag.String].
const maxTagText = 60

// Tag is one markup tag found by [Scan].
type Tag struct {
	// ID is the element name, e.g. "b" for both "<b>" and "</b>". It is
	// empty for incomplete tags.
	ID string
	// LineText is the full source line the tag starts on.
	LineText string
	// Line is the 1-based source line of the "<".
	Line int
	// Column is the 0-based source column of the "<".
	Column int
	offset int
	// Closing is set for tags of the form "</x>".
	Closing bool
	// SelfClosed is set for tags of the form "<x/>".
	SelfClosed bool
	// Incomplete is set when no ">" follows the "<" before the comment
	// ends.
	Incomplete bool
}

// String returns the tag source text, starting at the "<" and truncated to
// a bounded length.
func (t Tag) String() string {
	end := min(t.offset+maxTagText, len(t.LineText))
	if t.offset >= end {
		return ""
	}

	s := t.LineText[t.offset:end]
	if i := strings.IndexByte(s, '>'); i >= 0 {
		s = s[:i+1]
	}

	return s
}

type point struct {
	line, col int
}

type scanner struct {
	lines []string
}

// Scan returns the markup tags in the raw comment lines in document order.
//
// lines holds the comment including its delimiters; line and column give
// the source position of lines[0][0]. Markup comments ("<!-- -->") are
// skipped. A "<" starts a tag when it is followed by an identifier character
// or "/", or when it ends its line; this also accepts generic type
// parameters such as "<T>", which the validator later ignores because they
// are not allowed element names. The closing ">" may be on a later line;
// when there is none the tag is reported as incomplete.
func Scan(lines []string, line, column int) []Tag {
	s := scanner{lines: lines}
	n := len(lines)

	var tags []Tag

	pos := s.find('<', point{})
	for pos.line < n {
		switch {
		case s.isComment(pos):
			pos = s.skipComment(pos)

		case !s.isTag(pos):
			pos = s.next(pos)

		default:
			end := s.find('>', pos)
			incomplete := end.line >= n

			tag := Tag{
				LineText:   lines[pos.line],
				Line:       line + pos.line,
				Column:     pos.col,
				offset:     pos.col,
				Incomplete: incomplete,
				Closing:    s.at(point{pos.line, pos.col + 1}) == '/',
			}

			if pos.line == 0 {
				tag.Column += column
			}

			if !incomplete {
				tag.ID = s.tagID(pos)
				tag.SelfClosed = end.col > 0 && lines[end.line][end.col-1] == '/'
			}

			tags = append(tags, tag)
			pos = end
		}

		pos = s.find('<', pos)
	}

	return tags
}

// at returns the byte at p, or 0 when p is out of range.
func (s *scanner) at(p point) byte {
	if p.line >= len(s.lines) || p.col >= len(s.lines[p.line]) {
		return 0
	}

	return s.lines[p.line][p.col]
}

// find returns the position of the next ch at or after from.
func (s *scanner) find(ch byte, from point) point {
	cur := from
	for cur.line < len(s.lines) &&
		(cur.col >= len(s.lines[cur.line]) || s.lines[cur.line][cur.col] != ch) {
		cur = s.next(cur)
	}

	return cur
}

// next returns the position after from. Crossing a line skips the leading
// whitespace and asterisks of the new line, and treats a "*/" there as the
// end of that line.
func (s *scanner) next(from point) point {
	line, col := from.line, from.col+1

	for line < len(s.lines) && col >= len(s.lines[line]) {
		line++
		col = 0

		if line >= len(s.lines) {
			break
		}

		text := s.lines[line]
		for col < len(text) && (isSpace(text[col]) || text[col] == '*') {
			col++
			if col < len(text) && text[col-1] == '*' && text[col] == '/' {
				col = len(text)
			}
		}
	}

	return point{line, col}
}

func (s *scanner) isComment(p point) bool {
	return strings.HasPrefix(s.lines[p.line][p.col:], "<!--")
}

func (s *scanner) skipComment(from point) point {
	to := s.find('>', from)
	for to.line < len(s.lines) && !strings.HasSuffix(s.lines[to.line][:to.col+1], "-->") {
		to = s.find('>', s.next(to))
	}

	return to
}

func (s *scanner) isTag(p point) bool {
	text := s.lines[p.line]
	col := p.col + 1

	if col >= len(text) {
		return true
	}

	if text[col] == '/' {
		return true
	}

	r, _ := utf8.DecodeRuneInString(text[col:])

	return isIdentStart(r)
}

func (s *scanner) tagID(start point) string {
	text := s.lines[start.line]
	col := start.col + 1

	if col >= len(text) {
		return ""
	}

	if text[col] == '/' {
		col++
	}

	rest := strings.TrimSpace(text[col:])

	end := 0
	for end < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[end:])
		if !isIdentPart(r) {
			break
		}

		end += size
	}

	return rest[:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\f' || b == '\v'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
