package docparse

import "go.jacobcolvin.com/doclint/doctree"

// inlineTag parses "{@name ...}" starting at the cursor. The tag may span
// lines and may contain balanced braces.
func (p *parser) inlineTag(parent doctree.ID) {
	line, col := p.pos()
	tag := p.b.Open(parent, doctree.JavadocInlineTag)
	p.leaf(tag, doctree.JavadocInlineTagStart, 1)

	name := identRun(p.cur()[1:])
	lit := doctree.CustomName

	if t, ok := doctree.LookupTag(doctree.InlineTag, name); ok {
		lit = t.Literal()
	}

	p.leaf(tag, lit, 1+len(name))

	switch lit {
	case doctree.LinkLiteral, doctree.LinkplainLiteral, doctree.ValueLiteral:
		if p.ws(tag) && p.peek() != '}' {
			p.reference(tag)
			p.ws(tag)
		}

		p.inlineBody(tag, true, line, col)

	case doctree.CodeLiteral, doctree.LiteralLiteral, doctree.InheritDocLiteral, doctree.DocRootLiteral:
		p.ws(tag)
		p.inlineBody(tag, false, line, col)

	default:
		p.ws(tag)
		p.inlineBody(tag, true, line, col)
	}
}

// inlineBody consumes the rest of an inline tag up to and including its
// closing brace. Content is raw text: markup is not recognized inside
// inline tags. When describe is set, content goes into a DESCRIPTION node.
func (p *parser) inlineBody(tag doctree.ID, describe bool, line, col int) {
	desc := doctree.NoID
	body := func() doctree.ID {
		if !describe {
			return tag
		}

		if desc == doctree.NoID {
			desc = p.b.Open(tag, doctree.Description)
		}

		return desc
	}

	depth := 0

	for {
		if p.eol() {
			if p.lastLine() {
				p.fail(line, MsgParseRuleError, col, "unterminated inline tag", "JAVADOC_INLINE_TAG")

				return
			}

			p.frame(body())

			continue
		}

		rest := p.cur()

		n := 0
		for ; n < len(rest); n++ {
			if rest[n] == '{' {
				depth++
			} else if rest[n] == '}' {
				if depth == 0 {
					break
				}

				depth--
			}
		}

		if n > 0 {
			p.text(body(), n)
		}

		if n < len(rest) {
			p.leaf(tag, doctree.JavadocInlineTagEnd, 1)

			return
		}
	}
}
