// Package docparse parses documentation comments into [doctree] trees.
//
// [Parse] takes the raw text of one comment, delimiters included, together
// with its position in the source file:
//
//	res := docparse.Parse(docparse.Comment{
//		Lines:  []string{"/**", " * Returns the size.", " * @return the size", " */"},
//		Line:   42,
//		Column: 4,
//	})
//	if res.Error != nil {
//		// res.Error.Key identifies the failure, e.g. [MsgMissedHTMLClose].
//	}
//
// # Grammar
//
// The root [doctree.Javadoc] node holds the main description followed by
// block tags. A block tag starts on a line whose first content, after the
// optional leading asterisk and blanks, is "@" and a tag name. Continuation
// lines belong to the description of the preceding block tag.
//
// Inline tags ("{@code x}", "{@link Foo#bar label}") may span lines and may
// contain balanced braces. Their content is raw text.
//
// A "<" followed by an identifier character or "/" starts a markup tag.
// This also reads generic type syntax such as "List<String>" as markup,
// which then fails as an element that is never closed.
//
// # Failures and non-tight markup
//
// Parsing stops at the first failure, and the [Result] then holds an
// [Error] instead of a tree. Failures are elements that must be closed but
// are not ([MsgMissedHTMLClose]), closing tags of void elements such as
// "</br>" ([MsgWrongSingletonTag]), and unterminated inline tags, markup
// tags or markup comments ([MsgParseRuleError]).
//
// Elements whose closing tag is optional in HTML, such as "p" and "li",
// are closed implicitly by a sibling, by the closing tag of an ancestor,
// by a block tag, or by the end of the comment. Those elements, and
// closing tags that match no open element, make the result "non-tight":
// [Result.NonTight] is set and [Result.FirstNonTight] points at the first
// such element. The tree is still complete.
//
// Independently of the tree, every result carries the tags found by
// [markup.Scan] and the diagnostics from [markup.Validate].
package docparse
