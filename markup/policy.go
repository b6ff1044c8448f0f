package markup

import "strings"

// Element name tables. All lookups are case-insensitive.
var (
	// singletonTags may appear without a closing tag as far as tag balance
	// is concerned.
	singletonTags = set(
		"br", "li", "dt", "dd", "hr", "img", "p", "td", "tr", "th",
	)

	// allowedTags are the elements the validator tracks. Anything else,
	// including generic type parameters written as "<T>", is never pushed.
	allowedTags = set(
		"a", "abbr", "acronym", "address", "area", "b", "bdo", "big",
		"blockquote", "br", "caption", "cite", "code", "colgroup", "dd",
		"del", "div", "dfn", "dl", "dt", "em", "fieldset", "font", "h1",
		"h2", "h3", "h4", "h5", "h6", "hr", "i", "img", "ins", "kbd",
		"li", "ol", "p", "pre", "q", "samp", "small", "span", "strong",
		"style", "sub", "sup", "table", "tbody", "td", "tfoot", "th",
		"thead", "tr", "tt", "u", "ul",
	)

	// voidElements never have content, so a closing tag for one is an error.
	voidElements = set(
		"area", "base", "basefont", "br", "col", "embed", "frame", "hr",
		"img", "input", "isindex", "keygen", "link", "meta", "param",
		"source", "track", "wbr",
	)

	// optionalCloseElements may be closed implicitly by their parent or by
	// a following sibling.
	optionalCloseElements = set(
		"body", "colgroup", "dd", "dt", "head", "html", "li", "option",
		"p", "tbody", "td", "tfoot", "th", "thead", "tr",
	)
)

// IsSingleton reports whether name needs no closing tag for balance
// purposes.
func IsSingleton(name string) bool { return has(singletonTags, name) }

// IsAllowed reports whether name is an element the validator tracks.
func IsAllowed(name string) bool { return has(allowedTags, name) }

// IsVoid reports whether name is an element that can never be closed.
func IsVoid(name string) bool { return has(voidElements, name) }

// IsOptionalClose reports whether name may be closed implicitly.
func IsOptionalClose(name string) bool { return has(optionalCloseElements, name) }

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}

	return m
}

func has(m map[string]struct{}, name string) bool {
	_, ok := m[strings.ToLower(name)]

	return ok
}
