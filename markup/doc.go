// Package markup finds HTML-like tags in documentation comments and checks
// that they are balanced.
//
// [Scan] walks the raw lines of one comment and returns every [Tag] in
// document order. [Validate] runs a stack over those tags and reports
// [Diagnostic] values for elements that are never closed, closing tags with
// no opener, and tags that never end:
//
//	tags := markup.Scan(lines, startLine, startColumn)
//	for _, d := range markup.Validate(tags) {
//		fmt.Println(d.Tag.Line, d.Key(), d.Args())
//	}
//
// The validator is intentionally lenient: only a fixed list of element
// names is tracked (see [IsAllowed]), and a smaller list of singleton
// elements such as "p" and "li" never need a closing tag (see
// [IsSingleton]). The parser in package docparse uses the stricter
// [IsVoid] and [IsOptionalClose] tables to build element nesting.
package markup
