// Package doclint runs documentation comment checks over source files.
//
// The package connects three pieces: the comment parser in
// [go.jacobcolvin.com/doclint/docparse], the tree walker in
// [go.jacobcolvin.com/doclint/doctree], and a set of independent [Check]
// implementations. Checks never parse anything themselves. They declare the
// node types they care about and receive callbacks while the engine walks
// each comment tree.
//
// # Lifecycle
//
// An [Engine] is configured once, before any file is analyzed:
//
//	engine := doclint.NewEngine()
//	err := engine.Register(tagorder.New(), doclint.CheckConfig{
//		Tokens: []string{"JAVADOC_TAG"},
//	})
//
// [Engine.Register] validates the check before accepting it. Its required
// node types must be a subset of its default node types, and every node
// type selected by the configuration must be one of its acceptable types.
// Violations are configuration errors wrapping [ErrInvalidConfig]; they
// surface before any file is read.
//
// Each file is then analyzed through its own [File]:
//
//	f := engine.NewFile("Foo.java")
//	for _, c := range comments {
//		f.Process(c)
//	}
//	findings := f.Finish()
//
// A [File] owns everything that changes while a file is analyzed: the
// [ParseCache] and one instance of every check, obtained from
// [Check.ForFile]. Two files never share a [File], so files can be analyzed
// on separate goroutines without locking. [Runner] does exactly that with a
// bounded worker pool.
//
// # Dispatch
//
// For every documentation comment, each check in registration order:
//
//  1. Gets the parse result from the file's [ParseCache]. The comment is
//     parsed on the first request only.
//  2. Receives the markup balance diagnostics if it implements
//     [MarkupChecker].
//  3. Is skipped if the comment could not be parsed. The parse failure is
//     reported once per comment, attributed to [ParserCheck].
//  4. Is skipped if the tree holds implicitly closed markup and the check
//     implements [NonTightAcceptor] returning false. With
//     [CheckConfig.ViolateOnNonTightHTML] set, the skip is reported.
//  5. Receives [TreeBeginner.BeginTree], then [Check.Visit] and
//     [Leaver.Leave] for every node of an interesting type in document
//     order, then [TreeFinisher.FinishTree].
//
// # Findings
//
// Checks report through the [Pass] handed to every callback. A [Finding]
// carries a message key and arguments; the message text comes from the
// engine [Catalog], which checks extend through [MessageProvider]. Findings
// keep report order: comments in source order, checks in registration
// order, nodes in document order.
//
// # CLI Integration
//
// [Config] bridges CLI flags and the YAML configuration file to the
// library, following the RegisterFlags / RegisterCompletions / NewEngine
// pattern. The configuration file is validated against the JSON Schema
// returned by [Schema] before it is decoded:
//
//	checks:
//	  - name: tag-order
//	    tokens: [JAVADOC_TAG]
//	    options:
//	      tagOrder: ["@param", "@return", "@throws"]
//	  - name: first-sentence
//	    violateOnNonTightHtml: true
package doclint
