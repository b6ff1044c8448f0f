// Package doctree provides the node model for parsed documentation
// comments and the traversal engine that walks it.
//
// # Nodes
//
// A parsed comment is a [Tree] of [Node] values. Every node has a [Type]
// drawn from a closed set, the literal text it covers, and a position in
// the enclosing source file (1-based line, 0-based column). The root always
// has type [Javadoc] and its last child is an [EOF] node.
//
// Trees are stored as an arena: a node holds the IDs of its children in
// document order, plus back-references to its parent and its index within
// the parent. Trees are immutable once [Builder.Build] returns:
//
//	b := doctree.NewBuilder(doctree.Javadoc)
//	tag := b.Open(b.Root(), doctree.JavadocTag)
//	b.AddChild(tag, doctree.ParamLiteral, "@param", 3, 3)
//	b.AddChild(b.Root(), doctree.EOF, "", 3, 10)
//	tree := b.Build()
//
// Composite nodes created with [Builder.Open] take their text from the
// concatenation of their children and their position from the first child
// that has one.
//
// # Traversal
//
// [Walk] visits a subtree depth-first in document order without recursion.
// Only nodes whose type is in the interest [TypeSet] receive callbacks, but
// every node is descended into:
//
//	doctree.Walk(tree.Root(), doctree.NewTypeSet(doctree.JavadocTag), doctree.VisitorFuncs{
//		OnVisit: func(n *doctree.Node) { fmt.Println(n.Line()) },
//	})
//
// # Tags
//
// [Tag] enumerates the standard block and inline tags. [ValidOn] reports
// whether a tag may document a given [Declaration].
package doctree
