package doctree

import (
	"fmt"
	"strings"
)

// ID addresses a node within a [Tree] or [Builder].
type ID int

// NoID is the ID of a missing node.
const NoID ID = -1

// Node is one node of a parsed documentation comment.
//
// Nodes live in the arena owned by their [Tree]. Parent and sibling links
// are indices into that arena; a node owns only the ordered list of its
// children. Lines are 1-based and columns are 0-based, both relative to
// the enclosing source file.
type Node struct {
	tree *Tree
	// text holds leaf text until the tree is built.
	text     string
	children []ID
	id       ID
	parent   ID
	index    int
	start    int
	end      int
	line     int
	column   int
	typ      Type
	derived  bool
}

// ID returns the arena index of n.
func (n *Node) ID() ID { return n.id }

// Tree returns the tree that owns n.
func (n *Node) Tree() *Tree { return n.tree }

// Type returns the node type.
func (n *Node) Type() Type { return n.typ }

// Text returns the source text covered by n. For composite nodes this is the
// concatenation of the children's text.
func (n *Node) Text() string { return n.tree.text[n.start:n.end] }

// Line returns the 1-based source line of n.
func (n *Node) Line() int { return n.line }

// Column returns the 0-based source column of n.
func (n *Node) Column() int { return n.column }

// Parent returns the parent of n, or nil for the root.
func (n *Node) Parent() *Node {
	return n.tree.Node(n.parent)
}

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child of n, or nil when i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}

	return n.tree.Node(n.children[i])
}

// Children returns the children of n in document order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	for i, id := range n.children {
		out[i] = n.tree.Node(id)
	}

	return out
}

// FirstChild returns the first child of n, or nil.
func (n *Node) FirstChild() *Node { return n.Child(0) }

// LastChild returns the last child of n, or nil.
func (n *Node) LastChild() *Node { return n.Child(len(n.children) - 1) }

// NextSibling returns the node following n under the same parent, or nil.
func (n *Node) NextSibling() *Node {
	p := n.Parent()
	if p == nil {
		return nil
	}

	return p.Child(n.index + 1)
}

// PreviousSibling returns the node preceding n under the same parent, or nil.
func (n *Node) PreviousSibling() *Node {
	p := n.Parent()
	if p == nil {
		return nil
	}

	return p.Child(n.index - 1)
}

// FindFirstChildOfType returns the first direct child of n with type t, or
// nil.
func (n *Node) FindFirstChildOfType(t Type) *Node {
	for _, id := range n.children {
		c := n.tree.Node(id)
		if c.typ == t {
			return c
		}
	}

	return nil
}

// FindChildrenOfType returns every direct child of n with type t.
func (n *Node) FindChildrenOfType(t Type) []*Node {
	var out []*Node

	for _, id := range n.children {
		c := n.tree.Node(id)
		if c.typ == t {
			out = append(out, c)
		}
	}

	return out
}

// String returns a short description of n: `TEXT -> "foo" [3:7]` for
// leaves and `JAVADOC_TAG [3:3]` for nodes with children.
func (n *Node) String() string {
	if len(n.children) > 0 {
		return fmt.Sprintf("%s [%d:%d]", n.typ, n.line, n.column)
	}

	return fmt.Sprintf("%s -> %q [%d:%d]", n.typ, n.Text(), n.line, n.column)
}

// Tree is an immutable parsed comment. Create trees with [Builder].
//
// The text of all leaves is stored once, in document order; every node's
// text is a substring of it.
type Tree struct {
	text  string
	nodes []Node
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return &t.nodes[0]
}

// Len returns the number of nodes in t.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id ID) *Node {
	if t == nil || id < 0 || int(id) >= len(t.nodes) {
		return nil
	}

	return &t.nodes[id]
}

// Builder constructs a [Tree] by appending nodes in document order.
// Nodes are not observable until [Builder.Build] returns, so no caller can
// see a partially built tree.
type Builder struct {
	nodes []Node
	built bool
}

// NewBuilder returns a builder whose root node has type root.
func NewBuilder(root Type) *Builder {
	b := &Builder{}
	b.nodes = append(b.nodes, Node{
		id:      0,
		typ:     root,
		parent:  NoID,
		line:    -1,
		column:  -1,
		derived: true,
	})

	return b
}

// Root returns the ID of the root node.
func (b *Builder) Root() ID { return 0 }

// Type returns the type of the node with the given id.
func (b *Builder) Type(id ID) Type {
	return b.node(id).typ
}

// Parent returns the parent of the node with the given id.
func (b *Builder) Parent(id ID) ID {
	return b.node(id).parent
}

// Len returns the number of nodes appended so far.
func (b *Builder) Len() int { return len(b.nodes) }

// AddChild appends a leaf node with explicit text and position as the last
// child of parent.
func (b *Builder) AddChild(parent ID, t Type, text string, line, column int) ID {
	return b.add(parent, Node{typ: t, text: text, line: line, column: column})
}

// Open appends a composite node as the last child of parent. Its text and
// position are derived from its children when the tree is built.
func (b *Builder) Open(parent ID, t Type) ID {
	return b.add(parent, Node{typ: t, line: -1, column: -1, derived: true})
}

// Build finalizes composite nodes and returns the tree. The builder must not
// be used afterwards.
func (b *Builder) Build() *Tree {
	b.check()
	b.built = true

	t := &Tree{nodes: b.nodes}
	t.layout()

	// Children always have larger IDs than their parents, so a reverse
	// pass sees every child before its parent.
	for i := len(t.nodes) - 1; i >= 0; i-- {
		n := &t.nodes[i]
		n.tree = t

		if !n.derived {
			continue
		}

		for _, c := range n.children {
			if first := &t.nodes[c]; first.line >= 0 {
				n.line, n.column = first.line, first.column

				break
			}
		}
	}

	// Empty composites take the position of their parent.
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.line < 0 && n.parent != NoID {
			p := &t.nodes[n.parent]
			n.line, n.column = p.line, p.column
		}
	}

	return t
}

func (b *Builder) add(parent ID, n Node) ID {
	b.check()

	p := b.node(parent)
	if !p.derived {
		panic(fmt.Sprintf("doctree: leaf %s cannot have children", p.typ))
	}

	if !n.typ.Valid() {
		panic(fmt.Sprintf("doctree: invalid node type %d", int(n.typ)))
	}

	n.id = ID(len(b.nodes))
	n.parent = parent
	n.index = len(p.children)
	p.children = append(p.children, n.id)
	b.nodes = append(b.nodes, n)

	return n.id
}

func (b *Builder) node(id ID) *Node {
	if id < 0 || int(id) >= len(b.nodes) {
		panic(fmt.Sprintf("doctree: node %d out of range", int(id)))
	}

	return &b.nodes[id]
}

func (b *Builder) check() {
	if b.built {
		panic("doctree: builder used after Build")
	}
}

// layout joins the leaf text in document order and records the span of
// every node. It walks the tree with an explicit stack, so nesting depth
// costs neither recursion nor copying.
func (t *Tree) layout() {
	type frame struct {
		id   ID
		next int
	}

	var sb strings.Builder

	stack := []frame{{id: 0}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := &t.nodes[top.id]

		if top.next == 0 {
			n.start = sb.Len()
			if !n.derived {
				sb.WriteString(n.text)
				n.text = ""
			}
		}

		if top.next < len(n.children) {
			c := n.children[top.next]
			top.next++
			stack = append(stack, frame{id: c})

			continue
		}

		n.end = sb.Len()
		stack = stack[:len(stack)-1]
	}

	t.text = sb.String()
}
