package doctree

// Visitor receives callbacks from [Walk].
type Visitor interface {
	// Visit is called when a node of an interesting type is first reached.
	Visit(n *Node)
	// Leave is called after every descendant of the node has been walked.
	Leave(n *Node)
}

// VisitorFuncs adapts a pair of functions to [Visitor]. Nil fields are
// skipped.
type VisitorFuncs struct {
	OnVisit func(n *Node)
	OnLeave func(n *Node)
}

// Visit calls OnVisit if set.
func (f VisitorFuncs) Visit(n *Node) {
	if f.OnVisit != nil {
		f.OnVisit(n)
	}
}

// Leave calls OnLeave if set.
func (f VisitorFuncs) Leave(n *Node) {
	if f.OnLeave != nil {
		f.OnLeave(n)
	}
}

// Walk traverses the subtree rooted at root depth-first in document order.
//
// Nodes whose type is in interest receive a Visit call when first reached and
// a Leave call after all of their descendants. Other nodes are descended
// into without callbacks. The walk is iterative: it moves to the first child
// when there is one, otherwise to the next sibling, otherwise climbs to the
// nearest ancestor that has a next sibling, so tree depth never grows the
// call stack.
func Walk(root *Node, interest TypeSet, v Visitor) {
	if root == nil {
		return
	}

	cur := root
	for cur != nil {
		if interest.Has(cur.typ) {
			v.Visit(cur)
		}

		if child := cur.FirstChild(); child != nil {
			cur = child

			continue
		}

		for cur != nil {
			if interest.Has(cur.typ) {
				v.Leave(cur)
			}

			if cur == root {
				cur = nil

				break
			}

			if next := cur.NextSibling(); next != nil {
				cur = next

				break
			}

			cur = cur.Parent()
		}
	}
}

// Collect returns every node in the subtree rooted at root whose type is in
// interest, in document order.
func Collect(root *Node, interest TypeSet) []*Node {
	var out []*Node

	Walk(root, interest, VisitorFuncs{
		OnVisit: func(n *Node) { out = append(out, n) },
	})

	return out
}
