package doctree

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented listing of the subtree rooted at root to w, one
// node per line in the format of [Node.String].
func Fprint(w io.Writer, root *Node) error {
	var (
		depth int
		err   error
	)

	all := TypeSet{}
	for _, t := range AllTypes() {
		all = all.With(t)
	}

	Walk(root, all, VisitorFuncs{
		OnVisit: func(n *Node) {
			if err == nil {
				_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n)
			}

			depth++
		},
		OnLeave: func(*Node) {
			depth--
		},
	})

	return err
}
