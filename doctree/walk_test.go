package doctree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/doctree"
)

type recorder struct {
	events []string
}

func (r *recorder) Visit(n *doctree.Node) {
	r.events = append(r.events, fmt.Sprintf("visit %s %s", n.Type(), n.Text()))
}

func (r *recorder) Leave(n *doctree.Node) {
	r.events = append(r.events, fmt.Sprintf("leave %s %s", n.Type(), n.Text()))
}

// nested builds JAVADOC > HTML_ELEMENT(<b>) > [TEXT "a", HTML_ELEMENT(<i>) > TEXT "b"], TEXT "c".
func nested() *doctree.Tree {
	b := doctree.NewBuilder(doctree.Javadoc)
	outer := b.Open(b.Root(), doctree.HTMLElement)
	b.AddChild(outer, doctree.Text, "a", 1, 0)
	inner := b.Open(outer, doctree.HTMLElement)
	b.AddChild(inner, doctree.Text, "b", 1, 1)
	b.AddChild(b.Root(), doctree.Text, "c", 1, 2)
	b.AddChild(b.Root(), doctree.EOF, "", 1, 3)

	return b.Build()
}

func TestWalkBracketing(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		interest doctree.TypeSet
		want     []string
	}{
		"elements only": {
			interest: doctree.NewTypeSet(doctree.HTMLElement),
			want: []string{
				"visit HTML_ELEMENT ab",
				"visit HTML_ELEMENT b",
				"leave HTML_ELEMENT b",
				"leave HTML_ELEMENT ab",
			},
		},
		"text through uninteresting parents": {
			interest: doctree.NewTypeSet(doctree.Text),
			want: []string{
				"visit TEXT a", "leave TEXT a",
				"visit TEXT b", "leave TEXT b",
				"visit TEXT c", "leave TEXT c",
			},
		},
		"root and text": {
			interest: doctree.NewTypeSet(doctree.Javadoc, doctree.Text),
			want: []string{
				"visit JAVADOC abc",
				"visit TEXT a", "leave TEXT a",
				"visit TEXT b", "leave TEXT b",
				"visit TEXT c", "leave TEXT c",
				"leave JAVADOC abc",
			},
		},
		"nothing": {
			interest: doctree.TypeSet{},
			want:     nil,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r := &recorder{}
			doctree.Walk(nested().Root(), tc.interest, r)
			assert.Equal(t, tc.want, r.events)
		})
	}
}

func TestWalkSubtreeStopsAtRoot(t *testing.T) {
	t.Parallel()

	tree := nested()
	outer := tree.Root().FirstChild()

	got := doctree.Collect(outer, doctree.NewTypeSet(doctree.Text))

	texts := make([]string, len(got))
	for i, n := range got {
		texts[i] = n.Text()
	}

	assert.Equal(t, []string{"a", "b"}, texts)
}

func TestWalkDeepTree(t *testing.T) {
	t.Parallel()

	const depth = 100_000

	b := doctree.NewBuilder(doctree.Javadoc)
	parent := b.Root()

	for range depth {
		parent = b.Open(parent, doctree.HTMLElement)
	}

	b.AddChild(parent, doctree.Text, "deep", 1, 0)
	tree := b.Build()

	var visits, leaves int

	doctree.Walk(tree.Root(), doctree.NewTypeSet(doctree.HTMLElement), doctree.VisitorFuncs{
		OnVisit: func(*doctree.Node) { visits++ },
		OnLeave: func(*doctree.Node) { leaves++ },
	})

	require.Equal(t, depth, visits)
	require.Equal(t, depth, leaves)
}
