package main

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doctree"
)

// chromeLines is the number of lines the browser uses besides tree rows.
const chromeLines = 3

// row is a visible tree node.
type row struct {
	node  *doctree.Node
	depth int
}

// browser is the bubbletea model of the interactive tree view. It shows
// one comment at a time; composite nodes can be collapsed.
type browser struct {
	collapsed map[doctree.ID]bool
	catalog   doclint.Catalog
	path      string
	comments  []parsedComment
	rows      []row
	current   int
	cursor    int
	offset    int
	height    int
}

func newBrowser(path string, comments []parsedComment, height int) *browser {
	b := &browser{
		path:     path,
		comments: comments,
		height:   height,
		catalog:  doclint.DefaultCatalog(),
	}
	b.show(0)

	return b
}

// show switches to comment i and expands every node.
func (b *browser) show(i int) {
	b.current = i
	b.cursor = 0
	b.offset = 0
	b.collapsed = make(map[doctree.ID]bool)
	b.rebuild()
}

func (b *browser) rebuild() {
	b.rows = b.rows[:0]

	root := b.comments[b.current].res.Root()
	if root != nil {
		b.appendRows(root, 0)
	}

	b.cursor = min(b.cursor, max(len(b.rows)-1, 0))
}

func (b *browser) appendRows(n *doctree.Node, depth int) {
	b.rows = append(b.rows, row{node: n, depth: depth})

	if b.collapsed[n.ID()] {
		return
	}

	for _, c := range n.Children() {
		b.appendRows(c, depth+1)
	}
}

// Init implements [tea.Model].
func (b *browser) Init() tea.Cmd { return nil }

// Update handles navigation keys and resizes.
func (b *browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.height = msg.Height

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "up", "k":
			b.cursor = max(b.cursor-1, 0)
		case "down", "j":
			b.cursor = min(b.cursor+1, max(len(b.rows)-1, 0))
		case "enter", "space", " ":
			b.toggle()
		case "right", "n", "tab":
			if b.current < len(b.comments)-1 {
				b.show(b.current + 1)
			}
		case "left", "p", "shift+tab":
			if b.current > 0 {
				b.show(b.current - 1)
			}
		}
	}

	b.scroll()

	return b, nil
}

func (b *browser) toggle() {
	if b.cursor >= len(b.rows) {
		return
	}

	n := b.rows[b.cursor].node
	if n.ChildCount() == 0 {
		return
	}

	b.collapsed[n.ID()] = !b.collapsed[n.ID()]
	b.rebuild()
}

// scroll keeps the cursor inside the visible window.
func (b *browser) scroll() {
	page := max(b.height-chromeLines, 1)

	if b.cursor < b.offset {
		b.offset = b.cursor
	}

	if b.cursor >= b.offset+page {
		b.offset = b.cursor - page + 1
	}
}

// View renders the header, the visible rows and a key help line.
func (b *browser) View() tea.View {
	var sb strings.Builder

	p := b.comments[b.current]
	fmt.Fprintf(&sb, "%s  [%d/%d]\n", p.title(b.path), b.current+1, len(b.comments))

	notes := resultNotes(b.catalog, p.res)
	if len(notes) > 0 {
		sb.WriteString(notes[0])
	}

	sb.WriteByte('\n')

	page := max(b.height-chromeLines, 1)
	end := min(b.offset+page, len(b.rows))

	for i := b.offset; i < end; i++ {
		r := b.rows[i]

		marker := "  "
		if i == b.cursor {
			marker = "> "
		}

		fold := "  "
		if r.node.ChildCount() > 0 {
			fold = "- "
			if b.collapsed[r.node.ID()] {
				fold = "+ "
			}
		}

		fmt.Fprintf(&sb, "%s%s%s%s\n", marker, strings.Repeat("  ", r.depth), fold, r.node)
	}

	sb.WriteString("up/down move  enter fold  n/p comment  q quit")

	v := tea.NewView(sb.String())
	v.AltScreen = true

	return v
}
