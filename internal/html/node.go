package html

import (
	"html/template"
	"strings"

	"github.com/typeref/typeref/internal/summary"
)

// Node is a composable chunk of rendered HTML.
// It implements [summary.Block], so the summary builder can nest
// nodes without knowing anything about markup.
type Node struct {
	open     template.HTML // wrapper markup written before children
	closing  template.HTML // wrapper markup written after children
	content  template.HTML // pre-rendered leaf content
	children []summary.Block
}

var _ summary.Block = (*Node)(nil)

// NewPage returns an empty root node for a page's member summary
// section.
func NewPage() *Node {
	return &Node{}
}

// Add appends a child block. Blocks from other writers are ignored.
func (n *Node) Add(b summary.Block) {
	n.children = append(n.children, b)
}

// HTML renders the node and its children.
func (n *Node) HTML() template.HTML {
	var sb strings.Builder
	n.write(&sb)
	return template.HTML(sb.String())
}

func (n *Node) write(sb *strings.Builder) {
	sb.WriteString(string(n.open))
	sb.WriteString(string(n.content))
	for _, c := range n.children {
		if child, ok := c.(*Node); ok {
			child.write(sb)
		}
	}
	sb.WriteString(string(n.closing))
}
