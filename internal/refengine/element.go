package refengine

import (
	"strings"

	"golang.org/x/net/html"

	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/engine"
)

// node is one render-tree node; it implements engine.Element.
type node struct {
	doc      *document
	htmlNode *html.Node
	parent   *node
	children []*node

	isText bool
	text   string

	style computedStyle
	font  htmlbridge.FontHandle
	ri    *renderItem
}

func (n *node) Parent() engine.Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Children() []engine.Element {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]engine.Element, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) IsText() bool { return n.isText }

// Text returns the recursive text content of the subtree, runs separated
// by single spaces.
func (n *node) Text() string {
	if n.isText {
		return n.text
	}
	var parts []string
	for _, c := range n.children {
		if t := c.Text(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func (n *node) Font() htmlbridge.FontHandle { return n.font }
func (n *node) FontSize() float32           { return n.style.fontSize }
func (n *node) TextAlign() engine.TextAlign { return n.style.textAlign }
func (n *node) LineHeight() float32         { return n.resolvedLineHeight() }

func (n *node) RenderItem() engine.RenderItem {
	if n.ri == nil {
		return nil
	}
	return n.ri
}
