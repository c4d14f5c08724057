package refengine

import (
	"strings"

	"github.com/htmlkit/htmlbridge/engine"
)

// renderItem is the post-layout geometry of one node. Placement is
// document-absolute; local and the line boxes live in the containing
// block's frame.
type renderItem struct {
	placement engine.Position
	local     engine.Position
	lines     []textLine
}

type textLine struct {
	text string
	box  engine.Position // containing block frame
}

func (r *renderItem) Placement() engine.Position { return r.placement }
func (r *renderItem) LocalPos() engine.Position  { return r.local }

func (r *renderItem) InlineBoxes() []engine.Position {
	if len(r.lines) == 0 {
		return nil
	}
	boxes := make([]engine.Position, len(r.lines))
	for i, line := range r.lines {
		boxes[i] = line.box
	}
	return boxes
}

// layoutNode stacks children vertically at (x, y) within width and returns
// the height consumed. (frameX, frameY) is the document-space origin of the
// containing block's frame; each element establishes the frame for its
// children.
func (d *document) layoutNode(n *node, x, y, width, frameX, frameY float32) float32 {
	if n.isText {
		return d.layoutText(n, x, y, width, frameX, frameY)
	}
	if n.style.display == displayNone {
		n.ri = nil
		return 0
	}

	cur := y
	for _, c := range n.children {
		cur += d.layoutNode(c, x, cur, width, x, y)
	}
	h := cur - y
	n.ri = &renderItem{
		placement: engine.Position{X: x, Y: y, Width: width, Height: h},
		local:     engine.Position{X: x - frameX, Y: y - frameY, Width: width, Height: h},
	}
	return h
}

// layoutText breaks a run into greedy lines measured through the container
// and records one inline box per line in the containing block's frame.
func (d *document) layoutText(n *node, x, y, width, frameX, frameY float32) float32 {
	text := n.text
	if n.style.textTransform != engine.TextTransformNone {
		text = d.cont.TransformText(text, n.style.textTransform)
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		n.ri = nil
		return 0
	}

	font := n.font
	spaceWidth := d.cont.TextWidth(" ", font)
	lineHeight := n.resolvedLineHeight()

	var lines []textLine
	var lineWords []string
	var lineWidth float32
	flush := func() {
		if len(lineWords) == 0 {
			return
		}
		lineX := x
		switch n.style.textAlign {
		case engine.TextAlignRight:
			lineX = x + width - lineWidth
		case engine.TextAlignCenter:
			lineX = x + (width-lineWidth)/2
		}
		lines = append(lines, textLine{
			text: strings.Join(lineWords, " "),
			box: engine.Position{
				X:      lineX - frameX,
				Y:      y + float32(len(lines))*lineHeight - frameY,
				Width:  lineWidth,
				Height: lineHeight,
			},
		})
		lineWords = nil
		lineWidth = 0
	}
	for _, word := range words {
		w := d.cont.TextWidth(word, font)
		next := lineWidth + w
		if len(lineWords) > 0 {
			next += spaceWidth
		}
		if len(lineWords) > 0 && next > width {
			flush()
			next = w
		}
		lineWords = append(lineWords, word)
		lineWidth = next
	}
	flush()

	h := float32(len(lines)) * lineHeight
	var maxWidth float32
	for _, line := range lines {
		if line.box.Width > maxWidth {
			maxWidth = line.box.Width
		}
	}
	n.ri = &renderItem{
		placement: engine.Position{X: x, Y: y, Width: maxWidth, Height: h},
		local:     engine.Position{X: x - frameX, Y: y - frameY, Width: maxWidth, Height: h},
		lines:     lines,
	}
	return h
}

// resolvedLineHeight falls back from the computed value to font metrics to
// the usual 1.2 multiplier, so layout always has a positive line height.
func (n *node) resolvedLineHeight() float32 {
	if n.style.lineHeight > 0 {
		return n.style.lineHeight
	}
	if m := n.doc.fontMetrics(n.font); m.Height > 0 {
		return m.Height
	}
	return n.style.fontSize * 1.2
}
