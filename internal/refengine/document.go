package refengine

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/engine"
	"github.com/htmlkit/htmlbridge/errors"
)

// document implements engine.Document.
type document struct {
	cont    engine.DocumentContainer
	root    *node
	rules   []styleRule
	fonts   map[fontKey]fontEntry
	media   engine.MediaFeatures
	baseURL string

	hovered *node
	active  *node

	width  float32
	height float32
	closed bool
}

func (d *document) Render(maxWidth float32) float32 {
	if d.closed || d.root == nil {
		return 0
	}
	d.height = d.layoutNode(d.root, 0, 0, maxWidth, 0, 0)
	d.width = maxWidth
	return d.height
}

func (d *document) Width() float32 {
	if d.closed {
		return 0
	}
	return d.width
}

func (d *document) Height() float32 {
	if d.closed {
		return 0
	}
	return d.height
}

func (d *document) Draw(dc htmlbridge.DeviceContext, x, y float32, clip *engine.Position) {
	if d.closed || d.root == nil {
		return
	}
	if clip != nil {
		d.cont.SetClip(*clip, engine.BorderRadiuses{})
		defer d.cont.DelClip()
	}
	d.drawNode(d.root, dc, x, y)
}

func (d *document) drawNode(n *node, dc htmlbridge.DeviceContext, x, y float32) {
	if !n.isText && n.style.display == displayNone {
		return
	}
	if n.ri != nil && !n.isText && n.style.hasBackground && n.style.background.Alpha != 0 {
		box := n.ri.placement
		box.X += x
		box.Y += y
		d.cont.DrawSolidFill(dc, &engine.BackgroundLayer{
			BorderBox: box,
			ClipBox:   box,
			OriginBox: box,
			IsRoot:    n.parent == nil,
		}, n.style.background)
	}
	if n.ri != nil && n.isText {
		ox := n.ri.placement.X - n.ri.local.X + x
		oy := n.ri.placement.Y - n.ri.local.Y + y
		for _, line := range n.ri.lines {
			pos := line.box
			pos.X += ox
			pos.Y += oy
			d.cont.DrawText(dc, line.text, n.font, n.style.color, pos)
		}
	}
	for _, c := range n.children {
		d.drawNode(c, dc, x, y)
	}
}

func (d *document) AddStylesheet(css, baseURL, media string) error {
	if d.closed {
		return errors.Closed(errors.PhaseStyle)
	}
	if err := d.addSheet(css, baseURL, media); err != nil {
		return err
	}
	d.computeStyles()
	return nil
}

func (d *document) AppendChildrenFromString(parent engine.Element, markup string, replaceExisting bool) error {
	if d.closed {
		return errors.Closed(errors.PhaseParse)
	}
	pn, ok := parent.(*node)
	if !ok || pn == nil || pn.isText {
		return errors.InvalidInput(errors.PhaseParse, "parent is not an element of this document")
	}

	// Fragment parsing in a neutral block context keeps the result equal
	// to the markup's own top-level node count.
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return errors.InvalidMarkup(errors.PhaseParse, err)
	}

	if replaceExisting {
		for child := pn.htmlNode.FirstChild; child != nil; {
			next := child.NextSibling
			pn.htmlNode.RemoveChild(child)
			child = next
		}
		pn.children = nil
	}
	for _, hn := range nodes {
		if hn.Type == html.TextNode && collapseSpace(hn.Data) == "" {
			continue
		}
		if hn.Type != html.TextNode && hn.Type != html.ElementNode {
			continue
		}
		pn.htmlNode.AppendChild(hn)
		pn.children = append(pn.children, d.buildTree(hn, pn))
	}
	d.computeStyles()
	return nil
}

func (d *document) Root() engine.Element {
	if d.closed || d.root == nil {
		return nil
	}
	return d.root
}

func (d *document) ElementByPoint(x, y, clientX, clientY float32) engine.Element {
	if d.closed {
		return nil
	}
	hit := d.hitTest(d.root, x, y)
	if hit == nil {
		return nil
	}
	return hit
}

// hitTest returns the deepest element whose box contains the point. Every
// candidate is accepted; text runs are skipped so the owning element wins.
func (d *document) hitTest(n *node, x, y float32) *node {
	if n == nil || n.isText || n.ri == nil {
		return nil
	}
	if !n.ri.placement.Contains(x, y) {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := d.hitTest(n.children[i], x, y); hit != nil {
			return hit
		}
	}
	return n
}

func (d *document) OnMouseOver(x, y, clientX, clientY float32) bool {
	if d.closed {
		return false
	}
	hit := d.hitTest(d.root, x, y)
	if hit == d.hovered {
		return false
	}
	if d.hovered != nil {
		d.cont.OnMouseEvent(engine.MouseEventLeave)
	}
	d.hovered = hit
	if hit != nil {
		d.cont.OnMouseEvent(engine.MouseEventEnter)
		d.cont.SetCursor(cursorFor(hit))
	} else {
		d.cont.SetCursor("auto")
	}
	return true
}

func (d *document) OnLButtonDown(x, y, clientX, clientY float32) bool {
	if d.closed {
		return false
	}
	d.active = d.hitTest(d.root, x, y)
	return false
}

func (d *document) OnLButtonUp(x, y, clientX, clientY float32) bool {
	if d.closed {
		return false
	}
	hit := d.hitTest(d.root, x, y)
	if d.active != nil && hit == d.active {
		if anchor := ancestorAnchor(hit); anchor != nil {
			d.cont.OnAnchorClick(attr(anchor.htmlNode, "href"))
		}
	}
	d.active = nil
	return false
}

func (d *document) OnMouseLeave() bool {
	if d.closed || d.hovered == nil {
		return false
	}
	d.cont.OnMouseEvent(engine.MouseEventLeave)
	d.cont.SetCursor("auto")
	d.hovered = nil
	d.active = nil
	return true
}

func (d *document) MediaChanged() bool {
	if d.closed {
		return false
	}
	current := d.cont.GetMediaFeatures()
	if current == d.media {
		return false
	}
	d.media = current
	return true
}

// Close releases every realized font through the container, which must
// still be alive for these calls.
func (d *document) Close() {
	if d.closed {
		return
	}
	d.closed = true
	for _, entry := range d.fonts {
		if entry.handle != 0 {
			d.cont.DeleteFont(entry.handle)
		}
	}
	d.fonts = nil
	d.root = nil
}

func cursorFor(n *node) string {
	if n.style.cursor != "" {
		return n.style.cursor
	}
	if ancestorAnchor(n) != nil {
		return "pointer"
	}
	return "auto"
}

func ancestorAnchor(n *node) *node {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.isText && cur.htmlNode != nil && cur.htmlNode.DataAtom == atom.A {
			return cur
		}
	}
	return nil
}
