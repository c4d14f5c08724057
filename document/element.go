package document

import (
	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/abi"
	"github.com/htmlkit/htmlbridge/engine"
)

// Element is a borrowed handle to one render-tree node. It is valid only
// while the owning Document is alive; every method on a nil Element, or an
// Element of a destroyed Document, returns the documented zero default.
type Element struct {
	el  engine.Element
	doc *Document
}

func (e *Element) alive() bool {
	return e != nil && e.el != nil && e.doc != nil && !e.doc.closed
}

// Same reports whether two handles refer to the same render-tree node.
func (e *Element) Same(other *Element) bool {
	return e != nil && other != nil && e.el == other.el
}

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element {
	if !e.alive() {
		return nil
	}
	return e.doc.wrap(e.el.Parent())
}

// ChildrenCount returns the number of child elements.
func (e *Element) ChildrenCount() int {
	if !e.alive() {
		return 0
	}
	return len(e.el.Children())
}

// ChildAt returns the child at index, or nil out of range.
func (e *Element) ChildAt(index int) *Element {
	if !e.alive() {
		return nil
	}
	children := e.el.Children()
	if index < 0 || index >= len(children) {
		return nil
	}
	return e.doc.wrap(children[index])
}

// IsText reports whether the element is a text node.
func (e *Element) IsText() bool {
	if !e.alive() {
		return false
	}
	return e.el.IsText()
}

// Text pushes the recursive text content of the subtree through cb. The
// push style exists because the extracted text is of unbounded length; cb
// is invoked exactly once, synchronously, with the full text (possibly
// empty).
func (e *Element) Text(cb func(text string)) {
	if cb == nil {
		return
	}
	if !e.alive() {
		cb("")
		return
	}
	cb(e.el.Text())
}

// Font returns the font handle from the element's computed style, 0 when
// unavailable.
func (e *Element) Font() htmlbridge.FontHandle {
	if !e.alive() {
		return 0
	}
	return e.el.Font()
}

// FontSize returns the computed font size in pixels, 0 when unavailable.
func (e *Element) FontSize() float32 {
	if !e.alive() {
		return 0
	}
	return e.el.FontSize()
}

// TextAlign returns the computed text-align ordinal
// (0=left, 1=right, 2=center, 3=justify).
func (e *Element) TextAlign() int32 {
	if !e.alive() {
		return 0
	}
	return int32(e.el.TextAlign())
}

// LineHeight returns the computed line height in pixels.
func (e *Element) LineHeight() float32 {
	if !e.alive() {
		return 0
	}
	return e.el.LineHeight()
}

// Placement returns the element's absolute pixel bounding box after layout,
// zero before the first Render.
func (e *Element) Placement() abi.Position {
	if !e.alive() {
		return abi.Position{}
	}
	ri := e.el.RenderItem()
	if ri == nil {
		return abi.Position{}
	}
	return abi.MarshalPosition(ri.Placement())
}

// InlineBoxesCount returns the number of per-visual-line boxes of a
// text-flow element, 0 for non-inline content.
func (e *Element) InlineBoxesCount() int {
	if !e.alive() {
		return 0
	}
	ri := e.el.RenderItem()
	if ri == nil {
		return 0
	}
	return len(ri.InlineBoxes())
}

// InlineBoxAt returns the inline box at index in absolute document
// coordinates, or a zero rectangle out of range.
func (e *Element) InlineBoxAt(index int) abi.Position {
	if !e.alive() {
		return abi.Position{}
	}
	ri := e.el.RenderItem()
	if ri == nil {
		return abi.Position{}
	}
	boxes := ri.InlineBoxes()
	if index < 0 || index >= len(boxes) {
		return abi.Position{}
	}
	ox, oy := frameOffset(ri)
	box := boxes[index]
	box.X += ox
	box.Y += oy
	return abi.MarshalPosition(box)
}

// InlineBoxes pushes every inline box, in absolute document coordinates,
// through cb in line order. One call gathers the boxes once instead of
// recomputing them per index.
func (e *Element) InlineBoxes(cb func(box abi.Position)) {
	if cb == nil || !e.alive() {
		return
	}
	ri := e.el.RenderItem()
	if ri == nil {
		return
	}
	ox, oy := frameOffset(ri)
	for _, box := range ri.InlineBoxes() {
		box.X += ox
		box.Y += oy
		cb(abi.MarshalPosition(box))
	}
}

// frameOffset is the vector from the render node's local frame to document
// origin: absolute placement minus locally-stored position. Inline boxes
// share that frame, so adding the offset yields absolute coordinates
// consistent with Placement.
func frameOffset(ri engine.RenderItem) (float32, float32) {
	placement := ri.Placement()
	local := ri.LocalPos()
	return placement.X - local.X, placement.Y - local.Y
}
