package engine

import (
	htmlbridge "github.com/htmlkit/htmlbridge"
)

// Engine constructs documents from markup. Implementations are the external
// rendering engine proper; the bridge only consumes this interface.
type Engine interface {
	// CreateDocumentFromString parses markup into a document bound to the
	// given container. masterCSS is the user-agent stylesheet (empty selects
	// the engine's built-in one); userCSS is an optional user stylesheet.
	CreateDocumentFromString(markup string, container DocumentContainer, masterCSS, userCSS string) (Document, error)
}

// Document is one parsed document and its render tree. Not safe for
// concurrent use; distinct documents are independent.
type Document interface {
	// Render computes layout for the given available width and returns the
	// resulting content height.
	Render(maxWidth float32) float32

	// Draw paints the current layout at offset (x, y), optionally clipped.
	// Drawing happens synchronously through the container.
	Draw(dc htmlbridge.DeviceContext, x, y float32, clip *Position)

	// Width and Height return the extents of the last Render.
	Width() float32
	Height() float32

	// AddStylesheet parses css and applies it to the root's subtree,
	// recomputing computed styles. Layout is not re-run; the caller must
	// Render afterward. media, when non-empty, is a media-query list
	// restricting the stylesheet.
	AddStylesheet(css, baseURL, media string) error

	// AppendChildrenFromString parses an HTML fragment and inserts the
	// resulting nodes as children of parent. When replaceExisting is set,
	// existing children are removed first. Requires a subsequent Render.
	AppendChildrenFromString(parent Element, markup string, replaceExisting bool) error

	// Root returns the root element of the render tree.
	Root() Element

	// ElementByPoint returns the deepest element whose box contains the
	// document-space point (x, y). clientX/clientY locate the same point in
	// viewport coordinates for fixed-position content.
	ElementByPoint(x, y, clientX, clientY float32) Element

	// Interaction state machine. Each call reports whether hover/active
	// state changed and a redraw is warranted.
	OnMouseOver(x, y, clientX, clientY float32) bool
	OnLButtonDown(x, y, clientX, clientY float32) bool
	OnLButtonUp(x, y, clientX, clientY float32) bool
	OnMouseLeave() bool

	// MediaChanged re-evaluates media queries against the container's
	// current media features and reports whether styles were invalidated.
	MediaChanged() bool

	// Close tears the document down, releasing fonts through the container.
	// The container must still be alive when Close is called.
	Close()
}

// Element is one render-tree node, borrowed from its owning document.
type Element interface {
	Parent() Element
	Children() []Element
	IsText() bool

	// Text returns the recursive text content of the subtree.
	Text() string

	// Computed style.
	Font() htmlbridge.FontHandle
	FontSize() float32
	TextAlign() TextAlign
	LineHeight() float32

	// RenderItem returns the post-layout geometry node, or nil before the
	// first Render.
	RenderItem() RenderItem
}

// RenderItem is the post-layout geometry of one element.
type RenderItem interface {
	// Placement is the absolute pixel bounding box in document coordinates.
	Placement() Position

	// LocalPos is the same box positioned relative to the nearest positioned
	// ancestor's local frame. Placement().X-LocalPos().X and the Y
	// counterpart give the frame's document-space offset.
	LocalPos() Position

	// InlineBoxes returns the per-visual-line boxes of a text-flow element,
	// in the same local frame as LocalPos.
	InlineBoxes() []Position
}
