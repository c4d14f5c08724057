package engine

import (
	htmlbridge "github.com/htmlkit/htmlbridge"
)

// DocumentContainer is the capability interface a document's engine expects
// from its host environment. Every call happens synchronously while the
// engine is parsing, laying out, drawing or handling interaction. Descriptor
// pointers are valid only for the duration of the call.
//
// The container package provides the canonical implementation, backed by a
// flat table of optional callbacks.
type DocumentContainer interface {
	// CreateFont realizes a font for the given description and reports its
	// metrics. Handle 0 means the request could not be satisfied.
	CreateFont(descr *FontDescription) (htmlbridge.FontHandle, FontMetrics)

	// DeleteFont releases a handle previously returned by CreateFont. The
	// engine calls it exactly once per live handle, at the latest during
	// document teardown.
	DeleteFont(font htmlbridge.FontHandle)

	// TextWidth measures text in the given font.
	TextWidth(text string, font htmlbridge.FontHandle) float32

	// DrawText paints text at pos in the given color.
	DrawText(dc htmlbridge.DeviceContext, text string, font htmlbridge.FontHandle, color WebColor, pos Position)

	// PtToPx converts typographic points to device pixels.
	PtToPx(pt float32) float32

	// DefaultFontSize is the document default font size in pixels.
	DefaultFontSize() float32

	// DefaultFontName is the document default font family.
	DefaultFontName() string

	// DrawListMarker paints one list-item marker.
	DrawListMarker(dc htmlbridge.DeviceContext, marker *ListMarker)

	// LoadImage asks the host to start fetching an image resource.
	LoadImage(src, baseURL string, redrawOnReady bool)

	// ImageSize reports the intrinsic size of a previously loaded image.
	ImageSize(src, baseURL string) Size

	// DrawImage paints an image background layer.
	DrawImage(dc htmlbridge.DeviceContext, layer *BackgroundLayer, url, baseURL string)

	// DrawSolidFill paints a solid-color background layer.
	DrawSolidFill(dc htmlbridge.DeviceContext, layer *BackgroundLayer, color WebColor)

	// DrawLinearGradient paints a linear-gradient background layer.
	DrawLinearGradient(dc htmlbridge.DeviceContext, layer *BackgroundLayer, gradient *LinearGradient)

	// DrawRadialGradient paints a radial-gradient background layer.
	DrawRadialGradient(dc htmlbridge.DeviceContext, layer *BackgroundLayer, gradient *RadialGradient)

	// DrawConicGradient paints a conic-gradient background layer.
	DrawConicGradient(dc htmlbridge.DeviceContext, layer *BackgroundLayer, gradient *ConicGradient)

	// DrawBorders paints box borders. root marks the root element's box.
	DrawBorders(dc htmlbridge.DeviceContext, borders Borders, drawPos Position, root bool)

	// SetCaption reports the document title.
	SetCaption(caption string)

	// SetBaseURL reports the document base URL.
	SetBaseURL(baseURL string)

	// Link notifies that a <link> element was processed.
	Link()

	// OnAnchorClick notifies that an anchor was activated.
	OnAnchorClick(url string)

	// OnMouseEvent notifies a hover state transition.
	OnMouseEvent(event MouseEvent)

	// SetCursor reports the CSS cursor under the pointer.
	SetCursor(cursor string)

	// TransformText applies a CSS text-transform. It returns the transformed
	// text; returning the input unchanged is always valid.
	TransformText(text string, tt TextTransform) string

	// ImportCSS resolves an external stylesheet referenced by @import.
	// An empty result means the stylesheet is unavailable.
	ImportCSS(url, baseURL string) string

	// SetClip pushes a clip rectangle with corner radii.
	SetClip(pos Position, radius BorderRadiuses)

	// DelClip pops the most recent clip rectangle.
	DelClip()

	// Viewport reports the current viewport rectangle.
	Viewport() Position

	// GetMediaFeatures reports the media-query evaluation context.
	GetMediaFeatures() MediaFeatures

	// Language reports the content language and culture, either may be empty.
	Language() (language, culture string)

	// CreateElement gives the host a chance to construct a custom element
	// for a tag. Returning nil selects the engine's default construction.
	CreateElement(tagName string, attributes map[string]string) Element
}
