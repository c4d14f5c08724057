package container

import (
	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/abi"
)

// Table is the caller-supplied capability table backing an Adapter. Each
// field is one optional entry; nil entries fall back to the defaults
// documented in the package comment. UserData is an opaque context value
// passed as the first argument of every invocation.
//
// The table is read, never written, by the bridge. It must stay reachable
// and unchanged for as long as the Adapter bound to it is alive.
type Table struct {
	UserData any

	// Fonts and text.
	CreateFont      func(ud any, descr *FontDescriptionRef, metrics *abi.FontMetrics) htmlbridge.FontHandle
	DeleteFont      func(ud any, font htmlbridge.FontHandle)
	TextWidth       func(ud any, text string, font htmlbridge.FontHandle) float32
	DrawText        func(ud any, dc htmlbridge.DeviceContext, text string, font htmlbridge.FontHandle, color abi.WebColor, pos abi.Position)
	PtToPx          func(ud any, pt float32) float32
	DefaultFontSize func(ud any) float32
	DefaultFontName func(ud any) string

	// Markers and images.
	DrawListMarker func(ud any, dc htmlbridge.DeviceContext, marker *ListMarkerRef)
	LoadImage      func(ud any, src, baseURL string, redrawOnReady bool)
	ImageSize      func(ud any, src, baseURL string, size *abi.Size)
	DrawImage      func(ud any, dc htmlbridge.DeviceContext, layer *BackgroundLayerRef, url, baseURL string)

	// Background and border painting.
	DrawSolidFill      func(ud any, dc htmlbridge.DeviceContext, layer *BackgroundLayerRef, color abi.WebColor)
	DrawLinearGradient func(ud any, dc htmlbridge.DeviceContext, layer *BackgroundLayerRef, gradient *LinearGradientRef)
	DrawRadialGradient func(ud any, dc htmlbridge.DeviceContext, layer *BackgroundLayerRef, gradient *RadialGradientRef)
	DrawConicGradient  func(ud any, dc htmlbridge.DeviceContext, layer *BackgroundLayerRef, gradient *ConicGradientRef)
	DrawBorders        func(ud any, dc htmlbridge.DeviceContext, borders abi.Borders, drawPos abi.Position, root bool)

	// Document notifications.
	SetCaption    func(ud any, caption string)
	SetBaseURL    func(ud any, baseURL string)
	Link          func(ud any)
	OnAnchorClick func(ud any, url string)
	OnMouseEvent  func(ud any, event int32)
	SetCursor     func(ud any, cursor string)

	// String-result capabilities, routed through the string return bridge.
	TransformText func(ud any, text string, textTransform int32, setResult SetString)
	ImportCSS     func(ud any, url, baseURL string, setResult SetString)

	// Clipping.
	SetClip func(ud any, pos abi.Position, radius abi.BorderRadiuses)
	DelClip func(ud any)

	// Environment queries. The callee fills the out-parameter in place.
	Viewport      func(ud any, viewport *abi.Position)
	MediaFeatures func(ud any, media *abi.MediaFeatures)
	Language      func(ud any, setResult SetLanguage)
}
