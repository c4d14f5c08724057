package container

import (
	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/abi"
	"github.com/htmlkit/htmlbridge/engine"
)

// Fallbacks for absent table entries.
const (
	// DefaultFontSize is used when the default-font-size entry is nil.
	DefaultFontSize float32 = 16
	// DefaultFontName is used when the default-font-name entry is nil.
	DefaultFontName = "serif"
)

// Adapter presents a capability Table to the engine as its host
// environment. It implements engine.DocumentContainer by forwarding each
// virtual call to the corresponding table entry, marshalling parameters both
// ways, and substituting the documented default when the entry is nil.
//
// An Adapter is bound 1:1 to one document and must outlive it: document
// teardown re-enters the adapter (font release). The document package owns
// this pairing; Adapters are not destroyed independently.
type Adapter struct {
	table *Table
}

var _ engine.DocumentContainer = (*Adapter)(nil)

// NewAdapter binds a capability table. A nil table behaves like a table
// with every entry nil.
func NewAdapter(table *Table) *Adapter {
	if table == nil {
		table = &Table{}
	}
	Logger().Debug("capability table bound")
	return &Adapter{table: table}
}

// UserData returns the table's opaque user context.
func (a *Adapter) UserData() any {
	return a.table.UserData
}

// CreateFont forwards to the create-font entry. Absent entry: handle 0 and
// zero metrics.
func (a *Adapter) CreateFont(descr *engine.FontDescription) (htmlbridge.FontHandle, engine.FontMetrics) {
	if a.table.CreateFont == nil {
		return 0, engine.FontMetrics{}
	}
	var metrics abi.FontMetrics
	h := a.table.CreateFont(a.table.UserData, &FontDescriptionRef{d: descr}, &metrics)
	return h, abi.UnmarshalFontMetrics(metrics)
}

// DeleteFont forwards to the delete-font entry. Absent entry: no-op.
func (a *Adapter) DeleteFont(font htmlbridge.FontHandle) {
	if a.table.DeleteFont == nil {
		return
	}
	a.table.DeleteFont(a.table.UserData, font)
}

// TextWidth forwards to the text-width entry. Absent entry: zero width,
// producing degenerate but non-crashing layout.
func (a *Adapter) TextWidth(text string, font htmlbridge.FontHandle) float32 {
	if a.table.TextWidth == nil {
		return 0
	}
	return a.table.TextWidth(a.table.UserData, text, font)
}

// DrawText forwards to the draw-text entry. Absent entry: no-op.
func (a *Adapter) DrawText(dc htmlbridge.DeviceContext, text string, font htmlbridge.FontHandle, color engine.WebColor, pos engine.Position) {
	if a.table.DrawText == nil {
		return
	}
	a.table.DrawText(a.table.UserData, dc, text, font, abi.MarshalWebColor(color), abi.MarshalPosition(pos))
}

// PtToPx forwards to the pt-to-px entry. Absent entry: identity.
func (a *Adapter) PtToPx(pt float32) float32 {
	if a.table.PtToPx == nil {
		return pt
	}
	return a.table.PtToPx(a.table.UserData, pt)
}

// DefaultFontSize forwards to the default-font-size entry. Absent entry: 16.
func (a *Adapter) DefaultFontSize() float32 {
	if a.table.DefaultFontSize == nil {
		return DefaultFontSize
	}
	return a.table.DefaultFontSize(a.table.UserData)
}

// DefaultFontName forwards to the default-font-name entry. Absent entry:
// "serif".
func (a *Adapter) DefaultFontName() string {
	if a.table.DefaultFontName == nil {
		return DefaultFontName
	}
	return a.table.DefaultFontName(a.table.UserData)
}

// DrawListMarker forwards to the draw-list-marker entry. Absent entry: no-op.
func (a *Adapter) DrawListMarker(dc htmlbridge.DeviceContext, marker *engine.ListMarker) {
	if a.table.DrawListMarker == nil {
		return
	}
	a.table.DrawListMarker(a.table.UserData, dc, &ListMarkerRef{m: marker})
}

// LoadImage forwards to the load-image entry. Absent entry: no-op.
func (a *Adapter) LoadImage(src, baseURL string, redrawOnReady bool) {
	if a.table.LoadImage == nil {
		return
	}
	a.table.LoadImage(a.table.UserData, src, baseURL, redrawOnReady)
}

// ImageSize forwards to the image-size entry. Absent entry: zero size.
func (a *Adapter) ImageSize(src, baseURL string) engine.Size {
	if a.table.ImageSize == nil {
		return engine.Size{}
	}
	var size abi.Size
	a.table.ImageSize(a.table.UserData, src, baseURL, &size)
	return abi.UnmarshalSize(size)
}

// DrawImage forwards to the draw-image entry. Absent entry: no-op.
func (a *Adapter) DrawImage(dc htmlbridge.DeviceContext, layer *engine.BackgroundLayer, url, baseURL string) {
	if a.table.DrawImage == nil {
		return
	}
	a.table.DrawImage(a.table.UserData, dc, &BackgroundLayerRef{l: layer}, url, baseURL)
}

// DrawSolidFill forwards to the draw-solid-fill entry. Absent entry: no-op.
func (a *Adapter) DrawSolidFill(dc htmlbridge.DeviceContext, layer *engine.BackgroundLayer, color engine.WebColor) {
	if a.table.DrawSolidFill == nil {
		return
	}
	a.table.DrawSolidFill(a.table.UserData, dc, &BackgroundLayerRef{l: layer}, abi.MarshalWebColor(color))
}

// DrawLinearGradient forwards to the draw-linear-gradient entry. Absent
// entry: no-op.
func (a *Adapter) DrawLinearGradient(dc htmlbridge.DeviceContext, layer *engine.BackgroundLayer, gradient *engine.LinearGradient) {
	if a.table.DrawLinearGradient == nil {
		return
	}
	a.table.DrawLinearGradient(a.table.UserData, dc, &BackgroundLayerRef{l: layer}, &LinearGradientRef{g: gradient})
}

// DrawRadialGradient forwards to the draw-radial-gradient entry. Absent
// entry: no-op.
func (a *Adapter) DrawRadialGradient(dc htmlbridge.DeviceContext, layer *engine.BackgroundLayer, gradient *engine.RadialGradient) {
	if a.table.DrawRadialGradient == nil {
		return
	}
	a.table.DrawRadialGradient(a.table.UserData, dc, &BackgroundLayerRef{l: layer}, &RadialGradientRef{g: gradient})
}

// DrawConicGradient forwards to the draw-conic-gradient entry. Absent
// entry: no-op.
func (a *Adapter) DrawConicGradient(dc htmlbridge.DeviceContext, layer *engine.BackgroundLayer, gradient *engine.ConicGradient) {
	if a.table.DrawConicGradient == nil {
		return
	}
	a.table.DrawConicGradient(a.table.UserData, dc, &BackgroundLayerRef{l: layer}, &ConicGradientRef{g: gradient})
}

// DrawBorders forwards to the draw-borders entry. Absent entry: no-op.
func (a *Adapter) DrawBorders(dc htmlbridge.DeviceContext, borders engine.Borders, drawPos engine.Position, root bool) {
	if a.table.DrawBorders == nil {
		return
	}
	a.table.DrawBorders(a.table.UserData, dc, abi.MarshalBorders(borders), abi.MarshalPosition(drawPos), root)
}

// SetCaption forwards to the set-caption entry. Absent entry: no-op.
func (a *Adapter) SetCaption(caption string) {
	if a.table.SetCaption == nil {
		return
	}
	a.table.SetCaption(a.table.UserData, caption)
}

// SetBaseURL forwards to the set-base-url entry. Absent entry: no-op.
func (a *Adapter) SetBaseURL(baseURL string) {
	if a.table.SetBaseURL == nil {
		return
	}
	a.table.SetBaseURL(a.table.UserData, baseURL)
}

// Link forwards to the link entry. Absent entry: no-op.
func (a *Adapter) Link() {
	if a.table.Link == nil {
		return
	}
	a.table.Link(a.table.UserData)
}

// OnAnchorClick forwards to the on-anchor-click entry. Absent entry: no-op.
func (a *Adapter) OnAnchorClick(url string) {
	if a.table.OnAnchorClick == nil {
		return
	}
	a.table.OnAnchorClick(a.table.UserData, url)
}

// OnMouseEvent forwards to the on-mouse-event entry. Absent entry: no-op.
func (a *Adapter) OnMouseEvent(event engine.MouseEvent) {
	if a.table.OnMouseEvent == nil {
		return
	}
	a.table.OnMouseEvent(a.table.UserData, int32(event))
}

// SetCursor forwards to the set-cursor entry. Absent entry: no-op.
func (a *Adapter) SetCursor(cursor string) {
	if a.table.SetCursor == nil {
		return
	}
	a.table.SetCursor(a.table.UserData, cursor)
}

// TransformText routes the transform-text capability through the string
// return bridge. Absent entry, or an entry that never invokes the setter:
// input unchanged.
func (a *Adapter) TransformText(text string, tt engine.TextTransform) string {
	if a.table.TransformText == nil {
		return text
	}
	set, result := captureString(text)
	a.table.TransformText(a.table.UserData, text, int32(tt), set)
	return *result
}

// ImportCSS routes the import-css capability through the string return
// bridge. Absent entry, or an entry that never invokes the setter: empty
// stylesheet.
func (a *Adapter) ImportCSS(url, baseURL string) string {
	if a.table.ImportCSS == nil {
		return ""
	}
	set, result := captureString("")
	a.table.ImportCSS(a.table.UserData, url, baseURL, set)
	return *result
}

// SetClip forwards to the set-clip entry. Absent entry: no-op.
func (a *Adapter) SetClip(pos engine.Position, radius engine.BorderRadiuses) {
	if a.table.SetClip == nil {
		return
	}
	a.table.SetClip(a.table.UserData, abi.MarshalPosition(pos), abi.MarshalBorderRadiuses(radius))
}

// DelClip forwards to the del-clip entry. Absent entry: no-op.
func (a *Adapter) DelClip() {
	if a.table.DelClip == nil {
		return
	}
	a.table.DelClip(a.table.UserData)
}

// Viewport forwards to the viewport entry. Absent entry: zero rectangle.
func (a *Adapter) Viewport() engine.Position {
	if a.table.Viewport == nil {
		return engine.Position{}
	}
	var viewport abi.Position
	a.table.Viewport(a.table.UserData, &viewport)
	return abi.UnmarshalPosition(viewport)
}

// GetMediaFeatures forwards to the media-features entry. Absent entry: zero
// features; the engine substitutes its own defaults for a zero value.
func (a *Adapter) GetMediaFeatures() engine.MediaFeatures {
	if a.table.MediaFeatures == nil {
		return engine.MediaFeatures{}
	}
	var media abi.MediaFeatures
	a.table.MediaFeatures(a.table.UserData, &media)
	return abi.UnmarshalMediaFeatures(media)
}

// Language routes the get-language capability through the string return
// bridge. Absent entry, or an entry that never invokes the setter: empty
// pair.
func (a *Adapter) Language() (string, string) {
	if a.table.Language == nil {
		return "", ""
	}
	set, language, culture := captureLanguage()
	a.table.Language(a.table.UserData, set)
	return *language, *culture
}

// CreateElement always declines, selecting the engine's default element
// construction. Custom element behavior is deliberately not supported
// across this boundary.
func (a *Adapter) CreateElement(tagName string, attributes map[string]string) engine.Element {
	return nil
}
