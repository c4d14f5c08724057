package container

import (
	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/abi"
	"github.com/htmlkit/htmlbridge/engine"
)

// Descriptor references wrap engine-owned nested objects without exposing
// their layout. Every accessor is nil-safe: a nil receiver (or a nil wrapped
// descriptor) yields the documented zero default, and index accessors yield
// the same default outside [0, count). A Ref is only valid during the
// callback invocation that supplied it.

// FontDescriptionRef is an opaque reference to an engine font description.
type FontDescriptionRef struct {
	d *engine.FontDescription
}

// Family returns the requested font family, or "" for a nil ref.
func (r *FontDescriptionRef) Family() string {
	if r == nil || r.d == nil {
		return ""
	}
	return r.d.Family
}

// Size returns the requested font size in pixels.
func (r *FontDescriptionRef) Size() float32 {
	if r == nil || r.d == nil {
		return 0
	}
	return r.d.Size
}

// Style returns the font-style ordinal.
func (r *FontDescriptionRef) Style() int32 {
	if r == nil || r.d == nil {
		return 0
	}
	return int32(r.d.Style)
}

// Weight returns the numeric font weight.
func (r *FontDescriptionRef) Weight() int32 {
	if r == nil || r.d == nil {
		return 0
	}
	return int32(r.d.Weight)
}

// DecorationLine returns the text-decoration-line bit set.
func (r *FontDescriptionRef) DecorationLine() int32 {
	if r == nil || r.d == nil {
		return 0
	}
	return int32(r.d.DecorationLine)
}

// DecorationThicknessIsPredefined reports whether the decoration thickness
// is a predefined keyword rather than a length. Nil refs report true, the
// keyword default.
func (r *FontDescriptionRef) DecorationThicknessIsPredefined() bool {
	if r == nil || r.d == nil {
		return true
	}
	return r.d.DecorationThicknessIsPredefined
}

// DecorationThicknessPredef returns the predefined-thickness ordinal, valid
// when DecorationThicknessIsPredefined is true.
func (r *FontDescriptionRef) DecorationThicknessPredef() int32 {
	if r == nil || r.d == nil || !r.d.DecorationThicknessIsPredefined {
		return 0
	}
	return int32(r.d.DecorationThicknessPredef)
}

// DecorationThicknessValue returns the thickness length, valid when
// DecorationThicknessIsPredefined is false.
func (r *FontDescriptionRef) DecorationThicknessValue() float32 {
	if r == nil || r.d == nil || r.d.DecorationThicknessIsPredefined {
		return 0
	}
	return r.d.DecorationThicknessValue
}

// DecorationStyle returns the text-decoration-style ordinal.
func (r *FontDescriptionRef) DecorationStyle() int32 {
	if r == nil || r.d == nil {
		return 0
	}
	return int32(r.d.DecorationStyle)
}

// DecorationColor returns the text-decoration color.
func (r *FontDescriptionRef) DecorationColor() abi.WebColor {
	if r == nil || r.d == nil {
		return abi.WebColor{}
	}
	return abi.MarshalWebColor(r.d.DecorationColor)
}

// EmphasisStyle returns the text-emphasis style string.
func (r *FontDescriptionRef) EmphasisStyle() string {
	if r == nil || r.d == nil {
		return ""
	}
	return r.d.EmphasisStyle
}

// EmphasisColor returns the text-emphasis color.
func (r *FontDescriptionRef) EmphasisColor() abi.WebColor {
	if r == nil || r.d == nil {
		return abi.WebColor{}
	}
	return abi.MarshalWebColor(r.d.EmphasisColor)
}

// EmphasisPosition returns the text-emphasis-position bit set.
func (r *FontDescriptionRef) EmphasisPosition() int32 {
	if r == nil || r.d == nil {
		return 0
	}
	return int32(r.d.EmphasisPosition)
}

// ListMarkerRef is an opaque reference to an engine list marker.
type ListMarkerRef struct {
	m *engine.ListMarker
}

// Image returns the marker image URL, or "" when the marker is geometric.
func (r *ListMarkerRef) Image() string {
	if r == nil || r.m == nil {
		return ""
	}
	return r.m.Image
}

// BaseURL returns the base URL the image is resolved against.
func (r *ListMarkerRef) BaseURL() string {
	if r == nil || r.m == nil {
		return ""
	}
	return r.m.BaseURL
}

// Type returns the list-style-type ordinal.
func (r *ListMarkerRef) Type() int32 {
	if r == nil || r.m == nil {
		return 0
	}
	return int32(r.m.MarkerType)
}

// Color returns the marker color.
func (r *ListMarkerRef) Color() abi.WebColor {
	if r == nil || r.m == nil {
		return abi.WebColor{}
	}
	return abi.MarshalWebColor(r.m.Color)
}

// Pos returns the marker rectangle.
func (r *ListMarkerRef) Pos() abi.Position {
	if r == nil || r.m == nil {
		return abi.Position{}
	}
	return abi.MarshalPosition(r.m.Pos)
}

// Index returns the ordinal of the list item, or 0 for unordered lists.
func (r *ListMarkerRef) Index() int32 {
	if r == nil || r.m == nil {
		return 0
	}
	return int32(r.m.Index)
}

// Font returns the font handle to draw an index marker with.
func (r *ListMarkerRef) Font() htmlbridge.FontHandle {
	if r == nil || r.m == nil {
		return 0
	}
	return r.m.Font
}

// BackgroundLayerRef is an opaque reference to one background paint layer.
type BackgroundLayerRef struct {
	l *engine.BackgroundLayer
}

// BorderBox returns the layer's border box.
func (r *BackgroundLayerRef) BorderBox() abi.Position {
	if r == nil || r.l == nil {
		return abi.Position{}
	}
	return abi.MarshalPosition(r.l.BorderBox)
}

// BorderRadius returns the layer's corner radii.
func (r *BackgroundLayerRef) BorderRadius() abi.BorderRadiuses {
	if r == nil || r.l == nil {
		return abi.BorderRadiuses{}
	}
	return abi.MarshalBorderRadiuses(r.l.BorderRadius)
}

// ClipBox returns the rectangle painting is clipped to.
func (r *BackgroundLayerRef) ClipBox() abi.Position {
	if r == nil || r.l == nil {
		return abi.Position{}
	}
	return abi.MarshalPosition(r.l.ClipBox)
}

// OriginBox returns the background positioning area.
func (r *BackgroundLayerRef) OriginBox() abi.Position {
	if r == nil || r.l == nil {
		return abi.Position{}
	}
	return abi.MarshalPosition(r.l.OriginBox)
}

// Attachment returns the background-attachment ordinal.
func (r *BackgroundLayerRef) Attachment() int32 {
	if r == nil || r.l == nil {
		return 0
	}
	return int32(r.l.Attachment)
}

// Repeat returns the background-repeat ordinal.
func (r *BackgroundLayerRef) Repeat() int32 {
	if r == nil || r.l == nil {
		return 0
	}
	return int32(r.l.Repeat)
}

// IsRoot reports whether this is the root element's background.
func (r *BackgroundLayerRef) IsRoot() bool {
	if r == nil || r.l == nil {
		return false
	}
	return r.l.IsRoot
}

// LinearGradientRef is an opaque reference to a linear-gradient image.
type LinearGradientRef struct {
	g *engine.LinearGradient
}

// Start returns the gradient line's start point.
func (r *LinearGradientRef) Start() abi.Point {
	if r == nil || r.g == nil {
		return abi.Point{}
	}
	return abi.MarshalPoint(r.g.Start)
}

// End returns the gradient line's end point.
func (r *LinearGradientRef) End() abi.Point {
	if r == nil || r.g == nil {
		return abi.Point{}
	}
	return abi.MarshalPoint(r.g.End)
}

// ColorPointsCount returns the number of gradient stops.
func (r *LinearGradientRef) ColorPointsCount() int32 {
	if r == nil || r.g == nil {
		return 0
	}
	return int32(len(r.g.ColorPoints))
}

// ColorPointOffset returns the offset of stop idx, or 0 out of range.
func (r *LinearGradientRef) ColorPointOffset(idx int32) float32 {
	if r == nil || r.g == nil || idx < 0 || int(idx) >= len(r.g.ColorPoints) {
		return 0
	}
	return r.g.ColorPoints[idx].Offset
}

// ColorPointColor returns the color of stop idx, or zero out of range.
func (r *LinearGradientRef) ColorPointColor(idx int32) abi.WebColor {
	if r == nil || r.g == nil || idx < 0 || int(idx) >= len(r.g.ColorPoints) {
		return abi.WebColor{}
	}
	return abi.MarshalWebColor(r.g.ColorPoints[idx].Color)
}

// ColorSpace returns the interpolation color space ordinal.
func (r *LinearGradientRef) ColorSpace() int32 {
	if r == nil || r.g == nil {
		return 0
	}
	return int32(r.g.ColorSpace)
}

// HueInterpolation returns the hue interpolation method ordinal.
func (r *LinearGradientRef) HueInterpolation() int32 {
	if r == nil || r.g == nil {
		return 0
	}
	return int32(r.g.HueInterpolation)
}

// RadialGradientRef is an opaque reference to a radial-gradient image.
type RadialGradientRef struct {
	g *engine.RadialGradient
}

// Position returns the gradient center.
func (r *RadialGradientRef) Position() abi.Point {
	if r == nil || r.g == nil {
		return abi.Point{}
	}
	return abi.MarshalPoint(r.g.Position)
}

// Radius returns the x/y radii of the ending shape.
func (r *RadialGradientRef) Radius() abi.Point {
	if r == nil || r.g == nil {
		return abi.Point{}
	}
	return abi.MarshalPoint(r.g.Radius)
}

// ColorPointsCount returns the number of gradient stops.
func (r *RadialGradientRef) ColorPointsCount() int32 {
	if r == nil || r.g == nil {
		return 0
	}
	return int32(len(r.g.ColorPoints))
}

// ColorPointOffset returns the offset of stop idx, or 0 out of range.
func (r *RadialGradientRef) ColorPointOffset(idx int32) float32 {
	if r == nil || r.g == nil || idx < 0 || int(idx) >= len(r.g.ColorPoints) {
		return 0
	}
	return r.g.ColorPoints[idx].Offset
}

// ColorPointColor returns the color of stop idx, or zero out of range.
func (r *RadialGradientRef) ColorPointColor(idx int32) abi.WebColor {
	if r == nil || r.g == nil || idx < 0 || int(idx) >= len(r.g.ColorPoints) {
		return abi.WebColor{}
	}
	return abi.MarshalWebColor(r.g.ColorPoints[idx].Color)
}

// ColorSpace returns the interpolation color space ordinal.
func (r *RadialGradientRef) ColorSpace() int32 {
	if r == nil || r.g == nil {
		return 0
	}
	return int32(r.g.ColorSpace)
}

// HueInterpolation returns the hue interpolation method ordinal.
func (r *RadialGradientRef) HueInterpolation() int32 {
	if r == nil || r.g == nil {
		return 0
	}
	return int32(r.g.HueInterpolation)
}

// ConicGradientRef is an opaque reference to a conic-gradient image.
type ConicGradientRef struct {
	g *engine.ConicGradient
}

// Position returns the gradient center.
func (r *ConicGradientRef) Position() abi.Point {
	if r == nil || r.g == nil {
		return abi.Point{}
	}
	return abi.MarshalPoint(r.g.Position)
}

// Angle returns the starting angle in degrees.
func (r *ConicGradientRef) Angle() float32 {
	if r == nil || r.g == nil {
		return 0
	}
	return r.g.Angle
}

// Radius returns the gradient radius.
func (r *ConicGradientRef) Radius() float32 {
	if r == nil || r.g == nil {
		return 0
	}
	return r.g.Radius
}

// ColorPointsCount returns the number of gradient stops.
func (r *ConicGradientRef) ColorPointsCount() int32 {
	if r == nil || r.g == nil {
		return 0
	}
	return int32(len(r.g.ColorPoints))
}

// ColorPointOffset returns the offset of stop idx, or 0 out of range.
func (r *ConicGradientRef) ColorPointOffset(idx int32) float32 {
	if r == nil || r.g == nil || idx < 0 || int(idx) >= len(r.g.ColorPoints) {
		return 0
	}
	return r.g.ColorPoints[idx].Offset
}

// ColorPointColor returns the color of stop idx, or zero out of range.
func (r *ConicGradientRef) ColorPointColor(idx int32) abi.WebColor {
	if r == nil || r.g == nil || idx < 0 || int(idx) >= len(r.g.ColorPoints) {
		return abi.WebColor{}
	}
	return abi.MarshalWebColor(r.g.ColorPoints[idx].Color)
}

// ColorSpace returns the interpolation color space ordinal.
func (r *ConicGradientRef) ColorSpace() int32 {
	if r == nil || r.g == nil {
		return 0
	}
	return int32(r.g.ColorSpace)
}

// HueInterpolation returns the hue interpolation method ordinal.
func (r *ConicGradientRef) HueInterpolation() int32 {
	if r == nil || r.g == nil {
		return 0
	}
	return int32(r.g.HueInterpolation)
}
