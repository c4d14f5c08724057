package engine

import (
	htmlbridge "github.com/htmlkit/htmlbridge"
)

// The types in this file are engine-owned descriptors. The engine passes
// pointers to them into DocumentContainer callbacks; they are valid only for
// the duration of that call and must not be retained.

// FontDescription is the resolved font request handed to create-font.
type FontDescription struct {
	Family string
	Size   float32
	Style  FontStyle
	Weight int

	DecorationLine                  int
	DecorationThicknessIsPredefined bool
	DecorationThicknessPredef       int
	DecorationThicknessValue        float32
	DecorationStyle                 int
	DecorationColor                 WebColor

	EmphasisStyle    string
	EmphasisColor    WebColor
	EmphasisPosition int
}

// ListMarker describes one list-item marker to draw.
type ListMarker struct {
	Image      string
	BaseURL    string
	MarkerType ListMarkerType
	Color      WebColor
	Pos        Position
	Index      int
	Font       htmlbridge.FontHandle
}

// ColorPoint is one gradient stop.
type ColorPoint struct {
	Offset float32
	Color  WebColor
}

// BackgroundLayer describes the geometry of one background paint layer.
type BackgroundLayer struct {
	BorderBox    Position
	BorderRadius BorderRadiuses
	ClipBox      Position
	OriginBox    Position
	Attachment   int
	Repeat       int
	IsRoot       bool
}

// LinearGradient describes a linear-gradient background image.
type LinearGradient struct {
	Start            PointF
	End              PointF
	ColorPoints      []ColorPoint
	ColorSpace       int
	HueInterpolation int
}

// RadialGradient describes a radial-gradient background image.
type RadialGradient struct {
	Position         PointF
	Radius           PointF
	ColorPoints      []ColorPoint
	ColorSpace       int
	HueInterpolation int
}

// ConicGradient describes a conic-gradient background image.
type ConicGradient struct {
	Position         PointF
	Angle            float32
	Radius           float32
	ColorPoints      []ColorPoint
	ColorSpace       int
	HueInterpolation int
}
