package abi

// Position is a rectangle, ABI form of engine.Position.
type Position struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Size is a width/height pair, ABI form of engine.Size.
type Size struct {
	Width  float32
	Height float32
}

// Point is a 2D point, ABI form of engine.PointF.
type Point struct {
	X float32
	Y float32
}

// WebColor is an RGBA color. IsCurrentColor is 0 or 1.
type WebColor struct {
	Red            uint8
	Green          uint8
	Blue           uint8
	Alpha          uint8
	IsCurrentColor int32
}

// FontMetrics is the ABI form of engine.FontMetrics. DrawSpaces is 0 or 1.
type FontMetrics struct {
	FontSize   float32
	Height     float32
	Ascent     float32
	Descent    float32
	XHeight    float32
	CHWidth    float32
	DrawSpaces int32
	SubShift   float32
	SuperShift float32
}

// BorderRadiuses holds the x/y radius of each corner.
type BorderRadiuses struct {
	TopLeftX     float32
	TopLeftY     float32
	TopRightX    float32
	TopRightY    float32
	BottomRightX float32
	BottomRightY float32
	BottomLeftX  float32
	BottomLeftY  float32
}

// Border is one border edge. Style carries the engine.BorderStyle ordinal.
type Border struct {
	Width float32
	Style int32
	Color WebColor
}

// Borders collects four edges plus corner radii.
type Borders struct {
	Left   Border
	Top    Border
	Right  Border
	Bottom Border
	Radius BorderRadiuses
}

// MediaFeatures is the ABI form of engine.MediaFeatures. Type carries the
// engine.MediaType ordinal.
type MediaFeatures struct {
	Type         int32
	Width        float32
	Height       float32
	DeviceWidth  float32
	DeviceHeight float32
	Color        int32
	ColorIndex   int32
	Monochrome   int32
	Resolution   float32
}
