package engine

// Position is a rectangle in pixel coordinates.
type Position struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (p Position) Contains(x, y float32) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float32
	Height float32
}

// PointF is a 2D point in pixel coordinates.
type PointF struct {
	X float32
	Y float32
}

// WebColor is an 8-bit RGBA color. IsCurrentColor marks the CSS
// currentcolor keyword; the channel values are then placeholders.
type WebColor struct {
	Red            uint8
	Green          uint8
	Blue           uint8
	Alpha          uint8
	IsCurrentColor bool
}

// FontMetrics describes a realized font, filled in by the host's
// create-font callback.
type FontMetrics struct {
	FontSize   float32
	Height     float32
	Ascent     float32
	Descent    float32
	XHeight    float32
	CHWidth    float32
	DrawSpaces bool
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

// Border is one edge of a box border.
type Border struct {
	Width float32
	Style BorderStyle
	Color WebColor
}

// Borders collects the four edges and the corner radii of a box.
type Borders struct {
	Left   Border
	Top    Border
	Right  Border
	Bottom Border
	Radius BorderRadiuses
}

// MediaFeatures is the media-query evaluation context supplied by the host.
type MediaFeatures struct {
	Type         MediaType
	Width        float32
	Height       float32
	DeviceWidth  float32
	DeviceHeight float32
	Color        int
	ColorIndex   int
	Monochrome   int
	Resolution   float32
}
