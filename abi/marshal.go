package abi

import (
	"github.com/htmlkit/htmlbridge/engine"
)

// Marshalling between native and ABI representations. Every function is a
// pure field projection; integer and enum fields are bit-exact, float fields
// are copied unchanged.

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// MarshalPosition converts a native position to its ABI form.
func MarshalPosition(p engine.Position) Position {
	return Position{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// UnmarshalPosition converts an ABI position back to native form.
func UnmarshalPosition(p Position) engine.Position {
	return engine.Position{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// MarshalSize converts a native size to its ABI form.
func MarshalSize(s engine.Size) Size {
	return Size{Width: s.Width, Height: s.Height}
}

// UnmarshalSize converts an ABI size back to native form.
func UnmarshalSize(s Size) engine.Size {
	return engine.Size{Width: s.Width, Height: s.Height}
}

// MarshalPoint converts a native point to its ABI form.
func MarshalPoint(p engine.PointF) Point {
	return Point{X: p.X, Y: p.Y}
}

// UnmarshalPoint converts an ABI point back to native form.
func UnmarshalPoint(p Point) engine.PointF {
	return engine.PointF{X: p.X, Y: p.Y}
}

// MarshalWebColor converts a native color to its ABI form.
func MarshalWebColor(c engine.WebColor) WebColor {
	return WebColor{
		Red:            c.Red,
		Green:          c.Green,
		Blue:           c.Blue,
		Alpha:          c.Alpha,
		IsCurrentColor: boolToInt32(c.IsCurrentColor),
	}
}

// UnmarshalWebColor converts an ABI color back to native form.
func UnmarshalWebColor(c WebColor) engine.WebColor {
	return engine.WebColor{
		Red:            c.Red,
		Green:          c.Green,
		Blue:           c.Blue,
		Alpha:          c.Alpha,
		IsCurrentColor: c.IsCurrentColor != 0,
	}
}

// MarshalFontMetrics converts native font metrics to ABI form.
func MarshalFontMetrics(m engine.FontMetrics) FontMetrics {
	return FontMetrics{
		FontSize:   m.FontSize,
		Height:     m.Height,
		Ascent:     m.Ascent,
		Descent:    m.Descent,
		XHeight:    m.XHeight,
		CHWidth:    m.CHWidth,
		DrawSpaces: boolToInt32(m.DrawSpaces),
		SubShift:   m.SubShift,
		SuperShift: m.SuperShift,
	}
}

// UnmarshalFontMetrics converts ABI font metrics back to native form.
func UnmarshalFontMetrics(m FontMetrics) engine.FontMetrics {
	return engine.FontMetrics{
		FontSize:   m.FontSize,
		Height:     m.Height,
		Ascent:     m.Ascent,
		Descent:    m.Descent,
		XHeight:    m.XHeight,
		CHWidth:    m.CHWidth,
		DrawSpaces: m.DrawSpaces != 0,
		SubShift:   m.SubShift,
		SuperShift: m.SuperShift,
	}
}

// MarshalBorderRadiuses converts native corner radii to ABI form.
func MarshalBorderRadiuses(r engine.BorderRadiuses) BorderRadiuses {
	return BorderRadiuses{
		TopLeftX:     r.TopLeftX,
		TopLeftY:     r.TopLeftY,
		TopRightX:    r.TopRightX,
		TopRightY:    r.TopRightY,
		BottomRightX: r.BottomRightX,
		BottomRightY: r.BottomRightY,
		BottomLeftX:  r.BottomLeftX,
		BottomLeftY:  r.BottomLeftY,
	}
}

// UnmarshalBorderRadiuses converts ABI corner radii back to native form.
func UnmarshalBorderRadiuses(r BorderRadiuses) engine.BorderRadiuses {
	return engine.BorderRadiuses{
		TopLeftX:     r.TopLeftX,
		TopLeftY:     r.TopLeftY,
		TopRightX:    r.TopRightX,
		TopRightY:    r.TopRightY,
		BottomRightX: r.BottomRightX,
		BottomRightY: r.BottomRightY,
		BottomLeftX:  r.BottomLeftX,
		BottomLeftY:  r.BottomLeftY,
	}
}

// MarshalBorder converts one native border edge to ABI form.
func MarshalBorder(b engine.Border) Border {
	return Border{
		Width: b.Width,
		Style: int32(b.Style),
		Color: MarshalWebColor(b.Color),
	}
}

// UnmarshalBorder converts one ABI border edge back to native form.
func UnmarshalBorder(b Border) engine.Border {
	return engine.Border{
		Width: b.Width,
		Style: engine.BorderStyle(b.Style),
		Color: UnmarshalWebColor(b.Color),
	}
}

// MarshalBorders converts native box borders to ABI form.
func MarshalBorders(b engine.Borders) Borders {
	return Borders{
		Left:   MarshalBorder(b.Left),
		Top:    MarshalBorder(b.Top),
		Right:  MarshalBorder(b.Right),
		Bottom: MarshalBorder(b.Bottom),
		Radius: MarshalBorderRadiuses(b.Radius),
	}
}

// UnmarshalBorders converts ABI box borders back to native form.
func UnmarshalBorders(b Borders) engine.Borders {
	return engine.Borders{
		Left:   UnmarshalBorder(b.Left),
		Top:    UnmarshalBorder(b.Top),
		Right:  UnmarshalBorder(b.Right),
		Bottom: UnmarshalBorder(b.Bottom),
		Radius: UnmarshalBorderRadiuses(b.Radius),
	}
}

// MarshalMediaFeatures converts native media features to ABI form.
func MarshalMediaFeatures(m engine.MediaFeatures) MediaFeatures {
	return MediaFeatures{
		Type:         int32(m.Type),
		Width:        m.Width,
		Height:       m.Height,
		DeviceWidth:  m.DeviceWidth,
		DeviceHeight: m.DeviceHeight,
		Color:        int32(m.Color),
		ColorIndex:   int32(m.ColorIndex),
		Monochrome:   int32(m.Monochrome),
		Resolution:   m.Resolution,
	}
}

// UnmarshalMediaFeatures converts ABI media features back to native form.
func UnmarshalMediaFeatures(m MediaFeatures) engine.MediaFeatures {
	return engine.MediaFeatures{
		Type:         engine.MediaType(m.Type),
		Width:        m.Width,
		Height:       m.Height,
		DeviceWidth:  m.DeviceWidth,
		DeviceHeight: m.DeviceHeight,
		Color:        int(m.Color),
		ColorIndex:   int(m.ColorIndex),
		Monochrome:   int(m.Monochrome),
		Resolution:   m.Resolution,
	}
}
