package container

import (
	"testing"

	"github.com/htmlkit/htmlbridge/abi"
	"github.com/htmlkit/htmlbridge/engine"
)

func TestNilRefsReturnDefaults(t *testing.T) {
	var fd *FontDescriptionRef
	if fd.Family() != "" || fd.Size() != 0 || fd.Weight() != 0 {
		t.Fatal("nil font description ref should yield zero values")
	}
	if !fd.DecorationThicknessIsPredefined() {
		t.Fatal("nil ref decoration thickness should default to predefined")
	}
	if fd.DecorationColor() != (abi.WebColor{}) {
		t.Fatal("nil ref decoration color should be zero")
	}

	var lm *ListMarkerRef
	if lm.Image() != "" || lm.Type() != 0 || lm.Index() != 0 || lm.Font() != 0 {
		t.Fatal("nil list marker ref should yield zero values")
	}
	if lm.Pos() != (abi.Position{}) {
		t.Fatal("nil list marker pos should be zero")
	}

	var bl *BackgroundLayerRef
	if bl.BorderBox() != (abi.Position{}) || bl.IsRoot() {
		t.Fatal("nil background layer ref should yield zero values")
	}

	var lg *LinearGradientRef
	if lg.ColorPointsCount() != 0 || lg.Start() != (abi.Point{}) {
		t.Fatal("nil linear gradient ref should yield zero values")
	}
	var rg *RadialGradientRef
	if rg.ColorPointsCount() != 0 || rg.Position() != (abi.Point{}) {
		t.Fatal("nil radial gradient ref should yield zero values")
	}
	var cg *ConicGradientRef
	if cg.Angle() != 0 || cg.Radius() != 0 || cg.ColorPointsCount() != 0 {
		t.Fatal("nil conic gradient ref should yield zero values")
	}
}

func TestGradientIndexBounds(t *testing.T) {
	g := &LinearGradientRef{g: &engine.LinearGradient{
		Start: engine.PointF{X: 0, Y: 0},
		End:   engine.PointF{X: 100, Y: 0},
		ColorPoints: []engine.ColorPoint{
			{Offset: 0, Color: engine.WebColor{Red: 255, Alpha: 255}},
			{Offset: 1, Color: engine.WebColor{Blue: 255, Alpha: 255}},
		},
	}}

	if g.ColorPointsCount() != 2 {
		t.Fatalf("expected 2 stops, got %d", g.ColorPointsCount())
	}
	if g.ColorPointOffset(1) != 1 {
		t.Fatalf("unexpected offset %v", g.ColorPointOffset(1))
	}
	if got := g.ColorPointColor(0); got != (abi.WebColor{Red: 255, Alpha: 255}) {
		t.Fatalf("unexpected color %+v", got)
	}

	// Out of range, both sides: zero defaults, no fault.
	if g.ColorPointOffset(-1) != 0 || g.ColorPointOffset(2) != 0 {
		t.Fatal("out-of-range offsets should be zero")
	}
	if g.ColorPointColor(-1) != (abi.WebColor{}) || g.ColorPointColor(2) != (abi.WebColor{}) {
		t.Fatal("out-of-range colors should be zero")
	}
}

func TestFontDescriptionThicknessProjection(t *testing.T) {
	predefined := &FontDescriptionRef{d: &engine.FontDescription{
		DecorationThicknessIsPredefined: true,
		DecorationThicknessPredef:       2,
		DecorationThicknessValue:        3.5,
	}}
	if !predefined.DecorationThicknessIsPredefined() {
		t.Fatal("expected predefined thickness")
	}
	if predefined.DecorationThicknessPredef() != 2 {
		t.Fatalf("unexpected predef %d", predefined.DecorationThicknessPredef())
	}
	// The length projection is only meaningful for non-predefined values.
	if predefined.DecorationThicknessValue() != 0 {
		t.Fatal("predefined thickness should project a zero length")
	}

	length := &FontDescriptionRef{d: &engine.FontDescription{
		DecorationThicknessValue: 3.5,
	}}
	if length.DecorationThicknessValue() != 3.5 {
		t.Fatalf("unexpected length %v", length.DecorationThicknessValue())
	}
	if length.DecorationThicknessPredef() != 0 {
		t.Fatal("length thickness should project a zero predef")
	}
}

func TestBackgroundLayerProjection(t *testing.T) {
	bl := &BackgroundLayerRef{l: &engine.BackgroundLayer{
		BorderBox:  engine.Position{X: 1, Y: 2, Width: 3, Height: 4},
		ClipBox:    engine.Position{X: 5, Y: 6, Width: 7, Height: 8},
		OriginBox:  engine.Position{X: 9, Y: 10, Width: 11, Height: 12},
		Attachment: 1,
		Repeat:     2,
		IsRoot:     true,
	}}

	if bl.BorderBox() != (abi.Position{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Fatalf("unexpected border box %+v", bl.BorderBox())
	}
	if bl.ClipBox() != (abi.Position{X: 5, Y: 6, Width: 7, Height: 8}) {
		t.Fatalf("unexpected clip box %+v", bl.ClipBox())
	}
	if bl.OriginBox() != (abi.Position{X: 9, Y: 10, Width: 11, Height: 12}) {
		t.Fatalf("unexpected origin box %+v", bl.OriginBox())
	}
	if bl.Attachment() != 1 || bl.Repeat() != 2 || !bl.IsRoot() {
		t.Fatal("scalar fields not projected")
	}
}
