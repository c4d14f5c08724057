package container

import (
	"testing"

	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/abi"
	"github.com/htmlkit/htmlbridge/engine"
)

func TestAdapter_NilTableDefaults(t *testing.T) {
	a := NewAdapter(nil)

	if got := a.PtToPx(12.5); got != 12.5 {
		t.Fatalf("PtToPx default should be identity, got %v", got)
	}
	if got := a.DefaultFontSize(); got != 16 {
		t.Fatalf("DefaultFontSize default should be 16, got %v", got)
	}
	if got := a.DefaultFontName(); got != "serif" {
		t.Fatalf("DefaultFontName default should be serif, got %q", got)
	}
	if got := a.TextWidth("hello", 1); got != 0 {
		t.Fatalf("TextWidth default should be 0, got %v", got)
	}
	if h, m := a.CreateFont(&engine.FontDescription{Family: "serif"}); h != 0 || m != (engine.FontMetrics{}) {
		t.Fatalf("CreateFont default should be zero handle and metrics, got %v %+v", h, m)
	}
	if got := a.ImageSize("a.png", ""); got != (engine.Size{}) {
		t.Fatalf("ImageSize default should be zero, got %+v", got)
	}
	if got := a.Viewport(); got != (engine.Position{}) {
		t.Fatalf("Viewport default should be zero, got %+v", got)
	}
	if got := a.GetMediaFeatures(); got != (engine.MediaFeatures{}) {
		t.Fatalf("GetMediaFeatures default should be zero, got %+v", got)
	}
	if got := a.TransformText("MiXeD", engine.TextTransformUppercase); got != "MiXeD" {
		t.Fatalf("TransformText default should be identity, got %q", got)
	}
	if got := a.ImportCSS("a.css", ""); got != "" {
		t.Fatalf("ImportCSS default should be empty, got %q", got)
	}
	if lang, cult := a.Language(); lang != "" || cult != "" {
		t.Fatalf("Language default should be empty pair, got %q %q", lang, cult)
	}
	if el := a.CreateElement("div", nil); el != nil {
		t.Fatal("CreateElement must always decline")
	}

	// Drawing and notification entries must be callable no-ops.
	a.DeleteFont(1)
	a.DrawText(0, "x", 0, engine.WebColor{}, engine.Position{})
	a.DrawListMarker(0, &engine.ListMarker{})
	a.LoadImage("a.png", "", true)
	a.DrawImage(0, &engine.BackgroundLayer{}, "a.png", "")
	a.DrawSolidFill(0, &engine.BackgroundLayer{}, engine.WebColor{})
	a.DrawLinearGradient(0, &engine.BackgroundLayer{}, &engine.LinearGradient{})
	a.DrawRadialGradient(0, &engine.BackgroundLayer{}, &engine.RadialGradient{})
	a.DrawConicGradient(0, &engine.BackgroundLayer{}, &engine.ConicGradient{})
	a.DrawBorders(0, engine.Borders{}, engine.Position{}, false)
	a.SetCaption("t")
	a.SetBaseURL("http://x/")
	a.Link()
	a.OnAnchorClick("http://x/")
	a.OnMouseEvent(engine.MouseEventEnter)
	a.SetCursor("pointer")
	a.SetClip(engine.Position{}, engine.BorderRadiuses{})
	a.DelClip()
}

func TestAdapter_UserDataThreading(t *testing.T) {
	type hostState struct{ calls []string }
	state := &hostState{}

	a := NewAdapter(&Table{
		UserData: state,
		SetCaption: func(ud any, caption string) {
			ud.(*hostState).calls = append(ud.(*hostState).calls, "caption:"+caption)
		},
		Link: func(ud any) {
			ud.(*hostState).calls = append(ud.(*hostState).calls, "link")
		},
	})

	a.SetCaption("Title")
	a.Link()

	if len(state.calls) != 2 || state.calls[0] != "caption:Title" || state.calls[1] != "link" {
		t.Fatalf("unexpected call log %v", state.calls)
	}
	if a.UserData() != state {
		t.Fatal("UserData should return the table's context value")
	}
}

func TestAdapter_CreateFontMarshalsBothWays(t *testing.T) {
	var seenFamily string
	var seenSize float32

	a := NewAdapter(&Table{
		CreateFont: func(ud any, descr *FontDescriptionRef, metrics *abi.FontMetrics) htmlbridge.FontHandle {
			seenFamily = descr.Family()
			seenSize = descr.Size()
			*metrics = abi.FontMetrics{
				FontSize:   descr.Size(),
				Height:     20,
				Ascent:     15,
				Descent:    5,
				DrawSpaces: 1,
			}
			return 42
		},
	})

	h, m := a.CreateFont(&engine.FontDescription{Family: "mono", Size: 14})

	if h != 42 {
		t.Fatalf("expected handle 42, got %v", h)
	}
	if seenFamily != "mono" || seenSize != 14 {
		t.Fatalf("descriptor not forwarded: %q %v", seenFamily, seenSize)
	}
	want := engine.FontMetrics{FontSize: 14, Height: 20, Ascent: 15, Descent: 5, DrawSpaces: true}
	if m != want {
		t.Fatalf("metrics not unmarshalled: got %+v want %+v", m, want)
	}
}

func TestAdapter_DrawTextMarshalsColorAndPosition(t *testing.T) {
	var gotColor abi.WebColor
	var gotPos abi.Position
	var gotDC htmlbridge.DeviceContext

	a := NewAdapter(&Table{
		DrawText: func(ud any, dc htmlbridge.DeviceContext, text string, font htmlbridge.FontHandle, color abi.WebColor, pos abi.Position) {
			gotDC = dc
			gotColor = color
			gotPos = pos
		},
	})

	a.DrawText(7, "hi", 3,
		engine.WebColor{Red: 255, Alpha: 255, IsCurrentColor: true},
		engine.Position{X: 1, Y: 2, Width: 3, Height: 4})

	if gotDC != 7 {
		t.Fatalf("device context not threaded, got %v", gotDC)
	}
	if gotColor != (abi.WebColor{Red: 255, Alpha: 255, IsCurrentColor: 1}) {
		t.Fatalf("color not marshalled: %+v", gotColor)
	}
	if gotPos != (abi.Position{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Fatalf("position not marshalled: %+v", gotPos)
	}
}

func TestAdapter_ImageSizeOutParameter(t *testing.T) {
	a := NewAdapter(&Table{
		ImageSize: func(ud any, src, baseURL string, size *abi.Size) {
			if src == "logo.png" && baseURL == "http://x/" {
				size.Width = 120
				size.Height = 60
			}
		},
	})

	got := a.ImageSize("logo.png", "http://x/")
	if got != (engine.Size{Width: 120, Height: 60}) {
		t.Fatalf("unexpected size %+v", got)
	}
}

func TestAdapter_ViewportAndMediaFeatures(t *testing.T) {
	a := NewAdapter(&Table{
		Viewport: func(ud any, viewport *abi.Position) {
			*viewport = abi.Position{Width: 800, Height: 600}
		},
		MediaFeatures: func(ud any, media *abi.MediaFeatures) {
			*media = abi.MediaFeatures{
				Type:       int32(engine.MediaTypeScreen),
				Width:      800,
				Height:     600,
				Color:      8,
				Resolution: 96,
			}
		},
	})

	if vp := a.Viewport(); vp != (engine.Position{Width: 800, Height: 600}) {
		t.Fatalf("unexpected viewport %+v", vp)
	}
	mf := a.GetMediaFeatures()
	if mf.Type != engine.MediaTypeScreen || mf.Width != 800 || mf.Color != 8 {
		t.Fatalf("unexpected media features %+v", mf)
	}
}

func TestAdapter_TransformTextBridge(t *testing.T) {
	a := NewAdapter(&Table{
		TransformText: func(ud any, text string, tt int32, setResult SetString) {
			if engine.TextTransform(tt) == engine.TextTransformUppercase {
				setResult("HELLO")
			}
			// Other transforms never invoke the setter.
		},
	})

	if got := a.TransformText("hello", engine.TextTransformUppercase); got != "HELLO" {
		t.Fatalf("expected transformed text, got %q", got)
	}
	// Setter not invoked: text passes through unchanged.
	if got := a.TransformText("hello", engine.TextTransformLowercase); got != "hello" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestAdapter_ImportCSSBridge(t *testing.T) {
	a := NewAdapter(&Table{
		ImportCSS: func(ud any, url, baseURL string, setResult SetString) {
			if url == "theme.css" {
				setResult("body{color:blue}")
			}
		},
	})

	if got := a.ImportCSS("theme.css", ""); got != "body{color:blue}" {
		t.Fatalf("unexpected import result %q", got)
	}
	// Setter not invoked: empty stylesheet.
	if got := a.ImportCSS("missing.css", ""); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestAdapter_LanguageBridge(t *testing.T) {
	a := NewAdapter(&Table{
		Language: func(ud any, setResult SetLanguage) {
			setResult("en", "US")
		},
	})

	lang, cult := a.Language()
	if lang != "en" || cult != "US" {
		t.Fatalf("unexpected language pair %q %q", lang, cult)
	}
}
