package document

import (
	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/engine"
)

// Minimal controllable engine used by the lifecycle tests. The conformance
// fixture in internal/refengine covers end-to-end behavior; this stub exists
// so ordering and null-safety properties can be pinned without layout in
// the way.

type stubEngine struct {
	failCreate bool
	failWith   error
	lastDoc    *stubDoc
}

func (s *stubEngine) CreateDocumentFromString(markup string, c engine.DocumentContainer, masterCSS, userCSS string) (engine.Document, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if s.failCreate {
		return nil, errFail
	}
	s.lastDoc = &stubDoc{container: c, root: &stubElement{}}
	return s.lastDoc, nil
}

type errString string

func (e errString) Error() string { return string(e) }

const errFail = errString("construction rejected")

type stubDoc struct {
	container engine.DocumentContainer
	root      *stubElement
	fonts     []htmlbridge.FontHandle
	height    float32
	width     float32
	closed    bool

	renderCalls int
	drawCalls   int
}

func (d *stubDoc) Render(maxWidth float32) float32 {
	d.renderCalls++
	// Realize one font per render, engine-style: through the container.
	h, _ := d.container.CreateFont(&engine.FontDescription{
		Family: d.container.DefaultFontName(),
		Size:   d.container.DefaultFontSize(),
	})
	if h != 0 {
		d.fonts = append(d.fonts, h)
	}
	d.width = maxWidth
	d.height = 42
	return d.height
}

func (d *stubDoc) Draw(dc htmlbridge.DeviceContext, x, y float32, clip *engine.Position) {
	d.drawCalls++
	d.container.DrawText(dc, "stub", 0, engine.WebColor{Alpha: 255}, engine.Position{X: x, Y: y})
}

func (d *stubDoc) Width() float32  { return d.width }
func (d *stubDoc) Height() float32 { return d.height }

func (d *stubDoc) AddStylesheet(css, baseURL, media string) error { return nil }

func (d *stubDoc) AppendChildrenFromString(parent engine.Element, markup string, replaceExisting bool) error {
	return nil
}

func (d *stubDoc) Root() engine.Element { return d.root }

func (d *stubDoc) ElementByPoint(x, y, clientX, clientY float32) engine.Element { return d.root }

func (d *stubDoc) OnMouseOver(x, y, clientX, clientY float32) bool   { return true }
func (d *stubDoc) OnLButtonDown(x, y, clientX, clientY float32) bool { return false }
func (d *stubDoc) OnLButtonUp(x, y, clientX, clientY float32) bool   { return false }
func (d *stubDoc) OnMouseLeave() bool                                { return false }
func (d *stubDoc) MediaChanged() bool                                { return false }

func (d *stubDoc) Close() {
	d.closed = true
	// Teardown releases fonts through the container, which must still be
	// alive at this point.
	for _, h := range d.fonts {
		d.container.DeleteFont(h)
	}
	d.fonts = nil
}

type stubElement struct {
	parent   *stubElement
	children []engine.Element
	text     string
	isText   bool
	font     htmlbridge.FontHandle
	fontSize float32
	align    engine.TextAlign
	lineH    float32
	render   *stubRenderItem
}

func (e *stubElement) Parent() engine.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *stubElement) Children() []engine.Element { return e.children }
func (e *stubElement) IsText() bool { return e.isText }
func (e *stubElement) Text() string { return e.text }
func (e *stubElement) Font() htmlbridge.FontHandle { return e.font }
func (e *stubElement) FontSize() float32 { return e.fontSize }
func (e *stubElement) TextAlign() engine.TextAlign { return e.align }
func (e *stubElement) LineHeight() float32 { return e.lineH }
func (e *stubElement) RenderItem() engine.RenderItem {
	if e.render == nil {
		return nil
	}
	return e.render
}

type stubRenderItem struct {
	placement engine.Position
	local     engine.Position
	boxes     []engine.Position
}

func (r *stubRenderItem) Placement() engine.Position      { return r.placement }
func (r *stubRenderItem) LocalPos() engine.Position       { return r.local }
func (r *stubRenderItem) InlineBoxes() []engine.Position { return r.boxes }
