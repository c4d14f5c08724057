package document

import (
	stderrors "errors"

	"go.uber.org/zap"

	htmlbridge "github.com/htmlkit/htmlbridge"
	"github.com/htmlkit/htmlbridge/abi"
	"github.com/htmlkit/htmlbridge/container"
	"github.com/htmlkit/htmlbridge/engine"
	"github.com/htmlkit/htmlbridge/errors"
)

// CreateOptions configures document construction. The zero value selects
// the engine's built-in master stylesheet and no user stylesheet.
type CreateOptions struct {
	// MasterCSS overrides the engine's user-agent stylesheet.
	MasterCSS string
	// UserCSS is an additional user stylesheet applied after MasterCSS.
	UserCSS string
}

// Document is the owning wrapper around one engine document and its
// dispatch adapter. The pair is created and destroyed together; neither
// half is reachable independently.
//
// Not safe for concurrent use. Distinct Documents are independent.
type Document struct {
	eng     engine.Document
	adapter *container.Adapter
	closed  bool
}

// Create constructs the adapter for the given capability table, then asks
// the engine to parse markup into a document bound to it. On failure the
// adapter is discarded and no partial state survives.
func Create(eng engine.Engine, markup string, table *container.Table, opts CreateOptions) (*Document, error) {
	if eng == nil {
		return nil, errors.NilHandle(errors.PhaseLifecycle, "engine")
	}

	adapter := container.NewAdapter(table)

	doc, err := eng.CreateDocumentFromString(markup, adapter, opts.MasterCSS, opts.UserCSS)
	if err != nil {
		// Adapter held no resources yet; dropping the reference is its
		// release. A structured cause keeps its own kind, so a stylesheet
		// failure stays invalid_css rather than collapsing to markup.
		kind := errors.KindInvalidMarkup
		var cause *errors.Error
		if stderrors.As(err, &cause) {
			kind = cause.Kind
		}
		return nil, errors.New(errors.PhaseLifecycle, kind).
			Detail("document construction failed").
			Cause(err).
			Build()
	}
	if doc == nil {
		return nil, errors.InvalidMarkup(errors.PhaseLifecycle, nil)
	}

	Logger().Debug("document created", zap.Int("markup_bytes", len(markup)))
	return &Document{eng: doc, adapter: adapter}, nil
}

// Destroy tears down the document pair. The engine document is closed
// first, since its teardown re-enters the adapter to release fonts, and
// the adapter is unbound only afterwards. Destroy is idempotent and
// nil-safe.
func (d *Document) Destroy() {
	if d == nil || d.closed {
		return
	}
	d.closed = true
	d.eng.Close()
	d.eng = nil
	d.adapter = nil
	Logger().Debug("document destroyed")
}

// Adapter returns the dispatch adapter while the document is alive, nil
// afterwards.
func (d *Document) Adapter() *container.Adapter {
	if d == nil || d.closed {
		return nil
	}
	return d.adapter
}

// Render recomputes layout for the given available width and returns the
// content height. Must be called after any mutation before geometry queries
// are meaningful. Returns 0 on a nil or destroyed document.
func (d *Document) Render(maxWidth float32) float32 {
	if d == nil || d.closed {
		return 0
	}
	return d.eng.Render(maxWidth)
}

// Draw paints the current layout at offset (x, y), optionally clipped,
// invoking the table's drawing entries synchronously.
func (d *Document) Draw(dc htmlbridge.DeviceContext, x, y float32, clip *abi.Position) {
	if d == nil || d.closed {
		return
	}
	var engClip *engine.Position
	if clip != nil {
		c := abi.UnmarshalPosition(*clip)
		engClip = &c
	}
	d.eng.Draw(dc, x, y, engClip)
}

// Width returns the last-computed layout width, 0 when unavailable.
func (d *Document) Width() float32 {
	if d == nil || d.closed {
		return 0
	}
	return d.eng.Width()
}

// Height returns the last-computed layout height, 0 when unavailable.
func (d *Document) Height() float32 {
	if d == nil || d.closed {
		return 0
	}
	return d.eng.Height()
}

// AddStylesheet parses css and applies it to the root element's subtree,
// recomputing computed styles. Layout is not re-run; call Render afterward.
// Empty css is a no-op. media, when non-empty, restricts the stylesheet to
// matching media.
func (d *Document) AddStylesheet(css, baseURL, media string) error {
	if d == nil || d.closed {
		return errors.Closed(errors.PhaseStyle)
	}
	if css == "" {
		return nil
	}
	return d.eng.AddStylesheet(css, baseURL, media)
}

// AppendChildrenFromString parses an HTML fragment and inserts the resulting
// nodes as children of parent. When replaceExisting is set, parent's
// existing children are removed first. Call Render afterward.
func (d *Document) AppendChildrenFromString(parent *Element, markup string, replaceExisting bool) error {
	if d == nil || d.closed {
		return errors.Closed(errors.PhaseParse)
	}
	if parent == nil || parent.el == nil {
		return errors.NilHandle(errors.PhaseParse, "parent element")
	}
	return d.eng.AppendChildrenFromString(parent.el, markup, replaceExisting)
}

// Root returns the root element, or nil on a nil or destroyed document.
func (d *Document) Root() *Element {
	if d == nil || d.closed {
		return nil
	}
	return d.wrap(d.eng.Root())
}

// ElementByPoint returns the deepest element whose box contains the
// document-space point (x, y); clientX/clientY locate the same point in
// viewport coordinates. Every candidate is accepted: plain deepest-at-point
// semantics, no filtering.
func (d *Document) ElementByPoint(x, y, clientX, clientY float32) *Element {
	if d == nil || d.closed {
		return nil
	}
	return d.wrap(d.eng.ElementByPoint(x, y, clientX, clientY))
}

// OnMouseOver feeds a pointer move and reports whether hover/active state
// changed and a redraw is warranted.
func (d *Document) OnMouseOver(x, y, clientX, clientY float32) bool {
	if d == nil || d.closed {
		return false
	}
	return d.eng.OnMouseOver(x, y, clientX, clientY)
}

// OnLButtonDown feeds a primary-button press.
func (d *Document) OnLButtonDown(x, y, clientX, clientY float32) bool {
	if d == nil || d.closed {
		return false
	}
	return d.eng.OnLButtonDown(x, y, clientX, clientY)
}

// OnLButtonUp feeds a primary-button release.
func (d *Document) OnLButtonUp(x, y, clientX, clientY float32) bool {
	if d == nil || d.closed {
		return false
	}
	return d.eng.OnLButtonUp(x, y, clientX, clientY)
}

// OnMouseLeave feeds a pointer leave.
func (d *Document) OnMouseLeave() bool {
	if d == nil || d.closed {
		return false
	}
	return d.eng.OnMouseLeave()
}

// MediaChanged re-evaluates media queries against the table's current media
// features and reports whether cached evaluation was invalidated; the caller
// should Render again when it returns true.
func (d *Document) MediaChanged() bool {
	if d == nil || d.closed {
		return false
	}
	return d.eng.MediaChanged()
}

func (d *Document) wrap(el engine.Element) *Element {
	if el == nil {
		return nil
	}
	return &Element{el: el, doc: d}
}
