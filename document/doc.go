// Package document owns the paired lifetime of one rendered document and
// its dispatch adapter, and exposes the boundary's lifecycle, introspection
// and interaction entry points.
//
// # Lifecycle
//
// Create builds the adapter first, then asks the engine to parse markup with
// the adapter as its host environment. On failure nothing leaks: the
// adapter is discarded and a nil handle is returned with the error. Destroy
// reverses the order: the engine document is closed first, so teardown
// callbacks (font release) still reach a live adapter, and only then is the
// adapter unbound. The two halves are never destroyable independently.
//
//	doc, err := document.Create(eng, markup, table, document.CreateOptions{})
//	if err != nil { ... }
//	defer doc.Destroy()
//
//	height := doc.Render(800)
//	doc.Draw(dc, 0, 0, nil)
//
// # Null safety
//
// Every method is safe on a nil or destroyed Document and on a nil Element:
// it returns the documented zero default and performs no work. Errors are
// returned only by construction and mutation operations.
//
// # Coordinates
//
// Placement and inline boxes are reported in absolute document coordinates.
// The engine stores inline boxes relative to the nearest positioned
// ancestor's frame; this package adds the frame offset (placement minus
// locally-stored position of the owning render node) before reporting them.
package document
