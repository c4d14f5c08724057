// Package htmlbridge exposes a virtual-dispatch HTML/CSS rendering engine
// through a stable, flat, foreign-callable boundary.
//
// The engine itself (markup parsing, CSS cascade, box-model layout, paint
// ordering) is an external collaborator described by the engine package and
// consumed, never reimplemented, by this library. What lives here is the
// boundary: a capability table of optional callbacks, a dispatch adapter that
// forwards the engine's virtual calls into that table, lossless value
// marshalling, opaque accessors over engine-owned descriptors, a paired
// document/adapter lifecycle, and render-tree introspection.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	htmlbridge/          Root package with the opaque DeviceContext and
//	                     FontHandle token types
//	├── abi/             Flat ABI value structures and marshalling
//	├── engine/          The consumed engine contract (interfaces + native
//	                     value and descriptor types)
//	├── container/       Capability table, dispatch adapter, opaque
//	                     descriptor accessors, string return bridge
//	├── document/        Document lifecycle, introspection, interaction
//	├── fonts/           Caller-side font handle registry
//	└── errors/          Structured error types for construction failures
//
// # Quick Start
//
// Build a capability table, create a document over an engine, render and
// inspect it:
//
//	table := &container.Table{
//	    TextWidth: func(ud any, text string, font htmlbridge.FontHandle) float32 {
//	        return float32(len(text)) * 8
//	    },
//	}
//
//	doc, err := document.Create(eng, markup, table, document.CreateOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Destroy()
//
//	height := doc.Render(800)
//	doc.Draw(0, 0, 0, nil)
//	root := doc.Root()
//
// Every capability table entry is optional; a nil entry falls back to a
// documented default (identity point conversion, font size 16, font name
// "serif", zero text width, no-op drawing). A table of all-nil entries still
// completes the full lifecycle.
//
// # Thread Safety
//
// The model is single-threaded and synchronous. All callbacks run nested
// inside Render/Draw/interaction calls on the calling goroutine. A Document
// and its elements must be confined to one goroutine or externally
// serialized; distinct Documents are independent.
//
// # Handle Validity
//
// Element handles are borrowed from their owning Document and are invalid
// once the Document is destroyed. Descriptor references passed to table
// entries (font descriptions, list markers, background layers, gradients)
// are valid only for the duration of that single callback and must not be
// retained.
package htmlbridge
