// Package container implements the dispatch side of the boundary: the flat
// capability table, the adapter that presents it to the engine as a
// document-container, the opaque accessors over engine-owned descriptors,
// and the push-style string return bridge.
//
// # Capability Table
//
// Table is a flat collection of optional callbacks plus one opaque user
// context. Every entry is independently nillable; the adapter substitutes a
// documented default for each absent entry, so a zero-valued Table is a
// valid (inert) host:
//
//	table := &container.Table{
//	    UserData: myHost,
//	    DrawText: func(ud any, dc htmlbridge.DeviceContext, text string,
//	        font htmlbridge.FontHandle, color abi.WebColor, pos abi.Position) {
//	        ud.(*Host).paint(text, color, pos)
//	    },
//	}
//
// # Defaults for absent entries
//
//	PtToPx           identity (1pt = 1px)
//	DefaultFontSize  16
//	DefaultFontName  "serif"
//	TextWidth        0 (degenerate but non-crashing layout)
//	ImageSize        zero size
//	Viewport         zero rectangle
//	MediaFeatures    zero features
//	Language         empty language and culture
//	TransformText    input unchanged
//	ImportCSS        empty stylesheet
//	everything else  no-op
//
// # Descriptor References
//
// Engine-owned descriptors (font descriptions, list markers, background
// layers, gradients) cross the boundary as *Ref values: opaque wrappers
// exposing one accessor per logical field. A nil Ref yields zero-valued
// defaults from every accessor; collection accessors bounds-check their
// index the same way. Refs are valid only during the callback that received
// them.
package container
