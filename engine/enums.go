package engine

// BorderStyle is the CSS border-style value of one border edge.
type BorderStyle int

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleHidden
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

// MediaType is the CSS media type being evaluated.
type MediaType int

const (
	MediaTypeNone MediaType = iota
	MediaTypeAll
	MediaTypeScreen
	MediaTypePrint
)

// TextAlign is the computed CSS text-align value. The ordinals are part of
// the boundary contract.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// TextTransform is the CSS text-transform value passed to the host's
// transform-text capability.
type TextTransform int

const (
	TextTransformNone TextTransform = iota
	TextTransformCapitalize
	TextTransformUppercase
	TextTransformLowercase
)

// MouseEvent identifies the engine-reported mouse state transition.
type MouseEvent int

const (
	MouseEventEnter MouseEvent = iota
	MouseEventLeave
)

// FontStyle is the CSS font-style value.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

// ListMarkerType identifies the list-style-type of a marker.
type ListMarkerType int

const (
	ListMarkerNone ListMarkerType = iota
	ListMarkerCircle
	ListMarkerDisc
	ListMarkerSquare
	ListMarkerIndex
)
