// Package refengine is a deliberately small rendering engine used to
// exercise the bridge end to end. It parses HTML with x/net/html and CSS
// with douceur, matches selectors with cascadia, and lays blocks out by
// vertical stacking with greedy line breaking measured through the
// document container.
//
// It is a conformance fixture, not a browser: no floats, no flex, no
// margin collapsing, last-matching-rule cascade. Everything it does flows
// through the engine.DocumentContainer capability interface, which is the
// point: the tests and the demo command drive the real dispatch path.
package refengine
