// Package engine declares the contract of the external HTML/CSS rendering
// engine consumed by the bridge.
//
// Nothing in this package executes layout. It defines the native value
// vocabulary (positions, colors, metrics, media features), the engine-owned
// descriptor types handed to drawing callbacks, and the interfaces the
// bridge talks to:
//
//	DocumentContainer  what the engine requires from its host environment;
//	                   implemented by the container package's Adapter
//	Engine             constructs documents from markup
//	Document           render/draw/extents, mutation, interaction
//	Element            render-tree node: navigation, computed style, geometry
//	RenderItem         post-layout geometry of an element, including
//	                   locally-scoped inline boxes
//
// Descriptor values passed to DocumentContainer methods are owned by the
// engine and valid only for the duration of that call.
package engine
