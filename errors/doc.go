// Package errors provides structured error types for the boundary layer.
//
// Errors carry a Phase (where processing was when it failed) and a Kind
// (what category of failure occurred), plus optional path, value, cause and
// detail. Two errors match with errors.Is when Phase and Kind agree:
//
//	if errors.Is(err, &Error{Phase: PhaseParse, Kind: KindInvalidMarkup}) {
//	    ...
//	}
//
// The boundary's error discipline is narrow: accessors and introspection
// entry points never return errors (they return documented zero defaults);
// only document construction and mutation surface *Error values.
package errors
