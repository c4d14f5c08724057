// Package abi defines the flat, foreign-callable value structures of the
// boundary and the lossless marshalling between them and the engine's native
// types.
//
// ABI structures use only fixed-width scalar fields: float32 for lengths,
// uint8 for color channels, int32 for booleans (0/1) and enum ordinals.
// Conversion functions are pure and total: no allocation, no failure mode,
// bit-exact round trips for every finite input.
package abi
