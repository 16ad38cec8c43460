// Package pipeline is the top-level driver surface: it runs the
// memory-ordering transform, the DFG builder, and the DOT printer in
// sequence for one or more functions, wiring the same memtoken.Cache
// through both stages so Phase A's intrinsic-name recognition matches
// what the transform actually emitted.
package pipeline
