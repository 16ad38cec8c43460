// Package memtoken implements the memory-ordering transform: it rewrites
// ordinary loads and stores into token-producing/consuming intrinsic
// calls and threads a single-bit memory token through the CFG via a phi
// at the head of every reachable non-entry block.
//
// The DFG has no global store, so without this pass two memory accesses
// that must happen in program order would have no edge forcing that
// order at all. After the transform, every Load carries the token it
// consumed and every Store (now a Call to the store intrinsic) produces
// the token the next access in program order must consume — giving the
// DFG builder's Phase A/D something concrete to wire instead of an
// implicit memory.
//
// Cache is the per-module, append-only table of intrinsic declarations —
// the only process-wide state in the whole pipeline: names are
// deterministic functions of the accessed type, so two calls for the same
// type reuse the same name.
package memtoken
