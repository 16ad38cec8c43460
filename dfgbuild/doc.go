// Package dfgbuild is the DFG builder: the main multi-phase algorithm
// that classifies instructions, materializes steers for conditional
// branches and selects, wires data dependencies, builds Merge and Carry
// at phi points, and attaches Stream tokens.
//
// Build runs a fixed, ordered sequence of phases; each phase documents
// the invariant it establishes for the phases after it, preferring small,
// independently testable phases over one monolithic walk:
//
//	Phase A — Classification:        tag every non-special instruction's node.
//	Phase B — Conditional branches:   materialize True/FalseSteer pairs.
//	Phase C — Selects:                materialize steer pairs per select.
//	Phase D — Data dependencies:      wire operands and users.
//	Phase E — Phi nodes:              decide Merge vs. Carry, wire deciders.
//	Phase F — Argument/memory fanout: gate arm-exclusive and entry-block
//	                                  loads/stores, optional memory edges.
//
// Build expects f to have already passed through the memory-ordering
// transform (package memtoken) if memory ordering matters to the caller;
// it does not run that transform itself and does not mutate f — the
// builder only ever reads its input.
package dfgbuild
