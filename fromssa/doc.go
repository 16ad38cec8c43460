// Package fromssa is a read-only translator from golang.org/x/tools/go/ssa
// into this module's own ir.Function. It exists because mutating an
// *ssa.Function's unexported internals directly is not something the ssa
// package supports — the memory-ordering transform and the builder both
// need a mutable IR they fully own, so this package's only job is a
// one-way copy: walk an already-built ssa.Function and emit the
// equivalent ir.Function, never touching the ssa.Function itself.
//
// Coverage is intentionally partial. The translator handles the
// instruction shapes common to straight-line, loop, and single-level
// branching Go code (arithmetic and comparison BinOps, Phi, If/Jump/Return
// terminators, Call, Load/Store-style memory access via UnOp/Store,
// address computation via FieldAddr/IndexAddr chains, and the
// Convert/ChangeType cast family) and returns
// ErrUnsupportedInstruction for anything else — generics dictionary
// instructions, goroutines, defer/recover, and select statements are out
// of scope: CGRA kernels do not spawn goroutines.
package fromssa
