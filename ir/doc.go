// Package ir is the read-mostly adapter over the SSA procedural IR that
// the DFG builder lowers. It models exactly the constructs the
// builder needs to see: functions, basic blocks, one terminator per
// block, and instructions classified by opcode family (binary op,
// comparison, load, store, phi, branch, select, cast, address
// arithmetic, call, return).
//
// DESIGN CHOICE: a single Value type (rather than separate
// Variable/Constant/Parameter types) carries every operand, mirroring a
// conventional three-address-code SSA IR: it keeps instruction
// definitions uniform (every operand is *Value) and lets the same value
// flow through address-arithmetic, casts, and comparisons without
// special-casing its origin. Instruction is an interface rather than a
// closed tagged union so new opcode families can be added without
// touching the ones that already exist — the set of IR instruction
// shapes is considerably larger and more language-specific than the
// small, closed operator taxonomy the builder lowers it to (package
// dfgraph), where a tagged enum is the right call instead.
//
// Read-only except where explicitly noted: the memory-ordering
// transform (package memtoken) rewrites loads/stores in place and
// inserts phi instructions at block heads, using BasicBlock.InsertAtHead,
// BasicBlock.ReplaceInstr, Phi.SetIncoming and Value.SetDef. No other
// package mutates a Function.
//
// Loop structure (header/latch/exiting/preheader) is not computed here;
// package loopinfo derives it from the block graph this package exposes.
package ir
