package dfgbuild

import (
	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
)

// runDataDeps is Phase D: wires every ordinary operand into the
// node that consumes it, and materializes a FunctionOutput node for every
// return that carries a value. Phi incoming values are not touched here —
// Phase E owns phi wiring entirely, since a phi's inputs are steered or
// carried rather than wired plainly.
func (bd *builder) runDataDeps() {
	for _, b := range bd.fn.Blocks {
		for _, in := range b.Instrs {
			bd.wireInstruction(in)
		}
	}
}

func (bd *builder) wireInstruction(in ir.Instruction) {
	switch instr := in.(type) {
	case *ir.Phi, *ir.Select, *ir.AddrCompute, *ir.Convert:
		// Phi: Phase E. The other three are transparent pass-through
		// instructions resolved in place by resolver.Wire/wireOperand and
		// never reached as a top-level instruction to wire here.
	case *ir.Return:
		if instr.Value == nil {
			return
		}
		out := bd.graph.AddNode(dfgraph.FunctionOutput, nil, "out")
		bd.wireOperand(instr.Value, out)
	case *ir.If:
		// instr.Cond already wired into its steer pair by Phase B.
	case *ir.Jump, *ir.Store:
		// Jump has no operands; a bare pre-transform Store has no node
		// of its own to wire into (the builder assumes memtoken has
		// already run when memory ordering matters).
	default:
		dst, ok := bd.graph.FindNode(in.Result())
		if !ok {
			return
		}
		for _, op := range in.Operands() {
			bd.wireOperand(op, dst)
		}
	}
}
