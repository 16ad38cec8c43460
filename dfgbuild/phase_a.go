package dfgbuild

import (
	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
)

// runClassification is Phase A: every instruction result that
// GetOrAdd is willing to materialize a node for gets tagged with its
// concrete OperatorKind. Select, AddrCompute, and Convert results are
// skipped entirely — GetOrAdd already refuses to create nodes for them,
// and their values are resolved transparently by package resolver instead.
//
// A phi's Dest also gets a node here, left tagged Unknown rather than
// classified: Phase E is what decides Merge vs. Carry vs. Invariant, but
// the node has to exist before then so that Phases B through D — which
// all run before E and may need to wire a consumer of a phi's value —
// find it and stop there instead of recursing straight through to the
// phi's raw incoming values. Phase E retags this same node in place
// rather than creating a new one, so every edge wired to it here
// survives unchanged once its kind is finally known.
//
// Build assumes f has already been through the memory-ordering transform
// (package memtoken) if the caller cares about memory ordering: a
// pre-transform Store has no Result and so never gets a node here, and a
// pre-transform Load is tagged Load directly rather than recognized by
// callee name.
func (bd *builder) runClassification() {
	for _, b := range bd.fn.Blocks {
		for _, in := range b.Instrs {
			bd.classify(in)
			bd.materializeConstants(in)
		}
	}
}

// materializeConstants pre-creates a node for every constant operand an
// instruction reads. Constants, like parameters, have no producing
// instruction, so resolver.Wire's "recurse into Def().Operands()" bottom
// case can never reach them — something upstream of Wire has to call
// GetOrAdd on a constant at least once before any attempt to wire it.
func (bd *builder) materializeConstants(in ir.Instruction) {
	for _, op := range in.Operands() {
		if op != nil && op.IsConstant() {
			bd.graph.GetOrAdd(op)
		}
	}
}

func (bd *builder) classify(in ir.Instruction) {
	switch instr := in.(type) {
	case *ir.BinOp:
		n, ok := bd.graph.GetOrAdd(instr.Dest)
		if !ok {
			return
		}
		n.Retag(dfgraph.BasicBinaryOp)
		if n.Symbol == "" {
			n.Symbol = instr.Op.String()
		}
	case *ir.Cmp:
		n, ok := bd.graph.GetOrAdd(instr.Dest)
		if !ok {
			return
		}
		n.Retag(dfgraph.BasicBinaryOp)
		if n.Symbol == "" {
			n.Symbol = instr.Pred.String()
		}
	case *ir.Load:
		n, ok := bd.graph.GetOrAdd(instr.Dest)
		if !ok {
			return
		}
		n.Retag(dfgraph.Load)
	case *ir.Call:
		bd.classifyCall(instr)
	case *ir.Phi:
		// Pre-register the node as a placeholder; Phase E retags it once
		// it knows whether this phi is a Merge, Carry, or Invariant.
		bd.graph.GetOrAdd(instr.Dest)
	case *ir.Select, *ir.AddrCompute, *ir.Convert, *ir.Store, *ir.Jump, *ir.If, *ir.Return:
		// Select/AddrCompute/Convert never get nodes; Store is only
		// reachable here pre-transform and has no Result; Jump/If/Return
		// have no node of their own.
	}
}

// classifyCall recognizes the memtoken intrinsic family by callee name
// and tags the resulting node accordingly. An unrecognized callee (an
// ordinary external call) has no slot in the closed operator taxonomy;
// it is tagged BasicBinaryOp labeled with the callee name as the nearest
// available approximation of "pass its inputs through to one output".
func (bd *builder) classifyCall(instr *ir.Call) {
	if instr.Dest == nil {
		return // void call: nothing to classify or wire a result for
	}
	n, ok := bd.graph.GetOrAdd(instr.Dest)
	if !ok {
		return
	}
	cache := bd.cfg.cache
	switch {
	case cache.IsLoad(instr.Callee):
		n.Retag(dfgraph.Load)
	case cache.IsStore(instr.Callee):
		n.Retag(dfgraph.Store)
	case cache.IsEntryToken(instr.Callee):
		n.Retag(dfgraph.Stream)
	default:
		n.Retag(dfgraph.BasicBinaryOp)
		if n.Label == "" {
			n.Label = instr.Callee
		}
	}
}
