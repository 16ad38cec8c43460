package resolver

import (
	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
)

// Wire connects the producer of value v to node d, transparently skipping
// address-computation and cast chains. It is a no-op if v or d is nil —
// a malformed-input guard rail, not an expected path.
//
// Recursion:
//  1. nil v or nil d: return.
//  2. v is address arithmetic: recurse on its base and every index.
//  3. v is any cast: recurse on its sole operand.
//  4. v already has a node, whatever its current kind: add the edge and
//     stop. A phi's node is pre-registered (still Unknown) before any
//     phase that might wire a consumer of it runs, precisely so this
//     step finds it and stops here instead of falling through to case 5
//     and wiring straight past the phi into its raw incoming values —
//     the phi's eventual Merge/Carry/Invariant classification reuses
//     this same node, so every edge added here survives unchanged.
//  5. otherwise, if v is an instruction's result, recurse on its operands.
//
// If the recursion bottoms out at a value with no node and no operands,
// no edge is created. This is silent by design: constants always have
// nodes via g.GetOrAdd, so a dead end here means the caller handed Wire
// a value with nothing upstream, which the output will simply show as a
// missing edge.
func Wire(g *dfgraph.Graph, v *ir.Value, d *dfgraph.DataflowNode) {
	if v == nil || d == nil {
		return
	}

	switch def := v.Def().(type) {
	case *ir.AddrCompute:
		Wire(g, def.Base, d)
		for _, idx := range def.Indices {
			Wire(g, idx, d)
		}
		return
	case *ir.Convert:
		Wire(g, def.X, d)
		return
	}

	if n, ok := g.FindNode(v); ok {
		g.AddEdge(n, d)
		return
	}

	if in := v.Def(); in != nil {
		for _, op := range in.Operands() {
			Wire(g, op, d)
		}
	}
}
