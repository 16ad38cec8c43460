package dfgbuild

import (
	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/resolver"
)

// runBranches is Phase B: every conditional branch gets a
// TrueSteer/FalseSteer pair gating its own decider, used downstream by
// Phase F to predicate side-effecting operations that live exclusively in
// one arm of the branch and have no phi to join them back (an
// unconditional Store in an if-body, say, must not fire on the path that
// never took that branch). Each steer also gets a direct activation edge
// into the first meaningful instruction of its own successor block, so
// that block's computation has a path back to the branch that reached it
// even when nothing else wires the steer to anything downstream.
func (bd *builder) runBranches() {
	for _, b := range bd.fn.Blocks {
		br, ok := b.Terminator().(*ir.If)
		if !ok {
			continue
		}
		pair := bd.steerPairFor(br)
		bd.wireFirstMeaningful(br.TrueBlock, pair.True)
		bd.wireFirstMeaningful(br.FalseBlock, pair.False)
	}
}

// wireFirstMeaningful adds an edge from steer to the node of succ's first
// instruction that is not a phi, cast, or address-arithmetic — casts and
// address arithmetic never get a node of their own, and a phi's node is
// the Merge/Carry Phase E builds rather than the block's own
// computation. If succ has no such
// instruction, or that instruction has no node (a bare terminator, or a
// pre-transform Store), no edge is added.
func (bd *builder) wireFirstMeaningful(succ *ir.BasicBlock, steer *dfgraph.DataflowNode) {
	in := firstMeaningfulInstr(succ)
	if in == nil {
		return
	}
	res := in.Result()
	if res == nil {
		return
	}
	n, ok := bd.graph.FindNode(res)
	if !ok {
		return
	}
	bd.graph.AddEdge(steer, n)
}

func firstMeaningfulInstr(b *ir.BasicBlock) ir.Instruction {
	if b == nil {
		return nil
	}
	for _, in := range b.Instrs {
		switch in.(type) {
		case *ir.Phi, *ir.Convert, *ir.AddrCompute:
			continue
		default:
			return in
		}
	}
	return nil
}

// steerPairFor returns br's TrueSteer/FalseSteer pair, building it on
// first request. Both steers share br.Cond as their decider input; no
// data input is wired here — Phase E wires per-phi data, Phase F wires
// per-instruction predication, each into whichever steer applies.
func (bd *builder) steerPairFor(br *ir.If) steerPair {
	if p, ok := bd.branchSteers[br]; ok {
		return p
	}
	t := bd.graph.AddNode(dfgraph.TrueSteer, nil, "")
	f := bd.graph.AddNode(dfgraph.FalseSteer, nil, "")
	resolver.Wire(bd.graph, br.Cond, t)
	resolver.Wire(bd.graph, br.Cond, f)
	p := steerPair{True: t, False: f}
	bd.branchSteers[br] = p
	return p
}
