package dfgbuild

import (
	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/loopinfo"
	"github.com/riptide-dfg/dfgc/resolver"
)

// runPhis is Phase E: every phi becomes either a loop-carried
// Carry/Invariant, at the header of a natural loop, or a branch-decided
// Merge otherwise. This applies uniformly to phis over ordinary data
// values and phis over the memory token memtoken threads through φ — a
// memory token merges across a branch exactly the same way any other
// value does.
//
// Every real consumer of the phi's value already points at this phi's
// node by the time this phase runs: Phase A registered that node up
// front (still tagged Unknown), so Phases B through D wired straight
// into it instead of recursing past it into the phi's raw incoming
// values. buildCarry/buildMerge/buildPlainMerge below all retag that
// same node rather than minting a new one, so every outgoing edge a
// consumer added earlier keeps pointing at the node that is now the
// actual Merge/Carry/Invariant — no separate pass over the phi's users
// is needed to wire them up after the fact.
func (bd *builder) runPhis() {
	for _, b := range bd.fn.Blocks {
		if b == bd.fn.Entry() {
			continue
		}
		for _, phi := range b.Phis() {
			if loop := bd.loops.HeaderOf(b); loop != nil {
				bd.buildCarry(loop, phi)
				continue
			}
			bd.buildMerge(b, phi)
		}
	}
}

// buildCarry materializes Carry (or Invariant, when the loop never
// actually updates the value) for a phi at a loop header.
func (bd *builder) buildCarry(loop *loopinfo.Loop, phi *ir.Phi) {
	var initial, update *ir.Value
	if loop.Preheader != nil {
		initial = incomingFrom(phi, loop.Preheader)
	}
	if loop.Latch != nil {
		update = incomingFrom(phi, loop.Latch)
	}
	if initial == nil || update == nil {
		// No clean preheader/latch split (irreducible entry, multiple
		// latches folded together): fall back to an undifferentiated
		// Merge so the value is still represented, without claiming
		// Carry semantics we can't actually justify.
		bd.buildPlainMerge(phi)
		return
	}

	kind := dfgraph.Carry
	if update == phi.Dest {
		kind = dfgraph.Invariant
	}
	n := bd.phiNode(phi)
	n.Retag(kind)
	bd.wireOperand(initial, n)
	if kind == dfgraph.Carry {
		bd.wireOperand(update, n)
	}
	if loop.Exiting != nil {
		if br, ok := loop.Exiting.Terminator().(*ir.If); ok {
			resolver.Wire(bd.graph, br.Cond, n)
		}
	}
}

// buildMerge materializes Merge for a phi outside any loop, using the
// controlling branch's decider and two per-arm steers when a clean
// if/else diamond is found, or an undifferentiated Merge otherwise.
func (bd *builder) buildMerge(b *ir.BasicBlock, phi *ir.Phi) {
	ifInstr, truePred, falsePred, ok := controllingIf(b)
	if !ok {
		bd.buildPlainMerge(phi)
		return
	}
	trueVal := incomingFrom(phi, truePred)
	falseVal := incomingFrom(phi, falsePred)
	if trueVal == nil || falseVal == nil {
		bd.buildPlainMerge(phi)
		return
	}

	t := bd.graph.AddNode(dfgraph.TrueSteer, nil, "")
	f := bd.graph.AddNode(dfgraph.FalseSteer, nil, "")
	resolver.Wire(bd.graph, ifInstr.Cond, t)
	resolver.Wire(bd.graph, ifInstr.Cond, f)
	bd.wireOperand(trueVal, t)
	bd.wireOperand(falseVal, f)
	bd.phiSteers[phi.Dest] = steerPair{True: t, False: f}

	n := bd.phiNode(phi)
	n.Retag(dfgraph.Merge)
	resolver.Wire(bd.graph, ifInstr.Cond, n)
	bd.graph.AddEdge(t, n)
	bd.graph.AddEdge(f, n)
}

// buildPlainMerge is the fallback for a phi whose incoming edges don't
// resolve to a recognizable two-arm diamond or loop carry: every incoming
// value is wired straight into one Merge node, with no decider. This
// keeps the phi's value represented in the graph rather than dropping it,
// at the cost of losing per-arm steering.
func (bd *builder) buildPlainMerge(phi *ir.Phi) {
	n := bd.phiNode(phi)
	n.Retag(dfgraph.Merge)
	for _, inc := range phi.Incoming {
		bd.wireOperand(inc.Value, n)
	}
}

// phiNode returns the placeholder node Phase A registered for phi.Dest.
// It always finds one — Phase A runs before any phase that could call
// this — so the only way GetOrAdd could report otherwise is a phi whose
// Dest is nil (ir.Verify does not check for that), in which case the
// returned node is nil.
func (bd *builder) phiNode(phi *ir.Phi) *dfgraph.DataflowNode {
	n, _ := bd.graph.GetOrAdd(phi.Dest)
	return n
}

func incomingFrom(phi *ir.Phi, pred *ir.BasicBlock) *ir.Value {
	for _, inc := range phi.Incoming {
		if inc.Pred == pred {
			return inc.Value
		}
	}
	return nil
}
