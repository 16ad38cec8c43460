package dfgbuild

import (
	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/resolver"
)

// runSelects is Phase C: every *ir.Select gets its own
// TrueSteer/FalseSteer pair, gated by the select's own Cond and carrying
// TrueVal/FalseVal respectively as data. A select never gets a node of
// its own (dfgraph.Graph.GetOrAdd already refuses one); Phase D wires both
// steer outputs directly into every user of the select's result instead.
func (bd *builder) runSelects() {
	for _, b := range bd.fn.Blocks {
		for _, in := range b.Instrs {
			sel, ok := in.(*ir.Select)
			if !ok {
				continue
			}
			bd.selectSteerFor(sel)
		}
	}
}

// wireOperand wires v into dst, special-casing a select-produced v by
// connecting both of its steer outputs to dst directly instead of calling
// resolver.Wire (which does not know about Select and would otherwise
// recurse straight through to Cond/TrueVal/FalseVal, losing the gating).
func (bd *builder) wireOperand(v *ir.Value, dst *dfgraph.DataflowNode) {
	if v == nil || dst == nil {
		return
	}
	if sel, ok := v.Def().(*ir.Select); ok {
		p := bd.selectSteerFor(sel)
		bd.graph.AddEdge(p.True, dst)
		bd.graph.AddEdge(p.False, dst)
		return
	}
	resolver.Wire(bd.graph, v, dst)
}

func (bd *builder) selectSteerFor(sel *ir.Select) steerPair {
	if p, ok := bd.selectSteers[sel]; ok {
		return p
	}
	t := bd.graph.AddNode(dfgraph.TrueSteer, nil, "")
	f := bd.graph.AddNode(dfgraph.FalseSteer, nil, "")
	resolver.Wire(bd.graph, sel.Cond, t)
	resolver.Wire(bd.graph, sel.Cond, f)
	resolver.Wire(bd.graph, sel.TrueVal, t)
	resolver.Wire(bd.graph, sel.FalseVal, f)
	p := steerPair{True: t, False: f}
	bd.selectSteers[sel] = p
	return p
}
