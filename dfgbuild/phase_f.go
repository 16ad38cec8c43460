package dfgbuild

import (
	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
)

// runFanout is Phase F: parameters that are read more than once
// already fan out for free (every reader's Phase D wiring resolves to the
// same FunctionInput node), so the only outstanding work is predicating
// side-effecting instructions that live exclusively inside one arm of a
// branch and have no phi joining their result back — without a join there
// is nothing for Phase E to steer, yet the instruction must still not
// fire on the path that never took that branch.
//
// WithMemoryDependencyOrdering additionally adds a direct edge between a
// store and a later load whose address operand has the same type, with
// no intervening store of that type (see wireMemoryDependencies), letting
// a consumer see the dependency without walking the full
// token chain. Default off: exclusively relying on the token chain is
// the conservative choice absent real alias analysis.
func (bd *builder) runFanout() {
	for _, b := range bd.fn.Blocks {
		br, ok := b.Terminator().(*ir.If)
		if !ok {
			continue
		}
		trueOnly, falseOnly := armBlocks(br)
		pair := bd.steerPairFor(br)
		bd.predicateArm(trueOnly, pair.True)
		bd.predicateArm(falseOnly, pair.False)
	}

	bd.gateEntryEffects()

	if bd.cfg.memoryDependencyOrdering {
		bd.wireMemoryDependencies()
	}
}

// gateEntryEffects wires the function's synthesized entry Stream token
// into every effectful node that sits directly in the entry block: those
// operations are unconditional on function entry, so their activation
// source is the function's own start rather than any branch's steer.
func (bd *builder) gateEntryEffects() {
	entry := bd.fn.Entry()
	if entry == nil {
		return
	}
	src := bd.entryActivationSource(entry)
	for _, in := range entry.Instrs {
		res := in.Result()
		if res == nil {
			continue
		}
		n, ok := bd.graph.FindNode(res)
		if !ok {
			continue
		}
		if n.Kind != dfgraph.Load && n.Kind != dfgraph.Store {
			continue
		}
		bd.graph.AddEdge(src, n)
	}
}

// entryActivationSource returns the node that represents "the function
// has started": the memtoken entry-token call's own node if memtoken ran
// (it is already tagged Stream in Phase A), or the synthesized sentinel
// Stream node otherwise.
func (bd *builder) entryActivationSource(entry *ir.BasicBlock) *dfgraph.DataflowNode {
	if call, ok := firstEntryTokenCall(entry, bd.cfg.cache); ok {
		if n, ok := bd.graph.FindNode(call.Dest); ok {
			return n
		}
	}
	return bd.entryStreamNode()
}

func firstEntryTokenCall(entry *ir.BasicBlock, cache interface{ IsEntryToken(string) bool }) (*ir.Call, bool) {
	for _, in := range entry.Instrs {
		if call, ok := in.(*ir.Call); ok && cache.IsEntryToken(call.Callee) {
			return call, true
		}
	}
	return nil, false
}

// predicateArm wires gate into every effectful node (Load/Store) whose
// originating instruction lives in one of blocks, so it carries an
// incoming edge from the branch's steer in addition to its ordinary data
// and token inputs.
func (bd *builder) predicateArm(blocks map[*ir.BasicBlock]bool, gate *dfgraph.DataflowNode) {
	for block := range blocks {
		for _, in := range block.Instrs {
			res := in.Result()
			if res == nil {
				continue
			}
			n, ok := bd.graph.FindNode(res)
			if !ok {
				continue
			}
			if n.Kind != dfgraph.Load && n.Kind != dfgraph.Store {
				continue
			}
			bd.graph.AddEdge(gate, n)
		}
	}
}

// wireMemoryDependencies links each store to every same-type load that
// follows it in program order with no intervening store of that type,
// approximating "no alias analysis, so order by type" rather than by
// address (this adapter erases address identity once memtoken rewrites a
// Store into a call, so true same-address tracking is out of reach here).
func (bd *builder) wireMemoryDependencies() {
	var lastStoreByType = map[string]*dfgraph.DataflowNode{}
	for _, b := range bd.fn.Blocks {
		for _, in := range b.Instrs {
			call, ok := in.(*ir.Call)
			if !ok {
				continue
			}
			cache := bd.cfg.cache
			switch {
			case cache.IsStore(call.Callee):
				if len(call.Args) == 0 {
					continue
				}
				n, ok := bd.graph.FindNode(call.Dest)
				if !ok {
					continue
				}
				lastStoreByType[call.Args[0].Type] = n
			case cache.IsLoad(call.Callee):
				if len(call.Args) == 0 {
					continue
				}
				n, ok := bd.graph.FindNode(call.Dest)
				if !ok {
					continue
				}
				if store, ok := lastStoreByType[call.Args[0].Type]; ok {
					bd.graph.AddEdge(store, n)
				}
			}
		}
	}
}
