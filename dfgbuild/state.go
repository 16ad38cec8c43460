package dfgbuild

import (
	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/loopinfo"
)

// steerPair is the output pair of one TrueSteer/FalseSteer gate: exactly
// one of the two ever produces a token for a given firing of the branch
// that gates them.
type steerPair struct {
	True  *dfgraph.DataflowNode
	False *dfgraph.DataflowNode
}

// builder carries the mutable state threaded through phases A-F for one
// function. It is not reused across functions — Build allocates a fresh
// one per call.
type builder struct {
	cfg   *config
	graph *dfgraph.Graph
	fn    *ir.Function
	loops *loopinfo.Info

	// branchSteers caches the TrueSteer/FalseSteer pair materialized for
	// a given branch's token-valve (Phase B), keyed by the *ir.If whose
	// Cond gates them, so a second request for the same branch reuses it
	// instead of building a duplicate pair.
	branchSteers map[*ir.If]steerPair

	// phiSteers caches the TrueSteer/FalseSteer pair built for one
	// specific phi-incoming data value (Phase E), keyed by the phi's
	// destination value, since a phi needs its own steer pair distinct
	// from any other phi gated by the same branch.
	phiSteers map[*ir.Value]steerPair

	// selectSteers caches the TrueSteer/FalseSteer pair built for one
	// *ir.Select (Phase C), keyed by the select itself.
	selectSteers map[*ir.Select]steerPair

	entryStream *dfgraph.DataflowNode
}

func newBuilder(cfg *config, fn *ir.Function) *builder {
	return &builder{
		cfg:          cfg,
		graph:        dfgraph.New(),
		fn:           fn,
		loops:        loopinfo.Find(fn),
		branchSteers: make(map[*ir.If]steerPair),
		phiSteers:    make(map[*ir.Value]steerPair),
		selectSteers: make(map[*ir.Select]steerPair),
	}
}

// entryStreamNode returns the function's single synthesized Stream node
// representing the entry activation token, creating it on first use.
func (bd *builder) entryStreamNode() *dfgraph.DataflowNode {
	if bd.entryStream != nil {
		return bd.entryStream
	}
	bd.entryStream = bd.graph.AddSentinelNode(dfgraph.Stream, entryStreamKey, dfgraph.Stream.DefaultLabel())
	return bd.entryStream
}
