package dfgbuild

import (
	"fmt"

	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
)

// Build lowers fn into a dataflow graph by running Phases A-F in order.
// fn must already satisfy ir.Verify's structural contract; Build
// checks this itself before doing any work so a malformed function never
// leaves a half-built graph behind.
//
// Phase G does not appear here as a step: it names the property that
// Build never mutates fn, not an action Build takes.
func Build(fn *ir.Function, opts ...BuildOption) (*dfgraph.Graph, error) {
	if fn == nil {
		return nil, ErrNilFunction
	}
	if fn.Declaration {
		return nil, ErrDeclaration
	}
	if err := ir.Verify(fn); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedIR, err)
	}

	cfg := resolveConfig(opts)
	bd := newBuilder(cfg, fn)

	bd.wireParameters() // materialize FunctionInput nodes before anything wires to them

	bd.runClassification() // Phase A
	bd.runBranches()       // Phase B
	bd.runSelects()        // Phase C
	bd.runDataDeps()       // Phase D
	bd.runPhis()           // Phase E
	bd.runFanout()         // Phase F

	bd.sweepUnknown()

	return bd.graph, nil
}

// wireParameters materializes a FunctionInput node for every parameter,
// even one never read by any instruction — a function that ignores an
// argument still declares an input port for it.
func (bd *builder) wireParameters() {
	for _, p := range bd.fn.Params {
		bd.graph.GetOrAdd(p)
	}
}

// sweepUnknown logs every node Phase A through F left tagged Unknown: a
// final graph is expected to contain none, and a logged
// warning is more useful to a caller debugging a gap in the builder's
// coverage than a silent, wrong-looking graph.
func (bd *builder) sweepUnknown() {
	for _, n := range bd.graph.Nodes() {
		if n.Kind == dfgraph.Unknown {
			bd.cfg.logger.Printf("dfgbuild: node for value %v left Unknown", n.Origin)
		}
	}
}
