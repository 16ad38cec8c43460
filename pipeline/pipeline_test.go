package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/pipeline"
)

func buildStoreFn() *ir.Function {
	p := ir.NewParam("p", "*int")
	fn := ir.NewFunction("bump", []*ir.Value{p}, "")
	entry := fn.AddBlock("entry")
	v := ir.EmitLoad(entry, p, "int")
	one := ir.NewConst("int", 1)
	next := ir.EmitBinOp(entry, ir.OpAdd, v, one, "int")
	ir.EmitStore(entry, p, next)
	ir.SetReturn(entry, nil)
	return fn
}

func TestLower_RunsMemoryOrderingByDefault(t *testing.T) {
	fn := buildStoreFn()
	g, err := pipeline.Lower(fn)
	require.NoError(t, err)
	assert.Equal(t, 1, len(graphNodesOfKind(g, dfgraph.Load)))
	assert.Equal(t, 1, len(graphNodesOfKind(g, dfgraph.Store)))

	var hasCallInstr bool
	for _, in := range fn.Entry().Instrs {
		if _, ok := in.(*ir.Call); ok {
			hasCallInstr = true
		}
	}
	assert.True(t, hasCallInstr, "memtoken.Transform should have rewritten load/store into calls")
}

func TestLower_SkipMemoryOrderingLeavesLoadsAndStores(t *testing.T) {
	fn := buildStoreFn()
	_, err := pipeline.Lower(fn, pipeline.SkipMemoryOrdering())
	require.NoError(t, err)

	for _, in := range fn.Entry().Instrs {
		_, isCall := in.(*ir.Call)
		assert.False(t, isCall)
	}
}

func TestLowerModule_SkipsDeclarations(t *testing.T) {
	mod := ir.NewModule("m")
	mod.AddFunction(buildStoreFn())
	decl := ir.NewFunction("extern", nil, "int")
	decl.Declaration = true
	mod.AddFunction(decl)

	graphs, err := pipeline.LowerModule(mod)
	require.NoError(t, err)
	assert.Len(t, graphs, 1)
	assert.Contains(t, graphs, "bump")
}

func TestWriteDOT_EmitsNamedDigraph(t *testing.T) {
	fn := buildStoreFn()
	g, err := pipeline.Lower(fn)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, pipeline.WriteDOT(&buf, fn.Name, g))
	assert.Contains(t, buf.String(), `digraph "bump"`)
}

func graphNodesOfKind(g *dfgraph.Graph, kind dfgraph.OperatorKind) []*dfgraph.DataflowNode {
	var out []*dfgraph.DataflowNode
	for _, n := range g.Nodes() {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}
