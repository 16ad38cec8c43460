package dfgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
)

func TestGetOrAdd_TagsParameterAndConstant(t *testing.T) {
	g := dfgraph.New()
	p := ir.NewParam("x", "int")
	n, ok := g.GetOrAdd(p)
	require.True(t, ok)
	assert.Equal(t, dfgraph.FunctionInput, n.Kind)

	c := ir.NewConst("int", 5)
	cn, ok := g.GetOrAdd(c)
	require.True(t, ok)
	assert.Equal(t, dfgraph.Constant, cn.Kind)
}

func TestGetOrAdd_SkipsTransparentInstructions(t *testing.T) {
	g := dfgraph.New()
	fn := ir.NewFunction("f", nil, "")
	entry := fn.AddBlock("entry")
	base := ir.NewParam("b", "*int")
	idx := ir.NewConst("int", 0)
	addr := ir.EmitAddr(entry, base, []*ir.Value{idx}, "*int")

	_, ok := g.GetOrAdd(addr)
	assert.False(t, ok)
}

func TestGetOrAdd_IsIdempotent(t *testing.T) {
	g := dfgraph.New()
	p := ir.NewParam("x", "int")
	n1, _ := g.GetOrAdd(p)
	n2, _ := g.GetOrAdd(p)
	assert.Same(t, n1, n2)
	assert.Equal(t, 1, g.NodeCount())
}

func TestAddEdge_IsIdempotent(t *testing.T) {
	g := dfgraph.New()
	a := g.AddNode(dfgraph.Constant, nil, "a")
	b := g.AddNode(dfgraph.Constant, nil, "b")
	e1 := g.AddEdge(a, b)
	e2 := g.AddEdge(a, b)
	assert.Same(t, e1, e2)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestRemoveNode_UnlinksEdges(t *testing.T) {
	g := dfgraph.New()
	a := g.AddNode(dfgraph.Constant, nil, "a")
	b := g.AddNode(dfgraph.Constant, nil, "b")
	c := g.AddNode(dfgraph.Constant, nil, "c")
	g.AddEdge(a, b)
	g.AddEdge(b, c)

	require.NoError(t, g.RemoveNode(b))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, a.Outputs)
	assert.Empty(t, c.Inputs)
}

func TestRemoveNode_NilAndNotOwned(t *testing.T) {
	g := dfgraph.New()
	other := dfgraph.New()
	n := other.AddNode(dfgraph.Constant, nil, "x")

	assert.ErrorIs(t, g.RemoveNode(nil), dfgraph.ErrNilNode)
	assert.ErrorIs(t, g.RemoveNode(n), dfgraph.ErrNodeNotOwned)
}

func TestRetag_EnforcesUnknownToConcreteOnce(t *testing.T) {
	n := &dfgraph.DataflowNode{Kind: dfgraph.Unknown}
	assert.True(t, n.Retag(dfgraph.Load))
	assert.Equal(t, dfgraph.Load, n.Kind)
	assert.False(t, n.Retag(dfgraph.Store))
	assert.True(t, n.Retag(dfgraph.Load)) // re-asserting the same kind is fine
}

func TestDisplayLabel_Preference(t *testing.T) {
	n := &dfgraph.DataflowNode{Kind: dfgraph.Merge}
	assert.Equal(t, "M", n.DisplayLabel())
	n.Symbol = "=="
	assert.Equal(t, "==", n.DisplayLabel())
	n.Label = "phi.x"
	assert.Equal(t, "phi.x", n.DisplayLabel())
}

func TestAddSentinelNode_IsIdempotentByKey(t *testing.T) {
	g := dfgraph.New()
	n1 := g.AddSentinelNode(dfgraph.Stream, "entry-stream", "STR")
	n2 := g.AddSentinelNode(dfgraph.Stream, "entry-stream", "STR")
	assert.Same(t, n1, n2)
}
