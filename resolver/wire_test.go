package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riptide-dfg/dfgc/dfgraph"
	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/resolver"
)

func TestWire_SeesThroughAddrAndConvertChains(t *testing.T) {
	g := dfgraph.New()
	fn := ir.NewFunction("f", nil, "")
	entry := fn.AddBlock("entry")

	param, _ := g.GetOrAdd(ir.NewParam("base", "*int"))
	base := param.Origin

	idx := ir.NewConst("int", 0)
	g.GetOrAdd(idx)
	addr := ir.EmitAddr(entry, base, []*ir.Value{idx}, "*int")
	converted := ir.EmitConvert(entry, ir.CastBitcast, addr, "*int")

	dst := g.AddNode(dfgraph.Load, nil, "ld")
	resolver.Wire(g, converted, dst)

	require.Len(t, dst.Inputs, 2) // base and the constant index
	srcs := map[*dfgraph.DataflowNode]bool{}
	for _, e := range dst.Inputs {
		srcs[e.Src] = true
	}
	assert.True(t, srcs[param])
}

func TestWire_StopsAtFirstConcreteNode(t *testing.T) {
	g := dfgraph.New()
	fn := ir.NewFunction("f", nil, "")
	entry := fn.AddBlock("entry")

	x := ir.NewParam("x", "int")
	y := ir.NewParam("y", "int")
	gx, _ := g.GetOrAdd(x)
	gx.Retag(dfgraph.FunctionInput)
	sum := ir.EmitBinOp(entry, ir.OpAdd, x, y, "int")
	sumNode, _ := g.GetOrAdd(sum)
	sumNode.Retag(dfgraph.BasicBinaryOp)

	dst := g.AddNode(dfgraph.Load, nil, "ld")
	resolver.Wire(g, sum, dst)

	require.Len(t, dst.Inputs, 1)
	assert.Same(t, sumNode, dst.Inputs[0].Src)
}

func TestWire_NilIsNoOp(t *testing.T) {
	g := dfgraph.New()
	dst := g.AddNode(dfgraph.Load, nil, "ld")
	resolver.Wire(g, nil, dst)
	assert.Empty(t, dst.Inputs)
}
