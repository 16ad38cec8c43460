package memtoken_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/memtoken"
)

func straightLineLoadStore() *ir.Function {
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

func TestTransform_RewritesLoadAndStoreToCalls(t *testing.T) {
	fn := straightLineLoadStore()
	cache := memtoken.NewCache()

	require.NoError(t, memtoken.Transform(cache, fn))

	entry := fn.Entry()
	var loadCall, storeCall *ir.Call
	for _, in := range entry.Instrs {
		call, ok := in.(*ir.Call)
		if !ok {
			continue
		}
		switch {
		case cache.IsLoad(call.Callee):
			loadCall = call
		case cache.IsStore(call.Callee):
			storeCall = call
		}
	}
	require.NotNil(t, loadCall)
	require.NotNil(t, storeCall)
	assert.Equal(t, "rt.load.int", loadCall.Callee)
	assert.Equal(t, "rt.store.int", storeCall.Callee)
	assert.Len(t, loadCall.Args, 2) // addr, token
}

func TestTransform_IsIdempotent(t *testing.T) {
	fn := straightLineLoadStore()
	cache := memtoken.NewCache()

	require.NoError(t, memtoken.Transform(cache, fn))
	firstLen := len(fn.Entry().Instrs)

	require.NoError(t, memtoken.Transform(cache, fn))
	assert.Equal(t, firstLen, len(fn.Entry().Instrs))
}

func TestTransform_FillsTokenPhiAtJoin(t *testing.T) {
	fn := ir.NewFunction("f", []*ir.Value{ir.NewParam("p", "*int")}, "")
	p := fn.Params[0]
	entry := fn.AddBlock("entry")
	a := fn.AddBlock("a")
	b := fn.AddBlock("b")
	join := fn.AddBlock("join")

	cond := ir.NewConst("bool", true)
	ir.SetIf(entry, cond, a, b)
	ir.EmitStore(a, p, ir.NewConst("int", 1))
	ir.SetJump(a, join)
	ir.EmitStore(b, p, ir.NewConst("int", 2))
	ir.SetJump(b, join)
	ir.SetReturn(join, nil)

	cache := memtoken.NewCache()
	require.NoError(t, memtoken.Transform(cache, fn))

	phis := join.Phis()
	require.Len(t, phis, 1)
	assert.Len(t, phis[0].Incoming, 2)
}

func TestTransform_SkipsDeclarations(t *testing.T) {
	fn := ir.NewFunction("extern", nil, "int")
	fn.Declaration = true
	cache := memtoken.NewCache()
	assert.NoError(t, memtoken.Transform(cache, fn))
	assert.Empty(t, fn.Blocks)
}
