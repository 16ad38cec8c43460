package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riptide-dfg/dfgc/ir"
)

func straightLineFunction() *ir.Function {
	a := ir.NewParam("a", "int")
	b := ir.NewParam("b", "int")
	fn := ir.NewFunction("add2", []*ir.Value{a, b}, "int")
	entry := fn.AddBlock("entry")
	sum := ir.EmitBinOp(entry, ir.OpAdd, a, b, "int")
	ir.SetReturn(entry, sum)
	return fn
}

func TestVerify_WellFormed(t *testing.T) {
	fn := straightLineFunction()
	assert.NoError(t, ir.Verify(fn))
}

func TestVerify_MissingTerminator(t *testing.T) {
	fn := ir.NewFunction("broken", nil, "")
	fn.AddBlock("entry")
	assert.ErrorIs(t, ir.Verify(fn), ir.ErrMissingTerminator)
}

func TestVerify_PhiArityMismatch(t *testing.T) {
	fn := ir.NewFunction("f", nil, "int")
	entry := fn.AddBlock("entry")
	a := fn.AddBlock("a")
	b := fn.AddBlock("b")
	join := fn.AddBlock("join")

	cond := ir.NewConst("bool", true)
	ir.SetIf(entry, cond, a, b)
	ir.SetJump(a, join)
	ir.SetJump(b, join)

	dest := ir.NewTemp("int")
	phi := &ir.Phi{Dest: dest, Incoming: []ir.PhiIncoming{{Value: ir.NewConst("int", 1), Pred: a}}}
	dest.SetDef(phi)
	join.InsertAtHead(phi)
	ir.SetReturn(join, dest)

	assert.ErrorIs(t, ir.Verify(fn), ir.ErrPhiArityMismatch)
}

func TestFunction_Users(t *testing.T) {
	fn := straightLineFunction()
	a := fn.Params[0]
	users := fn.Users(a)
	require.Len(t, users, 1)
	_, ok := users[0].(*ir.BinOp)
	assert.True(t, ok)
}

func TestValue_StringVariants(t *testing.T) {
	assert.Equal(t, "param(a)", ir.NewParam("a", "int").String())
	assert.Equal(t, "const(3)", ir.NewConst("int", 3).String())
	assert.True(t, ir.NewConst("int", 3).IsConstant())
	assert.True(t, ir.NewParam("a", "int").IsParameter())
}

func TestBlock_InsertAtHeadPrecedesExisting(t *testing.T) {
	fn := ir.NewFunction("f", nil, "")
	entry := fn.AddBlock("entry")
	first := ir.NewTemp("int")
	phi1 := &ir.Phi{Dest: first}
	first.SetDef(phi1)
	entry.AddInstr(phi1)

	second := ir.NewTemp("tok")
	phi2 := &ir.Phi{Dest: second}
	second.SetDef(phi2)
	entry.InsertAtHead(phi2)

	require.Len(t, entry.Instrs, 2)
	assert.Same(t, ir.Instruction(phi2), entry.Instrs[0])
}

func TestBlock_ReplaceInstrPreservesPosition(t *testing.T) {
	fn := ir.NewFunction("f", nil, "")
	entry := fn.AddBlock("entry")
	addr := ir.NewParam("p", "*int")
	dest := ir.EmitLoad(entry, addr, "int")
	ir.SetReturn(entry, dest)

	call := &ir.Call{Callee: "rt.load.int", Args: []*ir.Value{addr}, Dest: dest}
	dest.SetDef(call)
	entry.ReplaceInstr(0, call)

	require.Len(t, entry.Instrs, 2)
	_, ok := entry.Instrs[0].(*ir.Call)
	assert.True(t, ok)
}
