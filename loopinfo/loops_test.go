package loopinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/loopinfo"
)

// buildCountingLoop builds:
//
//	entry -> header -> body -> latch -> header (back edge)
//	header -> exit (when the counter reaches n)
func buildCountingLoop() (*ir.Function, map[string]*ir.BasicBlock) {
	n := ir.NewParam("n", "int")
	fn := ir.NewFunction("count", []*ir.Value{n}, "int")

	entry := fn.AddBlock("entry")
	header := fn.AddBlock("header")
	body := fn.AddBlock("body")
	latch := fn.AddBlock("latch")
	exit := fn.AddBlock("exit")

	ir.SetJump(entry, header)

	i := ir.EmitPhi(header, "int", ir.PhiIncoming{Value: ir.NewConst("int", 0), Pred: entry})
	cond := ir.EmitCmp(header, ir.PredLt, false, i, n)
	ir.SetIf(header, cond, body, exit)

	ir.SetJump(body, latch)

	one := ir.NewConst("int", 1)
	next := ir.EmitBinOp(latch, ir.OpAdd, i, one, "int")
	ir.SetJump(latch, header)

	if phi, ok := i.Def().(*ir.Phi); ok {
		phi.Incoming = append(phi.Incoming, ir.PhiIncoming{Value: next, Pred: latch})
	}

	ir.SetReturn(exit, i)

	return fn, map[string]*ir.BasicBlock{
		"entry": entry, "header": header, "body": body, "latch": latch, "exit": exit,
	}
}

func TestFind_DetectsSingleLoopWithPreheaderAndExiting(t *testing.T) {
	fn, blocks := buildCountingLoop()
	info := loopinfo.Find(fn)

	require.Len(t, info.Loops, 1)
	loop := info.Loops[0]
	assert.Same(t, blocks["header"], loop.Header)
	assert.Same(t, blocks["latch"], loop.Latch)
	assert.Same(t, blocks["entry"], loop.Preheader)
	assert.Same(t, blocks["header"], loop.Exiting)
	assert.True(t, loop.Contains(blocks["body"]))
	assert.False(t, loop.Contains(blocks["exit"]))
}

func TestHeaderOf_NonHeaderReturnsNil(t *testing.T) {
	fn, blocks := buildCountingLoop()
	info := loopinfo.Find(fn)
	assert.Nil(t, info.HeaderOf(blocks["body"]))
	assert.NotNil(t, info.HeaderOf(blocks["header"]))
}

func TestInnermost_PicksSmallestEnclosingLoop(t *testing.T) {
	fn, blocks := buildCountingLoop()
	info := loopinfo.Find(fn)
	assert.Same(t, info.HeaderOf(blocks["header"]), info.Innermost(blocks["body"]))
	assert.Nil(t, info.Innermost(blocks["entry"]))
}

func TestFind_StraightLineFunctionHasNoLoops(t *testing.T) {
	a := ir.NewParam("a", "int")
	fn := ir.NewFunction("f", []*ir.Value{a}, "int")
	entry := fn.AddBlock("entry")
	ir.SetReturn(entry, a)

	info := loopinfo.Find(fn)
	assert.Empty(t, info.Loops)
}

func TestFind_DeclarationYieldsEmptyInfo(t *testing.T) {
	fn := ir.NewFunction("extern", nil, "int")
	fn.Declaration = true
	info := loopinfo.Find(fn)
	assert.NotNil(t, info)
	assert.Empty(t, info.Loops)
}
