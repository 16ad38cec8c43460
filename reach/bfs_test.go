package reach_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/reach"
)

func diamondFunction() (*ir.Function, map[string]*ir.BasicBlock) {
	cond := ir.NewParam("c", "bool")
	fn := ir.NewFunction("f", []*ir.Value{cond}, "int")

	entry := fn.AddBlock("entry")
	left := fn.AddBlock("left")
	right := fn.AddBlock("right")
	join := fn.AddBlock("join")
	unreachable := fn.AddBlock("dead")
	_ = unreachable

	ir.SetIf(entry, cond, left, right)
	ir.SetJump(left, join)
	ir.SetJump(right, join)
	ir.SetReturn(join, nil)

	return fn, map[string]*ir.BasicBlock{
		"entry": entry, "left": left, "right": right, "join": join, "dead": unreachable,
	}
}

func TestBlocks_IncludesOnlyReachableBlocks(t *testing.T) {
	fn, blocks := diamondFunction()
	set := reach.Blocks(fn)

	assert.True(t, set[blocks["entry"]])
	assert.True(t, set[blocks["left"]])
	assert.True(t, set[blocks["right"]])
	assert.True(t, set[blocks["join"]])
	assert.False(t, set[blocks["dead"]])
}

func TestOrder_VisitsEntryFirstAndJoinLast(t *testing.T) {
	fn, blocks := diamondFunction()
	order := reach.Order(fn)

	assert.Same(t, blocks["entry"], order[0])
	assert.Same(t, blocks["join"], order[len(order)-1])
	assert.Len(t, order, 4)
}

func TestBlocks_DeclarationYieldsEmptySet(t *testing.T) {
	fn := ir.NewFunction("extern", nil, "int")
	fn.Declaration = true
	assert.Empty(t, reach.Blocks(fn))
	assert.Nil(t, reach.Order(fn))
}
