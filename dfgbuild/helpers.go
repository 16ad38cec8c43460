package dfgbuild

import "github.com/riptide-dfg/dfgc/ir"

// climbToBranch walks upward from b through single-predecessor,
// single-successor ancestors and returns the nearest ancestor that has
// more than one successor (i.e. a branch block), or nil if no such
// ancestor exists before the chain runs out (the entry block, a loop
// header reached from multiple directions, or an irreducible join).
//
// This is a deliberately narrow approximation of "which branch controls
// this block": it recognizes straight-line if/else arms (possibly empty)
// but gives up on nested branches or nested joins inside an arm. Phase E
// (through controllingIf) falls back to an undifferentiated join when it
// returns nil.
func climbToBranch(b *ir.BasicBlock) *ir.BasicBlock {
	cur := b
	for len(cur.Preds) == 1 {
		parent := cur.Preds[0]
		if len(parent.Succs) > 1 {
			return parent
		}
		cur = parent
	}
	return nil
}

// climbsTo reports whether following single-successor chains from start
// reaches target.
func climbsTo(start, target *ir.BasicBlock) bool {
	cur := start
	for {
		if cur == target {
			return true
		}
		if len(cur.Succs) != 1 {
			return false
		}
		cur = cur.Succs[0]
	}
}

// controllingIf finds the single *ir.If whose two arms lead, via
// straight-line chains, to b's two predecessors p0 and p1, and reports
// which of p0/p1 is reached from the true arm. ok is false when b does
// not have exactly two predecessors, or no common controlling branch was
// found — the diamond-detection gives up rather than guessing.
func controllingIf(b *ir.BasicBlock) (branch *ir.If, truePred, falsePred *ir.BasicBlock, ok bool) {
	if len(b.Preds) != 2 {
		return nil, nil, nil, false
	}
	p0, p1 := b.Preds[0], b.Preds[1]

	head0 := climbToBranch(p0)
	head1 := climbToBranch(p1)
	var head *ir.BasicBlock
	switch {
	case head0 != nil && head0 == head1:
		head = head0
	case head0 == nil && p0 == head1:
		head = p0
	case head1 == nil && p1 == head0:
		head = p1
	default:
		return nil, nil, nil, false
	}

	ifInstr, isIf := head.Terminator().(*ir.If)
	if !isIf {
		return nil, nil, nil, false
	}

	side0, ok0 := armSide(ifInstr, head, b, p0)
	side1, ok1 := armSide(ifInstr, head, b, p1)
	if !ok0 || !ok1 || side0 == side1 {
		return nil, nil, nil, false
	}
	if side0 {
		return ifInstr, p0, p1, true
	}
	return ifInstr, p1, p0, true
}

// armSide reports which arm of ifInstr (true = true, false = false) leads
// to the predecessor p of the join block b, and whether one could be
// determined at all. Two shapes are recognized: p is reached by a
// straight-line single-successor chain starting at the arm's target
// block (the ordinary case, possibly a chain of length zero when the arm
// target itself is p), or the arm is empty — its target IS b itself — in
// which case the edge's source is head, and p must be head.
func armSide(ifInstr *ir.If, head, b, p *ir.BasicBlock) (trueSide, ok bool) {
	switch {
	case climbsTo(ifInstr.TrueBlock, p):
		return true, true
	case climbsTo(ifInstr.FalseBlock, p):
		return false, true
	case p == head && ifInstr.TrueBlock == b:
		return true, true
	case p == head && ifInstr.FalseBlock == b:
		return false, true
	default:
		return false, false
	}
}

// armBlocks partitions the blocks reachable from ifInstr's two successors
// into exclusively-true, exclusively-false, and shared sets. A block
// reached by BFS from both arms before either walk hits a block with more
// than one predecessor (a join point) belongs to neither arm's exclusive
// set — it is past the join and common to both paths.
func armBlocks(ifInstr *ir.If) (trueOnly, falseOnly map[*ir.BasicBlock]bool) {
	trueOnly = bfsUntilJoin(ifInstr.TrueBlock)
	falseOnly = bfsUntilJoin(ifInstr.FalseBlock)
	for b := range trueOnly {
		if falseOnly[b] {
			delete(trueOnly, b)
			delete(falseOnly, b)
		}
	}
	return trueOnly, falseOnly
}

func bfsUntilJoin(start *ir.BasicBlock) map[*ir.BasicBlock]bool {
	visited := map[*ir.BasicBlock]bool{start: true}
	queue := []*ir.BasicBlock{start}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		for _, s := range b.Succs {
			if len(s.Preds) > 1 {
				continue // join point: not exclusive to this arm
			}
			if !visited[s] {
				visited[s] = true
				queue = append(queue, s)
			}
		}
	}
	return visited
}
