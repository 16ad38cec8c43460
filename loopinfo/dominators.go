package loopinfo

import "github.com/riptide-dfg/dfgc/ir"

// domInfo holds the dominator tree for one function, keyed by block index.
type domInfo struct {
	idom    []int // idom[i] = index of i's immediate dominator, or i itself for the entry
	postIdx []int // postIdx[i] = position of block i in postorder (for intersect)
	blocks  []*ir.BasicBlock
}

// computeDominators builds the immediate-dominator table for f using the
// iterative algorithm of Cooper, Harvey & Kennedy ("A Simple, Fast
// Dominance Algorithm"). f.Entry() is assumed reachable from itself and
// every other block reachable from it; unreachable blocks are left with
// idom == -1 and never dominate or get dominated.
func computeDominators(f *ir.Function) *domInfo {
	entry := f.Entry()
	if entry == nil {
		return &domInfo{}
	}

	postorder, index := postorderBlocks(entry)
	n := len(f.Blocks)
	idom := make([]int, n)
	for i := range idom {
		idom[i] = -1
	}
	idom[entry.Index] = entry.Index

	changed := true
	for changed {
		changed = false
		// Process in reverse postorder, skipping the entry.
		for i := len(postorder) - 1; i >= 0; i-- {
			b := postorder[i]
			if b == entry {
				continue
			}
			newIdom := -1
			for _, p := range b.Preds {
				if idom[p.Index] == -1 {
					continue
				}
				if newIdom == -1 {
					newIdom = p.Index
					continue
				}
				newIdom = intersect(newIdom, p.Index, idom, index)
			}
			if newIdom != -1 && idom[b.Index] != newIdom {
				idom[b.Index] = newIdom
				changed = true
			}
		}
	}

	return &domInfo{idom: idom, postIdx: index, blocks: f.Blocks}
}

// intersect finds the nearest common ancestor of a and b in the (partial)
// dominator tree, walking up by comparing postorder numbers: a higher
// postorder number means "closer to the entry" in reverse-postorder terms.
func intersect(a, b int, idom, postIdx []int) int {
	for a != b {
		for postIdx[a] < postIdx[b] {
			a = idom[a]
		}
		for postIdx[b] < postIdx[a] {
			b = idom[b]
		}
	}
	return a
}

// postorderBlocks returns a postorder traversal of the blocks reachable
// from entry via Succs, plus a map from block index to its position in
// that order.
func postorderBlocks(entry *ir.BasicBlock) ([]*ir.BasicBlock, []int) {
	visited := make(map[*ir.BasicBlock]bool)
	var order []*ir.BasicBlock
	var visit func(b *ir.BasicBlock)
	visit = func(b *ir.BasicBlock) {
		if visited[b] {
			return
		}
		visited[b] = true
		for _, s := range b.Succs {
			visit(s)
		}
		order = append(order, b)
	}
	visit(entry)

	index := make([]int, entry.Parent().Blocks[len(entry.Parent().Blocks)-1].Index+1)
	for i, b := range order {
		index[b.Index] = i
	}
	return order, index
}

// dominates reports whether the block at index a dominates the block at
// index b, inclusive (every block dominates itself).
func (d *domInfo) dominates(a, b int) bool {
	if len(d.idom) == 0 {
		return false
	}
	for {
		if b == a {
			return true
		}
		if d.idom[b] == b {
			return b == a
		}
		if d.idom[b] == -1 {
			return false
		}
		b = d.idom[b]
	}
}
