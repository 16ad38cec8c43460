package reach

import "github.com/riptide-dfg/dfgc/ir"

// walker encapsulates mutable BFS state, mirroring the dfs/bfs walker
// shape: a queue, a visited set, and the order visited.
type walker struct {
	visited map[*ir.BasicBlock]bool
	order   []*ir.BasicBlock
	queue   []*ir.BasicBlock
}

// Blocks returns the set of blocks reachable from f's entry block,
// including the entry block itself, via BFS over Succs. A declaration
// (no entry block) yields an empty, non-nil map.
func Blocks(f *ir.Function) map[*ir.BasicBlock]bool {
	entry := f.Entry()
	if entry == nil {
		return map[*ir.BasicBlock]bool{}
	}

	w := &walker{
		visited: make(map[*ir.BasicBlock]bool, len(f.Blocks)),
		queue:   []*ir.BasicBlock{entry},
	}
	w.visited[entry] = true

	for len(w.queue) > 0 {
		b := w.dequeue()
		w.order = append(w.order, b)
		for _, s := range b.Succs {
			if !w.visited[s] {
				w.visited[s] = true
				w.queue = append(w.queue, s)
			}
		}
	}

	return w.visited
}

// Order returns blocks reachable from f's entry in BFS visitation order.
func Order(f *ir.Function) []*ir.BasicBlock {
	entry := f.Entry()
	if entry == nil {
		return nil
	}
	w := &walker{
		visited: make(map[*ir.BasicBlock]bool, len(f.Blocks)),
		queue:   []*ir.BasicBlock{entry},
	}
	w.visited[entry] = true
	for len(w.queue) > 0 {
		b := w.dequeue()
		w.order = append(w.order, b)
		for _, s := range b.Succs {
			if !w.visited[s] {
				w.visited[s] = true
				w.queue = append(w.queue, s)
			}
		}
	}
	return w.order
}

func (w *walker) dequeue() *ir.BasicBlock {
	b := w.queue[0]
	w.queue = w.queue[1:]
	return b
}
