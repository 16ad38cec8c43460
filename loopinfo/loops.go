package loopinfo

import "github.com/riptide-dfg/dfgc/ir"

// Loop describes one natural loop.
type Loop struct {
	// Header is the loop's single entry block.
	Header *ir.BasicBlock
	// Latch is the block whose terminator jumps back to Header. When a
	// loop has several back edges into the same header (e.g. multiple
	// continue points), Latch is the first one found in block order and
	// every latch's body is folded into the same Loop.
	Latch *ir.BasicBlock
	// Preheader is Header's unique predecessor outside the loop, or nil
	// if Header has zero or more than one such predecessor.
	Preheader *ir.BasicBlock
	// Exiting is the in-loop block whose conditional terminator has one
	// successor inside the loop and one outside, or nil if none is
	// found (irreducible or unconditionally-infinite loop bodies).
	Exiting *ir.BasicBlock
	// Blocks holds every block in the loop body, including Header.
	Blocks []*ir.BasicBlock
}

// Contains reports whether b is a member of the loop body.
func (l *Loop) Contains(b *ir.BasicBlock) bool {
	for _, m := range l.Blocks {
		if m == b {
			return true
		}
	}
	return false
}

// Info is the result of analyzing one function: every natural loop found,
// and a lookup from block to its innermost enclosing loop.
type Info struct {
	Loops []*Loop

	byHeader    map[*ir.BasicBlock]*Loop
	containedBy map[*ir.BasicBlock][]*Loop
}

// HeaderOf returns the loop headed by b, or nil if b is not a loop header.
func (info *Info) HeaderOf(b *ir.BasicBlock) *Loop { return info.byHeader[b] }

// Innermost returns the smallest-bodied loop containing b, or nil if b is
// not inside any loop.
func (info *Info) Innermost(b *ir.BasicBlock) *Loop {
	var best *Loop
	for _, l := range info.containedBy[b] {
		if best == nil || len(l.Blocks) < len(best.Blocks) {
			best = l
		}
	}
	return best
}

// Find computes loop structure for f. Declarations (no blocks) yield an
// empty, non-nil Info.
func Find(f *ir.Function) *Info {
	info := &Info{
		byHeader:    make(map[*ir.BasicBlock]*Loop),
		containedBy: make(map[*ir.BasicBlock][]*Loop),
	}
	if f.Entry() == nil {
		return info
	}
	doms := computeDominators(f)

	// Back edges: n -> h where h dominates n. Group by header so several
	// latches into the same header fold into one Loop.
	latchesByHeader := make(map[*ir.BasicBlock][]*ir.BasicBlock)
	var headerOrder []*ir.BasicBlock
	for _, n := range f.Blocks {
		for _, s := range n.Succs {
			if doms.dominates(s.Index, n.Index) {
				if _, ok := latchesByHeader[s]; !ok {
					headerOrder = append(headerOrder, s)
				}
				latchesByHeader[s] = append(latchesByHeader[s], n)
			}
		}
	}

	for _, header := range headerOrder {
		latches := latchesByHeader[header]
		body := map[*ir.BasicBlock]bool{header: true}
		var stack []*ir.BasicBlock
		for _, latch := range latches {
			if !body[latch] {
				body[latch] = true
				stack = append(stack, latch)
			}
		}
		for len(stack) > 0 {
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, p := range b.Preds {
				if !body[p] {
					body[p] = true
					stack = append(stack, p)
				}
			}
		}

		var blocks []*ir.BasicBlock
		for _, b := range f.Blocks { // preserve deterministic layout order
			if body[b] {
				blocks = append(blocks, b)
			}
		}

		loop := &Loop{Header: header, Latch: latches[0], Blocks: blocks}
		loop.Preheader = findPreheader(header, body)
		loop.Exiting = findExiting(blocks, body)

		info.Loops = append(info.Loops, loop)
		info.byHeader[header] = loop
		for _, b := range blocks {
			info.containedBy[b] = append(info.containedBy[b], loop)
		}
	}

	return info
}

// findPreheader returns header's unique predecessor outside the loop
// body, or nil if there isn't exactly one.
func findPreheader(header *ir.BasicBlock, body map[*ir.BasicBlock]bool) *ir.BasicBlock {
	var outside *ir.BasicBlock
	count := 0
	for _, p := range header.Preds {
		if !body[p] {
			outside = p
			count++
		}
	}
	if count == 1 {
		return outside
	}
	return nil
}

// findExiting returns the first loop block (in layout order) whose
// conditional terminator has exactly one successor inside the body and
// one outside, i.e. the branch that actually leaves the loop.
func findExiting(blocks []*ir.BasicBlock, body map[*ir.BasicBlock]bool) *ir.BasicBlock {
	for _, b := range blocks {
		br, ok := b.Terminator().(*ir.If)
		if !ok {
			continue
		}
		insideTrue, insideFalse := body[br.TrueBlock], body[br.FalseBlock]
		if insideTrue != insideFalse {
			return b
		}
	}
	return nil
}
