package ir

// BasicBlock is a single-entry, single-exit straight-line instruction
// sequence ending in exactly one terminator (If, Jump, or Return).
type BasicBlock struct {
	Index  int
	Name   string
	Instrs []Instruction
	Preds  []*BasicBlock
	Succs  []*BasicBlock

	parent *Function
}

// Parent returns the function this block belongs to.
func (b *BasicBlock) Parent() *Function { return b.parent }

// Terminator returns the block's terminating instruction, or nil if the
// block is empty or not yet terminated, a malformed-IR condition the
// caller is expected to check for.
func (b *BasicBlock) Terminator() Instruction {
	if len(b.Instrs) == 0 {
		return nil
	}
	last := b.Instrs[len(b.Instrs)-1]
	if !last.IsTerminator() {
		return nil
	}
	return last
}

// Phis returns the leading run of Phi instructions at the block's head.
// Phi nodes only ever appear at a block head.
func (b *BasicBlock) Phis() []*Phi {
	var phis []*Phi
	for _, in := range b.Instrs {
		p, ok := in.(*Phi)
		if !ok {
			break
		}
		phis = append(phis, p)
	}
	return phis
}

// AddInstr appends in to the block's instruction list.
func (b *BasicBlock) AddInstr(in Instruction) {
	in.setBlock(b)
	b.Instrs = append(b.Instrs, in)
}

// InsertAtHead prepends in before any existing instruction, including
// existing phis — used once per block by memtoken to insert the memory
// token phi, which must itself precede any value phi a later pass might
// add so both are recognizable as block-head joins.
func (b *BasicBlock) InsertAtHead(in Instruction) {
	in.setBlock(b)
	b.Instrs = append([]Instruction{in}, b.Instrs...)
}

// ReplaceInstr swaps the instruction at index i for replacement,
// preserving position. Used by memtoken to turn a Load/Store in place
// into the equivalent token-carrying Call.
func (b *BasicBlock) ReplaceInstr(i int, replacement Instruction) {
	replacement.setBlock(b)
	b.Instrs[i] = replacement
}
