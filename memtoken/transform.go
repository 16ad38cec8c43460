package memtoken

import (
	"github.com/riptide-dfg/dfgc/ir"
	"github.com/riptide-dfg/dfgc/reach"
)

// tokenType is the element type stamped on every memory-token value.
const tokenType = "tok"

// Transform rewrites f in place: reserves load/store/entry-token
// intrinsics keyed by element type, rewrites every load/store into its
// token-carrying call form, and threads the resulting token through a
// phi at the head of every reachable non-entry block. A declaration (no
// body) is left untouched, and Transform returns nil immediately.
//
// Re-running Transform on an already-transformed function is a no-op:
// every step below first checks whether the work it is
// about to do has already been done (an existing token phi, an existing
// entry-token call, a Load/Store that is already a Call) and reuses what
// it finds instead of re-wrapping it.
func Transform(cache *Cache, f *ir.Function) error {
	if f.Declaration {
		return nil
	}
	entry := f.Entry()
	if entry == nil {
		return nil
	}

	reachable := reach.Blocks(f)

	phiOf := make(map[*ir.BasicBlock]*ir.Phi, len(f.Blocks))
	for _, b := range f.Blocks {
		if b == entry || !reachable[b] {
			continue
		}
		phiOf[b] = existingOrNewTokenPhi(b)
	}

	outToken := make(map[*ir.BasicBlock]*ir.Value, len(f.Blocks))
	for _, b := range f.Blocks {
		if !reachable[b] {
			continue
		}
		var current *ir.Value
		if b == entry {
			current = entryToken(cache, b)
		} else {
			current = phiOf[b].Dest
		}
		current = rewriteBlock(cache, b, current)
		outToken[b] = current
	}

	for b, phi := range phiOf {
		if len(b.Preds) == 0 {
			return ErrUnreachableMissingPhi
		}
		for _, p := range b.Preds {
			tok, ok := outToken[p]
			if !ok {
				return ErrMissingPredToken
			}
			phi.SetIncoming(p, tok)
		}
	}

	return nil
}

// existingOrNewTokenPhi returns b's token phi, inserting one at the head
// if it isn't already there.
func existingOrNewTokenPhi(b *ir.BasicBlock) *ir.Phi {
	for _, p := range b.Phis() {
		if p.Dest.Type == tokenType {
			return p
		}
	}
	dest := ir.NewTemp(tokenType)
	in := &ir.Phi{Dest: dest}
	dest.SetDef(in)
	b.InsertAtHead(in)
	return in
}

// entryToken returns the entry block's activation token, reusing an
// existing entry_token() call if this function has already been
// transformed once.
func entryToken(cache *Cache, entry *ir.BasicBlock) *ir.Value {
	if len(entry.Instrs) > 0 {
		if call, ok := entry.Instrs[0].(*ir.Call); ok && cache.IsEntryToken(call.Callee) {
			return call.Dest
		}
	}
	dest := ir.NewTemp(tokenType)
	in := &ir.Call{Callee: cache.EntryTokenName(), Dest: dest}
	dest.SetDef(in)
	entry.InsertAtHead(in)
	return dest
}

// rewriteBlock walks b's instructions (skipping any phi at the head),
// converting each Load/Store into its token-carrying Call form and
// threading current through. It returns b's final out-token.
func rewriteBlock(cache *Cache, b *ir.BasicBlock, current *ir.Value) *ir.Value {
	for i, in := range b.Instrs {
		switch instr := in.(type) {
		case *ir.Load:
			call := &ir.Call{Callee: cache.LoadName(instr.Dest.Type), Args: []*ir.Value{instr.Addr, current}, Dest: instr.Dest}
			instr.Dest.SetDef(call)
			b.ReplaceInstr(i, call)
		case *ir.Store:
			tok := ir.NewTemp(tokenType)
			call := &ir.Call{Callee: cache.StoreName(instr.Val.Type), Args: []*ir.Value{instr.Addr, instr.Val}, Dest: tok}
			tok.SetDef(call)
			b.ReplaceInstr(i, call)
			current = tok
		case *ir.Call:
			switch {
			case cache.IsLoad(instr.Callee):
				// already transformed: token operand unchanged, current unchanged.
			case cache.IsStore(instr.Callee):
				current = instr.Dest
			}
		}
	}
	return current
}
