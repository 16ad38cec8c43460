package ir

// This file collects small constructors that allocate an instruction,
// bind its Dest's def back to itself, and append it to a block in one
// call. They exist so callers (the memtoken transform, and tests that
// hand-build fixture functions) don't have to remember the Value/def
// bookkeeping by hand.

// NewTemp allocates a fresh unnamed temporary of the given type.
func NewTemp(typ string) *Value { return &Value{Type: typ, Kind: ValueTemporary} }

// EmitBinOp appends a BinOp to b and returns its result value.
func EmitBinOp(b *BasicBlock, op BinOpKind, x, y *Value, typ string) *Value {
	dest := NewTemp(typ)
	in := &BinOp{Op: op, Dest: dest, X: x, Y: y}
	dest.SetDef(in)
	b.AddInstr(in)
	return dest
}

// EmitCmp appends a Cmp to b and returns its boolean result value.
func EmitCmp(b *BasicBlock, pred Predicate, float bool, x, y *Value) *Value {
	dest := NewTemp("bool")
	in := &Cmp{Pred: pred, Float: float, Dest: dest, X: x, Y: y}
	dest.SetDef(in)
	b.AddInstr(in)
	return dest
}

// EmitLoad appends a Load to b and returns its result value.
func EmitLoad(b *BasicBlock, addr *Value, typ string) *Value {
	dest := NewTemp(typ)
	in := &Load{Dest: dest, Addr: addr}
	dest.SetDef(in)
	b.AddInstr(in)
	return dest
}

// EmitStore appends a Store to b.
func EmitStore(b *BasicBlock, addr, val *Value) {
	b.AddInstr(&Store{Addr: addr, Val: val})
}

// EmitAddr appends an AddrCompute to b and returns its result value.
func EmitAddr(b *BasicBlock, base *Value, indices []*Value, typ string) *Value {
	dest := NewTemp(typ)
	in := &AddrCompute{Dest: dest, Base: base, Indices: indices}
	dest.SetDef(in)
	b.AddInstr(in)
	return dest
}

// EmitConvert appends a Convert to b and returns its result value.
func EmitConvert(b *BasicBlock, kind CastKind, x *Value, typ string) *Value {
	dest := NewTemp(typ)
	in := &Convert{Kind: kind, Dest: dest, X: x}
	dest.SetDef(in)
	b.AddInstr(in)
	return dest
}

// EmitPhi appends a Phi to b (at its head, per the phi-only-at-block-head
// contract) and returns its result value.
func EmitPhi(b *BasicBlock, typ string, incoming ...PhiIncoming) *Value {
	dest := NewTemp(typ)
	in := &Phi{Dest: dest, Incoming: incoming}
	dest.SetDef(in)
	b.InsertAtHead(in)
	return dest
}

// EmitSelect appends a Select to b and returns its result value.
func EmitSelect(b *BasicBlock, cond, trueVal, falseVal *Value, typ string) *Value {
	dest := NewTemp(typ)
	in := &Select{Dest: dest, Cond: cond, TrueVal: trueVal, FalseVal: falseVal}
	dest.SetDef(in)
	b.AddInstr(in)
	return dest
}

// EmitCall appends a Call to b. If typ is non-empty the call produces a
// result of that type; otherwise it is a void call.
func EmitCall(b *BasicBlock, callee string, args []*Value, typ string) *Value {
	var dest *Value
	in := &Call{Callee: callee, Args: args}
	if typ != "" {
		dest = NewTemp(typ)
		dest.SetDef(in)
		in.Dest = dest
	}
	b.AddInstr(in)
	return dest
}

// SetJump terminates b with an unconditional jump to target and links
// the CFG edge.
func SetJump(b *BasicBlock, target *BasicBlock) {
	b.AddInstr(&Jump{Target: target})
	b.parent.Link(b, target)
}

// SetIf terminates b with a conditional branch and links both CFG edges.
func SetIf(b *BasicBlock, cond *Value, trueBlock, falseBlock *BasicBlock) {
	b.AddInstr(&If{Cond: cond, TrueBlock: trueBlock, FalseBlock: falseBlock})
	b.parent.Link(b, trueBlock)
	b.parent.Link(b, falseBlock)
}

// SetReturn terminates b with a return.
func SetReturn(b *BasicBlock, v *Value) {
	b.AddInstr(&Return{Value: v})
}
