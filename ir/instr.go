package ir

import "fmt"

// Instruction is any IR instruction. Operands returns every value read;
// Result returns the value written, or nil for instructions that produce
// none (Store, Jump, If, Return). Implementations are uniform three-
// address-code style: at most a handful of operands, one result.
type Instruction interface {
	String() string
	Operands() []*Value
	Result() *Value
	// Block returns the basic block this instruction was appended to.
	Block() *BasicBlock
	// IsTerminator reports whether this instruction ends its block.
	IsTerminator() bool

	setBlock(b *BasicBlock)
}

// instrBase factors the Block/setBlock bookkeeping every concrete
// instruction needs; embedding it keeps each opcode type focused on its
// own operands.
type instrBase struct {
	block *BasicBlock
}

func (b *instrBase) Block() *BasicBlock  { return b.block }
func (b *instrBase) setBlock(bb *BasicBlock) { b.block = bb }
func (b *instrBase) IsTerminator() bool  { return false }

// BinOp is a pure arithmetic/bitwise operation producing one result:
// Dest = X Op Y.
type BinOp struct {
	instrBase
	Op   BinOpKind
	Dest *Value
	X, Y *Value
}

func (b *BinOp) String() string        { return fmt.Sprintf("%s = %s %s %s", b.Dest, b.X, b.Op, b.Y) }
func (b *BinOp) Operands() []*Value    { return []*Value{b.X, b.Y} }
func (b *BinOp) Result() *Value        { return b.Dest }

// BinOpKind enumerates arithmetic/bitwise operators.
type BinOpKind int

const (
	OpAdd BinOpKind = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
)

func (op BinOpKind) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpAnd:
		return "&"
	case OpOr:
		return "|"
	case OpXor:
		return "^"
	case OpShl:
		return "<<"
	case OpShr:
		return ">>"
	default:
		return "?"
	}
}

// Cmp is an integer or floating-point comparison, kept distinct from
// BinOp so the adapter can surface Pred (the source of a Merge/Carry
// decider's symbol) without the builder guessing at operator identity.
type Cmp struct {
	instrBase
	Pred  Predicate
	Float bool // true for floating-point comparisons
	Dest  *Value
	X, Y  *Value
}

func (c *Cmp) String() string     { return fmt.Sprintf("%s = %s %s %s", c.Dest, c.X, c.Pred, c.Y) }
func (c *Cmp) Operands() []*Value { return []*Value{c.X, c.Y} }
func (c *Cmp) Result() *Value     { return c.Dest }

// Predicate enumerates comparison predicates.
type Predicate int

const (
	PredEq Predicate = iota
	PredNe
	PredLt
	PredLe
	PredGt
	PredGe
)

// String returns the operator symbol, falling back to a printable name
// for anything not in the closed set above; unrecognized predicates
// still need a label.
func (p Predicate) String() string {
	switch p {
	case PredEq:
		return "=="
	case PredNe:
		return "!="
	case PredLt:
		return "<"
	case PredLe:
		return "<="
	case PredGt:
		return ">"
	case PredGe:
		return ">="
	default:
		return "cmp"
	}
}

// Load reads *Addr. Before the memory-ordering transform, Token is nil;
// after it, Token is the memory-token value the load consumed.
type Load struct {
	instrBase
	Dest  *Value
	Addr  *Value
	Token *Value
}

func (l *Load) String() string {
	if l.Token != nil {
		return fmt.Sprintf("%s = load %s, tok %s", l.Dest, l.Addr, l.Token)
	}
	return fmt.Sprintf("%s = load %s", l.Dest, l.Addr)
}
func (l *Load) Operands() []*Value {
	if l.Token != nil {
		return []*Value{l.Addr, l.Token}
	}
	return []*Value{l.Addr}
}
func (l *Load) Result() *Value { return l.Dest }

// Store writes Val to *Addr. It has no Result before the transform.
// After the transform a Store becomes a Call to the store intrinsic,
// whose Result is the produced token; this type models the
// pre-transform form only.
type Store struct {
	instrBase
	Addr *Value
	Val  *Value
}

func (s *Store) String() string     { return fmt.Sprintf("store %s, %s", s.Val, s.Addr) }
func (s *Store) Operands() []*Value { return []*Value{s.Addr, s.Val} }
func (s *Store) Result() *Value     { return nil }

// AddrCompute is address arithmetic: a base pointer offset by one or more
// index operands (array indexing, field/member access). The builder
// never materializes a node for it; the pass-through resolver sees
// through it to Base and every entry of Indices.
type AddrCompute struct {
	instrBase
	Dest    *Value
	Base    *Value
	Indices []*Value
}

func (g *AddrCompute) String() string     { return fmt.Sprintf("%s = addr %s%v", g.Dest, g.Base, g.Indices) }
func (g *AddrCompute) Operands() []*Value { return append([]*Value{g.Base}, g.Indices...) }
func (g *AddrCompute) Result() *Value     { return g.Dest }

// CastKind enumerates the conversion families the adapter must treat as
// plumbing rather than operators.
type CastKind int

const (
	CastBitcast CastKind = iota
	CastTrunc
	CastZeroExt
	CastSignExt
	CastFPConv
)

// Convert is any bit/trunc/ext/fp conversion of a single operand.
type Convert struct {
	instrBase
	Kind CastKind
	Dest *Value
	X    *Value
}

func (c *Convert) String() string     { return fmt.Sprintf("%s = convert %s", c.Dest, c.X) }
func (c *Convert) Operands() []*Value { return []*Value{c.X} }
func (c *Convert) Result() *Value     { return c.Dest }

// PhiIncoming pairs an incoming value with the predecessor block it
// arrives from.
type PhiIncoming struct {
	Value *Value
	Pred  *BasicBlock
}

// Phi is a block-head join. Phi nodes only ever appear at a block's head
// (an IR contract the adapter assumes, not one it enforces).
type Phi struct {
	instrBase
	Dest     *Value
	Incoming []PhiIncoming
}

func (p *Phi) String() string {
	return fmt.Sprintf("%s = phi %v", p.Dest, p.Incoming)
}
func (p *Phi) Operands() []*Value {
	ops := make([]*Value, len(p.Incoming))
	for i, inc := range p.Incoming {
		ops[i] = inc.Value
	}
	return ops
}
func (p *Phi) Result() *Value { return p.Dest }

// SetIncoming replaces or appends the incoming pair for pred, used by
// memtoken when it retroactively fills token phis.
func (p *Phi) SetIncoming(pred *BasicBlock, v *Value) {
	for i := range p.Incoming {
		if p.Incoming[i].Pred == pred {
			p.Incoming[i].Value = v
			return
		}
	}
	p.Incoming = append(p.Incoming, PhiIncoming{Value: v, Pred: pred})
}

// Select is a ternary: Dest = Cond ? TrueVal : FalseVal. It never becomes
// a dataflow node itself; it expands into a TrueSteer/FalseSteer pair
// wired directly to its users.
type Select struct {
	instrBase
	Dest               *Value
	Cond               *Value
	TrueVal, FalseVal  *Value
}

func (s *Select) String() string {
	return fmt.Sprintf("%s = select %s, %s, %s", s.Dest, s.Cond, s.TrueVal, s.FalseVal)
}
func (s *Select) Operands() []*Value { return []*Value{s.Cond, s.TrueVal, s.FalseVal} }
func (s *Select) Result() *Value     { return s.Dest }

// Call is a function call. After the memory-ordering transform, calls to
// the load/store/entry-token intrinsic family are Calls whose Callee
// matches the deterministic naming scheme from memtoken; the
// builder's classification phase recognizes these by name and re-tags
// the node.
type Call struct {
	instrBase
	Dest   *Value // nil for void calls
	Callee string
	Args   []*Value
}

func (c *Call) String() string {
	if c.Dest != nil {
		return fmt.Sprintf("%s = call %s(%v)", c.Dest, c.Callee, c.Args)
	}
	return fmt.Sprintf("call %s(%v)", c.Callee, c.Args)
}
func (c *Call) Operands() []*Value { return append([]*Value{}, c.Args...) }
func (c *Call) Result() *Value     { return c.Dest }

// Jump is an unconditional branch terminator.
type Jump struct {
	instrBase
	Target *BasicBlock
}

func (j *Jump) String() string      { return fmt.Sprintf("jump %s", j.Target.Name) }
func (j *Jump) Operands() []*Value  { return nil }
func (j *Jump) Result() *Value      { return nil }
func (j *Jump) IsTerminator() bool  { return true }

// If is a conditional branch terminator.
type If struct {
	instrBase
	Cond                    *Value
	TrueBlock, FalseBlock   *BasicBlock
}

func (b *If) String() string {
	return fmt.Sprintf("if %s then %s else %s", b.Cond, b.TrueBlock.Name, b.FalseBlock.Name)
}
func (b *If) Operands() []*Value { return []*Value{b.Cond} }
func (b *If) Result() *Value     { return nil }
func (b *If) IsTerminator() bool { return true }

// Return is the function-return terminator.
type Return struct {
	instrBase
	Value *Value // nil for a void return
}

func (r *Return) String() string {
	if r.Value != nil {
		return fmt.Sprintf("return %s", r.Value)
	}
	return "return"
}
func (r *Return) Operands() []*Value {
	if r.Value != nil {
		return []*Value{r.Value}
	}
	return nil
}
func (r *Return) Result() *Value     { return nil }
func (r *Return) IsTerminator() bool { return true }
