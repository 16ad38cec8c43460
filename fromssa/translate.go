package fromssa

import (
	"fmt"
	"go/token"

	"golang.org/x/tools/go/ssa"

	"github.com/riptide-dfg/dfgc/ir"
)

// translator holds the per-function state needed to keep ssa.Value and
// ssa.BasicBlock identity consistent across the whole translation.
type translator struct {
	values map[ssa.Value]*ir.Value
	blocks map[*ssa.BasicBlock]*ir.BasicBlock
	consts map[ssa.Value]*ir.Value
	phis   []phiFixup
}

type phiFixup struct {
	src  *ssa.Phi
	dest *ir.Value
}

// Translate copies fn into a fresh ir.Function. fn must already be built
// (ssa.Function.Blocks populated) and have no outstanding generics
// instantiation; fn itself is never modified.
func Translate(fn *ssa.Function) (*ir.Function, error) {
	if fn.Blocks == nil {
		out := ir.NewFunction(fn.Name(), nil, "")
		out.Declaration = true
		return out, nil
	}

	t := &translator{
		values: make(map[ssa.Value]*ir.Value),
		blocks: make(map[*ssa.BasicBlock]*ir.BasicBlock),
	}

	params := make([]*ir.Value, len(fn.Params))
	for i, p := range fn.Params {
		v := ir.NewParam(p.Name(), p.Type().String())
		params[i] = v
		t.values[p] = v
	}

	retType := ""
	if fn.Signature.Results().Len() == 1 {
		retType = fn.Signature.Results().At(0).Type().String()
	}
	out := ir.NewFunction(fn.Name(), params, retType)

	for _, b := range fn.Blocks {
		t.blocks[b] = out.AddBlock(b.String())
	}

	for _, b := range fn.Blocks {
		dst := t.blocks[b]
		for _, in := range b.Instrs {
			if err := t.translateInstr(dst, in); err != nil {
				return nil, fmt.Errorf("fromssa: block %s: %w", b, err)
			}
		}
	}

	// CFG edges are already linked: ir.SetIf and ir.SetJump call Link.

	for _, fix := range t.phis {
		for i, edge := range fix.src.Edges {
			pred := fix.src.Block().Preds[i]
			v, err := t.operand(edge)
			if err != nil {
				return nil, err
			}
			fix.dest.Def().(*ir.Phi).SetIncoming(t.blocks[pred], v)
		}
	}

	return out, nil
}

func (t *translator) translateInstr(dst *ir.BasicBlock, in ssa.Instruction) error {
	switch instr := in.(type) {
	case *ssa.BinOp:
		return t.translateBinOp(dst, instr)
	case *ssa.Phi:
		dest := ir.NewTemp(instr.Type().String())
		p := &ir.Phi{Dest: dest}
		dest.SetDef(p)
		dst.AddInstr(p)
		t.values[instr] = dest
		t.phis = append(t.phis, phiFixup{src: instr, dest: dest})
		return nil
	case *ssa.FieldAddr:
		base, err := t.operand(instr.X)
		if err != nil {
			return err
		}
		idx := ir.NewConst("int", instr.Field)
		v := ir.EmitAddr(dst, base, []*ir.Value{idx}, instr.Type().String())
		t.values[instr] = v
		return nil
	case *ssa.IndexAddr:
		base, err := t.operand(instr.X)
		if err != nil {
			return err
		}
		index, err := t.operand(instr.Index)
		if err != nil {
			return err
		}
		v := ir.EmitAddr(dst, base, []*ir.Value{index}, instr.Type().String())
		t.values[instr] = v
		return nil
	case *ssa.UnOp:
		if instr.Op != token.MUL {
			return fmt.Errorf("%w: unary op %s", ErrUnsupportedInstruction, instr.Op)
		}
		addr, err := t.operand(instr.X)
		if err != nil {
			return err
		}
		v := ir.EmitLoad(dst, addr, instr.Type().String())
		t.values[instr] = v
		return nil
	case *ssa.Store:
		addr, err := t.operand(instr.Addr)
		if err != nil {
			return err
		}
		val, err := t.operand(instr.Val)
		if err != nil {
			return err
		}
		ir.EmitStore(dst, addr, val)
		return nil
	case *ssa.Convert:
		x, err := t.operand(instr.X)
		if err != nil {
			return err
		}
		v := ir.EmitConvert(dst, ir.CastBitcast, x, instr.Type().String())
		t.values[instr] = v
		return nil
	case *ssa.ChangeType:
		x, err := t.operand(instr.X)
		if err != nil {
			return err
		}
		v := ir.EmitConvert(dst, ir.CastBitcast, x, instr.Type().String())
		t.values[instr] = v
		return nil
	case *ssa.Call:
		return t.translateCall(dst, instr)
	case *ssa.If:
		cond, err := t.operand(instr.Cond)
		if err != nil {
			return err
		}
		succs := instr.Block().Succs
		ir.SetIf(dst, cond, t.blocks[succs[0]], t.blocks[succs[1]])
		return nil
	case *ssa.Jump:
		succs := instr.Block().Succs
		ir.SetJump(dst, t.blocks[succs[0]])
		return nil
	case *ssa.Return:
		switch len(instr.Results) {
		case 0:
			ir.SetReturn(dst, nil)
		case 1:
			v, err := t.operand(instr.Results[0])
			if err != nil {
				return err
			}
			ir.SetReturn(dst, v)
		default:
			return fmt.Errorf("%w: multi-value return", ErrUnsupportedInstruction)
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedInstruction, in)
	}
}

func (t *translator) translateBinOp(dst *ir.BasicBlock, instr *ssa.BinOp) error {
	x, err := t.operand(instr.X)
	if err != nil {
		return err
	}
	y, err := t.operand(instr.Y)
	if err != nil {
		return err
	}
	if pred, isCmp := comparisonPredicate(instr.Op); isCmp {
		v := ir.EmitCmp(dst, pred, false, x, y)
		t.values[instr] = v
		return nil
	}
	op, ok := arithmeticOp(instr.Op)
	if !ok {
		return fmt.Errorf("%w: binop %s", ErrUnsupportedInstruction, instr.Op)
	}
	v := ir.EmitBinOp(dst, op, x, y, instr.Type().String())
	t.values[instr] = v
	return nil
}

func (t *translator) translateCall(dst *ir.BasicBlock, instr *ssa.Call) error {
	args := make([]*ir.Value, len(instr.Call.Args))
	for i, a := range instr.Call.Args {
		v, err := t.operand(a)
		if err != nil {
			return err
		}
		args[i] = v
	}
	callee := "indirect"
	if sc := instr.Call.StaticCallee(); sc != nil {
		callee = sc.Name()
	}
	typ := ""
	if instr.Type() != nil {
		typ = instr.Type().String()
	}
	v := ir.EmitCall(dst, callee, args, typ)
	if v != nil {
		t.values[instr] = v
	}
	return nil
}

// operand resolves an ssa.Value to its already-translated ir.Value,
// creating and caching a constant node on first reference — ssa.Const
// values are shared across every use site, and this translator mirrors
// that sharing rather than minting a fresh ir.Value per reference.
func (t *translator) operand(v ssa.Value) (*ir.Value, error) {
	if existing, ok := t.values[v]; ok {
		return existing, nil
	}
	if c, ok := v.(*ssa.Const); ok {
		if t.consts == nil {
			t.consts = make(map[ssa.Value]*ir.Value)
		}
		if existing, ok := t.consts[v]; ok {
			return existing, nil
		}
		out := ir.NewConst(c.Type().String(), c.Value)
		t.consts[v] = out
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func comparisonPredicate(op token.Token) (ir.Predicate, bool) {
	switch op {
	case token.EQL:
		return ir.PredEq, true
	case token.NEQ:
		return ir.PredNe, true
	case token.LSS:
		return ir.PredLt, true
	case token.LEQ:
		return ir.PredLe, true
	case token.GTR:
		return ir.PredGt, true
	case token.GEQ:
		return ir.PredGe, true
	default:
		return 0, false
	}
}

func arithmeticOp(op token.Token) (ir.BinOpKind, bool) {
	switch op {
	case token.ADD:
		return ir.OpAdd, true
	case token.SUB:
		return ir.OpSub, true
	case token.MUL:
		return ir.OpMul, true
	case token.QUO:
		return ir.OpDiv, true
	case token.REM:
		return ir.OpMod, true
	case token.AND:
		return ir.OpAnd, true
	case token.OR:
		return ir.OpOr, true
	case token.XOR:
		return ir.OpXor, true
	case token.SHL:
		return ir.OpShl, true
	case token.SHR:
		return ir.OpShr, true
	default:
		return 0, false
	}
}
