package dfgbuild

import "github.com/riptide-dfg/dfgc/ir"

// Phase name tokens for diagnostics that need to say which phase produced
// a given piece of state. No code in this module refers to them at
// present.
const (
	PhaseClassify  = "A"
	PhaseBranches  = "B"
	PhaseSelects   = "C"
	PhaseData      = "D"
	PhasePhi       = "E"
	PhaseFanout    = "F"
)

// Sentinel keys for synthesized, non-value nodes in the graph's value
// index (dfgraph.Graph.AddSentinelNode / FindSentinel).
const (
	entryStreamKey = "entry-stream"
)

// binOpLabel returns the opcode name used as a BasicBinaryOp's label when
// no shorter symbol applies.
func binOpLabel(op ir.BinOpKind) string {
	switch op {
	case ir.OpAdd:
		return "add"
	case ir.OpSub:
		return "sub"
	case ir.OpMul:
		return "mul"
	case ir.OpDiv:
		return "div"
	case ir.OpMod:
		return "mod"
	case ir.OpAnd:
		return "and"
	case ir.OpOr:
		return "or"
	case ir.OpXor:
		return "xor"
	case ir.OpShl:
		return "shl"
	case ir.OpShr:
		return "shr"
	default:
		return "binop"
	}
}
