package ir

import "fmt"

// ValueKind classifies a Value independent of the instruction (if any)
// that produced it.
type ValueKind int

const (
	// ValueTemporary is an ordinary SSA temporary produced by an instruction.
	ValueTemporary ValueKind = iota
	// ValueParameter is a function argument.
	ValueParameter
	// ValueConstant is a compile-time literal.
	ValueConstant
)

// Value is a single SSA value: a parameter, a constant, or the result of
// an instruction. Identity is the pointer; two Values are the same value
// iff they are the same pointer, exactly like the builder's value-to-node
// map in package dfgraph relies on.
type Value struct {
	// Name is the source-level name, if any; empty for pure temporaries.
	Name string
	// Type is the value's type (opaque string: the builder only ever
	// forwards it verbatim into token-family intrinsic names and labels).
	Type string
	// Kind distinguishes parameters and constants from ordinary temporaries.
	Kind ValueKind
	// ConstValue holds the literal when Kind == ValueConstant.
	ConstValue interface{}
	// def is the instruction that produced this value, nil for
	// parameters and constants.
	def Instruction
}

// NewParam creates a function-parameter value of the given name and type.
func NewParam(name, typ string) *Value {
	return &Value{Name: name, Type: typ, Kind: ValueParameter}
}

// NewConst creates a constant value carrying lit as its literal payload.
func NewConst(typ string, lit interface{}) *Value {
	return &Value{Type: typ, Kind: ValueConstant, ConstValue: lit}
}

// IsConstant reports whether v is a compile-time literal.
func (v *Value) IsConstant() bool { return v != nil && v.Kind == ValueConstant }

// IsParameter reports whether v is a function argument.
func (v *Value) IsParameter() bool { return v != nil && v.Kind == ValueParameter }

// Def returns the instruction that produced v, or nil for parameters,
// constants, and nil values.
func (v *Value) Def() Instruction {
	if v == nil {
		return nil
	}
	return v.def
}

// SetDef records the instruction that produces v. Instruction
// constructors call this for their own Dest; the memory-ordering
// transform also calls it when it retargets a Value's producer in place
// (e.g. turning a Load's Dest into the equivalent token-call's Dest
// without disturbing the Value's identity, so every existing user stays
// wired transparently).
func (v *Value) SetDef(in Instruction) { v.def = in }

// String renders a short human-readable form used by the graph printer's
// synthesized labels.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	switch v.Kind {
	case ValueConstant:
		return fmt.Sprintf("const(%v)", v.ConstValue)
	case ValueParameter:
		return fmt.Sprintf("param(%s)", v.Name)
	default:
		if v.Name != "" {
			return v.Name
		}
		return fmt.Sprintf("%p", v)
	}
}
