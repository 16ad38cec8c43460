package fromssa

import "errors"

// ErrUnsupportedInstruction is returned when the ssa function contains an
// instruction kind this translator does not recognize.
var ErrUnsupportedInstruction = errors.New("fromssa: unsupported ssa instruction")

// ErrUnsupportedValue is returned when an operand's ssa.Value kind cannot
// be mapped to an ir.Value (e.g. a *ssa.Function used as a first-class
// value, or any *ssa.Global).
var ErrUnsupportedValue = errors.New("fromssa: unsupported ssa value")
