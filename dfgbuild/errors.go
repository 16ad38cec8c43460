// errors.go — sentinel errors for the dfgbuild package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. A malformed-IR sentinel means the pass returns early with
// the graph left as-is — never partially finished and then silently
// accepted.
package dfgbuild

import "errors"

// ErrNilFunction is returned by Build when given a nil function.
var ErrNilFunction = errors.New("dfgbuild: nil function")

// ErrDeclaration is returned by Build when given a function with no body.
var ErrDeclaration = errors.New("dfgbuild: function is a declaration")

// ErrMalformedIR wraps a structural problem (missing terminator, phi
// arity mismatch) surfaced by ir.Verify before any phase runs.
var ErrMalformedIR = errors.New("dfgbuild: malformed input IR")
