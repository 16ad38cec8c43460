package ir

import "errors"

// ErrMissingTerminator indicates a basic block has no terminating
// instruction: malformed IR.
var ErrMissingTerminator = errors.New("ir: block has no terminator")

// ErrPhiArityMismatch indicates a phi's incoming-value count does not
// match the number of predecessors of its block.
var ErrPhiArityMismatch = errors.New("ir: phi arity does not match predecessor count")

// ErrDeclaration indicates an operation that requires a function body was
// given a declaration instead; callers are expected to skip declarations
// and return the IR unchanged rather than treat this as fatal.
var ErrDeclaration = errors.New("ir: function is a declaration")

// Verify checks the structural contract the builder and memtoken rely on:
// every block (other than possibly unreachable ones, which callers filter
// out with loopinfo/reach first) has exactly one terminator as its last
// instruction, and every Phi's incoming set matches its block's
// predecessor count. It does not check reachability or dominance.
func Verify(f *Function) error {
	for _, b := range f.Blocks {
		if b.Terminator() == nil {
			return ErrMissingTerminator
		}
		for _, p := range b.Phis() {
			if len(p.Incoming) != len(b.Preds) {
				return ErrPhiArityMismatch
			}
		}
	}
	return nil
}
