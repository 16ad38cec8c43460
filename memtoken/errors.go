package memtoken

import "errors"

// ErrMissingPredToken indicates a reachable block's predecessor had no
// recorded out-token when its phi was filled in — a logic error in the
// transform itself, never a condition well-formed input can trigger.
var ErrMissingPredToken = errors.New("memtoken: predecessor has no recorded out-token")

// ErrUnreachableMissingPhi indicates a reachable non-entry block that was
// given a token phi has no predecessors to fill that phi from.
var ErrUnreachableMissingPhi = errors.New("memtoken: reachable block is missing its token phi")
