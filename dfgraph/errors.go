package dfgraph

import "errors"

// ErrNilNode is returned by RemoveNode when given a nil node. This is a
// guard-rail for development, not a condition a correct builder should
// ever hit; callers log it as a warning and treat it as a no-op rather
// than panicking.
var ErrNilNode = errors.New("dfgraph: nil node")

// ErrNodeNotOwned is returned by RemoveNode when the node does not belong
// to this graph.
var ErrNodeNotOwned = errors.New("dfgraph: node not owned by this graph")
