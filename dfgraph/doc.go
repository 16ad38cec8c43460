// Package dfgraph implements the typed dataflow-operator graph that the
// DFG builder (package dfgbuild) emits: nodes tagged with an
// OperatorKind, directed value-carrying edges between them, and a stable
// mapping from each originating IR value to the node that represents it.
//
// The package owns exactly three concerns, kept deliberately small:
//
//	operator kinds — the closed, tagged-union taxonomy (Unknown,
//	                 FunctionInput/Output, Constant, BasicBinaryOp, Load,
//	                 Store, True/FalseSteer, Merge, Carry, Invariant,
//	                 Order, Stream).
//	node/edge storage — Graph owns every DataflowNode and DataflowEdge;
//	                 nodes hold only weak (non-owning) back-references to
//	                 ir.Value; removing a node unlinks its edges.
//	value index — get_or_add/find_node let callers ask "does this IR
//	                 value already have a node" without duplicating it.
//
// Concurrency: a Graph is built by a single goroutine during one function's
// lowering and is not safe for concurrent mutation; locking is unnecessary
// and therefore absent: the dataflow graph never needs thread-safety,
// since the builder that constructs it is single-threaded.
//
// Iteration order is insertion order throughout, so two builds over the
// same function in the same build order produce byte-identical DOT output.
package dfgraph
