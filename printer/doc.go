// Package printer renders a dfgraph.Graph as Graphviz DOT: the
// human-readable form used to inspect a build's output before it goes on
// to CGRA mapping. Shape and label are chosen from each node's
// OperatorKind; a node with no outgoing edges is suppressed from the
// output unless it is a FunctionInput, FunctionOutput, or Merge, since an
// unused intermediate value left dangling after a partial build is noise,
// while a declared-but-unread input, an unread output, or a join point
// with no consumer yet is still worth seeing.
package printer
