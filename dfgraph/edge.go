package dfgraph

// DataflowEdge is a directed, value-carrying connection from Src to Dst.
// Duplicate edges (same Src, Dst pair) are forbidden by construction —
// AddEdge is idempotent rather than erroring, since a repeated wiring
// attempt from the builder is expected, not a bug.
type DataflowEdge struct {
	Src *DataflowNode
	Dst *DataflowNode
}
