package dfgraph

import "github.com/riptide-dfg/dfgc/ir"

// DataflowNode is one operator in the graph. Identity is the node's
// address, never its contents — nodes are never cloned.
type DataflowNode struct {
	Kind   OperatorKind
	Origin *ir.Value // weak back-reference; nil for synthesized nodes
	Label  string
	Symbol string // operator symbol, e.g. "+", "<="; empty if not applicable

	Inputs  []*DataflowEdge
	Outputs []*DataflowEdge
}

// DisplayLabel returns Label if set, else Symbol, else the kind's default
// label — the same preference order the printer uses for the common case
// of a node with no originating IR value to fall back to.
func (n *DataflowNode) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	if n.Symbol != "" {
		return n.Symbol
	}
	return n.Kind.DefaultLabel()
}

// Retag refines a node's kind, honoring invariant I4: a node may move out
// of Unknown at most once. Retagging a node that is already non-Unknown
// to a different kind is also rejected, since that would mean two build
// phases both think they classified the same value first.
func (n *DataflowNode) Retag(kind OperatorKind) bool {
	if n.Kind != Unknown {
		return n.Kind == kind
	}
	n.Kind = kind
	return true
}
