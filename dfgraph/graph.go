package dfgraph

import "github.com/riptide-dfg/dfgc/ir"

// Graph owns every DataflowNode and DataflowEdge built for one function.
// It is the single source of truth for the graph's invariants:
// edges only ever connect nodes it owns, a node's Inputs/Outputs exactly
// mirror the edge set, and removing a node removes every adjacent edge.
//
// Iteration (Nodes/Edges) preserves insertion order so two builds over
// the same function in the same phase order produce identical output.
type Graph struct {
	nodes []*DataflowNode
	edges []*DataflowEdge

	owned   map[*DataflowNode]bool
	edgeSet map[[2]*DataflowNode]*DataflowEdge

	byValue    map[*ir.Value]*DataflowNode
	bySentinel map[string]*DataflowNode
}

// New creates an empty dataflow graph.
func New() *Graph {
	return &Graph{
		owned:      make(map[*DataflowNode]bool),
		edgeSet:    make(map[[2]*DataflowNode]*DataflowEdge),
		byValue:    make(map[*ir.Value]*DataflowNode),
		bySentinel: make(map[string]*DataflowNode),
	}
}

// AddNode always creates a fresh node of the given kind. If origin is
// non-nil it also binds origin's value-to-node mapping (overwriting any
// previous binding for that value, which callers should not rely on —
// each value is expected to be bound at most once per build).
func (g *Graph) AddNode(kind OperatorKind, origin *ir.Value, label string) *DataflowNode {
	n := &DataflowNode{Kind: kind, Origin: origin, Label: label}
	g.nodes = append(g.nodes, n)
	g.owned[n] = true
	if origin != nil {
		g.byValue[origin] = n
	}
	return n
}

// AddSentinelNode is AddNode for a synthesized node keyed by a sentinel
// string instead of an IR value (the per-function entry Stream token is
// the only one the builder currently needs).
func (g *Graph) AddSentinelNode(kind OperatorKind, key, label string) *DataflowNode {
	if n, ok := g.bySentinel[key]; ok {
		return n
	}
	n := g.AddNode(kind, nil, label)
	g.bySentinel[key] = n
	return n
}

// GetOrAdd returns v's existing node if one is bound, or creates one.
// Newly created nodes are tagged FunctionInput for parameters and
// Constant for constants; anything else starts Unknown and is expected to
// be retagged by the phase that classifies it.
//
// GetOrAdd returns (nil, false) — no node is created or looked up — when
// v is produced by a Select, AddrCompute, or Convert instruction: these
// are never materialized as nodes. Branch instructions and
// function symbols never reach this function at all in this IR, since
// neither produces an ir.Value.
func (g *Graph) GetOrAdd(v *ir.Value) (*DataflowNode, bool) {
	if v == nil {
		return nil, false
	}
	switch v.Def().(type) {
	case *ir.Select, *ir.AddrCompute, *ir.Convert:
		return nil, false
	}
	if n, ok := g.byValue[v]; ok {
		return n, true
	}
	kind := Unknown
	label := ""
	switch {
	case v.IsParameter():
		kind = FunctionInput
		label = v.Name
	case v.IsConstant():
		kind = Constant
	}
	return g.AddNode(kind, v, label), true
}

// FindNode is a pure lookup: it never creates a node.
func (g *Graph) FindNode(v *ir.Value) (*DataflowNode, bool) {
	if v == nil {
		return nil, false
	}
	n, ok := g.byValue[v]
	return n, ok
}

// FindSentinel looks up a synthesized node by its sentinel key.
func (g *Graph) FindSentinel(key string) (*DataflowNode, bool) {
	n, ok := g.bySentinel[key]
	return n, ok
}

// AddEdge adds a directed edge src->dst. It is idempotent: a second call
// with the same endpoints is a silent no-op, not an error. A nil
// endpoint is also a silent no-op — a guard rail; package resolver checks
// for nil before calling, and the builder's direct calls pass nodes it
// has just created or looked up.
func (g *Graph) AddEdge(src, dst *DataflowNode) *DataflowEdge {
	if src == nil || dst == nil {
		return nil
	}
	key := [2]*DataflowNode{src, dst}
	if e, ok := g.edgeSet[key]; ok {
		return e
	}
	e := &DataflowEdge{Src: src, Dst: dst}
	g.edges = append(g.edges, e)
	g.edgeSet[key] = e
	src.Outputs = append(src.Outputs, e)
	dst.Inputs = append(dst.Inputs, e)
	return e
}

// RemoveNode unlinks every edge adjacent to n from both endpoints' lists,
// drops them from the edge set, removes n itself, and erases any
// value-map entry pointing to it.
func (g *Graph) RemoveNode(n *DataflowNode) error {
	if n == nil {
		return ErrNilNode
	}
	if !g.owned[n] {
		return ErrNodeNotOwned
	}

	adjacent := make(map[*DataflowEdge]bool, len(n.Inputs)+len(n.Outputs))
	for _, e := range n.Inputs {
		adjacent[e] = true
	}
	for _, e := range n.Outputs {
		adjacent[e] = true
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if adjacent[e] {
			delete(g.edgeSet, [2]*DataflowNode{e.Src, e.Dst})
			e.Src.Outputs = removeEdge(e.Src.Outputs, e)
			e.Dst.Inputs = removeEdge(e.Dst.Inputs, e)
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	g.nodes = removeNode(g.nodes, n)
	delete(g.owned, n)
	if n.Origin != nil {
		if cur, ok := g.byValue[n.Origin]; ok && cur == n {
			delete(g.byValue, n.Origin)
		}
	}
	for k, v := range g.bySentinel {
		if v == n {
			delete(g.bySentinel, k)
		}
	}
	return nil
}

func removeEdge(edges []*DataflowEdge, target *DataflowEdge) []*DataflowEdge {
	out := edges[:0]
	for _, e := range edges {
		if e != target {
			out = append(out, e)
		}
	}
	return out
}

func removeNode(nodes []*DataflowNode, target *DataflowNode) []*DataflowNode {
	out := nodes[:0]
	for _, n := range nodes {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []*DataflowNode { return g.nodes }

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []*DataflowEdge { return g.edges }

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of live edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
