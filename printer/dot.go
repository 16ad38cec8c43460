package printer

import (
	"fmt"
	"io"
	"sort"

	"github.com/riptide-dfg/dfgc/dfgraph"
)

// shape returns the Graphviz node shape conventionally used for each
// operator kind: steers and merges read as small control diamonds,
// memory operations as cylinders, everything else as a plain box.
func shape(k dfgraph.OperatorKind) string {
	switch k {
	case dfgraph.TrueSteer, dfgraph.FalseSteer, dfgraph.Merge, dfgraph.Carry, dfgraph.Invariant, dfgraph.Order:
		return "diamond"
	case dfgraph.Load, dfgraph.Store:
		return "cylinder"
	case dfgraph.Stream:
		return "invtriangle"
	case dfgraph.FunctionInput, dfgraph.FunctionOutput:
		return "ellipse"
	case dfgraph.Constant:
		return "plaintext"
	default:
		return "box"
	}
}

// Write renders g as a DOT digraph to w. Output is deterministic: nodes
// and edges are visited in g's own insertion order, and node IDs are
// assigned by that same order, so two builds of the same function in the
// same phase sequence print byte-identical graphs.
func Write(w io.Writer, g *dfgraph.Graph, name string) error {
	id := make(map[*dfgraph.DataflowNode]string, g.NodeCount())
	kept := make([]*dfgraph.DataflowNode, 0, g.NodeCount())
	for i, n := range g.Nodes() {
		if !keep(n) {
			continue
		}
		id[n] = fmt.Sprintf("n%d", i)
		kept = append(kept, n)
	}

	if _, err := fmt.Fprintf(w, "digraph %q {\n", name); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\trankdir=TB;\n"); err != nil {
		return err
	}

	for _, n := range kept {
		if _, err := fmt.Fprintf(w, "\t%s [label=%q, shape=%q];\n", id[n], n.DisplayLabel(), shape(n.Kind)); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		srcID, okSrc := id[e.Src]
		dstID, okDst := id[e.Dst]
		if !okSrc || !okDst {
			continue
		}
		if _, err := fmt.Fprintf(w, "\t%s -> %s;\n", srcID, dstID); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}

// keep reports whether n should appear in the rendered graph: any node
// with at least one outgoing edge, plus FunctionInput, FunctionOutput,
// and Merge nodes regardless of fan-out.
func keep(n *dfgraph.DataflowNode) bool {
	if len(n.Outputs) > 0 {
		return true
	}
	switch n.Kind {
	case dfgraph.FunctionInput, dfgraph.FunctionOutput, dfgraph.Merge:
		return true
	default:
		return false
	}
}

// Summary returns a one-line-per-kind count of g's operators, sorted by
// kind name, for the driver's verbose mode — a quick sanity check on the
// operator mix without dumping the full DOT body.
func Summary(g *dfgraph.Graph) []string {
	counts := map[string]int{}
	for _, n := range g.Nodes() {
		counts[n.Kind.String()]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	lines := make([]string, len(kinds))
	for i, k := range kinds {
		lines[i] = fmt.Sprintf("%s: %d", k, counts[k])
	}
	return lines
}
