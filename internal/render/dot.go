package render

import (
	"fmt"
	"strings"

	"github.com/vk/txtopo/internal/graph"
)

var dotFillColors = map[graph.NodeKind]string{
	graph.KindStep:         "lightblue",
	graph.KindCompensation: "lightcoral",
	graph.KindParticipant:  "lightgreen",
	graph.KindPhase:        "lightyellow",
}

const dotDefaultFill = "lightgray"

var dotEdgeStyles = map[graph.EdgeKind]string{
	graph.EdgeDependency:   "solid",
	graph.EdgeCompensation: "dashed",
	graph.EdgeFlow:         "bold",
}

const dotDefaultStyle = "solid"

// renderDOT emits a Graphviz digraph laid out left-to-right. Node ids and
// labels are quoted, so %q handles the escaping the DOT grammar needs.
func renderDOT(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("digraph topology {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=filled];\n")

	for _, n := range g.Nodes() {
		fill, ok := dotFillColors[n.Kind]
		if !ok {
			fill = dotDefaultFill
		}
		fmt.Fprintf(&b, "  %q [label=%q, fillcolor=%s];\n", n.ID, n.Label, fill)
	}

	for _, e := range g.Edges() {
		style, ok := dotEdgeStyles[e.Kind]
		if !ok {
			style = dotDefaultStyle
		}
		fmt.Fprintf(&b, "  %q -> %q [style=%s];\n", e.From, e.To, style)
	}

	b.WriteString("}\n")
	return b.String()
}
