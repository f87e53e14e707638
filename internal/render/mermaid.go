package render

import (
	"fmt"
	"strings"

	"github.com/vk/txtopo/internal/graph"
)

// mermaidShapes maps node kinds onto the opening/closing shape delimiters
// of Mermaid flowchart syntax.
var mermaidShapes = map[graph.NodeKind][2]string{
	graph.KindStep:         {"[", "]"},
	graph.KindCompensation: {"((", "))"},
	graph.KindParticipant:  {"(", ")"},
	graph.KindPhase:        {"{", "}"},
}

var mermaidDefaultShape = [2]string{"[", "]"}

var mermaidArrows = map[graph.EdgeKind]string{
	graph.EdgeDependency:   "-->",
	graph.EdgeCompensation: "-.->",
	graph.EdgeFlow:         "===",
}

const mermaidDefaultArrow = "-->"

func renderMermaid(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("graph LR\n")

	for _, n := range g.Nodes() {
		shape, ok := mermaidShapes[n.Kind]
		if !ok {
			shape = mermaidDefaultShape
		}
		// Mermaid labels cannot hold double quotes inside a quoted string.
		label := strings.ReplaceAll(n.Label, `"`, "'")
		fmt.Fprintf(&b, "    %s%s\"%s\"%s\n", n.ID, shape[0], label, shape[1])
	}

	for _, e := range g.Edges() {
		arrow, ok := mermaidArrows[e.Kind]
		if !ok {
			arrow = mermaidDefaultArrow
		}
		fmt.Fprintf(&b, "    %s %s %s\n", e.From, arrow, e.To)
	}

	return b.String()
}
