package render

import (
	"fmt"
	"strings"

	"github.com/vk/txtopo/internal/graph"
)

// asciiArrows maps edge kinds onto flow glyphs. Anything not listed here
// falls back to the compensation-style arrow.
var asciiArrows = map[graph.EdgeKind]string{
	graph.EdgeFlow:       "──→",
	graph.EdgeDependency: "╶╶→",
}

const asciiFallbackArrow = "⤴─→"

// asciiGroups fixes the section order of the node listing.
var asciiGroups = []struct {
	kind  graph.NodeKind
	title string
}{
	{graph.KindStep, "Steps"},
	{graph.KindCompensation, "Compensations"},
	{graph.KindParticipant, "Participants"},
	{graph.KindPhase, "Phases"},
}

func renderASCII(g *graph.Graph) string {
	if g.Empty() {
		return "Empty graph"
	}

	var b strings.Builder
	nodes := g.Nodes()

	for _, grp := range asciiGroups {
		var members []*graph.Node
		for _, n := range nodes {
			if n.Kind == grp.kind {
				members = append(members, n)
			}
		}
		if len(members) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", grp.title)
		for _, n := range members {
			writeASCIINode(&b, n)
		}
		b.WriteString("\n")
	}

	b.WriteString("Execution Flow:\n")
	for _, e := range g.Edges() {
		arrow, ok := asciiArrows[e.Kind]
		if !ok {
			arrow = asciiFallbackArrow
		}
		fmt.Fprintf(&b, "  %s %s %s (%s)\n", e.From, arrow, e.To, e.Kind)
	}

	return b.String()
}

func writeASCIINode(b *strings.Builder, n *graph.Node) {
	switch n.Kind {
	case graph.KindStep:
		fmt.Fprintf(b, "  • %s [retry=%s, timeout=%sms]\n", n.ID, propString(n, "retry"), propString(n, "timeout_ms"))
		deps := "-"
		if ds, ok := n.Properties["depends_on"].([]string); ok && len(ds) > 0 {
			deps = strings.Join(ds, ", ")
		}
		fmt.Fprintf(b, "      depends on: %s\n", deps)
		if c := propString(n, "compensate"); c != "" {
			fmt.Fprintf(b, "      compensate: %s\n", c)
		}
	case graph.KindCompensation:
		suffix := ""
		if critical, ok := n.Properties["critical"].(bool); ok && critical {
			suffix = ", critical"
		}
		fmt.Fprintf(b, "  • %s (compensates %s%s)\n", n.ID, propString(n, "target"), suffix)
	case graph.KindParticipant:
		fmt.Fprintf(b, "  • %s [order=%s]\n", n.ID, propString(n, "order"))
		fmt.Fprintf(b, "      phases: try=%s confirm=%s cancel=%s\n",
			propString(n, "try"), propString(n, "confirm"), propString(n, "cancel"))
	case graph.KindPhase:
		fmt.Fprintf(b, "  • %s [%s, timeout=%sms, retry=%s]\n",
			n.ID, propString(n, "phase"), propString(n, "timeout_ms"), propString(n, "retry"))
	default:
		fmt.Fprintf(b, "  • %s\n", n.ID)
	}
}

// propString formats a node property for display; absent properties render
// as the empty string.
func propString(n *graph.Node, key string) string {
	v, ok := n.Properties[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
