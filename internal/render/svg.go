package render

import (
	"fmt"

	"github.com/vk/txtopo/internal/graph"
)

// renderSVG emits a fixed-size placeholder canvas. A full SVG layout engine
// is deliberately out of scope; the DOT output fed through Graphviz is the
// supported path to a rendered image.
func renderSVG(g *graph.Graph) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="640" height="120">
  <rect width="100%%" height="100%%" fill="white" stroke="gray"/>
  <text x="20" y="55" font-family="monospace" font-size="14">topology: %d nodes, %d edges</text>
  <text x="20" y="80" font-family="monospace" font-size="12">render the dot format with Graphviz for a full diagram</text>
</svg>
`, len(g.Nodes()), len(g.Edges()))
}
