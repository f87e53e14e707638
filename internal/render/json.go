package render

import (
	"encoding/json"

	"github.com/vk/txtopo/internal/graph"
)

// jsonGraph is the canonical machine-readable form of a topology graph.
// It must round-trip every node and edge property without loss.
type jsonGraph struct {
	Nodes []jsonNode `json:"nodes"`
	Edges []jsonEdge `json:"edges"`
}

type jsonNode struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Kind       graph.NodeKind `json:"kind"`
	Properties map[string]any `json:"properties,omitempty"`
	Position   *jsonPosition  `json:"position,omitempty"`
}

type jsonPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonEdge struct {
	From       string         `json:"from"`
	To         string         `json:"to"`
	Kind       graph.EdgeKind `json:"kind"`
	Properties map[string]any `json:"properties,omitempty"`
}

func renderJSON(g *graph.Graph) (string, error) {
	// Slices start non-nil so an empty graph serializes as
	// {"nodes": [], "edges": []} rather than nulls.
	doc := jsonGraph{Nodes: []jsonNode{}, Edges: []jsonEdge{}}

	for _, n := range g.Nodes() {
		jn := jsonNode{
			ID:         n.ID,
			Label:      n.Label,
			Kind:       n.Kind,
			Properties: n.Properties,
		}
		if n.Position != nil {
			jn.Position = &jsonPosition{X: n.Position.X, Y: n.Position.Y}
		}
		doc.Nodes = append(doc.Nodes, jn)
	}

	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, jsonEdge{
			From:       e.From,
			To:         e.To,
			Kind:       e.Kind,
			Properties: e.Properties,
		})
	}

	buf, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
