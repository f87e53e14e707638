// Package graph provides the abstract topology graph model: typed nodes,
// typed directed edges, and a container that preserves insertion order so
// that renderers produce deterministic output.
//
// A Graph is owned exclusively by the builder that populates it and is
// discarded after a single visualize/validate/render call. It is not safe
// for concurrent use; concurrent callers must each build their own instance.
package graph

import "fmt"

// Graph is an ordered collection of nodes and directed edges.
type Graph struct {
	nodes []*Node
	index map[string]*Node
	edges []*Edge
}

// New returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{index: make(map[string]*Node)}
}

// AddNode registers a node. If a node with the same ID is already present
// the call does nothing; the first insertion stays authoritative.
func (g *Graph) AddNode(n *Node) {
	if _, ok := g.index[n.ID]; ok {
		return
	}
	g.index[n.ID] = n
	g.nodes = append(g.nodes, n)
}

// AddEdge appends a directed edge from e.From to e.To. Both endpoints must
// already exist in the graph, and self-referential edges are rejected.
// Builders rely on this to drop edges toward dangling references.
func (g *Graph) AddEdge(e *Edge) error {
	if e.From == e.To {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", e.From, e.To)
	}
	if _, ok := g.index[e.From]; !ok {
		return fmt.Errorf("source node not found: %s", e.From)
	}
	if _, ok := g.index[e.To]; !ok {
		return fmt.Errorf("destination node not found: %s", e.To)
	}
	g.edges = append(g.edges, e)
	return nil
}

// Node returns the node with the given ID, if present.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.index[id]
	return n, ok
}

// Nodes returns all nodes in insertion order. The returned slice is a copy;
// the nodes themselves are shared and must be treated as read-only.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Empty reports whether the graph holds no nodes and no edges.
func (g *Graph) Empty() bool {
	return len(g.nodes) == 0 && len(g.edges) == 0
}

// Clear removes every node and edge, returning the graph to its initial
// state. This is the only mutation allowed after nodes are added.
func (g *Graph) Clear() {
	g.nodes = nil
	g.edges = nil
	g.index = make(map[string]*Node)
}
