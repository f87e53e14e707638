package graph

// NodeKind classifies a vertex in a topology graph.
type NodeKind string

const (
	KindStep         NodeKind = "step"
	KindCompensation NodeKind = "compensation"
	KindParticipant  NodeKind = "participant"
	KindPhase        NodeKind = "phase"
)

// EdgeKind classifies a directed edge between two nodes.
type EdgeKind string

const (
	EdgeDependency   EdgeKind = "dependency"
	EdgeCompensation EdgeKind = "compensation"
	EdgeFlow         EdgeKind = "flow"
)

// Position is an optional 2D layout hint. None of the built-in renderers
// compute layouts, but the JSON format carries it through when present.
type Position struct {
	X float64
	Y float64
}

// Node is a single vertex. Nodes are treated as immutable once added to a
// Graph; builders construct fresh nodes rather than mutating placed ones.
type Node struct {
	ID         string
	Label      string
	Kind       NodeKind
	Properties map[string]any
	Position   *Position
}

// Edge is a directed connection From -> To. Multiple edges between the same
// pair of nodes are allowed, e.g. a dependency edge and a compensation edge
// can coexist.
type Edge struct {
	From       string
	To         string
	Kind       EdgeKind
	Properties map[string]any
}
