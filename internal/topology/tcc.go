package topology

import (
	"sort"

	"github.com/vk/txtopo/internal/graph"
	"github.com/vk/txtopo/internal/model"
	"github.com/vk/txtopo/internal/render"
)

// TccParticipantInfo is the analyzed form of one declared participant with
// all phase defaults materialized.
type TccParticipantInfo struct {
	ParticipantID string
	Order         int
	TryMethod     string
	ConfirmMethod string
	CancelMethod  string

	TryTimeoutMs     uint
	ConfirmTimeoutMs uint
	CancelTimeoutMs  uint
	TryRetry         uint
	ConfirmRetry     uint
	CancelRetry      uint
}

// TccTopology is the analyzed structure of a TCC transaction.
// ExecutionOrder holds participant ids sorted ascending by declared order;
// ties keep declaration order so rendering stays deterministic.
type TccTopology struct {
	TccName        string
	Participants   map[string]*TccParticipantInfo
	ExecutionOrder []string
}

// AnalyzeTcc builds a TccTopology from declared metadata, failing with
// NotATccError when the declaration holds no participants. Unspecified
// phase timeouts and retries receive the fixed defaults from the model
// package.
func AnalyzeTcc(decl *model.Tcc) (*TccTopology, error) {
	if decl == nil {
		return nil, &NotATccError{}
	}
	if len(decl.Participants) == 0 {
		return nil, &NotATccError{Name: decl.Name}
	}

	topo := &TccTopology{
		TccName:      decl.Name,
		Participants: make(map[string]*TccParticipantInfo, len(decl.Participants)),
	}

	for _, p := range decl.Participants {
		if _, dup := topo.Participants[p.ID]; dup {
			continue
		}
		topo.Participants[p.ID] = &TccParticipantInfo{
			ParticipantID: p.ID,
			Order:         p.Order,
			TryMethod:     p.TryMethod,
			ConfirmMethod: p.ConfirmMethod,
			CancelMethod:  p.CancelMethod,

			TryTimeoutMs:     orDefault(p.TryTimeoutMs, model.DefaultTryTimeoutMs),
			ConfirmTimeoutMs: orDefault(p.ConfirmTimeoutMs, model.DefaultConfirmTimeoutMs),
			CancelTimeoutMs:  orDefault(p.CancelTimeoutMs, model.DefaultCancelTimeoutMs),
			TryRetry:         orDefault(p.TryRetry, model.DefaultTryRetry),
			ConfirmRetry:     orDefault(p.ConfirmRetry, model.DefaultConfirmRetry),
			CancelRetry:      orDefault(p.CancelRetry, model.DefaultCancelRetry),
		}
		topo.ExecutionOrder = append(topo.ExecutionOrder, p.ID)
	}

	// Stable sort: equal orders keep declaration order.
	sort.SliceStable(topo.ExecutionOrder, func(i, j int) bool {
		return topo.Participants[topo.ExecutionOrder[i]].Order < topo.Participants[topo.ExecutionOrder[j]].Order
	})

	return topo, nil
}

func orDefault(v *uint, def uint) uint {
	if v != nil {
		return *v
	}
	return def
}

// BuildTccGraph projects a TCC topology into a fresh renderable graph. Each
// participant contributes three phase nodes and one summary node. The happy
// path is a flow edge try→confirm, the failure path a compensation edge
// try→cancel, and consecutive participants' try phases are chained with
// dependency edges to model the declared sequential Try ordering. The
// reverse-order cancel flow is a rendering-time concern, not a graph edge.
func BuildTccGraph(topo *TccTopology) *graph.Graph {
	g := graph.New()

	for _, id := range topo.ExecutionOrder {
		p := topo.Participants[id]

		g.AddNode(&graph.Node{
			ID: id + "_try", Label: p.TryMethod, Kind: graph.KindPhase,
			Properties: map[string]any{"phase": "try", "timeout_ms": p.TryTimeoutMs, "retry": p.TryRetry, "order": p.Order},
		})
		g.AddNode(&graph.Node{
			ID: id + "_confirm", Label: p.ConfirmMethod, Kind: graph.KindPhase,
			Properties: map[string]any{"phase": "confirm", "timeout_ms": p.ConfirmTimeoutMs, "retry": p.ConfirmRetry, "order": p.Order},
		})
		g.AddNode(&graph.Node{
			ID: id + "_cancel", Label: p.CancelMethod, Kind: graph.KindPhase,
			Properties: map[string]any{"phase": "cancel", "timeout_ms": p.CancelTimeoutMs, "retry": p.CancelRetry, "order": p.Order},
		})
		g.AddNode(&graph.Node{
			ID: id, Label: id, Kind: graph.KindParticipant,
			Properties: map[string]any{
				"order":   p.Order,
				"try":     p.TryMethod,
				"confirm": p.ConfirmMethod,
				"cancel":  p.CancelMethod,
			},
		})
	}

	for _, id := range topo.ExecutionOrder {
		_ = g.AddEdge(&graph.Edge{From: id + "_try", To: id + "_confirm", Kind: graph.EdgeFlow})
		_ = g.AddEdge(&graph.Edge{From: id + "_try", To: id + "_cancel", Kind: graph.EdgeCompensation})
	}

	for i := 1; i < len(topo.ExecutionOrder); i++ {
		prev, cur := topo.ExecutionOrder[i-1], topo.ExecutionOrder[i]
		_ = g.AddEdge(&graph.Edge{From: prev + "_try", To: cur + "_try", Kind: graph.EdgeDependency})
	}

	return g
}

// RenderTccTopology serializes the topology's graph projection.
func RenderTccTopology(topo *TccTopology, format render.Format) (string, error) {
	return render.Render(BuildTccGraph(topo), format)
}

// VisualizeTcc analyzes declared TCC metadata and renders it in one call.
func VisualizeTcc(decl *model.Tcc, format render.Format) (string, error) {
	topo, err := AnalyzeTcc(decl)
	if err != nil {
		return "", err
	}
	return RenderTccTopology(topo, format)
}
