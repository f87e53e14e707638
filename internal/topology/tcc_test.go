package topology

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/txtopo/internal/graph"
	"github.com/vk/txtopo/internal/model"
	"github.com/vk/txtopo/internal/render"
)

func uintp(v uint) *uint { return &v }

func paymentTcc() *model.Tcc {
	return &model.Tcc{
		Name: "payment",
		Participants: []*model.TccParticipant{
			{ID: "P1", Order: 2, TryMethod: "TryP1", ConfirmMethod: "ConfirmP1", CancelMethod: "CancelP1"},
			{ID: "P2", Order: 1, TryMethod: "TryP2", ConfirmMethod: "ConfirmP2", CancelMethod: "CancelP2",
				TryTimeoutMs: uintp(2500), TryRetry: uintp(7)},
		},
	}
}

func TestAnalyzeTcc_RejectsNonTcc(t *testing.T) {
	t.Parallel()

	var notTcc *NotATccError

	_, err := AnalyzeTcc(nil)
	require.True(t, errors.As(err, &notTcc))

	_, err = AnalyzeTcc(&model.Tcc{Name: "empty"})
	require.True(t, errors.As(err, &notTcc))
}

func TestAnalyzeTcc_AppliesPhaseDefaults(t *testing.T) {
	t.Parallel()

	topo, err := AnalyzeTcc(paymentTcc())
	require.NoError(t, err)

	p1 := topo.Participants["P1"]
	require.Equal(t, model.DefaultTryTimeoutMs, p1.TryTimeoutMs)
	require.Equal(t, model.DefaultConfirmTimeoutMs, p1.ConfirmTimeoutMs)
	require.Equal(t, model.DefaultCancelTimeoutMs, p1.CancelTimeoutMs)
	require.Equal(t, model.DefaultTryRetry, p1.TryRetry)
	require.Equal(t, model.DefaultConfirmRetry, p1.ConfirmRetry)
	require.Equal(t, model.DefaultCancelRetry, p1.CancelRetry)

	// Explicit values survive; only absent attributes get defaults.
	p2 := topo.Participants["P2"]
	require.Equal(t, uint(2500), p2.TryTimeoutMs)
	require.Equal(t, uint(7), p2.TryRetry)
	require.Equal(t, model.DefaultConfirmTimeoutMs, p2.ConfirmTimeoutMs)
}

func TestAnalyzeTcc_ExecutionOrderSortsByOrder(t *testing.T) {
	t.Parallel()

	topo, err := AnalyzeTcc(paymentTcc())
	require.NoError(t, err)

	require.Equal(t, []string{"P2", "P1"}, topo.ExecutionOrder)
}

func TestAnalyzeTcc_TiesKeepDeclarationOrder(t *testing.T) {
	t.Parallel()

	topo, err := AnalyzeTcc(&model.Tcc{
		Name: "ties",
		Participants: []*model.TccParticipant{
			{ID: "x", Order: 1, TryMethod: "t", ConfirmMethod: "c", CancelMethod: "k"},
			{ID: "y", Order: 1, TryMethod: "t", ConfirmMethod: "c", CancelMethod: "k"},
			{ID: "z", Order: 0, TryMethod: "t", ConfirmMethod: "c", CancelMethod: "k"},
		},
	})
	require.NoError(t, err)

	require.Equal(t, []string{"z", "x", "y"}, topo.ExecutionOrder)
}

func TestBuildTccGraph(t *testing.T) {
	t.Parallel()

	topo, err := AnalyzeTcc(paymentTcc())
	require.NoError(t, err)

	g := BuildTccGraph(topo)

	// 3 phase nodes + 1 summary node per participant.
	require.Len(t, g.Nodes(), 8)

	tryNode, ok := g.Node("P2_try")
	require.True(t, ok)
	require.Equal(t, graph.KindPhase, tryNode.Kind)
	require.Equal(t, "TryP2", tryNode.Label)
	require.Equal(t, "try", tryNode.Properties["phase"])

	summary, ok := g.Node("P1")
	require.True(t, ok)
	require.Equal(t, graph.KindParticipant, summary.Kind)
	require.Equal(t, 2, summary.Properties["order"])

	var flows, comps, deps int
	for _, e := range g.Edges() {
		switch e.Kind {
		case graph.EdgeFlow:
			flows++
		case graph.EdgeCompensation:
			comps++
		case graph.EdgeDependency:
			deps++
			// Try phases chain in execution order: P2 before P1.
			require.Equal(t, "P2_try", e.From)
			require.Equal(t, "P1_try", e.To)
		}
	}
	require.Equal(t, 2, flows)
	require.Equal(t, 2, comps)
	require.Equal(t, 1, deps)
}

func TestVisualizeTcc_DOTContainsTryChain(t *testing.T) {
	t.Parallel()

	out, err := VisualizeTcc(paymentTcc(), render.FormatDOT)
	require.NoError(t, err)

	require.Contains(t, out, `"P2_try" -> "P1_try" [style=solid];`)
	require.Contains(t, out, `"P1_try" -> "P1_confirm" [style=bold];`)
	require.Contains(t, out, `"P1_try" -> "P1_cancel" [style=dashed];`)
}
