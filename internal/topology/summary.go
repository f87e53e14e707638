package topology

import (
	"fmt"
	"strings"

	"github.com/vk/txtopo/internal/layering"
)

// SagaExecutionSummary renders a human-readable digest of a saga topology:
// step and layer counts, the widest parallel batch, and compensation
// coverage.
func SagaExecutionSummary(topo *SagaTopology) string {
	compensated := 0
	for _, id := range topo.StepOrder {
		if _, ok := topo.CompensationMethods[id]; ok {
			compensated++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Saga: %s\n", topo.SagaName)
	fmt.Fprintf(&b, "  steps:            %d\n", len(topo.StepOrder))
	fmt.Fprintf(&b, "  execution layers: %d\n", len(topo.ExecutionLayers))
	fmt.Fprintf(&b, "  max parallelism:  %d\n", layering.MaxParallelism(topo.ExecutionLayers))
	fmt.Fprintf(&b, "  compensated:      %d/%d steps\n", compensated, len(topo.StepOrder))
	return b.String()
}

// TccExecutionSummary renders a digest of a TCC topology: participant
// count, the declared try ordering, and per-phase timeout totals.
func TccExecutionSummary(topo *TccTopology) string {
	var tryTotal, confirmTotal, cancelTotal uint
	for _, id := range topo.ExecutionOrder {
		p := topo.Participants[id]
		tryTotal += p.TryTimeoutMs
		confirmTotal += p.ConfirmTimeoutMs
		cancelTotal += p.CancelTimeoutMs
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TCC: %s\n", topo.TccName)
	fmt.Fprintf(&b, "  participants:          %d\n", len(topo.ExecutionOrder))
	fmt.Fprintf(&b, "  execution order:       %s\n", strings.Join(topo.ExecutionOrder, " -> "))
	fmt.Fprintf(&b, "  try timeout total:     %dms\n", tryTotal)
	fmt.Fprintf(&b, "  confirm timeout total: %dms\n", confirmTotal)
	fmt.Fprintf(&b, "  cancel timeout total:  %dms\n", cancelTotal)
	return b.String()
}
