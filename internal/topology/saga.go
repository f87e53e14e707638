package topology

import (
	"github.com/vk/txtopo/internal/graph"
	"github.com/vk/txtopo/internal/layering"
	"github.com/vk/txtopo/internal/model"
	"github.com/vk/txtopo/internal/render"
)

// SagaStepInfo is the analyzed form of one declared saga step. Fields are
// copied verbatim from the declaration; MethodName falls back to the step
// id when the declaration names no method.
type SagaStepInfo struct {
	StepID                string
	MethodName            string
	DependsOn             []string
	Compensate            string
	Retry                 uint
	TimeoutMs             uint
	CompensationCritical  bool
	CompensationRetry     uint
	CompensationTimeoutMs uint
}

// SagaTopology is the analyzed dependency structure of a saga.
// ExecutionLayers is derived, never set independently: it always equals the
// layering algorithm applied to Steps.
type SagaTopology struct {
	SagaName            string
	Steps               map[string]*SagaStepInfo
	StepOrder           []string
	CompensationMethods map[string]string
	ExecutionLayers     [][]string
}

// AnalyzeSaga builds a SagaTopology from declared metadata. It fails with
// NotASagaError when the declaration holds no steps; everything else,
// including cyclic or dangling dependencies, analyzes successfully and is
// left for ValidateSaga to report.
func AnalyzeSaga(decl *model.Saga) (*SagaTopology, error) {
	if decl == nil {
		return nil, &NotASagaError{}
	}
	if len(decl.Steps) == 0 {
		return nil, &NotASagaError{Name: decl.Name}
	}

	topo := &SagaTopology{
		SagaName:            decl.Name,
		Steps:               make(map[string]*SagaStepInfo, len(decl.Steps)),
		CompensationMethods: make(map[string]string),
	}

	for _, s := range decl.Steps {
		if _, dup := topo.Steps[s.ID]; dup {
			continue
		}
		info := &SagaStepInfo{
			StepID:                s.ID,
			MethodName:            s.Method,
			DependsOn:             append([]string(nil), s.DependsOn...),
			Compensate:            s.Compensate,
			Retry:                 s.Retry,
			TimeoutMs:             s.TimeoutMs,
			CompensationCritical:  s.CompensationCritical,
			CompensationRetry:     s.CompensationRetry,
			CompensationTimeoutMs: s.CompensationTimeoutMs,
		}
		if info.MethodName == "" {
			// Best-effort lookup only: the step id doubles as the method
			// name when the declaration does not record one.
			info.MethodName = s.ID
		}
		topo.Steps[s.ID] = info
		topo.StepOrder = append(topo.StepOrder, s.ID)
	}

	if len(decl.CompensationMethods) > 0 {
		for id, method := range decl.CompensationMethods {
			topo.CompensationMethods[id] = method
		}
	} else {
		for _, id := range topo.StepOrder {
			if c := topo.Steps[id].Compensate; c != "" {
				topo.CompensationMethods[id] = c
			}
		}
	}

	deps := make(map[string][]string, len(topo.Steps))
	for id, info := range topo.Steps {
		deps[id] = info.DependsOn
	}
	topo.ExecutionLayers = layering.Compute(topo.StepOrder, deps)

	return topo, nil
}

// BuildSagaGraph projects a saga topology into a fresh renderable graph:
// one step node per step, one compensation node per compensated step, a
// dependency edge per declared dependency and a compensation edge from each
// compensated step to its compensation node. Edges toward ids missing from
// the step set are omitted; the validator reports them.
func BuildSagaGraph(topo *SagaTopology) *graph.Graph {
	g := graph.New()

	for _, id := range topo.StepOrder {
		step := topo.Steps[id]
		g.AddNode(&graph.Node{
			ID:    id,
			Label: step.MethodName,
			Kind:  graph.KindStep,
			Properties: map[string]any{
				"retry":      step.Retry,
				"timeout_ms": step.TimeoutMs,
				"depends_on": step.DependsOn,
				"compensate": step.Compensate,
			},
		})
	}

	for _, id := range topo.StepOrder {
		method, ok := topo.CompensationMethods[id]
		if !ok {
			continue
		}
		g.AddNode(&graph.Node{
			ID:    id + "_compensation",
			Label: method,
			Kind:  graph.KindCompensation,
			Properties: map[string]any{
				"target":   id,
				"critical": topo.Steps[id].CompensationCritical,
			},
		})
	}

	for _, id := range topo.StepOrder {
		for _, dep := range topo.Steps[id].DependsOn {
			if _, known := topo.Steps[dep]; !known {
				continue
			}
			// Self-dependencies are also skipped here (AddEdge rejects
			// them); the cycle check reports them as findings.
			_ = g.AddEdge(&graph.Edge{From: dep, To: id, Kind: graph.EdgeDependency})
		}
	}

	for _, id := range topo.StepOrder {
		if _, ok := topo.CompensationMethods[id]; ok {
			_ = g.AddEdge(&graph.Edge{From: id, To: id + "_compensation", Kind: graph.EdgeCompensation})
		}
	}

	return g
}

// RenderSagaTopology serializes the topology's graph projection into the
// requested diagram format. The topology itself is never mutated.
func RenderSagaTopology(topo *SagaTopology, format render.Format) (string, error) {
	return render.Render(BuildSagaGraph(topo), format)
}

// VisualizeSaga analyzes declared saga metadata and renders it in one call.
func VisualizeSaga(decl *model.Saga, format render.Format) (string, error) {
	topo, err := AnalyzeSaga(decl)
	if err != nil {
		return "", err
	}
	return RenderSagaTopology(topo, format)
}
