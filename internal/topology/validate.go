package topology

import "fmt"

// Issue codes produced by the validators.
const (
	IssueCircularDependency  = "circular_dependency"
	IssueUnknownDependency   = "unknown_dependency"
	IssueUnknownCompensation = "unknown_compensation"
	IssueDuplicateOrder      = "duplicate_order"
	IssueMissingMethod       = "missing_method"
	IssueInvalidTimeout      = "invalid_timeout"
)

// Issue is one structural finding. Findings are advisory data, never
// errors: building and rendering succeed even when issues exist, because a
// topology is a declarative snapshot rather than a verified program.
type Issue struct {
	Code    string
	Message string
}

func (i Issue) String() string {
	return i.Message
}

// Messages extracts the display strings of a finding list.
func Messages(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Message)
	}
	return out
}

// ValidateSaga checks a saga topology for structural soundness: circular
// dependencies, references to unknown steps, and compensation method names
// that were never registered. The topology is never mutated, and the result
// may be empty.
func ValidateSaga(topo *SagaTopology) []Issue {
	var issues []Issue

	for _, id := range topo.StepOrder {
		if sagaPathHitsCycle(topo, id, map[string]bool{}) {
			issues = append(issues, Issue{
				Code:    IssueCircularDependency,
				Message: fmt.Sprintf("circular dependency detected involving step '%s' in saga '%s'", id, topo.SagaName),
			})
		}
	}

	for _, id := range topo.StepOrder {
		for _, dep := range topo.Steps[id].DependsOn {
			if _, known := topo.Steps[dep]; !known {
				issues = append(issues, Issue{
					Code:    IssueUnknownDependency,
					Message: fmt.Sprintf("step '%s' depends on unknown step '%s'", id, dep),
				})
			}
		}
	}

	for _, id := range topo.StepOrder {
		compensate := topo.Steps[id].Compensate
		if compensate == "" {
			continue
		}
		registered := false
		for _, method := range topo.CompensationMethods {
			if method == compensate {
				registered = true
				break
			}
		}
		if !registered {
			issues = append(issues, Issue{
				Code:    IssueUnknownCompensation,
				Message: fmt.Sprintf("step '%s' declares unknown compensation method '%s'", id, compensate),
			})
		}
	}

	return issues
}

// sagaPathHitsCycle walks depends_on edges depth-first from id. The path
// set is copied per recursive branch, so sibling branches sharing a step
// cannot produce a false positive; only revisiting a step on the current
// path counts as a cycle.
func sagaPathHitsCycle(topo *SagaTopology, id string, path map[string]bool) bool {
	if path[id] {
		return true
	}
	step, known := topo.Steps[id]
	if !known {
		return false
	}

	branch := make(map[string]bool, len(path)+1)
	for k := range path {
		branch[k] = true
	}
	branch[id] = true

	for _, dep := range step.DependsOn {
		if sagaPathHitsCycle(topo, dep, branch) {
			return true
		}
	}
	return false
}

// ValidateTcc checks a TCC topology: duplicate order values, missing phase
// method names, and non-positive phase timeouts.
func ValidateTcc(topo *TccTopology) []Issue {
	var issues []Issue

	distinct := make(map[int]struct{}, len(topo.Participants))
	for _, p := range topo.Participants {
		distinct[p.Order] = struct{}{}
	}
	if len(distinct) != len(topo.Participants) {
		issues = append(issues, Issue{
			Code:    IssueDuplicateOrder,
			Message: fmt.Sprintf("duplicate order values across participants in tcc '%s'", topo.TccName),
		})
	}

	for _, id := range topo.ExecutionOrder {
		p := topo.Participants[id]
		for _, phase := range []struct {
			name   string
			method string
		}{
			{"try", p.TryMethod},
			{"confirm", p.ConfirmMethod},
			{"cancel", p.CancelMethod},
		} {
			if phase.method == "" {
				issues = append(issues, Issue{
					Code:    IssueMissingMethod,
					Message: fmt.Sprintf("participant '%s' is missing a %s method", id, phase.name),
				})
			}
		}
		for _, phase := range []struct {
			name    string
			timeout uint
		}{
			{"try", p.TryTimeoutMs},
			{"confirm", p.ConfirmTimeoutMs},
			{"cancel", p.CancelTimeoutMs},
		} {
			if phase.timeout == 0 {
				issues = append(issues, Issue{
					Code:    IssueInvalidTimeout,
					Message: fmt.Sprintf("participant '%s' has a non-positive %s timeout", id, phase.name),
				})
			}
		}
	}

	return issues
}
