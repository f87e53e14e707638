package model

// Saga is the declared metadata for a saga: a named, ordered collection of
// steps plus the registered compensation methods.
type Saga struct {
	Name  string      `json:"name"`
	Steps []*SagaStep `json:"steps"`

	// CompensationMethods maps a step id to the compensation method name
	// registered for it. A declaration may state this map explicitly; when
	// absent it is derived from the per-step compensate attributes. An
	// explicit map can disagree with the steps, which the validator flags.
	CompensationMethods map[string]string `json:"compensation_methods,omitempty"`
}

// SagaStep is one declared step. DependsOn references other step ids within
// the same saga; a dangling reference is a validation finding, not a load
// error.
type SagaStep struct {
	ID                    string            `json:"id"`
	Method                string            `json:"method,omitempty"`
	DependsOn             []string          `json:"depends_on,omitempty"`
	Compensate            string            `json:"compensate,omitempty"`
	Retry                 uint              `json:"retry"`
	TimeoutMs             uint              `json:"timeout_ms"`
	CompensationCritical  bool              `json:"compensation_critical"`
	CompensationRetry     uint              `json:"compensation_retry"`
	CompensationTimeoutMs uint              `json:"compensation_timeout_ms"`
	Annotations           map[string]string `json:"annotations,omitempty"`
}
