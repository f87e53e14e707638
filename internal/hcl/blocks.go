package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes all recognized top-level blocks from any declaration
// file. Unknown blocks land in Remain and are ignored, so declaration
// files can coexist with other tooling's blocks.
type fileRoot struct {
	Sagas  []*sagaBlock `hcl:"saga,block"`
	Tccs   []*tccBlock  `hcl:"tcc,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type sagaBlock struct {
	Name                string            `hcl:"name,label"`
	CompensationMethods map[string]string `hcl:"compensation_methods,optional"`
	Steps               []*stepBlock      `hcl:"step,block"`
}

type stepBlock struct {
	ID                    string   `hcl:"id,label"`
	Method                string   `hcl:"method,optional"`
	DependsOn             []string `hcl:"depends_on,optional"`
	Compensate            string   `hcl:"compensate,optional"`
	Retry                 uint     `hcl:"retry,optional"`
	TimeoutMs             uint     `hcl:"timeout_ms,optional"`
	CompensationCritical  bool     `hcl:"compensation_critical,optional"`
	CompensationRetry     uint     `hcl:"compensation_retry,optional"`
	CompensationTimeoutMs uint     `hcl:"compensation_timeout_ms,optional"`

	// Annotations stays an expression so the loader can convert whatever
	// object the user wrote into a plain string map via cty.
	Annotations hcl.Expression `hcl:"annotations,optional"`
}

type tccBlock struct {
	Name         string              `hcl:"name,label"`
	Participants []*participantBlock `hcl:"participant,block"`
}

type participantBlock struct {
	ID      string `hcl:"id,label"`
	Order   int    `hcl:"order"`
	Try     string `hcl:"try"`
	Confirm string `hcl:"confirm"`
	Cancel  string `hcl:"cancel"`

	TryTimeoutMs     *uint `hcl:"try_timeout_ms,optional"`
	ConfirmTimeoutMs *uint `hcl:"confirm_timeout_ms,optional"`
	CancelTimeoutMs  *uint `hcl:"cancel_timeout_ms,optional"`
	TryRetry         *uint `hcl:"try_retry,optional"`
	ConfirmRetry     *uint `hcl:"confirm_retry,optional"`
	CancelRetry      *uint `hcl:"cancel_retry,optional"`
}
