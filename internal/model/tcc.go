package model

// Phase defaults applied when a participant declaration leaves the
// corresponding attribute unset.
const (
	DefaultTryTimeoutMs     uint = 10000
	DefaultConfirmTimeoutMs uint = 5000
	DefaultCancelTimeoutMs  uint = 10000
	DefaultTryRetry         uint = 3
	DefaultConfirmRetry     uint = 5
	DefaultCancelRetry      uint = 10
)

// Tcc is the declared metadata for a Try-Confirm-Cancel transaction: a
// named set of participants with a declared Try-phase ordering.
type Tcc struct {
	Name         string            `json:"name"`
	Participants []*TccParticipant `json:"participants"`
}

// TccParticipant is one declared participant. The timeout and retry fields
// are pointers so that "unspecified" is distinguishable from an explicit
// zero; the analyzer materializes the defaults above at construction time.
type TccParticipant struct {
	ID            string `json:"id"`
	Order         int    `json:"order"`
	TryMethod     string `json:"try_method"`
	ConfirmMethod string `json:"confirm_method"`
	CancelMethod  string `json:"cancel_method"`

	TryTimeoutMs     *uint `json:"try_timeout_ms,omitempty"`
	ConfirmTimeoutMs *uint `json:"confirm_timeout_ms,omitempty"`
	CancelTimeoutMs  *uint `json:"cancel_timeout_ms,omitempty"`
	TryRetry         *uint `json:"try_retry,omitempty"`
	ConfirmRetry     *uint `json:"confirm_retry,omitempty"`
	CancelRetry      *uint `json:"cancel_retry,omitempty"`
}
