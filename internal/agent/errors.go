package agent

import (
	"encoding/json"
	"fmt"
)

// ErrService indicates the agent endpoint failed: a non-2xx HTTP status
// or a transport-level error. Status is 0 when no HTTP response arrived.
type ErrService struct {
	Status int
	Body   string
	Err    error
}

func (e *ErrService) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("agent service error (status %d): %s", e.Status, e.Body)
	}
	return fmt.Sprintf("agent service error: %v", e.Err)
}

func (e *ErrService) Unwrap() error { return e.Err }

// ErrMissingToolCall indicates the agent response lacked the expected
// tool call. Only raised by callers for whom a tool call is mandatory.
type ErrMissingToolCall struct {
	Tool    string
	Content string
}

func (e *ErrMissingToolCall) Error() string {
	return fmt.Sprintf("agent did not call tool %q", e.Tool)
}

// ErrInvalidToolCall indicates tool-call arguments could not be decoded
// or failed schema validation. Distinct from ErrService: the endpoint
// responded, but the payload does not match the tool's contract.
type ErrInvalidToolCall struct {
	Tool string
	Raw  json.RawMessage
	Err  error
}

func (e *ErrInvalidToolCall) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %v", e.Tool, e.Err)
}

func (e *ErrInvalidToolCall) Unwrap() error { return e.Err }
