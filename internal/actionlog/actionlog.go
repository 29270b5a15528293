// Package actionlog records every agent interaction for audit and
// debugging. Recording is fire-and-forget: a failed or slow sink must
// never block or fail the session operation that triggered it.
package actionlog

import (
	"context"
	"fmt"
	"os"
	"time"
)

// ActionType identifies which agent skill produced an entry.
type ActionType string

const (
	ActionNextStep ActionType = "get_next_step"
	ActionEvaluate ActionType = "evaluate_response"
	ActionHint     ActionType = "provide_hint"
	ActionDecide   ActionType = "decide_next_action"
)

// Entry is one recorded agent interaction.
type Entry struct {
	DashboardID string
	SessionID   string
	Action      ActionType

	// RequestMessages is the serialized prompt sent to the agent.
	RequestMessages string

	// ResponseData is the raw agent response content.
	ResponseData string

	// ToolCallData is the parsed tool-call arguments as JSON, empty if
	// the agent returned no tool call.
	ToolCallData string

	// Reasoning is the agent-supplied reasoning, if any.
	Reasoning string

	QuestionID   string
	Topic        string
	MasteryLevel int

	// Duration is the wall-clock time of the agent call.
	Duration time.Duration
}

// Recorder persists entries. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// submitTimeout bounds a background record so a hung sink cannot leak
// goroutines indefinitely.
const submitTimeout = 10 * time.Second

// Submit records an entry on a detached goroutine. Failures are written
// to stderr and never propagated. A nil recorder is a no-op.
func Submit(rec Recorder, e Entry) {
	if rec == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		if err := rec.Record(ctx, e); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record AI action %s: %v\n", e.Action, err)
		}
	}()
}

// Multi fans an entry out to several recorders, stopping at the first
// error.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, e Entry) error {
	for _, rec := range m {
		if rec == nil {
			continue
		}
		if err := rec.Record(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
