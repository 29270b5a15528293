package store

import (
	"context"

	"github.com/avikram/studyloop/internal/actionlog"
)

// Recorder adapts an ActionRepo to the actionlog.Recorder interface, so
// agent actions land in the local event store instead of (or alongside)
// a remote endpoint.
type Recorder struct {
	repo ActionRepo
}

// NewRecorder creates a Recorder over the given repo.
func NewRecorder(repo ActionRepo) *Recorder {
	return &Recorder{repo: repo}
}

// Record appends one action log entry to the store.
func (r *Recorder) Record(ctx context.Context, e actionlog.Entry) error {
	return r.repo.Append(ctx, AIAction{
		SessionID:       e.SessionID,
		DashboardID:     e.DashboardID,
		ActionType:      string(e.Action),
		RequestMessages: e.RequestMessages,
		ResponseData:    e.ResponseData,
		ToolCallData:    e.ToolCallData,
		Reasoning:       e.Reasoning,
		QuestionID:      e.QuestionID,
		Topic:           e.Topic,
		MasteryLevel:    e.MasteryLevel,
		DurationMs:      e.Duration.Milliseconds(),
	})
}
