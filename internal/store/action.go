package store

import (
	"context"
	"fmt"
	"time"

	"github.com/avikram/studyloop/ent"
	"github.com/avikram/studyloop/ent/aiactionevent"
)

// AIAction is a recorded agent interaction.
type AIAction struct {
	Sequence        int64
	Timestamp       time.Time
	SessionID       string
	DashboardID     string
	ActionType      string
	RequestMessages string
	ResponseData    string
	ToolCallData    string
	Reasoning       string
	QuestionID      string
	Topic           string
	MasteryLevel    int
	DurationMs      int64
}

// ActionRepo provides append and read access to agent action events.
type ActionRepo interface {
	// Append records one agent action.
	Append(ctx context.Context, a AIAction) error

	// BySession returns all actions for one session, oldest first.
	BySession(ctx context.Context, sessionID string) ([]AIAction, error)

	// ByDashboard returns all actions for one dashboard, oldest first.
	ByDashboard(ctx context.Context, dashboardID string) ([]AIAction, error)

	// List returns actions newest first with offset pagination, and
	// reports whether more rows remain past the returned page.
	List(ctx context.Context, limit, offset int) ([]AIAction, bool, error)
}

type actionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *actionRepo) Append(ctx context.Context, a AIAction) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.AIActionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(a.SessionID).
		SetDashboardID(a.DashboardID).
		SetActionType(a.ActionType).
		SetRequestMessages(a.RequestMessages).
		SetResponseData(a.ResponseData).
		SetToolCallData(a.ToolCallData).
		SetReasoning(a.Reasoning).
		SetQuestionID(a.QuestionID).
		SetTopic(a.Topic).
		SetMasteryLevel(a.MasteryLevel).
		SetDurationMs(a.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save action event: %w", err)
	}

	return nil
}

func (r *actionRepo) BySession(ctx context.Context, sessionID string) ([]AIAction, error) {
	rows, err := r.client.AIActionEvent.Query().
		Where(aiactionevent.SessionID(sessionID)).
		Order(ent.Asc(aiactionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session actions: %w", err)
	}
	return fromRows(rows), nil
}

func (r *actionRepo) ByDashboard(ctx context.Context, dashboardID string) ([]AIAction, error) {
	rows, err := r.client.AIActionEvent.Query().
		Where(aiactionevent.DashboardID(dashboardID)).
		Order(ent.Asc(aiactionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query dashboard actions: %w", err)
	}
	return fromRows(rows), nil
}

func (r *actionRepo) List(ctx context.Context, limit, offset int) ([]AIAction, bool, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	// Fetch one extra row to detect whether another page exists.
	rows, err := r.client.AIActionEvent.Query().
		Order(ent.Desc(aiactionevent.FieldSequence)).
		Offset(offset).
		Limit(limit + 1).
		All(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list actions: %w", err)
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}
	return fromRows(rows), hasMore, nil
}

func fromRows(rows []*ent.AIActionEvent) []AIAction {
	out := make([]AIAction, 0, len(rows))
	for _, row := range rows {
		out = append(out, AIAction{
			Sequence:        row.Sequence,
			Timestamp:       row.Timestamp,
			SessionID:       row.SessionID,
			DashboardID:     row.DashboardID,
			ActionType:      row.ActionType,
			RequestMessages: row.RequestMessages,
			ResponseData:    row.ResponseData,
			ToolCallData:    row.ToolCallData,
			Reasoning:       row.Reasoning,
			QuestionID:      row.QuestionID,
			Topic:           row.Topic,
			MasteryLevel:    row.MasteryLevel,
			DurationMs:      row.DurationMs,
		})
	}
	return out
}
