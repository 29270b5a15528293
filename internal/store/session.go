package store

import (
	"context"
	"fmt"
	"time"

	"github.com/avikram/studyloop/ent"
	"github.com/avikram/studyloop/ent/sessionevent"
)

const (
	// SessionStart marks the beginning of a study session.
	SessionStart = "start"
	// SessionEnd marks the end of a study session.
	SessionEnd = "end"
)

// SessionRecord is a recorded session lifecycle event.
type SessionRecord struct {
	Sequence        int64
	Timestamp       time.Time
	SessionID       string
	Action          string
	Topics          []string
	QuestionsServed int
	CorrectAnswers  int
	Summary         string
}

// SessionRepo records session lifecycle events.
type SessionRepo interface {
	// AppendStart records the start of a session with its topic list.
	AppendStart(ctx context.Context, sessionID string, topics []string) error

	// AppendEnd records the end of a session with its final tallies.
	// Summary may be empty when the learner ended the session manually.
	AppendEnd(ctx context.Context, sessionID string, served, correct int, summary string) error

	// BySession returns the lifecycle events of one session, oldest first.
	BySession(ctx context.Context, sessionID string) ([]SessionRecord, error)
}

type sessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *sessionRepo) AppendStart(ctx context.Context, sessionID string, topics []string) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(sessionID).
		SetAction(SessionStart).
		SetTopics(topics).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session start: %w", err)
	}
	return nil
}

func (r *sessionRepo) AppendEnd(ctx context.Context, sessionID string, served, correct int, summary string) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(sessionID).
		SetAction(SessionEnd).
		SetQuestionsServed(served).
		SetCorrectAnswers(correct).
		SetSummary(summary).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session end: %w", err)
	}
	return nil
}

func (r *sessionRepo) BySession(ctx context.Context, sessionID string) ([]SessionRecord, error) {
	rows, err := r.client.SessionEvent.Query().
		Where(sessionevent.SessionID(sessionID)).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	out := make([]SessionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionRecord{
			Sequence:        row.Sequence,
			Timestamp:       row.Timestamp,
			SessionID:       row.SessionID,
			Action:          row.Action,
			Topics:          row.Topics,
			QuestionsServed: row.QuestionsServed,
			CorrectAnswers:  row.CorrectAnswers,
			Summary:         row.Summary,
		})
	}
	return out, nil
}
