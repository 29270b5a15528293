// Package session implements the study-session state machine: an
// orchestrator that owns the session state, sequences agent calls
// through the tutor service, and exposes the lifecycle operations the
// presentation layer drives.
package session

import (
	"time"

	"github.com/avikram/studyloop/internal/mastery"
	"github.com/avikram/studyloop/internal/tutor"
)

// View is the single screen the presentation layer should render,
// derived from which state field is populated.
type View int

const (
	ViewNotStarted View = iota
	ViewSessionEnd
	ViewHintSuggestion
	ViewHint
	ViewEvaluation
	ViewQuestion
	ViewLoading
)

// PendingEvaluation holds a completed evaluation awaiting the user's
// confirmation. NextQuestion is filled in by the autonomous decision
// step when it preloads the follow-up question.
type PendingEvaluation struct {
	Question   tutor.StudyQuestion
	Answer     tutor.UserAnswer
	Evaluation tutor.Evaluation

	NextQuestion *tutor.StudyQuestion
}

// PendingHintSuggestion is a proactive hint offer for the upcoming,
// already-preloaded question.
type PendingHintSuggestion struct {
	Hint      string
	Reasoning string

	NextQuestion *tutor.StudyQuestion
}

// PendingSessionEnd is a proactive end-of-session offer.
type PendingSessionEnd struct {
	SessionSummary string
	Reasoning      string
}

// State is the session aggregate. The orchestrator owns and mutates it
// exclusively; readers get whole-state snapshots, never live references
// that the orchestrator will mutate underneath them.
type State struct {
	SessionID   string
	DashboardID string
	Active      bool

	// Topics is fixed at session creation.
	Topics []string

	// Mastery has one entry per topic, in topic order.
	Mastery []mastery.TopicMastery

	// CurrentQuestion is the question shown to the user, nil between
	// questions.
	CurrentQuestion *tutor.StudyQuestion

	// Append-only histories.
	QuestionHistory   []tutor.StudyQuestion
	AnswerHistory     []tutor.UserAnswer
	EvaluationHistory []tutor.EvaluationResult

	// At most one pending field is set at a time.
	PendingEvaluation     *PendingEvaluation
	PendingHint           *tutor.HintPayload
	PendingHintSuggestion *PendingHintSuggestion
	PendingSessionEnd     *PendingSessionEnd

	// UserDeclinedSessionEnd sticks once the user rejects an end-session
	// suggestion, so the agent's override never nags twice.
	UserDeclinedSessionEnd bool
}

// View resolves the precedence order for rendering: session-end beats
// hint-suggestion beats hint beats evaluation beats question.
func (s *State) View() View {
	switch {
	case !s.Active:
		if len(s.QuestionHistory) > 0 || s.PendingSessionEnd != nil {
			return ViewSessionEnd
		}
		return ViewNotStarted
	case s.PendingSessionEnd != nil:
		return ViewSessionEnd
	case s.PendingHintSuggestion != nil:
		return ViewHintSuggestion
	case s.PendingHint != nil:
		return ViewHint
	case s.PendingEvaluation != nil:
		return ViewEvaluation
	case s.CurrentQuestion != nil:
		return ViewQuestion
	default:
		return ViewLoading
	}
}

// AllMastered reports whether every topic has reached the mastery
// threshold.
func (s *State) AllMastered() bool {
	return mastery.AllMastered(s.Mastery)
}

// CorrectCount tallies correct answers across the session.
func (s *State) CorrectCount() int {
	n := 0
	for _, ev := range s.EvaluationHistory {
		if ev.IsCorrect {
			n++
		}
	}
	return n
}

// clone returns a deep copy. Every mutation in the orchestrator starts
// from a clone and ends with a whole-state swap, so concurrent readers
// only ever observe complete states.
func (s *State) clone() *State {
	next := *s

	next.Topics = append([]string(nil), s.Topics...)
	next.Mastery = append([]mastery.TopicMastery(nil), s.Mastery...)
	next.QuestionHistory = append([]tutor.StudyQuestion(nil), s.QuestionHistory...)
	next.AnswerHistory = append([]tutor.UserAnswer(nil), s.AnswerHistory...)
	next.EvaluationHistory = append([]tutor.EvaluationResult(nil), s.EvaluationHistory...)

	if s.CurrentQuestion != nil {
		q := *s.CurrentQuestion
		next.CurrentQuestion = &q
	}
	if s.PendingEvaluation != nil {
		pe := *s.PendingEvaluation
		if pe.NextQuestion != nil {
			q := *pe.NextQuestion
			pe.NextQuestion = &q
		}
		next.PendingEvaluation = &pe
	}
	if s.PendingHint != nil {
		h := *s.PendingHint
		next.PendingHint = &h
	}
	if s.PendingHintSuggestion != nil {
		hs := *s.PendingHintSuggestion
		if hs.NextQuestion != nil {
			q := *hs.NextQuestion
			hs.NextQuestion = &q
		}
		next.PendingHintSuggestion = &hs
	}
	if s.PendingSessionEnd != nil {
		se := *s.PendingSessionEnd
		next.PendingSessionEnd = &se
	}

	return &next
}

// context assembles the tutor.SessionContext the prompt builders read.
func (s *State) context() tutor.SessionContext {
	sc := tutor.SessionContext{
		SessionID:         s.SessionID,
		DashboardID:       s.DashboardID,
		Topics:            s.Topics,
		Mastery:           s.Mastery,
		QuestionsAnswered: len(s.AnswerHistory),
		UserDeclinedEnd:   s.UserDeclinedSessionEnd,
	}

	if n := len(s.QuestionHistory); n > 0 {
		sc.LastTopic = s.QuestionHistory[n-1].Topic
	}
	for _, q := range s.QuestionHistory {
		sc.AskedQuestions = append(sc.AskedQuestions, q.Question)
	}
	for _, ev := range s.EvaluationHistory {
		verdict := "incorrect"
		if ev.IsCorrect {
			verdict = "correct"
		}
		sc.RecentResults = append(sc.RecentResults, verdict+" on "+topicOf(s.QuestionHistory, ev.QuestionID))
	}

	return sc
}

func topicOf(history []tutor.StudyQuestion, questionID string) string {
	for _, q := range history {
		if q.ID == questionID {
			return q.Topic
		}
	}
	return "unknown topic"
}

// newState creates the initial aggregate for a topic list.
func newState(sessionID, dashboardID string, topics []string) *State {
	return &State{
		SessionID:   sessionID,
		DashboardID: dashboardID,
		Topics:      append([]string(nil), topics...),
		Mastery:     mastery.NewLevels(topics),
	}
}

// snapshotMastery copies the mastery slice for an immutable history
// record.
func snapshotMastery(levels []mastery.TopicMastery) []mastery.TopicMastery {
	return append([]mastery.TopicMastery(nil), levels...)
}

var timeNow = time.Now
