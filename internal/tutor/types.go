// Package tutor implements the four agent skills of a study session:
// generating the next question, evaluating an answer, providing a hint,
// and deciding the next autonomous action. Each skill pairs a tool
// schema with a prompt builder and a response parser.
package tutor

import (
	"fmt"
	"time"

	"github.com/avikram/studyloop/internal/mastery"
)

// QuestionType is the kind of question asked.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeTrueFalse      QuestionType = "true-false"
	TypeShortAnswer    QuestionType = "short-answer"
	TypeFlashcard      QuestionType = "flashcard"
)

// closedForm reports whether answers to this question type can be
// checked locally against the stored options, skipping the agent.
func (t QuestionType) closedForm() bool {
	return t == TypeMultipleChoice || t == TypeTrueFalse
}

// AnswerOption is one selectable option of a closed-form question.
type AnswerOption struct {
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
}

// StudyQuestion is an immutable question record once created. Only the
// Hint field is attached later, when the user accepts a hint.
type StudyQuestion struct {
	ID         string
	Type       QuestionType
	Topic      string
	Difficulty mastery.Difficulty

	Question string

	// Options is present only for multiple-choice and true-false.
	Options []AnswerOption

	// CorrectAnswer matches one option's Text verbatim for closed-form
	// types; for short-answer and flashcard it is a model answer.
	CorrectAnswer string

	// Hint is attached after the user accepts one.
	Hint string
}

// UserAnswer is one submitted answer, appended to history and never
// mutated.
type UserAnswer struct {
	QuestionID string
	Answer     string
	Timestamp  time.Time
}

// Evaluation is the agent's (or the local checker's) verdict on one
// answer.
type Evaluation struct {
	QuestionID    string
	IsCorrect     bool
	Explanation   string
	CorrectAnswer string

	// Updates are the agent-proposed mastery adjustments. Empty for
	// locally evaluated closed-form answers; the counter update supplies
	// the authoritative level either way.
	Updates []mastery.Update

	Recommendation string
}

// EvaluationResult is the immutable record appended to session history:
// the verdict plus a snapshot of mastery after applying it.
type EvaluationResult struct {
	QuestionID     string
	IsCorrect      bool
	Explanation    string
	CorrectAnswer  string
	MasteryUpdates []mastery.TopicMastery
}

// HintPayload is a provided hint.
type HintPayload struct {
	Hint      string
	Reasoning string
}

// HintOutcome is the result of a hint request: either a hint, or a
// decline message from the agent.
type HintOutcome struct {
	Hint    *HintPayload
	Message string
}

// Action is the agent's autonomous next-step decision.
type Action string

const (
	ActionContinue    Action = "continue_session"
	ActionSuggestHint Action = "suggest_hint"
	ActionEndSession  Action = "end_session"
)

// Decision is the parsed decide_next_action result.
type Decision struct {
	Action         Action
	Reasoning      string
	HintText       string
	SessionSummary string
}

// SessionContext is the serializable slice of session state the prompt
// builders and the action log need. The orchestrator assembles it; the
// tutor never reads session state directly.
type SessionContext struct {
	SessionID   string
	DashboardID string

	Topics  []string
	Mastery []mastery.TopicMastery

	// LastTopic is the topic of the most recently asked question, used
	// for the no-immediate-repeat prompt rule.
	LastTopic string

	// AskedQuestions holds the text of questions already asked.
	AskedQuestions []string

	// RecentResults summarizes recent evaluations for prompt context.
	RecentResults []string

	QuestionsAnswered int
	UserDeclinedEnd   bool
}

// newQuestionID derives a unique id from the current time.
func newQuestionID() string {
	return fmt.Sprintf("q-%d", time.Now().UnixNano())
}
