package tutor

import (
	"context"
	"time"

	"github.com/avikram/studyloop/internal/actionlog"
	"github.com/avikram/studyloop/internal/agent"
)

// Service executes the four agent skills and records each interaction
// to the action log without ever blocking on it.
type Service struct {
	client   agent.Client
	recorder actionlog.Recorder

	// submit dispatches log entries. Fire-and-forget by default;
	// tests replace it to serialize recording.
	submit func(actionlog.Recorder, actionlog.Entry)
}

// NewService creates a tutor service. rec may be nil to disable logging.
func NewService(client agent.Client, rec actionlog.Recorder) *Service {
	return &Service{
		client:   client,
		recorder: rec,
		submit:   actionlog.Submit,
	}
}

// NextQuestion asks the agent for the next study question.
func (s *Service) NextQuestion(ctx context.Context, sc SessionContext) (*StudyQuestion, error) {
	req := BuildNextQuestionMessages(sc)

	start := time.Now()
	resp, err := s.client.CallWithTools(ctx, req)
	duration := time.Since(start)

	entry := s.newEntry(sc, actionlog.ActionNextStep, req, duration)
	if err != nil {
		s.logFailure(entry, err)
		return nil, err
	}
	if resp.ToolCall == nil {
		err := &agent.ErrMissingToolCall{Tool: NextStepTool.Name, Content: resp.Content}
		s.logFailure(entry, err)
		return nil, err
	}

	q, reasoning, err := parseNextStep(resp.ToolCall)
	if err != nil {
		s.logFailure(entry, err)
		return nil, err
	}

	entry.ResponseData = resp.Content
	entry.ToolCallData = string(resp.ToolCall.Arguments)
	entry.Reasoning = reasoning
	entry.QuestionID = q.ID
	entry.Topic = q.Topic
	entry.MasteryLevel = levelFor(sc, q.Topic)
	s.submit(s.recorder, entry)

	return q, nil
}

// Evaluate grades the learner's answer. Closed-form questions
// (multiple-choice, true-false) are checked locally against the stored
// options for instant feedback; only short-answer and flashcard answers
// go to the agent.
func (s *Service) Evaluate(ctx context.Context, sc SessionContext, q StudyQuestion, answer string) (*Evaluation, error) {
	if q.Type.closedForm() {
		return evaluateLocally(q, answer), nil
	}

	req := BuildEvaluationMessages(sc, q, answer)

	start := time.Now()
	resp, err := s.client.CallWithTools(ctx, req)
	duration := time.Since(start)

	entry := s.newEntry(sc, actionlog.ActionEvaluate, req, duration)
	entry.QuestionID = q.ID
	entry.Topic = q.Topic
	entry.MasteryLevel = levelFor(sc, q.Topic)

	if err != nil {
		s.logFailure(entry, err)
		return nil, err
	}
	if resp.ToolCall == nil {
		err := &agent.ErrMissingToolCall{Tool: EvaluateTool.Name, Content: resp.Content}
		s.logFailure(entry, err)
		return nil, err
	}

	eval, err := parseEvaluation(resp.ToolCall, q.ID)
	if err != nil {
		s.logFailure(entry, err)
		return nil, err
	}

	entry.ResponseData = resp.Content
	entry.ToolCallData = string(resp.ToolCall.Arguments)
	entry.Reasoning = eval.Recommendation
	s.submit(s.recorder, entry)

	return eval, nil
}

// evaluateLocally checks a closed-form answer against the stored
// options. Mastery updates stay empty: the counter update supplies the
// authoritative level.
func evaluateLocally(q StudyQuestion, answer string) *Evaluation {
	correct := answer == q.CorrectAnswer

	var explanation string
	for _, opt := range q.Options {
		if opt.Text == answer {
			explanation = opt.Explanation
			break
		}
	}
	if explanation == "" {
		for _, opt := range q.Options {
			if opt.Text == q.CorrectAnswer {
				explanation = opt.Explanation
				break
			}
		}
	}

	return &Evaluation{
		QuestionID:     q.ID,
		IsCorrect:      correct,
		Explanation:    explanation,
		CorrectAnswer:  q.CorrectAnswer,
		Recommendation: "continue",
	}
}

// RequestHint asks the agent for a hint. The agent may decline by
// replying in free text instead of calling the tool.
func (s *Service) RequestHint(ctx context.Context, sc SessionContext, q StudyQuestion) (*HintOutcome, error) {
	req := BuildHintMessages(sc, q)

	start := time.Now()
	resp, err := s.client.CallWithTools(ctx, req)
	duration := time.Since(start)

	entry := s.newEntry(sc, actionlog.ActionHint, req, duration)
	entry.QuestionID = q.ID
	entry.Topic = q.Topic
	entry.MasteryLevel = levelFor(sc, q.Topic)

	if err != nil {
		s.logFailure(entry, err)
		return nil, err
	}

	outcome, err := parseHintResponse(resp)
	if err != nil {
		s.logFailure(entry, err)
		return nil, err
	}

	entry.ResponseData = resp.Content
	if resp.ToolCall != nil {
		entry.ToolCallData = string(resp.ToolCall.Arguments)
	}
	if outcome.Hint != nil {
		entry.Reasoning = outcome.Hint.Reasoning
	}
	s.submit(s.recorder, entry)

	return outcome, nil
}

// Decide asks the agent for the session's next autonomous action. The
// tool choice is required: a decision is mandatory.
func (s *Service) Decide(ctx context.Context, sc SessionContext, q StudyQuestion, eval Evaluation) (*Decision, error) {
	req := BuildDecisionMessages(sc, q, eval)

	start := time.Now()
	resp, err := s.client.CallWithTools(ctx, req)
	duration := time.Since(start)

	entry := s.newEntry(sc, actionlog.ActionDecide, req, duration)
	entry.QuestionID = q.ID
	entry.Topic = q.Topic
	entry.MasteryLevel = levelFor(sc, q.Topic)

	if err != nil {
		s.logFailure(entry, err)
		return nil, err
	}
	if resp.ToolCall == nil {
		err := &agent.ErrMissingToolCall{Tool: DecideTool.Name, Content: resp.Content}
		s.logFailure(entry, err)
		return nil, err
	}

	decision, err := parseDecision(resp.ToolCall)
	if err != nil {
		s.logFailure(entry, err)
		return nil, err
	}

	entry.ResponseData = resp.Content
	entry.ToolCallData = string(resp.ToolCall.Arguments)
	entry.Reasoning = decision.Reasoning
	s.submit(s.recorder, entry)

	return decision, nil
}

func (s *Service) newEntry(sc SessionContext, action actionlog.ActionType, req agent.Request, d time.Duration) actionlog.Entry {
	return actionlog.Entry{
		DashboardID:     sc.DashboardID,
		SessionID:       sc.SessionID,
		Action:          action,
		RequestMessages: serializeRequest(req),
		Duration:        d,
	}
}

func (s *Service) logFailure(entry actionlog.Entry, err error) {
	entry.ResponseData = "error: " + err.Error()
	s.submit(s.recorder, entry)
}

// levelFor returns the current mastery level of a topic, 0 if unknown.
func levelFor(sc SessionContext, topic string) int {
	for _, m := range sc.Mastery {
		if m.Topic == topic {
			return m.Level
		}
	}
	return 0
}
