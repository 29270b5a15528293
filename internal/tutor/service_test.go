package tutor

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/avikram/studyloop/internal/actionlog"
	"github.com/avikram/studyloop/internal/agent"
	"github.com/avikram/studyloop/internal/mastery"
)

// syncRecorder captures entries synchronously for deterministic asserts.
type syncRecorder struct {
	mu      sync.Mutex
	entries []actionlog.Entry
}

func (r *syncRecorder) Record(_ context.Context, e actionlog.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *syncRecorder) all() []actionlog.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]actionlog.Entry(nil), r.entries...)
}

// newTestService wires a mock client and a synchronous recorder so tests
// can assert on recorded entries without races.
func newTestService(responses ...agent.MockResponse) (*Service, *agent.MockClient, *syncRecorder) {
	client := agent.NewMockClient(responses...)
	rec := &syncRecorder{}
	svc := NewService(client, rec)
	svc.submit = func(r actionlog.Recorder, e actionlog.Entry) {
		_ = r.Record(context.Background(), e)
	}
	return svc, client, rec
}

func testContext() SessionContext {
	return SessionContext{
		SessionID: "s1",
		Topics:    []string{"algebra", "geometry"},
		Mastery: []mastery.TopicMastery{
			{Topic: "algebra", Level: 30},
			{Topic: "geometry", Level: 55},
		},
	}
}

func validNextStepArgs() map[string]any {
	return map[string]any{
		"questionType": "short-answer",
		"topic":        "algebra",
		"difficulty":   "easy",
		"question":     "Solve x + 2 = 5.",
		"correctAnswer": "x = 3",
		"reasoning":    "lowest mastery",
	}
}

func TestNextQuestion(t *testing.T) {
	svc, client, rec := newTestService(
		agent.ToolCallResponse(NextStepTool.Name, validNextStepArgs()),
	)

	q, err := svc.NextQuestion(context.Background(), testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Topic != "algebra" || q.Type != TypeShortAnswer {
		t.Errorf("question = %+v", q)
	}

	// The request must carry the forced tool choice.
	if got := client.Calls[0].ToolChoice.Mode; got != agent.ModeFunction {
		t.Errorf("tool choice mode = %q, want function", got)
	}

	entries := rec.all()
	if len(entries) != 1 {
		t.Fatalf("logged entries = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Action != actionlog.ActionNextStep {
		t.Errorf("action = %q", e.Action)
	}
	if e.Topic != "algebra" || e.MasteryLevel != 30 {
		t.Errorf("entry topic/level = %q/%d", e.Topic, e.MasteryLevel)
	}
	if e.RequestMessages == "" || e.ToolCallData == "" {
		t.Error("entry is missing request or tool-call data")
	}
}

func TestNextQuestion_MissingToolCall(t *testing.T) {
	svc, _, rec := newTestService(agent.MockResponse{Content: "I refuse."})

	_, err := svc.NextQuestion(context.Background(), testContext())
	var missErr *agent.ErrMissingToolCall
	if !errors.As(err, &missErr) {
		t.Fatalf("error type = %T, want *agent.ErrMissingToolCall", err)
	}

	// The failed interaction is still logged.
	entries := rec.all()
	if len(entries) != 1 || entries[0].ResponseData == "" {
		t.Errorf("failure not logged: %+v", entries)
	}
}

func TestEvaluate_LocalShortcutForClosedForm(t *testing.T) {
	svc, client, rec := newTestService() // queue empty: any agent call would fail

	q := StudyQuestion{
		ID:    "q-1",
		Type:  TypeMultipleChoice,
		Topic: "algebra",
		Options: []AnswerOption{
			{Text: "3", Explanation: "Right: subtract 2 from both sides."},
			{Text: "7", Explanation: "That adds instead of subtracting."},
		},
		CorrectAnswer: "3",
	}

	eval, err := svc.Evaluate(context.Background(), testContext(), q, "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eval.IsCorrect {
		t.Error("isCorrect = false, want true")
	}
	if eval.Explanation != "Right: subtract 2 from both sides." {
		t.Errorf("explanation = %q", eval.Explanation)
	}
	if len(eval.Updates) != 0 {
		t.Errorf("updates = %+v, want empty", eval.Updates)
	}
	if eval.Recommendation != "continue" {
		t.Errorf("recommendation = %q", eval.Recommendation)
	}
	if client.CallCount() != 0 {
		t.Errorf("agent calls = %d, want 0", client.CallCount())
	}
	if len(rec.all()) != 0 {
		t.Errorf("local evaluation must not log an agent action")
	}
}

func TestEvaluate_LocalWrongAnswerUsesChosenExplanation(t *testing.T) {
	svc, _, _ := newTestService()
	q := StudyQuestion{
		ID:   "q-1",
		Type: TypeTrueFalse,
		Options: []AnswerOption{
			{Text: "True", Explanation: "Correct, the statement holds."},
			{Text: "False", Explanation: "It actually holds for all n."},
		},
		CorrectAnswer: "True",
	}

	eval, err := svc.Evaluate(context.Background(), testContext(), q, "False")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.IsCorrect {
		t.Error("isCorrect = true, want false")
	}
	if eval.Explanation != "It actually holds for all n." {
		t.Errorf("explanation = %q", eval.Explanation)
	}
	if eval.CorrectAnswer != "True" {
		t.Errorf("correctAnswer = %q", eval.CorrectAnswer)
	}
}

func TestEvaluate_AgentPathForShortAnswer(t *testing.T) {
	svc, client, rec := newTestService(
		agent.ToolCallResponse(EvaluateTool.Name, map[string]any{
			"isCorrect":   "false",
			"explanation": "The derivative of x^2 is 2x, not x.",
			"correctAnswer": "2x",
			"masteryUpdates": []map[string]any{
				{"topic": "algebra", "newLevel": 25, "reasoning": "misapplied the power rule"},
			},
			"recommendation": "review derivatives",
		}),
	)

	q := StudyQuestion{ID: "q-2", Type: TypeShortAnswer, Topic: "algebra", Question: "d/dx x^2?"}
	eval, err := svc.Evaluate(context.Background(), testContext(), q, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eval.IsCorrect {
		t.Error("isCorrect = true, want false")
	}
	if len(eval.Updates) != 1 || eval.Updates[0].Topic != "algebra" {
		t.Errorf("updates = %+v", eval.Updates)
	}
	if client.CallCount() != 1 {
		t.Errorf("agent calls = %d, want 1", client.CallCount())
	}
	entries := rec.all()
	if len(entries) != 1 || entries[0].Action != actionlog.ActionEvaluate {
		t.Errorf("entries = %+v", entries)
	}
}

func TestRequestHint_Provided(t *testing.T) {
	svc, client, _ := newTestService(
		agent.ToolCallResponse(HintTool.Name, map[string]any{
			"hint":      "Factor the left side first.",
			"reasoning": "learner asked",
		}),
	)

	q := StudyQuestion{ID: "q-3", Type: TypeShortAnswer, Topic: "algebra", Question: "Solve x^2-4=0"}
	outcome, err := svc.RequestHint(context.Background(), testContext(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Hint == nil || outcome.Hint.Hint != "Factor the left side first." {
		t.Errorf("outcome = %+v", outcome)
	}
	if got := client.Calls[0].ToolChoice.Mode; got != agent.ModeAuto {
		t.Errorf("tool choice mode = %q, want auto", got)
	}
}

func TestRequestHint_Declined(t *testing.T) {
	svc, _, _ := newTestService(
		agent.MockResponse{Content: "REASONING: the learner is close\nMESSAGE: You almost had it last try."},
	)

	q := StudyQuestion{ID: "q-3", Type: TypeShortAnswer, Topic: "algebra"}
	outcome, err := svc.RequestHint(context.Background(), testContext(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Hint != nil {
		t.Error("expected decline")
	}
	if outcome.Message != "You almost had it last try." {
		t.Errorf("message = %q", outcome.Message)
	}
}

func TestDecide_RequiredChoice(t *testing.T) {
	svc, client, _ := newTestService(
		agent.ToolCallResponse(DecideTool.Name, map[string]any{
			"action":    "continue_session",
			"reasoning": "mastery still low",
		}),
	)

	q := StudyQuestion{ID: "q-4", Type: TypeShortAnswer, Topic: "geometry"}
	d, err := svc.Decide(context.Background(), testContext(), q, Evaluation{IsCorrect: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionContinue {
		t.Errorf("action = %q", d.Action)
	}
	if got := client.Calls[0].ToolChoice.Mode; got != agent.ModeRequired {
		t.Errorf("tool choice mode = %q, want required", got)
	}
}

func TestDecide_ServiceErrorSurfaces(t *testing.T) {
	svc, _, rec := newTestService(
		agent.MockResponse{Err: &agent.ErrService{Status: 500, Body: "boom"}},
	)

	q := StudyQuestion{ID: "q-5", Type: TypeShortAnswer, Topic: "algebra"}
	_, err := svc.Decide(context.Background(), testContext(), q, Evaluation{})
	var svcErr *agent.ErrService
	if !errors.As(err, &svcErr) {
		t.Fatalf("error type = %T, want *agent.ErrService", err)
	}
	if len(rec.all()) != 1 {
		t.Error("failed call not logged")
	}
}
