package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avikram/studyloop/internal/agent"
	"github.com/avikram/studyloop/internal/mastery"
	"github.com/avikram/studyloop/internal/tutor"
)

func questionResponse(topic, text string) agent.MockResponse {
	return agent.ToolCallResponse("get_next_study_step", map[string]any{
		"questionType": "multiple-choice",
		"topic":        topic,
		"difficulty":   "easy",
		"question":     text,
		"options": []map[string]any{
			{"text": "4", "explanation": "Right: 2+2 is 4."},
			{"text": "5", "explanation": "That is one too many."},
		},
		"correctAnswer": "4",
		"reasoning":     "start easy",
	})
}

func decisionResponse(action string, extra map[string]any) agent.MockResponse {
	args := map[string]any{"action": action, "reasoning": "test decision"}
	for k, v := range extra {
		args[k] = v
	}
	return agent.ToolCallResponse("decide_next_action", args)
}

// newTestOrchestrator builds an orchestrator over the real tutor service
// and a mock agent, with the decision step running inline so tests are
// deterministic.
func newTestOrchestrator(topics []string, hooks Hooks, responses ...agent.MockResponse) (*Orchestrator, *agent.MockClient) {
	client := agent.NewMockClient(responses...)
	svc := tutor.NewService(client, nil)
	o := NewOrchestrator(svc, "dash-1", topics, hooks)
	o.spawn = func(f func()) { f() }
	return o, client
}

func TestStartSession(t *testing.T) {
	o, client := newTestOrchestrator([]string{"A", "B"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
	)

	if err := o.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	st := o.State()
	if !st.Active {
		t.Error("active = false after start")
	}
	if st.CurrentQuestion == nil {
		t.Fatal("no current question")
	}
	if st.CurrentQuestion.Topic != "A" && st.CurrentQuestion.Topic != "B" {
		t.Errorf("topic = %q, want A or B", st.CurrentQuestion.Topic)
	}
	if len(st.QuestionHistory) != 1 {
		t.Errorf("question history = %d, want 1", len(st.QuestionHistory))
	}
	if st.View() != ViewQuestion {
		t.Errorf("view = %v, want question", st.View())
	}
	if client.CallCount() != 1 {
		t.Errorf("agent calls = %d, want 1", client.CallCount())
	}
}

func TestStartFailureLeavesInactive(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A"}, Hooks{},
		agent.MockResponse{Err: &agent.ErrService{Status: 502, Body: "bad gateway"}},
	)

	err := o.Start(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if o.State().Active {
		t.Error("active = true after failed start")
	}
	if o.Err() == "" {
		t.Error("error message not surfaced")
	}
	if o.Loading() {
		t.Error("loading stuck at true")
	}
}

func TestSubmitAnswerFlow(t *testing.T) {
	o, client := newTestOrchestrator([]string{"A", "B"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		decisionResponse("continue_session", nil),
		questionResponse("B", "Is the sky blue?"),
	)
	ctx := context.Background()

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Correct multiple-choice answer: evaluated locally, decision and
	// preload run inline via the test spawn.
	if err := o.SubmitAnswer(ctx, "4"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	st := o.State()
	pe := st.PendingEvaluation
	if pe == nil {
		t.Fatal("no pending evaluation")
	}
	if !pe.Evaluation.IsCorrect {
		t.Error("isCorrect = false for the matching option")
	}
	if st.View() != ViewEvaluation {
		t.Errorf("view = %v, want evaluation", st.View())
	}

	// Counters updated and level recomputed: 1/1 answered.
	var tm mastery.TopicMastery
	for _, m := range st.Mastery {
		if m.Topic == "A" {
			tm = m
		}
	}
	if tm.QuestionsAnswered != 1 || tm.QuestionsCorrect != 1 {
		t.Errorf("counters = %d/%d, want 1/1", tm.QuestionsCorrect, tm.QuestionsAnswered)
	}
	if tm.Level != mastery.CalculateLevel(1, 1) {
		t.Errorf("level = %d, want %d", tm.Level, mastery.CalculateLevel(1, 1))
	}
	if len(st.AnswerHistory) != 1 || len(st.EvaluationHistory) != 1 {
		t.Errorf("histories = %d/%d answers/evals, want 1/1",
			len(st.AnswerHistory), len(st.EvaluationHistory))
	}

	// The decision step preloaded the next question.
	if pe.NextQuestion == nil {
		t.Fatal("no preloaded next question")
	}
	calls := client.CallCount() // start + decide + preload

	// Confirmation promotes the preloaded question with no agent call.
	if err := o.ConfirmEvaluation(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	st = o.State()
	if st.CurrentQuestion == nil || st.CurrentQuestion.Topic != "B" {
		t.Errorf("current question = %+v, want topic B", st.CurrentQuestion)
	}
	if st.PendingEvaluation != nil {
		t.Error("pending evaluation not cleared")
	}
	if client.CallCount() != calls {
		t.Errorf("agent calls = %d, want %d (no fetch on confirm)", client.CallCount(), calls)
	}
}

func TestSubmitAnswerWithoutQuestion(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A"}, Hooks{})

	err := o.SubmitAnswer(context.Background(), "4")
	var pre *ErrPrecondition
	if !errors.As(err, &pre) {
		t.Fatalf("error type = %T, want *ErrPrecondition", err)
	}
}

func TestConfirmWithoutPreloadFetchesSynchronously(t *testing.T) {
	// The mock serves responses in call order: start, the synchronous
	// fetch on confirm, then the late decision step and its preload.
	o, client := newTestOrchestrator([]string{"A", "B"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		questionResponse("B", "Synchronous fetch"),
		decisionResponse("continue_session", nil),
		questionResponse("B", "Late preload"),
	)
	ctx := context.Background()

	// Capture the decision step instead of running it, simulating a
	// confirm that races ahead of the preload.
	var deferred func()
	o.spawn = func(f func()) { deferred = f }

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.SubmitAnswer(ctx, "4"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if o.State().PendingEvaluation.NextQuestion != nil {
		t.Fatal("preload should not have run yet")
	}

	if err := o.ConfirmEvaluation(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	st := o.State()
	if st.CurrentQuestion == nil || st.CurrentQuestion.Question != "Synchronous fetch" {
		t.Errorf("current question = %+v", st.CurrentQuestion)
	}
	if client.CallCount() != 2 {
		t.Errorf("agent calls = %d, want 2", client.CallCount())
	}

	// The late decision step finds no pending evaluation and drops its
	// preload on the floor.
	deferred()
	if o.State().PendingEvaluation != nil {
		t.Error("stale decision recreated a pending evaluation")
	}
	if got := o.State().CurrentQuestion.Question; got != "Synchronous fetch" {
		t.Errorf("current question changed to %q", got)
	}
}

func TestLateHintSuggestionAfterConfirmIsDropped(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A", "B"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		questionResponse("B", "Synchronous fetch"),
		decisionResponse("suggest_hint", map[string]any{"hintText": "Try again."}),
		questionResponse("B", "Late suggestion question"),
	)
	ctx := context.Background()

	var deferred func()
	o.spawn = func(f func()) { deferred = f }

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.SubmitAnswer(ctx, "5"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := o.ConfirmEvaluation(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	// The user has moved on to the next question; the straggling
	// suggestion must not shove a second question in front of it.
	deferred()
	st := o.State()
	if st.PendingHintSuggestion != nil {
		t.Errorf("stale suggestion installed: %+v", st.PendingHintSuggestion)
	}
	if st.CurrentQuestion == nil || st.CurrentQuestion.Question != "Synchronous fetch" {
		t.Errorf("current question = %+v", st.CurrentQuestion)
	}
}

func TestLateEndOfferAfterConfirmIsDropped(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A", "B"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		questionResponse("B", "Synchronous fetch"),
		decisionResponse("end_session", map[string]any{"sessionSummary": "Done?"}),
	)
	ctx := context.Background()

	var deferred func()
	o.spawn = func(f func()) { deferred = f }

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.SubmitAnswer(ctx, "4"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := o.ConfirmEvaluation(ctx); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	deferred()
	st := o.State()
	if st.PendingSessionEnd != nil {
		t.Errorf("stale end offer installed: %+v", st.PendingSessionEnd)
	}
	if !st.Active {
		t.Error("session deactivated by stale decision")
	}
}

func TestMasteryOverridesContinueDecision(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A", "B"}, Hooks{},
		decisionResponse("continue_session", nil),
	)
	ctx := context.Background()

	// Session mid-flight with both topics at the threshold once the next
	// correct answer lands.
	now := time.Now()
	o.state = &State{
		SessionID: "s-test",
		Active:    true,
		Topics:    []string{"A", "B"},
		Mastery: []mastery.TopicMastery{
			{Topic: "A", Level: 88, QuestionsAnswered: 4, QuestionsCorrect: 4, LastAsked: &now},
			{Topic: "B", Level: 100, QuestionsAnswered: 5, QuestionsCorrect: 5, LastAsked: &now},
		},
		CurrentQuestion: &tutor.StudyQuestion{
			ID:            "q-a",
			Type:          tutor.TypeMultipleChoice,
			Topic:         "A",
			Question:      "What is 2+2?",
			Options:       []tutor.AnswerOption{{Text: "4", Explanation: "yes"}},
			CorrectAnswer: "4",
		},
	}

	if err := o.SubmitAnswer(ctx, "4"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	st := o.State()
	if st.PendingSessionEnd == nil {
		t.Fatal("expected session-end offer instead of continuing")
	}
	if st.PendingSessionEnd.SessionSummary == "" {
		t.Error("synthesized summary is empty")
	}
	if st.View() != ViewSessionEnd {
		t.Errorf("view = %v, want session end", st.View())
	}
}

func TestDeclinedEndSuppressesOverride(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A"}, Hooks{},
		decisionResponse("continue_session", nil),
		questionResponse("A", "One more"),
	)
	ctx := context.Background()

	now := time.Now()
	o.state = &State{
		SessionID: "s-test",
		Active:    true,
		Topics:    []string{"A"},
		Mastery: []mastery.TopicMastery{
			{Topic: "A", Level: 100, QuestionsAnswered: 6, QuestionsCorrect: 6, LastAsked: &now},
		},
		CurrentQuestion: &tutor.StudyQuestion{
			ID:            "q-a",
			Type:          tutor.TypeMultipleChoice,
			Topic:         "A",
			Question:      "What is 2+2?",
			Options:       []tutor.AnswerOption{{Text: "4", Explanation: "yes"}},
			CorrectAnswer: "4",
		},
		UserDeclinedSessionEnd: true,
	}

	if err := o.SubmitAnswer(ctx, "4"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	st := o.State()
	if st.PendingSessionEnd != nil {
		t.Error("override fired after the user declined ending")
	}
	if st.PendingEvaluation == nil || st.PendingEvaluation.NextQuestion == nil {
		t.Error("expected a preloaded next question instead")
	}
}

func TestHintSuggestionFlow(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A", "B"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		decisionResponse("suggest_hint", map[string]any{"hintText": "Count on your fingers."}),
		questionResponse("B", "Harder one"),
	)
	ctx := context.Background()

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.SubmitAnswer(ctx, "5"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	st := o.State()
	hs := st.PendingHintSuggestion
	if hs == nil {
		t.Fatal("no pending hint suggestion")
	}
	if hs.Hint != "Count on your fingers." || hs.NextQuestion == nil {
		t.Errorf("suggestion = %+v", hs)
	}
	if st.View() != ViewHintSuggestion {
		t.Errorf("view = %v, want hint suggestion", st.View())
	}

	if err := o.AcceptHintSuggestion(); err != nil {
		t.Fatalf("accept suggestion: %v", err)
	}
	st = o.State()
	if st.CurrentQuestion == nil || st.CurrentQuestion.Hint != "Count on your fingers." {
		t.Errorf("current question = %+v, want hint attached", st.CurrentQuestion)
	}
	if st.PendingHintSuggestion != nil {
		t.Error("suggestion not cleared")
	}
}

func TestRejectHintSuggestionDropsHint(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A", "B"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		decisionResponse("suggest_hint", map[string]any{"hintText": "Count on your fingers."}),
		questionResponse("B", "Harder one"),
	)
	ctx := context.Background()

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.SubmitAnswer(ctx, "5"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := o.RejectHintSuggestion(); err != nil {
		t.Fatalf("reject suggestion: %v", err)
	}

	st := o.State()
	if st.CurrentQuestion == nil || st.CurrentQuestion.Hint != "" {
		t.Errorf("current question = %+v, want no hint", st.CurrentQuestion)
	}
}

func TestSessionEndDecision(t *testing.T) {
	var endedSummary string
	hooks := Hooks{OnEnd: func(_ State, summary string) { endedSummary = summary }}

	o, _ := newTestOrchestrator([]string{"A"}, hooks,
		questionResponse("A", "What is 2+2?"),
		decisionResponse("end_session", map[string]any{"sessionSummary": "Nice run."}),
	)
	ctx := context.Background()

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.SubmitAnswer(ctx, "4"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	st := o.State()
	if st.PendingSessionEnd == nil || st.PendingSessionEnd.SessionSummary != "Nice run." {
		t.Fatalf("pending end = %+v", st.PendingSessionEnd)
	}

	if err := o.AcceptSessionEnd(); err != nil {
		t.Fatalf("accept end: %v", err)
	}
	st = o.State()
	if st.Active {
		t.Error("active = true after accepting end")
	}
	if endedSummary != "Nice run." {
		t.Errorf("OnEnd summary = %q", endedSummary)
	}
}

func TestRejectSessionEndFetchesNextQuestion(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		decisionResponse("end_session", map[string]any{"sessionSummary": "Done?"}),
		questionResponse("A", "Another one"),
	)
	ctx := context.Background()

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.SubmitAnswer(ctx, "4"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := o.RejectSessionEnd(ctx); err != nil {
		t.Fatalf("reject end: %v", err)
	}

	st := o.State()
	if !st.UserDeclinedSessionEnd {
		t.Error("declined flag not set")
	}
	if st.CurrentQuestion == nil || st.CurrentQuestion.Question != "Another one" {
		t.Errorf("current question = %+v", st.CurrentQuestion)
	}
	if st.PendingSessionEnd != nil {
		t.Error("pending end not cleared")
	}
}

func TestConfirmEndsSessionWhenAllMastered(t *testing.T) {
	var ended bool
	hooks := Hooks{OnEnd: func(_ State, _ string) { ended = true }}
	o, _ := newTestOrchestrator([]string{"A"}, hooks)

	o.state = &State{
		SessionID: "s-test",
		Active:    true,
		Topics:    []string{"A"},
		Mastery: []mastery.TopicMastery{
			{Topic: "A", Level: 100, QuestionsAnswered: 5, QuestionsCorrect: 5},
		},
		PendingEvaluation: &PendingEvaluation{
			Question:   tutor.StudyQuestion{ID: "q-a", Topic: "A"},
			Evaluation: tutor.Evaluation{IsCorrect: true},
		},
	}

	if err := o.ConfirmEvaluation(context.Background()); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	st := o.State()
	if st.Active {
		t.Error("active = true, want session ended")
	}
	if !ended {
		t.Error("OnEnd hook not fired")
	}
}

func TestRequestHintProvided(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		agent.ToolCallResponse("provide_hint", map[string]any{
			"hint":      "Think pairs.",
			"reasoning": "stuck",
		}),
	)
	ctx := context.Background()

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.RequestHint(ctx); err != nil {
		t.Fatalf("request hint: %v", err)
	}

	st := o.State()
	if st.PendingHint == nil || st.PendingHint.Hint != "Think pairs." {
		t.Fatalf("pending hint = %+v", st.PendingHint)
	}
	if st.View() != ViewHint {
		t.Errorf("view = %v, want hint", st.View())
	}

	if err := o.AcceptHint(); err != nil {
		t.Fatalf("accept hint: %v", err)
	}
	st = o.State()
	if st.CurrentQuestion.Hint != "Think pairs." {
		t.Errorf("hint = %q, want attached", st.CurrentQuestion.Hint)
	}
	if st.PendingHint != nil {
		t.Error("pending hint not cleared")
	}
}

func TestRequestHintDeclined(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		agent.MockResponse{Content: "REASONING: foo\nMESSAGE: bar"},
	)
	ctx := context.Background()

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.RequestHint(ctx); err != nil {
		t.Fatalf("request hint: %v", err)
	}

	st := o.State()
	if st.PendingHint != nil {
		t.Error("decline produced a pending hint")
	}
	if o.Notice() != "bar" {
		t.Errorf("notice = %q, want %q", o.Notice(), "bar")
	}
	if st.CurrentQuestion == nil {
		t.Error("current question lost on decline")
	}
}

func TestRejectHintKeepsQuestion(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		agent.ToolCallResponse("provide_hint", map[string]any{
			"hint":      "Think pairs.",
			"reasoning": "stuck",
		}),
	)
	ctx := context.Background()

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.RequestHint(ctx); err != nil {
		t.Fatalf("request hint: %v", err)
	}
	if err := o.RejectHint(); err != nil {
		t.Fatalf("reject hint: %v", err)
	}

	st := o.State()
	if st.PendingHint != nil {
		t.Error("pending hint not cleared")
	}
	if st.CurrentQuestion == nil || st.CurrentQuestion.Hint != "" {
		t.Errorf("current question = %+v, want unchanged", st.CurrentQuestion)
	}
}

func TestEndDiscardsStaleDecision(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
		decisionResponse("end_session", map[string]any{"sessionSummary": "stale"}),
	)
	ctx := context.Background()

	var deferred func()
	o.spawn = func(f func()) { deferred = f }

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.SubmitAnswer(ctx, "4"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Session ends before the decision step runs.
	o.End()
	deferred()

	st := o.State()
	if st.Active {
		t.Error("active = true after End")
	}
	if st.PendingSessionEnd != nil {
		t.Error("stale decision mutated an ended session")
	}
	if o.Err() != "" {
		t.Errorf("stale decision surfaced error %q", o.Err())
	}
}

func TestEvaluationFailureLeavesQuestionActive(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A"}, Hooks{},
		agent.ToolCallResponse("get_next_study_step", map[string]any{
			"questionType":  "short-answer",
			"topic":         "A",
			"difficulty":    "easy",
			"question":      "Define a limit.",
			"correctAnswer": "n/a",
			"reasoning":     "open question",
		}),
		agent.MockResponse{Err: &agent.ErrService{Status: 500, Body: "boom"}},
	)
	ctx := context.Background()

	if err := o.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := o.SubmitAnswer(ctx, "whatever"); err == nil {
		t.Fatal("expected error")
	}

	st := o.State()
	if st.CurrentQuestion == nil {
		t.Error("question lost after failed evaluation")
	}
	if st.PendingEvaluation != nil {
		t.Error("partial evaluation state left behind")
	}
	if o.Err() == "" {
		t.Error("error message not surfaced")
	}
	if o.Loading() {
		t.Error("loading stuck at true")
	}
}

func TestStateSnapshotsAreIsolated(t *testing.T) {
	o, _ := newTestOrchestrator([]string{"A"}, Hooks{},
		questionResponse("A", "What is 2+2?"),
	)

	if err := o.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	snap := o.State()
	snap.CurrentQuestion.Hint = "tampered"
	snap.Mastery[0].Level = 99

	st := o.State()
	if st.CurrentQuestion.Hint != "" {
		t.Error("snapshot mutation leaked into orchestrator state")
	}
	if st.Mastery[0].Level != 0 {
		t.Error("mastery mutation leaked into orchestrator state")
	}
}
