package tutor

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/avikram/studyloop/internal/agent"
)

func TestParseNextStep(t *testing.T) {
	tc := &agent.ToolCall{
		Name: NextStepTool.Name,
		Arguments: json.RawMessage(`{
			"questionType": "multiple-choice",
			"topic": "photosynthesis",
			"difficulty": "easy",
			"question": "Where does photosynthesis take place?",
			"options": [
				{"text": "Chloroplast", "explanation": "Right, chlorophyll lives here."},
				{"text": "Mitochondria", "explanation": "That is where respiration happens."},
				{"text": "Nucleus", "explanation": "The nucleus stores DNA."}
			],
			"correctAnswer": "Chloroplast",
			"reasoning": "Lowest mastery topic, easy band."
		}`),
	}

	q, reasoning, err := parseNextStep(tc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != TypeMultipleChoice {
		t.Errorf("type = %q", q.Type)
	}
	if q.Topic != "photosynthesis" {
		t.Errorf("topic = %q", q.Topic)
	}
	if len(q.Options) != 3 {
		t.Errorf("options = %d, want 3", len(q.Options))
	}
	if q.CorrectAnswer != "Chloroplast" {
		t.Errorf("correctAnswer = %q", q.CorrectAnswer)
	}
	if q.ID == "" {
		t.Error("question id is empty")
	}
	if reasoning == "" {
		t.Error("reasoning is empty")
	}
}

func TestParseNextStep_BadArgs(t *testing.T) {
	tc := &agent.ToolCall{
		Name:      NextStepTool.Name,
		Arguments: json.RawMessage(`{"questionType": "essay"}`),
	}
	_, _, err := parseNextStep(tc)
	var invErr *agent.ErrInvalidToolCall
	if !errors.As(err, &invErr) {
		t.Fatalf("error type = %T, want *agent.ErrInvalidToolCall", err)
	}
}

func TestParseEvaluation_StringBool(t *testing.T) {
	tc := &agent.ToolCall{
		Name: EvaluateTool.Name,
		Arguments: json.RawMessage(`{
			"isCorrect": "true",
			"explanation": "Spot on.",
			"masteryUpdates": [{"topic": "algebra", "newLevel": 60, "reasoning": "steady progress"}],
			"recommendation": "continue"
		}`),
	}
	eval, err := parseEvaluation(tc, "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eval.IsCorrect {
		t.Error("isCorrect = false, want true")
	}
	if len(eval.Updates) != 1 || eval.Updates[0].NewLevel != 60 {
		t.Errorf("updates = %+v", eval.Updates)
	}
	if eval.QuestionID != "q-1" {
		t.Errorf("questionID = %q", eval.QuestionID)
	}
}

func TestParseEvaluation_NativeBoolCoerced(t *testing.T) {
	tc := &agent.ToolCall{
		Name: EvaluateTool.Name,
		Arguments: json.RawMessage(`{
			"isCorrect": true,
			"explanation": "ok",
			"masteryUpdates": [],
			"recommendation": "continue"
		}`),
	}
	eval, err := parseEvaluation(tc, "q-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eval.IsCorrect {
		t.Error("native boolean true not coerced")
	}
}

func TestParseEvaluation_OtherValuesAreFalse(t *testing.T) {
	for _, v := range []string{`"false"`, `"yes"`, `"TRUE"`, `false`, `1`, `null`} {
		tc := &agent.ToolCall{
			Name: EvaluateTool.Name,
			Arguments: json.RawMessage(`{
				"isCorrect": ` + v + `,
				"explanation": "ok",
				"masteryUpdates": [],
				"recommendation": "continue"
			}`),
		}
		eval, err := parseEvaluation(tc, "q-1")
		if err != nil {
			t.Fatalf("isCorrect=%s: unexpected error: %v", v, err)
		}
		if eval.IsCorrect {
			t.Errorf("isCorrect=%s coerced to true, want false", v)
		}
	}
}

func TestParseHintResponse_ToolCall(t *testing.T) {
	resp := &agent.Response{
		ToolCall: &agent.ToolCall{
			Name:      HintTool.Name,
			Arguments: json.RawMessage(`{"hint": "Think smaller.", "reasoning": "two wrong attempts"}`),
		},
	}
	outcome, err := parseHintResponse(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Hint == nil || outcome.Hint.Hint != "Think smaller." {
		t.Errorf("outcome = %+v", outcome)
	}
}

func TestParseHintResponse_Decline(t *testing.T) {
	resp := &agent.Response{Content: "REASONING: foo\nMESSAGE: bar"}
	outcome, err := parseHintResponse(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Hint != nil {
		t.Error("expected no hint")
	}
	if outcome.Message != "bar" {
		t.Errorf("message = %q, want %q", outcome.Message, "bar")
	}
}

func TestParseHintResponse_DeclineFallback(t *testing.T) {
	resp := &agent.Response{Content: "You should just try again!"}
	outcome, err := parseHintResponse(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Message != DefaultDeclineMessage {
		t.Errorf("message = %q, want fallback", outcome.Message)
	}
}

func TestParseDecision(t *testing.T) {
	tc := &agent.ToolCall{
		Name: DecideTool.Name,
		Arguments: json.RawMessage(`{
			"action": "suggest_hint",
			"reasoning": "struggling on geometry",
			"hintText": "Recall the angle sum rule."
		}`),
	}
	d, err := parseDecision(tc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Action != ActionSuggestHint {
		t.Errorf("action = %q", d.Action)
	}
	if d.HintText == "" {
		t.Error("hintText is empty")
	}
}

func TestNormalizeIsCorrect_LeavesStringsAlone(t *testing.T) {
	raw := json.RawMessage(`{"isCorrect":"true","explanation":"x"}`)
	got := normalizeIsCorrect(raw)
	var m map[string]any
	if err := json.Unmarshal(got, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["isCorrect"] != "true" {
		t.Errorf("isCorrect = %v", m["isCorrect"])
	}
}
