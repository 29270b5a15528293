package tutor

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/avikram/studyloop/internal/agent"
	"github.com/avikram/studyloop/internal/mastery"
)

// DefaultDeclineMessage is used when the agent declines a hint but its
// free-text reply does not match the expected format.
const DefaultDeclineMessage = "No hint this time. Trust what you know and give it another try."

// declinePattern extracts the reasoning and message lines from a
// free-text hint decline. Best effort: format drift falls back to
// DefaultDeclineMessage.
var declinePattern = regexp.MustCompile(`(?s)REASONING:\s*(.+?)\s*MESSAGE:\s*(.+)`)

type nextStepArgs struct {
	QuestionType  string         `json:"questionType"`
	Topic         string         `json:"topic"`
	Difficulty    string         `json:"difficulty"`
	Question      string         `json:"question"`
	Options       []AnswerOption `json:"options"`
	CorrectAnswer string         `json:"correctAnswer"`
	Reasoning     string         `json:"reasoning"`
}

type masteryUpdateArgs struct {
	Topic     string  `json:"topic"`
	NewLevel  float64 `json:"newLevel"`
	Reasoning string  `json:"reasoning"`
}

type evaluateArgs struct {
	IsCorrect      string              `json:"isCorrect"`
	Explanation    string              `json:"explanation"`
	CorrectAnswer  string              `json:"correctAnswer"`
	MasteryUpdates []masteryUpdateArgs `json:"masteryUpdates"`
	Recommendation string              `json:"recommendation"`
}

type hintArgs struct {
	Hint      string `json:"hint"`
	Reasoning string `json:"reasoning"`
}

type decideArgs struct {
	Action         string `json:"action"`
	Reasoning      string `json:"reasoning"`
	HintText       string `json:"hintText"`
	SessionSummary string `json:"sessionSummary"`
}

// parseNextStep decodes a get_next_study_step tool call into a question.
func parseNextStep(tc *agent.ToolCall) (*StudyQuestion, string, error) {
	var args nextStepArgs
	if err := agent.DecodeArgs(NextStepTool, tc.Arguments, &args); err != nil {
		return nil, "", err
	}

	q := &StudyQuestion{
		ID:            newQuestionID(),
		Type:          QuestionType(args.QuestionType),
		Topic:         args.Topic,
		Difficulty:    mastery.Difficulty(args.Difficulty),
		Question:      args.Question,
		CorrectAnswer: args.CorrectAnswer,
	}
	if q.Type.closedForm() {
		q.Options = args.Options
	}
	return q, args.Reasoning, nil
}

// parseEvaluation decodes an evaluate_study_response tool call.
func parseEvaluation(tc *agent.ToolCall, questionID string) (*Evaluation, error) {
	var args evaluateArgs
	if err := agent.DecodeArgs(EvaluateTool, normalizeIsCorrect(tc.Arguments), &args); err != nil {
		return nil, err
	}

	updates := make([]mastery.Update, len(args.MasteryUpdates))
	for i, u := range args.MasteryUpdates {
		updates[i] = mastery.Update{Topic: u.Topic, NewLevel: u.NewLevel, Reasoning: u.Reasoning}
	}

	return &Evaluation{
		QuestionID:     questionID,
		IsCorrect:      coerceBool(args.IsCorrect),
		Explanation:    args.Explanation,
		CorrectAnswer:  args.CorrectAnswer,
		Updates:        updates,
		Recommendation: args.Recommendation,
	}, nil
}

// normalizeIsCorrect canonicalizes isCorrect to the string enum the
// tool schema declares: boolean true and "true" map to "true", any
// other value maps to "false". Backends emit real booleans or stray
// strings here; neither should fail the whole evaluation.
func normalizeIsCorrect(raw json.RawMessage) json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return raw
	}
	v, ok := fields["isCorrect"]
	if !ok {
		return raw
	}

	canonical := `"false"`
	switch strings.TrimSpace(string(v)) {
	case "true", `"true"`:
		canonical = `"true"`
	}
	if strings.TrimSpace(string(v)) == canonical {
		return raw
	}

	fields["isCorrect"] = json.RawMessage(canonical)
	out, err := json.Marshal(fields)
	if err != nil {
		return raw
	}
	return out
}

// coerceBool maps "true" to true and everything else to false.
func coerceBool(s string) bool {
	return s == "true"
}

// parseHintResponse handles both hint outcomes: a provide_hint tool call,
// or a free-text decline.
func parseHintResponse(resp *agent.Response) (*HintOutcome, error) {
	if resp.ToolCall != nil {
		var args hintArgs
		if err := agent.DecodeArgs(HintTool, resp.ToolCall.Arguments, &args); err != nil {
			return nil, err
		}
		return &HintOutcome{Hint: &HintPayload{Hint: args.Hint, Reasoning: args.Reasoning}}, nil
	}

	if m := declinePattern.FindStringSubmatch(resp.Content); m != nil {
		return &HintOutcome{Message: strings.TrimSpace(m[2])}, nil
	}
	return &HintOutcome{Message: DefaultDeclineMessage}, nil
}

// parseDecision decodes a decide_next_action tool call.
func parseDecision(tc *agent.ToolCall) (*Decision, error) {
	var args decideArgs
	if err := agent.DecodeArgs(DecideTool, tc.Arguments, &args); err != nil {
		return nil, err
	}
	return &Decision{
		Action:         Action(args.Action),
		Reasoning:      args.Reasoning,
		HintText:       args.HintText,
		SessionSummary: args.SessionSummary,
	}, nil
}
