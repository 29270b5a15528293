package tutor

import (
	"fmt"
	"strings"

	"github.com/avikram/studyloop/internal/agent"
	"github.com/avikram/studyloop/internal/mastery"
)

const systemPrompt = `You are an adaptive study tutor running a practice session over the learner's own notes.

Rules:
- Work only within the session's topic list. Never invent topics.
- Match question difficulty to the topic's mastery level: easy up to 40, medium up to 70, hard above.
- Never ask about the same topic as the immediately preceding question. Prefer topics with low mastery.
- Multiple-choice questions need 3-5 options with exactly one correct answer. Do not prefix options with labels like "A)" or "B)".
- For option questions, correctAnswer must equal one option's text verbatim.
- True-false questions use exactly the two options "True" and "False".
- Evaluations must be honest. Do not mark a wrong answer correct to be encouraging.
- Hints guide the learner toward the answer; they never reveal it.
- Keep all text concise and in plain language.`

// maxAskedQuestions caps the dedup list included in prompts.
const maxAskedQuestions = 15

// maxRecentResults caps the evaluation summaries included in prompts.
const maxRecentResults = 8

// buildMasteryTable renders the per-topic mastery table shared by all
// prompt builders.
func buildMasteryTable(levels []mastery.TopicMastery) string {
	if len(levels) == 0 {
		return "No mastery data yet.\n"
	}
	var b strings.Builder
	for _, m := range levels {
		fmt.Fprintf(&b, "- %s: level %d/100 (%d/%d correct, suggested difficulty %s)\n",
			m.Topic, m.Level, m.QuestionsCorrect, m.QuestionsAnswered, mastery.DifficultyFor(m.Level))
	}
	return b.String()
}

func writeSessionContext(b *strings.Builder, sc SessionContext) {
	b.WriteString("Session topics: ")
	b.WriteString(strings.Join(sc.Topics, ", "))
	b.WriteString("\n\nCurrent mastery:\n")
	b.WriteString(buildMasteryTable(sc.Mastery))

	if sc.LastTopic != "" {
		fmt.Fprintf(b, "\nThe previous question was about %q. Do not repeat that topic now.\n", sc.LastTopic)
	}

	if len(sc.AskedQuestions) > 0 {
		b.WriteString("\nAlready asked in this session:\n")
		asked := sc.AskedQuestions
		if len(asked) > maxAskedQuestions {
			asked = asked[len(asked)-maxAskedQuestions:]
		}
		for i, q := range asked {
			fmt.Fprintf(b, "%d. %s\n", i+1, q)
		}
	}
}

// BuildNextQuestionMessages builds the get_next_study_step request.
func BuildNextQuestionMessages(sc SessionContext) agent.Request {
	var b strings.Builder
	writeSessionContext(&b, sc)
	b.WriteString("\nGenerate the next study question by calling get_next_study_step.")

	return agent.Request{
		System:     systemPrompt,
		Messages:   []agent.Message{{Role: agent.RoleUser, Content: b.String()}},
		Tools:      []agent.Tool{NextStepTool},
		ToolChoice: agent.ChooseFunction(NextStepTool.Name),
	}
}

// BuildEvaluationMessages builds the evaluate_study_response request for
// a free-form answer.
func BuildEvaluationMessages(sc SessionContext, q StudyQuestion, answer string) agent.Request {
	var b strings.Builder
	writeSessionContext(&b, sc)

	fmt.Fprintf(&b, "\nQuestion (%s, topic %q, difficulty %s):\n%s\n", q.Type, q.Topic, q.Difficulty, q.Question)
	if q.CorrectAnswer != "" {
		fmt.Fprintf(&b, "\nModel answer: %s\n", q.CorrectAnswer)
	}
	fmt.Fprintf(&b, "\nLearner's answer: %s\n", answer)
	b.WriteString("\nEvaluate the answer by calling evaluate_study_response.")

	return agent.Request{
		System:     systemPrompt,
		Messages:   []agent.Message{{Role: agent.RoleUser, Content: b.String()}},
		Tools:      []agent.Tool{EvaluateTool},
		ToolChoice: agent.ChooseFunction(EvaluateTool.Name),
	}
}

// BuildHintMessages builds the provide_hint request. Tool choice is
// auto: declining with a free-text message is a valid outcome, in the
// form "REASONING: ...\nMESSAGE: ...".
func BuildHintMessages(sc SessionContext, q StudyQuestion) agent.Request {
	var b strings.Builder
	writeSessionContext(&b, sc)

	fmt.Fprintf(&b, "\nThe learner asks for a hint on this question (topic %q):\n%s\n", q.Topic, q.Question)
	b.WriteString("\nIf a hint would genuinely help, call provide_hint. " +
		"If the learner should try again unaided, reply instead with two lines:\n" +
		"REASONING: <why you are declining>\nMESSAGE: <a short encouraging message>")

	return agent.Request{
		System:     systemPrompt,
		Messages:   []agent.Message{{Role: agent.RoleUser, Content: b.String()}},
		Tools:      []agent.Tool{HintTool},
		ToolChoice: agent.ChooseAuto(),
	}
}

// BuildDecisionMessages builds the decide_next_action request issued
// after every evaluation.
func BuildDecisionMessages(sc SessionContext, q StudyQuestion, eval Evaluation) agent.Request {
	var b strings.Builder
	writeSessionContext(&b, sc)

	verdict := "incorrect"
	if eval.IsCorrect {
		verdict = "correct"
	}
	fmt.Fprintf(&b, "\nThe learner just answered a %s question on %q %sly.\n", q.Type, q.Topic, verdict)
	fmt.Fprintf(&b, "Questions answered so far: %d\n", sc.QuestionsAnswered)

	if len(sc.RecentResults) > 0 {
		b.WriteString("\nRecent results:\n")
		results := sc.RecentResults
		if len(results) > maxRecentResults {
			results = results[len(results)-maxRecentResults:]
		}
		for _, r := range results {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}

	if sc.UserDeclinedEnd {
		b.WriteString("\nThe learner has declined to end the session before. Do not choose end_session again unless performance clearly collapses.\n")
	}

	b.WriteString("\nDecide what happens next by calling decide_next_action: " +
		"continue_session to keep going, suggest_hint if the learner is struggling and the next question should come with a hint, " +
		"or end_session if mastery goals are met or fatigue is showing.")

	return agent.Request{
		System:     systemPrompt,
		Messages:   []agent.Message{{Role: agent.RoleUser, Content: b.String()}},
		Tools:      []agent.Tool{DecideTool},
		ToolChoice: agent.ChooseRequired(),
	}
}

// serializeRequest builds a readable representation of a request for the
// action log.
func serializeRequest(req agent.Request) string {
	var b strings.Builder
	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	return b.String()
}
