package tutor

import "github.com/avikram/studyloop/internal/agent"

// NextStepTool asks the agent for the next study question.
var NextStepTool = agent.Tool{
	Name:        "get_next_study_step",
	Description: "Produce the next study question for the session, matched to the learner's current mastery",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questionType": map[string]any{
				"type":        "string",
				"enum":        []any{"multiple-choice", "true-false", "short-answer", "flashcard"},
				"description": "The kind of question to ask",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "The session topic this question covers. Never the topic of the immediately preceding question.",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Difficulty band matched to the topic's mastery level",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question text shown to the learner. No A)/B)/C) labels.",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":        map[string]any{"type": "string"},
						"explanation": map[string]any{"type": "string", "description": "Why this option is right or wrong"},
					},
					"required":             []any{"text", "explanation"},
					"additionalProperties": false,
				},
				"description": "Options for multiple-choice (exactly one correct) and true-false. Omit for other types.",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"description": "The correct answer. For option questions it must equal one option's text verbatim.",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Why this question, topic and difficulty were chosen",
			},
		},
		"required":             []any{"questionType", "topic", "difficulty", "question", "correctAnswer", "reasoning"},
		"additionalProperties": false,
	},
}

// EvaluateTool asks the agent to grade a free-form answer.
var EvaluateTool = agent.Tool{
	Name:        "evaluate_study_response",
	Description: "Evaluate the learner's answer to the current question and propose mastery updates",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			// String enum rather than boolean: some agent backends cannot
			// reliably emit native booleans through tool-call JSON.
			"isCorrect": map[string]any{
				"type": "string",
				"enum": []any{"true", "false"},
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Feedback explaining why the answer is right or wrong",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"description": "The correct answer, when the learner's was wrong",
			},
			"masteryUpdates": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"topic":     map[string]any{"type": "string"},
						"newLevel":  map[string]any{"type": "number", "minimum": 0, "maximum": 100},
						"reasoning": map[string]any{"type": "string"},
					},
					"required":             []any{"topic", "newLevel", "reasoning"},
					"additionalProperties": false,
				},
			},
			"recommendation": map[string]any{
				"type":        "string",
				"description": "Short guidance on what the learner should focus on next",
			},
		},
		"required":             []any{"isCorrect", "explanation", "masteryUpdates", "recommendation"},
		"additionalProperties": false,
	},
}

// HintTool lets the agent provide a hint. Offered with auto tool
// choice: the agent may decline by answering in free text instead.
var HintTool = agent.Tool{
	Name:        "provide_hint",
	Description: "Provide a hint for the current question, if a hint would genuinely help",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "A hint that guides without revealing the answer",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Why this hint was chosen",
			},
		},
		"required":             []any{"hint", "reasoning"},
		"additionalProperties": false,
	},
}

// DecideTool asks the agent what the session should do next. Always
// forced: the orchestrator cannot proceed without a decision.
var DecideTool = agent.Tool{
	Name:        "decide_next_action",
	Description: "Decide whether the session should continue, offer a hint, or end",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"action": map[string]any{
				"type": "string",
				"enum": []any{"continue_session", "suggest_hint", "end_session"},
			},
			"reasoning": map[string]any{
				"type": "string",
			},
			"hintText": map[string]any{
				"type":        "string",
				"description": "The hint to offer, when action is suggest_hint",
			},
			"sessionSummary": map[string]any{
				"type":        "string",
				"description": "A summary of the session, when action is end_session",
			},
		},
		"required":             []any{"action", "reasoning"},
		"additionalProperties": false,
	},
}
