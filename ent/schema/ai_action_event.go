package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AIActionEvent records a single agent interaction for audit and debugging.
// One row per tool-calling request, regardless of outcome.
type AIActionEvent struct {
	ent.Schema
}

func (AIActionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AIActionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the study session"),
		field.String("dashboard_id").
			Default("").
			Comment("External dashboard reference, empty if none"),
		field.String("action_type").
			NotEmpty().
			Comment("get_next_step, evaluate_response, provide_hint, decide_next_action"),
		field.Text("request_messages").
			Default("").
			Comment("Serialized prompt messages sent to the agent"),
		field.Text("response_data").
			Default("").
			Comment("Raw agent response content"),
		field.Text("tool_call_data").
			Default("").
			Comment("Parsed tool-call arguments as JSON"),
		field.Text("reasoning").
			Default("").
			Comment("Agent-supplied reasoning, if any"),
		field.String("question_id").
			Default("").
			Comment("Question the action relates to, empty if none"),
		field.String("topic").
			Default(""),
		field.Int("mastery_level").
			Default(0).
			Comment("Topic mastery level at the time of the action"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Wall-clock time for the agent call"),
	}
}

func (AIActionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("dashboard_id"),
		index.Fields("action_type"),
	}
}
