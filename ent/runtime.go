// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avikram/studyloop/ent/aiactionevent"
	"github.com/avikram/studyloop/ent/schema"
	"github.com/avikram/studyloop/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aiactioneventMixin := schema.AIActionEvent{}.Mixin()
	aiactioneventMixinFields0 := aiactioneventMixin[0].Fields()
	_ = aiactioneventMixinFields0
	aiactioneventFields := schema.AIActionEvent{}.Fields()
	_ = aiactioneventFields
	// aiactioneventDescTimestamp is the schema descriptor for timestamp field.
	aiactioneventDescTimestamp := aiactioneventMixinFields0[1].Descriptor()
	// aiactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	aiactionevent.DefaultTimestamp = aiactioneventDescTimestamp.Default.(func() time.Time)
	// aiactioneventDescSessionID is the schema descriptor for session_id field.
	aiactioneventDescSessionID := aiactioneventFields[0].Descriptor()
	// aiactionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	aiactionevent.SessionIDValidator = aiactioneventDescSessionID.Validators[0].(func(string) error)
	// aiactioneventDescDashboardID is the schema descriptor for dashboard_id field.
	aiactioneventDescDashboardID := aiactioneventFields[1].Descriptor()
	// aiactionevent.DefaultDashboardID holds the default value on creation for the dashboard_id field.
	aiactionevent.DefaultDashboardID = aiactioneventDescDashboardID.Default.(string)
	// aiactioneventDescActionType is the schema descriptor for action_type field.
	aiactioneventDescActionType := aiactioneventFields[2].Descriptor()
	// aiactionevent.ActionTypeValidator is a validator for the "action_type" field. It is called by the builders before save.
	aiactionevent.ActionTypeValidator = aiactioneventDescActionType.Validators[0].(func(string) error)
	// aiactioneventDescRequestMessages is the schema descriptor for request_messages field.
	aiactioneventDescRequestMessages := aiactioneventFields[3].Descriptor()
	// aiactionevent.DefaultRequestMessages holds the default value on creation for the request_messages field.
	aiactionevent.DefaultRequestMessages = aiactioneventDescRequestMessages.Default.(string)
	// aiactioneventDescResponseData is the schema descriptor for response_data field.
	aiactioneventDescResponseData := aiactioneventFields[4].Descriptor()
	// aiactionevent.DefaultResponseData holds the default value on creation for the response_data field.
	aiactionevent.DefaultResponseData = aiactioneventDescResponseData.Default.(string)
	// aiactioneventDescToolCallData is the schema descriptor for tool_call_data field.
	aiactioneventDescToolCallData := aiactioneventFields[5].Descriptor()
	// aiactionevent.DefaultToolCallData holds the default value on creation for the tool_call_data field.
	aiactionevent.DefaultToolCallData = aiactioneventDescToolCallData.Default.(string)
	// aiactioneventDescReasoning is the schema descriptor for reasoning field.
	aiactioneventDescReasoning := aiactioneventFields[6].Descriptor()
	// aiactionevent.DefaultReasoning holds the default value on creation for the reasoning field.
	aiactionevent.DefaultReasoning = aiactioneventDescReasoning.Default.(string)
	// aiactioneventDescQuestionID is the schema descriptor for question_id field.
	aiactioneventDescQuestionID := aiactioneventFields[7].Descriptor()
	// aiactionevent.DefaultQuestionID holds the default value on creation for the question_id field.
	aiactionevent.DefaultQuestionID = aiactioneventDescQuestionID.Default.(string)
	// aiactioneventDescTopic is the schema descriptor for topic field.
	aiactioneventDescTopic := aiactioneventFields[8].Descriptor()
	// aiactionevent.DefaultTopic holds the default value on creation for the topic field.
	aiactionevent.DefaultTopic = aiactioneventDescTopic.Default.(string)
	// aiactioneventDescMasteryLevel is the schema descriptor for mastery_level field.
	aiactioneventDescMasteryLevel := aiactioneventFields[9].Descriptor()
	// aiactionevent.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	aiactionevent.DefaultMasteryLevel = aiactioneventDescMasteryLevel.Default.(int)
	// aiactioneventDescDurationMs is the schema descriptor for duration_ms field.
	aiactioneventDescDurationMs := aiactioneventFields[10].Descriptor()
	// aiactionevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	aiactionevent.DefaultDurationMs = aiactioneventDescDurationMs.Default.(int64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescSummary is the schema descriptor for summary field.
	sessioneventDescSummary := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultSummary holds the default value on creation for the summary field.
	sessionevent.DefaultSummary = sessioneventDescSummary.Default.(string)
}
