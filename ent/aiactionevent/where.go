// Code generated by ent, DO NOT EDIT.

package aiactionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/avikram/studyloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldSessionID, v))
}

// DashboardID applies equality check predicate on the "dashboard_id" field. It's identical to DashboardIDEQ.
func DashboardID(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldDashboardID, v))
}

// ActionType applies equality check predicate on the "action_type" field. It's identical to ActionTypeEQ.
func ActionType(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldActionType, v))
}

// RequestMessages applies equality check predicate on the "request_messages" field. It's identical to RequestMessagesEQ.
func RequestMessages(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldRequestMessages, v))
}

// ResponseData applies equality check predicate on the "response_data" field. It's identical to ResponseDataEQ.
func ResponseData(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldResponseData, v))
}

// ToolCallData applies equality check predicate on the "tool_call_data" field. It's identical to ToolCallDataEQ.
func ToolCallData(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldToolCallData, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldReasoning, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldTopic, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldMasteryLevel, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldDurationMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// DashboardIDEQ applies the EQ predicate on the "dashboard_id" field.
func DashboardIDEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldDashboardID, v))
}

// DashboardIDNEQ applies the NEQ predicate on the "dashboard_id" field.
func DashboardIDNEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldDashboardID, v))
}

// DashboardIDIn applies the In predicate on the "dashboard_id" field.
func DashboardIDIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldDashboardID, vs...))
}

// DashboardIDNotIn applies the NotIn predicate on the "dashboard_id" field.
func DashboardIDNotIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldDashboardID, vs...))
}

// DashboardIDGT applies the GT predicate on the "dashboard_id" field.
func DashboardIDGT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldDashboardID, v))
}

// DashboardIDGTE applies the GTE predicate on the "dashboard_id" field.
func DashboardIDGTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldDashboardID, v))
}

// DashboardIDLT applies the LT predicate on the "dashboard_id" field.
func DashboardIDLT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldDashboardID, v))
}

// DashboardIDLTE applies the LTE predicate on the "dashboard_id" field.
func DashboardIDLTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldDashboardID, v))
}

// DashboardIDContains applies the Contains predicate on the "dashboard_id" field.
func DashboardIDContains(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContains(FieldDashboardID, v))
}

// DashboardIDHasPrefix applies the HasPrefix predicate on the "dashboard_id" field.
func DashboardIDHasPrefix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasPrefix(FieldDashboardID, v))
}

// DashboardIDHasSuffix applies the HasSuffix predicate on the "dashboard_id" field.
func DashboardIDHasSuffix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasSuffix(FieldDashboardID, v))
}

// DashboardIDEqualFold applies the EqualFold predicate on the "dashboard_id" field.
func DashboardIDEqualFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEqualFold(FieldDashboardID, v))
}

// DashboardIDContainsFold applies the ContainsFold predicate on the "dashboard_id" field.
func DashboardIDContainsFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContainsFold(FieldDashboardID, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldActionType, vs...))
}

// ActionTypeGT applies the GT predicate on the "action_type" field.
func ActionTypeGT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldActionType, v))
}

// ActionTypeGTE applies the GTE predicate on the "action_type" field.
func ActionTypeGTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldActionType, v))
}

// ActionTypeLT applies the LT predicate on the "action_type" field.
func ActionTypeLT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldActionType, v))
}

// ActionTypeLTE applies the LTE predicate on the "action_type" field.
func ActionTypeLTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldActionType, v))
}

// ActionTypeContains applies the Contains predicate on the "action_type" field.
func ActionTypeContains(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContains(FieldActionType, v))
}

// ActionTypeHasPrefix applies the HasPrefix predicate on the "action_type" field.
func ActionTypeHasPrefix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasPrefix(FieldActionType, v))
}

// ActionTypeHasSuffix applies the HasSuffix predicate on the "action_type" field.
func ActionTypeHasSuffix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasSuffix(FieldActionType, v))
}

// ActionTypeEqualFold applies the EqualFold predicate on the "action_type" field.
func ActionTypeEqualFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEqualFold(FieldActionType, v))
}

// ActionTypeContainsFold applies the ContainsFold predicate on the "action_type" field.
func ActionTypeContainsFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContainsFold(FieldActionType, v))
}

// RequestMessagesEQ applies the EQ predicate on the "request_messages" field.
func RequestMessagesEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldRequestMessages, v))
}

// RequestMessagesNEQ applies the NEQ predicate on the "request_messages" field.
func RequestMessagesNEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldRequestMessages, v))
}

// RequestMessagesIn applies the In predicate on the "request_messages" field.
func RequestMessagesIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldRequestMessages, vs...))
}

// RequestMessagesNotIn applies the NotIn predicate on the "request_messages" field.
func RequestMessagesNotIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldRequestMessages, vs...))
}

// RequestMessagesGT applies the GT predicate on the "request_messages" field.
func RequestMessagesGT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldRequestMessages, v))
}

// RequestMessagesGTE applies the GTE predicate on the "request_messages" field.
func RequestMessagesGTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldRequestMessages, v))
}

// RequestMessagesLT applies the LT predicate on the "request_messages" field.
func RequestMessagesLT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldRequestMessages, v))
}

// RequestMessagesLTE applies the LTE predicate on the "request_messages" field.
func RequestMessagesLTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldRequestMessages, v))
}

// RequestMessagesContains applies the Contains predicate on the "request_messages" field.
func RequestMessagesContains(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContains(FieldRequestMessages, v))
}

// RequestMessagesHasPrefix applies the HasPrefix predicate on the "request_messages" field.
func RequestMessagesHasPrefix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasPrefix(FieldRequestMessages, v))
}

// RequestMessagesHasSuffix applies the HasSuffix predicate on the "request_messages" field.
func RequestMessagesHasSuffix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasSuffix(FieldRequestMessages, v))
}

// RequestMessagesEqualFold applies the EqualFold predicate on the "request_messages" field.
func RequestMessagesEqualFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEqualFold(FieldRequestMessages, v))
}

// RequestMessagesContainsFold applies the ContainsFold predicate on the "request_messages" field.
func RequestMessagesContainsFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContainsFold(FieldRequestMessages, v))
}

// ResponseDataEQ applies the EQ predicate on the "response_data" field.
func ResponseDataEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldResponseData, v))
}

// ResponseDataNEQ applies the NEQ predicate on the "response_data" field.
func ResponseDataNEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldResponseData, v))
}

// ResponseDataIn applies the In predicate on the "response_data" field.
func ResponseDataIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldResponseData, vs...))
}

// ResponseDataNotIn applies the NotIn predicate on the "response_data" field.
func ResponseDataNotIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldResponseData, vs...))
}

// ResponseDataGT applies the GT predicate on the "response_data" field.
func ResponseDataGT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldResponseData, v))
}

// ResponseDataGTE applies the GTE predicate on the "response_data" field.
func ResponseDataGTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldResponseData, v))
}

// ResponseDataLT applies the LT predicate on the "response_data" field.
func ResponseDataLT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldResponseData, v))
}

// ResponseDataLTE applies the LTE predicate on the "response_data" field.
func ResponseDataLTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldResponseData, v))
}

// ResponseDataContains applies the Contains predicate on the "response_data" field.
func ResponseDataContains(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContains(FieldResponseData, v))
}

// ResponseDataHasPrefix applies the HasPrefix predicate on the "response_data" field.
func ResponseDataHasPrefix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasPrefix(FieldResponseData, v))
}

// ResponseDataHasSuffix applies the HasSuffix predicate on the "response_data" field.
func ResponseDataHasSuffix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasSuffix(FieldResponseData, v))
}

// ResponseDataEqualFold applies the EqualFold predicate on the "response_data" field.
func ResponseDataEqualFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEqualFold(FieldResponseData, v))
}

// ResponseDataContainsFold applies the ContainsFold predicate on the "response_data" field.
func ResponseDataContainsFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContainsFold(FieldResponseData, v))
}

// ToolCallDataEQ applies the EQ predicate on the "tool_call_data" field.
func ToolCallDataEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldToolCallData, v))
}

// ToolCallDataNEQ applies the NEQ predicate on the "tool_call_data" field.
func ToolCallDataNEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldToolCallData, v))
}

// ToolCallDataIn applies the In predicate on the "tool_call_data" field.
func ToolCallDataIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldToolCallData, vs...))
}

// ToolCallDataNotIn applies the NotIn predicate on the "tool_call_data" field.
func ToolCallDataNotIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldToolCallData, vs...))
}

// ToolCallDataGT applies the GT predicate on the "tool_call_data" field.
func ToolCallDataGT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldToolCallData, v))
}

// ToolCallDataGTE applies the GTE predicate on the "tool_call_data" field.
func ToolCallDataGTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldToolCallData, v))
}

// ToolCallDataLT applies the LT predicate on the "tool_call_data" field.
func ToolCallDataLT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldToolCallData, v))
}

// ToolCallDataLTE applies the LTE predicate on the "tool_call_data" field.
func ToolCallDataLTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldToolCallData, v))
}

// ToolCallDataContains applies the Contains predicate on the "tool_call_data" field.
func ToolCallDataContains(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContains(FieldToolCallData, v))
}

// ToolCallDataHasPrefix applies the HasPrefix predicate on the "tool_call_data" field.
func ToolCallDataHasPrefix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasPrefix(FieldToolCallData, v))
}

// ToolCallDataHasSuffix applies the HasSuffix predicate on the "tool_call_data" field.
func ToolCallDataHasSuffix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasSuffix(FieldToolCallData, v))
}

// ToolCallDataEqualFold applies the EqualFold predicate on the "tool_call_data" field.
func ToolCallDataEqualFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEqualFold(FieldToolCallData, v))
}

// ToolCallDataContainsFold applies the ContainsFold predicate on the "tool_call_data" field.
func ToolCallDataContainsFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContainsFold(FieldToolCallData, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContainsFold(FieldReasoning, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldContainsFold(FieldTopic, v))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v int) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldMasteryLevel, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AIActionEvent) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AIActionEvent) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AIActionEvent) predicate.AIActionEvent {
	return predicate.AIActionEvent(sql.NotPredicates(p))
}
