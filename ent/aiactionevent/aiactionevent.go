// Code generated by ent, DO NOT EDIT.

package aiactionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the aiactionevent type in the database.
	Label = "ai_action_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDashboardID holds the string denoting the dashboard_id field in the database.
	FieldDashboardID = "dashboard_id"
	// FieldActionType holds the string denoting the action_type field in the database.
	FieldActionType = "action_type"
	// FieldRequestMessages holds the string denoting the request_messages field in the database.
	FieldRequestMessages = "request_messages"
	// FieldResponseData holds the string denoting the response_data field in the database.
	FieldResponseData = "response_data"
	// FieldToolCallData holds the string denoting the tool_call_data field in the database.
	FieldToolCallData = "tool_call_data"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// Table holds the table name of the aiactionevent in the database.
	Table = "ai_action_events"
)

// Columns holds all SQL columns for aiactionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldDashboardID,
	FieldActionType,
	FieldRequestMessages,
	FieldResponseData,
	FieldToolCallData,
	FieldReasoning,
	FieldQuestionID,
	FieldTopic,
	FieldMasteryLevel,
	FieldDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultDashboardID holds the default value on creation for the "dashboard_id" field.
	DefaultDashboardID string
	// ActionTypeValidator is a validator for the "action_type" field. It is called by the builders before save.
	ActionTypeValidator func(string) error
	// DefaultRequestMessages holds the default value on creation for the "request_messages" field.
	DefaultRequestMessages string
	// DefaultResponseData holds the default value on creation for the "response_data" field.
	DefaultResponseData string
	// DefaultToolCallData holds the default value on creation for the "tool_call_data" field.
	DefaultToolCallData string
	// DefaultReasoning holds the default value on creation for the "reasoning" field.
	DefaultReasoning string
	// DefaultQuestionID holds the default value on creation for the "question_id" field.
	DefaultQuestionID string
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel int
	// DefaultDurationMs holds the default value on creation for the "duration_ms" field.
	DefaultDurationMs int64
)

// OrderOption defines the ordering options for the AIActionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDashboardID orders the results by the dashboard_id field.
func ByDashboardID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDashboardID, opts...).ToFunc()
}

// ByActionType orders the results by the action_type field.
func ByActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionType, opts...).ToFunc()
}

// ByRequestMessages orders the results by the request_messages field.
func ByRequestMessages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestMessages, opts...).ToFunc()
}

// ByResponseData orders the results by the response_data field.
func ByResponseData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseData, opts...).ToFunc()
}

// ByToolCallData orders the results by the tool_call_data field.
func ByToolCallData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolCallData, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}
