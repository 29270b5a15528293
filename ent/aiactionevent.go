// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avikram/studyloop/ent/aiactionevent"
)

// AIActionEvent is the model entity for the AIActionEvent schema.
type AIActionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the study session
	SessionID string `json:"session_id,omitempty"`
	// External dashboard reference, empty if none
	DashboardID string `json:"dashboard_id,omitempty"`
	// get_next_step, evaluate_response, provide_hint, decide_next_action
	ActionType string `json:"action_type,omitempty"`
	// Serialized prompt messages sent to the agent
	RequestMessages string `json:"request_messages,omitempty"`
	// Raw agent response content
	ResponseData string `json:"response_data,omitempty"`
	// Parsed tool-call arguments as JSON
	ToolCallData string `json:"tool_call_data,omitempty"`
	// Agent-supplied reasoning, if any
	Reasoning string `json:"reasoning,omitempty"`
	// Question the action relates to, empty if none
	QuestionID string `json:"question_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Topic mastery level at the time of the action
	MasteryLevel int `json:"mastery_level,omitempty"`
	// Wall-clock time for the agent call
	DurationMs   int64 `json:"duration_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AIActionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case aiactionevent.FieldID, aiactionevent.FieldSequence, aiactionevent.FieldMasteryLevel, aiactionevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case aiactionevent.FieldSessionID, aiactionevent.FieldDashboardID, aiactionevent.FieldActionType, aiactionevent.FieldRequestMessages, aiactionevent.FieldResponseData, aiactionevent.FieldToolCallData, aiactionevent.FieldReasoning, aiactionevent.FieldQuestionID, aiactionevent.FieldTopic:
			values[i] = new(sql.NullString)
		case aiactionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AIActionEvent fields.
func (_m *AIActionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case aiactionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case aiactionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case aiactionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case aiactionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case aiactionevent.FieldDashboardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dashboard_id", values[i])
			} else if value.Valid {
				_m.DashboardID = value.String
			}
		case aiactionevent.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = value.String
			}
		case aiactionevent.FieldRequestMessages:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field request_messages", values[i])
			} else if value.Valid {
				_m.RequestMessages = value.String
			}
		case aiactionevent.FieldResponseData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_data", values[i])
			} else if value.Valid {
				_m.ResponseData = value.String
			}
		case aiactionevent.FieldToolCallData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_call_data", values[i])
			} else if value.Valid {
				_m.ToolCallData = value.String
			}
		case aiactionevent.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case aiactionevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case aiactionevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case aiactionevent.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = int(value.Int64)
			}
		case aiactionevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AIActionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AIActionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AIActionEvent.
// Note that you need to call AIActionEvent.Unwrap() before calling this method if this AIActionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AIActionEvent) Update() *AIActionEventUpdateOne {
	return NewAIActionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AIActionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AIActionEvent) Unwrap() *AIActionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AIActionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AIActionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AIActionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("dashboard_id=")
	builder.WriteString(_m.DashboardID)
	builder.WriteString(", ")
	builder.WriteString("action_type=")
	builder.WriteString(_m.ActionType)
	builder.WriteString(", ")
	builder.WriteString("request_messages=")
	builder.WriteString(_m.RequestMessages)
	builder.WriteString(", ")
	builder.WriteString("response_data=")
	builder.WriteString(_m.ResponseData)
	builder.WriteString(", ")
	builder.WriteString("tool_call_data=")
	builder.WriteString(_m.ToolCallData)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryLevel))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// AIActionEvents is a parsable slice of AIActionEvent.
type AIActionEvents []*AIActionEvent
