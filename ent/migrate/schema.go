// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AiActionEventsColumns holds the columns for the "ai_action_events" table.
	AiActionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "dashboard_id", Type: field.TypeString, Default: ""},
		{Name: "action_type", Type: field.TypeString},
		{Name: "request_messages", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_data", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "tool_call_data", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "question_id", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "mastery_level", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// AiActionEventsTable holds the schema information for the "ai_action_events" table.
	AiActionEventsTable = &schema.Table{
		Name:       "ai_action_events",
		Columns:    AiActionEventsColumns,
		PrimaryKey: []*schema.Column{AiActionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "aiactionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AiActionEventsColumns[1]},
			},
			{
				Name:    "aiactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AiActionEventsColumns[2]},
			},
			{
				Name:    "aiactionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AiActionEventsColumns[3]},
			},
			{
				Name:    "aiactionevent_dashboard_id",
				Unique:  false,
				Columns: []*schema.Column{AiActionEventsColumns[4]},
			},
			{
				Name:    "aiactionevent_action_type",
				Unique:  false,
				Columns: []*schema.Column{AiActionEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "summary", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AiActionEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
