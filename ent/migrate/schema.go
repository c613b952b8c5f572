// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmCallEventsColumns holds the columns for the "llm_call_events" table.
	LlmCallEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "cost_usd", Type: field.TypeFloat64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmCallEventsTable holds the schema information for the "llm_call_events" table.
	LlmCallEventsTable = &schema.Table{
		Name:       "llm_call_events",
		Columns:    LlmCallEventsColumns,
		PrimaryKey: []*schema.Column{LlmCallEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmcallevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[1]},
			},
			{
				Name:    "llmcallevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[2]},
			},
			{
				Name:    "llmcallevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[3]},
			},
			{
				Name:    "llmcallevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[5]},
			},
			{
				Name:    "llmcallevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmCallEventsColumns[10]},
			},
		},
	}
	// PracticeEventsColumns holds the columns for the "practice_events" table.
	PracticeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "student", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "grade", Type: field.TypeInt},
		{Name: "point_id", Type: field.TypeString},
		{Name: "point_name", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString, Nullable: true},
		{Name: "difficulty", Type: field.TypeInt, Nullable: true},
		{Name: "correct", Type: field.TypeBool},
	}
	// PracticeEventsTable holds the schema information for the "practice_events" table.
	PracticeEventsTable = &schema.Table{
		Name:       "practice_events",
		Columns:    PracticeEventsColumns,
		PrimaryKey: []*schema.Column{PracticeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[1]},
			},
			{
				Name:    "practiceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[2]},
			},
			{
				Name:    "practiceevent_student_point_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[3], PracticeEventsColumns[7]},
			},
			{
				Name:    "practiceevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_student_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmCallEventsTable,
		PracticeEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
