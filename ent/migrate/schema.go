// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "mode", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "idle", "completed", "failed"}, Default: "running"},
		{Name: "total_cost", Type: field.TypeFloat64, Default: 0},
		{Name: "tokens_in", Type: field.TypeInt64, Default: 0},
		{Name: "tokens_out", Type: field.TypeInt64, Default: 0},
		{Name: "tokens_reasoning", Type: field.TypeInt64, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "outcome", Type: field.TypeString, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4]},
			},
			{
				Name:    "agentsession_task_id",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "agentsession_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[4], SessionsColumns[9]},
			},
		},
	}
	// ChildRelsColumns holds the columns for the "child_rels" table.
	ChildRelsColumns = []*schema.Column{
		{Name: "relation_id", Type: field.TypeString, Unique: true},
		{Name: "parent_id", Type: field.TypeString},
		{Name: "child_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChildRelsTable holds the schema information for the "child_rels" table.
	ChildRelsTable = &schema.Table{
		Name:       "child_rels",
		Columns:    ChildRelsColumns,
		PrimaryKey: []*schema.Column{ChildRelsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "childrelation_parent_id_child_id",
				Unique:  true,
				Columns: []*schema.Column{ChildRelsColumns[1], ChildRelsColumns[2]},
			},
			{
				Name:    "childrelation_child_id",
				Unique:  false,
				Columns: []*schema.Column{ChildRelsColumns[2]},
			},
		},
	}
	// PunchesColumns holds the columns for the "punches" table.
	PunchesColumns = []*schema.Column{
		{Name: "punch_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "punch_type", Type: field.TypeEnum, Enums: []string{"tool_call", "step_complete", "message", "session_lifecycle", "governor_kill", "workflow", "governor"}},
		{Name: "punch_key", Type: field.TypeString},
		{Name: "observed_at", Type: field.TypeTime},
		{Name: "source_hash", Type: field.TypeString, Unique: true, Size: 64},
		{Name: "content_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "tokens_input", Type: field.TypeInt64, Nullable: true},
		{Name: "tokens_output", Type: field.TypeInt64, Nullable: true},
		{Name: "tokens_reasoning", Type: field.TypeInt64, Nullable: true},
	}
	// PunchesTable holds the schema information for the "punches" table.
	PunchesTable = &schema.Table{
		Name:       "punches",
		Columns:    PunchesColumns,
		PrimaryKey: []*schema.Column{PunchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "punch_task_id_punch_type",
				Unique:  false,
				Columns: []*schema.Column{PunchesColumns[1], PunchesColumns[2]},
			},
			{
				Name:    "punch_task_id_observed_at",
				Unique:  false,
				Columns: []*schema.Column{PunchesColumns[1], PunchesColumns[4]},
			},
			{
				Name:    "punch_punch_type_punch_key",
				Unique:  false,
				Columns: []*schema.Column{PunchesColumns[2], PunchesColumns[3]},
			},
		},
	}
	// PunchCardsColumns holds the columns for the "punch_cards" table.
	PunchCardsColumns = []*schema.Column{
		{Name: "requirement_id", Type: field.TypeString, Unique: true},
		{Name: "card_id", Type: field.TypeString},
		{Name: "punch_type", Type: field.TypeEnum, Enums: []string{"tool_call", "step_complete", "message", "session_lifecycle", "governor_kill", "workflow", "governor"}},
		{Name: "punch_key_pattern", Type: field.TypeString},
		{Name: "required", Type: field.TypeBool, Default: true},
		{Name: "forbidden", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Nullable: true},
	}
	// PunchCardsTable holds the schema information for the "punch_cards" table.
	PunchCardsTable = &schema.Table{
		Name:       "punch_cards",
		Columns:    PunchCardsColumns,
		PrimaryKey: []*schema.Column{PunchCardsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "punchcardrequirement_card_id",
				Unique:  false,
				Columns: []*schema.Column{PunchCardsColumns[1]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "content_preview", Type: field.TypeString, Size: 2147483647},
		{Name: "ts", Type: field.TypeTime},
		{Name: "cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "tokens_in", Type: field.TypeInt64, Nullable: true},
		{Name: "tokens_out", Type: field.TypeInt64, Nullable: true},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionmessage_session_id_ts_role",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[5], MessagesColumns[2]},
			},
			{
				Name:    "sessionmessage_session_id_ts",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1], MessagesColumns[5]},
			},
		},
	}
	// ToolCallsColumns holds the columns for the "tool_calls" table.
	ToolCallsColumns = []*schema.Column{
		{Name: "tool_call_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "args_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeString},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "ts", Type: field.TypeTime},
	}
	// ToolCallsTable holds the schema information for the "tool_calls" table.
	ToolCallsTable = &schema.Table{
		Name:       "tool_calls",
		Columns:    ToolCallsColumns,
		PrimaryKey: []*schema.Column{ToolCallsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "toolcall_session_id_ts_tool_name",
				Unique:  true,
				Columns: []*schema.Column{ToolCallsColumns[1], ToolCallsColumns[8], ToolCallsColumns[2]},
			},
			{
				Name:    "toolcall_session_id_tool_name",
				Unique:  false,
				Columns: []*schema.Column{ToolCallsColumns[1], ToolCallsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionsTable,
		ChildRelsTable,
		PunchesTable,
		PunchCardsTable,
		MessagesTable,
		ToolCallsTable,
	}
)

func init() {
	SessionsTable.Annotation = &entsql.Annotation{
		Table: "sessions",
	}
	ChildRelsTable.Annotation = &entsql.Annotation{
		Table: "child_rels",
	}
	PunchCardsTable.Annotation = &entsql.Annotation{
		Table: "punch_cards",
	}
	MessagesTable.Annotation = &entsql.Annotation{
		Table: "messages",
	}
}
