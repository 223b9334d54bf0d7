// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionArchivesColumns holds the columns for the "session_archives" table.
	SessionArchivesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString, Unique: true},
		{Name: "quiz_title", Type: field.TypeString, Nullable: true},
		{Name: "game_pin", Type: field.TypeString, Nullable: true},
		{Name: "saved", Type: field.TypeTime, Nullable: true},
		{Name: "participant_count", Type: field.TypeInt, Default: 0},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// SessionArchivesTable holds the schema information for the "session_archives" table.
	SessionArchivesTable = &schema.Table{
		Name:       "session_archives",
		Columns:    SessionArchivesColumns,
		PrimaryKey: []*schema.Column{SessionArchivesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionarchive_quiz_title",
				Unique:  false,
				Columns: []*schema.Column{SessionArchivesColumns[3]},
			},
			{
				Name:    "sessionarchive_saved",
				Unique:  false,
				Columns: []*schema.Column{SessionArchivesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionArchivesTable,
	}
)

func init() {
}
