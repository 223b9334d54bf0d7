// Code generated by ent, DO NOT EDIT.

package sessionarchive

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionarchive type in the database.
	Label = "session_archive"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUID holds the string denoting the uid field in the database.
	FieldUID = "uid"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldQuizTitle holds the string denoting the quiz_title field in the database.
	FieldQuizTitle = "quiz_title"
	// FieldGamePin holds the string denoting the game_pin field in the database.
	FieldGamePin = "game_pin"
	// FieldSaved holds the string denoting the saved field in the database.
	FieldSaved = "saved"
	// FieldParticipantCount holds the string denoting the participant_count field in the database.
	FieldParticipantCount = "participant_count"
	// FieldQuestionCount holds the string denoting the question_count field in the database.
	FieldQuestionCount = "question_count"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldImportedAt holds the string denoting the imported_at field in the database.
	FieldImportedAt = "imported_at"
	// Table holds the table name of the sessionarchive in the database.
	Table = "session_archives"
)

// Columns holds all SQL columns for sessionarchive fields.
var Columns = []string{
	FieldID,
	FieldUID,
	FieldFilename,
	FieldQuizTitle,
	FieldGamePin,
	FieldSaved,
	FieldParticipantCount,
	FieldQuestionCount,
	FieldPayload,
	FieldImportedAt,
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
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// DefaultParticipantCount holds the default value on creation for the "participant_count" field.
	DefaultParticipantCount int
	// DefaultQuestionCount holds the default value on creation for the "question_count" field.
	DefaultQuestionCount int
	// DefaultImportedAt holds the default value on creation for the "imported_at" field.
	DefaultImportedAt func() time.Time
)

// OrderOption defines the ordering options for the SessionArchive queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUID orders the results by the uid field.
func ByUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByQuizTitle orders the results by the quiz_title field.
func ByQuizTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizTitle, opts...).ToFunc()
}

// ByGamePin orders the results by the game_pin field.
func ByGamePin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGamePin, opts...).ToFunc()
}

// BySaved orders the results by the saved field.
func BySaved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSaved, opts...).ToFunc()
}

// ByParticipantCount orders the results by the participant_count field.
func ByParticipantCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantCount, opts...).ToFunc()
}

// ByQuestionCount orders the results by the question_count field.
func ByQuestionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionCount, opts...).ToFunc()
}

// ByImportedAt orders the results by the imported_at field.
func ByImportedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImportedAt, opts...).ToFunc()
}
