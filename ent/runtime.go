// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abiral/quizsight/ent/schema"
	"github.com/abiral/quizsight/ent/sessionarchive"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sessionarchiveFields := schema.SessionArchive{}.Fields()
	_ = sessionarchiveFields
	// sessionarchiveDescFilename is the schema descriptor for filename field.
	sessionarchiveDescFilename := sessionarchiveFields[1].Descriptor()
	// sessionarchive.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	sessionarchive.FilenameValidator = sessionarchiveDescFilename.Validators[0].(func(string) error)
	// sessionarchiveDescParticipantCount is the schema descriptor for participant_count field.
	sessionarchiveDescParticipantCount := sessionarchiveFields[5].Descriptor()
	// sessionarchive.DefaultParticipantCount holds the default value on creation for the participant_count field.
	sessionarchive.DefaultParticipantCount = sessionarchiveDescParticipantCount.Default.(int)
	// sessionarchiveDescQuestionCount is the schema descriptor for question_count field.
	sessionarchiveDescQuestionCount := sessionarchiveFields[6].Descriptor()
	// sessionarchive.DefaultQuestionCount holds the default value on creation for the question_count field.
	sessionarchive.DefaultQuestionCount = sessionarchiveDescQuestionCount.Default.(int)
	// sessionarchiveDescImportedAt is the schema descriptor for imported_at field.
	sessionarchiveDescImportedAt := sessionarchiveFields[8].Descriptor()
	// sessionarchive.DefaultImportedAt holds the default value on creation for the imported_at field.
	sessionarchive.DefaultImportedAt = sessionarchiveDescImportedAt.Default.(func() time.Time)
}
