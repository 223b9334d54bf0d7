// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abiral/quizsight/ent/sessionarchive"
)

// SessionArchive is the model entity for the SessionArchive schema.
type SessionArchive struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable identifier assigned at import
	UID string `json:"uid,omitempty"`
	// Source file name, natural key for re-imports
	Filename string `json:"filename,omitempty"`
	// Quiz title as recorded by the host
	QuizTitle string `json:"quiz_title,omitempty"`
	// GamePin holds the value of the "game_pin" field.
	GamePin string `json:"game_pin,omitempty"`
	// When the host saved the session, if known
	Saved *time.Time `json:"saved,omitempty"`
	// ParticipantCount holds the value of the "participant_count" field.
	ParticipantCount int `json:"participant_count,omitempty"`
	// QuestionCount holds the value of the "question_count" field.
	QuestionCount int `json:"question_count,omitempty"`
	// Raw session record JSON
	Payload []byte `json:"payload,omitempty"`
	// ImportedAt holds the value of the "imported_at" field.
	ImportedAt   time.Time `json:"imported_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionArchive) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionarchive.FieldPayload:
			values[i] = new([]byte)
		case sessionarchive.FieldID, sessionarchive.FieldParticipantCount, sessionarchive.FieldQuestionCount:
			values[i] = new(sql.NullInt64)
		case sessionarchive.FieldUID, sessionarchive.FieldFilename, sessionarchive.FieldQuizTitle, sessionarchive.FieldGamePin:
			values[i] = new(sql.NullString)
		case sessionarchive.FieldSaved, sessionarchive.FieldImportedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionArchive fields.
func (_m *SessionArchive) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionarchive.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionarchive.FieldUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uid", values[i])
			} else if value.Valid {
				_m.UID = value.String
			}
		case sessionarchive.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case sessionarchive.FieldQuizTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_title", values[i])
			} else if value.Valid {
				_m.QuizTitle = value.String
			}
		case sessionarchive.FieldGamePin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field game_pin", values[i])
			} else if value.Valid {
				_m.GamePin = value.String
			}
		case sessionarchive.FieldSaved:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field saved", values[i])
			} else if value.Valid {
				_m.Saved = new(time.Time)
				*_m.Saved = value.Time
			}
		case sessionarchive.FieldParticipantCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field participant_count", values[i])
			} else if value.Valid {
				_m.ParticipantCount = int(value.Int64)
			}
		case sessionarchive.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				_m.QuestionCount = int(value.Int64)
			}
		case sessionarchive.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		case sessionarchive.FieldImportedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field imported_at", values[i])
			} else if value.Valid {
				_m.ImportedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionArchive.
// This includes values selected through modifiers, order, etc.
func (_m *SessionArchive) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionArchive.
// Note that you need to call SessionArchive.Unwrap() before calling this method if this SessionArchive
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionArchive) Update() *SessionArchiveUpdateOne {
	return NewSessionArchiveClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionArchive entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionArchive) Unwrap() *SessionArchive {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionArchive is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionArchive) String() string {
	var builder strings.Builder
	builder.WriteString("SessionArchive(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("uid=")
	builder.WriteString(_m.UID)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("quiz_title=")
	builder.WriteString(_m.QuizTitle)
	builder.WriteString(", ")
	builder.WriteString("game_pin=")
	builder.WriteString(_m.GamePin)
	builder.WriteString(", ")
	if v := _m.Saved; v != nil {
		builder.WriteString("saved=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("participant_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ParticipantCount))
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("imported_at=")
	builder.WriteString(_m.ImportedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionArchives is a parsable slice of SessionArchive.
type SessionArchives []*SessionArchive
