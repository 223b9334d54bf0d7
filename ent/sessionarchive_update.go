// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/quizsight/ent/predicate"
	"github.com/abiral/quizsight/ent/sessionarchive"
)

// SessionArchiveUpdate is the builder for updating SessionArchive entities.
type SessionArchiveUpdate struct {
	config
	hooks    []Hook
	mutation *SessionArchiveMutation
}

// Where appends a list predicates to the SessionArchiveUpdate builder.
func (_u *SessionArchiveUpdate) Where(ps ...predicate.SessionArchive) *SessionArchiveUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *SessionArchiveUpdate) SetFilename(v string) *SessionArchiveUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SessionArchiveUpdate) SetNillableFilename(v *string) *SessionArchiveUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetQuizTitle sets the "quiz_title" field.
func (_u *SessionArchiveUpdate) SetQuizTitle(v string) *SessionArchiveUpdate {
	_u.mutation.SetQuizTitle(v)
	return _u
}

// SetNillableQuizTitle sets the "quiz_title" field if the given value is not nil.
func (_u *SessionArchiveUpdate) SetNillableQuizTitle(v *string) *SessionArchiveUpdate {
	if v != nil {
		_u.SetQuizTitle(*v)
	}
	return _u
}

// ClearQuizTitle clears the value of the "quiz_title" field.
func (_u *SessionArchiveUpdate) ClearQuizTitle() *SessionArchiveUpdate {
	_u.mutation.ClearQuizTitle()
	return _u
}

// SetGamePin sets the "game_pin" field.
func (_u *SessionArchiveUpdate) SetGamePin(v string) *SessionArchiveUpdate {
	_u.mutation.SetGamePin(v)
	return _u
}

// SetNillableGamePin sets the "game_pin" field if the given value is not nil.
func (_u *SessionArchiveUpdate) SetNillableGamePin(v *string) *SessionArchiveUpdate {
	if v != nil {
		_u.SetGamePin(*v)
	}
	return _u
}

// ClearGamePin clears the value of the "game_pin" field.
func (_u *SessionArchiveUpdate) ClearGamePin() *SessionArchiveUpdate {
	_u.mutation.ClearGamePin()
	return _u
}

// SetSaved sets the "saved" field.
func (_u *SessionArchiveUpdate) SetSaved(v time.Time) *SessionArchiveUpdate {
	_u.mutation.SetSaved(v)
	return _u
}

// SetNillableSaved sets the "saved" field if the given value is not nil.
func (_u *SessionArchiveUpdate) SetNillableSaved(v *time.Time) *SessionArchiveUpdate {
	if v != nil {
		_u.SetSaved(*v)
	}
	return _u
}

// ClearSaved clears the value of the "saved" field.
func (_u *SessionArchiveUpdate) ClearSaved() *SessionArchiveUpdate {
	_u.mutation.ClearSaved()
	return _u
}

// SetParticipantCount sets the "participant_count" field.
func (_u *SessionArchiveUpdate) SetParticipantCount(v int) *SessionArchiveUpdate {
	_u.mutation.ResetParticipantCount()
	_u.mutation.SetParticipantCount(v)
	return _u
}

// SetNillableParticipantCount sets the "participant_count" field if the given value is not nil.
func (_u *SessionArchiveUpdate) SetNillableParticipantCount(v *int) *SessionArchiveUpdate {
	if v != nil {
		_u.SetParticipantCount(*v)
	}
	return _u
}

// AddParticipantCount adds value to the "participant_count" field.
func (_u *SessionArchiveUpdate) AddParticipantCount(v int) *SessionArchiveUpdate {
	_u.mutation.AddParticipantCount(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *SessionArchiveUpdate) SetQuestionCount(v int) *SessionArchiveUpdate {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *SessionArchiveUpdate) SetNillableQuestionCount(v *int) *SessionArchiveUpdate {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *SessionArchiveUpdate) AddQuestionCount(v int) *SessionArchiveUpdate {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SessionArchiveUpdate) SetPayload(v []byte) *SessionArchiveUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the SessionArchiveMutation object of the builder.
func (_u *SessionArchiveUpdate) Mutation() *SessionArchiveMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionArchiveUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionArchiveUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionArchiveUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionArchiveUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionArchiveUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := sessionarchive.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SessionArchive.filename": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionArchiveUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionarchive.Table, sessionarchive.Columns, sqlgraph.NewFieldSpec(sessionarchive.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(sessionarchive.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizTitle(); ok {
		_spec.SetField(sessionarchive.FieldQuizTitle, field.TypeString, value)
	}
	if _u.mutation.QuizTitleCleared() {
		_spec.ClearField(sessionarchive.FieldQuizTitle, field.TypeString)
	}
	if value, ok := _u.mutation.GamePin(); ok {
		_spec.SetField(sessionarchive.FieldGamePin, field.TypeString, value)
	}
	if _u.mutation.GamePinCleared() {
		_spec.ClearField(sessionarchive.FieldGamePin, field.TypeString)
	}
	if value, ok := _u.mutation.Saved(); ok {
		_spec.SetField(sessionarchive.FieldSaved, field.TypeTime, value)
	}
	if _u.mutation.SavedCleared() {
		_spec.ClearField(sessionarchive.FieldSaved, field.TypeTime)
	}
	if value, ok := _u.mutation.ParticipantCount(); ok {
		_spec.SetField(sessionarchive.FieldParticipantCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParticipantCount(); ok {
		_spec.AddField(sessionarchive.FieldParticipantCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(sessionarchive.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(sessionarchive.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(sessionarchive.FieldPayload, field.TypeBytes, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionarchive.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionArchiveUpdateOne is the builder for updating a single SessionArchive entity.
type SessionArchiveUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionArchiveMutation
}

// SetFilename sets the "filename" field.
func (_u *SessionArchiveUpdateOne) SetFilename(v string) *SessionArchiveUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *SessionArchiveUpdateOne) SetNillableFilename(v *string) *SessionArchiveUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetQuizTitle sets the "quiz_title" field.
func (_u *SessionArchiveUpdateOne) SetQuizTitle(v string) *SessionArchiveUpdateOne {
	_u.mutation.SetQuizTitle(v)
	return _u
}

// SetNillableQuizTitle sets the "quiz_title" field if the given value is not nil.
func (_u *SessionArchiveUpdateOne) SetNillableQuizTitle(v *string) *SessionArchiveUpdateOne {
	if v != nil {
		_u.SetQuizTitle(*v)
	}
	return _u
}

// ClearQuizTitle clears the value of the "quiz_title" field.
func (_u *SessionArchiveUpdateOne) ClearQuizTitle() *SessionArchiveUpdateOne {
	_u.mutation.ClearQuizTitle()
	return _u
}

// SetGamePin sets the "game_pin" field.
func (_u *SessionArchiveUpdateOne) SetGamePin(v string) *SessionArchiveUpdateOne {
	_u.mutation.SetGamePin(v)
	return _u
}

// SetNillableGamePin sets the "game_pin" field if the given value is not nil.
func (_u *SessionArchiveUpdateOne) SetNillableGamePin(v *string) *SessionArchiveUpdateOne {
	if v != nil {
		_u.SetGamePin(*v)
	}
	return _u
}

// ClearGamePin clears the value of the "game_pin" field.
func (_u *SessionArchiveUpdateOne) ClearGamePin() *SessionArchiveUpdateOne {
	_u.mutation.ClearGamePin()
	return _u
}

// SetSaved sets the "saved" field.
func (_u *SessionArchiveUpdateOne) SetSaved(v time.Time) *SessionArchiveUpdateOne {
	_u.mutation.SetSaved(v)
	return _u
}

// SetNillableSaved sets the "saved" field if the given value is not nil.
func (_u *SessionArchiveUpdateOne) SetNillableSaved(v *time.Time) *SessionArchiveUpdateOne {
	if v != nil {
		_u.SetSaved(*v)
	}
	return _u
}

// ClearSaved clears the value of the "saved" field.
func (_u *SessionArchiveUpdateOne) ClearSaved() *SessionArchiveUpdateOne {
	_u.mutation.ClearSaved()
	return _u
}

// SetParticipantCount sets the "participant_count" field.
func (_u *SessionArchiveUpdateOne) SetParticipantCount(v int) *SessionArchiveUpdateOne {
	_u.mutation.ResetParticipantCount()
	_u.mutation.SetParticipantCount(v)
	return _u
}

// SetNillableParticipantCount sets the "participant_count" field if the given value is not nil.
func (_u *SessionArchiveUpdateOne) SetNillableParticipantCount(v *int) *SessionArchiveUpdateOne {
	if v != nil {
		_u.SetParticipantCount(*v)
	}
	return _u
}

// AddParticipantCount adds value to the "participant_count" field.
func (_u *SessionArchiveUpdateOne) AddParticipantCount(v int) *SessionArchiveUpdateOne {
	_u.mutation.AddParticipantCount(v)
	return _u
}

// SetQuestionCount sets the "question_count" field.
func (_u *SessionArchiveUpdateOne) SetQuestionCount(v int) *SessionArchiveUpdateOne {
	_u.mutation.ResetQuestionCount()
	_u.mutation.SetQuestionCount(v)
	return _u
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_u *SessionArchiveUpdateOne) SetNillableQuestionCount(v *int) *SessionArchiveUpdateOne {
	if v != nil {
		_u.SetQuestionCount(*v)
	}
	return _u
}

// AddQuestionCount adds value to the "question_count" field.
func (_u *SessionArchiveUpdateOne) AddQuestionCount(v int) *SessionArchiveUpdateOne {
	_u.mutation.AddQuestionCount(v)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *SessionArchiveUpdateOne) SetPayload(v []byte) *SessionArchiveUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the SessionArchiveMutation object of the builder.
func (_u *SessionArchiveUpdateOne) Mutation() *SessionArchiveMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionArchiveUpdate builder.
func (_u *SessionArchiveUpdateOne) Where(ps ...predicate.SessionArchive) *SessionArchiveUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionArchiveUpdateOne) Select(field string, fields ...string) *SessionArchiveUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionArchive entity.
func (_u *SessionArchiveUpdateOne) Save(ctx context.Context) (*SessionArchive, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionArchiveUpdateOne) SaveX(ctx context.Context) *SessionArchive {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionArchiveUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionArchiveUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionArchiveUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := sessionarchive.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SessionArchive.filename": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionArchiveUpdateOne) sqlSave(ctx context.Context) (_node *SessionArchive, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionarchive.Table, sessionarchive.Columns, sqlgraph.NewFieldSpec(sessionarchive.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionArchive.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionarchive.FieldID)
		for _, f := range fields {
			if !sessionarchive.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionarchive.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(sessionarchive.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizTitle(); ok {
		_spec.SetField(sessionarchive.FieldQuizTitle, field.TypeString, value)
	}
	if _u.mutation.QuizTitleCleared() {
		_spec.ClearField(sessionarchive.FieldQuizTitle, field.TypeString)
	}
	if value, ok := _u.mutation.GamePin(); ok {
		_spec.SetField(sessionarchive.FieldGamePin, field.TypeString, value)
	}
	if _u.mutation.GamePinCleared() {
		_spec.ClearField(sessionarchive.FieldGamePin, field.TypeString)
	}
	if value, ok := _u.mutation.Saved(); ok {
		_spec.SetField(sessionarchive.FieldSaved, field.TypeTime, value)
	}
	if _u.mutation.SavedCleared() {
		_spec.ClearField(sessionarchive.FieldSaved, field.TypeTime)
	}
	if value, ok := _u.mutation.ParticipantCount(); ok {
		_spec.SetField(sessionarchive.FieldParticipantCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParticipantCount(); ok {
		_spec.AddField(sessionarchive.FieldParticipantCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionCount(); ok {
		_spec.SetField(sessionarchive.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionCount(); ok {
		_spec.AddField(sessionarchive.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(sessionarchive.FieldPayload, field.TypeBytes, value)
	}
	_node = &SessionArchive{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionarchive.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
