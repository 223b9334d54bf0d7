// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/quizsight/ent/sessionarchive"
)

// SessionArchiveCreate is the builder for creating a SessionArchive entity.
type SessionArchiveCreate struct {
	config
	mutation *SessionArchiveMutation
	hooks    []Hook
}

// SetUID sets the "uid" field.
func (_c *SessionArchiveCreate) SetUID(v string) *SessionArchiveCreate {
	_c.mutation.SetUID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *SessionArchiveCreate) SetFilename(v string) *SessionArchiveCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetQuizTitle sets the "quiz_title" field.
func (_c *SessionArchiveCreate) SetQuizTitle(v string) *SessionArchiveCreate {
	_c.mutation.SetQuizTitle(v)
	return _c
}

// SetNillableQuizTitle sets the "quiz_title" field if the given value is not nil.
func (_c *SessionArchiveCreate) SetNillableQuizTitle(v *string) *SessionArchiveCreate {
	if v != nil {
		_c.SetQuizTitle(*v)
	}
	return _c
}

// SetGamePin sets the "game_pin" field.
func (_c *SessionArchiveCreate) SetGamePin(v string) *SessionArchiveCreate {
	_c.mutation.SetGamePin(v)
	return _c
}

// SetNillableGamePin sets the "game_pin" field if the given value is not nil.
func (_c *SessionArchiveCreate) SetNillableGamePin(v *string) *SessionArchiveCreate {
	if v != nil {
		_c.SetGamePin(*v)
	}
	return _c
}

// SetSaved sets the "saved" field.
func (_c *SessionArchiveCreate) SetSaved(v time.Time) *SessionArchiveCreate {
	_c.mutation.SetSaved(v)
	return _c
}

// SetNillableSaved sets the "saved" field if the given value is not nil.
func (_c *SessionArchiveCreate) SetNillableSaved(v *time.Time) *SessionArchiveCreate {
	if v != nil {
		_c.SetSaved(*v)
	}
	return _c
}

// SetParticipantCount sets the "participant_count" field.
func (_c *SessionArchiveCreate) SetParticipantCount(v int) *SessionArchiveCreate {
	_c.mutation.SetParticipantCount(v)
	return _c
}

// SetNillableParticipantCount sets the "participant_count" field if the given value is not nil.
func (_c *SessionArchiveCreate) SetNillableParticipantCount(v *int) *SessionArchiveCreate {
	if v != nil {
		_c.SetParticipantCount(*v)
	}
	return _c
}

// SetQuestionCount sets the "question_count" field.
func (_c *SessionArchiveCreate) SetQuestionCount(v int) *SessionArchiveCreate {
	_c.mutation.SetQuestionCount(v)
	return _c
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (_c *SessionArchiveCreate) SetNillableQuestionCount(v *int) *SessionArchiveCreate {
	if v != nil {
		_c.SetQuestionCount(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *SessionArchiveCreate) SetPayload(v []byte) *SessionArchiveCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *SessionArchiveCreate) SetImportedAt(v time.Time) *SessionArchiveCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *SessionArchiveCreate) SetNillableImportedAt(v *time.Time) *SessionArchiveCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// Mutation returns the SessionArchiveMutation object of the builder.
func (_c *SessionArchiveCreate) Mutation() *SessionArchiveMutation {
	return _c.mutation
}

// Save creates the SessionArchive in the database.
func (_c *SessionArchiveCreate) Save(ctx context.Context) (*SessionArchive, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionArchiveCreate) SaveX(ctx context.Context) *SessionArchive {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionArchiveCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionArchiveCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionArchiveCreate) defaults() {
	if _, ok := _c.mutation.ParticipantCount(); !ok {
		v := sessionarchive.DefaultParticipantCount
		_c.mutation.SetParticipantCount(v)
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		v := sessionarchive.DefaultQuestionCount
		_c.mutation.SetQuestionCount(v)
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := sessionarchive.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionArchiveCreate) check() error {
	if _, ok := _c.mutation.UID(); !ok {
		return &ValidationError{Name: "uid", err: errors.New(`ent: missing required field "SessionArchive.uid"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "SessionArchive.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := sessionarchive.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "SessionArchive.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParticipantCount(); !ok {
		return &ValidationError{Name: "participant_count", err: errors.New(`ent: missing required field "SessionArchive.participant_count"`)}
	}
	if _, ok := _c.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "SessionArchive.question_count"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "SessionArchive.payload"`)}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "SessionArchive.imported_at"`)}
	}
	return nil
}

func (_c *SessionArchiveCreate) sqlSave(ctx context.Context) (*SessionArchive, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionArchiveCreate) createSpec() (*SessionArchive, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionArchive{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionarchive.Table, sqlgraph.NewFieldSpec(sessionarchive.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UID(); ok {
		_spec.SetField(sessionarchive.FieldUID, field.TypeString, value)
		_node.UID = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(sessionarchive.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.QuizTitle(); ok {
		_spec.SetField(sessionarchive.FieldQuizTitle, field.TypeString, value)
		_node.QuizTitle = value
	}
	if value, ok := _c.mutation.GamePin(); ok {
		_spec.SetField(sessionarchive.FieldGamePin, field.TypeString, value)
		_node.GamePin = value
	}
	if value, ok := _c.mutation.Saved(); ok {
		_spec.SetField(sessionarchive.FieldSaved, field.TypeTime, value)
		_node.Saved = &value
	}
	if value, ok := _c.mutation.ParticipantCount(); ok {
		_spec.SetField(sessionarchive.FieldParticipantCount, field.TypeInt, value)
		_node.ParticipantCount = value
	}
	if value, ok := _c.mutation.QuestionCount(); ok {
		_spec.SetField(sessionarchive.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(sessionarchive.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(sessionarchive.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	return _node, _spec
}

// SessionArchiveCreateBulk is the builder for creating many SessionArchive entities in bulk.
type SessionArchiveCreateBulk struct {
	config
	err      error
	builders []*SessionArchiveCreate
}

// Save creates the SessionArchive entities in the database.
func (_c *SessionArchiveCreateBulk) Save(ctx context.Context) ([]*SessionArchive, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionArchive, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionArchiveMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionArchiveCreateBulk) SaveX(ctx context.Context) []*SessionArchive {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionArchiveCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionArchiveCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
