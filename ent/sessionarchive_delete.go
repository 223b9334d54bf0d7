// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abiral/quizsight/ent/predicate"
	"github.com/abiral/quizsight/ent/sessionarchive"
)

// SessionArchiveDelete is the builder for deleting a SessionArchive entity.
type SessionArchiveDelete struct {
	config
	hooks    []Hook
	mutation *SessionArchiveMutation
}

// Where appends a list predicates to the SessionArchiveDelete builder.
func (_d *SessionArchiveDelete) Where(ps ...predicate.SessionArchive) *SessionArchiveDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SessionArchiveDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SessionArchiveDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SessionArchiveDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(sessionarchive.Table, sqlgraph.NewFieldSpec(sessionarchive.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SessionArchiveDeleteOne is the builder for deleting a single SessionArchive entity.
type SessionArchiveDeleteOne struct {
	_d *SessionArchiveDelete
}

// Where appends a list predicates to the SessionArchiveDelete builder.
func (_d *SessionArchiveDeleteOne) Where(ps ...predicate.SessionArchive) *SessionArchiveDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SessionArchiveDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{sessionarchive.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SessionArchiveDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
