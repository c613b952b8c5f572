// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wliu/gradewise/ent/llmcallevent"
	"github.com/wliu/gradewise/ent/predicate"
)

// LLMCallEventDelete is the builder for deleting a LLMCallEvent entity.
type LLMCallEventDelete struct {
	config
	hooks    []Hook
	mutation *LLMCallEventMutation
}

// Where appends a list predicates to the LLMCallEventDelete builder.
func (_d *LLMCallEventDelete) Where(ps ...predicate.LLMCallEvent) *LLMCallEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LLMCallEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LLMCallEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LLMCallEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(llmcallevent.Table, sqlgraph.NewFieldSpec(llmcallevent.FieldID, field.TypeInt))
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

// LLMCallEventDeleteOne is the builder for deleting a single LLMCallEvent entity.
type LLMCallEventDeleteOne struct {
	_d *LLMCallEventDelete
}

// Where appends a list predicates to the LLMCallEventDelete builder.
func (_d *LLMCallEventDeleteOne) Where(ps ...predicate.LLMCallEvent) *LLMCallEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LLMCallEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{llmcallevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LLMCallEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
