// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wliu/gradewise/ent/llmcallevent"
	"github.com/wliu/gradewise/ent/predicate"
)

// LLMCallEventUpdate is the builder for updating LLMCallEvent entities.
type LLMCallEventUpdate struct {
	config
	hooks    []Hook
	mutation *LLMCallEventMutation
}

// Where appends a list predicates to the LLMCallEventUpdate builder.
func (_u *LLMCallEventUpdate) Where(ps ...predicate.LLMCallEvent) *LLMCallEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMCallEventUpdate) SetProvider(v string) *LLMCallEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMCallEventUpdate) SetNillableProvider(v *string) *LLMCallEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMCallEventUpdate) SetModel(v string) *LLMCallEventUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMCallEventUpdate) SetNillableModel(v *string) *LLMCallEventUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *LLMCallEventUpdate) SetPurpose(v string) *LLMCallEventUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *LLMCallEventUpdate) SetNillablePurpose(v *string) *LLMCallEventUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *LLMCallEventUpdate) SetInputTokens(v int) *LLMCallEventUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *LLMCallEventUpdate) SetNillableInputTokens(v *int) *LLMCallEventUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *LLMCallEventUpdate) AddInputTokens(v int) *LLMCallEventUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *LLMCallEventUpdate) SetOutputTokens(v int) *LLMCallEventUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *LLMCallEventUpdate) SetNillableOutputTokens(v *int) *LLMCallEventUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *LLMCallEventUpdate) AddOutputTokens(v int) *LLMCallEventUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *LLMCallEventUpdate) SetLatencyMs(v int64) *LLMCallEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *LLMCallEventUpdate) SetNillableLatencyMs(v *int64) *LLMCallEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *LLMCallEventUpdate) AddLatencyMs(v int64) *LLMCallEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *LLMCallEventUpdate) SetCostUsd(v float64) *LLMCallEventUpdate {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *LLMCallEventUpdate) SetNillableCostUsd(v *float64) *LLMCallEventUpdate {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *LLMCallEventUpdate) AddCostUsd(v float64) *LLMCallEventUpdate {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *LLMCallEventUpdate) SetSuccess(v bool) *LLMCallEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *LLMCallEventUpdate) SetNillableSuccess(v *bool) *LLMCallEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMCallEventUpdate) SetErrorMessage(v string) *LLMCallEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMCallEventUpdate) SetNillableErrorMessage(v *string) *LLMCallEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the LLMCallEventMutation object of the builder.
func (_u *LLMCallEventUpdate) Mutation() *LLMCallEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMCallEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMCallEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMCallEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMCallEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMCallEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmcallevent.Table, llmcallevent.Columns, sqlgraph.NewFieldSpec(llmcallevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmcallevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmcallevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(llmcallevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(llmcallevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(llmcallevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(llmcallevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(llmcallevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(llmcallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(llmcallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(llmcallevent.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(llmcallevent.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(llmcallevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmcallevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmcallevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMCallEventUpdateOne is the builder for updating a single LLMCallEvent entity.
type LLMCallEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMCallEventMutation
}

// SetProvider sets the "provider" field.
func (_u *LLMCallEventUpdateOne) SetProvider(v string) *LLMCallEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMCallEventUpdateOne) SetNillableProvider(v *string) *LLMCallEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMCallEventUpdateOne) SetModel(v string) *LLMCallEventUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMCallEventUpdateOne) SetNillableModel(v *string) *LLMCallEventUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *LLMCallEventUpdateOne) SetPurpose(v string) *LLMCallEventUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *LLMCallEventUpdateOne) SetNillablePurpose(v *string) *LLMCallEventUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *LLMCallEventUpdateOne) SetInputTokens(v int) *LLMCallEventUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *LLMCallEventUpdateOne) SetNillableInputTokens(v *int) *LLMCallEventUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *LLMCallEventUpdateOne) AddInputTokens(v int) *LLMCallEventUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *LLMCallEventUpdateOne) SetOutputTokens(v int) *LLMCallEventUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *LLMCallEventUpdateOne) SetNillableOutputTokens(v *int) *LLMCallEventUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *LLMCallEventUpdateOne) AddOutputTokens(v int) *LLMCallEventUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *LLMCallEventUpdateOne) SetLatencyMs(v int64) *LLMCallEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *LLMCallEventUpdateOne) SetNillableLatencyMs(v *int64) *LLMCallEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *LLMCallEventUpdateOne) AddLatencyMs(v int64) *LLMCallEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetCostUsd sets the "cost_usd" field.
func (_u *LLMCallEventUpdateOne) SetCostUsd(v float64) *LLMCallEventUpdateOne {
	_u.mutation.ResetCostUsd()
	_u.mutation.SetCostUsd(v)
	return _u
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_u *LLMCallEventUpdateOne) SetNillableCostUsd(v *float64) *LLMCallEventUpdateOne {
	if v != nil {
		_u.SetCostUsd(*v)
	}
	return _u
}

// AddCostUsd adds value to the "cost_usd" field.
func (_u *LLMCallEventUpdateOne) AddCostUsd(v float64) *LLMCallEventUpdateOne {
	_u.mutation.AddCostUsd(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *LLMCallEventUpdateOne) SetSuccess(v bool) *LLMCallEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *LLMCallEventUpdateOne) SetNillableSuccess(v *bool) *LLMCallEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMCallEventUpdateOne) SetErrorMessage(v string) *LLMCallEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMCallEventUpdateOne) SetNillableErrorMessage(v *string) *LLMCallEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the LLMCallEventMutation object of the builder.
func (_u *LLMCallEventUpdateOne) Mutation() *LLMCallEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMCallEventUpdate builder.
func (_u *LLMCallEventUpdateOne) Where(ps ...predicate.LLMCallEvent) *LLMCallEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMCallEventUpdateOne) Select(field string, fields ...string) *LLMCallEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMCallEvent entity.
func (_u *LLMCallEventUpdateOne) Save(ctx context.Context) (*LLMCallEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMCallEventUpdateOne) SaveX(ctx context.Context) *LLMCallEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMCallEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMCallEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LLMCallEventUpdateOne) sqlSave(ctx context.Context) (_node *LLMCallEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(llmcallevent.Table, llmcallevent.Columns, sqlgraph.NewFieldSpec(llmcallevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMCallEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmcallevent.FieldID)
		for _, f := range fields {
			if !llmcallevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmcallevent.FieldID {
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
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmcallevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmcallevent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(llmcallevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(llmcallevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(llmcallevent.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(llmcallevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(llmcallevent.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(llmcallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(llmcallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CostUsd(); ok {
		_spec.SetField(llmcallevent.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostUsd(); ok {
		_spec.AddField(llmcallevent.FieldCostUsd, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(llmcallevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmcallevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &LLMCallEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmcallevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
