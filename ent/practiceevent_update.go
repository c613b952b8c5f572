// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wliu/gradewise/ent/practiceevent"
	"github.com/wliu/gradewise/ent/predicate"
)

// PracticeEventUpdate is the builder for updating PracticeEvent entities.
type PracticeEventUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeEventMutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdate) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudent sets the "student" field.
func (_u *PracticeEventUpdate) SetStudent(v string) *PracticeEventUpdate {
	_u.mutation.SetStudent(v)
	return _u
}

// SetNillableStudent sets the "student" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableStudent(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetStudent(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeEventUpdate) SetSessionID(v string) *PracticeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSessionID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PracticeEventUpdate) SetSubject(v string) *PracticeEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableSubject(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PracticeEventUpdate) SetGrade(v int) *PracticeEventUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableGrade(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *PracticeEventUpdate) AddGrade(v int) *PracticeEventUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetPointID sets the "point_id" field.
func (_u *PracticeEventUpdate) SetPointID(v string) *PracticeEventUpdate {
	_u.mutation.SetPointID(v)
	return _u
}

// SetNillablePointID sets the "point_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillablePointID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetPointID(*v)
	}
	return _u
}

// SetPointName sets the "point_name" field.
func (_u *PracticeEventUpdate) SetPointName(v string) *PracticeEventUpdate {
	_u.mutation.SetPointName(v)
	return _u
}

// SetNillablePointName sets the "point_name" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillablePointName(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetPointName(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *PracticeEventUpdate) SetQuestionType(v string) *PracticeEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableQuestionType(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// ClearQuestionType clears the value of the "question_type" field.
func (_u *PracticeEventUpdate) ClearQuestionType() *PracticeEventUpdate {
	_u.mutation.ClearQuestionType()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeEventUpdate) SetDifficulty(v int) *PracticeEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableDifficulty(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *PracticeEventUpdate) AddDifficulty(v int) *PracticeEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *PracticeEventUpdate) ClearDifficulty() *PracticeEventUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PracticeEventUpdate) SetCorrect(v bool) *PracticeEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableCorrect(v *bool) *PracticeEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdate) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdate) check() error {
	if v, ok := _u.mutation.Student(); ok {
		if err := practiceevent.StudentValidator(v); err != nil {
			return &ValidationError{Name: "student", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.student": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := practiceevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointID(); ok {
		if err := practiceevent.PointIDValidator(v); err != nil {
			return &ValidationError{Name: "point_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.point_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Student(); ok {
		_spec.SetField(practiceevent.FieldStudent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(practiceevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(practiceevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(practiceevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointID(); ok {
		_spec.SetField(practiceevent.FieldPointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointName(); ok {
		_spec.SetField(practiceevent.FieldPointName, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(practiceevent.FieldQuestionType, field.TypeString, value)
	}
	if _u.mutation.QuestionTypeCleared() {
		_spec.ClearField(practiceevent.FieldQuestionType, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practiceevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(practiceevent.FieldDifficulty, field.TypeInt, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(practiceevent.FieldDifficulty, field.TypeInt)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(practiceevent.FieldCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeEventUpdateOne is the builder for updating a single PracticeEvent entity.
type PracticeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeEventMutation
}

// SetStudent sets the "student" field.
func (_u *PracticeEventUpdateOne) SetStudent(v string) *PracticeEventUpdateOne {
	_u.mutation.SetStudent(v)
	return _u
}

// SetNillableStudent sets the "student" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableStudent(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetStudent(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PracticeEventUpdateOne) SetSessionID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSessionID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PracticeEventUpdateOne) SetSubject(v string) *PracticeEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableSubject(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *PracticeEventUpdateOne) SetGrade(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableGrade(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *PracticeEventUpdateOne) AddGrade(v int) *PracticeEventUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetPointID sets the "point_id" field.
func (_u *PracticeEventUpdateOne) SetPointID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetPointID(v)
	return _u
}

// SetNillablePointID sets the "point_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillablePointID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetPointID(*v)
	}
	return _u
}

// SetPointName sets the "point_name" field.
func (_u *PracticeEventUpdateOne) SetPointName(v string) *PracticeEventUpdateOne {
	_u.mutation.SetPointName(v)
	return _u
}

// SetNillablePointName sets the "point_name" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillablePointName(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetPointName(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *PracticeEventUpdateOne) SetQuestionType(v string) *PracticeEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableQuestionType(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// ClearQuestionType clears the value of the "question_type" field.
func (_u *PracticeEventUpdateOne) ClearQuestionType() *PracticeEventUpdateOne {
	_u.mutation.ClearQuestionType()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeEventUpdateOne) SetDifficulty(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableDifficulty(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *PracticeEventUpdateOne) AddDifficulty(v int) *PracticeEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *PracticeEventUpdateOne) ClearDifficulty() *PracticeEventUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *PracticeEventUpdateOne) SetCorrect(v bool) *PracticeEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableCorrect(v *bool) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdateOne) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdateOne) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeEventUpdateOne) Select(field string, fields ...string) *PracticeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeEvent entity.
func (_u *PracticeEventUpdateOne) Save(ctx context.Context) (*PracticeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) SaveX(ctx context.Context) *PracticeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdateOne) check() error {
	if v, ok := _u.mutation.Student(); ok {
		if err := practiceevent.StudentValidator(v); err != nil {
			return &ValidationError{Name: "student", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.student": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := practiceevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PointID(); ok {
		if err := practiceevent.PointIDValidator(v); err != nil {
			return &ValidationError{Name: "point_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.point_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdateOne) sqlSave(ctx context.Context) (_node *PracticeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceevent.FieldID)
		for _, f := range fields {
			if !practiceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceevent.FieldID {
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
	if value, ok := _u.mutation.Student(); ok {
		_spec.SetField(practiceevent.FieldStudent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(practiceevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(practiceevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(practiceevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PointID(); ok {
		_spec.SetField(practiceevent.FieldPointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PointName(); ok {
		_spec.SetField(practiceevent.FieldPointName, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(practiceevent.FieldQuestionType, field.TypeString, value)
	}
	if _u.mutation.QuestionTypeCleared() {
		_spec.ClearField(practiceevent.FieldQuestionType, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practiceevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(practiceevent.FieldDifficulty, field.TypeInt, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(practiceevent.FieldDifficulty, field.TypeInt)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(practiceevent.FieldCorrect, field.TypeBool, value)
	}
	_node = &PracticeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
