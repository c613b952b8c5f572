// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wliu/gradewise/ent/practiceevent"
)

// PracticeEventCreate is the builder for creating a PracticeEvent entity.
type PracticeEventCreate struct {
	config
	mutation *PracticeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PracticeEventCreate) SetSequence(v int64) *PracticeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeEventCreate) SetTimestamp(v time.Time) *PracticeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableTimestamp(v *time.Time) *PracticeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetStudent sets the "student" field.
func (_c *PracticeEventCreate) SetStudent(v string) *PracticeEventCreate {
	_c.mutation.SetStudent(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PracticeEventCreate) SetSessionID(v string) *PracticeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PracticeEventCreate) SetSubject(v string) *PracticeEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *PracticeEventCreate) SetGrade(v int) *PracticeEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetPointID sets the "point_id" field.
func (_c *PracticeEventCreate) SetPointID(v string) *PracticeEventCreate {
	_c.mutation.SetPointID(v)
	return _c
}

// SetPointName sets the "point_name" field.
func (_c *PracticeEventCreate) SetPointName(v string) *PracticeEventCreate {
	_c.mutation.SetPointName(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *PracticeEventCreate) SetQuestionType(v string) *PracticeEventCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableQuestionType(v *string) *PracticeEventCreate {
	if v != nil {
		_c.SetQuestionType(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PracticeEventCreate) SetDifficulty(v int) *PracticeEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableDifficulty(v *int) *PracticeEventCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *PracticeEventCreate) SetCorrect(v bool) *PracticeEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_c *PracticeEventCreate) Mutation() *PracticeEventMutation {
	return _c.mutation
}

// Save creates the PracticeEvent in the database.
func (_c *PracticeEventCreate) Save(ctx context.Context) (*PracticeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeEventCreate) SaveX(ctx context.Context) *PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practiceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Student(); !ok {
		return &ValidationError{Name: "student", err: errors.New(`ent: missing required field "PracticeEvent.student"`)}
	}
	if v, ok := _c.mutation.Student(); ok {
		if err := practiceevent.StudentValidator(v); err != nil {
			return &ValidationError{Name: "student", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.student": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PracticeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := practiceevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "PracticeEvent.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := practiceevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "PracticeEvent.grade"`)}
	}
	if _, ok := _c.mutation.PointID(); !ok {
		return &ValidationError{Name: "point_id", err: errors.New(`ent: missing required field "PracticeEvent.point_id"`)}
	}
	if v, ok := _c.mutation.PointID(); ok {
		if err := practiceevent.PointIDValidator(v); err != nil {
			return &ValidationError{Name: "point_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.point_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PointName(); !ok {
		return &ValidationError{Name: "point_name", err: errors.New(`ent: missing required field "PracticeEvent.point_name"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "PracticeEvent.correct"`)}
	}
	return nil
}

func (_c *PracticeEventCreate) sqlSave(ctx context.Context) (*PracticeEvent, error) {
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

func (_c *PracticeEventCreate) createSpec() (*PracticeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practiceevent.Table, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(practiceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practiceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Student(); ok {
		_spec.SetField(practiceevent.FieldStudent, field.TypeString, value)
		_node.Student = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(practiceevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(practiceevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(practiceevent.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.PointID(); ok {
		_spec.SetField(practiceevent.FieldPointID, field.TypeString, value)
		_node.PointID = value
	}
	if value, ok := _c.mutation.PointName(); ok {
		_spec.SetField(practiceevent.FieldPointName, field.TypeString, value)
		_node.PointName = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(practiceevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(practiceevent.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(practiceevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	return _node, _spec
}

// PracticeEventCreateBulk is the builder for creating many PracticeEvent entities in bulk.
type PracticeEventCreateBulk struct {
	config
	err      error
	builders []*PracticeEventCreate
}

// Save creates the PracticeEvent entities in the database.
func (_c *PracticeEventCreateBulk) Save(ctx context.Context) ([]*PracticeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeEventMutation)
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
func (_c *PracticeEventCreateBulk) SaveX(ctx context.Context) []*PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
