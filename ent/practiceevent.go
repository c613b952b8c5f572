// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wliu/gradewise/ent/practiceevent"
)

// PracticeEvent is the model entity for the PracticeEvent schema.
type PracticeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Student the answer belongs to
	Student string `json:"student,omitempty"`
	// Groups answers recorded together (one exam or practice run)
	SessionID string `json:"session_id,omitempty"`
	// math, chinese, or english
	Subject string `json:"subject,omitempty"`
	// Grade level of the practiced point
	Grade int `json:"grade,omitempty"`
	// Knowledge point this question exercised
	PointID string `json:"point_id,omitempty"`
	// Display name at recording time, for rendering without the graph
	PointName string `json:"point_name,omitempty"`
	// Exam question type, e.g. word_problem
	QuestionType string `json:"question_type,omitempty"`
	// Question difficulty 1-5
	Difficulty int `json:"difficulty,omitempty"`
	// Whether the student answered correctly
	Correct      bool `json:"correct,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case practiceevent.FieldID, practiceevent.FieldSequence, practiceevent.FieldGrade, practiceevent.FieldDifficulty:
			values[i] = new(sql.NullInt64)
		case practiceevent.FieldStudent, practiceevent.FieldSessionID, practiceevent.FieldSubject, practiceevent.FieldPointID, practiceevent.FieldPointName, practiceevent.FieldQuestionType:
			values[i] = new(sql.NullString)
		case practiceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeEvent fields.
func (_m *PracticeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practiceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case practiceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case practiceevent.FieldStudent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student", values[i])
			} else if value.Valid {
				_m.Student = value.String
			}
		case practiceevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case practiceevent.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case practiceevent.FieldGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = int(value.Int64)
			}
		case practiceevent.FieldPointID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field point_id", values[i])
			} else if value.Valid {
				_m.PointID = value.String
			}
		case practiceevent.FieldPointName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field point_name", values[i])
			} else if value.Valid {
				_m.PointName = value.String
			}
		case practiceevent.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case practiceevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case practiceevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeEvent.
// Note that you need to call PracticeEvent.Unwrap() before calling this method if this PracticeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeEvent) Update() *PracticeEventUpdateOne {
	return NewPracticeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeEvent) Unwrap() *PracticeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("student=")
	builder.WriteString(_m.Student)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(fmt.Sprintf("%v", _m.Grade))
	builder.WriteString(", ")
	builder.WriteString("point_id=")
	builder.WriteString(_m.PointID)
	builder.WriteString(", ")
	builder.WriteString("point_name=")
	builder.WriteString(_m.PointName)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeEvents is a parsable slice of PracticeEvent.
type PracticeEvents []*PracticeEvent
