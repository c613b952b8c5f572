// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/wliu/gradewise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Student applies equality check predicate on the "student" field. It's identical to StudentEQ.
func Student(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldStudent, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSessionID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSubject, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldGrade, v))
}

// PointID applies equality check predicate on the "point_id" field. It's identical to PointIDEQ.
func PointID(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldPointID, v))
}

// PointName applies equality check predicate on the "point_name" field. It's identical to PointNameEQ.
func PointName(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldPointName, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldQuestionType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// StudentEQ applies the EQ predicate on the "student" field.
func StudentEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldStudent, v))
}

// StudentNEQ applies the NEQ predicate on the "student" field.
func StudentNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldStudent, v))
}

// StudentIn applies the In predicate on the "student" field.
func StudentIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldStudent, vs...))
}

// StudentNotIn applies the NotIn predicate on the "student" field.
func StudentNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldStudent, vs...))
}

// StudentGT applies the GT predicate on the "student" field.
func StudentGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldStudent, v))
}

// StudentGTE applies the GTE predicate on the "student" field.
func StudentGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldStudent, v))
}

// StudentLT applies the LT predicate on the "student" field.
func StudentLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldStudent, v))
}

// StudentLTE applies the LTE predicate on the "student" field.
func StudentLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldStudent, v))
}

// StudentContains applies the Contains predicate on the "student" field.
func StudentContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldStudent, v))
}

// StudentHasPrefix applies the HasPrefix predicate on the "student" field.
func StudentHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldStudent, v))
}

// StudentHasSuffix applies the HasSuffix predicate on the "student" field.
func StudentHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldStudent, v))
}

// StudentEqualFold applies the EqualFold predicate on the "student" field.
func StudentEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldStudent, v))
}

// StudentContainsFold applies the ContainsFold predicate on the "student" field.
func StudentContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldStudent, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldSubject, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldGrade, v))
}

// PointIDEQ applies the EQ predicate on the "point_id" field.
func PointIDEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldPointID, v))
}

// PointIDNEQ applies the NEQ predicate on the "point_id" field.
func PointIDNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldPointID, v))
}

// PointIDIn applies the In predicate on the "point_id" field.
func PointIDIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldPointID, vs...))
}

// PointIDNotIn applies the NotIn predicate on the "point_id" field.
func PointIDNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldPointID, vs...))
}

// PointIDGT applies the GT predicate on the "point_id" field.
func PointIDGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldPointID, v))
}

// PointIDGTE applies the GTE predicate on the "point_id" field.
func PointIDGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldPointID, v))
}

// PointIDLT applies the LT predicate on the "point_id" field.
func PointIDLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldPointID, v))
}

// PointIDLTE applies the LTE predicate on the "point_id" field.
func PointIDLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldPointID, v))
}

// PointIDContains applies the Contains predicate on the "point_id" field.
func PointIDContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldPointID, v))
}

// PointIDHasPrefix applies the HasPrefix predicate on the "point_id" field.
func PointIDHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldPointID, v))
}

// PointIDHasSuffix applies the HasSuffix predicate on the "point_id" field.
func PointIDHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldPointID, v))
}

// PointIDEqualFold applies the EqualFold predicate on the "point_id" field.
func PointIDEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldPointID, v))
}

// PointIDContainsFold applies the ContainsFold predicate on the "point_id" field.
func PointIDContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldPointID, v))
}

// PointNameEQ applies the EQ predicate on the "point_name" field.
func PointNameEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldPointName, v))
}

// PointNameNEQ applies the NEQ predicate on the "point_name" field.
func PointNameNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldPointName, v))
}

// PointNameIn applies the In predicate on the "point_name" field.
func PointNameIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldPointName, vs...))
}

// PointNameNotIn applies the NotIn predicate on the "point_name" field.
func PointNameNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldPointName, vs...))
}

// PointNameGT applies the GT predicate on the "point_name" field.
func PointNameGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldPointName, v))
}

// PointNameGTE applies the GTE predicate on the "point_name" field.
func PointNameGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldPointName, v))
}

// PointNameLT applies the LT predicate on the "point_name" field.
func PointNameLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldPointName, v))
}

// PointNameLTE applies the LTE predicate on the "point_name" field.
func PointNameLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldPointName, v))
}

// PointNameContains applies the Contains predicate on the "point_name" field.
func PointNameContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldPointName, v))
}

// PointNameHasPrefix applies the HasPrefix predicate on the "point_name" field.
func PointNameHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldPointName, v))
}

// PointNameHasSuffix applies the HasSuffix predicate on the "point_name" field.
func PointNameHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldPointName, v))
}

// PointNameEqualFold applies the EqualFold predicate on the "point_name" field.
func PointNameEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldPointName, v))
}

// PointNameContainsFold applies the ContainsFold predicate on the "point_name" field.
func PointNameContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldPointName, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeIsNil applies the IsNil predicate on the "question_type" field.
func QuestionTypeIsNil() predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIsNull(FieldQuestionType))
}

// QuestionTypeNotNil applies the NotNil predicate on the "question_type" field.
func QuestionTypeNotNil() predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotNull(FieldQuestionType))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldQuestionType, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyIsNil applies the IsNil predicate on the "difficulty" field.
func DifficultyIsNil() predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIsNull(FieldDifficulty))
}

// DifficultyNotNil applies the NotNil predicate on the "difficulty" field.
func DifficultyNotNil() predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotNull(FieldDifficulty))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.NotPredicates(p))
}
