// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/wliu/gradewise/ent/llmcallevent"
	"github.com/wliu/gradewise/ent/practiceevent"
	"github.com/wliu/gradewise/ent/schema"
	"github.com/wliu/gradewise/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmcalleventMixin := schema.LLMCallEvent{}.Mixin()
	llmcalleventMixinFields0 := llmcalleventMixin[0].Fields()
	_ = llmcalleventMixinFields0
	llmcalleventFields := schema.LLMCallEvent{}.Fields()
	_ = llmcalleventFields
	// llmcalleventDescTimestamp is the schema descriptor for timestamp field.
	llmcalleventDescTimestamp := llmcalleventMixinFields0[1].Descriptor()
	// llmcallevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmcallevent.DefaultTimestamp = llmcalleventDescTimestamp.Default.(func() time.Time)
	// llmcalleventDescInputTokens is the schema descriptor for input_tokens field.
	llmcalleventDescInputTokens := llmcalleventFields[3].Descriptor()
	// llmcallevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmcallevent.DefaultInputTokens = llmcalleventDescInputTokens.Default.(int)
	// llmcalleventDescOutputTokens is the schema descriptor for output_tokens field.
	llmcalleventDescOutputTokens := llmcalleventFields[4].Descriptor()
	// llmcallevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmcallevent.DefaultOutputTokens = llmcalleventDescOutputTokens.Default.(int)
	// llmcalleventDescLatencyMs is the schema descriptor for latency_ms field.
	llmcalleventDescLatencyMs := llmcalleventFields[5].Descriptor()
	// llmcallevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmcallevent.DefaultLatencyMs = llmcalleventDescLatencyMs.Default.(int64)
	// llmcalleventDescCostUsd is the schema descriptor for cost_usd field.
	llmcalleventDescCostUsd := llmcalleventFields[6].Descriptor()
	// llmcallevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmcallevent.DefaultCostUsd = llmcalleventDescCostUsd.Default.(float64)
	// llmcalleventDescErrorMessage is the schema descriptor for error_message field.
	llmcalleventDescErrorMessage := llmcalleventFields[8].Descriptor()
	// llmcallevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmcallevent.DefaultErrorMessage = llmcalleventDescErrorMessage.Default.(string)
	practiceeventMixin := schema.PracticeEvent{}.Mixin()
	practiceeventMixinFields0 := practiceeventMixin[0].Fields()
	_ = practiceeventMixinFields0
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescTimestamp is the schema descriptor for timestamp field.
	practiceeventDescTimestamp := practiceeventMixinFields0[1].Descriptor()
	// practiceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceevent.DefaultTimestamp = practiceeventDescTimestamp.Default.(func() time.Time)
	// practiceeventDescStudent is the schema descriptor for student field.
	practiceeventDescStudent := practiceeventFields[0].Descriptor()
	// practiceevent.StudentValidator is a validator for the "student" field. It is called by the builders before save.
	practiceevent.StudentValidator = practiceeventDescStudent.Validators[0].(func(string) error)
	// practiceeventDescSessionID is the schema descriptor for session_id field.
	practiceeventDescSessionID := practiceeventFields[1].Descriptor()
	// practiceevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practiceevent.SessionIDValidator = practiceeventDescSessionID.Validators[0].(func(string) error)
	// practiceeventDescSubject is the schema descriptor for subject field.
	practiceeventDescSubject := practiceeventFields[2].Descriptor()
	// practiceevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	practiceevent.SubjectValidator = practiceeventDescSubject.Validators[0].(func(string) error)
	// practiceeventDescPointID is the schema descriptor for point_id field.
	practiceeventDescPointID := practiceeventFields[4].Descriptor()
	// practiceevent.PointIDValidator is a validator for the "point_id" field. It is called by the builders before save.
	practiceevent.PointIDValidator = practiceeventDescPointID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescStudent is the schema descriptor for student field.
	snapshotDescStudent := snapshotFields[0].Descriptor()
	// snapshot.StudentValidator is a validator for the "student" field. It is called by the builders before save.
	snapshot.StudentValidator = snapshotDescStudent.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
