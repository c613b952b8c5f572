// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LLMCallEvent is the predicate function for llmcallevent builders.
type LLMCallEvent func(*sql.Selector)

// PracticeEvent is the predicate function for practiceevent builders.
type PracticeEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
