// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Debate is the predicate function for debate builders.
type Debate func(*sql.Selector)

// DebateRound is the predicate function for debateround builders.
type DebateRound func(*sql.Selector)

// DebateSynthesis is the predicate function for debatesynthesis builders.
type DebateSynthesis func(*sql.Selector)

// PersonalityResponse is the predicate function for personalityresponse builders.
type PersonalityResponse func(*sql.Selector)

// UsageRecord is the predicate function for usagerecord builders.
type UsageRecord func(*sql.Selector)
