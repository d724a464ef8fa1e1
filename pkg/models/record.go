package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebateStatus is the lifecycle state of a debate.
type DebateStatus string

const (
	StatusPending   DebateStatus = "pending"
	StatusActive    DebateStatus = "active"
	StatusCompleted DebateStatus = "completed"
	StatusFailed    DebateStatus = "failed"
	StatusCancelled DebateStatus = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s DebateStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Debate is the persistence-neutral view of a debate row.
type Debate struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Question     string          `json:"question"`
	Provider     string          `json:"provider"`
	Model        string          `json:"model"`
	Settings     DebateSettings  `json:"settings"`
	Status       DebateStatus    `json:"status"`
	CurrentRound int             `json:"current_round"`
	InputTokens  int64           `json:"total_input_tokens"`
	OutputTokens int64           `json:"total_output_tokens"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	StartedAt    *time.Time      `json:"started_at,omitempty"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// PersonalityResponse is one personality's persisted contribution to a round.
type PersonalityResponse struct {
	ID            string          `json:"id"`
	RoundID       string          `json:"round_id"`
	Personality   string          `json:"personality"`
	ResponseIndex int             `json:"response_index"`
	Thinking      string          `json:"thinking,omitempty"`
	Answer        string          `json:"answer"`
	InputTokens   int64           `json:"input_tokens"`
	OutputTokens  int64           `json:"output_tokens"`
	Cost          decimal.Decimal `json:"cost"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Round is a persisted debate round with its responses in declared
// personality order.
type Round struct {
	ID          string                `json:"id"`
	DebateID    string                `json:"debate_id"`
	RoundNumber int                   `json:"round_number"`
	Responses   []PersonalityResponse `json:"responses"`
	CreatedAt   time.Time             `json:"created_at"`
}

// Synthesis is the persisted final answer of a debate.
type Synthesis struct {
	ID           string          `json:"id"`
	DebateID     string          `json:"debate_id"`
	Content      string          `json:"content"`
	InputTokens  int64           `json:"input_tokens"`
	OutputTokens int64           `json:"output_tokens"`
	Cost         decimal.Decimal `json:"cost"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DebateDetail is a debate with its full transcript.
type DebateDetail struct {
	Debate
	Rounds    []Round    `json:"rounds"`
	Synthesis *Synthesis `json:"synthesis,omitempty"`
}

// DebateList is one page of a user's debates, most recent first.
type DebateList struct {
	Debates  []Debate `json:"debates"`
	Total    int      `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}
