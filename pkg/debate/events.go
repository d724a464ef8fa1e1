// Package debate implements the round-by-round orchestration engine: the
// state machine, parallel personality fan-out, consensus judging, synthesis,
// and the event pipeline that streams tokens to clients while persisting the
// transcript.
package debate

// Event is the interface for all internal engine events. The engine and
// round executor produce Events into a Sink; the Mapper consumes them,
// persists side effects, and re-emits client envelopes.
type Event interface {
	eventKind() eventKind
}

type eventKind string

const (
	kindToken                 eventKind = "token"
	kindDebateStarted         eventKind = "debate_started"
	kindRoundStarted          eventKind = "round_started"
	kindRoundCompleted        eventKind = "round_completed"
	kindPersonalityStarted    eventKind = "personality_started"
	kindPersonalityCompleted  eventKind = "personality_completed"
	kindConsensusCheckStarted eventKind = "consensus_check_started"
	kindConsensusChecked      eventKind = "consensus_checked"
	kindSynthesisStarted      eventKind = "synthesis_started"
	kindSynthesisCompleted    eventKind = "synthesis_completed"
	kindDebateCompleted       eventKind = "debate_completed"
	kindDebateFailed          eventKind = "debate_failed"
)

// TokenEvent is one streamed delta from a personality (or the synthesizer).
type TokenEvent struct {
	Personality string
	Content     string
}

// DebateStartedEvent opens the stream.
type DebateStartedEvent struct{}

// RoundStartedEvent announces a round. Emitted after the round row is
// persisted.
type RoundStartedEvent struct {
	Round int
}

// RoundCompletedEvent closes a round.
type RoundCompletedEvent struct {
	Round int
}

// PersonalityStartedEvent marks the beginning of one personality's turn.
type PersonalityStartedEvent struct {
	Round       int
	Personality string
}

// PersonalityCompletedEvent carries the turn's full text and token
// accounting. Estimated marks counts produced by the local tokenizer rather
// than the provider.
type PersonalityCompletedEvent struct {
	Round         int
	Personality   string
	ResponseIndex int
	FullText      string
	InputTokens   int64
	OutputTokens  int64
	CachedTokens  int64
	Estimated     bool
}

// ConsensusCheckStartedEvent announces the consensus phase of a round.
// Skipped is true for round 1, where the check never runs and no
// ConsensusCheckedEvent follows.
type ConsensusCheckStartedEvent struct {
	Round   int
	Skipped bool
}

// ConsensusCheckedEvent reports the judge's verdict after a round.
type ConsensusCheckedEvent struct {
	Round        int
	Reached      bool
	Reasoning    string
	InputTokens  int64
	OutputTokens int64
	Estimated    bool
}

// SynthesisStartedEvent marks the beginning of the synthesizer turn.
type SynthesisStartedEvent struct{}

// SynthesisCompletedEvent carries the final answer and its accounting.
type SynthesisCompletedEvent struct {
	FullText     string
	InputTokens  int64
	OutputTokens int64
	Estimated    bool
}

// DebateCompletedEvent terminates a successful debate.
type DebateCompletedEvent struct{}

// DebateFailedEvent terminates a failed or cancelled debate.
type DebateFailedEvent struct {
	Reason    string
	Cancelled bool
}

func (TokenEvent) eventKind() eventKind                 { return kindToken }
func (DebateStartedEvent) eventKind() eventKind         { return kindDebateStarted }
func (RoundStartedEvent) eventKind() eventKind          { return kindRoundStarted }
func (RoundCompletedEvent) eventKind() eventKind        { return kindRoundCompleted }
func (PersonalityStartedEvent) eventKind() eventKind    { return kindPersonalityStarted }
func (PersonalityCompletedEvent) eventKind() eventKind  { return kindPersonalityCompleted }
func (ConsensusCheckStartedEvent) eventKind() eventKind { return kindConsensusCheckStarted }
func (ConsensusCheckedEvent) eventKind() eventKind      { return kindConsensusChecked }
func (SynthesisStartedEvent) eventKind() eventKind      { return kindSynthesisStarted }
func (SynthesisCompletedEvent) eventKind() eventKind    { return kindSynthesisCompleted }
func (DebateCompletedEvent) eventKind() eventKind       { return kindDebateCompleted }
func (DebateFailedEvent) eventKind() eventKind          { return kindDebateFailed }
