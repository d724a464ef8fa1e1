package debate

import (
	"context"
	"sync"
	"time"
)

const (
	// defaultSinkCapacity bounds the per-debate event queue.
	defaultSinkCapacity = 1024

	// defaultStallTimeout is how long the producer tolerates a full queue
	// with no consumption before cancelling the debate.
	defaultStallTimeout = 30 * time.Second
)

// Sink is the bounded multi-producer single-consumer queue between the
// engine and the mapper. Enqueue never blocks: when the consumer falls
// behind, the oldest token chunks are coalesced with a later chunk from the
// same personality. Lifecycle, cost, and terminal events are never dropped
// or merged. A consumer stalled past the deadline cancels the debate.
type Sink struct {
	capacity     int
	stallTimeout time.Duration
	onStall      func()
	now          func() time.Time

	mu          sync.Mutex
	queue       []Event
	closed      bool
	stalled     bool
	lastConsume time.Time
	notify      chan struct{}
}

// SinkOption customizes a Sink.
type SinkOption func(*Sink)

// WithCapacity overrides the queue bound.
func WithCapacity(n int) SinkOption {
	return func(s *Sink) { s.capacity = n }
}

// WithStallTimeout overrides the consumer stall deadline.
func WithStallTimeout(d time.Duration) SinkOption {
	return func(s *Sink) { s.stallTimeout = d }
}

// withClock replaces the time source for tests.
func withClock(now func() time.Time) SinkOption {
	return func(s *Sink) { s.now = now }
}

// NewSink creates a sink. onStall is invoked exactly once if the consumer
// stalls past the deadline while the queue is full; it typically cancels the
// debate context. It may be nil.
func NewSink(onStall func(), opts ...SinkOption) *Sink {
	s := &Sink{
		capacity:     defaultSinkCapacity,
		stallTimeout: defaultStallTimeout,
		onStall:      onStall,
		now:          time.Now,
		notify:       make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastConsume = s.now()
	return s
}

// Send enqueues an event without blocking.
func (s *Sink) Send(ev Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	var stall func()
	if len(s.queue) >= s.capacity {
		if tok, ok := ev.(TokenEvent); ok && s.coalesce(tok) {
			s.mu.Unlock()
			s.signal()
			return
		}
		if !s.stalled && s.now().Sub(s.lastConsume) > s.stallTimeout {
			s.stalled = true
			stall = s.onStall
		}
	}

	// Non-coalescible events ride over the bound rather than being lost.
	s.queue = append(s.queue, ev)
	s.mu.Unlock()
	s.signal()

	if stall != nil {
		stall()
	}
}

// coalesce merges tok into the queue tail when the tail is a token from the
// same personality. Merging past the tail would move the chunk ahead of any
// lifecycle event queued in between, reordering the stream. Caller holds the
// lock.
func (s *Sink) coalesce(tok TokenEvent) bool {
	if len(s.queue) == 0 {
		return false
	}
	tail, ok := s.queue[len(s.queue)-1].(TokenEvent)
	if !ok || tail.Personality != tok.Personality {
		return false
	}
	tail.Content += tok.Content
	s.queue[len(s.queue)-1] = tail
	return true
}

// Next returns the next event, blocking until one is available, the sink is
// closed and drained, or ctx ends.
func (s *Sink) Next(ctx context.Context) (Event, bool) {
	for {
		s.mu.Lock()
		if len(s.queue) > 0 {
			ev := s.queue[0]
			s.queue = s.queue[1:]
			s.lastConsume = s.now()
			s.mu.Unlock()
			return ev, true
		}
		closed := s.closed
		s.mu.Unlock()
		if closed {
			return nil, false
		}

		select {
		case <-s.notify:
		case <-ctx.Done():
			return nil, false
		}
	}
}

// Close marks the producer side finished. Queued events remain readable.
func (s *Sink) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.signal()
}

func (s *Sink) signal() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}
