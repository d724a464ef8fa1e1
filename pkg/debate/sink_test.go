package debate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, s *Sink) []Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	var out []Event
	for {
		ev, ok := s.Next(ctx)
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestSinkPassthrough(t *testing.T) {
	s := NewSink(nil)
	s.Send(RoundStartedEvent{Round: 1})
	s.Send(TokenEvent{Personality: "a", Content: "hi"})
	s.Send(RoundCompletedEvent{Round: 1})
	s.Close()

	events := drain(t, s)
	require.Len(t, events, 3)
	assert.Equal(t, RoundStartedEvent{Round: 1}, events[0])
	assert.Equal(t, TokenEvent{Personality: "a", Content: "hi"}, events[1])
}

func TestSinkCoalescesTokensWhenFull(t *testing.T) {
	s := NewSink(nil, WithCapacity(2))
	s.Send(TokenEvent{Personality: "b", Content: "y"})
	s.Send(TokenEvent{Personality: "a", Content: "x"})
	// Queue is full: chunks merge into the tail token of the same
	// personality instead of growing the queue.
	s.Send(TokenEvent{Personality: "a", Content: "1"})
	s.Send(TokenEvent{Personality: "a", Content: "2"})
	s.Close()

	events := drain(t, s)
	require.Len(t, events, 2)
	assert.Equal(t, TokenEvent{Personality: "b", Content: "y"}, events[0])
	assert.Equal(t, TokenEvent{Personality: "a", Content: "x12"}, events[1])
}

func TestSinkCoalesceOnlyMergesQueueTail(t *testing.T) {
	t.Run("different personality at the tail blocks the merge", func(t *testing.T) {
		s := NewSink(nil, WithCapacity(2))
		s.Send(TokenEvent{Personality: "a", Content: "x"})
		s.Send(TokenEvent{Personality: "b", Content: "y"})
		s.Send(TokenEvent{Personality: "a", Content: "1"})
		s.Close()

		events := drain(t, s)
		require.Len(t, events, 3)
		assert.Equal(t, TokenEvent{Personality: "a", Content: "x"}, events[0])
		assert.Equal(t, TokenEvent{Personality: "b", Content: "y"}, events[1])
		assert.Equal(t, TokenEvent{Personality: "a", Content: "1"}, events[2])
	})

	t.Run("chunks never merge across a lifecycle boundary", func(t *testing.T) {
		// A personality speaking again in a later round must not have its
		// new chunks folded into a token queued before its
		// personality_completed event.
		s := NewSink(nil, WithCapacity(1))
		s.Send(TokenEvent{Personality: "a", Content: "round1"})
		s.Send(PersonalityCompletedEvent{Round: 1, Personality: "a", FullText: "round1"})
		s.Send(PersonalityStartedEvent{Round: 2, Personality: "a"})
		s.Send(TokenEvent{Personality: "a", Content: "round2"})
		s.Close()

		events := drain(t, s)
		require.Len(t, events, 4)
		assert.Equal(t, TokenEvent{Personality: "a", Content: "round1"}, events[0])
		assert.Equal(t, PersonalityCompletedEvent{Round: 1, Personality: "a", FullText: "round1"}, events[1])
		assert.Equal(t, PersonalityStartedEvent{Round: 2, Personality: "a"}, events[2])
		assert.Equal(t, TokenEvent{Personality: "a", Content: "round2"}, events[3])
	})
}

func TestSinkNeverDropsLifecycleEvents(t *testing.T) {
	s := NewSink(nil, WithCapacity(1))
	s.Send(TokenEvent{Personality: "a", Content: "x"})
	s.Send(PersonalityCompletedEvent{Personality: "a"})
	s.Send(RoundCompletedEvent{Round: 1})
	s.Send(DebateCompletedEvent{})
	s.Close()

	events := drain(t, s)
	require.Len(t, events, 4, "lifecycle events ride over the bound")
}

func TestSinkStallCancelsDebate(t *testing.T) {
	now := time.Now()
	stalled := false
	s := NewSink(func() { stalled = true },
		WithCapacity(1),
		WithStallTimeout(10*time.Second),
		withClock(func() time.Time { return now }))

	s.Send(TokenEvent{Personality: "a", Content: "x"})
	s.Send(RoundStartedEvent{Round: 1})
	assert.False(t, stalled, "within deadline")

	now = now.Add(11 * time.Second)
	s.Send(RoundStartedEvent{Round: 2})
	assert.True(t, stalled, "full queue past deadline must trigger the stall callback")

	// The callback fires only once.
	stalled = false
	now = now.Add(time.Minute)
	s.Send(RoundStartedEvent{Round: 3})
	assert.False(t, stalled)
}

func TestSinkSendAfterCloseIsNoop(t *testing.T) {
	s := NewSink(nil)
	s.Close()
	s.Send(TokenEvent{Personality: "a", Content: "x"})
	events := drain(t, s)
	assert.Empty(t, events)
}

func TestSinkNextUnblocksOnSend(t *testing.T) {
	s := NewSink(nil)
	done := make(chan Event, 1)
	go func() {
		ev, _ := s.Next(context.Background())
		done <- ev
	}()

	time.Sleep(10 * time.Millisecond)
	s.Send(TokenEvent{Personality: "a", Content: "late"})

	select {
	case ev := <-done:
		assert.Equal(t, TokenEvent{Personality: "a", Content: "late"}, ev)
	case <-time.After(time.Second):
		t.Fatal("Next did not wake on Send")
	}
}
