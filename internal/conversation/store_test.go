package conversation

import (
	"sync"
	"testing"
	"time"

	"github.com/avolkov/sentibot/internal/models"
)

func testClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	var mu sync.Mutex
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := current
		current = current.Add(step)
		return t
	}
}

func TestAppendAssignsMonotonicIndices(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s := NewStoreWithClock(testClock(start, time.Minute))

	for i := 0; i < 5; i++ {
		turn := s.Append("hi", "hello", models.SentimentResult{}, models.EmotionResult{})
		if turn.Index != i {
			t.Fatalf("turn %d got index %d", i, turn.Index)
		}
	}

	turns := s.Turns()
	if len(turns) != 5 {
		t.Fatalf("len(turns)=%d, want 5", len(turns))
	}
	for i, turn := range turns {
		if turn.Index != i {
			t.Fatalf("turns[%d].Index=%d", i, turn.Index)
		}
	}
	if !turns[1].Timestamp.After(turns[0].Timestamp) {
		t.Fatalf("timestamps not increasing: %v then %v", turns[0].Timestamp, turns[1].Timestamp)
	}
}

func TestClearResetsIndexAndIdentity(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Append("a", "b", models.SentimentResult{}, models.EmotionResult{})
	s.Append("c", "d", models.SentimentResult{}, models.EmotionResult{})

	oldID := s.ID()
	s.Clear()

	if s.Len() != 0 {
		t.Fatalf("Len()=%d after Clear, want 0", s.Len())
	}
	if s.ID() == oldID {
		t.Fatalf("Clear did not rotate the conversation id")
	}

	turn := s.Append("e", "f", models.SentimentResult{}, models.EmotionResult{})
	if turn.Index != 0 {
		t.Fatalf("index after Clear=%d, want 0", turn.Index)
	}
}

func TestTurnsReturnsSnapshot(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.Append("a", "b", models.SentimentResult{}, models.EmotionResult{})

	snapshot := s.Turns()
	snapshot[0].UserText = "mutated"

	if got := s.Turns()[0].UserText; got != "a" {
		t.Fatalf("store visible mutation: %q", got)
	}
}

func TestConcurrentAppendsAndReads(t *testing.T) {
	t.Parallel()

	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Append("u", "b", models.SentimentResult{}, models.EmotionResult{})
		}()
		go func() {
			defer wg.Done()
			_ = s.Turns()
			_ = s.Len()
		}()
	}
	wg.Wait()

	turns := s.Turns()
	if len(turns) != 20 {
		t.Fatalf("len(turns)=%d, want 20", len(turns))
	}
	seen := make(map[int]bool)
	for _, turn := range turns {
		if seen[turn.Index] {
			t.Fatalf("duplicate index %d", turn.Index)
		}
		seen[turn.Index] = true
	}
}
