package conversation

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/sentibot/internal/models"
)

// Store is the append-only log of turns for one conversation. Appends
// are serialized; reads work on copied snapshots so summary computation
// can run concurrently with an append in flight.
type Store struct {
	mu        sync.RWMutex
	id        string
	turns     []models.Turn
	startedAt time.Time
	now       func() time.Time
}

// NewStore creates an empty conversation. The clock defaults to
// time.Now and can be overridden for tests via NewStoreWithClock.
func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		id:        uuid.New().String(),
		startedAt: now(),
		now:       now,
	}
}

// ID returns the conversation identifier. A new one is generated on
// each Clear.
func (s *Store) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Append records a new turn with the next index and the current clock
// time, and returns it. Indices start at 0 and increase by 1.
func (s *Store) Append(userText, botText string, sentiment models.SentimentResult, emotion models.EmotionResult) models.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn := models.Turn{
		Index:     len(s.turns),
		UserText:  userText,
		BotText:   botText,
		Sentiment: sentiment,
		Emotion:   emotion,
		Timestamp: s.now(),
	}
	s.turns = append(s.turns, turn)
	return turn
}

// Turns returns a copy of the turn sequence in append order.
func (s *Store) Turns() []models.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the number of recorded turns.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// StartedAt returns when the conversation began (reset by Clear).
func (s *Store) StartedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.startedAt
}

// Clear discards all turns and starts a fresh conversation under a new
// identifier. Configuration (the clock) is untouched.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = nil
	s.id = uuid.New().String()
	s.startedAt = s.now()
}
