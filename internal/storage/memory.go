package storage

import (
	"context"
	"sync"

	"github.com/avolkov/sentibot/internal/models"
)

// MemoryArchive keeps archived turns and summaries in process memory.
// It is the default sink when no database is configured.
type MemoryArchive struct {
	mu        sync.RWMutex
	turns     map[string][]models.Turn
	summaries map[string]models.ConversationSummary
}

func NewMemoryArchive() *MemoryArchive {
	return &MemoryArchive{
		turns:     make(map[string][]models.Turn),
		summaries: make(map[string]models.ConversationSummary),
	}
}

func (a *MemoryArchive) SaveTurn(ctx context.Context, conversationID string, turn models.Turn) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.turns[conversationID] = append(a.turns[conversationID], turn)
	return nil
}

func (a *MemoryArchive) SaveSummary(ctx context.Context, conversationID string, summary models.ConversationSummary) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.summaries[conversationID] = summary
	return nil
}

// Turns returns the archived turns for a conversation.
func (a *MemoryArchive) Turns(conversationID string) []models.Turn {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]models.Turn, len(a.turns[conversationID]))
	copy(out, a.turns[conversationID])
	return out
}

// Summary returns the last archived summary for a conversation.
func (a *MemoryArchive) Summary(conversationID string) (models.ConversationSummary, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	summary, ok := a.summaries[conversationID]
	return summary, ok
}

func (a *MemoryArchive) Close() error {
	// Nothing to close for the in-memory archive
	return nil
}
