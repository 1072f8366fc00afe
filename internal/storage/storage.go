package storage

import (
	"context"

	"github.com/avolkov/sentibot/internal/models"
)

// Archive is a write-only export sink for turns and summaries. The
// in-memory conversation store stays the source of truth for the
// session; archive failures must never corrupt it.
type Archive interface {
	SaveTurn(ctx context.Context, conversationID string, turn models.Turn) error
	SaveSummary(ctx context.Context, conversationID string, summary models.ConversationSummary) error
	Close() error
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}
