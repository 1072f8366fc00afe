package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/avolkov/sentibot/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

// PostgresArchive records turns and summaries to Postgres.
type PostgresArchive struct {
	db *sql.DB
}

func NewPostgresArchive(config DatabaseConfig) (*PostgresArchive, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	archive := &PostgresArchive{db: db}
	if err := archive.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}
	return archive, nil
}

func (a *PostgresArchive) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	if _, err := a.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}
	return nil
}

func (a *PostgresArchive) SaveTurn(ctx context.Context, conversationID string, turn models.Turn) error {
	query := `
		INSERT INTO turns (conversation_id, turn_index, user_text, bot_text,
			sentiment_label, compound_score, primary_emotion, emotion_confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := a.db.ExecContext(ctx, query,
		conversationID,
		turn.Index,
		turn.UserText,
		turn.BotText,
		string(turn.Sentiment.Label),
		turn.Sentiment.Compound,
		string(turn.Emotion.Primary),
		turn.Emotion.Confidence,
		turn.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("error saving turn: %v", err)
	}
	return nil
}

func (a *PostgresArchive) SaveSummary(ctx context.Context, conversationID string, summary models.ConversationSummary) error {
	query := `
		INSERT INTO summaries (conversation_id, overall_sentiment, mood_trend, trend_descriptor,
			positive_count, negative_count, neutral_count, average_score, message_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := a.db.ExecContext(ctx, query,
		conversationID,
		string(summary.OverallSentiment),
		string(summary.MoodTrend.Direction),
		summary.MoodTrend.Descriptor,
		summary.PositiveCount,
		summary.NegativeCount,
		summary.NeutralCount,
		summary.AverageScore,
		summary.Statistics.MessageCount,
	)
	if err != nil {
		return fmt.Errorf("error saving summary: %v", err)
	}
	return nil
}

func (a *PostgresArchive) Close() error {
	return a.db.Close()
}
