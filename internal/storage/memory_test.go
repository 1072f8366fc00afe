package storage

import (
	"context"
	"testing"

	"github.com/avolkov/sentibot/internal/models"
)

func TestMemoryArchiveRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := NewMemoryArchive()

	turn := models.Turn{
		Index:     0,
		UserText:  "hello",
		BotText:   "hi",
		Sentiment: models.SentimentResult{Label: models.SentimentNeutral},
	}
	if err := a.SaveTurn(ctx, "conv-1", turn); err != nil {
		t.Fatalf("SaveTurn failed: %v", err)
	}
	if err := a.SaveTurn(ctx, "conv-1", models.Turn{Index: 1}); err != nil {
		t.Fatalf("SaveTurn failed: %v", err)
	}

	turns := a.Turns("conv-1")
	if len(turns) != 2 {
		t.Fatalf("len(turns)=%d, want 2", len(turns))
	}
	if turns[0].UserText != "hello" {
		t.Fatalf("turns[0].UserText=%q", turns[0].UserText)
	}

	summary := models.ConversationSummary{OverallSentiment: models.SentimentPositive}
	if err := a.SaveSummary(ctx, "conv-1", summary); err != nil {
		t.Fatalf("SaveSummary failed: %v", err)
	}
	got, ok := a.Summary("conv-1")
	if !ok {
		t.Fatalf("summary not found after save")
	}
	if got.OverallSentiment != models.SentimentPositive {
		t.Fatalf("overall=%v, want positive", got.OverallSentiment)
	}

	if a.Turns("other") != nil && len(a.Turns("other")) != 0 {
		t.Fatalf("unexpected turns for unknown conversation")
	}
}
