package analytics

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/avolkov/sentibot/internal/models"
)

func TestComputeStatisticsEmpty(t *testing.T) {
	t.Parallel()

	got := ComputeStatistics(nil)
	if got.MessageCount != 0 {
		t.Fatalf("message count=%d, want 0", got.MessageCount)
	}
	if got.AverageScore != 0 || got.SentimentVariance != 0 || got.MessagesPerMinute != 0 {
		t.Fatalf("empty conversation produced nonzero aggregates: %+v", got)
	}
}

func TestComputeStatisticsSingleTurn(t *testing.T) {
	t.Parallel()

	turns := []models.Turn{{
		UserText:  "this is great",
		BotText:   "glad to hear it",
		Sentiment: models.SentimentResult{Label: models.SentimentPositive, Compound: 0.62},
		Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}}

	got := ComputeStatistics(turns)
	if got.MessageCount != 1 {
		t.Fatalf("message count=%d, want 1", got.MessageCount)
	}
	if got.AverageScore != 0.62 {
		t.Fatalf("average=%v, want the single compound score", got.AverageScore)
	}
	if got.SentimentVariance != 0 {
		t.Fatalf("variance=%v, want 0 for one turn", got.SentimentVariance)
	}
	if got.MessagesPerMinute != 0 {
		t.Fatalf("messages/min=%v, want 0 sentinel with zero elapsed time", got.MessagesPerMinute)
	}
}

func TestComputeStatisticsAggregates(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	turns := []models.Turn{
		{
			UserText:  "I love this product",                              // 4 tokens
			BotText:   "thanks",                                           // 1 token
			Sentiment: models.SentimentResult{Label: models.SentimentPositive, Compound: 0.6},
			Timestamp: base,
		},
		{
			UserText:  "but the app keeps crashing",                       // 5 tokens
			BotText:   "sorry about that",                                 // 3 tokens
			Sentiment: models.SentimentResult{Label: models.SentimentNegative, Compound: -0.4},
			Timestamp: base.Add(time.Minute),
		},
		{
			UserText:  "ok",                                               // 1 token
			BotText:   "let me know",                                      // 3 tokens
			Sentiment: models.SentimentResult{Label: models.SentimentNeutral, Compound: 0.0},
			Timestamp: base.Add(2 * time.Minute),
		},
	}

	got := ComputeStatistics(turns)

	wantAvg := (0.6 - 0.4 + 0.0) / 3
	if math.Abs(got.AverageScore-wantAvg) > 1e-9 {
		t.Fatalf("average=%v, want %v", got.AverageScore, wantAvg)
	}

	wantVar := (math.Pow(0.6-wantAvg, 2) + math.Pow(-0.4-wantAvg, 2) + math.Pow(0.0-wantAvg, 2)) / 3
	if math.Abs(got.SentimentVariance-wantVar) > 1e-9 {
		t.Fatalf("variance=%v, want %v (population)", got.SentimentVariance, wantVar)
	}

	if math.Abs(got.MessagesPerMinute-1.5) > 1e-9 {
		t.Fatalf("messages/min=%v, want 1.5 (3 turns over 2 minutes)", got.MessagesPerMinute)
	}

	// 10 user tokens of 17 total
	if math.Abs(got.EngagementRatio-10.0/17.0) > 1e-9 {
		t.Fatalf("engagement=%v, want 10/17", got.EngagementRatio)
	}
	if got.TotalWords != 17 {
		t.Fatalf("total words=%d, want 17", got.TotalWords)
	}

	if got.MostPositiveText != "I love this product" {
		t.Fatalf("most positive=%q", got.MostPositiveText)
	}
	if got.MostNegativeText != "but the app keeps crashing" {
		t.Fatalf("most negative=%q", got.MostNegativeText)
	}
	if got.Duration != 2*time.Minute {
		t.Fatalf("duration=%v, want 2m", got.Duration)
	}
}

func TestComputeStatisticsDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	turns := []models.Turn{
		{UserText: "fine", Sentiment: models.SentimentResult{Compound: 0.1}},
		{UserText: "fine", Sentiment: models.SentimentResult{Compound: 0.2}},
	}
	before := make([]models.Turn, len(turns))
	copy(before, turns)

	_ = ComputeStatistics(turns)

	for i := range turns {
		if !reflect.DeepEqual(turns[i], before[i]) {
			t.Fatalf("input turn %d mutated", i)
		}
	}
}
