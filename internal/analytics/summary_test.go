package analytics

import (
	"reflect"
	"testing"

	"github.com/avolkov/sentibot/internal/models"
)

func labeledTurn(label models.SentimentLabel, compound float64) models.Turn {
	return models.Turn{Sentiment: models.SentimentResult{Label: label, Compound: compound}}
}

func TestBuildMajorityLabel(t *testing.T) {
	t.Parallel()

	b := NewSummaryBuilder(NewTrendAnalyzer(0))

	turns := []models.Turn{
		labeledTurn(models.SentimentPositive, 0.6),
		labeledTurn(models.SentimentPositive, 0.4),
		labeledTurn(models.SentimentNegative, -0.3),
	}
	got := b.Build(turns)

	if got.OverallSentiment != models.SentimentPositive {
		t.Fatalf("overall=%v, want positive", got.OverallSentiment)
	}
	if got.PositiveCount != 2 || got.NegativeCount != 1 || got.NeutralCount != 0 {
		t.Fatalf("counts=%d/%d/%d, want 2/1/0", got.PositiveCount, got.NegativeCount, got.NeutralCount)
	}
}

func TestBuildTieResolvesToNeutral(t *testing.T) {
	t.Parallel()

	b := NewSummaryBuilder(NewTrendAnalyzer(0))

	turns := []models.Turn{
		labeledTurn(models.SentimentPositive, 0.5),
		labeledTurn(models.SentimentNegative, -0.5),
	}
	got := b.Build(turns)

	if got.OverallSentiment != models.SentimentNeutral {
		t.Fatalf("overall=%v, want neutral on positive/negative tie", got.OverallSentiment)
	}
}

func TestBuildEmptyConversation(t *testing.T) {
	t.Parallel()

	b := NewSummaryBuilder(NewTrendAnalyzer(0))
	got := b.Build(nil)

	if got.OverallSentiment != models.SentimentNeutral {
		t.Fatalf("overall=%v, want neutral", got.OverallSentiment)
	}
	if got.AverageScore != 0 || got.Statistics.MessageCount != 0 {
		t.Fatalf("empty conversation produced data: %+v", got)
	}
	if got.MoodTrend.Direction != models.TrendStable {
		t.Fatalf("trend=%v, want stable", got.MoodTrend.Direction)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	t.Parallel()

	b := NewSummaryBuilder(NewTrendAnalyzer(0))
	turns := []models.Turn{
		labeledTurn(models.SentimentNegative, -0.7),
		labeledTurn(models.SentimentNeutral, 0.0),
		labeledTurn(models.SentimentPositive, 0.3),
	}

	first := b.Build(turns)
	second := b.Build(turns)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("summary not idempotent:\n%+v\n%+v", first, second)
	}
}
