package analytics

import (
	"fmt"
	"math"

	"github.com/avolkov/sentibot/internal/models"
)

const (
	// DefaultTrendEpsilon is the minimum half-to-half mean shift that
	// counts as a mood change.
	DefaultTrendEpsilon = 0.05

	// shifts at or above this magnitude are described as significant
	significantShift = 0.2
)

// TrendAnalyzer detects the directional mood trend of a conversation by
// comparing the mean compound score of its first and second halves.
type TrendAnalyzer struct {
	epsilon float64
}

// NewTrendAnalyzer creates a trend analyzer. A non-positive epsilon
// falls back to DefaultTrendEpsilon.
func NewTrendAnalyzer(epsilon float64) *TrendAnalyzer {
	if epsilon <= 0 {
		epsilon = DefaultTrendEpsilon
	}
	return &TrendAnalyzer{epsilon: epsilon}
}

// Analyze computes the mood trend over the turn sequence. Fewer than
// two turns is not an error: the result is a stable trend with an
// "insufficient data" descriptor.
//
// The score sequence is split in two halves; for odd lengths the middle
// element belongs to the first half. Delta is mean(second)-mean(first),
// EndpointDelta is last-first.
func (a *TrendAnalyzer) Analyze(turns []models.Turn) models.TrendResult {
	if len(turns) < 2 {
		return models.TrendResult{
			Direction:  models.TrendStable,
			Descriptor: "insufficient data for trend analysis",
		}
	}

	scores := make([]float64, len(turns))
	for i, turn := range turns {
		scores[i] = turn.Sentiment.Compound
	}

	mid := (len(scores) + 1) / 2
	delta := mean(scores[mid:]) - mean(scores[:mid])
	endpointDelta := scores[len(scores)-1] - scores[0]

	direction := a.classify(delta, endpointDelta)
	return models.TrendResult{
		Direction:     direction,
		Descriptor:    describe(direction, delta),
		Delta:         delta,
		EndpointDelta: endpointDelta,
	}
}

func (a *TrendAnalyzer) classify(delta, endpointDelta float64) models.TrendDirection {
	switch {
	case math.Abs(delta) < a.epsilon && math.Abs(endpointDelta) < a.epsilon:
		return models.TrendStable
	case delta > a.epsilon && endpointDelta > 0:
		return models.TrendImproving
	case delta < -a.epsilon && endpointDelta < 0:
		return models.TrendDeclining
	case delta*endpointDelta < 0 && math.Abs(delta) > a.epsilon && math.Abs(endpointDelta) > a.epsilon:
		return models.TrendFluctuating
	default:
		return models.TrendStable
	}
}

func describe(direction models.TrendDirection, delta float64) string {
	magnitude := "slightly"
	if math.Abs(delta) >= significantShift {
		magnitude = "significantly"
	}

	switch direction {
	case models.TrendImproving:
		return fmt.Sprintf("mood improved %s over the conversation", magnitude)
	case models.TrendDeclining:
		return fmt.Sprintf("mood declined %s over the conversation", magnitude)
	case models.TrendFluctuating:
		return "mood fluctuated throughout the conversation"
	default:
		return "stable mood throughout the conversation"
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
