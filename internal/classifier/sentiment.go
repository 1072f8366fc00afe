package classifier

import (
	"fmt"
	"strings"

	"github.com/avolkov/sentibot/internal/models"
)

// SentimentConfig holds the classification thresholds. Compound scores
// at or above PositiveThreshold are positive, at or below
// NegativeThreshold negative, anything between neutral.
type SentimentConfig struct {
	PositiveThreshold float64
	NegativeThreshold float64
	MaxMessageLength  int
}

// DefaultSentimentConfig returns the standard thresholds.
func DefaultSentimentConfig() SentimentConfig {
	return SentimentConfig{
		PositiveThreshold: 0.05,
		NegativeThreshold: -0.05,
		MaxMessageLength:  4096,
	}
}

// SentimentClassifier maps raw scorer output to a discrete sentiment
// label. It has no state beyond its configuration.
type SentimentClassifier struct {
	scorer Scorer
	cfg    SentimentConfig
}

func NewSentimentClassifier(scorer Scorer, cfg SentimentConfig) *SentimentClassifier {
	return &SentimentClassifier{scorer: scorer, cfg: cfg}
}

// Classify scores text and derives its sentiment label. Empty or
// over-long input returns ErrInvalidInput; a scorer failure returns
// ErrScoringUnavailable.
func (c *SentimentClassifier) Classify(text string) (models.SentimentResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.SentimentResult{}, fmt.Errorf("%w: empty message", models.ErrInvalidInput)
	}
	if c.cfg.MaxMessageLength > 0 && len(text) > c.cfg.MaxMessageLength {
		return models.SentimentResult{}, fmt.Errorf("%w: message exceeds %d bytes", models.ErrInvalidInput, c.cfg.MaxMessageLength)
	}

	scores, err := c.scorer.Score(text)
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("%w: %v", models.ErrScoringUnavailable, err)
	}

	result := models.SentimentResult{
		Compound: scores.Compound,
		Positive: scores.Positive,
		Negative: scores.Negative,
		Neutral:  scores.Neutral,
	}
	switch {
	case scores.Compound >= c.cfg.PositiveThreshold:
		result.Label = models.SentimentPositive
	case scores.Compound <= c.cfg.NegativeThreshold:
		result.Label = models.SentimentNegative
	default:
		result.Label = models.SentimentNeutral
	}
	return result, nil
}
