package analytics

import "github.com/avolkov/sentibot/internal/models"

// SummaryBuilder composes trend analysis and statistics into a
// conversation summary. Building a summary has no side effects and can
// be repeated at any point during the conversation.
type SummaryBuilder struct {
	trend *TrendAnalyzer
}

func NewSummaryBuilder(trend *TrendAnalyzer) *SummaryBuilder {
	return &SummaryBuilder{trend: trend}
}

// Build computes the summary for a turn snapshot. The overall sentiment
// is the majority label; any tie (including positive vs negative)
// resolves to neutral.
func (b *SummaryBuilder) Build(turns []models.Turn) models.ConversationSummary {
	summary := models.ConversationSummary{
		MoodTrend:  b.trend.Analyze(turns),
		Statistics: ComputeStatistics(turns),
	}

	for _, turn := range turns {
		switch turn.Sentiment.Label {
		case models.SentimentPositive:
			summary.PositiveCount++
		case models.SentimentNegative:
			summary.NegativeCount++
		default:
			summary.NeutralCount++
		}
	}
	summary.AverageScore = summary.Statistics.AverageScore

	switch {
	case summary.PositiveCount > summary.NegativeCount && summary.PositiveCount > summary.NeutralCount:
		summary.OverallSentiment = models.SentimentPositive
	case summary.NegativeCount > summary.PositiveCount && summary.NegativeCount > summary.NeutralCount:
		summary.OverallSentiment = models.SentimentNegative
	default:
		summary.OverallSentiment = models.SentimentNeutral
	}
	return summary
}
