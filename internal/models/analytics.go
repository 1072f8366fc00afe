package models

import "time"

// TrendDirection is the categorical mood trend over a conversation.
type TrendDirection string

const (
	TrendImproving   TrendDirection = "improving"
	TrendDeclining   TrendDirection = "declining"
	TrendStable      TrendDirection = "stable"
	TrendFluctuating TrendDirection = "fluctuating"
)

// TrendResult holds the mood trend analysis for a conversation.
// Delta is mean(second half) - mean(first half) of the compound scores,
// EndpointDelta is last score - first score.
type TrendResult struct {
	Direction     TrendDirection `json:"direction"`
	Descriptor    string         `json:"descriptor"`
	Delta         float64        `json:"delta"`
	EndpointDelta float64        `json:"endpoint_delta"`
}

// StatisticsReport aggregates metrics over a conversation snapshot.
//
// Average bot response time is not reported: a turn carries a single
// timestamp for the whole exchange, so user and bot instants are not
// tracked separately.
type StatisticsReport struct {
	MessageCount      int           `json:"message_count"`
	AverageScore      float64       `json:"average_score"`
	SentimentVariance float64       `json:"sentiment_variance"`
	MessagesPerMinute float64       `json:"messages_per_minute"`
	EngagementRatio   float64       `json:"engagement_ratio"`
	Duration          time.Duration `json:"duration"`
	TotalWords        int           `json:"total_words"`
	LongestMessage    int           `json:"longest_message"`
	ShortestMessage   int           `json:"shortest_message"`
	MostPositiveText  string        `json:"most_positive_text,omitempty"`
	MostNegativeText  string        `json:"most_negative_text,omitempty"`
}

// ConversationSummary is the derived end-of-conversation report. It is
// recomputed on demand and never stored as authoritative state.
type ConversationSummary struct {
	OverallSentiment SentimentLabel   `json:"overall_sentiment"`
	MoodTrend        TrendResult      `json:"mood_trend"`
	PositiveCount    int              `json:"positive_count"`
	NegativeCount    int              `json:"negative_count"`
	NeutralCount     int              `json:"neutral_count"`
	AverageScore     float64          `json:"average_score"`
	Statistics       StatisticsReport `json:"statistics"`
}
