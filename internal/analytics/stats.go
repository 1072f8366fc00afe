package analytics

import (
	"github.com/avolkov/sentibot/internal/classifier"
	"github.com/avolkov/sentibot/internal/models"
)

// ComputeStatistics derives a StatisticsReport from a turn snapshot. It
// is a pure function: zero and one-turn conversations produce defined
// defaults instead of errors, and the input is never mutated.
//
// Messages per minute is 0 when the first and last turn share a
// timestamp. The engagement ratio is the share of user tokens among all
// tokens (user plus bot), 0 when the conversation has no tokens.
func ComputeStatistics(turns []models.Turn) models.StatisticsReport {
	report := models.StatisticsReport{MessageCount: len(turns)}
	if len(turns) == 0 {
		return report
	}

	var sum float64
	userTokens, botTokens := 0, 0
	mostPositive, mostNegative := turns[0], turns[0]

	for _, turn := range turns {
		sum += turn.Sentiment.Compound
		userTokens += len(classifier.Tokenize(turn.UserText))
		botTokens += len(classifier.Tokenize(turn.BotText))

		if turn.Sentiment.Compound > mostPositive.Sentiment.Compound {
			mostPositive = turn
		}
		if turn.Sentiment.Compound < mostNegative.Sentiment.Compound {
			mostNegative = turn
		}

		length := len(turn.UserText)
		if length > report.LongestMessage {
			report.LongestMessage = length
		}
		if report.ShortestMessage == 0 || length < report.ShortestMessage {
			report.ShortestMessage = length
		}
	}

	report.AverageScore = sum / float64(len(turns))

	var varSum float64
	for _, turn := range turns {
		d := turn.Sentiment.Compound - report.AverageScore
		varSum += d * d
	}
	report.SentimentVariance = varSum / float64(len(turns))

	report.Duration = turns[len(turns)-1].Timestamp.Sub(turns[0].Timestamp)
	if minutes := report.Duration.Minutes(); minutes > 0 {
		report.MessagesPerMinute = float64(len(turns)) / minutes
	}

	report.TotalWords = userTokens + botTokens
	if total := userTokens + botTokens; total > 0 {
		report.EngagementRatio = float64(userTokens) / float64(total)
	}

	if mostPositive.Sentiment.Compound > 0 {
		report.MostPositiveText = mostPositive.UserText
	}
	if mostNegative.Sentiment.Compound < 0 {
		report.MostNegativeText = mostNegative.UserText
	}
	return report
}
