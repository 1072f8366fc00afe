package models

import "time"

// SentimentLabel is the discrete classification of a compound score.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// SentimentResult holds the sentiment analysis of a single message.
// Positive, Negative and Neutral are proportions that sum to ~1.
type SentimentResult struct {
	Label    SentimentLabel `json:"label"`
	Compound float64        `json:"compound"`
	Positive float64        `json:"positive"`
	Negative float64        `json:"negative"`
	Neutral  float64        `json:"neutral"`
}

// Emotion is one of the eight detectable emotions, or EmotionNone
// when no emotion keyword matched.
type Emotion string

const (
	EmotionJoy          Emotion = "joy"
	EmotionSadness      Emotion = "sadness"
	EmotionAnger        Emotion = "anger"
	EmotionFear         Emotion = "fear"
	EmotionSurprise     Emotion = "surprise"
	EmotionDisgust      Emotion = "disgust"
	EmotionTrust        Emotion = "trust"
	EmotionAnticipation Emotion = "anticipation"
	EmotionNone         Emotion = "none"
)

// EmotionResult holds the emotion analysis of a single message.
// Primary is the argmax of Scores, or EmotionNone when Scores is empty.
type EmotionResult struct {
	Primary    Emotion             `json:"primary_emotion"`
	Confidence float64             `json:"confidence"`
	Scores     map[Emotion]float64 `json:"scores,omitempty"`
}

// Turn is one user/bot exchange with its analysis. Turns are created by
// the conversation store and never mutated afterwards.
type Turn struct {
	Index     int             `json:"index"`
	UserText  string          `json:"user_text"`
	BotText   string          `json:"bot_text"`
	Sentiment SentimentResult `json:"sentiment"`
	Emotion   EmotionResult   `json:"emotion"`
	Timestamp time.Time       `json:"timestamp"`
}
