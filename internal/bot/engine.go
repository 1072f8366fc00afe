package bot

import (
	"go.uber.org/zap"

	"github.com/avolkov/sentibot/internal/analytics"
	"github.com/avolkov/sentibot/internal/classifier"
	"github.com/avolkov/sentibot/internal/conversation"
	"github.com/avolkov/sentibot/internal/models"
)

// Engine owns one conversation and runs the analysis pipeline for it:
// classify sentiment and emotion, append the turn, and derive summaries
// on demand. One engine per conversation; engines hold no global state,
// so independent conversations never interfere.
type Engine struct {
	classifier *classifier.SentimentClassifier
	detector   *classifier.EmotionDetector
	store      *conversation.Store
	trend      *analytics.TrendAnalyzer
	summaries  *analytics.SummaryBuilder
	logger     *zap.Logger
}

func NewEngine(
	cls *classifier.SentimentClassifier,
	detector *classifier.EmotionDetector,
	store *conversation.Store,
	trend *analytics.TrendAnalyzer,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		classifier: cls,
		detector:   detector,
		store:      store,
		trend:      trend,
		summaries:  analytics.NewSummaryBuilder(trend),
		logger:     logger,
	}
}

// Process classifies the user message and appends a turn carrying the
// given bot reply. On a classification error nothing is appended.
func (e *Engine) Process(userText, botText string) (models.Turn, error) {
	return e.ProcessWith(userText, func(models.SentimentResult) string { return botText })
}

// ProcessWith is Process with the bot reply derived from the sentiment
// of the user message, for callers that generate responses.
func (e *Engine) ProcessWith(userText string, reply func(models.SentimentResult) string) (models.Turn, error) {
	sentiment, err := e.classifier.Classify(userText)
	if err != nil {
		return models.Turn{}, err
	}
	emotion := e.detector.Detect(userText)

	turn := e.store.Append(userText, reply(sentiment), sentiment, emotion)
	e.logger.Debug("Processed message",
		zap.Int("turn", turn.Index),
		zap.String("sentiment", string(sentiment.Label)),
		zap.Float64("compound", sentiment.Compound),
		zap.String("emotion", string(emotion.Primary)))
	return turn, nil
}

// Summary builds the conversation summary from the current snapshot.
// It is side-effect free and repeatable.
func (e *Engine) Summary() models.ConversationSummary {
	return e.summaries.Build(e.store.Turns())
}

// Stats computes the statistics report for the current snapshot.
func (e *Engine) Stats() models.StatisticsReport {
	return analytics.ComputeStatistics(e.store.Turns())
}

// Trend computes the mood trend for the current snapshot.
func (e *Engine) Trend() models.TrendResult {
	return e.trend.Analyze(e.store.Turns())
}

// Turns returns a read-only snapshot for export and logging consumers.
func (e *Engine) Turns() []models.Turn {
	return e.store.Turns()
}

// ConversationID identifies the current conversation.
func (e *Engine) ConversationID() string {
	return e.store.ID()
}

// Reset discards the conversation and starts a new one.
func (e *Engine) Reset() {
	e.store.Clear()
	e.logger.Info("Conversation reset", zap.String("conversation_id", e.store.ID()))
}
