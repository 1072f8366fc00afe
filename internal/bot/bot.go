package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/avolkov/sentibot/internal/models"
	"github.com/avolkov/sentibot/internal/responder"
	"github.com/avolkov/sentibot/internal/storage"
)

// Bot is the Telegram surface over the analytics engine. Each message
// is classified, answered and archived; commands expose the
// conversation-level analytics.
type Bot struct {
	api       *tgbotapi.BotAPI
	engine    *Engine
	responder responder.Responder
	archive   storage.Archive
	logger    *zap.Logger
}

func New(token string, engine *Engine, rsp responder.Responder, archive storage.Archive, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:       api,
		engine:    engine,
		responder: rsp,
		archive:   archive,
		logger:    logger,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	text := message.Text
	if message.Caption != "" {
		text = message.Caption
	}

	turn, err := b.engine.ProcessWith(text, func(s models.SentimentResult) string {
		return b.responder.Respond(text, s)
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidInput):
			b.sendErrorMessage(message.Chat.ID, "I can only analyze regular text messages. Please send me some text.")
		case errors.Is(err, models.ErrScoringUnavailable):
			b.sendErrorMessage(message.Chat.ID, "Sentiment analysis is temporarily unavailable. Please try again.")
		default:
			b.sendErrorMessage(message.Chat.ID, "Sorry, I couldn't process your message. Please try again.")
		}
		b.logger.Error("Failed to process message",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
		return
	}

	if err := b.archive.SaveTurn(ctx, b.engine.ConversationID(), turn); err != nil {
		b.logger.Error("Failed to archive turn",
			zap.Error(err),
			zap.String("conversation_id", b.engine.ConversationID()),
			zap.Int("turn", turn.Index))
	}

	b.sendTurnResponse(message.Chat.ID, message.MessageID, turn)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "summary":
		b.handleSummary(ctx, message)
	case "stats":
		b.handleStats(message)
	case "mood":
		b.handleMood(message)
	case "history":
		b.handleHistory(message)
	case "reset":
		b.handleReset(message)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	welcome := `Welcome! I'm a sentiment-aware chat companion. 💬
Tell me anything and I'll keep track of how the conversation feels.

Use /summary at any point for a mood report, or /help for all commands.`

	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Available commands:
/start - Start the bot
/help - Show this help message
/summary - Conversation sentiment summary
/stats - Conversation statistics
/mood - Current mood trend
/history - Show recent messages
/reset - Start a fresh conversation

Send me any text message and I'll reply, classify its sentiment and emotion, and fold it into the conversation analytics.`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleSummary(ctx context.Context, message *tgbotapi.Message) {
	summary := b.engine.Summary()

	if err := b.archive.SaveSummary(ctx, b.engine.ConversationID(), summary); err != nil {
		b.logger.Error("Failed to archive summary",
			zap.Error(err),
			zap.String("conversation_id", b.engine.ConversationID()))
	}

	text := fmt.Sprintf(`*Conversation summary*
Overall sentiment: %s
Mood trend: %s
Positive: %d  Negative: %d  Neutral: %d
Average score: %s`,
		escapeMarkdown(string(summary.OverallSentiment)),
		escapeMarkdown(summary.MoodTrend.Descriptor),
		summary.PositiveCount,
		summary.NegativeCount,
		summary.NeutralCount,
		escapeMarkdown(fmt.Sprintf("%.2f", summary.AverageScore)))

	b.sendMarkdown(message.Chat.ID, text)
}

func (b *Bot) handleStats(message *tgbotapi.Message) {
	stats := b.engine.Stats()

	text := fmt.Sprintf(`*Conversation statistics*
Messages: %d
Duration: %s
Messages/min: %s
Average score: %s
Sentiment variance: %s
Engagement ratio: %s
Total words: %d`,
		stats.MessageCount,
		escapeMarkdown(stats.Duration.Truncate(1e9).String()),
		escapeMarkdown(fmt.Sprintf("%.2f", stats.MessagesPerMinute)),
		escapeMarkdown(fmt.Sprintf("%.2f", stats.AverageScore)),
		escapeMarkdown(fmt.Sprintf("%.3f", stats.SentimentVariance)),
		escapeMarkdown(fmt.Sprintf("%.2f", stats.EngagementRatio)),
		stats.TotalWords)

	b.sendMarkdown(message.Chat.ID, text)
}

func (b *Bot) handleMood(message *tgbotapi.Message) {
	trend := b.engine.Trend()
	b.sendMessage(message.Chat.ID, fmt.Sprintf("Mood trend: %s (%s)", trend.Direction, trend.Descriptor))
}

func (b *Bot) handleHistory(message *tgbotapi.Message) {
	turns := b.engine.Turns()
	if len(turns) == 0 {
		b.sendMessage(message.Chat.ID, "No messages in this conversation yet.")
		return
	}

	if len(turns) > 5 {
		turns = turns[len(turns)-5:]
	}

	var sb strings.Builder
	sb.WriteString("*Recent messages:*\n\n")
	for _, turn := range turns {
		sb.WriteString(fmt.Sprintf("_%s_\n", escapeMarkdown(turn.UserText)))
		sb.WriteString(fmt.Sprintf("sentiment: %s, emotion: %s\n\n",
			escapeMarkdown(string(turn.Sentiment.Label)),
			escapeMarkdown(string(turn.Emotion.Primary))))
	}

	b.sendMarkdown(message.Chat.ID, sb.String())
}

func (b *Bot) handleReset(message *tgbotapi.Message) {
	b.engine.Reset()
	b.sendMessage(message.Chat.ID, "Conversation cleared. We're starting fresh!")
}

func (b *Bot) sendTurnResponse(chatID int64, replyToID int, turn models.Turn) {
	text := fmt.Sprintf("%s\n\n_sentiment: %s · emotion: %s_",
		escapeMarkdown(turn.BotText),
		escapeMarkdown(string(turn.Sentiment.Label)),
		escapeMarkdown(string(turn.Emotion.Primary)))

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "MarkdownV2"
	msg.ReplyToMessageID = replyToID

	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send turn response",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

// escapeMarkdown escapes special characters for MarkdownV2.
func escapeMarkdown(text string) string {
	specialChars := []string{"_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	escaped := text
	for _, char := range specialChars {
		escaped = strings.ReplaceAll(escaped, char, "\\"+char)
	}
	return escaped
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "MarkdownV2"
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send error message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
