package responder

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/avolkov/sentibot/internal/models"
)

// GPTResponder generates replies with an OpenAI chat model and falls
// back to the template responder on any API failure, so the bot keeps
// answering when the API is down.
type GPTResponder struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	fallback    *TemplateResponder
	logger      *zap.Logger
}

func NewGPTResponder(apiKey, model string, maxTokens int, temperature float64, fallback *TemplateResponder, logger *zap.Logger) *GPTResponder {
	return &GPTResponder{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		fallback:    fallback,
		logger:      logger,
	}
}

func (g *GPTResponder) Respond(userText string, sentiment models.SentimentResult) string {
	ctx := context.Background()

	prompt := fmt.Sprintf(`You are a supportive customer-facing chat assistant.
The user's message was classified as %s sentiment (compound score %.2f).
Reply in one or two empathetic sentences, matching that mood. Do not mention the classification.

Message: %s`, sentiment.Label, sentiment.Compound, userText)

	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)
	if err != nil {
		g.logger.Error("Failed to get GPT response", zap.Error(err))
		return g.fallback.Respond(userText, sentiment)
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		g.logger.Warn("Empty GPT response, using template fallback")
		return g.fallback.Respond(userText, sentiment)
	}
	return reply
}
