package responder

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/avolkov/sentibot/internal/models"
)

// Responder produces the bot's reply to a user message.
type Responder interface {
	Respond(userText string, sentiment models.SentimentResult) string
}

// TemplateResponder picks canned replies: keyword overrides first, then
// a pool keyed by the message's sentiment label.
type TemplateResponder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewTemplateResponder creates a responder seeded for reply selection.
func NewTemplateResponder(seed int64) *TemplateResponder {
	return &TemplateResponder{rng: rand.New(rand.NewSource(seed))}
}

type keywordPool struct {
	keyword string
	replies []string
}

// keywordReplies is checked in order, first match wins.
var keywordReplies = []keywordPool{
	{"hello", []string{
		"Hello! How can I help you today?",
		"Hi there! What can I do for you?",
	}},
	{"goodbye", []string{
		"Goodbye! It was nice talking to you.",
		"Bye! Have a great day!",
	}},
	{"bye", []string{
		"Goodbye! Thank you for chatting with me.",
		"Take care! Feel free to return anytime.",
	}},
	{"thank", []string{
		"You're welcome! Is there anything else I can help with?",
		"Happy to help! Anything else?",
	}},
	{"help", []string{
		"I'm here to help! What do you need assistance with?",
		"Of course! What would you like help with?",
	}},
	{"problem", []string{
		"I'm sorry to hear about the problem. Can you tell me more?",
		"Let's solve this together. What's happening?",
	}},
	{"disappoint", []string{
		"I'm truly sorry to hear you're disappointed. How can I make it right?",
		"I apologize for the disappointment. Let me help.",
	}},
	{"angry", []string{
		"I apologize for causing any frustration. Let's work this out.",
		"I'm sorry you're upset. How can I make things better?",
	}},
	{"frustrated", []string{
		"I understand your frustration. Let me help resolve this.",
		"I'm sorry for the frustration. What can I do to help?",
	}},
}

var sentimentReplies = map[models.SentimentLabel][]string{
	models.SentimentPositive: {
		"That's wonderful to hear! Is there anything else I can help you with?",
		"I'm glad things are going well! How can I assist you further?",
		"That sounds positive! Feel free to share more.",
	},
	models.SentimentNegative: {
		"I'm sorry to hear that. Let me see how I can help address your concern.",
		"I understand your frustration. I'll do my best to assist you.",
		"I'm sorry you're experiencing this. Let's work together to find a solution.",
	},
	models.SentimentNeutral: {
		"I understand. How can I assist you further?",
		"Thank you for sharing. What else would you like to know?",
		"Got it. Feel free to ask me anything.",
	},
}

// Respond returns a reply for the message. Keyword overrides win over
// sentiment pools; an unknown label falls back to the neutral pool.
func (r *TemplateResponder) Respond(userText string, sentiment models.SentimentResult) string {
	lower := strings.ToLower(userText)
	for _, kp := range keywordReplies {
		if strings.Contains(lower, kp.keyword) {
			return r.pick(kp.replies)
		}
	}

	pool, ok := sentimentReplies[sentiment.Label]
	if !ok {
		pool = sentimentReplies[models.SentimentNeutral]
	}
	return r.pick(pool)
}

func (r *TemplateResponder) pick(pool []string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return pool[r.rng.Intn(len(pool))]
}
