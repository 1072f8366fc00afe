package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/avolkov/sentibot/internal/analytics"
	"github.com/avolkov/sentibot/internal/bot"
	"github.com/avolkov/sentibot/internal/classifier"
	"github.com/avolkov/sentibot/internal/conversation"
	"github.com/avolkov/sentibot/internal/lexicon"
	"github.com/avolkov/sentibot/internal/responder"
	"github.com/avolkov/sentibot/internal/storage"
	"github.com/avolkov/sentibot/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize archive
	var archive storage.Archive
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory archive")
		archive = storage.NewMemoryArchive()
	} else {
		logger.Info("Using PostgreSQL archive")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		archive, err = storage.NewPostgresArchive(dbConfig)
		if err != nil {
			logger.Fatal("Failed to initialize archive", zap.Error(err))
		}
	}
	defer archive.Close()

	// Build the analysis pipeline
	sentimentCfg := classifier.SentimentConfig{
		PositiveThreshold: cfg.Analyzer.PositiveThreshold,
		NegativeThreshold: cfg.Analyzer.NegativeThreshold,
		MaxMessageLength:  cfg.Analyzer.MaxMessageLength,
	}
	engine := bot.NewEngine(
		classifier.NewSentimentClassifier(lexicon.NewScorer(), sentimentCfg),
		classifier.NewEmotionDetector(),
		conversation.NewStore(),
		analytics.NewTrendAnalyzer(cfg.Analyzer.TrendEpsilon),
		logger,
	)

	// Initialize responder
	templates := responder.NewTemplateResponder(time.Now().UnixNano())
	var rsp responder.Responder = templates
	if cfg.Responder.UseGPT && cfg.OpenAI.APIKey != "" {
		logger.Info("Using GPT responder with template fallback")
		rsp = responder.NewGPTResponder(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			templates,
			logger,
		)
	}

	// Initialize bot
	b, err := bot.New(cfg.Telegram.Token, engine, rsp, archive, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Start the bot
	if err := b.Start(); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}
