package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"intent-chatbot/config"
	_ "intent-chatbot/docs" // Swagger docs
	"intent-chatbot/internal/httpserver"
	intentRepo "intent-chatbot/internal/intent/repository/file"
	"intent-chatbot/internal/intent/usecase"
	"intent-chatbot/pkg/log"
	"intent-chatbot/pkg/randsrc"
)

// @title       Intent Chatbot API
// @description Intent-classification chatbot: Naive Bayes over a bag-of-words vocabulary trained from an intent catalog.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Intent Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Intent catalog: %s", cfg.Intents.Path)

	// 3. Intent domain: load the catalog and train once, before serving
	repo := intentRepo.New(cfg.Intents.Path, logger)
	intentUC, err := usecase.NewFromRepository(ctx, logger, repo, usecase.Config{
		ConfidenceThreshold: cfg.Chatbot.ConfidenceThreshold,
		FallbackResponse:    cfg.Chatbot.FallbackResponse,
		EmptyInputResponse:  cfg.Chatbot.EmptyInputResponse,
		Random:              randsrc.New(cfg.Chatbot.RandomSeed),
		CacheSize:           cfg.Cache.Size,
		CacheTTL:            cfg.Cache.TTL,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize intent model: %v", err)
	}

	summary := intentUC.ListIntents(ctx)
	logger.Infof(ctx, "Model trained: %d intents, vocabulary size %d", len(summary.Intents), summary.VocabularySize)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
		IntentUseCase:    intentUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
