package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/config"
	"alfredoptarigan/candidate-screening/internal/handlers"
	"alfredoptarigan/candidate-screening/internal/logger"
	"alfredoptarigan/candidate-screening/internal/repositories"
	"alfredoptarigan/candidate-screening/internal/router"
	"alfredoptarigan/candidate-screening/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := logger.New(cfg.Server.LogLevel, cfg.Server.Env)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	if err := cfg.Validate(); err != nil {
		zl.Fatal("❌ Invalid configuration", zap.Error(err))
	}
	zl.Info("✅ Config loaded successfully")

	ctx := context.Background()

	// Initialize database
	db, err := config.InitDatabase(cfg, zl)
	if err != nil {
		zl.Fatal("❌ Failed to initialize database", zap.Error(err))
	}

	appRepo := repositories.NewApplicationRepository(db)
	zl.Info("✅ Repositories initialized successfully")

	// Initialize storage
	documents, err := services.NewStorage(ctx, cfg.Storage, cfg.Storage.DocumentBucket)
	if err != nil {
		zl.Fatal("❌ Failed to initialize document storage", zap.Error(err))
	}
	videos, err := services.NewStorage(ctx, cfg.Storage, cfg.Storage.VideoBucket)
	if err != nil {
		zl.Fatal("❌ Failed to initialize video storage", zap.Error(err))
	}
	zl.Info("✅ Storage initialized successfully", zap.String("driver", cfg.Storage.Driver))

	// Initialize language models
	openAIClient := services.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, &http.Client{Timeout: cfg.OpenAI.Timeout})
	transcriber := services.NewOpenAITranscriber(openAIClient, cfg.OpenAI.TranscriptionModel)
	openAIChat := services.NewOpenAIChatModel(openAIClient, cfg.OpenAI.ChatModel)

	var gemini services.GeminiService
	if cfg.Gemini.APIKey != "" {
		gemini, err = services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, zl)
		if err != nil {
			zl.Fatal("❌ Failed to initialize Gemini AI", zap.Error(err))
		}
		zl.Info("✅ Gemini AI initialized successfully")
	}

	videoChat := selectChatModel(cfg.Analysis.VideoProvider, openAIChat, gemini)
	documentChat := selectChatModel(cfg.Analysis.DocumentProvider, openAIChat, gemini)

	// Initialize transcript indexing
	var indexer services.TranscriptIndexer
	if cfg.IndexingEnabled() {
		qdrantService, err := services.NewQdrantService(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, zl)
		if err != nil {
			zl.Fatal("❌ Failed to initialize Qdrant", zap.Error(err))
		}
		if err := qdrantService.InitCollection(ctx); err != nil {
			zl.Fatal("❌ Failed to initialize Qdrant collection", zap.Error(err))
		}
		indexer = services.NewTranscriptIndexer(gemini, qdrantService, zl)
		zl.Info("✅ Qdrant initialized successfully")
	}

	videoService := services.NewVideoAnalysisService(videos, transcriber, videoChat, appRepo, services.VideoAnalysisOptions{
		Lenient: cfg.Analysis.Validation == config.ValidationLenient,
		Indexer: indexer,
	}, zl)
	documentProcessor := services.NewDocumentProcessor(documents, services.NewDocumentParser(), documentChat, zl)
	zl.Info("✅ Services initialized successfully")

	// Initialize handlers
	app := router.New(router.Options{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		AccessLog:    true,
	}, router.Handlers{
		VideoAnalysis: handlers.NewVideoAnalysisHandler(videoService, zl),
		Document:      handlers.NewDocumentHandler(documentProcessor, zl),
		Upload:        handlers.NewUploadHandler(documents, documentProcessor, cfg.Storage.MaxFileSize, zl),
		Application:   handlers.NewApplicationHandler(appRepo),
	})
	zl.Info("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zl.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("❌ Failed to start server", zap.Error(err))
	}
}

// selectChatModel resolves a provider name. Config validation guarantees the
// Gemini client exists when it is selected.
func selectChatModel(provider string, openAIChat services.ChatModel, gemini services.GeminiService) services.ChatModel {
	if provider == config.ProviderGemini {
		return gemini
	}
	return openAIChat
}
