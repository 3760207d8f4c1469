package main

import (
	"context"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/config"
	"alfredoptarigan/candidate-screening/internal/repositories"
	"alfredoptarigan/candidate-screening/internal/services"
)

// Rebuilds the transcript index from every analyzed application.
func main() {
	log.Println("🚀 Starting transcript re-indexing...")

	// Load configuration
	cfg := config.Load()
	if !cfg.IndexingEnabled() {
		log.Fatalf("❌ QDRANT_URL and GEMINI_API_KEY are required for indexing")
	}

	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	db, err := config.InitDatabase(cfg, zl)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	appRepo := repositories.NewApplicationRepository(db)

	// Initialize services
	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, zl)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		zl,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	indexer := services.NewTranscriptIndexer(geminiService, qdrantService, zl)

	apps, err := appRepo.ListAnalyzed(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to list applications: %v", err)
	}
	log.Printf("📄 Found %d analyzed applications", len(apps))

	successCount := 0
	failCount := 0

	for _, app := range apps {
		if app.Transcript == nil || strings.TrimSpace(*app.Transcript) == "" {
			log.Printf("   ⚠️  %s has an empty transcript, skipping...", app.ID)
			continue
		}

		if err := indexer.IndexTranscript(ctx, app.ID, *app.Transcript); err != nil {
			log.Printf("   ❌ Failed to index %s: %v", app.ID, err)
			failCount++
			continue
		}

		log.Printf("   ✅ Indexed %s (%s)", app.ID, app.CandidateName)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Re-indexing Summary:")
	log.Printf("   ✅ Successful: %d applications", successCount)
	log.Printf("   ❌ Failed: %d applications", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		os.Exit(1)
	}
}
