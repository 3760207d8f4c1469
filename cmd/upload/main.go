package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/config"
	"alfredoptarigan/candidate-screening/internal/functions"
	"alfredoptarigan/candidate-screening/internal/logger"
	"alfredoptarigan/candidate-screening/internal/models"
	"alfredoptarigan/candidate-screening/internal/services"
	"alfredoptarigan/candidate-screening/internal/uploader"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file    = flag.String("file", "", "job document to upload (.pdf, .docx or .txt, required)")
		timeout = flag.Duration("timeout", 3*time.Minute, "overall timeout for upload and processing")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		printError("Error: failed to read %s: %v\n", *file, err)
		os.Exit(1)
	}

	cfg := config.Load()

	zl, err := logger.New(cfg.Server.LogLevel, cfg.Server.Env)
	if err != nil {
		printError("Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zl.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	documents, err := services.NewStorage(ctx, cfg.Storage, cfg.Storage.DocumentBucket)
	if err != nil {
		zl.Fatal("❌ Failed to initialize document storage", zap.Error(err))
	}

	client := functions.NewClient(cfg.Functions.URL, cfg.Functions.APIKey, nil, zl)
	up := uploader.New(documents, client, uploader.NewConsoleNotifier(os.Stdout, os.Stderr), zl)

	var result models.ProcessedDocument
	if _, err := up.Upload(ctx, uploader.File{
		Name: filepath.Base(*file),
		Data: data,
	}, func(doc models.ProcessedDocument) {
		result = doc
	}); err != nil {
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		printError("Error: failed to write result: %v\n", err)
		os.Exit(1)
	}
}
