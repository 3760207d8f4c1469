package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Embedder turns text into a dense vector.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type GeminiService interface {
	ChatModel
	Embedder
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	embedModel  string
	temperature float32
	log         *zap.Logger
}

func NewGeminiService(ctx context.Context, apiKey, model string, log *zap.Logger) (GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &geminiService{
		client:      client,
		modelName:   model,
		embedModel:  "text-embedding-004",
		temperature: 0.3,
		log:         log,
	}, nil
}

// GenerateEmbedding implements Embedder.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// Complete implements ChatModel.
func (g *geminiService) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	temperature := g.temperature
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   4096,
		ResponseMIMEType:  "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(userContent), config)
	if err != nil {
		g.log.Error("❌ Gemini API error", zap.Error(err))
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		g.log.Warn("⚠️ No text content in Gemini response", zap.Int("candidates", len(resp.Candidates)))
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
