package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Media is a binary payload sent to an upstream API as a file upload.
type Media struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Transcriber interface {
	Transcribe(ctx context.Context, media Media) (string, error)
}

type openAITranscriber struct {
	client *openai.Client
	model  string
}

func NewOpenAITranscriber(client *openai.Client, model string) Transcriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &openAITranscriber{client: client, model: model}
}

// Transcribe implements Transcriber. The returned text is not trimmed; callers
// decide what counts as empty.
func (t *openAITranscriber) Transcribe(ctx context.Context, media Media) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: media.Filename,
		Reader:   bytes.NewReader(media.Data),
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %s", describeUpstreamError(err))
	}

	return resp.Text, nil
}

// NewOpenAIClient builds the client shared by the transcriber and the chat model.
func NewOpenAIClient(apiKey, baseURL string, httpClient *http.Client) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return openai.NewClientWithConfig(cfg)
}

// describeUpstreamError renders the status and body message of a failed
// OpenAI call.
func describeUpstreamError(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("status %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("status %d: %v", reqErr.HTTPStatusCode, reqErr.Err)
	}

	return err.Error()
}
