package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ChatModel sends a system prompt and user content to a language model and
// returns the generated text.
type ChatModel interface {
	Complete(ctx context.Context, systemPrompt, userContent string) (string, error)
}

type openAIChatModel struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAIChatModel(client *openai.Client, model string) ChatModel {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &openAIChatModel{
		client:      client,
		model:       model,
		temperature: 0.3,
	}
}

// Complete implements ChatModel.
func (m *openAIChatModel) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       m.model,
		Temperature: m.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userContent},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %s", describeUpstreamError(err))
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat completion response")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
