package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAIVisionClient implements VisionClientInterface using OpenAI chat models
type OpenAIVisionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIVisionClient(apiKey, model string) VisionClientInterface {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIVisionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIVisionClient) AnnotateImage(ctx context.Context, img ImagePayload) (*ImageAnalysis, error) {
	if img.URL == "" {
		return nil, fmt.Errorf("image URL required for OpenAI analysis")
	}

	prompt := fmt.Sprintf(`Describe the photo for a memory-support application. Respond with JSON only:
{"labels":["keyword", ...],"scene":"one sentence scene/activity description","quick_access":"short phrase for quick recall"}
Labels are detected people/objects/activities, at most 10, lowercase.
Uploader's note (may be empty): %q`, img.Hint)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: prompt},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: img.URL},
					},
				},
			},
		},
		MaxTokens: 500,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no content")
	}

	var analysis ImageAnalysis
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &analysis); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}
	if analysis.Scene == "" && len(analysis.Labels) == 0 {
		return nil, fmt.Errorf("empty analysis")
	}

	return &analysis, nil
}

func (c *OpenAIVisionClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("no embedding returned")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

func (c *OpenAIVisionClient) Close() error { return nil }
