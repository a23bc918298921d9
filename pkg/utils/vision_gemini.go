package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	"google.golang.org/api/option"
)

// GeminiVisionClient implements VisionClientInterface using Google's Gemini models
type GeminiVisionClient struct {
	client *genai.Client
	model  string
}

func NewGeminiVisionClient(apiKey, model string) (VisionClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash" // Free tier model
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiVisionClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiVisionClient) AnnotateImage(ctx context.Context, img ImagePayload) (*ImageAnalysis, error) {
	if len(img.Data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}

	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so no brace-matching cleanup is needed.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	prompt := fmt.Sprintf(`
Describe the photo for a memory-support application. Return **JSON only**
matching this schema exactly:

{"labels":["keyword", ...],"scene":"one sentence scene/activity description","quick_access":"short phrase for quick recall"}

Labels are detected people/objects/activities, at most 10, lowercase.
Uploader's note (may be empty): %q

Return JSON only. No comments, no markdown.
`, img.Hint)

	resp, err := m.GenerateContent(ctx, genai.ImageData(formatFromMime(img.MimeType), img.Data), genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content")
	}

	content := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("not valid json")
	}

	var analysis ImageAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}
	if analysis.Scene == "" && len(analysis.Labels) == 0 {
		return nil, fmt.Errorf("empty analysis")
	}

	return &analysis, nil
}

// GetEmbedding generates a simple vector embedding for text.
// Gemini free tier has no dedicated embedding endpoint, so this uses the
// hash-based fallback; the OpenAI client provides real embeddings.
func (c *GeminiVisionClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return TextToVector(text), nil
}

func (c *GeminiVisionClient) Close() error {
	return c.client.Close()
}

// formatFromMime converts "image/jpeg" into the format token genai expects.
func formatFromMime(mimeType string) string {
	format := strings.TrimPrefix(mimeType, "image/")
	if i := strings.Index(format, "+"); i >= 0 {
		format = format[:i]
	}
	return format
}
