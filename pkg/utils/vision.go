package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// ImagePayload carries an uploaded image to an analysis provider.
// Data and MimeType are always set; URL is a presigned GET link for
// providers that fetch the image themselves.
type ImagePayload struct {
	Data     []byte
	MimeType string
	URL      string
	Hint     string
}

// ImageAnalysis is the structured annotation stored on upload metadata.
type ImageAnalysis struct {
	Labels      []string `json:"labels"`
	Scene       string   `json:"scene"`
	QuickAccess string   `json:"quick_access"`
}

type VisionClientInterface interface {
	AnnotateImage(ctx context.Context, img ImagePayload) (*ImageAnalysis, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// NewVisionClient Factory function to create either OpenAI or Gemini client based on config
func NewVisionClient(provider, apiKey, model string) (VisionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIVisionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiVisionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported vision provider: %s", provider)
	}
}
