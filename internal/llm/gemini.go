package llm

import (
	"context"
	"fmt"

	"menu-ocr/internal/config"
	"menu-ocr/internal/fetch"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// geminiClient is a client for the Google Gemini API.
type geminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a new Gemini API client whose responses are
// constrained to the given JSON schema.
func NewGeminiClient(ctx context.Context, cfg *config.Config, schema *genai.Schema) (VisionClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	return &geminiClient{client: client, model: model}, nil
}

// GenerateJSON sends the prompt and image to the Gemini model and returns
// the raw JSON text of the response.
func (c *geminiClient) GenerateJSON(ctx context.Context, prompt string, img fetch.Image) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt), genai.ImageData(img.Format, img.Data))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}

	return string(text), nil
}

// Close closes the underlying Gemini client.
func (c *geminiClient) Close() error {
	return c.client.Close()
}
