// Package advisor provides schema-validated advisory flows backed by the
// Google Gemini API: personalized advice, document parsing, expense breakdown,
// and reminder summaries.
package advisor

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// ModelName is the Gemini model used for all advisory flows.
const ModelName = "gemini-2.5-flash"

// ErrInvalidInput indicates a flow input failed schema validation before any
// model call was made.
var ErrInvalidInput = errors.New("invalid advisory input")

// ContentGenerator defines the interface for generating content via Gemini.
// This abstraction enables testing without making actual API calls.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// modelsAdapter wraps *genai.Models to implement ContentGenerator.
type modelsAdapter struct {
	models *genai.Models
}

func (m *modelsAdapter) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	resp, err := m.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("genai.GenerateContent: %w", err)
	}
	return resp, nil
}

// Client wraps the Gemini API client.
type Client struct {
	client    *genai.Client
	generator ContentGenerator
}

// NewClient creates a new advisory client with the provided API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client:    client,
		generator: &modelsAdapter{models: client.Models},
	}, nil
}

// NewClientWithGenerator creates a Client with a custom ContentGenerator.
// This is primarily used for testing with mock generators.
func NewClientWithGenerator(generator ContentGenerator) *Client {
	return &Client{
		generator: generator,
	}
}

// generateText sends the given contents to Gemini and returns the
// concatenated text of the response. Every advisory flow funnels through
// here so failures collapse into a single wrapped error per call.
func (c *Client) generateText(
	ctx context.Context,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (string, error) {
	if c.generator == nil {
		return "", fmt.Errorf("gemini client not initialized")
	}

	resp, err := c.generator.GenerateContent(ctx, ModelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response from Gemini")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}
