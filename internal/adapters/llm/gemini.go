package llm

import (
	"context"
	"fmt"

	"github.com/Aliya0322/telegram-bot/internal/domain"
	"google.golang.org/genai"
)

// GeminiClient is an alternative domain.ModelGateway backed by the Gemini
// API, selected with LLM_BACKEND=gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

var _ domain.ModelGateway = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Complete implements domain.ModelGateway.
func (g *GeminiClient) Complete(ctx context.Context, prompt domain.PromptSpec) (string, error) {
	temp := float32(0.7)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		Temperature:       &temp,
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt.User, genai.RoleUser),
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}

	text := res.Text()
	if text == "" {
		return "", domain.ErrEmptyReply
	}
	return text, nil
}
