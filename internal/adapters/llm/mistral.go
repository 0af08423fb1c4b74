package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Aliya0322/telegram-bot/internal/domain"
)

const mistralBaseURL = "https://api.mistral.ai/v1"

// MistralClient implements domain.ModelGateway against the Mistral chat
// completions API (OpenAI-compatible). The request is always streamed; the
// client drains the SSE stream and hands back the concatenated text, so
// callers see a single request/response call.
type MistralClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

var _ domain.ModelGateway = (*MistralClient)(nil)

// MistralOption configures the client.
type MistralOption func(*MistralClient)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(url string) MistralOption {
	return func(c *MistralClient) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) MistralOption {
	return func(c *MistralClient) { c.httpClient = hc }
}

func NewMistralClient(apiKey, model string, opts ...MistralOption) *MistralClient {
	c := &MistralClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    mistralBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiRequest is the chat completion request format.
type apiRequest struct {
	Model    string       `json:"model"`
	Messages []apiMessage `json:"messages"`
	Stream   bool         `json:"stream"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// apiStreamChunk is a single SSE chunk.
type apiStreamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content,omitempty"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason,omitempty"`
	} `json:"choices"`
}

// Complete sends one turn and returns the full aggregated reply.
func (c *MistralClient) Complete(ctx context.Context, prompt domain.PromptSpec) (string, error) {
	body := apiRequest{
		Model: c.model,
		Messages: []apiMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		Stream: true,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	result, err := drainSSE(bufio.NewReader(resp.Body))
	if err != nil {
		return "", err
	}
	if result == "" {
		return "", domain.ErrEmptyReply
	}
	return result, nil
}

// drainSSE reads "data:" lines until [DONE] or EOF and concatenates every
// delta. Malformed chunks are skipped. A read error other than a clean EOF
// means the connection dropped mid-stream; the partial aggregate is
// discarded so callers never see a truncated reply presented as complete.
func drainSSE(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return sb.String(), nil
			}
			return "", fmt.Errorf("%w: %v", domain.ErrProviderUnavailable, err)
		}

		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			return sb.String(), nil
		}

		var chunk apiStreamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}
		for _, choice := range chunk.Choices {
			sb.WriteString(choice.Delta.Content)
		}
	}
}

func mapHTTPError(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrAuthFailed
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, string(body))
	default:
		return fmt.Errorf("%w: status %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}
}
