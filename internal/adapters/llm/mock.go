package llm

import (
	"context"
	"fmt"

	"github.com/Aliya0322/telegram-bot/internal/domain"
)

// MockClient is a deterministic domain.ModelGateway for development and
// tests: no network, no key.
type MockClient struct {
	err       error
	replyFunc func(domain.PromptSpec) (string, error)
}

var _ domain.ModelGateway = (*MockClient)(nil)

// MockOption configures the mock.
type MockOption func(*MockClient)

// WithError makes every call return this error.
func WithError(err error) MockOption {
	return func(m *MockClient) { m.err = err }
}

// WithReplyFunc sets a custom response function.
func WithReplyFunc(fn func(domain.PromptSpec) (string, error)) MockOption {
	return func(m *MockClient) { m.replyFunc = fn }
}

func NewMockClient(opts ...MockOption) *MockClient {
	m := &MockClient{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockClient) Complete(_ context.Context, prompt domain.PromptSpec) (string, error) {
	if m.replyFunc != nil {
		return m.replyFunc(prompt)
	}
	if m.err != nil {
		return "", m.err
	}
	return fmt.Sprintf("(mock) I received your request: %q", prompt.User), nil
}
