package llm_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aliya0322/telegram-bot/internal/adapters/llm"
	"github.com/Aliya0322/telegram-bot/internal/domain"
)

func sseServer(t *testing.T, chunks []string, requireAuth string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requireAuth != "" && r.Header.Get("Authorization") != requireAuth {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			Stream bool `json:"stream"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		assert.True(t, req.Stream)

		w.Header().Set("Content-Type", "text/event-stream")
		for _, content := range chunks {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", content)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
}

func TestMistralClient_ConcatenatesStream(t *testing.T) {
	srv := sseServer(t, []string{"Hel", "lo, ", "world!"}, "Bearer test-key")
	defer srv.Close()

	client := llm.NewMistralClient("test-key", "codestral-latest", llm.WithBaseURL(srv.URL))

	reply, err := client.Complete(context.Background(), domain.PromptSpec{
		System: "be brief",
		User:   "greet me",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello, world!", reply)
}

func TestMistralClient_SkipsMalformedChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "data: {not json}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"ok\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	client := llm.NewMistralClient("k", "m", llm.WithBaseURL(srv.URL))

	reply, err := client.Complete(context.Background(), domain.PromptSpec{User: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}

func TestMistralClient_EmptyAggregateIsError(t *testing.T) {
	srv := sseServer(t, nil, "")
	defer srv.Close()

	client := llm.NewMistralClient("k", "m", llm.WithBaseURL(srv.URL))

	_, err := client.Complete(context.Background(), domain.PromptSpec{User: "hi"})
	assert.ErrorIs(t, err, domain.ErrEmptyReply)
}

func TestMistralClient_MapsHTTPStatusCodes(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusTooManyRequests, domain.ErrRateLimited},
		{http.StatusUnauthorized, domain.ErrAuthFailed},
		{http.StatusForbidden, domain.ErrAuthFailed},
		{http.StatusBadRequest, domain.ErrInvalidRequest},
		{http.StatusInternalServerError, domain.ErrProviderUnavailable},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))

		client := llm.NewMistralClient("k", "m", llm.WithBaseURL(srv.URL))
		_, err := client.Complete(context.Background(), domain.PromptSpec{User: "hi"})
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)

		srv.Close()
	}
}

func TestMistralClient_DroppedConnectionDiscardsPartialStream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"partial answer\"}}]}\n\n")
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}

		// Drop the connection before [DONE].
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Error("response writer does not support hijacking")
			return
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			t.Errorf("hijack: %v", err)
			return
		}
		conn.Close()
	}))
	defer srv.Close()

	client := llm.NewMistralClient("k", "m", llm.WithBaseURL(srv.URL))

	reply, err := client.Complete(context.Background(), domain.PromptSpec{User: "hi"})
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
	assert.Empty(t, reply)
}

func TestMistralClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused

	client := llm.NewMistralClient("k", "m", llm.WithBaseURL(srv.URL))

	_, err := client.Complete(context.Background(), domain.PromptSpec{User: "hi"})
	assert.ErrorIs(t, err, domain.ErrProviderUnavailable)
}
