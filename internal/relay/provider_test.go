package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, status int, body string, gotAuth *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		*gotAuth = r.Header.Get("Authorization")

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIProvider_Complete(t *testing.T) {
	var auth string
	srv := newChatServer(t, http.StatusOK,
		`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Slide 1: Hi"}}]}`,
		&auth)

	p := NewOpenAIProvider(ProviderConfig{BaseURL: srv.URL, APIKey: "configured-key", Model: "test-model"})

	out, err := p.Complete(context.Background(), "prompt", "")
	require.NoError(t, err)
	assert.Equal(t, "Slide 1: Hi", out)
	assert.Equal(t, "Bearer configured-key", auth)
	assert.Equal(t, "openai:test-model", p.Name())
}

func TestOpenAIProvider_Complete_KeyOverride(t *testing.T) {
	var auth string
	srv := newChatServer(t, http.StatusOK,
		`{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`, &auth)

	p := NewOpenAIProvider(ProviderConfig{BaseURL: srv.URL, APIKey: "configured-key", Model: "test-model"})

	_, err := p.Complete(context.Background(), "prompt", "request-key")
	require.NoError(t, err)
	assert.Equal(t, "Bearer request-key", auth)
}

func TestOpenAIProvider_Complete_Errors(t *testing.T) {
	t.Run("no key", func(t *testing.T) {
		p := NewOpenAIProvider(ProviderConfig{Model: "test-model"})
		_, err := p.Complete(context.Background(), "prompt", "")
		assert.ErrorIs(t, err, ErrNoAPIKey)
	})

	t.Run("upstream error", func(t *testing.T) {
		var auth string
		srv := newChatServer(t, http.StatusInternalServerError,
			`{"error":{"message":"overloaded","type":"server_error"}}`, &auth)
		p := NewOpenAIProvider(ProviderConfig{BaseURL: srv.URL, APIKey: "k", Model: "test-model"})

		_, err := p.Complete(context.Background(), "prompt", "")
		assert.Error(t, err)
	})

	t.Run("no choices", func(t *testing.T) {
		var auth string
		srv := newChatServer(t, http.StatusOK, `{"choices":[]}`, &auth)
		p := NewOpenAIProvider(ProviderConfig{BaseURL: srv.URL, APIKey: "k", Model: "test-model"})

		_, err := p.Complete(context.Background(), "prompt", "")
		assert.Error(t, err)
	})
}
