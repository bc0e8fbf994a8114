package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"webtoon-chat-go/internal/config"
)

func newTestClient(srv *httptest.Server) Client {
	return NewClient(config.LLMConfig{
		APIKey:  "sk-test",
		BaseURL: srv.URL,
		Model:   "gpt-mock",
	})
}

func TestChat_HappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req chatRequest
		require.NoError(t, json.Unmarshal(body, &req))
		require.Equal(t, "gpt-mock", req.Model)
		require.Len(t, req.Messages, 2)
		require.Equal(t, "system", req.Messages[0].Role)
		require.Equal(t, "user", req.Messages[1].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"안녕!"}}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	reply, err := c.Chat(context.Background(), []Message{
		{Role: "system", Content: "persona"},
		{Role: "user", Content: "hi"},
	})
	require.NoError(t, err)
	require.Equal(t, "안녕!", reply)
}

func TestChat_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-200")
}

func TestChat_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not-a-json`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

func TestChat_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no choices")
}

func TestChat_NetworkError(t *testing.T) {
	c := NewClient(config.LLMConfig{
		APIKey:  "sk-test",
		BaseURL: "http://127.0.0.1:1",
		Model:   "gpt-mock",
	})
	_, err := c.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to call chat api")
}
