package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestQuoteGeneratorParsesAIQuote(t *testing.T) {
	srv := quoteServer(t, `{"text":"Attention is all you need.","author":"AI/ML Fact","category":"DL","type":"fact"}`)
	defer srv.Close()

	g := NewQuoteGenerator("test-key", "")
	g.baseURL = srv.URL

	q := g.Random(context.Background())

	assert.Equal(t, "Attention is all you need.", q.Text)
	assert.Equal(t, "AI/ML Fact", q.Author)
	assert.Equal(t, "DL", q.Category)
	assert.Equal(t, "fact", q.Type)
	assert.Equal(t, "groq_ai", q.Source)
}

func TestQuoteGeneratorDefaultsMissingFields(t *testing.T) {
	srv := quoteServer(t, `{"text":"Learn in public.","author":"Unknown"}`)
	defer srv.Close()

	g := NewQuoteGenerator("test-key", "")
	g.baseURL = srv.URL

	q := g.Random(context.Background())

	assert.Equal(t, "AI", q.Category)
	assert.Equal(t, "quote", q.Type)
}

func TestQuoteGeneratorFallsBackOnIncompleteQuote(t *testing.T) {
	srv := quoteServer(t, `{"text":"","author":""}`)
	defer srv.Close()

	g := NewQuoteGenerator("test-key", "")
	g.baseURL = srv.URL

	q := g.Random(context.Background())

	assert.Equal(t, "fallback", q.Source)
	assert.NotEmpty(t, q.Text)
}

func TestQuoteGeneratorFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewQuoteGenerator("test-key", "")
	g.baseURL = srv.URL

	q := g.Random(context.Background())
	assert.Equal(t, "fallback", q.Source)
}

func TestQuoteGeneratorNoAPIKeyUsesFallback(t *testing.T) {
	g := NewQuoteGenerator("", "")

	q := g.Random(context.Background())

	assert.Equal(t, "fallback", q.Source)
	assert.NotEmpty(t, q.Author)
}

func TestQuoteGeneratorDefaultModel(t *testing.T) {
	assert.Equal(t, "llama-3.1-70b-versatile", NewQuoteGenerator("k", "").model)
	assert.Equal(t, "custom-model", NewQuoteGenerator("k", "custom-model").model)
}
