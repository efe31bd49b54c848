package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/hitenstark10/tenx-tracking/models"
)

const groqURL = "https://api.groq.com/openai/v1/chat/completions"

// FallbackQuotes is served whenever the AI generator is unreachable or
// misconfigured.
var FallbackQuotes = []models.Quote{
	{Text: "The question of whether a computer can think is no more interesting than whether a submarine can swim.", Author: "Edsger Dijkstra", Category: "AI"},
	{Text: "Machine intelligence is the last invention that humanity will ever need to make.", Author: "Nick Bostrom", Category: "AI"},
	{Text: "Artificial intelligence would be the ultimate version of Google.", Author: "Larry Page", Category: "AI"},
	{Text: "A year spent in artificial intelligence is enough to make one believe in God.", Author: "Alan Perlis", Category: "AI"},
	{Text: "In God we trust. All others must bring data.", Author: "W. Edwards Deming", Category: "DS"},
	{Text: "Data is the new oil.", Author: "Clive Humby", Category: "DS"},
	{Text: "Machine learning is the science of getting computers to learn without being explicitly programmed.", Author: "Arthur Samuel", Category: "ML"},
	{Text: "Deep learning is a superpower.", Author: "Andrew Ng", Category: "DL"},
	{Text: "The future belongs to those who learn more skills and combine them in creative ways.", Author: "Robert Greene", Category: "AI"},
	{Text: "Every expert was once a beginner.", Author: "Helen Hayes", Category: "AI"},
}

// QuoteGenerator asks a Groq-compatible chat-completions API for one quote
// per call and degrades to the static list on any failure.
type QuoteGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewQuoteGenerator(apiKey, model string) *QuoteGenerator {
	if model == "" {
		model = "llama-3.1-70b-versatile"
	}
	return &QuoteGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: groqURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Random returns an AI-generated quote when possible, otherwise a random
// fallback quote. It never fails.
func (g *QuoteGenerator) Random(ctx context.Context) models.Quote {
	if g.apiKey != "" {
		if q, err := g.generate(ctx); err == nil {
			return q
		}
	}
	q := FallbackQuotes[rand.Intn(len(FallbackQuotes))]
	q.Source = "fallback"
	return q
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	MaxTokens      int           `json:"max_tokens"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *QuoteGenerator) generate(ctx context.Context) (models.Quote, error) {
	body := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a motivational AI/ML knowledge assistant. Return ONLY valid JSON, no markdown, no explanation."},
			{Role: "user", Content: `Generate a unique, inspiring quote or fact about one of these topics: Artificial Intelligence, Machine Learning, Deep Learning, Data Science, Neural Networks, Computer Vision, NLP, Reinforcement Learning, or AI Ethics.

Return EXACTLY this JSON format:
{"text": "the quote or fact text here", "author": "Author Name or 'AI/ML Fact'", "category": "AI|ML|DL|DS", "type": "quote|fact"}

Make it thought-provoking, educational, and motivating for an AI/ML learner.`},
		},
		Temperature: 0.9,
		MaxTokens:   300,
	}
	body.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(body)
	if err != nil {
		return models.Quote{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(payload))
	if err != nil {
		return models.Quote{}, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return models.Quote{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Quote{}, fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.Quote{}, err
	}
	if len(parsed.Choices) == 0 {
		return models.Quote{}, fmt.Errorf("quote API returned no choices")
	}

	var quote models.Quote
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &quote); err != nil {
		return models.Quote{}, err
	}
	if quote.Text == "" || quote.Author == "" {
		return models.Quote{}, fmt.Errorf("quote API returned incomplete quote")
	}
	if quote.Category == "" {
		quote.Category = "AI"
	}
	if quote.Type == "" {
		quote.Type = "quote"
	}
	quote.Source = "groq_ai"
	return quote, nil
}
