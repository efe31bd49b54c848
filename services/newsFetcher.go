package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hitenstark10/tenx-tracking/helpers"
	"github.com/hitenstark10/tenx-tracking/models"

	"github.com/google/uuid"
)

const gnewsURL = "https://gnews.io/api/v4/search"

// GNewsFetcher queries the GNews search API. The client timeout bounds
// every call so a slow upstream cannot stall the quota-checking path.
type GNewsFetcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGNewsFetcher(apiKey string) *GNewsFetcher {
	return &GNewsFetcher{
		apiKey:  apiKey,
		baseURL: gnewsURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type gnewsResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		Image       string `json:"image"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

func (f *GNewsFetcher) Fetch(ctx context.Context, query string) ([]models.NewsArticle, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("lang", "en")
	params.Set("max", "10")
	params.Set("sortby", "publishedAt")
	params.Set("apikey", f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gnews returned status %d", resp.StatusCode)
	}

	var payload gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding gnews response: %w", err)
	}

	now := time.Now().UTC()
	today := helpers.FormatISO(now)
	articles := make([]models.NewsArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		content := a.Content
		if content == "" {
			content = a.Description
		}
		image := a.Image
		if image == "" {
			image = "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=600&h=340&fit=crop"
		}
		source := a.Source.Name
		if source == "" {
			source = "Unknown"
		}
		date := today
		if len(a.PublishedAt) >= 10 {
			date = a.PublishedAt[:10]
		}
		articles = append(articles, models.NewsArticle{
			ID:          "gnews_" + uuid.NewString(),
			Title:       a.Title,
			Description: a.Description,
			Content:     content,
			Image:       image,
			Source:      source,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Date:        date,
			Category:    CategorizeArticle(a.Title + " " + a.Description),
			FetchedAt:   now.Format(time.RFC3339),
		})
	}
	return articles, nil
}

// CategorizeArticle buckets a headline into AI/ML/DL/DS by keyword.
func CategorizeArticle(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "deep learning"), strings.Contains(lower, "neural net"),
		strings.Contains(lower, "transformer"), strings.Contains(lower, "diffusion"),
		strings.Contains(lower, "cnn"), strings.Contains(lower, "rnn"):
		return "DL"
	case strings.Contains(lower, "data science"), strings.Contains(lower, "analytics"),
		strings.Contains(lower, "dataset"), strings.Contains(lower, "visualization"),
		strings.Contains(lower, "pandas"):
		return "DS"
	case strings.Contains(lower, "machine learning"), strings.Contains(lower, "reinforcement"),
		strings.Contains(lower, "supervised"), strings.Contains(lower, "federated"),
		strings.Contains(lower, "gradient"):
		return "ML"
	default:
		return "AI"
	}
}
