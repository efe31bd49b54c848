package models

// NewsArticle is one entry of the daily news pool. Articles are immutable
// once created; read/bookmark state lives in the per-user documents, not
// here. Dedup identity is the normalized title, not ID.
type NewsArticle struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Content     string `bson:"content" json:"content"`
	Image       string `bson:"image" json:"image"`
	Source      string `bson:"source" json:"source"`
	URL         string `bson:"url" json:"url"`
	PublishedAt string `bson:"published_at" json:"publishedAt"`
	Date        string `bson:"date" json:"date"`
	Category    string `bson:"category" json:"category"` // AI | ML | DL | DS
	FetchedAt   string `bson:"fetched_at" json:"fetchedAt,omitempty"`
}

// NewsFeed is the payload of GET /api/news and /api/news/refresh.
type NewsFeed struct {
	Articles   []NewsArticle `json:"articles"`
	FetchCount int           `json:"fetchCount"`
	MaxFetches int           `json:"maxFetches"`
	Date       string        `json:"date"`
	Total      int           `json:"total"`
}

// Quote is an AI-generated or fallback motivational quote.
type Quote struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Type     string `json:"type,omitempty"`
	Source   string `json:"source,omitempty"`
}
