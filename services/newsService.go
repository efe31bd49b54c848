package services

import (
	"context"
	"hash/fnv"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hitenstark10/tenx-tracking/helpers"
	"github.com/hitenstark10/tenx-tracking/models"
)

const (
	// MaxDailyFetches is the hard cap on external news-source calls per day.
	MaxDailyFetches = 10

	// minArticles is the floor below which curated backfill kicks in;
	// targetArticles is the size backfill fills up to.
	minArticles    = 15
	targetArticles = 20
)

// Fetcher issues one external news search. Implementations must bound the
// call (the GNews client uses a 10s client timeout) and return an error for
// any non-success outcome.
type Fetcher interface {
	Fetch(ctx context.Context, query string) ([]models.NewsArticle, error)
}

// BucketRecord is the persisted form of a day's bucket.
type BucketRecord struct {
	Articles   []models.NewsArticle
	CacheDate  string
	FetchCount int
}

// BucketStore persists the single day-bucket record for restart recovery.
type BucketStore interface {
	Load(ctx context.Context) (*BucketRecord, error)
	Save(ctx context.Context, rec *BucketRecord) error
}

// NewsCache owns the day-scoped pool of news articles: the per-day fetch
// quota, title deduplication, bookmark retention across rollover and
// curated backfill. All mutation happens under mu, including the external
// fetch, so concurrent requests can never both pass the quota gate.
type NewsCache struct {
	mu         sync.Mutex
	date       string
	articles   []models.NewsArticle
	fetchCount int
	bookmarked map[string]struct{}

	fetcher Fetcher
	store   BucketStore
	now     func() time.Time
}

// NewNewsCache builds a cache in its initial state (no date, empty pool).
// fetcher may be nil when no external source is configured; store may be
// nil to run purely in memory.
func NewNewsCache(fetcher Fetcher, store BucketStore) *NewsCache {
	return &NewsCache{
		fetcher:    fetcher,
		store:      store,
		bookmarked: make(map[string]struct{}),
		now:        time.Now,
	}
}

// Get serves today's bucket, rolling over on date change, attempting one
// quota-gated external fetch and backfilling from curated content. The
// returned error is a persistence failure only; the feed itself is always
// usable.
func (nc *NewsCache) Get(ctx context.Context, bookmarkedIDs []string) (models.NewsFeed, error) {
	return nc.serve(ctx, bookmarkedIDs)
}

// Refresh is an explicit retry of the fetch step. It never bypasses the
// quota: at the cap it degrades to the same answer as Get.
func (nc *NewsCache) Refresh(ctx context.Context, bookmarkedIDs []string) (models.NewsFeed, error) {
	return nc.serve(ctx, bookmarkedIDs)
}

func (nc *NewsCache) serve(ctx context.Context, bookmarkedIDs []string) (models.NewsFeed, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	today := helpers.FormatISO(nc.now().UTC())

	if nc.date != today {
		nc.rollover(ctx, today, bookmarkedIDs)
	}

	// Bookmark tracking is a monotonic union; ids are only ever added here.
	for _, id := range bookmarkedIDs {
		if id != "" {
			nc.bookmarked[id] = struct{}{}
		}
	}

	if nc.fetchCount < MaxDailyFetches && nc.fetcher != nil {
		query := searchQueries[nc.fetchCount%len(searchQueries)]
		fetched, err := nc.fetcher.Fetch(ctx, query)
		if err != nil {
			// Degrade silently; the quota unit is not spent so the next
			// request within the day retries naturally.
			log.Printf("News fetch failed (query %q): %v", query, err)
		} else {
			nc.appendUnique(fetched)
			nc.fetchCount++
		}
	}

	if len(nc.articles) < minArticles {
		nc.backfill(today)
	}

	var persistErr error
	if nc.store != nil {
		rec := &BucketRecord{
			Articles:   append([]models.NewsArticle(nil), nc.articles...),
			CacheDate:  today,
			FetchCount: nc.fetchCount,
		}
		if persistErr = nc.store.Save(ctx, rec); persistErr != nil {
			log.Printf("News bucket persist failed: %v", persistErr)
		}
	}

	return models.NewsFeed{
		Articles:   append([]models.NewsArticle(nil), nc.articles...),
		FetchCount: nc.fetchCount,
		MaxFetches: MaxDailyFetches,
		Date:       today,
		Total:      len(nc.articles),
	}, persistErr
}

// rollover re-seeds the bucket for a new date: only articles the caller
// still has bookmarked survive, the quota resets, and a bucket already
// persisted for today (by a previous process) wins over the rollover
// result.
func (nc *NewsCache) rollover(ctx context.Context, today string, bookmarkedIDs []string) {
	keep := make(map[string]struct{}, len(bookmarkedIDs))
	for _, id := range bookmarkedIDs {
		keep[id] = struct{}{}
	}

	var kept []models.NewsArticle
	for _, a := range nc.articles {
		if _, ok := keep[a.ID]; ok {
			kept = append(kept, a)
		}
	}

	nc.date = today
	nc.articles = kept
	nc.fetchCount = 0

	if nc.store != nil {
		rec, err := nc.store.Load(ctx)
		if err != nil {
			log.Printf("News bucket load failed: %v", err)
		} else if rec != nil && rec.CacheDate == today {
			nc.articles = rec.Articles
			nc.fetchCount = rec.FetchCount
		}
	}
}

// appendUnique appends fetched articles whose normalized title is not
// already in the bucket.
func (nc *NewsCache) appendUnique(fetched []models.NewsArticle) {
	titles := nc.existingTitles()
	for _, a := range fetched {
		key := normalizeTitle(a.Title)
		if key == "" {
			continue
		}
		if _, dup := titles[key]; dup {
			continue
		}
		titles[key] = struct{}{}
		nc.articles = append(nc.articles, a)
	}
}

// backfill tops the bucket up from the curated pool, rotated
// deterministically per date, until it reaches targetArticles or the pool
// is exhausted. Backfill never touches the fetch quota.
func (nc *NewsCache) backfill(today string) {
	titles := nc.existingTitles()

	pool := append([]models.NewsArticle(nil), curatedNews...)
	sort.Slice(pool, func(i, j int) bool {
		return dateHash(today, pool[i].ID) < dateHash(today, pool[j].ID)
	})

	stamp := nc.now().UTC()
	for _, a := range pool {
		if len(nc.articles) >= targetArticles {
			break
		}
		key := normalizeTitle(a.Title)
		if _, dup := titles[key]; dup {
			continue
		}
		a.Date = today
		a.PublishedAt = stamp.Format(time.RFC3339)
		titles[key] = struct{}{}
		nc.articles = append(nc.articles, a)
	}
}

func (nc *NewsCache) existingTitles() map[string]struct{} {
	titles := make(map[string]struct{}, len(nc.articles))
	for _, a := range nc.articles {
		titles[normalizeTitle(a.Title)] = struct{}{}
	}
	return titles
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

func dateHash(date, id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(date))
	h.Write([]byte(id))
	return h.Sum32()
}
