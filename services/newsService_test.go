package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/hitenstark10/tenx-tracking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	batches [][]models.NewsArticle
	err     error
	calls   int
	queries []string
}

func (f *stubFetcher) Fetch(_ context.Context, query string) ([]models.NewsArticle, error) {
	f.queries = append(f.queries, query)
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.batches) == 0 {
		return nil, nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch, nil
}

type stubStore struct {
	rec     *BucketRecord
	loadErr error
	saveErr error
	saves   int
}

func (s *stubStore) Load(context.Context) (*BucketRecord, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.rec, nil
}

func (s *stubStore) Save(_ context.Context, rec *BucketRecord) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.rec = rec
	return nil
}

func fixedClock(date string) func() time.Time {
	t, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return t }
}

func article(id, title string) models.NewsArticle {
	return models.NewsArticle{ID: id, Title: title, Category: "AI"}
}

func uniqueBatches(n int) [][]models.NewsArticle {
	batches := make([][]models.NewsArticle, n)
	for i := 0; i < n; i++ {
		batches[i] = []models.NewsArticle{article(fmt.Sprintf("g%d", i), fmt.Sprintf("Fetched Headline %d", i))}
	}
	return batches
}

func TestNewsCacheQuotaNeverExceeded(t *testing.T) {
	fetcher := &stubFetcher{batches: uniqueBatches(20)}
	nc := NewNewsCache(fetcher, nil)
	nc.now = fixedClock("2024-03-01")

	prev := 0
	for i := 0; i < 15; i++ {
		feed, err := nc.Get(context.Background(), nil)
		require.NoError(t, err)
		assert.LessOrEqual(t, feed.FetchCount, MaxDailyFetches)
		assert.LessOrEqual(t, feed.FetchCount-prev, 1, "fetchCount may rise by at most 1 per call")
		prev = feed.FetchCount
	}

	assert.Equal(t, MaxDailyFetches, prev)
	assert.Equal(t, MaxDailyFetches, fetcher.calls, "no fetch once the cap is reached")
}

func TestNewsCacheRefreshRespectsCap(t *testing.T) {
	fetcher := &stubFetcher{batches: uniqueBatches(20)}
	nc := NewNewsCache(fetcher, nil)
	nc.now = fixedClock("2024-03-01")

	for i := 0; i < MaxDailyFetches; i++ {
		_, err := nc.Refresh(context.Background(), nil)
		require.NoError(t, err)
	}
	before, err := nc.Get(context.Background(), nil)
	require.NoError(t, err)

	after, err := nc.Refresh(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, MaxDailyFetches, fetcher.calls)
	assert.Equal(t, before.FetchCount, after.FetchCount)
	assert.Equal(t, before.Total, after.Total)
}

func TestNewsCacheQueryRotation(t *testing.T) {
	fetcher := &stubFetcher{}
	nc := NewNewsCache(fetcher, nil)
	nc.now = fixedClock("2024-03-01")

	for i := 0; i < 3; i++ {
		_, err := nc.Get(context.Background(), nil)
		require.NoError(t, err)
	}

	require.Len(t, fetcher.queries, 3)
	assert.Equal(t, searchQueries[0], fetcher.queries[0])
	assert.Equal(t, searchQueries[1], fetcher.queries[1])
	assert.Equal(t, searchQueries[2], fetcher.queries[2])
}

func TestNewsCacheDeduplicatesByNormalizedTitle(t *testing.T) {
	fetcher := &stubFetcher{batches: [][]models.NewsArticle{
		{article("a1", "Big AI Breakthrough")},
		{article("a2", "  big ai breakthrough  ")},
	}}
	nc := NewNewsCache(fetcher, nil)
	nc.now = fixedClock("2024-03-01")

	_, err := nc.Get(context.Background(), nil)
	require.NoError(t, err)
	feed, err := nc.Get(context.Background(), nil)
	require.NoError(t, err)

	matches := 0
	for _, a := range feed.Articles {
		if normalizeTitle(a.Title) == "big ai breakthrough" {
			matches++
		}
	}
	assert.Equal(t, 1, matches)
	assert.Equal(t, 2, feed.FetchCount, "a duplicate-only batch still spends a quota unit")
}

func TestNewsCacheFetchErrorDoesNotSpendQuota(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("upstream timeout")}
	nc := NewNewsCache(fetcher, nil)
	nc.now = fixedClock("2024-03-01")

	feed, err := nc.Get(context.Background(), nil)
	require.NoError(t, err, "upstream failure must not fail the request")

	assert.Equal(t, 0, feed.FetchCount)
	assert.GreaterOrEqual(t, feed.Total, minArticles, "curated backfill keeps the pool usable")
}

func TestNewsCacheEmptySuccessfulFetchSpendsQuota(t *testing.T) {
	fetcher := &stubFetcher{}
	nc := NewNewsCache(fetcher, nil)
	nc.now = fixedClock("2024-03-01")

	feed, err := nc.Get(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, feed.FetchCount)
}

func TestNewsCacheRolloverKeepsOnlyBookmarked(t *testing.T) {
	nc := NewNewsCache(nil, nil)
	nc.now = fixedClock("2024-03-01")
	nc.date = "2024-03-01"
	nc.articles = []models.NewsArticle{
		article("a", "Kept Bookmark"),
		article("b", "Dropped One"),
		article("c", "Dropped Two"),
	}
	nc.fetchCount = 4

	nc.rollover(context.Background(), "2024-03-02", []string{"a"})

	require.Len(t, nc.articles, 1)
	assert.Equal(t, "a", nc.articles[0].ID)
	assert.Equal(t, 0, nc.fetchCount)
	assert.Equal(t, "2024-03-02", nc.date)
}

func TestNewsCacheRolloverThroughServe(t *testing.T) {
	nc := NewNewsCache(nil, nil)
	nc.now = fixedClock("2024-03-01")

	feed, err := nc.Get(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, feed.Articles)
	bookmarkedID := feed.Articles[0].ID
	bookmarkedTitle := feed.Articles[0].Title

	nc.now = fixedClock("2024-03-02")
	feed, err = nc.Get(context.Background(), []string{bookmarkedID})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-02", feed.Date)
	found := false
	for _, a := range feed.Articles {
		if a.ID == bookmarkedID {
			found = true
			assert.Equal(t, bookmarkedTitle, a.Title)
		}
	}
	assert.True(t, found, "bookmarked article survives rollover")
}

func TestNewsCacheRestoresPersistedBucketForToday(t *testing.T) {
	persisted := make([]models.NewsArticle, 0, 16)
	for i := 0; i < 16; i++ {
		persisted = append(persisted, article(fmt.Sprintf("p%d", i), fmt.Sprintf("Persisted Headline %d", i)))
	}
	store := &stubStore{rec: &BucketRecord{
		Articles:   persisted,
		CacheDate:  "2024-03-01",
		FetchCount: 7,
	}}
	nc := NewNewsCache(nil, store)
	nc.now = fixedClock("2024-03-01")

	feed, err := nc.Get(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 7, feed.FetchCount)
	assert.Equal(t, 16, feed.Total, "restored bucket above the floor skips backfill")
}

func TestNewsCacheIgnoresPersistedBucketFromOtherDay(t *testing.T) {
	store := &stubStore{rec: &BucketRecord{
		Articles:   []models.NewsArticle{article("old", "Stale Headline")},
		CacheDate:  "2024-02-29",
		FetchCount: 9,
	}}
	nc := NewNewsCache(nil, store)
	nc.now = fixedClock("2024-03-01")

	feed, err := nc.Get(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 0, feed.FetchCount)
	for _, a := range feed.Articles {
		assert.NotEqual(t, "old", a.ID)
	}
}

func TestNewsCacheBackfillFloor(t *testing.T) {
	nc := NewNewsCache(nil, nil)
	nc.now = fixedClock("2024-03-01")
	nc.date = "2024-03-01"
	nc.articles = []models.NewsArticle{
		article("x1", "Existing One"),
		// Duplicate of curated c1 modulo case: that curated entry must be skipped.
		article("x2", "gpt-5 achieves phd-level reasoning in new benchmarks"),
	}

	feed, err := nc.Get(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, targetArticles, feed.Total)

	seen := make(map[string]int)
	for _, a := range feed.Articles {
		seen[normalizeTitle(a.Title)]++
	}
	for title, n := range seen {
		assert.Equal(t, 1, n, "duplicate title %q after backfill", title)
	}
}

func TestNewsCacheBackfillExhaustsCuratedSupply(t *testing.T) {
	nc := NewNewsCache(nil, nil)
	nc.now = fixedClock("2024-03-01")

	feed, err := nc.Get(context.Background(), nil)
	require.NoError(t, err)

	// Nothing fetched, so the pool is exactly min(20, curated available).
	want := targetArticles
	if len(curatedNews) < want {
		want = len(curatedNews)
	}
	assert.Equal(t, want, feed.Total)
	assert.Equal(t, 0, feed.FetchCount, "backfill never counts toward the quota")
}

func TestNewsCacheBackfillDeterministicPerDate(t *testing.T) {
	run := func() []string {
		nc := NewNewsCache(nil, nil)
		nc.now = fixedClock("2024-03-01")
		feed, err := nc.Get(context.Background(), nil)
		require.NoError(t, err)
		ids := make([]string, 0, len(feed.Articles))
		for _, a := range feed.Articles {
			ids = append(ids, a.ID)
		}
		return ids
	}

	assert.Equal(t, run(), run())
}

func TestNewsCachePersistsEveryCall(t *testing.T) {
	store := &stubStore{}
	nc := NewNewsCache(nil, store)
	nc.now = fixedClock("2024-03-01")

	_, err := nc.Get(context.Background(), nil)
	require.NoError(t, err)
	_, err = nc.Get(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, store.saves)
	require.NotNil(t, store.rec)
	assert.Equal(t, "2024-03-01", store.rec.CacheDate)
}

func TestNewsCachePersistFailureStillServes(t *testing.T) {
	store := &stubStore{saveErr: errors.New("disk full")}
	nc := NewNewsCache(nil, store)
	nc.now = fixedClock("2024-03-01")

	feed, err := nc.Get(context.Background(), nil)

	assert.Error(t, err)
	assert.GreaterOrEqual(t, feed.Total, minArticles, "feed stays usable despite persistence failure")
}

func TestNewsCacheMalformedBookmarksIgnored(t *testing.T) {
	nc := NewNewsCache(nil, nil)
	nc.now = fixedClock("2024-03-01")

	feed, err := nc.Get(context.Background(), []string{"", "", ""})
	require.NoError(t, err)
	assert.NotEmpty(t, feed.Articles)
	assert.Empty(t, nc.bookmarked)
}
