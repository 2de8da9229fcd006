package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"seokit/internal/domain"
	"seokit/internal/logger"
	"seokit/internal/port"
)

// ReportCache keeps recent analysis reports keyed by input text.
// Entries expire after ttl and are dropped when the generation moves on.
// Reports are copied on Put and Get, so callers may modify what they hold.
type ReportCache struct {
	mu         sync.RWMutex
	entries    *lru.Cache[string, cacheEntry]
	ttl        time.Duration
	generation uint64
	now        func() time.Time
}

type cacheEntry struct {
	report     *domain.Report
	timestamp  time.Time
	generation uint64
}

func NewReportCache(maxSize int, ttl time.Duration) *ReportCache {
	if maxSize <= 0 {
		maxSize = 100
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[string, cacheEntry](maxSize)
	return &ReportCache{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}
}

func cacheKey(text string, comparison *string) string {
	h := sha256.New()
	h.Write([]byte(text))
	if comparison != nil {
		h.Write([]byte{0})
		h.Write([]byte(*comparison))
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}

func (c *ReportCache) Get(text string, comparison *string) (*domain.Report, bool) {
	key := cacheKey(text, comparison)

	c.mu.RLock()
	entry, exists := c.entries.Get(key)
	currentGen := c.generation
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if c.now().Sub(entry.timestamp) > c.ttl || entry.generation != currentGen {
		c.entries.Remove(key)
		return nil, false
	}

	return cloneReport(entry.report), true
}

func (c *ReportCache) Put(text string, comparison *string, report *domain.Report) {
	c.mu.RLock()
	gen := c.generation
	c.mu.RUnlock()

	c.entries.Add(cacheKey(text, comparison), cacheEntry{
		report:     cloneReport(report),
		timestamp:  c.now(),
		generation: gen,
	})
}

// Invalidate drops every entry, e.g. after the analysis config changes.
func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Purge()
	c.generation++
}

func (c *ReportCache) Size() int {
	return c.entries.Len()
}

func cloneReport(r *domain.Report) *domain.Report {
	if r == nil {
		return nil
	}
	out := *r
	out.Readability.SentenceLengths.Lengths = slices.Clone(r.Readability.SentenceLengths.Lengths)
	out.Keywords.Keywords = slices.Clone(r.Keywords.Keywords)
	out.TfIdf = slices.Clone(r.TfIdf)
	out.Sentiment.Sentences = slices.Clone(r.Sentiment.Sentences)
	return &out
}

// CachedAnalyzer serves repeated inputs from a ReportCache.
type CachedAnalyzer struct {
	analyzer port.Analyzer
	cache    *ReportCache
}

func NewCachedAnalyzer(analyzer port.Analyzer, cache *ReportCache) *CachedAnalyzer {
	return &CachedAnalyzer{
		analyzer: analyzer,
		cache:    cache,
	}
}

func (a *CachedAnalyzer) Analyze(ctx context.Context, text string, comparison *string) (*domain.Report, error) {
	if report, hit := a.cache.Get(text, comparison); hit {
		logger.FromContext(ctx).Debug("report cache hit", "entries", a.cache.Size())
		return report, nil
	}

	report, err := a.analyzer.Analyze(ctx, text, comparison)
	if err != nil {
		return nil, err
	}

	a.cache.Put(text, comparison, report)
	return report, nil
}
