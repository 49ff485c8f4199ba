package processing

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacesedan/blogpulse/internal/models"
	"github.com/spacesedan/blogpulse/internal/search"
	"github.com/spacesedan/blogpulse/internal/sentiment"
)

// Pipeline chains the crawl stages: keyword search, redirect resolution,
// and sentiment scoring. Each stage degrades gracefully; the pipeline never
// fails hard on external-system errors.
type Pipeline struct {
	Search   *search.Client
	Resolver *search.Resolver
	Scorer   *sentiment.Scorer
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		Search:   search.NewClient(),
		Resolver: search.NewResolver(),
		Scorer:   sentiment.NewScorer(),
	}
}

// CrawlAndScore discovers up to maxResults pages for the keyword and scores
// each one, returning one record per deduplicated resolved URL in discovery
// order. An empty result means both search engines came up dry.
func (p *Pipeline) CrawlAndScore(ctx context.Context, keyword string, maxResults int) []models.SentimentRecord {
	start := time.Now()
	slog.Info("[Pipeline] Searching for blog posts", slog.String("keyword", keyword))

	urls := p.Search.Search(ctx, keyword, maxResults)
	if len(urls) == 0 {
		slog.Warn("[Pipeline] No search results found", slog.String("keyword", keyword))
		return nil
	}

	slog.Info("[Pipeline] Resolving result URLs", slog.Int("count", len(urls)))
	resolved := p.Resolver.Resolve(ctx, urls)

	slog.Info("[Pipeline] Scoring sentiment", slog.Int("count", len(resolved)))
	records := p.Scorer.Score(ctx, resolved)

	slog.Info("[Pipeline] Crawl complete",
		slog.String("keyword", keyword),
		slog.Int("records", len(records)),
		slog.Duration("duration", time.Since(start)))

	return records
}
