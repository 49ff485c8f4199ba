package sentiment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonreiter/govader"

	"github.com/spacesedan/blogpulse/internal/models"
	"github.com/spacesedan/blogpulse/internal/textutil"
)

const (
	fetchTimeout     = 8 * time.Second
	scoreParallelism = 4
	maxBodyBytes     = 512 * 1024

	// ExcerptLimit caps the excerpt stored on each record; the full text
	// still feeds the sentiment computation.
	ExcerptLimit = 800

	// Classification thresholds are strict: a polarity of exactly 0.15 or
	// -0.15 stays neutral.
	positiveThreshold = 0.15
	negativeThreshold = -0.15

	userAgent = "blogpulse-bot/1.0 (+https://github.com/spacesedan/blogpulse)"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

// Scorer fetches pages and scores the sentiment of their main content.
type Scorer struct {
	HTTP        *http.Client
	Parallelism int
}

func NewScorer() *Scorer {
	return &Scorer{
		HTTP:        &http.Client{Timeout: fetchTimeout},
		Parallelism: scoreParallelism,
	}
}

// Score produces one SentimentRecord per input URL, in input order. The
// input is trusted to be deduplicated already. A URL that cannot be fetched
// or yields no text gets a "failed" record; failures never abort the batch.
func (s *Scorer) Score(ctx context.Context, urls []string) []models.SentimentRecord {
	if len(urls) == 0 {
		return nil
	}

	parallelism := s.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	records := make([]models.SentimentRecord, len(urls))
	sem := make(chan struct{}, parallelism)
	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, u string) {
			defer wg.Done()
			defer func() { <-sem }()
			records[i] = s.scoreOne(ctx, u)
		}(i, u)
	}
	wg.Wait()

	return records
}

func (s *Scorer) scoreOne(ctx context.Context, url string) models.SentimentRecord {
	text, err := s.fetchText(ctx, url)
	if err != nil || text == "" {
		if err != nil {
			slog.Debug("[Sentiment] Fetch failed", slog.String("url", url), slog.String("error", err.Error()))
		}
		return models.SentimentRecord{URL: url, Label: models.LabelFailed}
	}

	polarity, subjectivity := Analyze(text)

	return models.SentimentRecord{
		URL:          url,
		Excerpt:      Excerpt(text),
		Polarity:     &polarity,
		Subjectivity: &subjectivity,
		Label:        Classify(polarity),
	}
}

// fetchText downloads the page and extracts its primary textual content:
// an <article> element is preferred, then <main>, then the whole document;
// the text of paragraph and heading elements inside that container is
// joined with spaces.
func (s *Scorer) fetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}

	return ExtractText(doc), nil
}

// ExtractText pulls the joined paragraph and heading text out of a parsed
// page, preferring article over main over the whole document.
func ExtractText(doc *goquery.Document) string {
	container := doc.Find("article").First()
	if container.Length() == 0 {
		container = doc.Find("main").First()
	}

	var sel *goquery.Selection
	if container.Length() > 0 {
		sel = container.Find("p, h1, h2, h3")
	} else {
		sel = doc.Find("p, h1, h2, h3")
	}

	var parts []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if t := textutil.CollapseWhitespace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	return strings.TrimSpace(strings.Join(parts, " "))
}

// Analyze scores text with VADER. Polarity is the compound score in [-1, 1];
// subjectivity is the proportion of the text carrying any sentiment (the
// positive plus negative shares), in [0, 1]. Both rounded to 3 decimals.
func Analyze(text string) (polarity, subjectivity float64) {
	plain := textutil.CollapseWhitespace(textutil.RemoveLinks(text))

	scores := analyzer.PolarityScores(plain)
	return round3(scores.Compound), round3(scores.Positive + scores.Negative)
}

// Classify maps a polarity to its discrete label.
func Classify(polarity float64) string {
	switch {
	case polarity > positiveThreshold:
		return models.LabelPositive
	case polarity < negativeThreshold:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// Excerpt truncates text to the stored excerpt size.
func Excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= ExcerptLimit {
		return text
	}
	return string(runes[:ExcerptLimit])
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
