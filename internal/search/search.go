package search

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultDuckDuckGoURL = "https://html.duckduckgo.com/html/"
	defaultBingURL       = "https://www.bing.com/search"

	// DefaultMaxResults bounds a search when the caller passes no limit.
	DefaultMaxResults = 10

	searchTimeout = 10 * time.Second
	maxBodyBytes  = 512 * 1024

	botUserAgent     = "blogpulse-bot/1.0 (+https://github.com/spacesedan/blogpulse)"
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// Client performs keyword searches against public search-engine HTML
// endpoints. DuckDuckGo is the primary engine; any failure there falls back
// to a single Bing attempt. Both endpoints are overridable for tests.
type Client struct {
	HTTP          *http.Client
	DuckDuckGoURL string
	BingURL       string
}

func NewClient() *Client {
	return &Client{
		HTTP:          &http.Client{Timeout: searchTimeout},
		DuckDuckGoURL: defaultDuckDuckGoURL,
		BingURL:       defaultBingURL,
	}
}

// Search returns up to maxResults absolute http(s) URLs for the query,
// deduplicated in first-seen order. Engine failures are not fatal: if both
// engines fail the result is empty and the caller decides what to do.
func (c *Client) Search(ctx context.Context, query string, maxResults int) []string {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	links, err := c.SearchDuckDuckGo(ctx, query, maxResults)
	if err == nil {
		return links
	}
	slog.Warn("[Search] DuckDuckGo search failed, falling back to Bing",
		slog.String("query", query), slog.String("error", err.Error()))

	links, err = c.SearchBing(ctx, query, maxResults)
	if err != nil {
		slog.Warn("[Search] Bing fallback failed",
			slog.String("query", query), slog.String("error", err.Error()))
		return nil
	}
	return links
}

// SearchDuckDuckGo scrapes DuckDuckGo's HTML results page for the query.
func (c *Client) SearchDuckDuckGo(ctx context.Context, query string, maxResults int) ([]string, error) {
	body, err := c.fetchResults(ctx, c.DuckDuckGoURL, query, botUserAgent)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: %w", err)
	}
	defer body.Close()

	links, err := ExtractDuckDuckGoLinks(body, maxResults)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo: parse: %w", err)
	}
	return links, nil
}

// SearchBing scrapes Bing's search results page for the query. Bing result
// hrefs may be redirecting ck/ links; resolve them before fetching.
func (c *Client) SearchBing(ctx context.Context, query string, maxResults int) ([]string, error) {
	body, err := c.fetchResults(ctx, c.BingURL, query, browserUserAgent)
	if err != nil {
		return nil, fmt.Errorf("bing: %w", err)
	}
	defer body.Close()

	links, err := ExtractBingLinks(body, maxResults)
	if err != nil {
		return nil, fmt.Errorf("bing: parse: %w", err)
	}
	return links, nil
}

func (c *Client) fetchResults(ctx context.Context, endpoint, query, userAgent string) (io.ReadCloser, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	return struct {
		io.Reader
		io.Closer
	}{io.LimitReader(resp.Body, maxBodyBytes), resp.Body}, nil
}
