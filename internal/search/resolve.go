package search

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	resolveTimeout     = 8 * time.Second
	resolveParallelism = 4
)

// Resolver normalizes possibly-redirecting search-result URLs to their
// final destinations. Resolution is best effort: a URL that cannot be
// resolved is kept as-is, never dropped.
type Resolver struct {
	HTTP        *http.Client
	Parallelism int
}

func NewResolver() *Resolver {
	return &Resolver{
		HTTP:        &http.Client{Timeout: resolveTimeout},
		Parallelism: resolveParallelism,
	}
}

// Resolve follows redirects for each URL (HEAD first, GET as fallback) and
// returns the final targets, deduplicated in first-seen order. URLs are
// resolved concurrently but the input order is preserved; per-URL failures
// never abort the batch. Fully-resolved input passes through unchanged.
func (r *Resolver) Resolve(ctx context.Context, urls []string) []string {
	if len(urls) == 0 {
		return nil
	}

	parallelism := r.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	resolved := make([]string, len(urls))
	sem := make(chan struct{}, parallelism)
	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, u string) {
			defer wg.Done()
			defer func() { <-sem }()
			resolved[i] = r.resolveOne(ctx, u)
		}(i, u)
	}
	wg.Wait()

	return dedupe(resolved, 0)
}

// resolveOne tries a redirect-following HEAD first. When HEAD fails, is not
// successful, or did not reveal a different destination, a GET decides; if
// that also fails the original URL is kept.
func (r *Resolver) resolveOne(ctx context.Context, rawURL string) string {
	final, ok := r.attempt(ctx, http.MethodHead, rawURL)
	if ok && final != rawURL {
		return final
	}

	if final, ok = r.attempt(ctx, http.MethodGet, rawURL); ok {
		return final
	}

	slog.Debug("[Resolver] Keeping unresolved URL", slog.String("url", rawURL))
	return rawURL
}

// attempt issues a single redirect-following request and reports the final
// URL after redirects and whether the response was a 2xx.
func (r *Resolver) attempt(ctx context.Context, method, rawURL string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", botUserAgent)

	resp, err := r.HTTP.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", false
	}
	return resp.Request.URL.String(), true
}
