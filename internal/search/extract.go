package search

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Result-anchor selectors for the supported engines. Markup drift silently
// degrades the first extraction pass; the anchor-scan fallback absorbs it.
const (
	duckDuckGoResultSelector = "a.result__a"
	bingResultSelector       = "li.b_algo"
)

// ExtractDuckDuckGoLinks pulls result URLs out of a DuckDuckGo HTML results
// page. Known result anchors are collected first in document order; if those
// fall short of maxResults, every absolute http(s) anchor on the page is
// scanned as a noisier second pass.
func ExtractDuckDuckGoLinks(r io.Reader, maxResults int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find(duckDuckGoResultSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if href, ok := s.Attr("href"); ok && isAbsoluteHTTP(href) {
			links = append(links, href)
		}
		return len(links) < maxResults
	})

	if len(links) < maxResults {
		links = appendAllAnchors(doc, links, maxResults)
	}

	return dedupe(links, maxResults), nil
}

// ExtractBingLinks pulls result URLs out of a Bing search results page,
// restricted to the engine's result list items.
func ExtractBingLinks(r io.Reader, maxResults int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find(bingResultSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		a := s.Find("a[href]").First()
		if href, ok := a.Attr("href"); ok && isAbsoluteHTTP(href) {
			links = append(links, href)
		}
		return len(links) < maxResults
	})

	return dedupe(links, maxResults), nil
}

// appendAllAnchors scans every anchor on the page for absolute http(s)
// links not already collected, in document order.
func appendAllAnchors(doc *goquery.Document, links []string, maxResults int) []string {
	seen := make(map[string]struct{}, len(links))
	for _, l := range links {
		seen[l] = struct{}{}
	}

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if ok {
			href = strings.TrimSpace(href)
			if isAbsoluteHTTP(href) {
				if _, dup := seen[href]; !dup {
					seen[href] = struct{}{}
					links = append(links, href)
				}
			}
		}
		return len(links) < maxResults
	})

	return links
}

func isAbsoluteHTTP(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// dedupe removes duplicate URLs preserving first-seen order and truncates
// to limit. A limit <= 0 means unbounded.
func dedupe(urls []string, limit int) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
