package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(ddg, bing http.HandlerFunc) (*Client, func()) {
	ddgSrv := httptest.NewServer(ddg)
	bingSrv := httptest.NewServer(bing)

	c := NewClient()
	c.DuckDuckGoURL = ddgSrv.URL
	c.BingURL = bingSrv.URL

	return c, func() {
		ddgSrv.Close()
		bingSrv.Close()
	}
}

func TestSearchUsesPrimaryEngine(t *testing.T) {
	var bingHit bool
	c, cleanup := newTestClient(
		func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("q"); got != "go modules" {
				t.Errorf("query=%q, want %q", got, "go modules")
			}
			w.Write([]byte(duckDuckGoFixture))
		},
		func(w http.ResponseWriter, r *http.Request) {
			bingHit = true
			w.Write([]byte(bingFixture))
		},
	)
	defer cleanup()

	links := c.Search(context.Background(), "go modules", 2)
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}
	if links[0] != "https://blog.example.com/post-one" {
		t.Errorf("links[0]=%q", links[0])
	}
	if bingHit {
		t.Error("bing was queried although duckduckgo succeeded")
	}
}

func TestSearchFallsBackToBingOnPrimaryFailure(t *testing.T) {
	c, cleanup := newTestClient(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(bingFixture))
		},
	)
	defer cleanup()

	links := c.Search(context.Background(), "go modules", 10)
	if len(links) != 2 {
		t.Fatalf("got %d links (%v), want 2 from bing", len(links), links)
	}
	if links[1] != "https://news.example.com/story" {
		t.Errorf("links[1]=%q", links[1])
	}
}

func TestSearchReturnsEmptyWhenBothEnginesFail(t *testing.T) {
	c, cleanup := newTestClient(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) },
	)
	defer cleanup()

	if links := c.Search(context.Background(), "anything", 5); len(links) != 0 {
		t.Fatalf("got %v, want empty", links)
	}
}

func TestSearchCapsAtMaxResults(t *testing.T) {
	c, cleanup := newTestClient(
		func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(duckDuckGoFixture)) },
		func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(bingFixture)) },
	)
	defer cleanup()

	for _, max := range []int{1, 2, 3} {
		if links := c.Search(context.Background(), "q", max); len(links) > max {
			t.Errorf("max=%d: got %d links", max, len(links))
		}
	}
}
