package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newRedirectServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/other", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/redirect-a", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/redirect-b", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/head-hostile", func(w http.ResponseWriter, r *http.Request) {
		// HEAD is rejected; only the GET fallback reveals the redirect.
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		http.Redirect(w, r, "/other", http.StatusFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestResolveFollowsRedirects(t *testing.T) {
	srv := newRedirectServer(t)
	r := NewResolver()

	got := r.Resolve(context.Background(), []string{srv.URL + "/redirect-a"})
	want := []string{srv.URL + "/final"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveFallsBackToGetWhenHeadFails(t *testing.T) {
	srv := newRedirectServer(t)
	r := NewResolver()

	got := r.Resolve(context.Background(), []string{srv.URL + "/head-hostile"})
	want := []string{srv.URL + "/other"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveKeepsUnreachableURLs(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL + "/gone"
	dead.Close()

	r := NewResolver()
	got := r.Resolve(context.Background(), []string{deadURL})
	if !reflect.DeepEqual(got, []string{deadURL}) {
		t.Fatalf("got %v, want original URL kept", got)
	}
}

func TestResolveDeduplicatesConvergingRedirects(t *testing.T) {
	srv := newRedirectServer(t)
	r := NewResolver()

	got := r.Resolve(context.Background(), []string{
		srv.URL + "/redirect-a",
		srv.URL + "/redirect-b",
	})
	want := []string{srv.URL + "/final"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolvePreservesOrderAndIsolatesFailures(t *testing.T) {
	srv := newRedirectServer(t)

	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL + "/gone"
	dead.Close()

	r := NewResolver()
	got := r.Resolve(context.Background(), []string{
		srv.URL + "/redirect-a",
		deadURL,
		srv.URL + "/other",
	})
	want := []string{srv.URL + "/final", deadURL, srv.URL + "/other"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	srv := newRedirectServer(t)
	r := NewResolver()

	once := r.Resolve(context.Background(), []string{
		srv.URL + "/redirect-a",
		srv.URL + "/other",
	})
	twice := r.Resolve(context.Background(), once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second resolve changed the list: %v vs %v", once, twice)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	r := NewResolver()
	if got := r.Resolve(context.Background(), nil); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}
