package verse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestFetch_ReturnsTextVerbatim(t *testing.T) {
	const text = "For God so loved the world, that he gave his one and only Son,\n"
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reference":"John 3:16","text":"For God so loved the world, that he gave his one and only Son,\n","translation_name":"World English Bible"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "", nil)
	v, err := c.Fetch(context.Background(), "John 3:16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Text != text {
		t.Fatalf("expected verbatim text %q, got %q", text, v.Text)
	}
	if v.Reference != "John 3:16" || v.Translation != "World English Bible" {
		t.Fatalf("unexpected metadata: %+v", v)
	}
	if gotPath != "/John%203:16" {
		t.Fatalf("expected spaces escaped in path, got %q", gotPath)
	}
}

func TestFetch_TranslationQuery(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("translation")
		_, _ = w.Write([]byte(`{"text":"In the beginning God created the heaven and the earth."}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/", "kjv", ts.Client())
	if _, err := c.Fetch(context.Background(), "Genesis 1:1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "kjv" {
		t.Fatalf("expected translation=kjv, got %q", gotQuery)
	}
}

func TestFetch_NonOKIsNotFound(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusTooManyRequests} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		}))
		c := NewClient(ts.URL, "", nil)
		_, err := c.Fetch(context.Background(), "Nonexistent 99:99")
		ts.Close()
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("status %d: expected ErrNotFound, got %v", status, err)
		}
	}
}

func TestFetch_EmptyTextIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"reference":"","text":""}`))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, "", nil).Fetch(context.Background(), "John 3:16")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetch_BadJSONIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL, "", nil).Fetch(context.Background(), "John 3:16")
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestFetch_NetworkFailureIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := NewClient(url, "", nil).Fetch(context.Background(), "John 3:16")
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("network failure must not be reported as not found")
	}
}

func TestFetch_StrayURLCharactersReachServer(t *testing.T) {
	var gotPaths []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "", nil)
	refs := []string{"John 3:16%", "John 3:16?", "John #3"}
	for _, ref := range refs {
		_, err := c.Fetch(context.Background(), ref)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("%q: expected ErrNotFound, got %v", ref, err)
		}
		var te *TransportError
		if errors.As(err, &te) {
			t.Fatalf("%q: must not be a transport error", ref)
		}
	}
	for i, ref := range refs {
		if gotPaths[i] != "/"+ref {
			t.Fatalf("expected path %q, got %q", "/"+ref, gotPaths[i])
		}
	}
}
