package unsplash_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"momentum-tab/pkg/unsplash"
)

func TestRandom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/photos/random" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Client-ID key-1" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.URL.Query().Get("query"); got != unsplash.DefaultQuery {
			t.Errorf("query = %q", got)
		}
		if got := r.URL.Query().Get("orientation"); got != "landscape" {
			t.Errorf("orientation = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"p1","urls":{"regular":"https://img/r","full":"https://img/f"},"user":{"name":"Jane Doe"}}`))
	}))
	defer srv.Close()

	c := unsplash.NewClient(srv.URL, "key-1", 0)
	photo, err := c.Random(context.Background(), unsplash.RandomRequest{
		Query:       unsplash.DefaultQuery,
		Orientation: unsplash.DefaultOrientation,
	})
	if err != nil {
		t.Fatalf("Random() error = %v", err)
	}
	if photo.URLs.Regular != "https://img/r" || photo.User.Name != "Jane Doe" {
		t.Errorf("Random() = %+v", photo)
	}
}

func TestRandom_Errors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		c := unsplash.NewClient("http://127.0.0.1:1", "", 0)
		if _, err := c.Random(context.Background(), unsplash.RandomRequest{}); !errors.Is(err, unsplash.ErrMissingAccessKey) {
			t.Errorf("Random() error = %v, want ErrMissingAccessKey", err)
		}
	})

	t.Run("non-200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Rate Limit Exceeded", http.StatusForbidden)
		}))
		defer srv.Close()

		c := unsplash.NewClient(srv.URL, "key-1", 0)
		if _, err := c.Random(context.Background(), unsplash.RandomRequest{}); err == nil {
			t.Error("expected an error for a 403 response")
		}
	})

	t.Run("rate limited context", func(t *testing.T) {
		c := unsplash.NewClient("http://127.0.0.1:1", "key-1", 1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := c.Random(ctx, unsplash.RandomRequest{}); err == nil {
			t.Error("expected an error for a cancelled context")
		}
	})
}
