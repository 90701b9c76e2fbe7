package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jmylchreest/swatch/internal/security"
)

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(r.Header.Get("User-Agent")))
		case "/big":
			w.Write([]byte(strings.Repeat("x", 2048)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("sets user agent", func(t *testing.T) {
		data, err := Fetch(context.Background(), srv.URL+"/ok", FetchOptions{})
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if !strings.HasPrefix(string(data), UserAgentName+"/") {
			t.Errorf("User-Agent = %q, want prefix %q", data, UserAgentName+"/")
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		if _, err := Fetch(context.Background(), srv.URL+"/missing", FetchOptions{}); err == nil {
			t.Error("Fetch() expected error for 404")
		}
	})

	t.Run("body limit", func(t *testing.T) {
		_, err := Fetch(context.Background(), srv.URL+"/big", FetchOptions{MaxBytes: 1024})
		if !errors.Is(err, security.ErrLimitExceeded) {
			t.Errorf("Fetch() error = %v, want ErrLimitExceeded", err)
		}
	})
}
