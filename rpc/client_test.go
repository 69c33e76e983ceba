package rpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestBuildURL(t *testing.T) {
	client := NewHTTPPeerClient(3000, zap.NewNop())

	tests := []struct {
		peer  Peer
		path  string
		query string
		want  string
	}{
		{"svc1", "/api/products", "x=1", "http://svc1:3000/api/products?x=1"},
		{"svc1", "/api/products", "", "http://svc1:3000/api/products"},
		{"http://svc2:8080", "/api/stats", "", "http://svc2:8080/api/stats"},
	}
	for _, tt := range tests {
		got := client.BuildURL(tt.peer, tt.path, tt.query)
		if got != tt.want {
			t.Errorf("BuildURL(%q, %q, %q) = %q, want %q", tt.peer, tt.path, tt.query, got, tt.want)
		}
	}
}

func TestGetRelaysResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" || r.URL.RawQuery != "x=1" {
			t.Errorf("Unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`[{"id":1}]`))
	}))
	defer srv.Close()

	client := NewHTTPPeerClient(3000, zap.NewNop())
	resp, err := client.Get(context.Background(), Peer(srv.URL), "/api/products", "x=1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusTeapot)
	}
	if string(resp.Body) != `[{"id":1}]` {
		t.Errorf("Body = %q", resp.Body)
	}
	if resp.ContentType != "application/json" {
		t.Errorf("ContentType = %q, want application/json", resp.ContentType)
	}
}

func TestGetDefaultsMissingContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Suppress Go's automatic content-type detection
		w.Header()["Content-Type"] = nil
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	client := NewHTTPPeerClient(3000, zap.NewNop())
	resp, err := client.Get(context.Background(), Peer(srv.URL), "/", "")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if resp.ContentType != DefaultContentType {
		t.Errorf("ContentType = %q, want %q", resp.ContentType, DefaultContentType)
	}
}

func TestGetConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Nothing listening anymore

	client := NewHTTPPeerClient(3000, zap.NewNop())
	if _, err := client.Get(context.Background(), Peer(srv.URL), "/", ""); err == nil {
		t.Fatal("Expected connection error, got nil")
	}
}

func TestGetTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	client := NewHTTPPeerClient(3000, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Get(ctx, Peer(srv.URL), "/", "")
	if err == nil {
		t.Fatal("Expected timeout error, got nil")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("Timeout took %v, expected prompt cancellation", elapsed)
	}
}
