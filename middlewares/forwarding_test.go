package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/rpc"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// forceSource always rolls below any positive probability
type forceSource struct{ pick int }

func (forceSource) Float64() float64 { return 0.0 }
func (s forceSource) Intn(n int) int { return s.pick % n }

// neverSource always rolls above any probability below 1
type neverSource struct{}

func (neverSource) Float64() float64 { return 0.999999 }
func (neverSource) Intn(n int) int   { return 0 }

func newTestApp(policy *rpc.Policy, invoked *bool) *fiber.App {
	app := fiber.New()
	fw := Forwarding(policy, rpc.NewHTTPPeerClient(3000, zap.NewNop()), zap.NewNop())
	handler := func(c *fiber.Ctx) error {
		*invoked = true
		return c.JSON(fiber.Map{"served": "locally"})
	}
	app.Get("/api/products", fw, handler)
	app.Post("/api/orders", fw, handler)
	return app
}

func TestForwardingRelaysPeerResponse(t *testing.T) {
	peer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" || r.URL.RawQuery != "x=1" {
			t.Errorf("Peer got %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`{"served":"remotely"}`))
	}))
	defer peer.Close()

	invoked := false
	policy := rpc.NewPolicy([]rpc.Peer{rpc.Peer(peer.URL)}, 1.0, zap.NewNop()).
		WithSource(forceSource{})
	app := newTestApp(policy, &invoked)

	req := httptest.NewRequest(fiber.MethodGet, "/api/products?x=1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if invoked {
		t.Error("Local handler was invoked for a forwarded request")
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("Status = %d, want %d", resp.StatusCode, http.StatusAccepted)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != `{"served":"remotely"}` {
		t.Errorf("Body = %q", body)
	}
}

func TestForwardingLocalDecisionCallsHandler(t *testing.T) {
	invoked := false
	policy := rpc.NewPolicy([]rpc.Peer{"unreachable"}, 0.5, zap.NewNop()).
		WithSource(neverSource{})
	app := newTestApp(policy, &invoked)

	req := httptest.NewRequest(fiber.MethodGet, "/api/products", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if !invoked {
		t.Error("Local handler was not invoked for a local decision")
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestForwardingPostNeverForwarded(t *testing.T) {
	invoked := false
	policy := rpc.NewPolicy([]rpc.Peer{"unreachable"}, 1.0, zap.NewNop()).
		WithSource(forceSource{})
	app := newTestApp(policy, &invoked)

	req := httptest.NewRequest(fiber.MethodPost, "/api/orders", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if !invoked {
		t.Error("Local handler was not invoked for a POST request")
	}
}

func TestForwardingFailureSurfacedNotMasked(t *testing.T) {
	peer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	peer.Close() // Peer is gone

	invoked := false
	policy := rpc.NewPolicy([]rpc.Peer{rpc.Peer(peer.URL)}, 1.0, zap.NewNop()).
		WithSource(forceSource{})
	app := newTestApp(policy, &invoked)

	req := httptest.NewRequest(fiber.MethodGet, "/api/products", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	defer resp.Body.Close()

	if invoked {
		t.Error("Local handler was invoked after a forwarding failure")
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want %d", resp.StatusCode, http.StatusServiceUnavailable)
	}
}
