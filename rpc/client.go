package rpc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single forwarded call
const DefaultTimeout = 15 * time.Second

// DefaultContentType is relayed when the peer omits a Content-Type header
const DefaultContentType = "text/plain"

// HTTPPeerClient implements the PeerClient interface over plain HTTP
type HTTPPeerClient struct {
	httpClient *http.Client
	peerPort   int
	timeout    time.Duration
	logger     *zap.Logger
}

// NewHTTPPeerClient creates a peer client targeting the well-known peer
// HTTP port with the default forwarding timeout
func NewHTTPPeerClient(peerPort int, logger *zap.Logger) *HTTPPeerClient {
	return &HTTPPeerClient{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		peerPort: peerPort,
		timeout:  DefaultTimeout,
		logger:   logger,
	}
}

// Timeout returns the per-call timeout
func (c *HTTPPeerClient) Timeout() time.Duration {
	return c.timeout
}

// BuildURL constructs the target URL for a peer from the original request's
// path and raw query string. Bare peer identifiers get the http scheme and
// the well-known peer port; identifiers that are already URLs are used as-is.
func (c *HTTPPeerClient) BuildURL(peer Peer, path, query string) string {
	base := string(peer)
	if !strings.HasPrefix(base, "http://") {
		base = fmt.Sprintf("http://%s:%d", base, c.peerPort)
	}
	url := base + path
	if query != "" {
		url += "?" + query
	}
	return url
}

// Get issues a GET against the peer and relays the response. Timeouts and
// transport failures are returned to the caller unretried; a missing
// Content-Type header is replaced with DefaultContentType.
func (c *HTTPPeerClient) Get(ctx context.Context, peer Peer, path, query string) (*RelayedResponse, error) {
	url := c.BuildURL(peer, path, query)

	c.logger.Info("Forwarding request to peer",
		zap.String("peer", string(peer)),
		zap.String("url", url),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Connection to peer failed",
			zap.Error(err),
			zap.String("peer", string(peer)),
		)
		return nil, fmt.Errorf("failed to forward request to %s: %w", peer, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read peer response", zap.Error(err))
		return nil, fmt.Errorf("failed to read response from %s: %w", peer, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		c.logger.Debug("Missing content-type header from peer",
			zap.String("peer", string(peer)))
		contentType = DefaultContentType
	}

	c.logger.Info("Request forwarding completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(startTime)),
	)

	return &RelayedResponse{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: contentType,
	}, nil
}
