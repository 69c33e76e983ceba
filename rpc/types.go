package rpc

import "context"

// Peer identifies a sibling service instance, either as a bare host
// ("opbeans-go") or a full base URL ("http://opbeans-go:3000")
type Peer string

// PeerClient defines the interface for relaying a request to a peer
type PeerClient interface {
	// Get issues a GET for the given path and raw query string against the
	// peer and returns the relayed response
	Get(ctx context.Context, peer Peer, path, query string) (*RelayedResponse, error)
}

// RelayedResponse is a peer's response, relayed verbatim to the original caller
type RelayedResponse struct {
	StatusCode  int    // HTTP status code
	Body        []byte // Raw response body
	ContentType string // Content-Type header, defaulted when the peer omits it
}
