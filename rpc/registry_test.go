package rpc

import (
	"reflect"
	"testing"
)

func TestResolvePeersExcludesLocalService(t *testing.T) {
	peers := ResolvePeers("a,b,opbeans-python-local", "opbeans-python")

	want := []Peer{"a", "b"}
	if !reflect.DeepEqual(peers, want) {
		t.Fatalf("ResolvePeers = %v, want %v", peers, want)
	}
}

func TestResolvePeersEmptyInput(t *testing.T) {
	peers := ResolvePeers("", "storefront")
	if len(peers) != 0 {
		t.Fatalf("Expected empty peer set, got %v", peers)
	}
}

func TestResolvePeersTrimsWhitespace(t *testing.T) {
	peers := ResolvePeers(" svc1 , svc2 ,, storefront-go ", "storefront")

	want := []Peer{"svc1", "svc2"}
	if !reflect.DeepEqual(peers, want) {
		t.Fatalf("ResolvePeers = %v, want %v", peers, want)
	}
}

func TestResolvePeersSubstringMatch(t *testing.T) {
	// Any entry containing the marker is treated as the local service
	peers := ResolvePeers("opbeans-go,opbeans-python-01,opbeans-node", "opbeans-python")

	want := []Peer{"opbeans-go", "opbeans-node"}
	if !reflect.DeepEqual(peers, want) {
		t.Fatalf("ResolvePeers = %v, want %v", peers, want)
	}
}

func TestResolvePeersNoMatches(t *testing.T) {
	peers := ResolvePeers("svc1,svc2", "storefront")

	want := []Peer{"svc1", "svc2"}
	if !reflect.DeepEqual(peers, want) {
		t.Fatalf("ResolvePeers = %v, want %v", peers, want)
	}
}
