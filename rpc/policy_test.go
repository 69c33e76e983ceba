package rpc

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"
)

// scriptedSource replays fixed rolls and picks for deterministic decisions
type scriptedSource struct {
	rolls []float64
	picks []int
	ri    int
	pi    int
}

func (s *scriptedSource) Float64() float64 {
	v := s.rolls[s.ri%len(s.rolls)]
	s.ri++
	return v
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.picks) == 0 {
		return 0
	}
	v := s.picks[s.pi%len(s.picks)] % n
	s.pi++
	return v
}

func TestDecideNonGETAlwaysLocal(t *testing.T) {
	policy := NewPolicy([]Peer{"a", "b"}, 1.0, zap.NewNop()).
		WithSource(&scriptedSource{rolls: []float64{0.0}})

	for _, method := range []string{"POST", "PUT", "DELETE", "PATCH", "HEAD"} {
		d := policy.Decide(method)
		if d.Forward {
			t.Errorf("Decide(%s) forwarded, want local", method)
		}
	}
}

func TestDecideEmptyPeersAlwaysLocal(t *testing.T) {
	policy := NewPolicy([]Peer{}, 1.0, zap.NewNop()).
		WithSource(&scriptedSource{rolls: []float64{0.0}})

	for i := 0; i < 100; i++ {
		if d := policy.Decide("GET"); d.Forward {
			t.Fatal("Decide forwarded with empty peer set")
		}
	}
}

func TestDecideZeroProbabilityNeverForwards(t *testing.T) {
	policy := NewPolicy([]Peer{"a", "b"}, 0.0, zap.NewNop()).
		WithSource(rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		if d := policy.Decide("GET"); d.Forward {
			t.Fatalf("Decision %d forwarded with probability 0.0 (roll %f)", i, d.Roll)
		}
	}
}

func TestDecideFullProbabilityAlwaysForwards(t *testing.T) {
	policy := NewPolicy([]Peer{"a", "b"}, 1.0, zap.NewNop()).
		WithSource(rand.New(rand.NewSource(7)))

	for i := 0; i < 1000; i++ {
		d := policy.Decide("GET")
		if !d.Forward {
			t.Fatalf("Decision %d stayed local with probability 1.0 (roll %f)", i, d.Roll)
		}
		if d.Peer != "a" && d.Peer != "b" {
			t.Fatalf("Decision %d chose unknown peer %q", i, d.Peer)
		}
	}
}

func TestDecideDistribution(t *testing.T) {
	policy := NewPolicy([]Peer{"a", "b"}, 0.5, zap.NewNop()).
		WithSource(rand.New(rand.NewSource(42)))

	const trials = 10000
	counts := map[Peer]int{}
	local := 0
	for i := 0; i < trials; i++ {
		d := policy.Decide("GET")
		if d.Forward {
			counts[d.Peer]++
		} else {
			local++
		}
	}

	// Expect roughly trials/2 local decisions and trials/4 per peer
	if local < 4500 || local > 5500 {
		t.Errorf("Local decisions = %d, want ~%d", local, trials/2)
	}
	for _, peer := range []Peer{"a", "b"} {
		if counts[peer] < 2000 || counts[peer] > 3000 {
			t.Errorf("Peer %q selected %d times, want ~%d", peer, counts[peer], trials/4)
		}
	}
}

func TestDecidePeerSelectionUsesSource(t *testing.T) {
	policy := NewPolicy([]Peer{"a", "b", "c"}, 1.0, zap.NewNop()).
		WithSource(&scriptedSource{rolls: []float64{0.1}, picks: []int{2, 0, 1}})

	want := []Peer{"c", "a", "b"}
	for i, peer := range want {
		d := policy.Decide("GET")
		if !d.Forward || d.Peer != peer {
			t.Fatalf("Decision %d = (%v, %q), want forward to %q", i, d.Forward, d.Peer, peer)
		}
	}
}
