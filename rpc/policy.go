package rpc

import (
	"math/rand"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var forwardingDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "storefront_forwarding_decisions_total",
	Help: "Per-request forwarding decisions, labelled by outcome.",
}, []string{"outcome"})

// Source supplies the random draws used by the decision policy. The
// production source must be safe for concurrent use from simultaneous
// requests; tests inject scripted sources.
type Source interface {
	Float64() float64
	Intn(n int) int
}

type globalSource struct{}

// The top-level math/rand functions share a lock-protected source.
func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) Intn(n int) int   { return rand.Intn(n) }

// Decision is the per-request outcome of the forwarding policy
type Decision struct {
	Forward bool
	Peer    Peer
	Roll    float64
}

// Policy decides per request whether to serve locally or forward to a
// randomly chosen peer. The peer set and probability are fixed at
// construction; Decide holds no mutable state and may be called from
// concurrent requests.
type Policy struct {
	peers       []Peer
	probability float64
	source      Source
	logger      *zap.Logger
}

// NewPolicy creates a forwarding policy over the given candidate peers
func NewPolicy(peers []Peer, probability float64, logger *zap.Logger) *Policy {
	return &Policy{
		peers:       peers,
		probability: probability,
		source:      globalSource{},
		logger:      logger,
	}
}

// WithSource replaces the random source, for deterministic tests
func (p *Policy) WithSource(source Source) *Policy {
	p.source = source
	return p
}

// Peers returns the candidate peer set
func (p *Policy) Peers() []Peer {
	return p.peers
}

// Decide returns the forwarding decision for a request with the given
// HTTP method. Only GET requests with a non-empty candidate set ever
// forward; everything else is served locally without drawing.
func (p *Policy) Decide(method string) Decision {
	if method != fiber.MethodGet || len(p.peers) == 0 {
		return Decision{Forward: false}
	}

	roll := p.source.Float64()
	if roll >= p.probability {
		p.logger.Debug("Rolling the dice",
			zap.Float64("roll", roll),
			zap.Float64("probability", p.probability),
			zap.Bool("forward", false),
		)
		forwardingDecisions.WithLabelValues("local").Inc()
		return Decision{Forward: false, Roll: roll}
	}

	peer := p.peers[p.source.Intn(len(p.peers))]
	p.logger.Info("Rolling the dice",
		zap.Float64("roll", roll),
		zap.Float64("probability", p.probability),
		zap.Bool("forward", true),
		zap.String("peer", string(peer)),
	)
	forwardingDecisions.WithLabelValues("forward").Inc()
	return Decision{Forward: true, Peer: peer, Roll: roll}
}
