package flow

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Network is a residual graph over nodes 0..n-1 with a dense, append-only
// edge arena. Every AddEdge call stores a forward edge e and its backward
// partner e^1 next to each other, so the pair is found by flipping the
// lowest bit of the id.
//
// The source node of an edge is not stored: an edge listed in Adjacent(u)
// starts at u, and From(e) recovers it as To(e^1).
//
// For unsigned F the backward flow -x is stored modulo 2^k. The residual
// Capacity(e)-Flow(e) stays exact under that wrap, which is the only quantity
// the solvers read.
//
// A Network is not safe for concurrent use.
type Network[F Integer] struct {
	n      int
	source int
	sink   int

	adj  [][]EdgeID
	to   []int
	cap  []F
	flow []F
	cost []F

	log zerolog.Logger
}

// NewNetwork creates an empty network with n nodes and the given terminals.
// It panics if n < 1 or if source or sink lies outside [0, n).
func NewNetwork[F Integer](n, source, sink int, opts ...Option) *Network[F] {
	return newNetwork[F](n, source, sink, buildOptions(opts))
}

func newNetwork[F Integer](n, source, sink int, cfg Options) *Network[F] {
	if n < 1 {
		panic(fmt.Errorf("%w: %d", ErrNodeCount, n))
	}
	g := &Network[F]{
		n:    n,
		adj:  make([][]EdgeID, n),
		to:   make([]int, 0, 2*cfg.EdgeHint),
		cap:  make([]F, 0, 2*cfg.EdgeHint),
		flow: make([]F, 0, 2*cfg.EdgeHint),
		cost: make([]F, 0, 2*cfg.EdgeHint),
		log:  cfg.Logger,
	}
	g.SetSource(source)
	g.SetSink(sink)

	return g
}

// N returns the number of nodes.
func (g *Network[F]) N() int { return g.n }

// Source returns the current source node.
func (g *Network[F]) Source() int { return g.source }

// Sink returns the current sink node.
func (g *Network[F]) Sink() int { return g.sink }

// SetSource moves the source to u. It panics if u is out of range.
func (g *Network[F]) SetSource(u int) {
	g.mustNode("source", u)
	g.source = u
}

// SetSink moves the sink to u. It panics if u is out of range.
func (g *Network[F]) SetSink(u int) {
	g.mustNode("sink", u)
	g.sink = u
}

// AddEdge appends the residual pair u→v (capacity c) and v→u (capacity 0)
// and returns the id of the forward edge, which is always even.
// Self-loops and parallel edges are accepted.
func (g *Network[F]) AddEdge(u, v int, c F) EdgeID {
	return g.addEdge(u, v, c, 0)
}

func (g *Network[F]) addEdge(u, v int, c, cost F) EdgeID {
	g.mustNode("edge tail", u)
	g.mustNode("edge head", v)
	if c < 0 {
		panic(fmt.Errorf("%w: edge %d→%d capacity %v", ErrNegativeCapacity, u, v, c))
	}

	id := len(g.to)
	g.adj[u] = append(g.adj[u], id)
	g.to = append(g.to, v)
	g.cap = append(g.cap, c)
	g.flow = append(g.flow, 0)
	g.cost = append(g.cost, cost)

	g.adj[v] = append(g.adj[v], id+1)
	g.to = append(g.to, u)
	g.cap = append(g.cap, 0)
	g.flow = append(g.flow, 0)
	g.cost = append(g.cost, -cost)

	return id
}

// EdgeCount returns the number of residual edges, i.e. twice the number of
// AddEdge calls.
func (g *Network[F]) EdgeCount() int { return len(g.to) }

// To returns the head of edge e.
func (g *Network[F]) To(e EdgeID) int { return g.to[e] }

// From returns the tail of edge e.
func (g *Network[F]) From(e EdgeID) int { return g.to[e^1] }

// Capacity returns the capacity of e; zero for backward edges.
func (g *Network[F]) Capacity(e EdgeID) F { return g.cap[e] }

// Flow returns the current flow on e.
func (g *Network[F]) Flow(e EdgeID) F { return g.flow[e] }

// Cost returns the per-unit cost of e; backward edges carry the negation.
func (g *Network[F]) Cost(e EdgeID) F { return g.cost[e] }

// Residual returns Capacity(e) - Flow(e).
func (g *Network[F]) Residual(e EdgeID) F { return g.cap[e] - g.flow[e] }

// Adjacent returns the edges leaving u in insertion order.
// The slice is owned by the network and must not be modified.
func (g *Network[F]) Adjacent(u int) []EdgeID {
	g.mustNode("node", u)

	return g.adj[u]
}

// push moves amount units along e, keeping flow(e) == -flow(e^1).
func (g *Network[F]) push(e EdgeID, amount F) {
	g.flow[e] += amount
	g.flow[e^1] -= amount
}

func (g *Network[F]) mustNode(role string, u int) {
	if u < 0 || u >= g.n {
		panic(fmt.Errorf("%w: %s %d not in [0, %d)", ErrNodeOutOfRange, role, u, g.n))
	}
}
