package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvflow/flow"
)

// requirePanicsIs runs fn and asserts it panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// requireSolved checks the flow invariants and that no augmenting path is
// left: the source side of the cut must not contain the sink, and the cut
// capacity must equal want.
func requireSolved[F flow.Integer](t *testing.T, g *flow.Network[F], side []bool, cut []flow.EdgeID, want F) {
	t.Helper()
	require.NoError(t, g.Validate())
	require.True(t, side[g.Source()], "source must be on the source side")
	require.False(t, side[g.Sink()], "sink must be on the sink side")

	var capacity F
	for _, e := range cut {
		require.Zero(t, e%2, "cut edge %d must be a forward edge", e)
		require.Equal(t, g.Capacity(e), g.Flow(e), "cut edge %d must be saturated", e)
		capacity += g.Capacity(e)
	}
	require.Equal(t, want, capacity, "min cut capacity must equal max flow")
	require.Equal(t, want, g.OutFlow(g.Source()), "net source outflow must equal max flow")
}

// randomEdge is one AddEdge call of a generated instance.
type randomEdge struct {
	u, v      int
	cap, cost int
}

// randomInstance mirrors the shape used throughout the stress tests:
// 2..21 nodes, 1..100 edges (self-loops and parallel edges included),
// distinct source and sink.
type randomInstance struct {
	n, s, t int
	edges   []randomEdge
}

func newRandomInstance(r *rand.Rand, maxCap, maxCost int) randomInstance {
	n := r.Intn(20) + 2
	m := r.Intn(100) + 1
	s := r.Intn(n)
	t := r.Intn(n - 1)
	if t >= s {
		t++
	}
	inst := randomInstance{n: n, s: s, t: t, edges: make([]randomEdge, m)}
	for i := range inst.edges {
		inst.edges[i] = randomEdge{
			u:    r.Intn(n),
			v:    r.Intn(n),
			cap:  r.Intn(maxCap + 1),
			cost: r.Intn(maxCost + 1),
		}
	}

	return inst
}

// requireNoNegativeCycle runs Bellman–Ford from a virtual root over the
// residual graph of g. A minimum-cost flow leaves no negative-cost residual
// cycle, so no relaxation may succeed on the n-th round.
func requireNoNegativeCycle[F flow.Signed](t *testing.T, g *flow.Network[F]) {
	t.Helper()
	dist := make([]F, g.N())
	for round := 0; round < g.N(); round++ {
		changed := false
		for u := 0; u < g.N(); u++ {
			for _, e := range g.Adjacent(u) {
				if g.Residual(e) <= 0 {
					continue
				}
				if nd := dist[u] + g.Cost(e); nd < dist[g.To(e)] {
					dist[g.To(e)] = nd
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
	t.Fatalf("residual graph has a negative-cost cycle; flow is not minimum-cost")
}
