package flow

// EdmondsKarp computes maximum flow by repeatedly augmenting along a
// shortest (fewest-edge) residual path found by BFS.
//
// It is slower than Dinic on most inputs but shares nothing with the level
// graph machinery, which makes it a useful cross-check.
type EdmondsKarp[F Integer] struct {
	*Network[F]

	parent []EdgeID // BFS tree edge entering v, NoEdge if unreached
	queue  []int
	stats  Stats
}

// NewEdmondsKarp creates an Edmonds–Karp solver over an empty network with n
// nodes. It panics if n < 1 or if source or sink lies outside [0, n).
func NewEdmondsKarp[F Integer](n, source, sink int, opts ...Option) *EdmondsKarp[F] {
	return &EdmondsKarp[F]{
		Network: newNetwork[F](n, source, sink, buildOptions(opts)),
		parent:  make([]EdgeID, n),
		queue:   make([]int, 0, n),
	}
}

// MaxFlow pushes a maximum flow from Source() to Sink() and returns the
// amount added by this call.
//
// Steps:
//  1. BFS from the source over positive-residual edges, recording the
//     entering edge of each node; stop once the sink is labelled.
//  2. If the sink is unreached, stop.
//  3. Walk parent edges from the sink to find the bottleneck, then push it.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func (g *EdmondsKarp[F]) MaxFlow() F {
	var total F
	if g.source == g.sink {
		return total
	}

	for g.bfs() {
		g.stats.Phases++
		bottle := MaxValue[F]()
		for v := g.sink; v != g.source; {
			e := g.parent[v]
			bottle = minOf(bottle, g.cap[e]-g.flow[e])
			v = g.to[e^1]
		}
		for v := g.sink; v != g.source; {
			e := g.parent[v]
			g.push(e, bottle)
			v = g.to[e^1]
		}
		g.stats.Augmentations++
		total += bottle

		if ev := g.log.Trace(); ev.Enabled() {
			ev.Str("solver", "edmonds_karp").Interface("pushed", bottle).Interface("total", total).Msg("augmenting path")
		}
	}

	return total
}

// bfs labels parent edges from the source and reports whether the sink was reached.
func (g *EdmondsKarp[F]) bfs() bool {
	for v := range g.parent {
		g.parent[v] = NoEdge
	}
	visited := func(v int) bool { return v == g.source || g.parent[v] != NoEdge }

	q := append(g.queue[:0], g.source)
	defer func() { g.queue = q[:0] }()
	for head := 0; head < len(q); head++ {
		u := q[head]
		for _, e := range g.adj[u] {
			v := g.to[e]
			if visited(v) || g.cap[e]-g.flow[e] <= 0 {
				continue
			}
			g.parent[v] = e
			if v == g.sink {
				return true
			}
			q = append(q, v)
		}
	}

	return false
}

// Stats reports the BFS rounds and augmentations performed so far.
func (g *EdmondsKarp[F]) Stats() Stats { return g.stats }
