package flow

// Dinic computes maximum flow with Dinic's algorithm (level graph + blocking
// flows) over its embedded Network.
//
// Usage:
//
//	g := flow.NewDinic[int64](4, 0, 3)
//	g.AddEdge(0, 1, 1)
//	...
//	total := g.MaxFlow()
type Dinic[F Integer] struct {
	*Network[F]
	leveler[F]
}

// NewDinic creates a Dinic solver over an empty network with n nodes.
// It panics if n < 1 or if source or sink lies outside [0, n).
func NewDinic[F Integer](n, source, sink int, opts ...Option) *Dinic[F] {
	g := newNetwork[F](n, source, sink, buildOptions(opts))

	return &Dinic[F]{Network: g, leveler: newLeveler(g)}
}

// MaxFlow pushes a maximum flow from Source() to Sink() and returns the
// amount added by this call. Flow values are updated in place, so a second
// call on an unchanged network returns 0.
//
// Steps:
//  1. If source == sink there is nothing to route; return 0.
//  2. BFS from the source over edges with positive residual, labelling d.
//     If the sink is unreached, stop.
//  3. Rewind the current-arc cursors.
//  4. Repeatedly find a level-graph path and push its bottleneck until the
//     phase is blocked; add each push to the total.
//  5. Go to 2.
//
// Complexity:
//
//	Time:   O(V²·E); O(min(√E, V^(2/3))·E) with unit capacities; O(√V·E) for bipartite matching.
//	Memory: O(V + E).
//
// The total is accumulated in F; choose F wide enough for the answer.
func (g *Dinic[F]) MaxFlow() F {
	var total F
	if g.source == g.sink {
		return total
	}

	one := F(1)
	for g.bfs(one) {
		g.stats.Phases++
		g.resetArcs()
		var phase F
		for {
			pushed := g.augment(one, false)
			if pushed == 0 {
				break
			}
			phase += pushed
		}
		total += phase
		g.log.Debug().
			Str("solver", "dinic").
			Int("phase", g.stats.Phases).
			Int("sink_depth", g.d[g.sink]).
			Interface("pushed", phase).
			Msg("blocking flow")
	}

	return total
}

// D returns the BFS distance of u computed by the most recent layering, or -1
// if u was not reached. After MaxFlow, D(Sink()) == -1.
func (g *Dinic[F]) D(u int) int {
	g.mustNode("node", u)

	return g.d[u]
}

// MinCut returns, after MaxFlow, the source side of a minimum cut: side[v]
// is true when v is reachable from the source in the residual graph.
func (g *Dinic[F]) MinCut() []bool { return g.minCut() }

// CutEdges returns, after MaxFlow, the forward edges of a minimum cut.
func (g *Dinic[F]) CutEdges() []EdgeID { return g.cutEdges() }

// Stats reports the phases and augmentations performed so far.
func (g *Dinic[F]) Stats() Stats { return g.stats }
