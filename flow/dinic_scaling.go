package flow

// ScalingDinic computes maximum flow with capacity-scaled Dinic: each phase
// only uses edges whose residual is at least a threshold lim, and lim is
// halved whenever the sink becomes unreachable at the current scale.
//
// Prefer it over Dinic when capacities are large relative to V and E.
type ScalingDinic[F Integer] struct {
	*Network[F]
	leveler[F]
}

// NewScalingDinic creates a capacity-scaled Dinic solver over an empty
// network with n nodes. It panics if n < 1 or if source or sink lies outside
// [0, n).
func NewScalingDinic[F Integer](n, source, sink int, opts ...Option) *ScalingDinic[F] {
	g := newNetwork[F](n, source, sink, buildOptions(opts))

	return &ScalingDinic[F]{Network: g, leveler: newLeveler(g)}
}

// MaxFlow pushes a maximum flow from Source() to Sink() and returns the
// amount added by this call.
//
// Steps:
//  1. If source == sink, return 0.
//  2. lim = MaxValue[F]().
//  3. While lim >= 1:
//     a. BFS over edges with residual >= lim. If the sink is unreached,
//     lim >>= 1 and repeat.
//     b. Rewind the cursors and push exactly lim along admissible level-graph
//     paths until the phase is blocked.
//
// The last scale is lim = 1, which is a plain Dinic phase, so the result is
// a maximum flow and D(Sink()) == -1 on return.
//
// Complexity:
//
//	Time:   O(V·E·log U) where U is the largest capacity.
//	Memory: O(V + E).
func (g *ScalingDinic[F]) MaxFlow() F {
	var total F
	if g.source == g.sink {
		return total
	}

	for lim := MaxValue[F](); lim >= 1; {
		if !g.bfs(lim) {
			lim >>= 1
			g.stats.Scales++
			continue
		}
		g.stats.Phases++
		g.resetArcs()
		var phase F
		for {
			pushed := g.augment(lim, true)
			if pushed == 0 {
				break
			}
			phase += pushed
		}
		total += phase
		g.log.Debug().
			Str("solver", "scaling_dinic").
			Int("phase", g.stats.Phases).
			Interface("lim", lim).
			Interface("pushed", phase).
			Msg("blocking flow")
	}

	return total
}

// D returns the BFS distance of u computed by the most recent layering, or -1
// if u was not reached.
func (g *ScalingDinic[F]) D(u int) int {
	g.mustNode("node", u)

	return g.d[u]
}

// MinCut returns, after MaxFlow, the source side of a minimum cut.
func (g *ScalingDinic[F]) MinCut() []bool { return g.minCut() }

// CutEdges returns, after MaxFlow, the forward edges of a minimum cut.
func (g *ScalingDinic[F]) CutEdges() []EdgeID { return g.cutEdges() }

// Stats reports phases, augmentations and scale halvings performed so far.
func (g *ScalingDinic[F]) Stats() Stats { return g.stats }
