package flow

// leveler holds the per-phase state shared by the Dinic family: the BFS
// layering d, the current-arc cursors cur, and scratch buffers reused across
// phases so a solve allocates only once.
type leveler[F Integer] struct {
	g *Network[F]

	d     []int    // BFS distance from source, -1 if unreached
	cur   []int    // current-arc cursor into g.adj[u]
	queue []int    // BFS queue
	path  []EdgeID // edges of the DFS branch from source
	stats Stats
}

func newLeveler[F Integer](g *Network[F]) leveler[F] {
	l := leveler[F]{
		g:     g,
		d:     make([]int, g.n),
		cur:   make([]int, g.n),
		queue: make([]int, 0, g.n),
	}
	for i := range l.d {
		l.d[i] = -1
	}

	return l
}

// bfs layers the residual graph from the source, following only edges whose
// residual is at least lim. It returns true as soon as the sink is
// discovered: every node at the sink's depth or shallower is labelled by
// then, and the blocking-flow search never looks deeper.
func (l *leveler[F]) bfs(lim F) bool {
	g := l.g
	for i := range l.d {
		l.d[i] = -1
	}
	l.d[g.source] = 0
	q := append(l.queue[:0], g.source)
	defer func() { l.queue = q[:0] }()

	for head := 0; head < len(q); head++ {
		u := q[head]
		for _, e := range g.adj[u] {
			v := g.to[e]
			if l.d[v] != -1 || g.cap[e]-g.flow[e] < lim {
				continue
			}
			l.d[v] = l.d[u] + 1
			if v == g.sink {
				return true
			}
			q = append(q, v)
		}
	}

	return l.d[g.sink] != -1
}

// resetArcs rewinds every current-arc cursor. Called once per BFS phase.
func (l *leveler[F]) resetArcs() {
	for i := range l.cur {
		l.cur[i] = 0
	}
}

// augment finds one source→sink path in the level graph whose edges all have
// residual >= lim and pushes flow along it, returning the amount pushed or 0
// when the phase is blocked.
//
// With exact=false the amount is the path bottleneck (plain Dinic, lim=1).
// With exact=true the amount is lim itself; admissibility already guarantees
// every edge on the path can carry it (scaling Dinic).
//
// The search is iterative. cur[u] only advances past an edge once the edge
// is inadmissible or leads to a dead end, so across all calls of one phase
// each adjacency entry is skipped at most once.
func (l *leveler[F]) augment(lim F, exact bool) F {
	g := l.g
	path := l.path[:0]
	defer func() { l.path = path[:0] }()

	u := g.source
	for {
		if u == g.sink {
			amount := lim
			if !exact {
				amount = MaxValue[F]()
				for _, e := range path {
					amount = minOf(amount, g.cap[e]-g.flow[e])
				}
			}
			for _, e := range path {
				g.push(e, amount)
			}
			l.stats.Augmentations++
			if ev := g.log.Trace(); ev.Enabled() {
				ev.Int("edges", len(path)).Interface("amount", amount).Msg("augmenting path")
			}

			return amount
		}

		advanced := false
		adj := g.adj[u]
		for ; l.cur[u] < len(adj); l.cur[u]++ {
			e := adj[l.cur[u]]
			v := g.to[e]
			if l.d[v] == l.d[u]+1 && g.cap[e]-g.flow[e] >= lim {
				path = append(path, e)
				u = v
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}

		// Dead end: retreat one edge and retire it from the tail's cursor.
		if len(path) == 0 {
			return 0
		}
		e := path[len(path)-1]
		path = path[:len(path)-1]
		u = g.to[e^1]
		l.cur[u]++
	}
}

// minCut reports the source side of the cut left by the last failed BFS.
func (l *leveler[F]) minCut() []bool {
	side := make([]bool, len(l.d))
	for v, dv := range l.d {
		side[v] = dv != -1
	}

	return side
}

// cutEdges lists the forward edges crossing from the source side to the
// sink side of minCut. Their capacities sum to the max-flow value.
func (l *leveler[F]) cutEdges() []EdgeID {
	g := l.g
	var out []EdgeID
	for e := 0; e < len(g.to); e += 2 {
		if l.d[g.to[e^1]] != -1 && l.d[g.to[e]] == -1 {
			out = append(out, e)
		}
	}

	return out
}
