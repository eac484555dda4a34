package flow

// MinCostFlow computes a minimum-cost maximum flow by successive shortest
// augmenting paths. Shortest paths are found with FIFO label-correcting
// relaxation, which tolerates negative edge costs.
//
// Precondition: the residual graph must never contain a negative-cost cycle.
// This is not detected; if violated, MaxFlow may not terminate or may return
// a non-optimal cost.
type MinCostFlow[F Signed] struct {
	*Network[F]

	dist    []F      // shortest-path label from source
	prev    []EdgeID // edge entering v on the shortest path, NoEdge if none
	inQueue []bool
	queue   nodeRing
	stats   Stats
}

// NewMinCostFlow creates a min-cost flow solver over an empty network with
// n nodes. It panics if n < 1 or if source or sink lies outside [0, n).
func NewMinCostFlow[F Signed](n, source, sink int, opts ...Option) *MinCostFlow[F] {
	g := &MinCostFlow[F]{
		Network: newNetwork[F](n, source, sink, buildOptions(opts)),
		dist:    make([]F, n),
		prev:    make([]EdgeID, n),
		inQueue: make([]bool, n),
		queue:   newNodeRing(n),
	}
	inf := MaxValue[F]()
	for v := range g.dist {
		g.dist[v] = inf
		g.prev[v] = NoEdge
	}

	return g
}

// AddEdge appends the residual pair u→v (capacity c, cost per unit) and
// v→u (capacity 0, cost -cost), returning the forward edge id.
// It panics if u or v is out of range or c < 0.
func (g *MinCostFlow[F]) AddEdge(u, v int, c, cost F) EdgeID {
	return g.addEdge(u, v, c, cost)
}

// MaxFlow pushes as much flow as possible at minimum total cost and returns
// (flow, cost) added by this call.
func (g *MinCostFlow[F]) MaxFlow() (F, F) {
	return g.MaxFlowLimit(MaxValue[F]())
}

// MaxFlowLimit is MaxFlow capped at limit units of flow. The returned cost is
// minimal among all flows of the returned value.
//
// Steps, repeated while limit > 0:
//  1. Label-correcting shortest path from the source by cost over edges with
//     positive residual. If the sink has no predecessor edge, stop.
//  2. Walk predecessors from the sink to find the bottleneck, bounded by the
//     remaining limit.
//  3. Walk again, pushing the bottleneck on every edge and adding
//     cost(e)·amount to the total cost.
//
// Complexity: O(F·V·E) where F is the number of augmenting paths.
//
// Cost accumulates in F; callers must size F for cost × flow.
func (g *MinCostFlow[F]) MaxFlowLimit(limit F) (F, F) {
	var total, totalCost F
	if g.source == g.sink {
		return total, totalCost
	}

	for limit > 0 {
		if !g.shortestPath() {
			break
		}
		g.stats.Phases++

		amount := limit
		for v := g.sink; v != g.source; {
			e := g.prev[v]
			amount = minOf(amount, g.cap[e]-g.flow[e])
			v = g.to[e^1]
		}
		var pathCost F
		for v := g.sink; v != g.source; {
			e := g.prev[v]
			pathCost += g.cost[e]
			g.push(e, amount)
			v = g.to[e^1]
		}
		g.stats.Augmentations++

		total += amount
		totalCost += pathCost * amount
		limit -= amount

		g.log.Debug().
			Str("solver", "min_cost_flow").
			Int("phase", g.stats.Phases).
			Interface("pushed", amount).
			Interface("unit_cost", pathCost).
			Interface("cost", totalCost).
			Msg("augmenting path")
	}

	return total, totalCost
}

// shortestPath relabels dist and prev from the source and reports whether the
// sink was reached.
func (g *MinCostFlow[F]) shortestPath() bool {
	inf := MaxValue[F]()
	for v := range g.dist {
		g.dist[v] = inf
		g.prev[v] = NoEdge
		g.inQueue[v] = false
	}
	g.queue.reset()

	g.dist[g.source] = 0
	g.inQueue[g.source] = true
	g.queue.push(g.source)
	for !g.queue.empty() {
		u := g.queue.pop()
		g.inQueue[u] = false
		for _, e := range g.adj[u] {
			if g.flow[e] >= g.cap[e] {
				continue
			}
			v := g.to[e]
			if nd := g.dist[u] + g.cost[e]; nd < g.dist[v] {
				g.dist[v] = nd
				g.prev[v] = e
				if !g.inQueue[v] {
					g.inQueue[v] = true
					g.queue.push(v)
				}
			}
		}
	}

	return g.prev[g.sink] != NoEdge
}

// Distance returns the shortest-path cost label of u from the last search,
// or MaxValue[F]() if u was unreached.
func (g *MinCostFlow[F]) Distance(u int) F {
	g.mustNode("node", u)

	return g.dist[u]
}

// Stats reports the shortest-path rounds and augmentations performed so far.
func (g *MinCostFlow[F]) Stats() Stats { return g.stats }

// nodeRing is a fixed-size FIFO of node indices. The in-queue flag keeps each
// node in it at most once, so n slots suffice.
type nodeRing struct {
	buf        []int
	head, size int
}

func newNodeRing(n int) nodeRing { return nodeRing{buf: make([]int, n)} }

func (r *nodeRing) reset() { r.head, r.size = 0, 0 }

func (r *nodeRing) empty() bool { return r.size == 0 }

func (r *nodeRing) push(v int) {
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++
}

func (r *nodeRing) pop() int {
	v := r.buf[r.head]
	r.head = (r.head + 1) % len(r.buf)
	r.size--

	return v
}
