// Package flow implements maximum-flow and minimum-cost-flow solvers over a
// shared, index-based residual graph.
//
// The key algorithms offered are:
//
//   - Dinic
//
//   - Method: BFS level graph + blocking flow via current-arc DFS.
//
//   - Time:   O(V²·E); O(min(√E, V^(2/3))·E) on unit-capacity networks;
//     O(√V·E) for bipartite matching.
//
//   - Memory: O(V + E).
//
//   - ScalingDinic
//
//   - Method: Dinic restricted to edges with residual ≥ lim, halving lim
//     from the type's maximum down to 1.
//
//   - Time:   O(V·E·log U), U = largest capacity.
//
//   - Use when capacities are large relative to the graph size.
//
//   - MinCostFlow
//
//   - Method: successive shortest paths with FIFO label-correcting
//     relaxation (negative edge costs allowed, negative cycles not).
//
//   - Time:   O(F·V·E), F = number of augmenting paths.
//
//   - EdmondsKarp
//
//   - Method: BFS shortest augmenting path.
//
//   - Time:   O(V·E²).
//
// # Residual graph
//
// Network stores edges in a dense arena addressed by EdgeID. AddEdge(u, v, c)
// appends a forward edge e (always even) and its backward partner e^1 with
// capacity 0 and negated cost, so the pair is found by flipping the lowest
// bit. Skew symmetry Flow(e) == -Flow(e^1) holds at all times. Self-loops and
// parallel edges are allowed; a self-loop never carries flow.
//
// # Numeric types
//
// The capacity type F is any Go integer type (Integer); MinCostFlow requires
// a signed type (Signed) because costs can be negative. MaxValue[F]() is the
// "infinite" sentinel. Totals are accumulated in F and overflow is the
// caller's responsibility. For unsigned F, backward-edge flow is stored
// modulo 2^k; Residual stays exact.
//
// # API
//
// Every solver embeds *Network[F] and is built the same way:
//
//	g := flow.NewDinic[int64](n, source, sink, flow.WithLogger(logger))
//	id := g.AddEdge(u, v, capacity)
//	total := g.MaxFlow()
//	f := g.Flow(id)
//
//	mc := flow.NewMinCostFlow[int64](n, source, sink)
//	mc.AddEdge(u, v, capacity, cost)
//	total, cost := mc.MaxFlow()          // or mc.MaxFlowLimit(k)
//
// A solve mutates flow in place and returns what it added, so calling it
// again on an unchanged network returns zero.
//
// # Errors
//
// Out-of-range node indices, a node count below one, and negative capacities
// are programmer errors: the call panics with an error wrapping
// ErrNodeOutOfRange, ErrNodeCount or ErrNegativeCapacity. Network.Validate
// returns errors wrapping ErrSkewSymmetry, ErrCapacityExceeded or
// ErrConservation.
//
// # Logging
//
// Solvers log through zerolog: one Debug event per blocking-flow phase or
// min-cost augmentation and Trace events per augmenting path. The default
// logger is zerolog.Nop().
//
// A network belongs to one solver call at a time; nothing here is safe for
// concurrent use.
package flow
