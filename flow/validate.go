package flow

import "fmt"

// Validate checks the flow invariants of the network and returns the first
// violation found, or nil.
//
// Checks, in order:
//  1. Skew symmetry: Flow(e) + Flow(e^1) == 0 for every pair (modular for unsigned F).
//  2. Capacity: 0 <= Flow(e) <= Capacity(e) for every forward edge.
//  3. Conservation: the flows listed in Adjacent(v) sum to zero for every v
//     other than source and sink. Backward edges carry the negated inflow, so
//     the sum is outflow minus inflow.
//
// Complexity: O(V + E).
func (g *Network[F]) Validate() error {
	var zero F
	for e := 0; e < len(g.to); e += 2 {
		if g.flow[e]+g.flow[e^1] != zero {
			return EdgeError{Edge: e, From: g.From(e), To: g.to[e], Err: ErrSkewSymmetry}
		}
		if g.flow[e] < zero || g.flow[e] > g.cap[e] {
			return EdgeError{Edge: e, From: g.From(e), To: g.to[e], Err: ErrCapacityExceeded}
		}
	}

	for v := 0; v < g.n; v++ {
		if v == g.source || v == g.sink {
			continue
		}
		var net F
		for _, e := range g.adj[v] {
			net += g.flow[e]
		}
		if net != zero {
			return fmt.Errorf("%w: node %d has net outflow %v", ErrConservation, v, net)
		}
	}

	return nil
}

// OutFlow returns the net flow leaving u: the sum of Flow over Adjacent(u).
// After a max-flow solve OutFlow(Source()) equals the returned value.
func (g *Network[F]) OutFlow(u int) F {
	g.mustNode("node", u)
	var total F
	for _, e := range g.adj[u] {
		total += g.flow[e]
	}

	return total
}
