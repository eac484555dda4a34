// Package lvflow is an in-memory toolkit for network-flow problems on
// integer-capacity directed graphs: maximum flow, minimum cut and
// minimum-cost maximum flow.
//
// 🚀 What is inside?
//
//	All solvers live in the flow subpackage and share one residual-graph
//	representation:
//		• Dinic: BFS level graph + blocking flow with current-arc cursors
//		• Capacity-scaled Dinic: Dinic gated by a halving residual threshold
//		• Min-cost flow: successive shortest paths, negative costs allowed
//		• Edmonds–Karp: shortest augmenting paths, handy as a cross-check
//		• Min cut: source side and saturated crossing arcs after a solve
//
// ✨ Why choose lvflow?
//
//   - Generic capacities – any Go integer type, signed or unsigned, 8 to 64 bits
//   - Dense storage – edges live in flat slices, edge e and e^1 are partners
//   - No recursion – 10⁵-node chains are fine
//   - Observable – plug a zerolog.Logger in to see every phase
//
// Layout:
//
//	flow/     — Network, Dinic, ScalingDinic, MinCostFlow, EdmondsKarp
//	examples/ — CDN throughput and latency model solved by every solver
//
// Quick ASCII example:
//
//	    0──→1
//	    │ ↙ │
//	    ↓   ↓
//	    2──→3
//
//	represents the unit diamond: max flow from 0 to 3 is 2.
//
//	go get github.com/katalvlaran/lvflow/flow
package lvflow
