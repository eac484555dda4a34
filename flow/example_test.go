package flow_test

import (
	"fmt"

	"github.com/katalvlaran/lvflow/flow"
)

////////////////////////////////////////////////////////////////////////////////
// Dinic Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleDinic shows Dinic on the unit diamond.
// Graph:
//
//	0→1(1)→3
//	0→2(1)→3
//	1→2(1)
//
// Expected flow: 2, with node 3 unreachable afterwards.
func ExampleDinic() {
	g := flow.NewDinic[int](4, 0, 3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(1, 3, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(1, 2, 1)

	fmt.Println(g.MaxFlow())
	fmt.Println(g.D(3))
	// Output:
	// 2
	// -1
}

// ExampleDinic_MinCut reads the source side of a minimum cut and the
// saturated arcs crossing it.
func ExampleDinic_MinCut() {
	g := flow.NewDinic[int](3, 0, 2)
	g.AddEdge(0, 1, 2)
	narrow := g.AddEdge(1, 2, 1)

	fmt.Println(g.MaxFlow())
	fmt.Println(g.MinCut())
	fmt.Println(g.CutEdges(), narrow)
	// Output:
	// 1
	// [true true false]
	// [2] 2
}

////////////////////////////////////////////////////////////////////////////////
// Scaling Dinic Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleScalingDinic handles 64-bit unsigned capacities.
func ExampleScalingDinic() {
	g := flow.NewScalingDinic[uint64](4, 0, 3)
	g.AddEdge(0, 1, 1_000_000_000_000_000)
	g.AddEdge(0, 2, 1_000_000_000_000_000)
	g.AddEdge(1, 3, 1_000_000_000_000_000)
	g.AddEdge(2, 3, 1_000_000_000_000_000)
	g.AddEdge(1, 2, 1_000_000_000_000_000)

	fmt.Println(g.MaxFlow())
	// Output:
	// 2000000000000000
}

////////////////////////////////////////////////////////////////////////////////
// Min-Cost Flow Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleMinCostFlow routes three units where both routes cost 1 per unit.
func ExampleMinCostFlow() {
	g := flow.NewMinCostFlow[int](3, 0, 2)
	g.AddEdge(0, 1, 1, 1)
	g.AddEdge(1, 2, 1, 0)
	g.AddEdge(0, 2, 2, 1)

	f, c := g.MaxFlow()
	fmt.Println(f, c)
	// Output:
	// 3 3
}

// ExampleMinCostFlow_MaxFlowLimit caps the flow; the cheapest unit goes first.
func ExampleMinCostFlow_MaxFlowLimit() {
	g := flow.NewMinCostFlow[int](3, 0, 2)
	g.AddEdge(0, 2, 5, 10)
	g.AddEdge(0, 1, 1, 1)
	g.AddEdge(1, 2, 1, 1)

	f, c := g.MaxFlowLimit(2)
	fmt.Println(f, c)
	// Output:
	// 2 12
}

////////////////////////////////////////////////////////////////////////////////
// Edmonds–Karp Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleEdmondsKarp shows the BFS-path solver on two parallel routes.
// Graph:
//
//	0→1(3)→3(2)
//	0→2(2)→3(3)
//
// Expected flow: 2 + 2 = 4.
func ExampleEdmondsKarp() {
	g := flow.NewEdmondsKarp[int](4, 0, 3)
	g.AddEdge(0, 1, 3)
	g.AddEdge(1, 3, 2)
	g.AddEdge(0, 2, 2)
	g.AddEdge(2, 3, 3)

	fmt.Println(g.MaxFlow())
	fmt.Println(g.Stats().Augmentations)
	// Output:
	// 4
	// 2
}
