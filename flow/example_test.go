package flow_test

import (
	"fmt"

	"github.com/katalvlaran/pennant/core"
	"github.com/katalvlaran/pennant/flow"
)

// ExampleEdmondsKarp computes a max flow and reads the minimum cut.
// Graph:
//
//	s→a(3)→t(2)
//	s→b(2)→t(3)
func ExampleEdmondsKarp() {
	g := core.NewNetwork()
	_, _ = g.AddEdge("s", "a", 3)
	_, _ = g.AddEdge("a", "t", 2)
	_, _ = g.AddEdge("s", "b", 2)
	_, _ = g.AddEdge("b", "t", 3)

	res, _ := flow.EdmondsKarp(g, "s", "t", flow.DefaultOptions())
	fmt.Println(res.Value)
	fmt.Println(res.SourceSide())
	// Output:
	// 4
	// [a s]
}

// ExampleDinic demonstrates Dinic on a network with two augmenting paths.
// Graph:
//
//	s→a(5)→t(4)
//	s→b(3)→t(6)
func ExampleDinic() {
	g := core.NewNetwork()
	_, _ = g.AddEdge("s", "a", 5)
	_, _ = g.AddEdge("a", "t", 4)
	_, _ = g.AddEdge("s", "b", 3)
	_, _ = g.AddEdge("b", "t", 6)

	res, _ := flow.Dinic(g, "s", "t", flow.DefaultOptions())
	fmt.Println(res.Value)
	// Output:
	// 7
}
