// Package flow implements maximum-flow algorithms on graphs represented by
// *core.Graph, together with the minimum cut read off the final residual graph.
//
// Two algorithms are offered:
//
//	Edmonds–Karp (default)
//	  breadth-first search for shortest (fewest-edge) augmenting paths
//	  time O(V · E²), memory O(V + E)
//
//	Dinic
//	  level graph from one BFS per phase, then blocking flow by DFS
//	  time O(V² · E), O(E · √V) on unit-capacity networks, memory O(V + E)
//
// Both walk the residual graph with package bfs.
//
// # Capacities
//
// Capacities are the int64 Edge.Weight values of a directed, weighted
// graph (core.NewNetwork). Parallel edges are aggregated, self-loops are
// ignored, zero capacities carry no flow and negative ones are rejected.
// There is no floating-point infinity: an unbounded edge is an edge whose
// capacity exceeds the sum of every finite capacity in the graph.
//
// # API
//
//	func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error)
//	func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error)
//	func (a Algorithm) MaxFlow(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error)
//
// Result exposes Value, the Residual graph (positive residual edges only)
// and InSourceSide/SourceSide: the vertices reachable from the source over
// strictly positive residual capacity, i.e. the source side of the
// canonical minimum cut.
//
// # Errors
//
//	ErrInvalidNetwork - umbrella matched by all of the following:
//	ErrGraphNil       - nil graph.
//	ErrSourceIsSink   - source == sink.
//	ErrSourceNotFound - the source vertex is missing.
//	ErrSinkNotFound   - the sink vertex is missing.
//	EdgeError         - a negative capacity was encountered.
//	context.Canceled / context.DeadlineExceeded - opts.Ctx is done.
package flow
