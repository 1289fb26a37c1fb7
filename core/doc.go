// Package core provides a thread-safe in-memory Graph used as the storage
// layer for flow networks.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted); weights are exact int64 values
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge membership via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Deterministic iteration: Vertices() and NeighborIDs() return sorted IDs,
// Edges() returns insertion order, Neighbors() sorts by target then insertion.
// Algorithms layered on top (bfs, flow) inherit this determinism.
//
// NewNetwork() returns the directed, weighted, multi-edge configuration that
// the flow package expects:
//
//	g := core.NewNetwork()
//	_, _ = g.AddEdge("source", "a", 3)
//	_, _ = g.AddEdge("a", "sink", 2)
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
