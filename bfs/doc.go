// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult with Order, Depth and Parent, plus PathTo and Reached helpers.
//   - OnVisit hook (may abort with an error), neighbor filtering, MaxDepth,
//     and early termination once a target vertex is discovered (WithStopAt).
//
// Why
//
//	The flow package is built on this traversal: Edmonds–Karp finds each
//	shortest augmenting path with WithFilterNeighbor + WithStopAt over the
//	residual capacities, Dinic layers its level graph from Depth, and the
//	source side of the minimum cut is exactly the set of vertices Reached
//	by a final filtered traversal.
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues neighbors in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "source",
//	    bfs.WithFilterNeighbor(func(u, v string) bool { return residual[u][v] > 0 }),
//	    bfs.WithStopAt("sink"),
//	)
//	path, err := res.PathTo("sink")
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit, context errors.
package bfs
