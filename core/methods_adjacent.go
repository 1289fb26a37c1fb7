// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts by (To, edge sequence).
//   - NeighborIDs() returns unique IDs sorted ascending.
// Concurrency:
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// Neighbors returns the outgoing edges of id. For undirected graphs the
// mirrored edges are returned as stored, so e.From may equal the other endpoint.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	var out []*Edge
	for _, bucket := range g.adjacency[id] {
		for eid := range bucket {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := other(out[i], id), other(out[j], id)
		if ti != tj {
			return ti < tj
		}
		return edgeSeq(out[i].ID) < edgeSeq(out[j].ID)
	})

	return out, nil
}

// NeighborIDs returns the unique IDs reachable from id over one edge, sorted ascending.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound as for Neighbors.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for to, bucket := range g.adjacency[id] {
		if len(bucket) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)

	return out, nil
}

// other returns the endpoint of e opposite to id.
func other(e *Edge, id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// ensureVertexAdjacency bootstraps the outer adjacency bucket for id.
func ensureVertexAdjacency(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjacency bootstraps adjacency[from][to].
func ensureAdjacency(g *Graph, from, to string) {
	ensureVertexAdjacency(g, from)
	if _, ok := g.adjacency[from][to]; !ok {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}
