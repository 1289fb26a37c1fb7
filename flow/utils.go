package flow

import (
	"context"

	"github.com/katalvlaran/pennant/bfs"
	"github.com/katalvlaran/pennant/core"
)

// residual holds the mutable state shared by all max-flow algorithms.
//
//   - capacity[u][v] is the remaining capacity of u→v after aggregating
//     parallel edges; reverse entries start at zero.
//   - topo is an unweighted directed graph with an edge in both directions
//     for every original pair, so bfs can walk forward and reverse residual
//     edges alike.
type residual struct {
	capacity map[string]map[string]int64
	topo     *core.Graph
}

// validate checks the structural preconditions shared by every algorithm.
func validate(g *core.Graph, source, sink string) error {
	if g == nil {
		return ErrGraphNil
	}
	if source == sink {
		return ErrSourceIsSink
	}
	if !g.HasVertex(source) {
		return ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return ErrSinkNotFound
	}

	return nil
}

// newResidual constructs the capacity map and residual topology of g.
//
// Steps:
//  1. One capacity bucket and one topo vertex per vertex of g (O(V)).
//  2. For each outgoing edge u→v: skip self-loops, reject negative
//     capacities with EdgeError, sum parallel edges into capacity[u][v].
//     Undirected edges contribute capacity in both directions.
//  3. Link u↔v in topo for every pair with positive capacity.
//
// Complexity: O(V + E log d_max).
func newResidual(g *core.Graph) (*residual, error) {
	vertices := g.Vertices()
	r := &residual{
		capacity: make(map[string]map[string]int64, len(vertices)),
		topo:     core.NewGraph(core.WithDirected(true)),
	}
	for _, u := range vertices {
		r.capacity[u] = make(map[string]int64)
		_ = r.topo.AddVertex(u)
	}

	for _, u := range vertices {
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			v := e.To
			if v == u {
				v = e.From
			}
			if v == u {
				continue
			}
			if e.Weight < 0 {
				return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
			}
			r.capacity[u][v] += e.Weight
		}
	}

	for _, u := range vertices {
		for v, c := range r.capacity[u] {
			if c <= 0 {
				continue
			}
			if !r.topo.HasEdge(u, v) {
				_, _ = r.topo.AddEdge(u, v, 0)
			}
			if !r.topo.HasEdge(v, u) {
				_, _ = r.topo.AddEdge(v, u, 0)
			}
		}
	}

	return r, nil
}

// spare is the bfs neighbor filter selecting edges with remaining capacity.
func (r *residual) spare(u, v string) bool {
	return r.capacity[u][v] > 0
}

// augmentingPath finds a shortest (fewest-edges) source→sink path over
// edges with positive residual capacity and returns it with its bottleneck.
// A nil path means the sink is unreachable.
func (r *residual) augmentingPath(ctx context.Context, source, sink string) ([]string, int64, error) {
	res, err := bfs.BFS(r.topo, source,
		bfs.WithContext(ctx),
		bfs.WithFilterNeighbor(r.spare),
		bfs.WithStopAt(sink),
	)
	if err != nil {
		return nil, 0, err
	}
	if !res.Reached(sink) {
		return nil, 0, nil
	}
	path, err := res.PathTo(sink)
	if err != nil {
		return nil, 0, err
	}

	bottle := r.capacity[path[0]][path[1]]
	for i := 1; i < len(path)-1; i++ {
		if c := r.capacity[path[i]][path[i+1]]; c < bottle {
			bottle = c
		}
	}

	return path, bottle, nil
}

// push sends delta units along path: forward residual decreases, reverse increases.
func (r *residual) push(path []string, delta int64) {
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		r.capacity[u][v] -= delta
		r.capacity[v][u] += delta
	}
}

// result finalizes a run: the source side of the minimum cut is every
// vertex reachable from source over positive residual capacity, and the
// residual graph keeps exactly those positive edges.
func (r *residual) result(ctx context.Context, source string, value int64) (*Result, error) {
	reach, err := bfs.BFS(r.topo, source,
		bfs.WithContext(ctx),
		bfs.WithFilterNeighbor(r.spare),
	)
	if err != nil {
		return nil, err
	}
	side := make(map[string]bool, len(reach.Depth))
	for v := range reach.Depth {
		side[v] = true
	}

	graph := core.NewNetwork()
	vertices := r.topo.Vertices()
	for _, u := range vertices {
		_ = graph.AddVertex(u)
	}
	for _, u := range vertices {
		targets, err := r.topo.NeighborIDs(u)
		if err != nil {
			return nil, err
		}
		for _, v := range targets {
			if c := r.capacity[u][v]; c > 0 {
				if _, err := graph.AddEdge(u, v, c); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Result{Value: value, Residual: graph, sourceSide: side}, nil
}
