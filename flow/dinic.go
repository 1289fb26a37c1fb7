package flow

import (
	"context"
	"math"

	"github.com/katalvlaran/pennant/bfs"
	"github.com/katalvlaran/pennant/core"
)

// Dinic computes the maximum flow from source to sink in g using
// Dinic's algorithm (level graph + blocking flows).
//
// It returns the same Result and errors as EdmondsKarp; the two agree on
// Value and, because the residual-reachable set is identical for every
// maximum flow, on the source side of the minimum cut as well.
//
// Steps:
//  1. Validate input and build the residual capacity map.
//  2. Repeat until the sink is unreachable:
//     a. BFS over positive residual edges; Depth is the level of each vertex.
//     b. Keep edges u→v with level[v] == level[u]+1 as the level graph.
//     c. Push blocking flow with DFS using per-vertex iterators; stop early
//     every opts.LevelRebuildInterval pushes when it is > 0.
//  3. Derive the minimum cut and residual graph.
//
// Complexity:
//
//	Time:   O(V² · E) in general, O(E · √V) on unit-capacity networks.
//	Memory: O(V + E).
func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error) {
	opts.normalize()
	if err := validate(g, source, sink); err != nil {
		return nil, err
	}
	r, err := newResidual(g)
	if err != nil {
		return nil, err
	}

	var maxFlow int64
	augmentCount := 0
	for {
		if err = opts.Ctx.Err(); err != nil {
			return nil, err
		}
		levels, err := bfs.BFS(r.topo, source,
			bfs.WithContext(opts.Ctx),
			bfs.WithFilterNeighbor(r.spare),
		)
		if err != nil {
			return nil, err
		}
		if !levels.Reached(sink) {
			break
		}

		next, err := r.levelGraph(levels)
		if err != nil {
			return nil, err
		}

		iter := make(map[string]int, len(next))
		for {
			if err = opts.Ctx.Err(); err != nil {
				return nil, err
			}
			pushed := r.blockingPush(opts.Ctx, next, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			opts.Logger.Debug("augmenting path",
				"algorithm", AlgorithmDinic.String(),
				"flow", pushed,
				"total", maxFlow,
			)
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return r.result(opts.Ctx, source, maxFlow)
}

// levelGraph keeps, for each reached vertex u, the neighbors v one level
// deeper that still have residual capacity u→v.
func (r *residual) levelGraph(levels *bfs.BFSResult) (map[string][]string, error) {
	next := make(map[string][]string, len(levels.Order))
	for _, u := range levels.Order {
		targets, err := r.topo.NeighborIDs(u)
		if err != nil {
			return nil, err
		}
		for _, v := range targets {
			dv, ok := levels.Depth[v]
			if ok && dv == levels.Depth[u]+1 && r.spare(u, v) {
				next[u] = append(next[u], v)
			}
		}
	}

	return next, nil
}

// blockingPush pushes flow along one level-graph path starting at u,
// updating capacities in place, and returns the amount sent (0 if none).
func (r *residual) blockingPush(
	ctx context.Context,
	next map[string][]string,
	iter map[string]int,
	u, sink string,
	available int64,
) int64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	for i := iter[u]; i < len(next[u]); i++ {
		v := next[u][i]
		send := available
		if c := r.capacity[u][v]; c < send {
			send = c
		}
		if send > 0 {
			if pushed := r.blockingPush(ctx, next, iter, v, sink, send); pushed > 0 {
				r.capacity[u][v] -= pushed
				r.capacity[v][u] += pushed
				return pushed
			}
		}
		iter[u] = i + 1
	}

	return 0
}
