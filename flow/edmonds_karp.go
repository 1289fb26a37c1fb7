package flow

import (
	"github.com/katalvlaran/pennant/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns a Result carrying the flow value, the residual graph and the
// source side of the minimum cut, or an error:
//   - ErrGraphNil, ErrSourceIsSink, ErrSourceNotFound, ErrSinkNotFound, EdgeError
//     (all satisfy errors.Is(err, ErrInvalidNetwork));
//   - opts.Ctx errors on cancellation.
//
// All arithmetic is exact int64. An edge meant to be unbounded should carry
// a capacity larger than the sum of every finite capacity in g; such an edge
// can then never be the bottleneck of a path that also crosses a finite edge.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error) {
	opts.normalize()
	if err := validate(g, source, sink); err != nil {
		return nil, err
	}
	r, err := newResidual(g)
	if err != nil {
		return nil, err
	}

	var maxFlow int64
	for {
		if err = opts.Ctx.Err(); err != nil {
			return nil, err
		}
		path, bottle, err := r.augmentingPath(opts.Ctx, source, sink)
		if err != nil {
			return nil, err
		}
		if len(path) == 0 || bottle <= 0 {
			break
		}
		r.push(path, bottle)
		maxFlow += bottle
		opts.Logger.Debug("augmenting path",
			"algorithm", AlgorithmEdmondsKarp.String(),
			"path", path,
			"flow", bottle,
			"total", maxFlow,
		)
	}

	return r.result(opts.Ctx, source, maxFlow)
}
