package flow_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/core"
)

// assertResidualIntegrity checks that for every pair (u,v) joined by an
// original edge, the capacity in both directions is conserved:
// cap(u,v)+cap(v,u) == res(u,v)+res(v,u).
func assertResidualIntegrity(t *testing.T, original, residual *core.Graph) {
	t.Helper()
	initial := make(map[[2]string]int64)
	for _, e := range original.Edges() {
		if e.From == e.To {
			continue
		}
		initial[[2]string{e.From, e.To}] += e.Weight
	}
	for uv := range initial {
		u, v := uv[0], uv[1]
		want := initial[[2]string{u, v}] + initial[[2]string{v, u}]

		fwd, err := residual.EdgeWeight(u, v)
		require.NoError(t, err)
		back, err := residual.EdgeWeight(v, u)
		require.NoError(t, err)
		require.Equal(t, want, fwd+back, "capacity not conserved on %s↔%s", u, v)
	}
}

// classicNetwork is the six-vertex textbook network with max flow 23 and
// minimum cut {s, v1, v2, v4} | {v3, t}.
func classicNetwork() *core.Graph {
	g := core.NewNetwork()
	_, _ = g.AddEdge("s", "v1", 16)
	_, _ = g.AddEdge("s", "v2", 13)
	_, _ = g.AddEdge("v1", "v3", 12)
	_, _ = g.AddEdge("v2", "v1", 4)
	_, _ = g.AddEdge("v2", "v4", 14)
	_, _ = g.AddEdge("v3", "v2", 9)
	_, _ = g.AddEdge("v3", "t", 20)
	_, _ = g.AddEdge("v4", "v3", 7)
	_, _ = g.AddEdge("v4", "t", 4)

	return g
}

// randomNetwork builds a directed network on n vertices "0".."n-1" where
// each ordered pair is linked with probability p and capacity in [1, maxCap].
func randomNetwork(n int, p float64, maxCap int64, seed int64) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewNetwork()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprint(i))
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && r.Float64() < p {
				_, _ = g.AddEdge(fmt.Sprint(u), fmt.Sprint(v), 1+r.Int63n(maxCap))
			}
		}
	}

	return g
}
