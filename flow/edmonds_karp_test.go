package flow_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pennant/core"
	"github.com/katalvlaran/pennant/flow"
)

// EdmondsKarpSuite groups tests for Edmonds–Karp.
type EdmondsKarpSuite struct {
	suite.Suite
	opts flow.FlowOptions
}

func (s *EdmondsKarpSuite) SetupTest() {
	s.opts = flow.DefaultOptions()
}

// TestSimplePath: A→B (cap=5) => maxFlow = 5.
func (s *EdmondsKarpSuite) TestSimplePath() {
	g := core.NewNetwork()
	_, _ = g.AddEdge("A", "B", 5)

	res, err := flow.EdmondsKarp(g, "A", "B", s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.Value, "max flow should match single-edge capacity")
	require.False(s.T(), res.Residual.HasEdge("A", "B"), "forward exhausted")
	require.True(s.T(), res.Residual.HasEdge("B", "A"), "reverse edge carries flow")
	require.True(s.T(), res.InSourceSide("A"))
	require.False(s.T(), res.InSourceSide("B"))
}

// TestMultiPath: two routes => flow sums them.
func (s *EdmondsKarpSuite) TestMultiPath() {
	g := core.NewNetwork()
	_, _ = g.AddEdge("A", "B", 3)
	_, _ = g.AddEdge("A", "C", 4)
	_, _ = g.AddEdge("C", "B", 2)

	res, err := flow.EdmondsKarp(g, "A", "B", s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.Value, "flow should combine both paths (3 + 2)")
	require.Equal(s.T(), []string{"A", "C"}, res.SourceSide())
}

// TestClassicNetwork checks value and the canonical minimum cut.
func (s *EdmondsKarpSuite) TestClassicNetwork() {
	g := classicNetwork()

	res, err := flow.EdmondsKarp(g, "s", "t", s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(23), res.Value)
	require.Equal(s.T(), []string{"s", "v1", "v2", "v4"}, res.SourceSide())
	assertResidualIntegrity(s.T(), g, res.Residual)
}

// TestUnboundedEdgeNeverBottleneck mirrors the game→team edges of an elimination network.
func (s *EdmondsKarpSuite) TestUnboundedEdgeNeverBottleneck() {
	const unbounded = 3 + 1 + 1 + 1
	g := core.NewNetwork()
	_, _ = g.AddEdge("source", "game", 3)
	_, _ = g.AddEdge("game", "a", unbounded)
	_, _ = g.AddEdge("game", "b", unbounded)
	_, _ = g.AddEdge("a", "sink", 1)
	_, _ = g.AddEdge("b", "sink", 1)

	res, err := flow.EdmondsKarp(g, "source", "sink", s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Value)
	require.Equal(s.T(), []string{"a", "b", "game", "source"}, res.SourceSide())
	require.LessOrEqual(s.T(), res.Value, int64(3), "flow never exceeds source capacity")
}

// TestZeroCapacity ensures that zero-capacity edges yield zero flow.
func (s *EdmondsKarpSuite) TestZeroCapacity() {
	g := core.NewNetwork()
	_, _ = g.AddEdge("X", "Y", 0)

	res, err := flow.EdmondsKarp(g, "X", "Y", s.opts)
	require.NoError(s.T(), err)
	require.Zero(s.T(), res.Value)
	require.Zero(s.T(), res.Residual.EdgeCount())
}

// TestUndirectedGraph treats each undirected edge as capacity in both directions.
func (s *EdmondsKarpSuite) TestUndirectedGraph() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 4)
	_, _ = g.AddEdge("C", "B", 3)

	res, err := flow.EdmondsKarp(g, "A", "C", s.opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(3), res.Value)
}

// TestNegativeCapacity yields EdgeError.
func (s *EdmondsKarpSuite) TestNegativeCapacity() {
	g := core.NewNetwork()
	_, _ = g.AddEdge("X", "Y", -1)

	_, err := flow.EdmondsKarp(g, "X", "Y", s.opts)
	var ee flow.EdgeError
	require.Error(s.T(), err)
	require.True(s.T(), errors.As(err, &ee), "error must be EdgeError")
	require.Equal(s.T(), "X", ee.From)
	require.Equal(s.T(), "Y", ee.To)
	require.Equal(s.T(), int64(-1), ee.Cap)
	require.ErrorIs(s.T(), err, flow.ErrInvalidNetwork)
}

// TestInvalidEndpoints covers missing, nil and coincident endpoints.
func (s *EdmondsKarpSuite) TestInvalidEndpoints() {
	g := core.NewNetwork()
	_ = g.AddVertex("A")

	_, err := flow.EdmondsKarp(g, "X", "A", s.opts)
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)

	_, err = flow.EdmondsKarp(g, "A", "Z", s.opts)
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)

	_, err = flow.EdmondsKarp(g, "A", "A", s.opts)
	require.ErrorIs(s.T(), err, flow.ErrSourceIsSink)
	require.ErrorIs(s.T(), err, flow.ErrInvalidNetwork)

	_, err = flow.EdmondsKarp(nil, "A", "B", s.opts)
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)
}

// TestCancelledContext stops before the first augmentation.
func (s *EdmondsKarpSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.opts.Ctx = ctx

	_, err := flow.EdmondsKarp(classicNetwork(), "s", "t", s.opts)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestLogsAugmentations records one debug entry per augmenting path.
func (s *EdmondsKarpSuite) TestLogsAugmentations() {
	var buf bytes.Buffer
	s.opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := core.NewNetwork()
	_, _ = g.AddEdge("A", "B", 5)

	_, err := flow.EdmondsKarp(g, "A", "B", s.opts)
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), "augmenting path")
	require.Contains(s.T(), buf.String(), "algorithm=edmonds-karp")
}

func TestEdmondsKarpSuite(t *testing.T) {
	suite.Run(t, new(EdmondsKarpSuite))
}
