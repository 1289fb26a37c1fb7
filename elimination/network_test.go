package elimination_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/flow"
)

func TestBuildNetwork_Layout(t *testing.T) {
	d := load(t, "teams4.txt")

	net, err := elimination.BuildNetwork(d, 1) // Philadelphia
	require.NoError(t, err)

	require.Equal(t, 1, net.Candidate)
	require.Equal(t, []string{"team:0", "", "team:2", "team:3"}, net.TeamVertices)
	require.Equal(t, int64(7), net.TotalOtherRemaining)
	// finite capacities: games 6+1+0, sink 0+5+6
	require.Equal(t, int64(19), net.Unbounded)

	g := net.Graph
	require.Equal(t, 8, g.VertexCount())
	require.Equal(t, 12, g.EdgeCount())
	require.True(t, g.HasVertex(elimination.GameVertex(2, 3)), "zero-game pairs still get a vertex")
	require.False(t, g.HasVertex(elimination.TeamVertex(1)))

	for _, c := range []struct {
		from, to string
		want     int64
	}{
		{elimination.SourceID, "game:0-2", 6},
		{elimination.SourceID, "game:0-3", 1},
		{elimination.SourceID, "game:2-3", 0},
		{"game:0-2", "team:0", 19},
		{"game:0-2", "team:2", 19},
		{"team:0", elimination.SinkID, 0},
		{"team:2", elimination.SinkID, 5},
		{"team:3", elimination.SinkID, 6},
	} {
		w, err := g.EdgeWeight(c.from, c.to)
		require.NoError(t, err)
		require.Equal(t, c.want, w, "%s→%s", c.from, c.to)
	}

	i, ok := net.TeamIndex("team:3")
	require.True(t, ok)
	require.Equal(t, 3, i)
	_, ok = net.TeamIndex("game:0-2")
	require.False(t, ok)
}

func TestBuildNetwork_UnknownIndex(t *testing.T) {
	d := load(t, "teams4.txt")
	_, err := elimination.BuildNetwork(d, 4)
	require.ErrorIs(t, err, division.ErrUnknownTeam)
}

func TestBuildNetwork_SingleTeam(t *testing.T) {
	d := load(t, "teams1.txt")
	net, err := elimination.BuildNetwork(d, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), net.TotalOtherRemaining)
	require.Equal(t, 2, net.Graph.VertexCount())

	res, err := flow.EdmondsKarp(net.Graph, net.Source, net.Sink, flow.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Value)
}

// TestBuildNetwork_FlowNeverExceedsGames checks Value <= TotalOtherRemaining
// for every candidate of the sample divisions.
func TestBuildNetwork_FlowNeverExceedsGames(t *testing.T) {
	for _, file := range []string{"teams4.txt", "teams5.txt"} {
		d := load(t, file)
		for i := 0; i < d.TeamCount(); i++ {
			net, err := elimination.BuildNetwork(d, i)
			require.NoError(t, err)
			res, err := flow.EdmondsKarp(net.Graph, net.Source, net.Sink, flow.DefaultOptions())
			require.NoError(t, err)
			require.LessOrEqual(t, res.Value, net.TotalOtherRemaining, "%s team %d", file, i)
		}
	}
}
