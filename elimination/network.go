package elimination

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/pennant/core"
	"github.com/katalvlaran/pennant/division"
)

// Fixed vertex IDs of every elimination network.
const (
	SourceID = "source"
	SinkID   = "sink"
)

// TeamVertex is the vertex ID of team i.
func TeamVertex(i int) string {
	return "team:" + strconv.Itoa(i)
}

// GameVertex is the vertex ID of the games left between teams i and j, i < j.
func GameVertex(i, j int) string {
	return "game:" + strconv.Itoa(i) + "-" + strconv.Itoa(j)
}

// Network is the flow network built to test one candidate team.
type Network struct {
	Graph  *core.Graph
	Source string
	Sink   string

	// Candidate is the index of the team under test.
	Candidate int

	// TotalOtherRemaining is the number of games left among the other teams;
	// the candidate is alive only if a flow of this size exists.
	TotalOtherRemaining int64

	// Unbounded is the capacity of game→team edges: one more than the sum
	// of all finite capacities, so it can never limit the flow.
	Unbounded int64

	// TeamVertices[i] is the vertex of team i, or "" for the candidate.
	TeamVertices []string
}

// BuildNetwork constructs the elimination network for team t of d.
//
// Layout:
//   - source → game(i,j) with capacity against(i,j), for every pair i<j of
//     teams other than t (zero-capacity pairs included);
//   - game(i,j) → team(i) and game(i,j) → team(j) with capacity Unbounded;
//   - team(i) → sink with capacity max(0, wins(t)+remaining(t)-wins(i)).
//
// Returns division.ErrUnknownTeam if t is out of range.
func BuildNetwork(d *division.Division, t int) (*Network, error) {
	cand, err := d.Team(t)
	if err != nil {
		return nil, err
	}
	teams := d.Teams()
	maxWins := int64(cand.MaxWins())

	net := &Network{
		Graph:        core.NewNetwork(),
		Source:       SourceID,
		Sink:         SinkID,
		Candidate:    t,
		TeamVertices: make([]string, len(teams)),
	}
	g := net.Graph
	_ = g.AddVertex(SourceID)
	_ = g.AddVertex(SinkID)

	var finite int64
	sinkCap := make([]int64, len(teams))
	for i, team := range teams {
		if i == t {
			continue
		}
		net.TeamVertices[i] = TeamVertex(i)
		_ = g.AddVertex(net.TeamVertices[i])
		sinkCap[i] = max(0, maxWins-int64(team.Wins))
		finite += sinkCap[i]
	}

	type game struct {
		i, j  int
		count int64
	}
	var games []game
	for i := range teams {
		if i == t {
			continue
		}
		for j := i + 1; j < len(teams); j++ {
			if j == t {
				continue
			}
			gm := game{i: i, j: j, count: int64(teams[i].Against[j])}
			games = append(games, gm)
			net.TotalOtherRemaining += gm.count
			finite += gm.count
		}
	}
	net.Unbounded = finite + 1

	for _, gm := range games {
		v := GameVertex(gm.i, gm.j)
		if err = link(g, SourceID, v, gm.count); err != nil {
			return nil, err
		}
		if err = link(g, v, net.TeamVertices[gm.i], net.Unbounded); err != nil {
			return nil, err
		}
		if err = link(g, v, net.TeamVertices[gm.j], net.Unbounded); err != nil {
			return nil, err
		}
	}
	for i, v := range net.TeamVertices {
		if v == "" {
			continue
		}
		if err = link(g, v, SinkID, sinkCap[i]); err != nil {
			return nil, err
		}
	}

	return net, nil
}

// TeamIndex maps a team vertex back to its team index.
func (n *Network) TeamIndex(vertex string) (int, bool) {
	for i, v := range n.TeamVertices {
		if v != "" && v == vertex {
			return i, true
		}
	}

	return -1, false
}

func link(g *core.Graph, from, to string, capacity int64) error {
	if _, err := g.AddEdge(from, to, capacity); err != nil {
		return fmt.Errorf("elimination: edge %s→%s: %w", from, to, err)
	}

	return nil
}
