package store

import (
	"fmt"

	"github.com/katalvlaran/pennant/division"
)

type teamRow struct {
	ID        int
	Name      string
	Wins      int
	Losses    int
	Remaining int
}

type gameRow struct {
	A, B  int
	Games int
}

// assemble turns table rows into division teams. Team rows must be sorted by
// id and ids must run 0..n-1; schedule rows may come in any order.
func assemble(season string, teams []teamRow, games []gameRow) ([]division.Team, error) {
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrSeasonNotFound, season)
	}

	n := len(teams)
	out := make([]division.Team, n)
	for i, r := range teams {
		if r.ID != i {
			return nil, fmt.Errorf("%w: season %q: team ids not contiguous at %d (got %d)",
				division.ErrMalformedInput, season, i, r.ID)
		}
		out[i] = division.Team{
			Name:      r.Name,
			Wins:      r.Wins,
			Losses:    r.Losses,
			Remaining: r.Remaining,
			Against:   make([]int, n),
		}
	}

	for _, g := range games {
		a, b := g.A, g.B
		if a > b {
			a, b = b, a
		}
		if a == b || a < 0 || b >= n {
			return nil, fmt.Errorf("%w: season %q: bad schedule pair (%d, %d)",
				division.ErrMalformedInput, season, g.A, g.B)
		}
		if out[a].Against[b] != 0 {
			return nil, fmt.Errorf("%w: season %q: duplicate schedule pair (%d, %d)",
				division.ErrMalformedInput, season, a, b)
		}
		out[a].Against[b] = g.Games
		out[b].Against[a] = g.Games
	}

	return out, nil
}
