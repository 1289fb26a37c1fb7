package elimination_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/division"
)

func load(t *testing.T, name string) *division.Division {
	t.Helper()
	d, err := division.Load("../testdata/" + name)
	require.NoError(t, err)

	return d
}

// randomDivision builds a valid division of 1..5 teams with small counts.
func randomDivision(r *rand.Rand) []division.Team {
	n := 1 + r.Intn(5)
	teams := make([]division.Team, n)
	for i := range teams {
		teams[i] = division.Team{
			Name:    "T" + strconv.Itoa(i),
			Wins:    r.Intn(16),
			Losses:  r.Intn(10),
			Against: make([]int, n),
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g := r.Intn(4)
			teams[i].Against[j], teams[j].Against[i] = g, g
		}
	}
	for i := range teams {
		sum := 0
		for _, g := range teams[i].Against {
			sum += g
		}
		teams[i].Remaining = sum + r.Intn(3)
	}

	return teams
}

// bruteForceEliminated enumerates every outcome of the games left among the
// teams other than t, with t winning all of its own, and reports whether no
// outcome leaves t tied for first or better.
func bruteForceEliminated(teams []division.Team, t int) bool {
	maxWins := teams[t].Wins + teams[t].Remaining
	wins := make([]int, len(teams))
	for i, team := range teams {
		wins[i] = team.Wins
	}
	var pairs [][3]int
	for i := range teams {
		for j := i + 1; j < len(teams); j++ {
			if i != t && j != t && teams[i].Against[j] > 0 {
				pairs = append(pairs, [3]int{i, j, teams[i].Against[j]})
			}
		}
	}

	var feasible func(k int) bool
	feasible = func(k int) bool {
		if k == len(pairs) {
			for i, w := range wins {
				if i != t && w > maxWins {
					return false
				}
			}
			return true
		}
		i, j, g := pairs[k][0], pairs[k][1], pairs[k][2]
		for a := 0; a <= g; a++ {
			wins[i] += a
			wins[j] += g - a
			ok := feasible(k + 1)
			wins[i] -= a
			wins[j] -= g - a
			if ok {
				return true
			}
		}
		return false
	}

	return !feasible(0)
}
