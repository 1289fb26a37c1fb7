package division

import (
	"errors"
)

// Sentinel errors for division construction and lookup.
var (
	// ErrUnknownTeam is returned when a name or index does not identify a team.
	ErrUnknownTeam = errors.New("division: unknown team")

	// ErrMalformedInput is returned when standings or schedule fail validation.
	ErrMalformedInput = errors.New("division: malformed input")
)

// Team is one row of the standings.
//
// Against[j] is the number of games left between this team and team j;
// its length equals the number of teams in the division and Against at the
// team's own index is zero.
type Team struct {
	Name      string
	Wins      int
	Losses    int
	Remaining int
	Against   []int
}

// MaxWins is the best final win total the team can still reach.
func (t Team) MaxWins() int {
	return t.Wins + t.Remaining
}

func (t Team) clone() Team {
	t.Against = append([]int(nil), t.Against...)

	return t
}

// Option configures validation performed by New.
type Option func(*options)

type options struct {
	strictSchedule bool
}

// WithStrictSchedule requires every team's Remaining to equal the sum of its
// Against row. By default Remaining may exceed it, which accounts for games
// left against opponents outside the division.
func WithStrictSchedule() Option {
	return func(o *options) { o.strictSchedule = true }
}
