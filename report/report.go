// Package report formats elimination results for people: the classic
// one-line-per-team listing and a short statistical summary of the division.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/elimination"
)

// Line renders one result:
//
//	Philadelphia is eliminated by the subset R = { Atlanta New_York }
//	Atlanta is not eliminated
func Line(r elimination.Result) string {
	if !r.Eliminated {
		return r.Team + " is not eliminated"
	}

	return r.Team + " is eliminated by the subset R = { " + strings.Join(r.Certificate, " ") + " }"
}

// Render writes one Line per result, in the order given.
func Render(w io.Writer, results []elimination.Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, Line(r)); err != nil {
			return fmt.Errorf("report: write: %w", err)
		}
	}

	return nil
}

// Distribution describes one integer column of the standings.
type Distribution struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// Summary is a division-wide overview. StdDev is the population deviation.
type Summary struct {
	Teams      int          `json:"teams"`
	Eliminated int          `json:"eliminated"`
	Alive      []string     `json:"alive"`
	Leader     string       `json:"leader"`
	LeaderWins int          `json:"leader_wins"`
	Wins       Distribution `json:"wins"`
	MaxWins    Distribution `json:"max_wins"`
}

// Summarize aggregates the standings of d and the per-team results.
// The leader is the team with most wins; ties go to the lower index.
func Summarize(d *division.Division, results []elimination.Result) (Summary, error) {
	teams := d.Teams()
	s := Summary{Teams: len(teams), Alive: []string{}}

	wins := make(stats.Float64Data, 0, len(teams))
	maxWins := make(stats.Float64Data, 0, len(teams))
	for i, t := range teams {
		wins = append(wins, float64(t.Wins))
		maxWins = append(maxWins, float64(t.MaxWins()))
		if i == 0 || t.Wins > s.LeaderWins {
			s.Leader, s.LeaderWins = t.Name, t.Wins
		}
	}
	for _, r := range results {
		if r.Eliminated {
			s.Eliminated++
		} else {
			s.Alive = append(s.Alive, r.Team)
		}
	}

	var err error
	if s.Wins, err = describe(wins); err != nil {
		return Summary{}, err
	}
	if s.MaxWins, err = describe(maxWins); err != nil {
		return Summary{}, err
	}

	return s, nil
}

func describe(data stats.Float64Data) (Distribution, error) {
	var (
		d   Distribution
		err error
	)
	if d.Mean, err = data.Mean(); err != nil {
		return d, fmt.Errorf("report: mean: %w", err)
	}
	if d.Median, err = data.Median(); err != nil {
		return d, fmt.Errorf("report: median: %w", err)
	}
	if d.StdDev, err = data.StandardDeviation(); err != nil {
		return d, fmt.Errorf("report: stddev: %w", err)
	}

	return d, nil
}

// Write prints s as aligned text.
func (s Summary) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"teams:      %d\n"+
			"eliminated: %d\n"+
			"alive:      %s\n"+
			"leader:     %s (%d wins)\n"+
			"wins:       %s\n"+
			"max wins:   %s\n",
		s.Teams, s.Eliminated, strings.Join(s.Alive, " "),
		s.Leader, s.LeaderWins, s.Wins, s.MaxWins,
	)
	if err != nil {
		return fmt.Errorf("report: write: %w", err)
	}

	return nil
}

func (d Distribution) String() string {
	return fmt.Sprintf("mean %.2f  median %.2f  stddev %.2f", d.Mean, d.Median, d.StdDev)
}
