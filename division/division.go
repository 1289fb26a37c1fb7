package division

import (
	"fmt"
)

// Division is an immutable, validated set of teams.
type Division struct {
	teams []Team
	index map[string]int
}

// New validates teams and returns the Division they form.
//
// Checks, all reported as ErrMalformedInput:
//   - at least one team; names non-empty and unique;
//   - wins, losses, remaining and every Against count non-negative;
//   - len(Against) equals the team count and Against[i][i] == 0;
//   - Against[i][j] == Against[j][i];
//   - sum(Against[i]) <= Remaining[i] (== under WithStrictSchedule).
//
// The input slice is copied; later changes to it do not affect the Division.
func New(teams []Team, opts ...Option) (*Division, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := len(teams)
	if n == 0 {
		return nil, fmt.Errorf("%w: no teams", ErrMalformedInput)
	}

	d := &Division{
		teams: make([]Team, n),
		index: make(map[string]int, n),
	}
	for i, t := range teams {
		if t.Name == "" {
			return nil, fmt.Errorf("%w: team %d has an empty name", ErrMalformedInput, i)
		}
		if _, dup := d.index[t.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate team %q", ErrMalformedInput, t.Name)
		}
		if t.Wins < 0 || t.Losses < 0 || t.Remaining < 0 {
			return nil, fmt.Errorf("%w: team %q has negative standings", ErrMalformedInput, t.Name)
		}
		if len(t.Against) != n {
			return nil, fmt.Errorf("%w: team %q has %d schedule entries, want %d",
				ErrMalformedInput, t.Name, len(t.Against), n)
		}
		d.index[t.Name] = i
		d.teams[i] = t.clone()
	}

	for i, t := range d.teams {
		sum := 0
		for j, g := range t.Against {
			if g < 0 {
				return nil, fmt.Errorf("%w: negative games between %q and %q",
					ErrMalformedInput, t.Name, d.teams[j].Name)
			}
			if i == j && g != 0 {
				return nil, fmt.Errorf("%w: team %q has %d games against itself",
					ErrMalformedInput, t.Name, g)
			}
			if other := d.teams[j].Against[i]; other != g {
				return nil, fmt.Errorf("%w: asymmetric schedule between %q (%d) and %q (%d)",
					ErrMalformedInput, t.Name, g, d.teams[j].Name, other)
			}
			sum += g
		}
		switch {
		case sum > t.Remaining:
			return nil, fmt.Errorf("%w: team %q has %d scheduled games but only %d remaining",
				ErrMalformedInput, t.Name, sum, t.Remaining)
		case o.strictSchedule && sum != t.Remaining:
			return nil, fmt.Errorf("%w: team %q has %d scheduled games, want %d",
				ErrMalformedInput, t.Name, sum, t.Remaining)
		}
	}

	return d, nil
}

// TeamCount returns the number of teams.
func (d *Division) TeamCount() int {
	return len(d.teams)
}

// Names returns team names in index order.
func (d *Division) Names() []string {
	out := make([]string, len(d.teams))
	for i, t := range d.teams {
		out[i] = t.Name
	}

	return out
}

// Teams returns a copy of every team in index order.
func (d *Division) Teams() []Team {
	out := make([]Team, len(d.teams))
	for i, t := range d.teams {
		out[i] = t.clone()
	}

	return out
}

// IndexOf returns the index of the named team.
func (d *Division) IndexOf(name string) (int, error) {
	i, ok := d.index[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownTeam, name)
	}

	return i, nil
}

// Team returns a copy of the team at index i.
func (d *Division) Team(i int) (Team, error) {
	if err := d.check(i); err != nil {
		return Team{}, err
	}

	return d.teams[i].clone(), nil
}

// Name returns the name of the team at index i.
func (d *Division) Name(i int) (string, error) {
	if err := d.check(i); err != nil {
		return "", err
	}

	return d.teams[i].Name, nil
}

// Wins returns the wins of the team at index i.
func (d *Division) Wins(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, err
	}

	return d.teams[i].Wins, nil
}

// Losses returns the losses of the team at index i.
func (d *Division) Losses(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, err
	}

	return d.teams[i].Losses, nil
}

// Remaining returns the games left for the team at index i.
func (d *Division) Remaining(i int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, err
	}

	return d.teams[i].Remaining, nil
}

// Against returns the games left between teams i and j.
func (d *Division) Against(i, j int) (int, error) {
	if err := d.check(i); err != nil {
		return 0, err
	}
	if err := d.check(j); err != nil {
		return 0, err
	}

	return d.teams[i].Against[j], nil
}

func (d *Division) check(i int) error {
	if i < 0 || i >= len(d.teams) {
		return fmt.Errorf("%w: index %d", ErrUnknownTeam, i)
	}

	return nil
}
