package division

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	// maxLineBytes bounds a single input line.
	maxLineBytes = 1 << 20
	// maxTeamPrealloc caps the capacity reserved from the header count.
	maxTeamPrealloc = 1024
)

// Parse reads a division in the standings text format described in the
// package documentation. Blank lines are ignored; anything after the n-th
// team line is an error. Format errors wrap ErrMalformedInput and name the
// offending line.
func Parse(r io.Reader, opts ...Option) (*Division, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	next := func() ([]string, bool) {
		for sc.Scan() {
			line++
			if fields := strings.Fields(sc.Text()); len(fields) > 0 {
				return fields, true
			}
		}

		return nil, false
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, scanError(err, line)
		}

		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}
	if len(header) != 1 {
		return nil, fmt.Errorf("%w: line %d: want team count, got %q", ErrMalformedInput, line, strings.Join(header, " "))
	}
	n, err := strconv.Atoi(header[0])
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: line %d: invalid team count %q", ErrMalformedInput, line, header[0])
	}

	teams := make([]Team, 0, min(n, maxTeamPrealloc))
	for len(teams) < n {
		fields, ok := next()
		if !ok {
			break
		}
		t, err := parseTeam(fields, n)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, line, err)
		}
		teams = append(teams, t)
	}
	if err := sc.Err(); err != nil {
		return nil, scanError(err, line)
	}
	if len(teams) < n {
		return nil, fmt.Errorf("%w: want %d teams, got %d", ErrMalformedInput, n, len(teams))
	}
	if extra, ok := next(); ok {
		return nil, fmt.Errorf("%w: line %d: unexpected trailing data %q", ErrMalformedInput, line, extra[0])
	}

	return New(teams, opts...)
}

// scanError wraps a scanner failure; an over-long line is a format error
// on the line after the last one read.
func scanError(err error, line int) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: line %d: longer than %d bytes", ErrMalformedInput, line+1, maxLineBytes)
	}

	return fmt.Errorf("division: read input: %w", err)
}

// Load opens path and parses it with Parse.
func Load(path string, opts ...Option) (*Division, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("division: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// parseTeam decodes "Name wins losses remaining g0 ... g(n-1)".
func parseTeam(fields []string, n int) (Team, error) {
	if want := 4 + n; len(fields) != want {
		return Team{}, fmt.Errorf("want %d fields, got %d", want, len(fields))
	}
	nums := make([]int, len(fields)-1)
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Team{}, fmt.Errorf("field %d of %s: %q is not an integer", i+2, fields[0], f)
		}
		nums[i] = v
	}

	return Team{
		Name:      fields[0],
		Wins:      nums[0],
		Losses:    nums[1],
		Remaining: nums[2],
		Against:   nums[3:],
	}, nil
}
