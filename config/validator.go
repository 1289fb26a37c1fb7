package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pennant/flow"
	"github.com/katalvlaran/pennant/logging"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // e.g. "solver.algorithm"
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is every failure found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, err.Error())
	}

	return sb.String()
}

// Unwrap lets errors.Is(err, ErrInvalidConfig) match.
func (e ValidationErrors) Unwrap() error { return ErrInvalidConfig }

// Validate checks c and returns ValidationErrors, or nil.
// A text source with an empty path is allowed: the CLI then reads stdin.
func (c *Config) Validate() error {
	var errs ValidationErrors

	switch c.Input.Source {
	case SourceText:
	case SourcePostgres:
		if c.Input.DSN == "" {
			errs = append(errs, ValidationError{"input.dsn", c.Input.DSN, "required for the postgres source"})
		}
		if c.Input.Season == "" {
			errs = append(errs, ValidationError{"input.season", c.Input.Season, "required for the postgres source"})
		}
	default:
		errs = append(errs, ValidationError{"input.source", c.Input.Source, "must be text or postgres"})
	}
	if _, err := flow.ParseAlgorithm(c.Solver.Algorithm); err != nil {
		errs = append(errs, ValidationError{"solver.algorithm", c.Solver.Algorithm, "must be edmonds-karp or dinic"})
	}
	if !logging.ValidLevel(c.Logging.Level) {
		errs = append(errs, ValidationError{"logging.level", c.Logging.Level, "must be debug, info, warn or error"})
	}
	if !logging.ValidFormat(c.Logging.Format) {
		errs = append(errs, ValidationError{"logging.format", c.Logging.Format, "must be json or text"})
	}
	if c.Server.Addr == "" {
		errs = append(errs, ValidationError{"server.addr", c.Server.Addr, "must not be empty"})
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
