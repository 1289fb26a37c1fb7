// Package store persists divisions in PostgreSQL.
//
// Two tables hold one or more seasons side by side:
//
//	teams    (season, id, name, wins, losses, remaining)
//	schedule (season, team_a, team_b, games)   -- team_a < team_b
//
// Team ids are the division indices; each unordered pair of teams appears at
// most once in schedule and missing pairs have no games left.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/katalvlaran/pennant/division"
)

var (
	// ErrSeasonNotFound is returned when a season has no teams.
	ErrSeasonNotFound = errors.New("store: season not found")

	// ErrNotMigrated is returned when the tables do not exist yet.
	ErrNotMigrated = errors.New("store: schema missing, run migrations")
)

// undefinedTable is the PostgreSQL SQLSTATE for a missing relation.
const undefinedTable = "42P01"

// Store wraps a Postgres connection.
type Store struct {
	DB *sql.DB
}

// Open connects to dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: pinging database: %w", err)
	}

	return &Store{DB: db}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Migrate creates the tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS teams (
			season    TEXT NOT NULL,
			id        INT  NOT NULL CHECK (id >= 0),
			name      TEXT NOT NULL,
			wins      INT  NOT NULL DEFAULT 0,
			losses    INT  NOT NULL DEFAULT 0,
			remaining INT  NOT NULL DEFAULT 0,
			PRIMARY KEY (season, id),
			UNIQUE (season, name)
		)`,
		`CREATE TABLE IF NOT EXISTS schedule (
			season TEXT NOT NULL,
			team_a INT  NOT NULL,
			team_b INT  NOT NULL,
			games  INT  NOT NULL DEFAULT 0,
			PRIMARY KEY (season, team_a, team_b),
			CHECK (team_a < team_b),
			FOREIGN KEY (season, team_a) REFERENCES teams (season, id) ON DELETE CASCADE,
			FOREIGN KEY (season, team_b) REFERENCES teams (season, id) ON DELETE CASCADE
		)`,
	}
	for _, q := range queries {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("store: migrating: %w", err)
		}
	}

	return nil
}

// LoadDivision reads one season and validates it with division.New.
func (s *Store) LoadDivision(ctx context.Context, season string, opts ...division.Option) (*division.Division, error) {
	teams, err := s.loadTeams(ctx, season)
	if err != nil {
		return nil, err
	}
	games, err := s.loadSchedule(ctx, season)
	if err != nil {
		return nil, err
	}
	built, err := assemble(season, teams, games)
	if err != nil {
		return nil, err
	}

	return division.New(built, opts...)
}

// SaveDivision replaces season with the contents of d in one transaction.
func (s *Store) SaveDivision(ctx context.Context, season string, d *division.Division) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin SaveDivision tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE season = $1`, season); err != nil {
		return classify(fmt.Errorf("store: clearing season %q: %w", season, err))
	}

	teams := d.Teams()
	const insertTeam = `
		INSERT INTO teams (season, id, name, wins, losses, remaining)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i, t := range teams {
		if _, err := tx.ExecContext(ctx, insertTeam, season, i, t.Name, t.Wins, t.Losses, t.Remaining); err != nil {
			return fmt.Errorf("store: inserting team %d (%s): %w", i, t.Name, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("schedule", "season", "team_a", "team_b", "games"))
	if err != nil {
		return fmt.Errorf("store: preparing schedule copy: %w", err)
	}
	for i := range teams {
		for j := i + 1; j < len(teams); j++ {
			if g := teams[i].Against[j]; g > 0 {
				if _, err := stmt.ExecContext(ctx, season, i, j, g); err != nil {
					_ = stmt.Close()
					return fmt.Errorf("store: copying schedule %d-%d: %w", i, j, err)
				}
			}
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return fmt.Errorf("store: flushing schedule copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("store: closing schedule copy: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit SaveDivision tx: %w", err)
	}

	return nil
}

// Seasons lists the stored seasons, sorted.
func (s *Store) Seasons(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT DISTINCT season FROM teams ORDER BY season`)
	if err != nil {
		return nil, classify(fmt.Errorf("store: querying seasons: %w", err))
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var season string
		if err := rows.Scan(&season); err != nil {
			return nil, fmt.Errorf("store: scanning season: %w", err)
		}
		out = append(out, season)
	}

	return out, rows.Err()
}

func (s *Store) loadTeams(ctx context.Context, season string) ([]teamRow, error) {
	const q = `
		SELECT id, name, wins, losses, remaining
		FROM teams
		WHERE season = $1
		ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, q, season)
	if err != nil {
		return nil, classify(fmt.Errorf("store: querying teams: %w", err))
	}
	defer rows.Close()

	var out []teamRow
	for rows.Next() {
		var r teamRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Wins, &r.Losses, &r.Remaining); err != nil {
			return nil, fmt.Errorf("store: scanning team row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterating team rows: %w", err)
	}

	return out, nil
}

func (s *Store) loadSchedule(ctx context.Context, season string) ([]gameRow, error) {
	const q = `
		SELECT team_a, team_b, games
		FROM schedule
		WHERE season = $1
		ORDER BY team_a, team_b`
	rows, err := s.DB.QueryContext(ctx, q, season)
	if err != nil {
		return nil, classify(fmt.Errorf("store: querying schedule: %w", err))
	}
	defer rows.Close()

	var out []gameRow
	for rows.Next() {
		var r gameRow
		if err := rows.Scan(&r.A, &r.B, &r.Games); err != nil {
			return nil, fmt.Errorf("store: scanning schedule row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterating schedule rows: %w", err)
	}

	return out, nil
}

// classify tags missing-table failures with ErrNotMigrated.
func classify(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
		return fmt.Errorf("%w: %w", ErrNotMigrated, err)
	}

	return err
}
