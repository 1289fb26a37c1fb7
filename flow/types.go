package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/katalvlaran/pennant/core"
)

// ErrInvalidNetwork is the umbrella for every malformed-input condition
// reported by the max-flow algorithms. It signals a caller bug, not a
// recoverable runtime state.
var ErrInvalidNetwork = errors.New("flow: invalid network")

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = fmt.Errorf("%w: graph is nil", ErrInvalidNetwork)

	// ErrSourceIsSink is returned when source and sink are the same vertex.
	ErrSourceIsSink = fmt.Errorf("%w: source equals sink", ErrInvalidNetwork)

	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = fmt.Errorf("%w: source vertex not found", ErrInvalidNetwork)

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = fmt.Errorf("%w: sink vertex not found", ErrInvalidNetwork)
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// Unwrap lets errors.Is(err, ErrInvalidNetwork) match capacity violations.
func (e EdgeError) Unwrap() error { return ErrInvalidNetwork }

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation for long runs (default context.Background()).
//   - Logger: receives one debug record per augmentation (default: discarded).
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations (0 = per phase).
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *slog.Logger
	LevelRebuildInterval int
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// DefaultOptions returns FlowOptions with a background context and a silent logger.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background(), Logger: discardLogger}
}

func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = discardLogger
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}

// Result is the outcome of a max-flow computation.
//
// Value is the maximum flow. Residual holds every edge with strictly
// positive remaining capacity (forward leftovers and reverse flow), as a
// directed weighted graph over the original vertex set.
type Result struct {
	Value    int64
	Residual *core.Graph

	sourceSide map[string]bool
}

// InSourceSide reports whether v is reachable from the source over residual
// edges of strictly positive capacity. These vertices form the source side
// of the canonical minimum cut.
func (r *Result) InSourceSide(v string) bool {
	return r.sourceSide[v]
}

// SourceSide returns the source side of the minimum cut, sorted.
func (r *Result) SourceSide() []string {
	out := make([]string, 0, len(r.sourceSide))
	for v := range r.sourceSide {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}
