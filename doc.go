// Package pennant answers one question about a sports division mid-season:
// which teams can no longer finish in first place, and why.
//
// A team is eliminated when, even winning every game it has left, no
// outcome of the remaining games keeps every rival at or below that best
// possible total. Pennant decides this exactly by reducing it to a
// maximum-flow problem, and explains each elimination with a certificate:
// a subset R of rivals whose average final wins must exceed the team's best
// case.
//
// Packages, leaf to root:
//
//	core/          thread-safe directed weighted graph with deterministic iteration
//	bfs/           breadth-first search with neighbor filters and early stop
//	flow/          Edmonds–Karp and Dinic max-flow, residual graph, minimum cut
//	division/      immutable team registry and the standings text format
//	elimination/   network construction, lazy per-team checks, certificates
//	report/        text rendering and division summary
//	store/         PostgreSQL persistence of seasons
//	server/        read-only HTTP/JSON API
//	config/        viper configuration (file, PENNANT_* env, flags)
//	logging/       slog logger construction
//
// The pennant command (cmd/pennant) ties them together:
//
//	pennant check testdata/teams4.txt
//	Atlanta is not eliminated
//	Philadelphia is eliminated by the subset R = { Atlanta New_York }
//	New_York is not eliminated
//	Montreal is eliminated by the subset R = { Atlanta }
package pennant
