// Package division holds the immutable registry of teams in one division:
// standings (wins, losses, games remaining) and the matrix of games left
// between every pair of teams.
//
// A Division is validated once, at construction, and never changes
// afterwards. Every accessor is safe for concurrent use and returns copies,
// so callers cannot mutate the registry through returned slices.
//
// Teams are addressed either by their position in the input (index, 0-based)
// or by name; the two are a bijection fixed at construction.
//
// Input:
//
//	4
//	Atlanta       83 71  8  0 1 6 1
//	Philadelphia  80 79  3  1 0 0 2
//	New_York      78 78  6  6 0 0 0
//	Montreal      77 82  3  1 2 0 0
//
// The first line is the team count n; each following line is a team name
// (no whitespace) followed by wins, losses, remaining games and n counts of
// games left against each team in input order. Parse and Load read this
// format.
package division
