// Package elimination decides which teams of a division can no longer
// finish first and explains why.
//
// A team t is eliminated when even winning every remaining game leaves it
// behind. Two checks run, in order:
//
//  1. Trivial: some team i already has more wins than t can reach,
//     wins(i) > wins(t)+remaining(t). Every such i joins the certificate.
//  2. Flow: the games left among the other teams are routed through a
//     network (source → game → team → sink) where team i may absorb at
//     most wins(t)+remaining(t)-wins(i) more wins. If the maximum flow
//     cannot place every game, t is eliminated, and the teams on the source
//     side of the minimum cut form the certificate R: together they must
//     win more than wins(t)+remaining(t) games on average.
//
// Results are computed lazily on first query and memoised per team.
// An Engine is safe for concurrent use; queries for different teams run in
// parallel, each on its own throwaway network.
//
//	d, _ := division.Load("teams4.txt")
//	e := elimination.New(d)
//	cert, _ := e.CertificateOfElimination("Philadelphia") // [Atlanta New_York]
package elimination
