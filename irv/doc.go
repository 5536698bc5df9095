// Package irv tabulates a single Instant-Runoff Voting contest to find every
// candidate who could win under some resolution of tied eliminations, and
// one concrete elimination order consistent with a deterministic tie-break
// (spec.md §4.2).
//
// Algorithm: recursive elimination from the full candidate set. At each
// step, restricted tallies are computed for the still-continuing
// candidates; every candidate tied for the minimum tally spawns a recursive
// branch with that candidate removed, and the returned possible-winner sets
// are unioned. Recursion is memoized on the continuing set, represented as a
// bitset (package supports at most 64 candidates — "C is small in practice:
// single contest", spec.md §9).
//
// A second, simpler deterministic descent — always eliminating the
// lowest-indexed candidate among any tie for the minimum — produces the one
// concrete EliminationOrder this package returns; spec.md §9 Open Question 2
// leaves the tie-break rule to the implementation as long as it is
// consistent for identical inputs on the same implementation.
package irv
