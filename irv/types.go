package irv

import "github.com/raire-audit/raire-core/errs"

// Re-exported taxonomy errors (spec.md §7) so callers of this package do not
// need to import errs directly just to compare error types.
var (
	ErrTimeoutCheckingWinner = errs.ErrTimeoutCheckingWinner
)

// TiedWinners and WrongWinner are type aliases of the shared taxonomy
// structs; kept here under the names spec.md §7 uses so callers can write
// irv.TiedWinners / irv.WrongWinner.
type (
	TiedWinners = errs.TiedWinners
	WrongWinner = errs.WrongWinner
)

// RoundTally is one step of the recorded elimination-order descent: the
// continuing candidates at that step (ascending) and their restricted
// tallies in the same order. This is supplementary bookkeeping
// (SPEC_FULL.md §C.2) over data the tabulator already computes; it is not
// part of spec.md's required output but costs nothing extra to record.
type RoundTally struct {
	Continuing []int
	Tallies    []uint64
}

// Result is the tabulator's output: every candidate who could win under some
// resolution of tied eliminations, one concrete elimination order (leftmost
// eliminated first, winner last), and the per-round tallies along that
// recorded order.
type Result struct {
	// PossibleWinners is the full set of candidates who win under at least
	// one tie-break resolution, in ascending order.
	PossibleWinners []int

	// EliminationOrder is one concrete full elimination order, consistent
	// with this package's fixed ascending tie-break rule.
	EliminationOrder []int

	// Rounds records the restricted tallies computed at each step of
	// EliminationOrder's descent, in elimination order.
	Rounds []RoundTally
}

// Winner returns the tabulator's unique computed winner (the last entry of
// EliminationOrder). Callers should only call this once they know
// PossibleWinners has exactly one element; Tabulate itself never returns a
// Result for an ambiguous outcome (it returns *TiedWinners instead).
func (r *Result) Winner() int {
	return r.EliminationOrder[len(r.EliminationOrder)-1]
}
