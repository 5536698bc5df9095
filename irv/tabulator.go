package irv

import (
	"errors"
	"math"

	"github.com/raire-audit/raire-core/errs"
	"github.com/raire-audit/raire-core/timeout"
	"github.com/raire-audit/raire-core/vote"
)

// ErrTooManyCandidates indicates NumCandidates exceeds this package's
// bitset-memoization limit of 64. spec.md §9 notes "C is small in
// practice (single contest)"; this package takes that literally and uses a
// single uint64 as the continuing-set key.
var ErrTooManyCandidates = errors.New("irv: more than 64 candidates is not supported")

// Tabulate runs IRV with full tie exploration over tbl, returning every
// candidate who could win under some resolution of tied eliminations and one
// concrete elimination order.
//
// If claimedWinner is non-nil, Tabulate additionally checks it against the
// computed outcome. tm may be nil, meaning no timeout.
//
// Errors (in the order they can occur, per spec.md §4.2):
//   - ErrTooManyCandidates if NumCandidates() > 64.
//   - ErrTimeoutCheckingWinner if tm's check fires during either pass.
//   - *WrongWinner if claimedWinner is supplied and is not the unique
//     computed winner — including when the possible-winner set has several
//     members, even if claimedWinner is among them.
//   - *TiedWinners if no claimedWinner is supplied and the possible-winner
//     set has size != 1.
func Tabulate(tbl *vote.Table, claimedWinner *int, tm *timeout.Handle) (*Result, error) {
	C := tbl.NumCandidates()
	if C > 64 {
		return nil, ErrTooManyCandidates
	}
	if tm == nil {
		tm = timeout.New()
	}

	e := &engine{tbl: tbl, tm: tm, memo: make(map[uint64][]int)}
	full := maskOf(C)

	winners, err := e.possibleWinners(full)
	if err != nil {
		return nil, err
	}

	order, rounds, err := e.eliminationOrder(full)
	if err != nil {
		return nil, err
	}

	if claimedWinner != nil && (len(winners) != 1 || *claimedWinner != winners[0]) {
		return nil, &errs.WrongWinner{PossibleWinners: winners}
	}
	if len(winners) != 1 {
		return nil, &errs.TiedWinners{PossibleWinners: winners}
	}

	return &Result{
		PossibleWinners:  winners,
		EliminationOrder: order,
		Rounds:           rounds,
	}, nil
}

// engine holds the mutable state for a single Tabulate call: the memo table
// keyed by continuing-set bitset, mirroring the reference library's
// bbEngine pattern of bundling search state in one struct instead of
// threading it through closures (tsp/bb.go).
type engine struct {
	tbl  *vote.Table
	tm   *timeout.Handle
	memo map[uint64][]int
}

// possibleWinners returns, memoized on mask, every candidate that can win
// when only the candidates in mask remain.
func (e *engine) possibleWinners(mask uint64) ([]int, error) {
	if cached, ok := e.memo[mask]; ok {
		return cached, nil
	}
	if e.tm.Check() {
		return nil, errs.ErrTimeoutCheckingWinner
	}

	continuing := bitsetToSlice(mask)
	if len(continuing) == 1 {
		e.memo[mask] = continuing
		return continuing, nil
	}

	tallies := e.tbl.RestrictedTallies(continuing)
	minTally := tallies[0]
	for _, t := range tallies[1:] {
		if t < minTally {
			minTally = t
		}
	}

	var winners []int
	for i, c := range continuing {
		if tallies[i] != minTally {
			continue
		}
		sub, err := e.possibleWinners(mask &^ (1 << uint(c)))
		if err != nil {
			return nil, err
		}
		winners = unionSorted(winners, sub)
	}

	e.memo[mask] = winners
	return winners, nil
}

// eliminationOrder performs the single deterministic descent that records
// one concrete elimination order: at every step, eliminate the lowest-index
// candidate among those tied for the minimum restricted tally.
func (e *engine) eliminationOrder(full uint64) ([]int, []RoundTally, error) {
	order := make([]int, 0, popcount(full))
	var rounds []RoundTally

	mask := full
	for {
		continuing := bitsetToSlice(mask)
		if len(continuing) == 1 {
			order = append(order, continuing[0])
			return order, rounds, nil
		}
		if e.tm.Check() {
			return nil, nil, errs.ErrTimeoutCheckingWinner
		}

		tallies := e.tbl.RestrictedTallies(continuing)
		rounds = append(rounds, RoundTally{Continuing: continuing, Tallies: tallies})

		minTally := tallies[0]
		for _, t := range tallies[1:] {
			if t < minTally {
				minTally = t
			}
		}

		elim := -1
		for i, c := range continuing {
			if tallies[i] == minTally {
				elim = c
				break
			}
		}

		order = append(order, elim)
		mask &^= 1 << uint(elim)
	}
}

// maskOf returns a bitset with the lowest n bits set.
func maskOf(n int) uint64 {
	if n >= 64 {
		return math.MaxUint64
	}
	return (uint64(1) << uint(n)) - 1
}

// bitsetToSlice returns the set bits of mask, ascending.
func bitsetToSlice(mask uint64) []int {
	out := make([]int, 0, popcount(mask))
	for c := 0; mask != 0; c++ {
		if mask&1 != 0 {
			out = append(out, c)
		}
		mask >>= 1
	}
	return out
}

func popcount(mask uint64) int {
	n := 0
	for mask != 0 {
		mask &= mask - 1
		n++
	}
	return n
}

// unionSorted merges two ascending, duplicate-free slices into one.
func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
