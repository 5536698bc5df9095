package errs

import (
	"errors"
	"fmt"
)

// Input-validity errors (spec.md §7): raised synchronously before any search
// work begins.
var (
	// ErrInvalidNumberOfCandidates indicates NumCandidates < 1.
	ErrInvalidNumberOfCandidates = errors.New("raire: invalid number of candidates")

	// ErrInvalidTimeout indicates a supplied time_limit_seconds is present and
	// ≤ 0, or NaN.
	ErrInvalidTimeout = errors.New("raire: invalid time limit")

	// ErrInvalidCandidateNumber indicates some vote references a candidate
	// index outside [0, NumCandidates).
	ErrInvalidCandidateNumber = errors.New("raire: candidate index out of range")
)

// Timeout sentinels with no payload.
var (
	// ErrTimeoutCheckingWinner indicates the timeout fired while tabulating
	// the IRV winner.
	ErrTimeoutCheckingWinner = errors.New("raire: timed out checking winner")

	// ErrTimeoutTrimmingAssertions indicates the timeout fired while building
	// pruning trees during the trim stage. This is recoverable: the caller
	// receives a RaireResult with TrimTimedOut set rather than this error
	// propagating out of Solve.
	ErrTimeoutTrimmingAssertions = errors.New("raire: timed out trimming assertions")
)

// Internal sanity sentinels: these indicate the core's own invariants were
// violated and should never surface in correct operation.
var (
	// ErrInternalRuledOutWinner indicates the retained assertion set
	// contradicts the reported elimination order's own winner.
	ErrInternalRuledOutWinner = errors.New("raire: internal error: ruled out the winner")

	// ErrInternalDidntRuleOutLoser indicates a pruning tree rooted at a
	// non-winner candidate has a valid root, i.e. assertion generation failed
	// to rule out some non-winning outcome.
	ErrInternalDidntRuleOutLoser = errors.New("raire: internal error: didn't rule out a loser")

	// ErrInternalTrimming indicates the trim heuristic reached an
	// inconsistent state while walking a pruning tree.
	ErrInternalTrimming = errors.New("raire: internal error: trimming failed")
)

// TiedWinners indicates the IRV tabulator found more than one possible
// winner across all explored tie-break resolutions.
type TiedWinners struct {
	PossibleWinners []int
}

func (e *TiedWinners) Error() string {
	return fmt.Sprintf("raire: tied winners: %v", e.PossibleWinners)
}

// WrongWinner indicates a caller-supplied claimed winner is not the
// tabulator's unique computed winner (raised even when the claimed winner is
// among a tied set of possible winners).
type WrongWinner struct {
	PossibleWinners []int
}

func (e *WrongWinner) Error() string {
	return fmt.Sprintf("raire: wrong winner: possible winners %v", e.PossibleWinners)
}

// CouldNotRuleOut indicates the frontier search reached a full-length
// elimination-order suffix whose only available assertion has +Inf
// difficulty: no audit model can rule it out.
type CouldNotRuleOut struct {
	Suffix []int
}

func (e *CouldNotRuleOut) Error() string {
	return fmt.Sprintf("raire: could not rule out elimination order %v", e.Suffix)
}

// TimeoutFindingAssertions indicates the timeout fired during the frontier
// search (§4.5). DifficultyAtStop is the current lower bound at the moment
// of the timeout.
type TimeoutFindingAssertions struct {
	DifficultyAtStop float64
}

func (e *TimeoutFindingAssertions) Error() string {
	return fmt.Sprintf("raire: timed out finding assertions (difficulty at stop: %v)", e.DifficultyAtStop)
}
