package raire

import (
	"time"

	"github.com/raire-audit/raire-core/assertion"
	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/vote"
)

// TrimAlgorithm selects the §4.7 trim policy applied to the assertion set
// runRaire produces.
type TrimAlgorithm int

const (
	// MinimizeTree selects continuation = StopImmediately: the smallest
	// pruning trees, generally retaining more assertions.
	MinimizeTree TrimAlgorithm = iota

	// MinimizeAssertions selects continuation = StopOnNEB: larger pruning
	// trees in exchange for fewer retained assertions.
	MinimizeAssertions

	// None disables trimming: Solve returns runRaire's full output, sorted
	// canonically but not filtered.
	None
)

// Problem is a single IRV contest instance plus the configuration Solve
// needs to produce a sufficient, trimmed assertion set (spec.md §6).
type Problem struct {
	// Votes and NumCandidates build the underlying vote.Table.
	Votes         []vote.Vote
	NumCandidates int

	// Winner, if non-nil, is checked against the tabulator's computed
	// winner; a mismatch raises *errs.WrongWinner.
	Winner *int

	// Audit selects the difficulty model applied to every assertion.
	Audit auditmodel.Config

	// Trim selects the §4.7 policy. The zero value is MinimizeTree, matching
	// spec.md §6's stated default for an absent trim_algorithm.
	Trim TrimAlgorithm

	// DifficultyEstimate, if non-nil, seeds runRaire's lower_bound instead of
	// starting it at 0 (spec.md §6 "estimate?"). This mirrors tsp.seedUB:
	// it only accelerates pruning and is sound exactly when the caller's
	// estimate is a genuine lower bound on the eventual overall difficulty
	// (e.g. carried over from a prior audit round on the same contest) —
	// supplying an estimate that is too high can cause runRaire to commit a
	// costlier assertion than necessary for some suffix.
	DifficultyEstimate *float64

	// TimeLimitSeconds, if non-nil, bounds every stage of Solve. A present
	// value that is ≤ 0 or NaN raises errs.ErrInvalidTimeout before any work
	// begins.
	TimeLimitSeconds *float64
}

// Stats is supplementary search bookkeeping (SPEC_FULL.md §C.5) over data
// spec.md does not require in RaireResult but costs nothing extra to expose:
// the number of frontier entries committed versus pruned-by-commit.
type Stats struct {
	EntriesCommitted int
	EntriesPruned    int
}

// Result is spec.md §6's RaireResult: the assertion set, its overall
// difficulty and margin, the winner, and the three timing measurements.
type Result struct {
	Winner        int
	NumCandidates int

	// Assertions is in the §4.7 canonical sort order, filtered by Trim (or
	// unfiltered, still canonically sorted, when Trim == None).
	Assertions []assertion.AssertionAndDifficulty

	Difficulty float64
	Margin     int

	TimeToDetermineWinners time.Duration
	TimeToFindAssertions   time.Duration
	TimeToTrimAssertions   time.Duration

	// TrimTimedOut is set when the trim stage's timeout fired; Assertions is
	// then the unmodified (but canonically sorted) set runRaire produced.
	TrimTimedOut bool

	Stats Stats
}
