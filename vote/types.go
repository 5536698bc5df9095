package vote

import (
	"errors"

	"github.com/raire-audit/raire-core/errs"
)

// ErrInvalidNumberOfCandidates and ErrInvalidCandidateNumber are the two
// spec-named validation failures (spec.md §7); they alias the shared
// taxonomy so a caller can errors.Is against either this package or errs.
var (
	ErrInvalidNumberOfCandidates = errs.ErrInvalidNumberOfCandidates
	ErrInvalidCandidateNumber    = errs.ErrInvalidCandidateNumber
)

// Additional vote-shape sentinels not named by the closed taxonomy, kept
// local to this package since they are a supplementary strictness this
// module adds on top of spec.md §4.1's constructor validation.
var (
	// ErrEmptyPreferences indicates a Vote with zero-length preferences,
	// which cannot carry a first preference.
	ErrEmptyPreferences = errors.New("vote: vote has no preferences")

	// ErrNonPositiveMultiplicity indicates a Vote with multiplicity < 1.
	ErrNonPositiveMultiplicity = errors.New("vote: multiplicity must be at least 1")

	// ErrDuplicatePreference indicates a Vote's preference list repeats a
	// candidate index.
	ErrDuplicatePreference = errors.New("vote: preference list contains a duplicate candidate")
)

// Vote is a single consolidated ranked ballot: Multiplicity identical ballots
// sharing the ranking Prefs, highest-ranked candidate first.
//
// Prefs must not repeat a candidate and every entry must lie in
// [0, NumCandidates) of the owning Table — both are enforced once, at
// NewTable time.
type Vote struct {
	// Multiplicity is the number of physical ballots this Vote represents.
	Multiplicity uint64

	// Prefs is the ranking, highest preference first. Table never mutates
	// it; NewTable copies Vote values but not their Prefs backing arrays, so
	// those stay shared with the caller's slice and with Table.Votes().
	Prefs []int
}

// Table is an immutable collection of consolidated Votes over a fixed
// candidate universe [0, NumCandidates).
//
// All derived data (first-preference tallies, total vote count) is computed
// once in NewTable. Table is safe for concurrent read-only use by multiple
// goroutines: nothing below ever mutates it after construction.
type Table struct {
	numCandidates int
	votes         []Vote
	totalVotes    uint64
	firstPrefs    []uint64 // firstPrefs[c] = sum of Multiplicity over votes whose Prefs[0] == c
}
