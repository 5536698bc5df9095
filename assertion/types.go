package assertion

import (
	"errors"
	"sort"
)

// ErrInvalidAssertion indicates a malformed Assertion was constructed: an
// NEB with Winner == Loser, or an NEN whose Continuing does not contain both
// Winner and Loser or has fewer than 2 entries.
var ErrInvalidAssertion = errors.New("assertion: invalid assertion")

// Kind distinguishes the two assertion variants.
type Kind int

const (
	// NEBKind: "not eliminated before" — Winner's tally exceeds Loser's at
	// every stage of tabulation.
	NEBKind Kind = iota

	// NENKind: "not eliminated next" — restricted to Continuing, Winner's
	// tally exceeds Loser's, so Winner is not the next eliminated.
	NENKind
)

// SuffixEffect is the result of testing an Assertion against an
// elimination-order suffix (spec.md §3).
type SuffixEffect int

const (
	// Ok means the suffix is compatible with the assertion: it does not rule
	// out any full order ending in this suffix.
	Ok SuffixEffect = iota

	// Contradiction means every full elimination order ending in this
	// suffix is ruled out by the assertion.
	Contradiction

	// NeedsMoreDetail means the suffix is too short to tell: extending it
	// could produce either Ok or Contradiction.
	NeedsMoreDetail
)

func (e SuffixEffect) String() string {
	switch e {
	case Ok:
		return "Ok"
	case Contradiction:
		return "Contradiction"
	case NeedsMoreDetail:
		return "NeedsMoreDetail"
	default:
		return "Unknown"
	}
}

// Assertion is a tagged sum type over NEB(Winner, Loser) and
// NEN(Winner, Loser, Continuing). Which fields are meaningful is determined
// by Kind; Continuing is always nil for an NEB.
//
// Continuing is stored in ascending order, per spec.md §3: two NEN
// assertions are equal regardless of the order their continuing set was
// built in, because both are canonicalized to ascending order at
// construction.
type Assertion struct {
	Kind       Kind
	Winner     int
	Loser      int
	Continuing []int
}

// NewNEB constructs a validated NEB(winner, loser) assertion.
func NewNEB(winner, loser int) (Assertion, error) {
	if winner == loser {
		return Assertion{}, ErrInvalidAssertion
	}
	return Assertion{Kind: NEBKind, Winner: winner, Loser: loser}, nil
}

// NewNEN constructs a validated NEN(winner, loser, continuing) assertion.
// continuing is copied and sorted ascending; it must contain both winner
// and loser and have at least 2 elements.
func NewNEN(winner, loser int, continuing []int) (Assertion, error) {
	if len(continuing) < 2 {
		return Assertion{}, ErrInvalidAssertion
	}
	cont := make([]int, len(continuing))
	copy(cont, continuing)
	sort.Ints(cont)

	hasWinner, hasLoser := false, false
	for _, c := range cont {
		if c == winner {
			hasWinner = true
		}
		if c == loser {
			hasLoser = true
		}
	}
	if !hasWinner || !hasLoser {
		return Assertion{}, ErrInvalidAssertion
	}

	return Assertion{Kind: NENKind, Winner: winner, Loser: loser, Continuing: cont}, nil
}

// Equal reports whether a and b denote the same assertion: same Kind, same
// Winner/Loser, and (for NEN) the same Continuing set irrespective of
// construction order (both are stored canonically sorted, so a direct
// element-wise comparison suffices).
func (a Assertion) Equal(b Assertion) bool {
	if a.Kind != b.Kind || a.Winner != b.Winner || a.Loser != b.Loser {
		return false
	}
	if a.Kind == NEBKind {
		return true
	}
	if len(a.Continuing) != len(b.Continuing) {
		return false
	}
	for i := range a.Continuing {
		if a.Continuing[i] != b.Continuing[i] {
			return false
		}
	}
	return true
}

// AssertionAndDifficulty bundles an Assertion with its audit difficulty and
// margin (spec.md §3). Status is reserved for the out-of-scope service-layer
// collaborator (e.g. ServiceAssertion's DB-backed flags); the core never
// populates it and a caller is free to ignore it entirely.
type AssertionAndDifficulty struct {
	Assertion  Assertion
	Difficulty float64
	Margin     int
	Status     map[string]bool
}
