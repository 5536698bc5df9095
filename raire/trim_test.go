package raire_test

import (
	"testing"

	"github.com/raire-audit/raire-core/assertion"
	"github.com/raire-audit/raire-core/raire"
	"github.com/raire-audit/raire-core/timeout"
)

func aad(a assertion.Assertion, difficulty float64) assertion.AssertionAndDifficulty {
	return assertion.AssertionAndDifficulty{Assertion: a, Difficulty: difficulty, Margin: 1}
}

// guideSixAssertions builds scenario S6's assertion set (spec.md §8), over a
// 4-candidate contest with winner 2.
func guideSixAssertions(t *testing.T) []assertion.AssertionAndDifficulty {
	t.Helper()
	nen01, err := assertion.NewNEN(0, 1, []int{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nen03a, err := assertion.NewNEN(0, 3, []int{0, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nen20, err := assertion.NewNEN(2, 0, []int{0, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nen23, err := assertion.NewNEN(2, 3, []int{0, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	neb21, err := assertion.NewNEB(2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nen03b, err := assertion.NewNEN(0, 3, []int{0, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return []assertion.AssertionAndDifficulty{
		aad(nen01, 5), aad(nen03a, 6), aad(nen20, 3), aad(nen23, 4), aad(neb21, 2), aad(nen03b, 7),
	}
}

// TestTrim_CanonicalOrder exercises invariant 3: NEBs sort before NENs, NEBs
// by (winner,loser), NENs by (|continuing|, winner, loser, continuing).
func TestTrim_CanonicalOrder(t *testing.T) {
	out, timedOut, err := raire.Trim(guideSixAssertions(t), 2, 4, raire.None, timeout.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if timedOut {
		t.Fatalf("unexpected timeout")
	}
	if len(out) != 6 {
		t.Fatalf("len(out): got %d, want 6", len(out))
	}
	if out[0].Assertion.Kind != assertion.NEBKind {
		t.Fatalf("out[0]: want the sole NEB first, got %+v", out[0].Assertion)
	}
	for i := 1; i < len(out); i++ {
		if out[i].Assertion.Kind == assertion.NEBKind {
			t.Fatalf("out[%d]: NEB found after a NEN", i)
		}
	}
	// Among the NENs, the two with |continuing|=2 (NEN(0,3,{0,3}), then
	// NEN(2,0,{0,2}) by winner) must sort before the larger entries.
	if len(out[1].Assertion.Continuing) != 2 {
		t.Fatalf("out[1]: want a 2-candidate NEN, got %+v", out[1].Assertion)
	}
}

// TestTrim_SufficiencyForGuideScenario reproduces the sufficiency half of
// scenario S6: every non-winner root must come back ruled out — which Trim
// enforces by returning ErrInternalDidntRuleOutLoser otherwise. Trim builds
// no tree for the winner (2), so the winner's root is not checked here.
func TestTrim_SufficiencyForGuideScenario(t *testing.T) {
	_, _, err := raire.Trim(guideSixAssertions(t), 2, 4, raire.MinimizeTree, timeout.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestTrim_IdempotentUnderReapplication exercises invariant 7: trimming an
// already-trimmed set a second time must not shrink it further.
func TestTrim_IdempotentUnderReapplication(t *testing.T) {
	once, _, err := raire.Trim(guideSixAssertions(t), 2, 4, raire.MinimizeTree, timeout.New())
	if err != nil {
		t.Fatalf("unexpected error (first trim): %v", err)
	}
	twice, _, err := raire.Trim(once, 2, 4, raire.MinimizeTree, timeout.New())
	if err != nil {
		t.Fatalf("unexpected error (second trim): %v", err)
	}
	if len(once) != len(twice) {
		t.Fatalf("len(once)=%d, len(twice)=%d: trim is not idempotent", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Assertion.Equal(twice[i].Assertion) {
			t.Fatalf("assertion %d differs across trim passes: %+v vs %+v", i, once[i].Assertion, twice[i].Assertion)
		}
	}
}

// TestTrim_MinimizeAssertionsNeverRetainsMoreThanMinimizeTree checks the two
// non-trivial trim policies against the same input: MinimizeAssertions
// (StopOnNEB) builds larger pruning trees specifically to retain fewer
// assertions than MinimizeTree (StopImmediately) would.
func TestTrim_MinimizeAssertionsNeverRetainsMoreThanMinimizeTree(t *testing.T) {
	tree, _, err := raire.Trim(guideSixAssertions(t), 2, 4, raire.MinimizeTree, timeout.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertions, _, err := raire.Trim(guideSixAssertions(t), 2, 4, raire.MinimizeAssertions, timeout.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assertions) > len(tree) {
		t.Fatalf("MinimizeAssertions retained %d, more than MinimizeTree's %d", len(assertions), len(tree))
	}
}
