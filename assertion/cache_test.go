package assertion_test

import (
	"math"
	"testing"

	"github.com/raire-audit/raire-core/assertion"
	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/vote"
)

func TestBuildCache_DiagonalIsInfinite(t *testing.T) {
	votes := []vote.Vote{{Multiplicity: 10, Prefs: []int{0, 1}}}
	tbl, err := vote.NewTable(votes, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := auditmodel.Config{Kind: auditmodel.OneOnMargin, TotalBallots: 10}
	cache, err := assertion.BuildCache(tbl, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, m := cache.Get(0, 0)
	if !math.IsInf(d, 1) || m != 0 {
		t.Fatalf("diagonal: got (%v, %v), want (+Inf, 0)", d, m)
	}
}

func TestBestNEBFor(t *testing.T) {
	votes := []vote.Vote{
		{Multiplicity: 10, Prefs: []int{0, 1, 2}},
		{Multiplicity: 5, Prefs: []int{1, 2, 0}},
		{Multiplicity: 1, Prefs: []int{2, 0, 1}},
	}
	tbl, err := vote.NewTable(votes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := auditmodel.Config{Kind: auditmodel.OneOnMargin, TotalBallots: 16}
	cache, err := assertion.BuildCache(tbl, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// c=1, tail {2}: NEB(1,2) has tallies 5 vs 1 (difficulty 16/4) and
	// NEB(0,1) has 10 vs 5 (difficulty 16/5), so the best is finite.
	best := assertion.BestNEBFor(1, []int{2}, cache, 3)
	if math.IsInf(best.Difficulty, 1) {
		t.Fatalf("expected a finite best assertion, got +Inf")
	}
	if best.Assertion.Kind != assertion.NEBKind {
		t.Fatalf("expected an NEB assertion")
	}
}

func TestBestNENFor(t *testing.T) {
	votes := []vote.Vote{
		{Multiplicity: 10, Prefs: []int{0, 1, 2}},
		{Multiplicity: 5, Prefs: []int{1, 2, 0}},
		{Multiplicity: 1, Prefs: []int{2, 0, 1}},
	}
	tbl, err := vote.NewTable(votes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := auditmodel.Config{Kind: auditmodel.OneOnMargin, TotalBallots: 16}

	best, err := assertion.BestNENFor(0, []int{0, 1, 2}, tbl, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if best.Assertion.Kind != assertion.NENKind || best.Assertion.Winner != 0 {
		t.Fatalf("expected NEN(0, _, _), got %+v", best.Assertion)
	}
}

func TestBestNENFor_NoOtherCandidate(t *testing.T) {
	votes := []vote.Vote{{Multiplicity: 1, Prefs: []int{0}}}
	tbl, err := vote.NewTable(votes, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := auditmodel.Config{Kind: auditmodel.OneOnMargin, TotalBallots: 1}
	_, err = assertion.BestNENFor(0, []int{0}, tbl, cfg)
	if err != assertion.ErrNoOtherContinuingCandidate {
		t.Fatalf("expected ErrNoOtherContinuingCandidate, got %v", err)
	}
}
