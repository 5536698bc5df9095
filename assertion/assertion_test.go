package assertion_test

import (
	"math"
	"testing"

	"github.com/raire-audit/raire-core/assertion"
	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/vote"
)

func TestNewNEB_RejectsSelfPair(t *testing.T) {
	_, err := assertion.NewNEB(1, 1)
	if err != assertion.ErrInvalidAssertion {
		t.Fatalf("expected ErrInvalidAssertion, got %v", err)
	}
}

func TestNewNEN_RejectsMissingWinnerOrLoser(t *testing.T) {
	_, err := assertion.NewNEN(0, 1, []int{0, 2})
	if err != assertion.ErrInvalidAssertion {
		t.Fatalf("expected ErrInvalidAssertion, got %v", err)
	}
}

func TestNewNEN_CanonicalizesOrder(t *testing.T) {
	a, err := assertion.NewNEN(0, 1, []int{3, 1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := assertion.NewNEN(0, 1, []int{0, 1, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("expected %v to equal %v regardless of construction order", a, b)
	}
}

func TestAssertion_Equal(t *testing.T) {
	n1, _ := assertion.NewNEB(0, 1)
	n2, _ := assertion.NewNEB(0, 1)
	n3, _ := assertion.NewNEB(1, 0)
	if !n1.Equal(n2) {
		t.Fatalf("expected equal NEBs to compare equal")
	}
	if n1.Equal(n3) {
		t.Fatalf("NEB(0,1) must not equal NEB(1,0)")
	}
}

func TestNEB_Effect(t *testing.T) {
	neb, _ := assertion.NewNEB(0, 1)

	if got := neb.Effect([]int{2, 0, 3}); got != assertion.Ok {
		t.Fatalf("winner present, loser absent: got %v, want Ok", got)
	}
	if got := neb.Effect([]int{2, 1, 3}); got != assertion.Contradiction {
		t.Fatalf("loser present, winner absent: got %v, want Contradiction", got)
	}
	if got := neb.Effect([]int{2, 3}); got != assertion.NeedsMoreDetail {
		t.Fatalf("neither present: got %v, want NeedsMoreDetail", got)
	}
	// Winner after loser in elimination order (loser eliminated earlier,
	// i.e. appears to the left / earlier in the suffix) is a Contradiction
	// only if loser is found scanning backward before winner; here winner (0)
	// is to the right of loser (1), so scanning from the right we hit the
	// winner first -> Ok.
	if got := neb.Effect([]int{1, 0}); got != assertion.Ok {
		t.Fatalf("got %v, want Ok", got)
	}
	if got := neb.Effect([]int{0, 1}); got != assertion.Contradiction {
		t.Fatalf("got %v, want Contradiction", got)
	}
}

func TestNEN_Effect(t *testing.T) {
	nen, err := assertion.NewNEN(0, 1, []int{0, 1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Candidate not in S present in tail -> Ok.
	if got := nen.Effect([]int{3, 1, 0}); got != assertion.Ok {
		t.Fatalf("got %v, want Ok (tail escapes S)", got)
	}
	// |suffix| >= m, T[0] == w -> Contradiction.
	if got := nen.Effect([]int{0, 2, 1}); got != assertion.Contradiction {
		t.Fatalf("got %v, want Contradiction", got)
	}
	// |suffix| >= m, T[0] != w -> Ok.
	if got := nen.Effect([]int{1, 2, 0}); got != assertion.Ok {
		t.Fatalf("got %v, want Ok", got)
	}
	// Proper prefix of an m-tail, w present -> Ok.
	if got := nen.Effect([]int{0}); got != assertion.Ok {
		t.Fatalf("got %v, want Ok", got)
	}
	// Proper prefix, w absent -> NeedsMoreDetail.
	if got := nen.Effect([]int{2}); got != assertion.NeedsMoreDetail {
		t.Fatalf("got %v, want NeedsMoreDetail", got)
	}
}

func TestNEB_DifficultyOn(t *testing.T) {
	votes := []vote.Vote{
		{Multiplicity: 10000, Prefs: []int{0, 1, 2}},
		{Multiplicity: 6000, Prefs: []int{1, 0, 2}},
		{Multiplicity: 5999, Prefs: []int{2, 0, 1}},
	}
	tbl, err := vote.NewTable(votes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	neb, _ := assertion.NewNEB(0, 1)
	cfg := auditmodel.Config{Kind: auditmodel.OneOnMargin, TotalBallots: 21999}
	difficulty, m, err := neb.DifficultyOn(tbl, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// first_pref_tally(0) = 10000; restricted_tallies({0,1})[1] = 6000
	// (only the second vote's top preference among {0,1}).
	wantMargin := 10000 - 6000
	if m != wantMargin {
		t.Fatalf("margin: got %d, want %d", m, wantMargin)
	}
	wantDifficulty := 21999.0 / float64(wantMargin)
	if math.Abs(difficulty-wantDifficulty) > 1e-9 {
		t.Fatalf("difficulty: got %v, want %v", difficulty, wantDifficulty)
	}
}
