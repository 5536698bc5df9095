package raire_test

import (
	"testing"

	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/errs"
	"github.com/raire-audit/raire-core/raire"
	"github.com/raire-audit/raire-core/vote"
)

func TestProblem_ValidateRejectsZeroCandidates(t *testing.T) {
	p := raire.DefaultProblem(nil, 0)
	if err := p.Validate(); err != errs.ErrInvalidNumberOfCandidates {
		t.Fatalf("got %v, want ErrInvalidNumberOfCandidates", err)
	}
}

func TestProblem_ValidateRejectsBadCandidateIndex(t *testing.T) {
	votes := []vote.Vote{{Multiplicity: 1, Prefs: []int{5}}}
	p := raire.DefaultProblem(votes, 2)
	if err := p.Validate(); err == nil {
		t.Fatalf("expected an error for an out-of-range candidate index")
	}
}

func TestProblem_ValidateIsIdempotent(t *testing.T) {
	p := raire.NewProblem(guideExample10Votes(), 4,
		raire.WithAudit(auditmodel.Config{Kind: auditmodel.OneOnMargin, TotalBallots: 13500}),
	)
	first := p.Validate()
	second := p.Validate()
	if first != second {
		t.Fatalf("Validate was not idempotent: first=%v second=%v", first, second)
	}
}

func TestNewProblem_AppliesOptionsOverDefaults(t *testing.T) {
	cfg := auditmodel.Config{Kind: auditmodel.MACRO, TotalBallots: 27000, Alpha: 0.05, Gamma: 1.1}
	p := raire.NewProblem(guideExample10Votes(), 4,
		raire.WithWinner(3),
		raire.WithAudit(cfg),
		raire.WithTrim(raire.MinimizeAssertions),
		raire.WithTimeLimit(5),
		raire.WithDifficultyEstimate(1.5),
	)

	if p.Winner == nil || *p.Winner != 3 {
		t.Fatalf("Winner: got %v, want *3", p.Winner)
	}
	if p.Audit != cfg {
		t.Fatalf("Audit: got %+v, want %+v", p.Audit, cfg)
	}
	if p.Trim != raire.MinimizeAssertions {
		t.Fatalf("Trim: got %v, want MinimizeAssertions", p.Trim)
	}
	if p.TimeLimitSeconds == nil || *p.TimeLimitSeconds != 5 {
		t.Fatalf("TimeLimitSeconds: got %v, want *5", p.TimeLimitSeconds)
	}
	if p.DifficultyEstimate == nil || *p.DifficultyEstimate != 1.5 {
		t.Fatalf("DifficultyEstimate: got %v, want *1.5", p.DifficultyEstimate)
	}
}

// TestDefaultProblem_TrimDefaultsToMinimizeTree confirms DefaultProblem
// matches spec.md §6's stated default trim_algorithm.
func TestDefaultProblem_TrimDefaultsToMinimizeTree(t *testing.T) {
	p := raire.DefaultProblem(nil, 1)
	if p.Trim != raire.MinimizeTree {
		t.Fatalf("Trim: got %v, want MinimizeTree", p.Trim)
	}
}
