package raire

import (
	"math"

	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/errs"
	"github.com/raire-audit/raire-core/vote"
)

// ProblemOption configures a Problem via NewProblem, mirroring the reference
// library's dijkstra.Option / tsp.Options functional-options convention.
type ProblemOption func(*Problem)

// WithWinner sets the claimed winner Solve checks the tabulator's computed
// winner against.
func WithWinner(winner int) ProblemOption {
	return func(p *Problem) { p.Winner = &winner }
}

// WithAudit sets the audit-difficulty model.
func WithAudit(cfg auditmodel.Config) ProblemOption {
	return func(p *Problem) { p.Audit = cfg }
}

// WithTrim sets the §4.7 trim policy.
func WithTrim(algo TrimAlgorithm) ProblemOption {
	return func(p *Problem) { p.Trim = algo }
}

// WithTimeLimit sets the overall wall-clock budget, in seconds, applied
// across every stage of Solve.
func WithTimeLimit(seconds float64) ProblemOption {
	return func(p *Problem) { p.TimeLimitSeconds = &seconds }
}

// WithDifficultyEstimate seeds runRaire's lower bound; see Problem's own
// doc comment on DifficultyEstimate for the soundness requirement.
func WithDifficultyEstimate(estimate float64) ProblemOption {
	return func(p *Problem) { p.DifficultyEstimate = &estimate }
}

// DefaultProblem returns a Problem for votes/numCandidates with every
// optional field at its zero-cost default: no claimed winner, MinimizeTree
// trim, no difficulty estimate, no time limit. The zero-value Audit config
// is almost always wrong for real use (TotalBallots defaults to 0, making
// every Difficulty call fail) — callers are expected to override it with
// WithAudit, exactly as dijkstra.DefaultOptions requires its caller to
// supply Source.
func DefaultProblem(votes []vote.Vote, numCandidates int) Problem {
	return Problem{
		Votes:         votes,
		NumCandidates: numCandidates,
		Trim:          MinimizeTree,
	}
}

// NewProblem builds a Problem from DefaultProblem, applying opts in order.
func NewProblem(votes []vote.Vote, numCandidates int, opts ...ProblemOption) Problem {
	p := DefaultProblem(votes, numCandidates)
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Validate runs Solve's input-validity checks (spec.md §7's synchronous,
// pre-search errors) without running any search. It is idempotent and safe
// to call repeatedly before committing to a full Solve, mirroring the
// reference library's validate-then-run split (tsp.ValidateTour ahead of
// the solver itself).
func (p Problem) Validate() error {
	if p.NumCandidates < 1 {
		return errs.ErrInvalidNumberOfCandidates
	}
	if p.TimeLimitSeconds != nil {
		t := *p.TimeLimitSeconds
		if math.IsNaN(t) || t <= 0 {
			return errs.ErrInvalidTimeout
		}
	}
	if _, err := vote.NewTable(p.Votes, p.NumCandidates); err != nil {
		return err
	}
	return nil
}
