package assertion

import (
	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/vote"
)

// Effect evaluates what this assertion implies about the given
// elimination-order suffix, dispatching on Kind (spec.md §4.4).
func (a Assertion) Effect(suffix []int) SuffixEffect {
	switch a.Kind {
	case NEBKind:
		return nebEffect(a, suffix)
	default:
		return nenEffect(a, suffix)
	}
}

// DifficultyOn computes this assertion's audit difficulty and margin against
// tbl under cfg, dispatching on Kind (spec.md §4.4).
func (a Assertion) DifficultyOn(tbl *vote.Table, cfg auditmodel.Config) (difficulty float64, margin int, err error) {
	switch a.Kind {
	case NEBKind:
		return nebDifficultyOn(a, tbl, cfg)
	default:
		return nenDifficultyOn(a, tbl, cfg)
	}
}

// AndDifficulty evaluates DifficultyOn and packages the result with a, for
// callers that want the combined value (spec.md §3
// AssertionAndDifficulty).
func (a Assertion) AndDifficulty(tbl *vote.Table, cfg auditmodel.Config) (AssertionAndDifficulty, error) {
	difficulty, m, err := a.DifficultyOn(tbl, cfg)
	if err != nil {
		return AssertionAndDifficulty{}, err
	}
	return AssertionAndDifficulty{Assertion: a, Difficulty: difficulty, Margin: m}, nil
}
