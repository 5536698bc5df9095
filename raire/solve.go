package raire

import (
	"time"

	"github.com/raire-audit/raire-core/assertion"
	"github.com/raire-audit/raire-core/errs"
	"github.com/raire-audit/raire-core/irv"
	"github.com/raire-audit/raire-core/timeout"
	"github.com/raire-audit/raire-core/vote"
)

// Solve runs the full pipeline (spec.md §6): tabulate the IRV winner, build
// the NEB cache, search the frontier for a sufficient assertion set, sanity
// check it against the reported winner, and trim it.
func Solve(p Problem) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tbl, err := vote.NewTable(p.Votes, p.NumCandidates)
	if err != nil {
		return nil, err
	}

	tm := timeout.New()
	if p.TimeLimitSeconds != nil {
		deadline := time.Now().Add(time.Duration(*p.TimeLimitSeconds * float64(time.Second)))
		tm = timeout.NewWithDeadline(deadline)
	}

	winnerStart := time.Now()
	tab, err := irv.Tabulate(tbl, p.Winner, tm)
	timeToDetermineWinners := time.Since(winnerStart)
	if err != nil {
		return nil, err
	}

	cache, err := assertion.BuildCache(tbl, p.Audit)
	if err != nil {
		return nil, err
	}

	lowerBoundSeed := 0.0
	if p.DifficultyEstimate != nil {
		lowerBoundSeed = *p.DifficultyEstimate
	}

	findStart := time.Now()
	assertions, stats, err := runRaire(tbl, tab, cache, p.Audit, tm, lowerBoundSeed)
	timeToFindAssertions := time.Since(findStart)
	if err != nil {
		return nil, err
	}

	if err := verifyWinnerNotRuledOut(assertions, tab.EliminationOrder); err != nil {
		return nil, err
	}

	trimStart := time.Now()
	trimmed, trimTimedOut, err := Trim(assertions, tab.Winner(), p.NumCandidates, p.Trim, tm)
	timeToTrimAssertions := time.Since(trimStart)
	if err != nil {
		return nil, err
	}

	difficulty, margin := overallDifficultyAndMargin(trimmed)

	return &Result{
		Winner:                 tab.Winner(),
		NumCandidates:          p.NumCandidates,
		Assertions:             trimmed,
		Difficulty:             difficulty,
		Margin:                 margin,
		TimeToDetermineWinners: timeToDetermineWinners,
		TimeToFindAssertions:   timeToFindAssertions,
		TimeToTrimAssertions:   timeToTrimAssertions,
		TrimTimedOut:           trimTimedOut,
		Stats:                  stats,
	}, nil
}

// verifyWinnerNotRuledOut is the sanity check of spec.md §8's sufficiency
// invariant applied to the reported winner: no retained assertion may
// contradict the full elimination order that produced it.
func verifyWinnerNotRuledOut(assertions []assertion.AssertionAndDifficulty, fullOrder []int) error {
	for _, a := range assertions {
		if a.Assertion.Effect(fullOrder) == assertion.Contradiction {
			return errs.ErrInternalRuledOutWinner
		}
	}
	return nil
}

// overallDifficultyAndMargin is spec.md §5(b): the maximum difficulty and
// minimum margin across the retained assertions, or (0, 0) if none remain.
func overallDifficultyAndMargin(assertions []assertion.AssertionAndDifficulty) (float64, int) {
	if len(assertions) == 0 {
		return 0, 0
	}
	difficulty := 0.0
	margin := assertions[0].Margin
	for _, a := range assertions {
		if a.Difficulty > difficulty {
			difficulty = a.Difficulty
		}
		if a.Margin < margin {
			margin = a.Margin
		}
	}
	return difficulty, margin
}
