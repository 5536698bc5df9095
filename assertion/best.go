package assertion

import (
	"errors"
	"math"

	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/vote"
)

// ErrNoOtherContinuingCandidate indicates BestNENFor was asked for a
// continuing set containing only c itself — there is no loser to compare
// against.
var ErrNoOtherContinuingCandidate = errors.New("assertion: continuing set has no candidate other than c")

// BestNEBFor searches, over every candidate c' != c, the cheapest NEB
// assertion that can be formed between c and c': NEB(c, c') if c' is in
// tail, otherwise NEB(c', c) (spec.md §4.4 "best-candidate search
// helpers"). numCandidates is the full candidate universe size (cache.Get's
// domain), independent of len(tail).
func BestNEBFor(c int, tail []int, cache *Cache, numCandidates int) AssertionAndDifficulty {
	inTail := make([]bool, numCandidates)
	for _, x := range tail {
		inTail[x] = true
	}

	best := AssertionAndDifficulty{Difficulty: math.Inf(1)}
	for cp := 0; cp < numCandidates; cp++ {
		if cp == c {
			continue
		}
		w, l := cp, c
		if inTail[cp] {
			w, l = c, cp
		}
		difficulty, m := cache.Get(w, l)
		if difficulty < best.Difficulty {
			neb, _ := NewNEB(w, l) // w != l always holds here
			best = AssertionAndDifficulty{Assertion: neb, Difficulty: difficulty, Margin: m}
		}
	}

	return best
}

// BestNENFor finds the NEN(c, l, continuing) with the largest margin: l is
// the candidate in continuing\{c} with the lowest restricted tally
// (spec.md §4.4).
func BestNENFor(c int, continuing []int, tbl *vote.Table, cfg auditmodel.Config) (AssertionAndDifficulty, error) {
	tallies := tbl.RestrictedTallies(continuing)

	cIdx := indexOf(continuing, c)
	tw := tallies[cIdx]

	bestIdx := -1
	for i, cand := range continuing {
		if cand == c {
			continue
		}
		if bestIdx == -1 || tallies[i] < tallies[bestIdx] {
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return AssertionAndDifficulty{}, ErrNoOtherContinuingCandidate
	}

	l := continuing[bestIdx]
	tl := tallies[bestIdx]

	difficulty, err := auditmodel.Difficulty(cfg, float64(tw), float64(tl))
	if err != nil {
		return AssertionAndDifficulty{}, err
	}

	nen, err := NewNEN(c, l, continuing)
	if err != nil {
		return AssertionAndDifficulty{}, err
	}

	return AssertionAndDifficulty{Assertion: nen, Difficulty: difficulty, Margin: margin(tw, tl)}, nil
}
