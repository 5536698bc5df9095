package assertion

import (
	"sort"

	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/vote"
)

// nenDifficultyOn implements NEN(w,l,S).difficulty_on (spec.md §4.4):
//
//	audit.difficulty(tallies_within_S[w], tallies_within_S[l])
func nenDifficultyOn(a Assertion, tbl *vote.Table, cfg auditmodel.Config) (float64, int, error) {
	within := tbl.RestrictedTallies(a.Continuing)

	wIdx := indexOf(a.Continuing, a.Winner)
	lIdx := indexOf(a.Continuing, a.Loser)
	tw, tl := within[wIdx], within[lIdx]

	difficulty, err := auditmodel.Difficulty(cfg, float64(tw), float64(tl))
	if err != nil {
		return 0, 0, err
	}

	return difficulty, margin(tw, tl), nil
}

// nenEffect implements NEN(w,l,S).effect(suffix) (spec.md §4.4).
//
// Let m = |S| and T be the last m entries of suffix (or the whole suffix if
// it is shorter than m):
//
//   - if any element of T is not in S                -> Ok
//   - else if |suffix| >= m and T[0] == w             -> Contradiction
//   - else if |suffix| >= m                           -> Ok
//   - else (suffix is a proper prefix of an m-tail):
//   - if w appears in T                             -> Ok
//   - else                                           -> NeedsMoreDetail
func nenEffect(a Assertion, suffix []int) SuffixEffect {
	m := len(a.Continuing)
	tail := suffix
	if len(tail) > m {
		tail = tail[len(tail)-m:]
	}

	for _, c := range tail {
		if !inSorted(a.Continuing, c) {
			return Ok
		}
	}

	if len(suffix) >= m {
		if len(tail) > 0 && tail[0] == a.Winner {
			return Contradiction
		}
		return Ok
	}

	for _, c := range tail {
		if c == a.Winner {
			return Ok
		}
	}
	return NeedsMoreDetail
}

func inSorted(s []int, v int) bool {
	i := sort.SearchInts(s, v)
	return i < len(s) && s[i] == v
}

func indexOf(s []int, v int) int {
	for i, c := range s {
		if c == v {
			return i
		}
	}
	return -1
}
