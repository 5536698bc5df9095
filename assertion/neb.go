package assertion

import (
	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/vote"
)

// nebDifficultyOn implements NEB(w,l).difficulty_on (spec.md §4.4):
//
//	audit.difficulty(first_pref_tally(w), restricted_tallies({w,l})[1])
//
// with margin = max(0, t_w - t_l).
func nebDifficultyOn(a Assertion, tbl *vote.Table, cfg auditmodel.Config) (float64, int, error) {
	tw := tbl.FirstPrefTally(a.Winner)
	restricted := tbl.RestrictedTallies([]int{a.Winner, a.Loser})
	tl := restricted[1]

	difficulty, err := auditmodel.Difficulty(cfg, float64(tw), float64(tl))
	if err != nil {
		return 0, 0, err
	}

	return difficulty, margin(tw, tl), nil
}

// nebEffect implements NEB(w,l).effect(suffix) (spec.md §4.4): scan the
// suffix from the winner end (rightmost) backward.
//
//   - w found before l  -> Ok (w is eliminated after l, consistent)
//   - l found before w  -> Contradiction (l would survive past w)
//   - neither found     -> NeedsMoreDetail
func nebEffect(a Assertion, suffix []int) SuffixEffect {
	for i := len(suffix) - 1; i >= 0; i-- {
		switch suffix[i] {
		case a.Winner:
			return Ok
		case a.Loser:
			return Contradiction
		}
	}
	return NeedsMoreDetail
}

// margin computes max(0, tw-tl) without signed-integer underflow.
func margin(tw, tl uint64) int {
	if tw <= tl {
		return 0
	}
	return int(tw - tl)
}
