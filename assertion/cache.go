package assertion

import (
	"math"

	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/vote"
)

// Cache is the precomputed NEB(w,l) difficulty and margin for every ordered
// candidate pair (spec.md §4.1, §4.5): a dense C×C table instead of a
// nested map, mirroring the reference library's dense-buffer style for
// hot-path pair lookups (tsp/bb.go's `w []float64`).
type Cache struct {
	c          int
	difficulty []float64 // difficulty[w*c+l]
	margin     []int     // margin[w*c+l]
}

// BuildCache computes NEB(w,l) for every ordered pair w != l over tbl under
// cfg. Diagonal entries are (+Inf, 0), matching an assertion that can never
// exist (w == l is invalid).
//
// Complexity: O(C² ) NEB evaluations, each O(|votes|) — same asymptotics as
// scanning the vote table C² times, since RestrictedTallies({w,l}) is a
// single linear pass.
func BuildCache(tbl *vote.Table, cfg auditmodel.Config) (*Cache, error) {
	c := tbl.NumCandidates()
	cache := &Cache{
		c:          c,
		difficulty: make([]float64, c*c),
		margin:     make([]int, c*c),
	}

	for w := 0; w < c; w++ {
		for l := 0; l < c; l++ {
			if w == l {
				cache.difficulty[w*c+l] = math.Inf(1)
				continue
			}
			neb, err := NewNEB(w, l)
			if err != nil {
				return nil, err
			}
			difficulty, m, err := neb.DifficultyOn(tbl, cfg)
			if err != nil {
				return nil, err
			}
			cache.difficulty[w*c+l] = difficulty
			cache.margin[w*c+l] = m
		}
	}

	return cache, nil
}

// Get returns the precomputed (difficulty, margin) of NEB(w,l).
func (c *Cache) Get(w, l int) (difficulty float64, margin int) {
	return c.difficulty[w*c.c+l], c.margin[w*c.c+l]
}
