package raire

import (
	"container/heap"
	"math"
	"sort"

	"github.com/raire-audit/raire-core/assertion"
	"github.com/raire-audit/raire-core/auditmodel"
	"github.com/raire-audit/raire-core/errs"
	"github.com/raire-audit/raire-core/irv"
	"github.com/raire-audit/raire-core/timeout"
	"github.com/raire-audit/raire-core/vote"
)

// frontierEntry is a single suffix under active consideration (spec.md §3
// "Frontier entry"). pi grows by prepending, so pi[0] is the most recently
// fixed (earliest-eliminated) candidate and the tail pi[1:] are candidates
// already known to survive past it.
//
// diveDone/diveCandidate track the one-time dive (§4.5.d): once an entry has
// been dived from, it is never dived from again, but the single candidate
// used is remembered so normal expansion (§4.5.e) does not redundantly
// explore it a second time.
type frontierEntry struct {
	pi              []int
	bestAncestorLen int
	bestAssertion   assertion.AssertionAndDifficulty

	diveDone      bool
	diveCandidate int // -1 if no dive has used this entry yet

	deleted bool // lazily skipped on pop, mirroring dijkstra's stale-entry discipline
}

func (e *frontierEntry) difficulty() float64 { return e.bestAssertion.Difficulty }

// frontierPQ is a max-heap on difficulty (largest first), the inverse of
// dijkstra's nodePQ (min-heap on distance): same Push/Pop/lazy-delete shape,
// opposite Less direction.
type frontierPQ []*frontierEntry

func (pq frontierPQ) Len() int            { return len(pq) }
func (pq frontierPQ) Less(i, j int) bool  { return pq[i].difficulty() > pq[j].difficulty() }
func (pq frontierPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierEntry)) }
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// searchEngine bundles runRaire's mutable state, mirroring the reference
// library's bbEngine pattern of one struct holding every piece of search
// state instead of threading it through closures.
type searchEngine struct {
	tbl   *vote.Table
	cache *assertion.Cache
	cfg   auditmodel.Config
	tm    *timeout.Handle

	winner        int
	numCandidates int
	elimOrder     []int // full order from irv.Tabulate, winner last

	pq         frontierPQ
	lowerBound float64
	assertions []assertion.AssertionAndDifficulty

	stats Stats
}

// runRaire is the §4.5 frontier search. tab must be the already-computed
// tabulation for tbl; cache the already-built NEB cache.
func runRaire(tbl *vote.Table, tab *irv.Result, cache *assertion.Cache, cfg auditmodel.Config, tm *timeout.Handle, lowerBoundSeed float64) ([]assertion.AssertionAndDifficulty, Stats, error) {
	winner := tab.Winner()
	s := &searchEngine{
		tbl:           tbl,
		cache:         cache,
		cfg:           cfg,
		tm:            tm,
		winner:        winner,
		numCandidates: tbl.NumCandidates(),
		elimOrder:     tab.EliminationOrder,
		lowerBound:    lowerBoundSeed,
	}
	heap.Init(&s.pq)

	for c := 0; c < s.numCandidates; c++ {
		if c == winner {
			continue
		}
		pi := []int{c}
		best, err := s.findBest(pi)
		if err != nil {
			return nil, Stats{}, err
		}
		heap.Push(&s.pq, &frontierEntry{
			pi:              pi,
			bestAncestorLen: 1,
			bestAssertion:   best,
			diveCandidate:   -1,
		})
	}

	for {
		e := s.popLive()
		if e == nil {
			return s.assertions, s.stats, nil
		}
		if s.tm.Check() {
			return nil, Stats{}, &errs.TimeoutFindingAssertions{
				DifficultyAtStop: math.Max(e.difficulty(), s.lowerBound),
			}
		}

		if e.difficulty() <= s.lowerBound {
			s.commit(e)
			continue
		}

		committedStart := false
		if !e.diveDone {
			var err error
			committedStart, err = s.dive(e)
			if err != nil {
				return nil, Stats{}, err
			}
		}
		if committedStart {
			continue
		}

		if err := s.expand(e); err != nil {
			return nil, Stats{}, err
		}
	}
}

// popLive pops entries until it finds one that was not lazily deleted by an
// earlier commit, or the frontier is empty.
func (s *searchEngine) popLive() *frontierEntry {
	for s.pq.Len() > 0 {
		e := heap.Pop(&s.pq).(*frontierEntry)
		if !e.deleted {
			return e
		}
	}
	return nil
}

// findBest is find_best(pi) (spec.md §4.4/§4.5 step 3): the cheaper of
// best_NEB_for(pi[0], pi[1:], ...) and best_NEN_for(pi[0], pi, ...).
func (s *searchEngine) findBest(pi []int) (assertion.AssertionAndDifficulty, error) {
	c := pi[0]
	tail := pi[1:]

	neb := assertion.BestNEBFor(c, tail, s.cache, s.numCandidates)

	continuing := sortedSet(pi)
	nen := assertion.AssertionAndDifficulty{Difficulty: math.Inf(1)}
	if len(continuing) >= 2 {
		best, err := assertion.BestNENFor(c, continuing, s.tbl, s.cfg)
		if err == nil {
			nen = best
		} else if err != assertion.ErrNoOtherContinuingCandidate {
			return assertion.AssertionAndDifficulty{}, err
		}
	}

	if nen.Difficulty < neb.Difficulty {
		return nen, nil
	}
	return neb, nil
}

// extend is extend(e, x) (spec.md §4.5.d/e): prepend x to e.pi and keep the
// better of e's current (best_ancestor_length, best_assertion) or a fresh
// find_best over the longer suffix.
func (s *searchEngine) extend(e *frontierEntry, x int) (*frontierEntry, error) {
	pi := make([]int, 0, len(e.pi)+1)
	pi = append(pi, x)
	pi = append(pi, e.pi...)

	best, err := s.findBest(pi)
	if err != nil {
		return nil, err
	}

	bestAncestorLen := e.bestAncestorLen
	bestAssertion := e.bestAssertion
	if best.Difficulty < bestAssertion.Difficulty {
		bestAncestorLen = len(pi)
		bestAssertion = best
	}

	return &frontierEntry{
		pi:              pi,
		bestAncestorLen: bestAncestorLen,
		bestAssertion:   bestAssertion,
		diveCandidate:   -1,
	}, nil
}

// dive performs the one-shot deepening chain of §4.5.d. It returns true if
// start itself ended up committed (in which case the caller must skip normal
// expansion of start and return straight to the outer loop).
func (s *searchEngine) dive(start *frontierEntry) (bool, error) {
	diveOrder := reverseExcluding(s.elimOrder, start.pi)

	cur := start
	for _, x := range diveOrder {
		next, err := s.extend(cur, x)
		if err != nil {
			return false, err
		}

		cur.diveDone = true
		cur.diveCandidate = x
		heap.Push(&s.pq, cur)

		if next.difficulty() <= s.lowerBound {
			s.commit(next)
			return false, nil
		}

		if len(next.pi) == s.numCandidates {
			if err := s.leafRule(next); err != nil {
				return false, err
			}
			if start.difficulty() <= s.lowerBound {
				s.commit(start)
				return true, nil
			}
			return false, nil
		}

		cur = next
	}

	// Unreachable: diveOrder has exactly numCandidates-len(start.pi) entries,
	// and each iteration grows pi by one, so the last iteration always hits
	// the |pi| == numCandidates branch above and returns.
	return false, nil
}

// expand is normal expansion (spec.md §4.5.e): push extend(e,x) for every x
// not already in e.pi and not e.diveCandidate (already explored via dive).
func (s *searchEngine) expand(e *frontierEntry) error {
	inPi := make([]bool, s.numCandidates)
	for _, c := range e.pi {
		inPi[c] = true
	}

	for x := 0; x < s.numCandidates; x++ {
		if inPi[x] || x == e.diveCandidate {
			continue
		}
		next, err := s.extend(e, x)
		if err != nil {
			return err
		}
		if len(next.pi) == s.numCandidates {
			if err := s.leafRule(next); err != nil {
				return err
			}
		} else {
			heap.Push(&s.pq, next)
		}
	}
	return nil
}

// leafRule is §4.5.2: a full-length suffix with +Inf difficulty can never be
// ruled out; otherwise it raises the lower bound and commits.
func (s *searchEngine) leafRule(e *frontierEntry) error {
	if math.IsInf(e.difficulty(), 1) {
		return &errs.CouldNotRuleOut{Suffix: e.pi}
	}
	if e.difficulty() > s.lowerBound {
		s.lowerBound = e.difficulty()
	}
	s.commit(e)
	return nil
}

// commit is §4.5.1: add e's assertion (skipping an exact duplicate) and
// lazily delete every frontier entry whose pi has e's best-ancestor suffix
// as its own suffix.
func (s *searchEngine) commit(e *frontierEntry) {
	suffix := e.pi[len(e.pi)-e.bestAncestorLen:]

	for _, a := range s.assertions {
		if a.Assertion.Equal(e.bestAssertion.Assertion) {
			s.stats.EntriesPruned++
			return
		}
	}
	s.assertions = append(s.assertions, e.bestAssertion)
	s.stats.EntriesCommitted++

	for _, other := range s.pq {
		if !other.deleted && hasSuffix(other.pi, suffix) {
			other.deleted = true
			s.stats.EntriesPruned++
		}
	}
}

// hasSuffix reports whether pi ends with suffix, elementwise.
func hasSuffix(pi, suffix []int) bool {
	if len(pi) < len(suffix) {
		return false
	}
	offset := len(pi) - len(suffix)
	for i, v := range suffix {
		if pi[offset+i] != v {
			return false
		}
	}
	return true
}

// sortedSet returns the sorted, duplicate-free candidates of pi, used as the
// NEN continuing set at every frontier entry: the candidates of pi are the
// last len(pi) standing, and pi[0] is the next eliminated among them.
func sortedSet(pi []int) []int {
	seen := make(map[int]bool, len(pi))
	out := make([]int, 0, len(pi))
	for _, c := range pi {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Ints(out)
	return out
}

// reverseExcluding returns order reversed, filtered to drop any candidate
// already present in exclude, preserving relative order otherwise.
func reverseExcluding(order, exclude []int) []int {
	excluded := make(map[int]bool, len(exclude))
	for _, c := range exclude {
		excluded[c] = true
	}
	out := make([]int, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		if !excluded[order[i]] {
			out = append(out, order[i])
		}
	}
	return out
}
