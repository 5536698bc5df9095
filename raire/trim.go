package raire

import (
	"sort"

	"github.com/raire-audit/raire-core/assertion"
	"github.com/raire-audit/raire-core/errs"
	"github.com/raire-audit/raire-core/timeout"
)

// Trim sorts in canonically (spec.md §4.7) and, unless algo is None,
// applies the two-pass heuristic to select the minimal sufficient subset.
// winner is the reported winner a pruning tree is built for every other
// candidate against.
//
// Returns the (possibly unfiltered) canonically-sorted list, whether the
// trim stage's own timeout fired (in which case the list is unfiltered but
// still sorted, per spec.md §5's "recovered locally" policy), and an error
// only for ErrInternalDidntRuleOutLoser or a propagated construction error.
func Trim(in []assertion.AssertionAndDifficulty, winner, numCandidates int, algo TrimAlgorithm, tm *timeout.Handle) ([]assertion.AssertionAndDifficulty, bool, error) {
	sorted := canonicalSort(in)

	if algo == None {
		return sorted, false, nil
	}

	cont := stopImmediately
	if algo == MinimizeAssertions {
		cont = stopOnNEB
	}

	roots := make([]*pruningNode, 0, numCandidates-1)
	for c := 0; c < numCandidates; c++ {
		if c == winner {
			continue
		}
		root, err := buildPruningTree(c, sorted, cont, numCandidates, tm)
		if err != nil {
			if err == errs.ErrTimeoutTrimmingAssertions {
				return sorted, true, nil
			}
			return nil, false, err
		}
		if root.valid {
			return nil, false, errs.ErrInternalDidntRuleOutLoser
		}
		roots = append(roots, root)
	}

	used := make([]bool, len(sorted))
	for _, root := range roots {
		walkForced(root, used)
	}
	for _, root := range roots {
		walkSufficiency(root, used)
	}

	out := make([]assertion.AssertionAndDifficulty, 0, len(sorted))
	for i, a := range sorted {
		if used[i] {
			out = append(out, a)
		}
	}
	return out, false, nil
}

// canonicalSort implements spec.md §4.7's ordering: NEBs before NENs; NEBs
// by (winner, loser); NENs by (|continuing|, winner, loser, lexicographic
// continuing).
func canonicalSort(in []assertion.AssertionAndDifficulty) []assertion.AssertionAndDifficulty {
	out := make([]assertion.AssertionAndDifficulty, len(in))
	copy(out, in)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Assertion, out[j].Assertion
		if a.Kind != b.Kind {
			return a.Kind == assertion.NEBKind
		}
		if a.Kind == assertion.NEBKind {
			if a.Winner != b.Winner {
				return a.Winner < b.Winner
			}
			return a.Loser < b.Loser
		}
		if len(a.Continuing) != len(b.Continuing) {
			return len(a.Continuing) < len(b.Continuing)
		}
		if a.Winner != b.Winner {
			return a.Winner < b.Winner
		}
		if a.Loser != b.Loser {
			return a.Loser < b.Loser
		}
		for k := range a.Continuing {
			if a.Continuing[k] != b.Continuing[k] {
				return a.Continuing[k] < b.Continuing[k]
			}
		}
		return false
	})

	return out
}

// walkForced is trim pass 1 (forced, spec.md §4.7): any leaf node whose
// assertions set is a singleton has that one assertion marked used.
func walkForced(node *pruningNode, used []bool) {
	if len(node.assertions) == 1 && len(node.children) == 0 {
		used[node.assertions[0]] = true
	}
	for _, child := range node.children {
		walkForced(child, used)
	}
}

// walkSufficiency is trim pass 2 (spec.md §4.7), applied post-order so a
// node's "are all my children already eliminated" check sees markings pass 2
// itself made lower in the tree during this same walk.
func walkSufficiency(node *pruningNode, used []bool) {
	for _, child := range node.children {
		walkSufficiency(child, used)
	}

	if len(node.assertions) == 0 {
		return
	}
	for _, idx := range node.assertions {
		if used[idx] {
			return
		}
	}
	if allChildrenEliminated(node, used) {
		return
	}
	used[node.assertions[0]] = true
}

// allChildrenEliminated reports whether every one of node's children is
// eliminated under the current used marking; false if node has no children
// (nothing to rely on).
func allChildrenEliminated(node *pruningNode, used []bool) bool {
	if len(node.children) == 0 {
		return false
	}
	for _, child := range node.children {
		if !isEliminated(child, used) {
			return false
		}
	}
	return true
}

// isEliminated reports whether node is already provably pruned under the
// current used marking: either directly (one of its own assertions is
// used), or recursively (all of its children are eliminated).
func isEliminated(node *pruningNode, used []bool) bool {
	for _, idx := range node.assertions {
		if used[idx] {
			return true
		}
	}
	return allChildrenEliminated(node, used)
}
