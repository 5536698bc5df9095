package raire

import (
	"github.com/raire-audit/raire-core/assertion"
	"github.com/raire-audit/raire-core/errs"
	"github.com/raire-audit/raire-core/timeout"
)

// continuation is the §4.6 recursion policy for a pruning-tree node that was
// itself pruned (some assertion yields Contradiction). It is derived from
// the caller-facing TrimAlgorithm, never exposed directly.
type continuation int

const (
	stopImmediately continuation = iota
	continueOnce
	forever
	stopOnNEB
)

// pruningNode is one node of a per-root pruning tree (spec.md §4.6): the
// elimination-order suffix it represents, which still-relevant assertions
// contradict it, its children (one per unused candidate), and whether this
// node or some descendant survives un-pruned and un-refuted.
type pruningNode struct {
	candidate  int
	suffix     []int
	assertions []int // indices into the assertion slice Trim is working over
	children   []*pruningNode
	valid      bool
}

// buildPruningTree constructs the tree rooted at suffix [root] (spec.md
// §4.6). assertions is the full canonically-sorted list Trim operates over;
// cont is the continuation policy for nodes this one pruned. Returns
// errs.ErrTimeoutTrimmingAssertions if tm fires mid-construction.
func buildPruningTree(root int, assertions []assertion.AssertionAndDifficulty, cont continuation, numCandidates int, tm *timeout.Handle) (*pruningNode, error) {
	relevant := make([]int, len(assertions))
	for i := range assertions {
		relevant[i] = i
	}
	return buildPruningNode([]int{root}, relevant, assertions, cont, numCandidates, tm)
}

func buildPruningNode(suffix []int, relevant []int, assertions []assertion.AssertionAndDifficulty, cont continuation, numCandidates int, tm *timeout.Handle) (*pruningNode, error) {
	if tm.Check() {
		return nil, errs.ErrTimeoutTrimmingAssertions
	}

	node := &pruningNode{candidate: suffix[0], suffix: suffix}

	var pruning, ambiguous []int
	for _, idx := range relevant {
		switch assertions[idx].Assertion.Effect(suffix) {
		case assertion.Contradiction:
			pruning = append(pruning, idx)
		case assertion.NeedsMoreDetail:
			ambiguous = append(ambiguous, idx)
		}
	}
	node.assertions = pruning

	prune := len(pruning) > 0
	hasAmbiguous := len(ambiguous) > 0

	if !prune && !hasAmbiguous {
		// Every still-relevant assertion is (permanently) Ok on this suffix:
		// nothing here or below will ever prune it, so this is a genuine
		// unrefuted failure.
		node.valid = true
		return node, nil
	}

	recurse := false
	childCont := cont
	switch {
	case !prune:
		recurse = true // hasAmbiguous is true here; always recurse (§4.6).
	case cont == stopImmediately:
		recurse = false
	case cont == stopOnNEB:
		recurse = !anyNEB(pruning, assertions)
	case cont == continueOnce:
		recurse = true
		childCont = stopImmediately
	case cont == forever:
		recurse = true
	}

	if !recurse {
		node.valid = false
		return node, nil
	}

	inSuffix := make([]bool, numCandidates)
	for _, c := range suffix {
		inSuffix[c] = true
	}

	var children []*pruningNode
	for x := 0; x < numCandidates; x++ {
		if inSuffix[x] {
			continue
		}
		childSuffix := make([]int, 0, len(suffix)+1)
		childSuffix = append(childSuffix, x)
		childSuffix = append(childSuffix, suffix...)
		child, err := buildPruningNode(childSuffix, ambiguous, assertions, childCont, numCandidates, tm)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	anyChildValid := false
	for _, c := range children {
		if c.valid {
			anyChildValid = true
			break
		}
	}

	if prune {
		// This node's own contradiction already suffices; a descendant
		// reporting valid (possible only because its own "still relevant"
		// set had already dropped this node's pruning assertion) is a
		// false positive of that bookkeeping, not a real failure.
		if anyChildValid {
			children = nil
		}
		node.valid = false
	} else {
		node.valid = anyChildValid
	}
	node.children = children

	return node, nil
}

func anyNEB(indices []int, assertions []assertion.AssertionAndDifficulty) bool {
	for _, idx := range indices {
		if assertions[idx].Assertion.Kind == assertion.NEBKind {
			return true
		}
	}
	return false
}
