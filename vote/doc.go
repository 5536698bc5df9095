// Package vote defines the immutable Table of consolidated ranked-choice
// ballots that every other RAIRE package reads from.
//
// A Table never mutates after construction: NewTable validates every
// preference and pre-computes first-preference tallies once, so that
// Table.FirstPrefTally is O(1) and Table.RestrictedTallies is the only
// operation that re-scans the ballots (it must, since "the highest-ranked
// continuing candidate" depends on the caller-supplied continuing set).
//
// Consolidation (deduplicating identical rankings into a single Vote with a
// multiplicity) is the caller's responsibility — it is an out-of-scope
// external collaborator. Table assumes it is handed already-consolidated
// votes, but does not depend on that for correctness: duplicate or
// unconsolidated Votes still tally correctly, just less efficiently.
package vote
