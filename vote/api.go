package vote

// NewTable validates votes against numCandidates and builds an immutable
// Table, pre-computing first-preference tallies.
//
// Validation (numCandidates first, then vote by vote; first failure wins):
//  1. numCandidates must be ≥ 1 (ErrInvalidNumberOfCandidates).
//  2. the Vote must have Multiplicity ≥ 1 (ErrNonPositiveMultiplicity).
//  3. the Vote must have a non-empty Prefs (ErrEmptyPreferences).
//  4. each Prefs entry, in turn, must lie in [0, numCandidates)
//     (ErrInvalidCandidateNumber) and must not repeat an earlier entry
//     (ErrDuplicatePreference).
//
// Complexity: O(total preference entries).
func NewTable(votes []Vote, numCandidates int) (*Table, error) {
	if numCandidates < 1 {
		return nil, ErrInvalidNumberOfCandidates
	}

	firstPrefs := make([]uint64, numCandidates)
	var total uint64
	seen := make([]bool, numCandidates) // reused per-vote duplicate-check scratch

	for i := range votes {
		v := &votes[i]
		if v.Multiplicity < 1 {
			return nil, ErrNonPositiveMultiplicity
		}
		if len(v.Prefs) == 0 {
			return nil, ErrEmptyPreferences
		}
		for _, c := range v.Prefs {
			if c < 0 || c >= numCandidates {
				return nil, ErrInvalidCandidateNumber
			}
			if seen[c] {
				// reset what we've marked so far before returning
				for _, c2 := range v.Prefs {
					seen[c2] = false
				}
				return nil, ErrDuplicatePreference
			}
			seen[c] = true
		}
		for _, c := range v.Prefs {
			seen[c] = false
		}

		firstPrefs[v.Prefs[0]] += v.Multiplicity
		total += v.Multiplicity
	}

	// copy the caller's slice so later changes to its Vote values do not
	// reach Table (Prefs backing arrays are still shared)
	owned := make([]Vote, len(votes))
	copy(owned, votes)

	return &Table{
		numCandidates: numCandidates,
		votes:         owned,
		totalVotes:    total,
		firstPrefs:    firstPrefs,
	}, nil
}

// NumCandidates returns the size of the candidate universe, C.
func (t *Table) NumCandidates() int { return t.numCandidates }

// TotalVotes returns the sum of Multiplicity across all votes.
func (t *Table) TotalVotes() uint64 { return t.totalVotes }

// Votes returns the table's consolidated ballots. The returned slice must not
// be mutated by the caller; Table retains ownership.
func (t *Table) Votes() []Vote { return t.votes }

// FirstPrefTally returns the sum of Multiplicity over votes whose top
// preference is c. O(1).
func (t *Table) FirstPrefTally(c int) uint64 {
	return t.firstPrefs[c]
}

// RestrictedTallies computes, for each candidate in continuing (in the given
// order), the sum of Multiplicity over votes whose highest-ranked candidate
// that belongs to continuing is that candidate. A vote with no preference in
// continuing contributes nothing to any entry.
//
// This is the IRV tabulator's core primitive: "if only these candidates were
// still standing, who gets each vote's support?"
//
// Complexity: O(total preference entries examined, bounded by the first hit
// in continuing per vote) + O(|continuing|) for the position lookup table.
func (t *Table) RestrictedTallies(continuing []int) []uint64 {
	tallies := make([]uint64, len(continuing))
	if len(continuing) == 0 {
		return tallies
	}

	// position[c] = index of c within `continuing`, or -1 if c is not continuing.
	position := make([]int, t.numCandidates)
	for i := range position {
		position[i] = -1
	}
	for i, c := range continuing {
		position[c] = i
	}

	for i := range t.votes {
		v := &t.votes[i]
		for _, c := range v.Prefs {
			if pos := position[c]; pos >= 0 {
				tallies[pos] += v.Multiplicity
				break
			}
		}
	}

	return tallies
}
