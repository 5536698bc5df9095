package raire

import "github.com/raire-audit/raire-core/errs"

// Re-exported taxonomy errors (spec.md §7) so a caller of Solve can compare
// against raire.Err* without importing errs directly.
var (
	ErrInvalidNumberOfCandidates = errs.ErrInvalidNumberOfCandidates
	ErrInvalidTimeout            = errs.ErrInvalidTimeout
	ErrInvalidCandidateNumber    = errs.ErrInvalidCandidateNumber

	ErrTimeoutCheckingWinner = errs.ErrTimeoutCheckingWinner

	ErrInternalRuledOutWinner    = errs.ErrInternalRuledOutWinner
	ErrInternalDidntRuleOutLoser = errs.ErrInternalDidntRuleOutLoser
	ErrInternalTrimming          = errs.ErrInternalTrimming
)

// Payload-carrying taxonomy types, aliased under this package's name so
// callers can write raire.TiedWinners, raire.CouldNotRuleOut, etc.
type (
	TiedWinners              = errs.TiedWinners
	WrongWinner              = errs.WrongWinner
	CouldNotRuleOut          = errs.CouldNotRuleOut
	TimeoutFindingAssertions = errs.TimeoutFindingAssertions
)
