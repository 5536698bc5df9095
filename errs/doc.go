// Package errs is the closed error taxonomy shared by every RAIRE core
// package (spec.md §2 component 9, §7): input-validity errors, tabulation
// errors, search errors, timeouts, and internal sanity errors.
//
// Centralizing them here — rather than letting each package define its own
// sentinels — mirrors the spec's own framing of the taxonomy as shared
// infrastructure, and avoids every downstream package (vote, irv, assertion,
// raire) re-declaring overlapping variants.
//
// Errors with no payload are plain sentinels, compared with errors.Is.
// Errors that carry data (TiedWinners, WrongWinner, CouldNotRuleOut,
// TimeoutFindingAssertions) are small value types implementing error,
// compared with errors.As, in the same style as the reference library's
// flow.EdgeError.
package errs
