// Package auditmodel maps a winner/loser tally pair to a non-negative
// difficulty estimate under a chosen risk-limiting-audit effort model.
//
// Difficulty is monotonically decreasing in margin: a wider margin between
// the two tallies is always easier (or equal) to audit. All four supported
// models agree on one thing — a non-positive margin (winner's tally not
// strictly ahead) is infinitely difficult, since no audit sample size rules
// out the reported outcome.
//
// Variants (spec.md §4.3):
//
//	OneOnMargin(T)              T / (w - l)
//	OneOnMarginSquared(T)       (T / (w - l))^2
//	BallotComparisonMACRO(a,g,T) -ln(a) * 2*g*T / (w - l)
//	BallotPollingBRAVO(a,T)     derived from the BRAVO SPRT statistic
package auditmodel
