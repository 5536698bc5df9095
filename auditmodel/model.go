package auditmodel

import (
	"errors"
	"math"
)

// ErrNonPositiveTotalBallots indicates a Config's TotalBallots (T) is ≤ 0;
// every supported model requires T > 0 (spec.md §4.3).
var ErrNonPositiveTotalBallots = errors.New("auditmodel: total ballots (T) must be positive")

// Kind selects which audit-effort model Difficulty evaluates.
type Kind int

const (
	// OneOnMargin is T / (w - l).
	OneOnMargin Kind = iota

	// OneOnMarginSquared is (T / (w - l))^2.
	OneOnMarginSquared

	// MACRO is the ballot-comparison MACRO model:
	// -ln(Alpha) * 2*Gamma*T / (w - l).
	MACRO

	// BRAVO is the ballot-polling BRAVO SPRT-derived model.
	BRAVO
)

// Config bundles a Kind with the parameters its formula needs. Only the
// fields relevant to Kind are read; the rest are ignored. This mirrors the
// reference library's single-Options-struct-covers-every-variant pattern
// (tsp.Options covers every Algorithm).
type Config struct {
	Kind Kind

	// TotalBallots (T) is the ballots cast in the contest; required > 0 by
	// every variant.
	TotalBallots float64

	// Alpha is the risk limit, 0 < Alpha < 1. Used by MACRO and BRAVO.
	Alpha float64

	// Gamma is the MACRO inflation factor, Gamma ≥ 1. Used by MACRO only.
	Gamma float64
}

// Difficulty computes the audit difficulty for an assertion whose reported
// winner tally is wTally and whose reported loser tally is lTally, under cfg.
//
// Returns +Inf whenever wTally ≤ lTally, regardless of Kind: a non-positive
// margin can never be ruled out by any of these models.
//
// Returns an error if cfg.TotalBallots ≤ 0.
func Difficulty(cfg Config, wTally, lTally float64) (float64, error) {
	if cfg.TotalBallots <= 0 {
		return 0, ErrNonPositiveTotalBallots
	}
	if wTally <= lTally {
		return math.Inf(1), nil
	}

	margin := wTally - lTally
	T := cfg.TotalBallots

	switch cfg.Kind {
	case OneOnMargin:
		return T / margin, nil
	case OneOnMarginSquared:
		ratio := T / margin
		return ratio * ratio, nil
	case MACRO:
		return -math.Log(cfg.Alpha) * 2 * cfg.Gamma * T / margin, nil
	case BRAVO:
		return bravoDifficulty(cfg.Alpha, T, wTally, lTally), nil
	default:
		return math.Inf(1), nil
	}
}

// bravoDifficulty implements the BRAVO ballot-polling SPRT expected-sample-size
// formula (spec.md §4.3):
//
//	s = w / (w + l)
//	numerator   = 0.5*ln(2s) - ln(alpha)
//	denominator = (w*ln(2s) + l*ln(2-2s)) / T
//	difficulty  = numerator / denominator
func bravoDifficulty(alpha, T, w, l float64) float64 {
	s := w / (w + l)
	numerator := 0.5*math.Log(2*s) - math.Log(alpha)
	denominator := (w*math.Log(2*s) + l*math.Log(2-2*s)) / T

	return numerator / denominator
}
