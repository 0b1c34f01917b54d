package service

import (
	"math"
)

// TokensFor converts a validated savings amount into tokens at the given
// linear rate, rounded to 2 decimal places. Deterministic, no side effects.
func TokensFor(carbonSavedKG, tokensPerKG float64) float64 {
	return math.Round(carbonSavedKG*tokensPerKG*100) / 100
}
