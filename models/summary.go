package models

// TokenSummary holds the time-windowed token totals for a user, computed
// fresh from the ledger on every request.
type TokenSummary struct {
	Today    float64 `json:"today"`
	Week     float64 `json:"week"`
	Month    float64 `json:"month"`
	Lifetime float64 `json:"lifetime"`
}

// EarnResult is the outcome of a single accepted earn request
type EarnResult struct {
	TokensEarned  float64
	CarbonSavedKG float64
	Totals        *TokenSummary
	Unlocked      []Badge
}
