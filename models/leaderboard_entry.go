package models

import (
	"time"
)

// DefaultDisplayName is assigned to leaderboard entries created lazily
// on a user's first accepted earn.
const DefaultDisplayName = "Eco Hero"

// LeaderboardEntry represents a user's running lifetime token total.
// LifetimeTokens only ever grows; there is no spend or debit operation.
type LeaderboardEntry struct {
	ID             int64     `db:"id"`
	UserID         string    `db:"user_id"`
	DisplayName    string    `db:"display_name"`
	LifetimeTokens float64   `db:"lifetime_tokens"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
