package models

import (
	"time"
)

// LedgerEntry represents a single accepted earning event. Entries are
// append-only: once recorded they are never mutated or deleted.
type LedgerEntry struct {
	ID            int64     `db:"id"`
	UserID        string    `db:"user_id"`
	EntryDate     time.Time `db:"entry_date"` // calendar day, no time component
	CarbonSavedKG float64   `db:"carbon_saved_kg"`
	TokensEarned  float64   `db:"tokens_earned"`
	CreatedAt     time.Time `db:"created_at"`
}
