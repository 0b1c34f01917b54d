package testutil

import (
	"context"
	"testing"
	"time"

	"ecotokens/database"
	"ecotokens/models"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// CreateTestLedgerEntry creates a ledger entry with tokens derived at the
// default 10 tokens/kg rate
func CreateTestLedgerEntry(userID string, day time.Time, carbonSavedKG float64) *models.LedgerEntry {
	return &models.LedgerEntry{
		UserID:        userID,
		EntryDate:     day,
		CarbonSavedKG: carbonSavedKG,
		TokensEarned:  carbonSavedKG * 10,
	}
}

// CreateTestLedgerEntryWithTokens creates a ledger entry with an explicit token amount
func CreateTestLedgerEntryWithTokens(userID string, day time.Time, carbonSavedKG, tokens float64) *models.LedgerEntry {
	entry := CreateTestLedgerEntry(userID, day, carbonSavedKG)
	entry.TokensEarned = tokens
	return entry
}

// SeedLedgerEntries inserts ledger entries in a single transaction
func SeedLedgerEntries(t *testing.T, db *database.DB, entries []*models.LedgerEntry) {
	ctx := context.Background()

	err := db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for _, entry := range entries {
			_, err := tx.Exec(ctx,
				`INSERT INTO token_ledger (user_id, entry_date, carbon_saved_kg, tokens_earned)
				 VALUES ($1, $2, $3, $4)`,
				entry.UserID, entry.EntryDate, entry.CarbonSavedKG, entry.TokensEarned,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

// Day is shorthand for a calendar date in UTC
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
