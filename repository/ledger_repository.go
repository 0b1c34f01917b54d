package repository

import (
	"context"
	"fmt"
	"time"

	"ecotokens/database"
	"ecotokens/models"
)

// LedgerRepository implements the LedgerRepository interface
type LedgerRepository struct {
	q queryable
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *database.DB) *LedgerRepository {
	return &LedgerRepository{q: db.Pool}
}

// newLedgerRepositoryWithTx creates a new ledger repository with a transaction
func newLedgerRepositoryWithTx(tx queryable) *LedgerRepository {
	return &LedgerRepository{q: tx}
}

// Append records a new ledger entry. The ledger is append-only; there are
// no update or delete operations.
func (r *LedgerRepository) Append(ctx context.Context, entry *models.LedgerEntry) error {
	query := `
		INSERT INTO token_ledger (user_id, entry_date, carbon_saved_kg, tokens_earned)
		VALUES ($1, $2, $3, $4)
		RETURNING id, entry_date, created_at
	`

	err := r.q.QueryRow(ctx, query,
		entry.UserID,
		entry.EntryDate,
		entry.CarbonSavedKG,
		entry.TokensEarned,
	).Scan(&entry.ID, &entry.EntryDate, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to append ledger entry for user %s: %w", entry.UserID, err)
	}

	return nil
}

// GetRecentByUser returns the most recent ledger entries for a user,
// newest first, ordered by recorded time.
func (r *LedgerRepository) GetRecentByUser(ctx context.Context, userID string, limit int) ([]*models.LedgerEntry, error) {
	query := `
		SELECT id, user_id, entry_date, carbon_saved_kg, tokens_earned, created_at
		FROM token_ledger
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries for user %s: %w", userID, err)
	}
	defer rows.Close()

	var entries []*models.LedgerEntry
	for rows.Next() {
		var entry models.LedgerEntry
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.EntryDate,
			&entry.CarbonSavedKG,
			&entry.TokensEarned,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}

	return entries, nil
}

// SumTokensInRange returns the sum of tokens earned by a user for entries
// dated within [from, to], both bounds inclusive. Only the calendar day of
// the bounds is considered.
func (r *LedgerRepository) SumTokensInRange(ctx context.Context, userID string, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(tokens_earned), 0)
		FROM token_ledger
		WHERE user_id = $1 AND entry_date >= $2::date AND entry_date <= $3::date
	`

	var total float64
	err := r.q.QueryRow(ctx, query, userID, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum tokens for user %s in range: %w", userID, err)
	}

	return total, nil
}

// SumTokensAll returns the lifetime sum of tokens earned by a user
func (r *LedgerRepository) SumTokensAll(ctx context.Context, userID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(tokens_earned), 0)
		FROM token_ledger
		WHERE user_id = $1
	`

	var total float64
	err := r.q.QueryRow(ctx, query, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum lifetime tokens for user %s: %w", userID, err)
	}

	return total, nil
}
