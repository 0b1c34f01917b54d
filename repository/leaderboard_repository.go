package repository

import (
	"context"
	"fmt"

	"ecotokens/database"
	"ecotokens/models"
	"github.com/jackc/pgx/v5"
)

// LeaderboardRepository implements the LeaderboardRepository interface
type LeaderboardRepository struct {
	q queryable
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *database.DB) *LeaderboardRepository {
	return &LeaderboardRepository{q: db.Pool}
}

// newLeaderboardRepositoryWithTx creates a new leaderboard repository with a transaction
func newLeaderboardRepositoryWithTx(tx queryable) *LeaderboardRepository {
	return &LeaderboardRepository{q: tx}
}

// GetByUserID retrieves a leaderboard entry by user ID
func (r *LeaderboardRepository) GetByUserID(ctx context.Context, userID string) (*models.LeaderboardEntry, error) {
	query := `
		SELECT id, user_id, display_name, lifetime_tokens, created_at, updated_at
		FROM token_leaderboard
		WHERE user_id = $1
	`

	var entry models.LeaderboardEntry
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.DisplayName,
		&entry.LifetimeTokens,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard entry for user %s: %w", userID, err)
	}

	return &entry, nil
}

// Create creates a new leaderboard entry with a zero lifetime total
func (r *LeaderboardRepository) Create(ctx context.Context, userID, displayName string) (*models.LeaderboardEntry, error) {
	query := `
		INSERT INTO token_leaderboard (user_id, display_name)
		VALUES ($1, $2)
		RETURNING id, user_id, display_name, lifetime_tokens, created_at, updated_at
	`

	var entry models.LeaderboardEntry
	err := r.q.QueryRow(ctx, query, userID, displayName).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.DisplayName,
		&entry.LifetimeTokens,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create leaderboard entry for user %s: %w", userID, err)
	}

	return &entry, nil
}

// AddTokens adds tokens to a user's lifetime total atomically and returns
// the new total. The single-statement increment row-locks the entry, so
// concurrent earns for the same user serialize without lost updates.
func (r *LeaderboardRepository) AddTokens(ctx context.Context, userID string, delta float64) (float64, error) {
	if delta < 0 {
		return 0, fmt.Errorf("token delta must not be negative")
	}

	query := `
		UPDATE token_leaderboard
		SET lifetime_tokens = lifetime_tokens + $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING lifetime_tokens
	`

	var lifetime float64
	err := r.q.QueryRow(ctx, query, delta, userID).Scan(&lifetime)
	if err == pgx.ErrNoRows {
		return 0, fmt.Errorf("leaderboard entry for user %s not found", userID)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to add tokens for user %s: %w", userID, err)
	}

	return lifetime, nil
}

// Top returns up to limit entries ordered by lifetime tokens descending.
// Ties are broken by insertion order, first-created first.
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	query := `
		SELECT id, user_id, display_name, lifetime_tokens, created_at, updated_at
		FROM token_leaderboard
		ORDER BY lifetime_tokens DESC, id ASC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.DisplayName,
			&entry.LifetimeTokens,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %w", err)
	}

	return entries, nil
}
