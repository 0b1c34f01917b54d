package repository

import (
	"context"
	"fmt"

	"ecotokens/database"
	"ecotokens/models"
	"github.com/jackc/pgx/v5"
)

// AchievementRepository implements the AchievementRepository interface
type AchievementRepository struct {
	q queryable
}

// NewAchievementRepository creates a new achievement repository
func NewAchievementRepository(db *database.DB) *AchievementRepository {
	return &AchievementRepository{q: db.Pool}
}

// newAchievementRepositoryWithTx creates a new achievement repository with a transaction
func newAchievementRepositoryWithTx(tx queryable) *AchievementRepository {
	return &AchievementRepository{q: tx}
}

// Unlock records a badge for a user. The unique constraint on
// (user_id, badge) makes the unlock idempotent: if the badge is already
// present the call is a no-op and nil is returned without error.
func (r *AchievementRepository) Unlock(ctx context.Context, userID string, badge models.Badge) (*models.AchievementRecord, error) {
	query := `
		INSERT INTO token_achievements (user_id, badge)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT token_achievements_user_badge_key DO NOTHING
		RETURNING id, user_id, badge, unlocked_at
	`

	var record models.AchievementRecord
	err := r.q.QueryRow(ctx, query, userID, badge).Scan(
		&record.ID,
		&record.UserID,
		&record.Badge,
		&record.UnlockedAt,
	)

	if err == pgx.ErrNoRows {
		// Already unlocked
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unlock badge %s for user %s: %w", badge, userID, err)
	}

	return &record, nil
}

// GetByUser returns all badges a user has unlocked, oldest first
func (r *AchievementRepository) GetByUser(ctx context.Context, userID string) ([]*models.AchievementRecord, error) {
	query := `
		SELECT id, user_id, badge, unlocked_at
		FROM token_achievements
		WHERE user_id = $1
		ORDER BY unlocked_at ASC, id ASC
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements for user %s: %w", userID, err)
	}
	defer rows.Close()

	var records []*models.AchievementRecord
	for rows.Next() {
		var record models.AchievementRecord
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Badge,
			&record.UnlockedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan achievement record: %w", err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate achievement records: %w", err)
	}

	return records, nil
}
