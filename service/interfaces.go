package service

import (
	"context"
	"time"

	"ecotokens/events"
	"ecotokens/models"
)

// LedgerRepository defines the interface for the append-only token ledger
type LedgerRepository interface {
	// Append records a new ledger entry
	Append(ctx context.Context, entry *models.LedgerEntry) error

	// GetRecentByUser returns the most recent entries for a user, newest first
	GetRecentByUser(ctx context.Context, userID string, limit int) ([]*models.LedgerEntry, error)

	// SumTokensInRange sums tokens earned for entries dated within [from, to], inclusive
	SumTokensInRange(ctx context.Context, userID string, from, to time.Time) (float64, error)

	// SumTokensAll sums all tokens ever earned by a user
	SumTokensAll(ctx context.Context, userID string) (float64, error)
}

// LeaderboardRepository defines the interface for lifetime token totals
type LeaderboardRepository interface {
	// GetByUserID retrieves a leaderboard entry, nil if absent
	GetByUserID(ctx context.Context, userID string) (*models.LeaderboardEntry, error)

	// Create creates a new entry with a zero lifetime total
	Create(ctx context.Context, userID, displayName string) (*models.LeaderboardEntry, error)

	// AddTokens atomically adds to a user's lifetime total and returns the new total
	AddTokens(ctx context.Context, userID string, delta float64) (float64, error)

	// Top returns up to limit entries ordered by lifetime tokens descending
	Top(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}

// AchievementRepository defines the interface for badge unlock records
type AchievementRepository interface {
	// Unlock idempotently records a badge; nil record means already unlocked
	Unlock(ctx context.Context, userID string, badge models.Badge) (*models.AchievementRecord, error)

	// GetByUser returns all badges a user has unlocked
	GetByUser(ctx context.Context, userID string) ([]*models.AchievementRecord, error)
}

// RewardsService defines the interface for earning and totals operations
type RewardsService interface {
	// EarnTokens validates a savings report, converts it to tokens and
	// records it as one atomic business transaction
	EarnTokens(ctx context.Context, userID string, carbonSavedKG float64) (*models.EarnResult, error)

	// Summarize computes the today/week/month/lifetime totals fresh from the ledger
	Summarize(ctx context.Context, userID string, asOf time.Time) (*models.TokenSummary, error)

	// GetHistory returns the most recent ledger entries for a user, newest first
	GetHistory(ctx context.Context, userID string, limit int) ([]*models.LedgerEntry, error)
}

// LeaderboardService defines the interface for leaderboard queries
type LeaderboardService interface {
	// Top returns the highest lifetime token totals, descending
	Top(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error)
}

// AchievementService defines the interface for achievement queries
type AchievementService interface {
	// GetUserAchievements returns all badges a user has unlocked
	GetUserAchievements(ctx context.Context, userID string) ([]*models.AchievementRecord, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	LedgerRepository() LedgerRepository
	LeaderboardRepository() LeaderboardRepository
	AchievementRepository() AchievementRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// Create creates a new UnitOfWork instance
	Create() UnitOfWork
}
