package service

import (
	"context"
	"fmt"
	"time"

	"ecotokens/config"
	"ecotokens/events"
	"ecotokens/models"
)

// rewardsService implements the RewardsService interface
type rewardsService struct {
	uowFactory       UnitOfWorkFactory
	tokensPerKG      float64
	maxSavingsPerDay float64
}

// NewRewardsService creates a new rewards service
func NewRewardsService(uowFactory UnitOfWorkFactory, cfg *config.Config) RewardsService {
	return &rewardsService{
		uowFactory:       uowFactory,
		tokensPerKG:      cfg.TokensPerKG,
		maxSavingsPerDay: cfg.MaxSavingsPerDay,
	}
}

// EarnTokens validates a savings report, converts it to tokens and records
// it. The ledger append, leaderboard increment and achievement unlocks run
// in one transaction: if any step fails nothing is visible. Validation
// failures return before any repository is touched.
func (s *rewardsService) EarnTokens(ctx context.Context, userID string, carbonSavedKG float64) (*models.EarnResult, error) {
	if err := ValidateSavings(carbonSavedKG, s.maxSavingsPerDay); err != nil {
		return nil, err
	}

	tokens := TokensFor(carbonSavedKG, s.tokensPerKG)
	today := DateOf(time.Now().UTC())

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback() // No-op if already committed

	entry := &models.LedgerEntry{
		UserID:        userID,
		EntryDate:     today,
		CarbonSavedKG: carbonSavedKG,
		TokensEarned:  tokens,
	}
	if err := uow.LedgerRepository().Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	// Lazily create the leaderboard entry on a user's first accepted earn
	lbEntry, err := uow.LeaderboardRepository().GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard entry: %w", err)
	}
	if lbEntry == nil {
		if _, err := uow.LeaderboardRepository().Create(ctx, userID, models.DefaultDisplayName); err != nil {
			return nil, fmt.Errorf("failed to create leaderboard entry: %w", err)
		}
		uow.EventBus().Publish(events.UserRegisteredEvent{
			UserID:      userID,
			DisplayName: models.DefaultDisplayName,
		})
	}

	lifetime, err := uow.LeaderboardRepository().AddTokens(ctx, userID, tokens)
	if err != nil {
		return nil, fmt.Errorf("failed to add tokens to leaderboard: %w", err)
	}

	unlocked, err := UnlockEligibleBadges(ctx, uow, userID, lifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to check achievements: %w", err)
	}

	uow.EventBus().Publish(events.TokensEarnedEvent{
		UserID:         userID,
		CarbonSavedKG:  carbonSavedKG,
		TokensEarned:   tokens,
		LifetimeTokens: lifetime,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	totals, err := s.Summarize(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize totals: %w", err)
	}

	return &models.EarnResult{
		TokensEarned:  tokens,
		CarbonSavedKG: carbonSavedKG,
		Totals:        totals,
		Unlocked:      unlocked,
	}, nil
}

// Summarize computes the four window totals fresh from the ledger.
// Today covers entries dated exactly asOf, week the inclusive 7-day window
// ending at asOf, month from the first of asOf's month through asOf.
func (s *rewardsService) Summarize(ctx context.Context, userID string, asOf time.Time) (*models.TokenSummary, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	ledger := uow.LedgerRepository()
	day := DateOf(asOf)

	today, err := ledger.SumTokensInRange(ctx, userID, day, day)
	if err != nil {
		return nil, fmt.Errorf("failed to sum today's tokens: %w", err)
	}

	week, err := ledger.SumTokensInRange(ctx, userID, WeekStart(asOf), day)
	if err != nil {
		return nil, fmt.Errorf("failed to sum weekly tokens: %w", err)
	}

	month, err := ledger.SumTokensInRange(ctx, userID, MonthStart(asOf), day)
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly tokens: %w", err)
	}

	lifetime, err := ledger.SumTokensAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum lifetime tokens: %w", err)
	}

	return &models.TokenSummary{
		Today:    today,
		Week:     week,
		Month:    month,
		Lifetime: lifetime,
	}, nil
}

// GetHistory returns the most recent ledger entries for a user, newest first
func (s *rewardsService) GetHistory(ctx context.Context, userID string, limit int) ([]*models.LedgerEntry, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	entries, err := uow.LedgerRepository().GetRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger history: %w", err)
	}

	return entries, nil
}
