package service

import (
	"context"
	"fmt"

	"ecotokens/events"
	"ecotokens/models"
)

// BadgeCatalog is the ordered list of badges and their lifetime-token
// thresholds. Thresholds strictly ascend, so evaluation stops at the first
// badge the user has not reached.
var BadgeCatalog = []models.BadgeThreshold{
	{Badge: models.BadgeGreenStarter, Threshold: 100},
	{Badge: models.BadgeEcoWarrior, Threshold: 1000},
	{Badge: models.BadgeZeroCarbonHero, Threshold: 10000},
}

// UnlockEligibleBadges unlocks every badge whose threshold the lifetime
// total has crossed and returns only the newly unlocked ones. This is the
// single entry point for badge unlocks; the repository's unique constraint
// keeps repeat calls idempotent.
func UnlockEligibleBadges(ctx context.Context, uow UnitOfWork, userID string, lifetimeTokens float64) ([]models.Badge, error) {
	var unlocked []models.Badge
	for _, bt := range BadgeCatalog {
		if lifetimeTokens < bt.Threshold {
			break
		}

		record, err := uow.AchievementRepository().Unlock(ctx, userID, bt.Badge)
		if err != nil {
			return nil, fmt.Errorf("failed to unlock badge %s: %w", bt.Badge, err)
		}
		if record == nil {
			// Already unlocked on an earlier earn
			continue
		}

		unlocked = append(unlocked, bt.Badge)
		uow.EventBus().Publish(events.BadgeUnlockedEvent{
			UserID:         userID,
			Badge:          bt.Badge,
			LifetimeTokens: lifetimeTokens,
		})
	}
	return unlocked, nil
}

// achievementService implements the AchievementService interface
type achievementService struct {
	uowFactory UnitOfWorkFactory
}

// NewAchievementService creates a new achievement service
func NewAchievementService(uowFactory UnitOfWorkFactory) AchievementService {
	return &achievementService{
		uowFactory: uowFactory,
	}
}

// GetUserAchievements returns all badges a user has unlocked
func (s *achievementService) GetUserAchievements(ctx context.Context, userID string) ([]*models.AchievementRecord, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	records, err := uow.AchievementRepository().GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}

	return records, nil
}
