package api

import (
	"context"
	"time"

	"ecotokens/models"

	"github.com/stretchr/testify/mock"
)

type mockRewardsService struct {
	mock.Mock
}

func (m *mockRewardsService) EarnTokens(ctx context.Context, userID string, carbonSavedKG float64) (*models.EarnResult, error) {
	args := m.Called(ctx, userID, carbonSavedKG)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EarnResult), args.Error(1)
}

func (m *mockRewardsService) Summarize(ctx context.Context, userID string, asOf time.Time) (*models.TokenSummary, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenSummary), args.Error(1)
}

func (m *mockRewardsService) GetHistory(ctx context.Context, userID string, limit int) ([]*models.LedgerEntry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LedgerEntry), args.Error(1)
}

type mockLeaderboardService struct {
	mock.Mock
}

func (m *mockLeaderboardService) Top(ctx context.Context, limit int) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

type mockAchievementService struct {
	mock.Mock
}

func (m *mockAchievementService) GetUserAchievements(ctx context.Context, userID string) ([]*models.AchievementRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AchievementRecord), args.Error(1)
}
