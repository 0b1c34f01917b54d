package service

import (
	"context"
	"errors"
	"testing"

	"ecotokens/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_Top(t *testing.T) {
	leaderboardRepo := &MockLeaderboardRepository{}
	uow := &MockUnitOfWork{}
	uow.SetRepositories(nil, leaderboardRepo, nil, nil)
	factory := &MockUnitOfWorkFactory{}
	factory.On("Create").Return(uow)

	ctx := context.Background()
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback").Return(nil)

	entries := []*models.LeaderboardEntry{
		{UserID: "alice", DisplayName: "Eco Hero", LifetimeTokens: 300},
		{UserID: "bob", DisplayName: "Eco Hero", LifetimeTokens: 100},
	}
	leaderboardRepo.On("Top", ctx, 20).Return(entries, nil)

	svc := NewLeaderboardService(factory)
	got, err := svc.Top(ctx, 20)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
	leaderboardRepo.AssertExpectations(t)
}

func TestLeaderboardService_Top_RejectsNonPositiveLimit(t *testing.T) {
	factory := &MockUnitOfWorkFactory{}
	svc := NewLeaderboardService(factory)

	for _, limit := range []int{0, -1} {
		_, err := svc.Top(context.Background(), limit)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "limit must be positive")
	}
	factory.AssertNotCalled(t, "Create")
}

func TestLeaderboardService_Top_RepositoryError(t *testing.T) {
	leaderboardRepo := &MockLeaderboardRepository{}
	uow := &MockUnitOfWork{}
	uow.SetRepositories(nil, leaderboardRepo, nil, nil)
	factory := &MockUnitOfWorkFactory{}
	factory.On("Create").Return(uow)

	ctx := context.Background()
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback").Return(nil)
	leaderboardRepo.On("Top", ctx, 20).Return(nil, errors.New("query timeout"))

	svc := NewLeaderboardService(factory)
	_, err := svc.Top(ctx, 20)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get leaderboard")
}
