package repository

import (
	"context"
	"testing"

	"ecotokens/models"
	"ecotokens/repository/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardRepository_GetByUserID(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewLeaderboardRepository(testDB.DB)
	ctx := context.Background()

	t.Run("absent user returns nil", func(t *testing.T) {
		entry, err := repo.GetByUserID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("existing user", func(t *testing.T) {
		created, err := repo.Create(ctx, "user-1", models.DefaultDisplayName)
		require.NoError(t, err)

		entry, err := repo.GetByUserID(ctx, "user-1")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, created.ID, entry.ID)
		assert.Equal(t, "Eco Hero", entry.DisplayName)
		assert.Equal(t, 0.0, entry.LifetimeTokens)
	})
}

func TestLeaderboardRepository_AddTokens(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewLeaderboardRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, "user-1", models.DefaultDisplayName)
	require.NoError(t, err)

	t.Run("accumulates deltas", func(t *testing.T) {
		total, err := repo.AddTokens(ctx, "user-1", 50.5)
		require.NoError(t, err)
		assert.Equal(t, 50.5, total)

		total, err = repo.AddTokens(ctx, "user-1", 49.5)
		require.NoError(t, err)
		assert.Equal(t, 100.0, total)

		entry, err := repo.GetByUserID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 100.0, entry.LifetimeTokens)
	})

	t.Run("zero delta is allowed", func(t *testing.T) {
		total, err := repo.AddTokens(ctx, "user-1", 0)
		require.NoError(t, err)
		assert.Equal(t, 100.0, total)
	})

	t.Run("negative delta rejected", func(t *testing.T) {
		_, err := repo.AddTokens(ctx, "user-1", -1)
		assert.Error(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := repo.AddTokens(ctx, "nobody", 10)
		assert.Error(t, err)
	})
}

func TestLeaderboardRepository_Top(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewLeaderboardRepository(testDB.DB)
	ctx := context.Background()

	seed := []struct {
		userID string
		tokens float64
	}{
		{"alice", 300},
		{"bob", 100},
		{"carol", 200},
		{"dave", 100}, // same total as bob, created later
	}
	for _, s := range seed {
		_, err := repo.Create(ctx, s.userID, models.DefaultDisplayName)
		require.NoError(t, err)
		_, err = repo.AddTokens(ctx, s.userID, s.tokens)
		require.NoError(t, err)
	}

	t.Run("descending with stable ties", func(t *testing.T) {
		entries, err := repo.Top(ctx, 20)
		require.NoError(t, err)
		require.Len(t, entries, 4)

		assert.Equal(t, "alice", entries[0].UserID)
		assert.Equal(t, "carol", entries[1].UserID)
		// bob was created before dave, so he ranks first on the tie
		assert.Equal(t, "bob", entries[2].UserID)
		assert.Equal(t, "dave", entries[3].UserID)
	})

	t.Run("respects limit", func(t *testing.T) {
		entries, err := repo.Top(ctx, 2)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "alice", entries[0].UserID)
		assert.Equal(t, "carol", entries[1].UserID)
	})
}
