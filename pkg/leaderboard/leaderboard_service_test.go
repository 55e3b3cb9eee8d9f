package leaderboard

import (
	"context"
	"testing"

	"Track2Give-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.ImpactStats{}, &entities.SharedItem{}))

	return db
}

func seedDonor(t *testing.T, db *gorm.DB, username string, itemsShared int, co2SavedKg float64) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	require.NoError(t, db.Create(&entities.User{
		ID:       userID,
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}).Error)
	require.NoError(t, db.Create(&entities.ImpactStats{
		ID:          uuid.New(),
		UserID:      userID,
		ItemsShared: itemsShared,
		CO2SavedKg:  co2SavedKg,
	}).Error)

	return userID
}

func TestGetTopDonorsOrdering(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	seedDonor(t, db, "alice", 5, 10)
	seedDonor(t, db, "bob", 10, 3)
	seedDonor(t, db, "carol", 10, 8)
	seedDonor(t, db, "dave", 0, 50) // never shared, excluded

	rows, err := service.GetTopDonors(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "carol", rows[0].Username)
	assert.Equal(t, "bob", rows[1].Username)
	assert.Equal(t, "alice", rows[2].Username)

	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
	}
}

func TestGetTopDonorsTieBreakByUserID(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	first := seedDonor(t, db, "first", 4, 6)
	second := seedDonor(t, db, "second", 4, 6)

	rows, err := service.GetTopDonors(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	lowID, highID := first.String(), second.String()
	if lowID > highID {
		lowID, highID = highID, lowID
	}

	assert.Equal(t, lowID, rows[0].UserID)
	assert.Equal(t, highID, rows[1].UserID)
}

func TestGetTopDonorsAnonymousFallback(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	// Stats row whose user record no longer exists.
	require.NoError(t, db.Create(&entities.ImpactStats{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		ItemsShared: 3,
		CO2SavedKg:  9,
	}).Error)

	rows, err := service.GetTopDonors(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Anonymous Donor", rows[0].Username)
	assert.Empty(t, rows[0].ProfilePicture)
}

func TestGetTopDonorsLimitClamping(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	for i := 0; i < 15; i++ {
		seedDonor(t, db, uuid.NewString()[:8], i+1, float64(i))
	}

	rows, err := service.GetTopDonors(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, rows, DefaultLimit)

	rows, err = service.GetTopDonors(context.Background(), 500)
	require.NoError(t, err)
	assert.Len(t, rows, 15)
}

func TestGetTopCarbonSavers(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	seedDonor(t, db, "alice", 1, 100)
	seedDonor(t, db, "bob", 9, 50)

	rows, err := service.GetTopCarbonSavers(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "alice", rows[0].Username)
	assert.Equal(t, "bob", rows[1].Username)
}

func TestGetUserRank(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	seedDonor(t, db, "top", 10, 100)
	seedDonor(t, db, "mid", 5, 50)
	target := seedDonor(t, db, "me", 5, 20)
	seedDonor(t, db, "low", 1, 5)

	rank, err := service.GetUserRank(context.Background(), target.String())
	require.NoError(t, err)

	require.NotNil(t, rank.Rank)
	assert.Equal(t, 3, *rank.Rank) // behind 10-share donor and the 5-share donor with more CO2
	assert.Equal(t, int64(4), rank.TotalDonors)
	require.NotNil(t, rank.Percentile)
	assert.Equal(t, 25, *rank.Percentile) // round((4-3)/4*100)
	assert.Equal(t, 5, rank.ItemsShared)
	assert.InDelta(t, 20.0, rank.CO2SavedKg, 1e-9)
}

func TestGetUserRankTopDonor(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	top := seedDonor(t, db, "top", 10, 100)
	seedDonor(t, db, "other", 2, 10)

	rank, err := service.GetUserRank(context.Background(), top.String())
	require.NoError(t, err)

	require.NotNil(t, rank.Rank)
	assert.Equal(t, 1, *rank.Rank)
	require.NotNil(t, rank.Percentile)
	assert.Equal(t, 50, *rank.Percentile)
}

func TestGetUserRankNonDonorIsUnranked(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	seedDonor(t, db, "donor", 3, 30)
	nonDonor := seedDonor(t, db, "lurker", 0, 40)

	rank, err := service.GetUserRank(context.Background(), nonDonor.String())
	require.NoError(t, err)

	assert.Nil(t, rank.Rank)
	assert.Nil(t, rank.Percentile)
	assert.Equal(t, int64(1), rank.TotalDonors)
	assert.InDelta(t, 40.0, rank.CO2SavedKg, 1e-9)
}

func TestGetUserRankMissingStats(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	seedDonor(t, db, "donor", 3, 30)

	rank, err := service.GetUserRank(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Nil(t, rank.Rank)
	assert.Nil(t, rank.Percentile)
	assert.Equal(t, int64(1), rank.TotalDonors)
	assert.Zero(t, rank.ItemsShared)
}

func TestGetGlobalDonationStats(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	donor := seedDonor(t, db, "alice", 4, 60)
	seedDonor(t, db, "bob", 2, 20)

	require.NoError(t, db.Create(&entities.SharedItem{
		ID:         uuid.New(),
		FoodItemID: uuid.New(),
		UserID:     donor,
		Status:     "available",
	}).Error)
	require.NoError(t, db.Create(&entities.SharedItem{
		ID:         uuid.New(),
		FoodItemID: uuid.New(),
		UserID:     donor,
		Status:     "claimed",
	}).Error)

	stats, err := service.GetGlobalDonationStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(6), stats.TotalItemsShared)
	assert.InDelta(t, 80.0, stats.TotalCO2SavedKg, 1e-9)
	assert.InDelta(t, 3.0, stats.AvgItemsSharedPerUser, 1e-9)
	assert.InDelta(t, 40.0, stats.AvgCO2SavedPerUser, 1e-9)
	assert.Equal(t, int64(1), stats.TotalAvailableItems)
}

func TestGetGlobalDonationStatsEmpty(t *testing.T) {
	db := setupTestDB(t)
	service := NewLeaderboardService(NewLeaderboardRepository(db))

	stats, err := service.GetGlobalDonationStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalItemsShared)
	assert.Zero(t, stats.TotalCO2SavedKg)
	assert.Zero(t, stats.TotalAvailableItems)
}
