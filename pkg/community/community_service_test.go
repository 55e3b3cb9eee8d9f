package community

import (
	"context"
	"testing"
	"time"

	"Track2Give-Backend/domain"
	"Track2Give-Backend/entities"
	"Track2Give-Backend/pkg/food"
	"Track2Give-Backend/pkg/impact"
	"Track2Give-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db             *gorm.DB
	service        CommunityService
	impactService  impact.ImpactService
	foodRepository food.FoodRepository
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.FoodItem{},
		&entities.ImpactStats{},
		&entities.SharedItem{},
	))

	foodRepository := food.NewFoodRepository(db)
	userRepository := user.NewUserRepository(db)
	impactService := impact.NewImpactService(impact.NewImpactRepository(db))
	service := NewCommunityService(
		NewCommunityRepository(db),
		foodRepository,
		userRepository,
		impactService,
	)

	return &testEnv{
		db:             db,
		service:        service,
		impactService:  impactService,
		foodRepository: foodRepository,
	}
}

func (e *testEnv) createUser(t *testing.T, username string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	require.NoError(t, e.db.Create(&entities.User{
		ID:       userID,
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}).Error)
	return userID
}

func (e *testEnv) createFoodItem(t *testing.T, ownerID uuid.UUID) *entities.FoodItem {
	return e.createNamedFoodItem(t, ownerID, "Milk")
}

func (e *testEnv) createNamedFoodItem(t *testing.T, ownerID uuid.UUID, name string) *entities.FoodItem {
	t.Helper()

	item := &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     ownerID,
		Name:       name,
		Category:   "dairy",
		Quantity:   1,
		Unit:       "l",
		ExpiryDate: time.Now().AddDate(0, 0, 5),
	}
	require.NoError(t, e.db.Create(item).Error)
	return item
}

func TestShareFoodItem(t *testing.T) {
	env := setupTestEnv(t)
	donor := env.createUser(t, "donor")
	item := env.createFoodItem(t, donor)

	res, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID:     item.ID.String(),
		PickupLocation: "Main St 1",
	}, donor.String())
	require.NoError(t, err)

	assert.Equal(t, "available", res.Status)
	assert.Equal(t, "donor", res.DonorUsername)
	assert.Equal(t, "Milk", res.Name)

	// The original item is flagged so it cannot be re-shared.
	stored, err := env.foodRepository.GetFoodItemByID(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.True(t, stored.Shared)
	require.NotNil(t, stored.SharedDate)

	_, err = env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
	}, donor.String())
	assert.ErrorIs(t, err, domain.ErrItemAlreadyShared)
}

func TestShareConsumedItemRejected(t *testing.T) {
	env := setupTestEnv(t)
	donor := env.createUser(t, "donor")
	item := env.createFoodItem(t, donor)

	now := time.Now()
	item.Consumed = true
	item.ConsumedDate = &now
	require.NoError(t, env.db.Save(item).Error)

	_, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
	}, donor.String())
	assert.ErrorIs(t, err, domain.ErrItemAlreadyConsumed)
}

func TestShareForeignItemRejected(t *testing.T) {
	env := setupTestEnv(t)
	donor := env.createUser(t, "donor")
	stranger := env.createUser(t, "stranger")
	item := env.createFoodItem(t, donor)

	_, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
	}, stranger.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestClaimSharedItemCreditsDonor(t *testing.T) {
	env := setupTestEnv(t)
	donor := env.createUser(t, "donor")
	claimer := env.createUser(t, "claimer")
	item := env.createFoodItem(t, donor)

	shared, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
	}, donor.String())
	require.NoError(t, err)

	res, err := env.service.ClaimSharedItem(context.Background(), shared.ID, claimer.String())
	require.NoError(t, err)

	assert.Equal(t, "claimed", res.Status)
	assert.Equal(t, "claimer", res.ClaimedByUsername)
	require.NotNil(t, res.ClaimedDate)

	donorStats, err := env.impactService.GetUserImpact(context.Background(), donor.String())
	require.NoError(t, err)
	assert.Equal(t, 1, donorStats.ItemsShared)
	assert.Zero(t, donorStats.ItemsSaved)
	assert.Zero(t, donorStats.CO2SavedKg)
}

func TestClaimOwnItemRejected(t *testing.T) {
	env := setupTestEnv(t)
	donor := env.createUser(t, "donor")
	item := env.createFoodItem(t, donor)

	shared, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
	}, donor.String())
	require.NoError(t, err)

	_, err = env.service.ClaimSharedItem(context.Background(), shared.ID, donor.String())
	assert.ErrorIs(t, err, domain.ErrCannotClaimOwnItem)
}

func TestClaimAlreadyClaimedItemRejected(t *testing.T) {
	env := setupTestEnv(t)
	donor := env.createUser(t, "donor")
	first := env.createUser(t, "first")
	second := env.createUser(t, "second")
	item := env.createFoodItem(t, donor)

	shared, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
	}, donor.String())
	require.NoError(t, err)

	_, err = env.service.ClaimSharedItem(context.Background(), shared.ID, first.String())
	require.NoError(t, err)

	_, err = env.service.ClaimSharedItem(context.Background(), shared.ID, second.String())
	assert.ErrorIs(t, err, domain.ErrSharedItemUnavailable)

	// Only the winning claim accrues to the donor.
	donorStats, err := env.impactService.GetUserImpact(context.Background(), donor.String())
	require.NoError(t, err)
	assert.Equal(t, 1, donorStats.ItemsShared)
}

func TestCompleteShare(t *testing.T) {
	env := setupTestEnv(t)
	donor := env.createUser(t, "donor")
	claimer := env.createUser(t, "claimer")
	item := env.createFoodItem(t, donor)

	shared, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
	}, donor.String())
	require.NoError(t, err)

	// Completing before a claim is invalid.
	_, err = env.service.CompleteShare(context.Background(), shared.ID, donor.String())
	assert.ErrorIs(t, err, domain.ErrShareNotClaimed)

	_, err = env.service.ClaimSharedItem(context.Background(), shared.ID, claimer.String())
	require.NoError(t, err)

	res, err := env.service.CompleteShare(context.Background(), shared.ID, donor.String())
	require.NoError(t, err)
	assert.Equal(t, "completed", res.Status)
}

func TestRemoveSharedItemRevertsFoodItem(t *testing.T) {
	env := setupTestEnv(t)
	donor := env.createUser(t, "donor")
	item := env.createFoodItem(t, donor)

	shared, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{
		FoodItemID: item.ID.String(),
	}, donor.String())
	require.NoError(t, err)

	require.NoError(t, env.service.RemoveSharedItem(context.Background(), shared.ID, donor.String()))

	stored, err := env.foodRepository.GetFoodItemByID(context.Background(), item.ID.String())
	require.NoError(t, err)
	assert.False(t, stored.Shared)
	assert.Nil(t, stored.SharedDate)

	_, err = env.service.ClaimSharedItem(context.Background(), shared.ID, donor.String())
	assert.ErrorIs(t, err, domain.ErrSharedItemNotFound)
}

func TestGetAvailableItemsExcludesOwnAndClaimed(t *testing.T) {
	env := setupTestEnv(t)
	donor := env.createUser(t, "donor")
	browser := env.createUser(t, "browser")
	claimer := env.createUser(t, "claimer")

	open := env.createFoodItem(t, donor)
	taken := env.createFoodItem(t, donor)
	mine := env.createFoodItem(t, browser)

	openShare, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{FoodItemID: open.ID.String()}, donor.String())
	require.NoError(t, err)

	takenShare, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{FoodItemID: taken.ID.String()}, donor.String())
	require.NoError(t, err)
	_, err = env.service.ClaimSharedItem(context.Background(), takenShare.ID, claimer.String())
	require.NoError(t, err)

	_, err = env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{FoodItemID: mine.ID.String()}, browser.String())
	require.NoError(t, err)

	items, count, err := env.service.GetAvailableItems(context.Background(), browser.String(), "", 1, 20)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, openShare.ID, items[0].ID)
}

func TestGetAvailableItemsSearchIgnoresCase(t *testing.T) {
	env := setupTestEnv(t)
	// SQLite's LIKE ignores ASCII case by default; turn that off so the
	// query behaves like it does on postgres.
	require.NoError(t, env.db.Exec("PRAGMA case_sensitive_like = ON").Error)

	donor := env.createUser(t, "donor")
	browser := env.createUser(t, "browser")

	apple := env.createNamedFoodItem(t, donor, "Apple Pie")
	milk := env.createNamedFoodItem(t, donor, "milk")

	appleShare, err := env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{FoodItemID: apple.ID.String()}, donor.String())
	require.NoError(t, err)
	_, err = env.service.ShareFoodItem(context.Background(), domain.ShareFoodItemRequest{FoodItemID: milk.ID.String()}, donor.String())
	require.NoError(t, err)

	for _, search := range []string{"apple", "Apple", "APPLE"} {
		items, count, err := env.service.GetAvailableItems(context.Background(), browser.String(), search, 1, 20)
		require.NoError(t, err)

		require.Len(t, items, 1, "search %q", search)
		assert.Equal(t, int64(1), count)
		assert.Equal(t, appleShare.ID, items[0].ID)
	}
}
