package food

import (
	"context"
	"testing"
	"time"

	"Track2Give-Backend/domain"
	"Track2Give-Backend/entities"
	"Track2Give-Backend/pkg/impact"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) (FoodService, impact.ImpactService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.FoodItem{},
		&entities.ReceiptScan{},
		&entities.ImpactStats{},
	))

	impactService := impact.NewImpactService(impact.NewImpactRepository(db))
	foodService := NewFoodService(NewFoodRepository(db), impactService, nil)

	return foodService, impactService, db
}

func TestAddFoodItem(t *testing.T) {
	service, _, _ := setupTestService(t)
	userID := uuid.NewString()

	res, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:           "Chicken Breast",
		Category:       "Meat",
		Quantity:       1.2,
		Unit:           "kg",
		ExpiryDate:     time.Now().AddDate(0, 0, 4).Format("2006-01-02"),
		EstimatedValue: 9.5,
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "Chicken Breast", res.Name)
	assert.Equal(t, "meat", res.Category)
	assert.InDelta(t, 1.2, res.Quantity, 1e-9)
	assert.False(t, res.Consumed)
}

func TestAddFoodItemDefaultsUnit(t *testing.T) {
	service, _, _ := setupTestService(t)

	res, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Eggs",
		Quantity:   12,
		ExpiryDate: time.Now().AddDate(0, 0, 10).Format("2006-01-02"),
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, "item", res.Unit)
	assert.Equal(t, "other", res.Category)
}

func TestAddFoodItemValidation(t *testing.T) {
	service, _, _ := setupTestService(t)
	userID := uuid.NewString()

	_, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Milk",
		Quantity:   1,
		ExpiryDate: "not-a-date",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)

	_, err = service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Milk",
		Quantity:   -1,
		ExpiryDate: time.Now().Format("2006-01-02"),
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestConsumeFoodItemAccruesImpact(t *testing.T) {
	service, impactService, _ := setupTestService(t)
	userID := uuid.NewString()

	item, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:           "Steak",
		Category:       "meat",
		Quantity:       2,
		Unit:           "kg",
		ExpiryDate:     time.Now().AddDate(0, 0, 4).Format("2006-01-02"),
		EstimatedValue: 10,
	}, userID)
	require.NoError(t, err)

	stats, err := service.ConsumeFoodItem(context.Background(), item.ID, userID)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.ItemsSaved)
	assert.InDelta(t, 54.0, stats.CO2SavedKg, 1e-9)
	assert.InDelta(t, 30800.0, stats.WaterSavedLiters, 1e-9)
	assert.InDelta(t, 10.0, stats.MoneySavedDollars, 1e-9)

	stored, err := service.GetFoodItemByID(context.Background(), item.ID, userID)
	require.NoError(t, err)
	assert.True(t, stored.Consumed)
	require.NotNil(t, stored.ConsumedDate)

	persisted, err := impactService.GetUserImpact(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, stats, persisted)
}

func TestConsumeFoodItemTwiceRejected(t *testing.T) {
	service, impactService, _ := setupTestService(t)
	userID := uuid.NewString()

	item, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Yogurt",
		Category:   "dairy",
		Quantity:   500,
		Unit:       "g",
		ExpiryDate: time.Now().AddDate(0, 0, 4).Format("2006-01-02"),
	}, userID)
	require.NoError(t, err)

	_, err = service.ConsumeFoodItem(context.Background(), item.ID, userID)
	require.NoError(t, err)

	_, err = service.ConsumeFoodItem(context.Background(), item.ID, userID)
	assert.ErrorIs(t, err, domain.ErrFoodItemAlreadyConsumed)

	stats, err := impactService.GetUserImpact(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ItemsSaved)
}

func TestConsumeForeignItemRejected(t *testing.T) {
	service, _, _ := setupTestService(t)
	owner := uuid.NewString()

	item, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:       "Bread",
		Category:   "bakery",
		Quantity:   1,
		Unit:       "item",
		ExpiryDate: time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
	}, owner)
	require.NoError(t, err)

	_, err = service.ConsumeFoodItem(context.Background(), item.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestGetFoodItemsConsumedFilter(t *testing.T) {
	service, _, _ := setupTestService(t)
	userID := uuid.NewString()

	for i := 0; i < 3; i++ {
		_, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
			Name:       "Apple",
			Category:   "fruits",
			Quantity:   1,
			Unit:       "item",
			ExpiryDate: time.Now().AddDate(0, 0, i+1).Format("2006-01-02"),
		}, userID)
		require.NoError(t, err)
	}

	all, count, err := service.GetFoodItems(context.Background(), userID, nil, 1, 20)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, int64(3), count)

	_, err = service.ConsumeFoodItem(context.Background(), all[0].ID, userID)
	require.NoError(t, err)

	consumed := true
	got, count, err := service.GetFoodItems(context.Background(), userID, &consumed, 1, 20)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(1), count)

	notConsumed := false
	got, count, err = service.GetFoodItems(context.Background(), userID, &notConsumed, 1, 20)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, int64(2), count)
}

func TestGetExpiringItems(t *testing.T) {
	service, _, _ := setupTestService(t)
	userID := uuid.NewString()

	_, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name: "Soon", Category: "dairy", Quantity: 1, Unit: "l",
		ExpiryDate: time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
	}, userID)
	require.NoError(t, err)

	_, err = service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name: "Later", Category: "canned", Quantity: 1, Unit: "item",
		ExpiryDate: time.Now().AddDate(0, 0, 30).Format("2006-01-02"),
	}, userID)
	require.NoError(t, err)

	expiring, err := service.GetExpiringItems(context.Background(), userID, 3)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "Soon", expiring[0].Name)
}

func TestSaveScannedItems(t *testing.T) {
	service, _, db := setupTestService(t)
	userID := uuid.New()

	scan := &entities.ReceiptScan{
		ID:     uuid.New(),
		UserID: userID,
		Status: "Processed",
	}
	require.NoError(t, db.Create(scan).Error)

	err := service.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
		Items: []domain.ScannedItemRequest{
			{Name: "Cheese", Category: "dairy", Quantity: 200, Unit: "g", ExpiryDate: time.Now().AddDate(0, 0, 14).Format("2006-01-02"), EstimatedValue: 4},
			{Name: "Tomatoes", Category: "vegetables", Quantity: 1, ExpiryDate: time.Now().AddDate(0, 0, 5).Format("2006-01-02")},
		},
	}, userID.String())
	require.NoError(t, err)

	items, count, err := service.GetFoodItems(context.Background(), userID.String(), nil, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	for _, item := range items {
		assert.False(t, item.Consumed)
	}

	updated := &entities.ReceiptScan{}
	require.NoError(t, db.Where("id = ?", scan.ID).First(updated).Error)
	assert.Equal(t, "Completed", updated.Status)
}

func TestSaveScannedItemsForeignScanRejected(t *testing.T) {
	service, _, db := setupTestService(t)

	scan := &entities.ReceiptScan{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: "Processed",
	}
	require.NoError(t, db.Create(scan).Error)

	err := service.SaveScannedItems(context.Background(), domain.SaveScannedItemsRequest{
		ScanID: scan.ID.String(),
		Items: []domain.ScannedItemRequest{
			{Name: "Cheese", Quantity: 1, ExpiryDate: time.Now().Format("2006-01-02")},
		},
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestGetDashboardStats(t *testing.T) {
	service, _, _ := setupTestService(t)
	userID := uuid.NewString()

	item, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name: "Spinach", Category: "vegetables", Quantity: 1, Unit: "kg",
		ExpiryDate: time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
	}, userID)
	require.NoError(t, err)

	_, err = service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name: "Rice", Category: "grains", Quantity: 2, Unit: "kg",
		ExpiryDate: time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
	}, userID)
	require.NoError(t, err)

	_, err = service.ConsumeFoodItem(context.Background(), item.ID, userID)
	require.NoError(t, err)

	stats, err := service.GetDashboardStats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalItems)
	assert.Equal(t, 1, stats.ConsumedItems)
	assert.Equal(t, 1, stats.UserImpact.ItemsSaved)
	assert.InDelta(t, 0.5, stats.UserImpact.CO2SavedKg, 1e-9)
}
