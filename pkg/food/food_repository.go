package food

import (
	"context"
	"time"

	"Track2Give-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, userID string, consumed *bool, page, limit int) ([]*entities.FoodItem, int64, error)
		GetExpiringItems(ctx context.Context, userID string, days int) ([]*entities.FoodItem, error)
		GetDashboardCounts(ctx context.Context, userID string) (DashboardCounts, error)

		// Receipt scanning related
		CreateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error
		GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error)
		UpdateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error
	}

	foodRepository struct {
		db *gorm.DB
	}

	DashboardCounts struct {
		TotalItems    int64
		ExpiringItems int64
		ConsumedItems int64
		SharedItems   int64
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetFoodItems(ctx context.Context, userID string, consumed *bool, page, limit int) ([]*entities.FoodItem, int64, error) {
	var foodItems []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if consumed != nil {
		query = query.Where("consumed = ?", *consumed)
	}

	if err := query.Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc").Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

func (r *foodRepository) GetExpiringItems(ctx context.Context, userID string, days int) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	now := time.Now()
	cutoff := now.AddDate(0, 0, days)

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed = ? AND expiry_date BETWEEN ? AND ?", userID, false, now, cutoff).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetDashboardCounts(ctx context.Context, userID string) (DashboardCounts, error) {
	var counts DashboardCounts

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND consumed = ?", userID, false).
		Count(&counts.TotalItems).Error; err != nil {
		return DashboardCounts{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND consumed = ? AND expiry_date BETWEEN ? AND ?",
			userID, false, time.Now(), time.Now().AddDate(0, 0, 3)).
		Count(&counts.ExpiringItems).Error; err != nil {
		return DashboardCounts{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND consumed = ?", userID, true).
		Count(&counts.ConsumedItems).Error; err != nil {
		return DashboardCounts{}, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("user_id = ? AND shared = ?", userID, true).
		Count(&counts.SharedItems).Error; err != nil {
		return DashboardCounts{}, err
	}

	return counts, nil
}

func (r *foodRepository) CreateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Create(receiptScan).Error
}

func (r *foodRepository) GetReceiptScanByID(ctx context.Context, id string) (*entities.ReceiptScan, error) {
	var receiptScan entities.ReceiptScan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&receiptScan).Error; err != nil {
		return nil, err
	}
	return &receiptScan, nil
}

func (r *foodRepository) UpdateReceiptScan(ctx context.Context, receiptScan *entities.ReceiptScan) error {
	return r.db.WithContext(ctx).Save(receiptScan).Error
}
