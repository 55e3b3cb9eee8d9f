package community

import (
	"context"
	"strings"
	"time"

	"Track2Give-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommunityRepository interface {
		CreateSharedItem(ctx context.Context, sharedItem *entities.SharedItem) error
		GetSharedItemByID(ctx context.Context, id string) (*entities.SharedItem, error)
		UpdateSharedItem(ctx context.Context, sharedItem *entities.SharedItem) error
		DeleteSharedItem(ctx context.Context, id string) error
		GetAvailableItems(ctx context.Context, excludeUserID string, search string, page, limit int) ([]*entities.SharedItem, int64, error)
		GetItemsByUserID(ctx context.Context, userID string) ([]*entities.SharedItem, error)
		ClaimSharedItem(ctx context.Context, id string, claimerID uuid.UUID, claimerUsername string, claimedAt time.Time) (bool, error)
	}

	communityRepository struct {
		db *gorm.DB
	}
)

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) CreateSharedItem(ctx context.Context, sharedItem *entities.SharedItem) error {
	return r.db.WithContext(ctx).Create(sharedItem).Error
}

func (r *communityRepository) GetSharedItemByID(ctx context.Context, id string) (*entities.SharedItem, error) {
	var sharedItem entities.SharedItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sharedItem).Error; err != nil {
		return nil, err
	}
	return &sharedItem, nil
}

func (r *communityRepository) UpdateSharedItem(ctx context.Context, sharedItem *entities.SharedItem) error {
	return r.db.WithContext(ctx).Save(sharedItem).Error
}

func (r *communityRepository) DeleteSharedItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.SharedItem{}).Error
}

func (r *communityRepository) GetAvailableItems(ctx context.Context, excludeUserID string, search string, page, limit int) ([]*entities.SharedItem, int64, error) {
	var sharedItems []*entities.SharedItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Where("status = ?", "available").
		Where("user_id != ?", excludeUserID)

	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if err := query.Model(&entities.SharedItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&sharedItems).Error; err != nil {
		return nil, 0, err
	}

	return sharedItems, count, nil
}

func (r *communityRepository) GetItemsByUserID(ctx context.Context, userID string) ([]*entities.SharedItem, error) {
	var sharedItems []*entities.SharedItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&sharedItems).Error; err != nil {
		return nil, err
	}
	return sharedItems, nil
}

// ClaimSharedItem flips the item to claimed only while it is still
// available. The conditional update makes the first claimer win; a
// false return means someone else got there first.
func (r *communityRepository) ClaimSharedItem(ctx context.Context, id string, claimerID uuid.UUID, claimerUsername string, claimedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.SharedItem{}).
		Where("id = ? AND status = ?", id, "available").
		Updates(map[string]interface{}{
			"status":              "claimed",
			"claimed_by":          claimerID,
			"claimed_by_username": claimerUsername,
			"claimed_date":        claimedAt,
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
