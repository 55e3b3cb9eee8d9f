package community

import (
	"context"
	"errors"
	"time"

	"Track2Give-Backend/domain"
	"Track2Give-Backend/entities"
	"Track2Give-Backend/pkg/food"
	"Track2Give-Backend/pkg/impact"
	"Track2Give-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommunityService interface {
		ShareFoodItem(ctx context.Context, req domain.ShareFoodItemRequest, userID string) (domain.SharedItemResponse, error)
		GetAvailableItems(ctx context.Context, userID string, search string, page, limit int) ([]domain.SharedItemResponse, int64, error)
		GetMySharedItems(ctx context.Context, userID string) ([]domain.SharedItemResponse, error)
		ClaimSharedItem(ctx context.Context, id string, userID string) (domain.SharedItemResponse, error)
		CompleteShare(ctx context.Context, id string, userID string) (domain.SharedItemResponse, error)
		RemoveSharedItem(ctx context.Context, id string, userID string) error
	}

	communityService struct {
		communityRepository CommunityRepository
		foodRepository      food.FoodRepository
		userRepository      user.UserRepository
		impactService       impact.ImpactService
	}
)

func NewCommunityService(
	communityRepository CommunityRepository,
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
	impactService impact.ImpactService,
) CommunityService {
	return &communityService{
		communityRepository: communityRepository,
		foodRepository:      foodRepository,
		userRepository:      userRepository,
		impactService:       impactService,
	}
}

// ShareFoodItem snapshots a food item into the community board. The
// snapshot keeps its own copy of name, category and quantity so later
// edits to the original item do not change an open offer.
func (s *communityService) ShareFoodItem(ctx context.Context, req domain.ShareFoodItemRequest, userID string) (domain.SharedItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SharedItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.SharedItemResponse{}, err
	}

	if foodItem.UserID.String() != userID {
		return domain.SharedItemResponse{}, domain.ErrUnauthorizedAccess
	}

	if foodItem.Consumed {
		return domain.SharedItemResponse{}, domain.ErrItemAlreadyConsumed
	}

	if foodItem.Shared {
		return domain.SharedItemResponse{}, domain.ErrItemAlreadyShared
	}

	donor, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.SharedItemResponse{}, err
	}

	sharedItem := &entities.SharedItem{
		ID:             uuid.New(),
		FoodItemID:     foodItem.ID,
		UserID:         foodItem.UserID,
		Username:       donor.Username,
		Name:           foodItem.Name,
		Category:       foodItem.Category,
		Quantity:       foodItem.Quantity,
		Unit:           foodItem.Unit,
		ExpiryDate:     foodItem.ExpiryDate,
		PickupLocation: req.PickupLocation,
		Notes:          req.Notes,
		Status:         "available",
	}

	if err := s.communityRepository.CreateSharedItem(ctx, sharedItem); err != nil {
		return domain.SharedItemResponse{}, err
	}

	now := time.Now()
	foodItem.Shared = true
	foodItem.SharedDate = &now
	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.SharedItemResponse{}, err
	}

	return toSharedItemResponse(sharedItem), nil
}

func (s *communityService) GetAvailableItems(ctx context.Context, userID string, search string, page, limit int) ([]domain.SharedItemResponse, int64, error) {
	sharedItems, count, err := s.communityRepository.GetAvailableItems(ctx, userID, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.SharedItemResponse, 0, len(sharedItems))
	for _, item := range sharedItems {
		response = append(response, toSharedItemResponse(item))
	}

	return response, count, nil
}

func (s *communityService) GetMySharedItems(ctx context.Context, userID string) ([]domain.SharedItemResponse, error) {
	sharedItems, err := s.communityRepository.GetItemsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SharedItemResponse, 0, len(sharedItems))
	for _, item := range sharedItems {
		response = append(response, toSharedItemResponse(item))
	}

	return response, nil
}

// ClaimSharedItem reserves an offer for the claimer and credits the
// donor with one shared item. Concurrent claims race on a conditional
// update; only the winner reaches the accrual.
func (s *communityService) ClaimSharedItem(ctx context.Context, id string, userID string) (domain.SharedItemResponse, error) {
	sharedItem, err := s.communityRepository.GetSharedItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SharedItemResponse{}, domain.ErrSharedItemNotFound
		}
		return domain.SharedItemResponse{}, err
	}

	if sharedItem.UserID.String() == userID {
		return domain.SharedItemResponse{}, domain.ErrCannotClaimOwnItem
	}

	if sharedItem.Status != "available" {
		return domain.SharedItemResponse{}, domain.ErrSharedItemUnavailable
	}

	claimer, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.SharedItemResponse{}, err
	}

	now := time.Now()
	claimed, err := s.communityRepository.ClaimSharedItem(ctx, id, claimer.ID, claimer.Username, now)
	if err != nil {
		return domain.SharedItemResponse{}, err
	}
	if !claimed {
		return domain.SharedItemResponse{}, domain.ErrSharedItemUnavailable
	}

	if _, err := s.impactService.AccrueShare(ctx, sharedItem.UserID.String()); err != nil {
		return domain.SharedItemResponse{}, domain.ErrImpactAccrualFailed
	}

	sharedItem.Status = "claimed"
	sharedItem.ClaimedBy = &claimer.ID
	sharedItem.ClaimedByUsername = claimer.Username
	sharedItem.ClaimedDate = &now

	return toSharedItemResponse(sharedItem), nil
}

func (s *communityService) CompleteShare(ctx context.Context, id string, userID string) (domain.SharedItemResponse, error) {
	sharedItem, err := s.ownedSharedItem(ctx, id, userID)
	if err != nil {
		return domain.SharedItemResponse{}, err
	}

	if sharedItem.Status != "claimed" {
		return domain.SharedItemResponse{}, domain.ErrShareNotClaimed
	}

	sharedItem.Status = "completed"
	if err := s.communityRepository.UpdateSharedItem(ctx, sharedItem); err != nil {
		return domain.SharedItemResponse{}, err
	}

	return toSharedItemResponse(sharedItem), nil
}

// RemoveSharedItem withdraws an open offer and returns the food item
// to the owner's inventory. Claimed offers cannot be withdrawn.
func (s *communityService) RemoveSharedItem(ctx context.Context, id string, userID string) error {
	sharedItem, err := s.ownedSharedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if sharedItem.Status != "available" {
		return domain.ErrSharedItemUnavailable
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, sharedItem.FoodItemID.String())
	if err == nil {
		foodItem.Shared = false
		foodItem.SharedDate = nil
		if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.communityRepository.DeleteSharedItem(ctx, id)
}

func (s *communityService) ownedSharedItem(ctx context.Context, id string, userID string) (*entities.SharedItem, error) {
	sharedItem, err := s.communityRepository.GetSharedItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSharedItemNotFound
		}
		return nil, err
	}

	if sharedItem.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedShare
	}

	return sharedItem, nil
}

func toSharedItemResponse(item *entities.SharedItem) domain.SharedItemResponse {
	return domain.SharedItemResponse{
		ID:                item.ID.String(),
		FoodItemID:        item.FoodItemID.String(),
		DonorID:           item.UserID.String(),
		DonorUsername:     item.Username,
		Name:              item.Name,
		Category:          item.Category,
		Quantity:          item.Quantity,
		Unit:              item.Unit,
		ExpiryDate:        item.ExpiryDate,
		PickupLocation:    item.PickupLocation,
		Notes:             item.Notes,
		Status:            item.Status,
		ClaimedByUsername: item.ClaimedByUsername,
		ClaimedDate:       item.ClaimedDate,
		CreatedAt:         item.CreatedAt,
	}
}
