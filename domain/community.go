package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessShareFoodItem    = "food item shared with community"
	MessageSuccessGetSharedItems   = "shared items retrieved successfully"
	MessageSuccessGetMySharedItems = "your shared items retrieved successfully"
	MessageSuccessClaimSharedItem  = "item claimed successfully"
	MessageSuccessCompleteShare    = "share marked as completed"
	MessageSuccessRemoveSharedItem = "shared item removed successfully"

	MessageFailedShareFoodItem    = "failed to share food item"
	MessageFailedGetSharedItems   = "failed to retrieve shared items"
	MessageFailedClaimSharedItem  = "failed to claim item"
	MessageFailedCompleteShare    = "failed to complete share"
	MessageFailedRemoveSharedItem = "failed to remove shared item"

	ErrSharedItemNotFound    = errors.New("shared item not found")
	ErrSharedItemUnavailable = errors.New("item is no longer available")
	ErrCannotClaimOwnItem    = errors.New("cannot claim your own shared item")
	ErrItemAlreadyShared     = errors.New("food item is already shared")
	ErrItemAlreadyConsumed   = errors.New("consumed items cannot be shared")
	ErrUnauthorizedShare     = errors.New("unauthorized access to shared item")
	ErrShareNotClaimed       = errors.New("only claimed shares can be completed")
)

type (
	ShareFoodItemRequest struct {
		FoodItemID     string `json:"food_item_id" validate:"required,uuid"`
		PickupLocation string `json:"pickup_location" validate:"omitempty"`
		Notes          string `json:"notes" validate:"omitempty"`
	}

	SharedItemResponse struct {
		ID                string     `json:"id"`
		FoodItemID        string     `json:"food_item_id"`
		DonorID           string     `json:"donor_id"`
		DonorUsername     string     `json:"donor_username"`
		Name              string     `json:"name"`
		Category          string     `json:"category"`
		Quantity          float64    `json:"quantity"`
		Unit              string     `json:"unit"`
		ExpiryDate        time.Time  `json:"expiry_date"`
		PickupLocation    string     `json:"pickup_location"`
		Notes             string     `json:"notes,omitempty"`
		Status            string     `json:"status"`
		ClaimedByUsername string     `json:"claimed_by_username,omitempty"`
		ClaimedDate       *time.Time `json:"claimed_date,omitempty"`
		CreatedAt         time.Time  `json:"created_at"`
	}
)
