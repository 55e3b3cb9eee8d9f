package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessGetExpiringItems  = "expiring items retrieved successfully"
	MessageSuccessConsumeFoodItem   = "food item marked as consumed"
	MessageSuccessUploadReceipt     = "receipt uploaded successfully"
	MessageSuccessGetReceiptScan    = "receipt scan retrieved successfully"
	MessageSuccessSaveScannedItems  = "scanned items saved successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedGetExpiringItems  = "failed to retrieve expiring items"
	MessageFailedConsumeFoodItem   = "failed to mark food item as consumed"
	MessageFailedUploadReceipt     = "failed to upload receipt"
	MessageFailedGetReceiptScan    = "failed to retrieve receipt scan"
	MessageFailedSaveScannedItems  = "failed to save scanned items"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound        = errors.New("food item not found")
	ErrFoodItemAlreadyConsumed = errors.New("food item already consumed")
	ErrInvalidExpiryDate       = errors.New("invalid expiry date")
	ErrInvalidPurchaseDate     = errors.New("invalid purchase date")
	ErrInvalidQuantity         = errors.New("quantity must be positive")
	ErrInvalidReceiptScan      = errors.New("invalid receipt scan ID")
	ErrUnauthorizedAccess      = errors.New("unauthorized access to food item")
	ErrGeminiProcessingFailed  = errors.New("gemini processing failed")
)

type (
	AddFoodItemRequest struct {
		Name            string  `json:"name" validate:"required"`
		Category        string  `json:"category" validate:"omitempty"`
		Quantity        float64 `json:"quantity" validate:"required,gt=0"`
		Unit            string  `json:"unit" validate:"omitempty"`
		PurchaseDate    string  `json:"purchase_date" validate:"omitempty"`
		ExpiryDate      string  `json:"expiry_date" validate:"required"`
		StorageLocation string  `json:"storage_location" validate:"omitempty,oneof=fridge freezer pantry counter"`
		EstimatedValue  float64 `json:"estimated_value" validate:"omitempty,gte=0"`
		Notes           string  `json:"notes" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Name            string  `json:"name" validate:"omitempty"`
		Category        string  `json:"category" validate:"omitempty"`
		Quantity        float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit            string  `json:"unit" validate:"omitempty"`
		ExpiryDate      string  `json:"expiry_date" validate:"omitempty"`
		StorageLocation string  `json:"storage_location" validate:"omitempty,oneof=fridge freezer pantry counter"`
		EstimatedValue  float64 `json:"estimated_value" validate:"omitempty,gte=0"`
		Notes           string  `json:"notes" validate:"omitempty"`
	}

	FoodItemResponse struct {
		ID              string     `json:"id"`
		Name            string     `json:"name"`
		Category        string     `json:"category"`
		Quantity        float64    `json:"quantity"`
		Unit            string     `json:"unit"`
		PurchaseDate    time.Time  `json:"purchase_date"`
		ExpiryDate      time.Time  `json:"expiry_date"`
		StorageLocation string     `json:"storage_location"`
		EstimatedValue  float64    `json:"estimated_value"`
		Consumed        bool       `json:"consumed"`
		ConsumedDate    *time.Time `json:"consumed_date,omitempty"`
		Shared          bool       `json:"shared"`
		Notes           string     `json:"notes,omitempty"`
		CreatedAt       time.Time  `json:"created_at"`
	}

	UploadReceiptRequest struct {
		ReceiptImage *multipart.FileHeader `json:"receipt_image" form:"receipt_image" validate:"required"`
	}

	UploadReceiptResponse struct {
		ScanID   string `json:"scan_id"`
		ImageURL string `json:"image_url"`
		Status   string `json:"status"`
	}

	ReceiptScanResponse struct {
		ScanID     string `json:"scan_id"`
		ImageURL   string `json:"image_url"`
		Status     string `json:"status"`
		OcrResults string `json:"ocr_results,omitempty"`
	}

	ScannedItemRequest struct {
		Name           string  `json:"name" validate:"required"`
		Category       string  `json:"category" validate:"omitempty"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		Unit           string  `json:"unit" validate:"omitempty"`
		ExpiryDate     string  `json:"expiry_date" validate:"required"`
		EstimatedValue float64 `json:"estimated_value" validate:"omitempty,gte=0"`
	}

	SaveScannedItemsRequest struct {
		ScanID string               `json:"scan_id" validate:"required,uuid"`
		Items  []ScannedItemRequest `json:"items" validate:"required,dive"`
	}

	DashboardStatsResponse struct {
		TotalItems      int                 `json:"total_items"`
		ExpiringItems   int                 `json:"expiring_items"`
		ConsumedItems   int                 `json:"consumed_items"`
		SharedItems     int                 `json:"shared_items"`
		UserImpact      ImpactStatsResponse `json:"user_impact"`
		ExpiringDetails []FoodItemResponse  `json:"expiring_details"`
	}
)
