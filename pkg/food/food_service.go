package food

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"Track2Give-Backend/domain"
	"Track2Give-Backend/entities"
	"Track2Give-Backend/internal/utils"
	"Track2Give-Backend/internal/utils/storage"
	"Track2Give-Backend/pkg/impact"

	"mime/multipart"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetFoodItems(ctx context.Context, userID string, consumed *bool, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		GetExpiringItems(ctx context.Context, userID string, days int) ([]domain.FoodItemResponse, error)
		ConsumeFoodItem(ctx context.Context, id string, userID string) (domain.ImpactStatsResponse, error)
		UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error)
		GetReceiptScan(ctx context.Context, scanID string, userID string) (domain.ReceiptScanResponse, error)
		SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) error
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		impactService  impact.ImpactService
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, impactService impact.ImpactService, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		impactService:  impactService,
		s3:             s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	purchaseDate := time.Now()
	if req.PurchaseDate != "" {
		purchaseDate, err = time.Parse("2006-01-02", req.PurchaseDate)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidPurchaseDate
		}
	}

	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	unit := req.Unit
	if unit == "" {
		unit = "item"
	}

	foodItem := &entities.FoodItem{
		ID:              uuid.New(),
		UserID:          userUUID,
		Name:            req.Name,
		Category:        impact.NormalizeCategory(req.Category),
		Quantity:        req.Quantity,
		Unit:            unit,
		PurchaseDate:    purchaseDate,
		ExpiryDate:      expiryDate,
		StorageLocation: req.StorageLocation,
		EstimatedValue:  req.EstimatedValue,
		Notes:           req.Notes,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.ownedFoodItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}
	if req.Category != "" {
		foodItem.Category = impact.NormalizeCategory(req.Category)
	}
	if req.Quantity > 0 {
		foodItem.Quantity = req.Quantity
	}
	if req.Unit != "" {
		foodItem.Unit = req.Unit
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = expiryDate
	}
	if req.StorageLocation != "" {
		foodItem.StorageLocation = req.StorageLocation
	}
	if req.EstimatedValue > 0 {
		foodItem.EstimatedValue = req.EstimatedValue
	}
	if req.Notes != "" {
		foodItem.Notes = req.Notes
	}

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	if _, err := s.ownedFoodItem(ctx, id, userID); err != nil {
		return err
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, consumed *bool, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	foodItems, count, err := s.foodRepository.GetFoodItems(ctx, userID, consumed, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item))
	}

	return response, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.ownedFoodItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) GetExpiringItems(ctx context.Context, userID string, days int) ([]domain.FoodItemResponse, error) {
	if days <= 0 {
		days = 3
	}

	foodItems, err := s.foodRepository.GetExpiringItems(ctx, userID, days)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item))
	}

	return response, nil
}

// ConsumeFoodItem marks an item consumed and credits its impact to the
// owner's lifetime totals. Consuming twice is rejected so the totals
// stay one-accrual-per-item.
func (s *foodService) ConsumeFoodItem(ctx context.Context, id string, userID string) (domain.ImpactStatsResponse, error) {
	foodItem, err := s.ownedFoodItem(ctx, id, userID)
	if err != nil {
		return domain.ImpactStatsResponse{}, err
	}

	if foodItem.Consumed {
		return domain.ImpactStatsResponse{}, domain.ErrFoodItemAlreadyConsumed
	}

	now := time.Now()
	foodItem.Consumed = true
	foodItem.ConsumedDate = &now

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.ImpactStatsResponse{}, err
	}

	stats, err := s.impactService.AccrueConsumption(ctx, userID, foodItem)
	if err != nil {
		return domain.ImpactStatsResponse{}, domain.ErrImpactAccrualFailed
	}

	return stats, nil
}

func (s *foodService) UploadReceipt(ctx context.Context, req domain.UploadReceiptRequest, userID string) (domain.UploadReceiptResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadReceiptResponse{}, domain.ErrParseUUID
	}

	scanID := uuid.New()
	fileName := fmt.Sprintf("receipt-%s", scanID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.ReceiptImage, "receipts", storage.AllowImage...)
	if err != nil {
		return domain.UploadReceiptResponse{}, err
	}

	imageURL := s.s3.GetPublicLinkKey(objectKey)

	receiptScan := &entities.ReceiptScan{
		ID:       scanID,
		UserID:   userUUID,
		ImageURL: imageURL,
		Status:   "Pending",
	}

	if err := s.foodRepository.CreateReceiptScan(ctx, receiptScan); err != nil {
		_ = s.s3.DeleteFile(objectKey)
		return domain.UploadReceiptResponse{}, err
	}

	go s.processReceipt(receiptScan, req.ReceiptImage)

	return domain.UploadReceiptResponse{
		ScanID:   scanID.String(),
		ImageURL: imageURL,
		Status:   "Pending",
	}, nil
}

// processReceipt runs outside the request; failures land in the scan
// row so the client can poll for them.
func (s *foodService) processReceipt(receiptScan *entities.ReceiptScan, receiptImage *multipart.FileHeader) {
	fail := func(reason string) {
		receiptScan.Status = "Failed"
		receiptScan.OcrResults = reason
		if err := s.foodRepository.UpdateReceiptScan(context.Background(), receiptScan); err != nil {
			log.Printf("Error updating receipt scan: %v", err)
		}
	}

	file, err := receiptImage.Open()
	if err != nil {
		fail(fmt.Sprintf("Error opening file: %s", err.Error()))
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		fail(fmt.Sprintf("Error reading file: %s", err.Error()))
		return
	}

	items, err := parseReceiptWithGemini(context.Background(), fileBytes, detectMimeType(receiptImage))
	if err != nil {
		fail(fmt.Sprintf("Error extracting items from receipt: %s", err.Error()))
		return
	}

	if len(items) == 0 {
		fail("No food items could be extracted from the receipt")
		return
	}

	resultsJSON, _ := json.Marshal(items)
	receiptScan.Status = "Processed"
	receiptScan.OcrResults = string(resultsJSON)

	if err := s.foodRepository.UpdateReceiptScan(context.Background(), receiptScan); err != nil {
		log.Printf("Error updating receipt scan: %v", err)
	}
}

type geminiReceiptItem struct {
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	ExpiryDate     string  `json:"expiry_date"`
	EstimatedValue float64 `json:"estimated_value"`
}

func parseReceiptWithGemini(ctx context.Context, imageData []byte, mimeType string) ([]geminiReceiptItem, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	base64Image := base64.StdEncoding.EncodeToString(imageData)
	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": "This is a grocery receipt. Extract every food item and respond ONLY with a valid JSON array. Each element must contain exactly these fields: 'name' (string), 'category' (one of: dairy, meat, seafood, vegetables, fruits, grains, bakery, beverages, snacks, frozen, canned, condiments, other), 'quantity' (number), 'unit' (string, e.g. kg, g, lb, oz, l, ml, item), 'expiry_date' (string in YYYY-MM-DD format, estimated from typical shelf life), and 'estimated_value' (number, the item price). Do not include any explanations, markdown formatting, or extra text.",
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64Image,
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 60 * time.Second}
	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrGeminiProcessingFailed
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text

	jsonPattern := regexp.MustCompile(`(?s)\[.*\]`)
	if matches := jsonPattern.FindString(responseText); matches != "" {
		responseText = matches
	}

	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
	}
	responseText = strings.TrimSpace(responseText)

	var items []geminiReceiptItem
	if err := json.Unmarshal([]byte(responseText), &items); err != nil {
		return nil, fmt.Errorf("failed to parse Gemini response: %v - Raw response: %s", err, responseText)
	}

	for i := range items {
		if items[i].Name == "" {
			items[i].Name = "Unknown Item"
		}
		if items[i].Quantity <= 0 {
			items[i].Quantity = 1
		}
		if items[i].Unit == "" {
			items[i].Unit = "item"
		}
		items[i].Category = impact.NormalizeCategory(items[i].Category)
	}

	return items, nil
}

func detectMimeType(file *multipart.FileHeader) string {
	mimeType := file.Header.Get("Content-Type")
	if mimeType != "" {
		return mimeType
	}

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

func (s *foodService) GetReceiptScan(ctx context.Context, scanID string, userID string) (domain.ReceiptScanResponse, error) {
	scan, err := s.foodRepository.GetReceiptScanByID(ctx, scanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ReceiptScanResponse{}, domain.ErrInvalidReceiptScan
		}
		return domain.ReceiptScanResponse{}, err
	}

	if scan.UserID.String() != userID {
		return domain.ReceiptScanResponse{}, domain.ErrUnauthorizedAccess
	}

	return domain.ReceiptScanResponse{
		ScanID:     scan.ID.String(),
		ImageURL:   scan.ImageURL,
		Status:     scan.Status,
		OcrResults: scan.OcrResults,
	}, nil
}

func (s *foodService) SaveScannedItems(ctx context.Context, req domain.SaveScannedItemsRequest, userID string) error {
	scan, err := s.foodRepository.GetReceiptScanByID(ctx, req.ScanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrInvalidReceiptScan
		}
		return err
	}

	if scan.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	scanIDStr := scan.ID.String()
	for _, item := range req.Items {
		expiryDate, err := time.Parse("2006-01-02", item.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}

		unit := item.Unit
		if unit == "" {
			unit = "item"
		}

		foodItem := &entities.FoodItem{
			ID:             uuid.New(),
			UserID:         userUUID,
			ReceiptScanID:  &scanIDStr,
			Name:           item.Name,
			Category:       impact.NormalizeCategory(item.Category),
			Quantity:       item.Quantity,
			Unit:           unit,
			PurchaseDate:   time.Now(),
			ExpiryDate:     expiryDate,
			EstimatedValue: item.EstimatedValue,
		}

		if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
			return err
		}
	}

	scan.Status = "Completed"
	return s.foodRepository.UpdateReceiptScan(ctx, scan)
}

func (s *foodService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	counts, err := s.foodRepository.GetDashboardCounts(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	userImpact, err := s.impactService.GetUserImpact(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	expiring, err := s.GetExpiringItems(ctx, userID, 3)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	return domain.DashboardStatsResponse{
		TotalItems:      int(counts.TotalItems),
		ExpiringItems:   int(counts.ExpiringItems),
		ConsumedItems:   int(counts.ConsumedItems),
		SharedItems:     int(counts.SharedItems),
		UserImpact:      userImpact,
		ExpiringDetails: expiring,
	}, nil
}

func (s *foodService) ownedFoodItem(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if foodItem.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}

	return foodItem, nil
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:              item.ID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		PurchaseDate:    item.PurchaseDate,
		ExpiryDate:      item.ExpiryDate,
		StorageLocation: item.StorageLocation,
		EstimatedValue:  item.EstimatedValue,
		Consumed:        item.Consumed,
		ConsumedDate:    item.ConsumedDate,
		Shared:          item.Shared,
		Notes:           item.Notes,
		CreatedAt:       item.CreatedAt,
	}
}
