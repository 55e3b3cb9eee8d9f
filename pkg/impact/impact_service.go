package impact

import (
	"context"
	"errors"

	"Track2Give-Backend/domain"
	"Track2Give-Backend/entities"

	"gorm.io/gorm"
)

type (
	ImpactService interface {
		GetUserImpact(ctx context.Context, userID string) (domain.ImpactStatsResponse, error)
		AccrueConsumption(ctx context.Context, userID string, item *entities.FoodItem) (domain.ImpactStatsResponse, error)
		AccrueShare(ctx context.Context, donorID string) (domain.ImpactStatsResponse, error)
		CalculatePotentialImpact(items []*entities.FoodItem) domain.PotentialImpactResponse
	}

	impactService struct {
		impactRepository ImpactRepository
	}
)

func NewImpactService(impactRepository ImpactRepository) ImpactService {
	return &impactService{impactRepository: impactRepository}
}

// GetUserImpact reads the user's lifetime totals. A user without a
// stats row reads as all-zero; this path never creates the row.
func (s *impactService) GetUserImpact(ctx context.Context, userID string) (domain.ImpactStatsResponse, error) {
	stats, err := s.impactRepository.GetStatsByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ImpactStatsResponse{}, nil
		}
		return domain.ImpactStatsResponse{}, err
	}

	return toImpactResponse(stats), nil
}

// AccrueConsumption adds one consumed item's impact to the owner's
// lifetime totals. The caller invokes this exactly once per consumption
// event; the accumulator does not deduplicate.
func (s *impactService) AccrueConsumption(ctx context.Context, userID string, item *entities.FoodItem) (domain.ImpactStatsResponse, error) {
	itemImpact := ComputeItemImpact(item)

	if err := s.impactRepository.EnsureStats(ctx, userID); err != nil {
		return domain.ImpactStatsResponse{}, err
	}

	if err := s.impactRepository.IncrementConsumption(ctx, userID, itemImpact.CO2Kg, itemImpact.WaterL, itemImpact.MoneyUSD); err != nil {
		return domain.ImpactStatsResponse{}, err
	}

	stats, err := s.impactRepository.GetStatsByUserID(ctx, userID)
	if err != nil {
		return domain.ImpactStatsResponse{}, err
	}

	return toImpactResponse(stats), nil
}

// AccrueShare credits the donor for a claimed share. Only the share
// counter moves; environmental credit stays with eventual consumption.
func (s *impactService) AccrueShare(ctx context.Context, donorID string) (domain.ImpactStatsResponse, error) {
	if err := s.impactRepository.EnsureStats(ctx, donorID); err != nil {
		return domain.ImpactStatsResponse{}, err
	}

	if err := s.impactRepository.IncrementShared(ctx, donorID); err != nil {
		return domain.ImpactStatsResponse{}, err
	}

	stats, err := s.impactRepository.GetStatsByUserID(ctx, donorID)
	if err != nil {
		return domain.ImpactStatsResponse{}, err
	}

	return toImpactResponse(stats), nil
}

// CalculatePotentialImpact projects the impact of items not yet
// consumed without touching persisted totals.
func (s *impactService) CalculatePotentialImpact(items []*entities.FoodItem) domain.PotentialImpactResponse {
	var totalCO2, totalWater, totalMoney float64

	for _, item := range items {
		if item == nil {
			continue
		}
		itemImpact := ComputeItemImpact(item)
		totalCO2 += itemImpact.CO2Kg
		totalWater += itemImpact.WaterL
		totalMoney += itemImpact.MoneyUSD
	}

	return domain.PotentialImpactResponse{
		ItemCount:         len(items),
		CO2SavedKg:        Round2(totalCO2),
		WaterSavedLiters:  Round2(totalWater),
		MoneySavedDollars: Round2(totalMoney),
	}
}

func toImpactResponse(stats *entities.ImpactStats) domain.ImpactStatsResponse {
	return domain.ImpactStatsResponse{
		ItemsSaved:        stats.ItemsSaved,
		ItemsShared:       stats.ItemsShared,
		CO2SavedKg:        stats.CO2SavedKg,
		WaterSavedLiters:  stats.WaterSavedLiters,
		MoneySavedDollars: stats.MoneySavedDollars,
	}
}
