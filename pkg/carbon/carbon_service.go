package carbon

import (
	"context"
	"sort"
	"time"

	"Track2Give-Backend/domain"
	"Track2Give-Backend/entities"
	"Track2Give-Backend/pkg/impact"
)

const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

type (
	CarbonService interface {
		GetUserCarbonHistory(ctx context.Context, userID string, period string) ([]domain.CarbonHistoryPoint, error)
		GetCarbonBreakdownByCategory(ctx context.Context, userID string) ([]domain.CategoryBreakdownRow, error)
		GetGlobalCarbonStats(ctx context.Context) (domain.GlobalCarbonStats, error)
		GetPotentialCarbonSavings(ctx context.Context, userID string) (domain.PotentialCarbonSavings, error)
		CalculatePotentialCarbonSavings(items []*entities.FoodItem) domain.PotentialCarbonSavings
	}

	carbonService struct {
		carbonRepository CarbonRepository
	}
)

func NewCarbonService(carbonRepository CarbonRepository) CarbonService {
	return &carbonService{carbonRepository: carbonRepository}
}

// periodStart returns the inclusive lower bound for a history period,
// or nil for "all". Bounds snap to local midnight so a "week" is the
// last 7 calendar days including today.
func periodStart(period string, now time.Time) *time.Time {
	var start time.Time

	switch period {
	case PeriodWeek:
		start = now.AddDate(0, 0, -6)
	case PeriodMonth:
		start = now.AddDate(0, -1, 0)
	case PeriodYear:
		start = now.AddDate(-1, 0, 0)
	default:
		return nil
	}

	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	return &start
}

// GetUserCarbonHistory buckets the user's consumptions by calendar day
// and carries a running cumulative total. Days without consumptions are
// not synthesized; sparse output is expected.
func (s *carbonService) GetUserCarbonHistory(ctx context.Context, userID string, period string) ([]domain.CarbonHistoryPoint, error) {
	since := periodStart(period, time.Now())

	items, err := s.carbonRepository.GetConsumedItems(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	dailyTotals := make(map[string]float64)
	for _, item := range items {
		if item.ConsumedDate == nil {
			continue
		}
		dateKey := item.ConsumedDate.Format("2006-01-02")
		dailyTotals[dateKey] += impact.ComputeItemImpact(item).CO2Kg
	}

	dates := make([]string, 0, len(dailyTotals))
	for date := range dailyTotals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	history := make([]domain.CarbonHistoryPoint, 0, len(dates))
	var cumulative float64
	for _, date := range dates {
		cumulative += dailyTotals[date]
		history = append(history, domain.CarbonHistoryPoint{
			Date:          date,
			CO2Saved:      impact.Round2(dailyTotals[date]),
			CumulativeCO2: impact.Round2(cumulative),
		})
	}

	return history, nil
}

// GetCarbonBreakdownByCategory groups the user's consumed items by
// category, most CO2 saved first. Categories without consumptions are
// omitted.
func (s *carbonService) GetCarbonBreakdownByCategory(ctx context.Context, userID string) ([]domain.CategoryBreakdownRow, error) {
	items, err := s.carbonRepository.GetConsumedItems(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	type categoryTotal struct {
		co2Saved  float64
		itemCount int
	}

	totals := make(map[string]*categoryTotal)
	for _, item := range items {
		category := impact.NormalizeCategory(item.Category)
		entry, ok := totals[category]
		if !ok {
			entry = &categoryTotal{}
			totals[category] = entry
		}
		entry.co2Saved += impact.ComputeItemImpact(item).CO2Kg
		entry.itemCount++
	}

	breakdown := make([]domain.CategoryBreakdownRow, 0, len(totals))
	for category, entry := range totals {
		breakdown = append(breakdown, domain.CategoryBreakdownRow{
			Category:  category,
			CO2Saved:  impact.Round2(entry.co2Saved),
			ItemCount: entry.itemCount,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].CO2Saved != breakdown[j].CO2Saved {
			return breakdown[i].CO2Saved > breakdown[j].CO2Saved
		}
		return breakdown[i].Category < breakdown[j].Category
	})

	return breakdown, nil
}

// GetGlobalCarbonStats aggregates lifetime stats across every user
// that has ever triggered an accrual. An empty population reads as all
// zeros, never NaN.
func (s *carbonService) GetGlobalCarbonStats(ctx context.Context) (domain.GlobalCarbonStats, error) {
	agg, err := s.carbonRepository.GetGlobalImpactAggregates(ctx)
	if err != nil {
		return domain.GlobalCarbonStats{}, err
	}

	if agg.TotalUsers == 0 {
		return domain.GlobalCarbonStats{}, nil
	}

	return domain.GlobalCarbonStats{
		TotalCO2SavedKg:        impact.Round2(agg.TotalCO2SavedKg),
		TotalUsers:             agg.TotalUsers,
		AvgCO2PerUser:          impact.Round2(agg.AvgCO2PerUser),
		MaxCO2PerUser:          impact.Round2(agg.MaxCO2PerUser),
		EquivalentCarsRemoved:  impact.Round2(agg.TotalCO2SavedKg / impact.CarCO2PerYearKg),
		EquivalentTreesPlanted: impact.Round2(agg.TotalCO2SavedKg / impact.TreeCO2PerYearKg),
	}, nil
}

// GetPotentialCarbonSavings projects the impact of the user's current
// unexpired inventory.
func (s *carbonService) GetPotentialCarbonSavings(ctx context.Context, userID string) (domain.PotentialCarbonSavings, error) {
	items, err := s.carbonRepository.GetUnexpiredItems(ctx, userID)
	if err != nil {
		return domain.PotentialCarbonSavings{}, err
	}

	return s.CalculatePotentialCarbonSavings(items), nil
}

// CalculatePotentialCarbonSavings is the pure form over a caller
// supplied item list. Empty input yields an all-zero result.
func (s *carbonService) CalculatePotentialCarbonSavings(items []*entities.FoodItem) domain.PotentialCarbonSavings {
	if len(items) == 0 {
		return domain.PotentialCarbonSavings{}
	}

	var totalCO2 float64
	for _, item := range items {
		if item == nil {
			continue
		}
		totalCO2 += impact.ComputeItemImpact(item).CO2Kg
	}

	return domain.PotentialCarbonSavings{
		PotentialCO2SavedKg:    impact.Round2(totalCO2),
		ItemCount:              len(items),
		EquivalentCarsRemoved:  impact.Round2(totalCO2 / impact.CarCO2PerYearKg),
		EquivalentTreesPlanted: impact.Round2(totalCO2 / impact.TreeCO2PerYearKg),
	}
}
