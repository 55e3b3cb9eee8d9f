package leaderboard

import (
	"context"
	"errors"
	"math"

	"Track2Give-Backend/domain"
	"Track2Give-Backend/pkg/impact"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50

	anonymousDonor = "Anonymous Donor"
)

type (
	LeaderboardService interface {
		GetTopDonors(ctx context.Context, limit int) ([]domain.LeaderboardRow, error)
		GetTopCarbonSavers(ctx context.Context, limit int) ([]domain.LeaderboardRow, error)
		GetUserRank(ctx context.Context, userID string) (domain.UserRank, error)
		GetGlobalDonationStats(ctx context.Context) (domain.GlobalDonationStats, error)
	}

	leaderboardService struct {
		leaderboardRepository LeaderboardRepository
	}
)

func NewLeaderboardService(leaderboardRepository LeaderboardRepository) LeaderboardService {
	return &leaderboardService{leaderboardRepository: leaderboardRepository}
}

func clampLimit(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// GetTopDonors returns the most active donors, ordered by items
// shared, CO2 saved, items saved, then user id so identical stats
// always rank the same way.
func (s *leaderboardService) GetTopDonors(ctx context.Context, limit int) ([]domain.LeaderboardRow, error) {
	rows, err := s.leaderboardRepository.GetTopByItemsShared(ctx, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return toLeaderboardRows(rows), nil
}

// GetTopCarbonSavers mirrors GetTopDonors with CO2 saved as the
// primary key.
func (s *leaderboardService) GetTopCarbonSavers(ctx context.Context, limit int) ([]domain.LeaderboardRow, error) {
	rows, err := s.leaderboardRepository.GetTopByCO2Saved(ctx, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return toLeaderboardRows(rows), nil
}

// GetUserRank reports the user's position among active donors. A user
// with no completed shares is unranked, not placed at the bottom.
//
// Percentile here is the fraction of donors this user outranks,
// round(((totalDonors - rank) / totalDonors) * 100). This is not the
// standard percentile-rank convention; the UI depends on this exact
// formula.
func (s *leaderboardService) GetUserRank(ctx context.Context, userID string) (domain.UserRank, error) {
	totalDonors, err := s.leaderboardRepository.CountDonors(ctx)
	if err != nil {
		return domain.UserRank{}, err
	}

	stats, err := s.leaderboardRepository.GetStatsByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserRank{TotalDonors: totalDonors}, nil
		}
		return domain.UserRank{}, err
	}

	if stats.ItemsShared <= 0 {
		return domain.UserRank{
			TotalDonors: totalDonors,
			ItemsShared: stats.ItemsShared,
			CO2SavedKg:  stats.CO2SavedKg,
		}, nil
	}

	usersAhead, err := s.leaderboardRepository.CountDonorsAhead(ctx, stats.ItemsShared, stats.CO2SavedKg)
	if err != nil {
		return domain.UserRank{}, err
	}

	rank := int(usersAhead) + 1

	var percentile *int
	if totalDonors > 0 {
		p := int(math.Round(float64(totalDonors-int64(rank)) / float64(totalDonors) * 100))
		percentile = &p
	}

	return domain.UserRank{
		Rank:        &rank,
		TotalDonors: totalDonors,
		Percentile:  percentile,
		ItemsShared: stats.ItemsShared,
		CO2SavedKg:  stats.CO2SavedKg,
	}, nil
}

// GetGlobalDonationStats rolls up every ImpactStats record plus the
// count of currently available shared items.
func (s *leaderboardService) GetGlobalDonationStats(ctx context.Context) (domain.GlobalDonationStats, error) {
	agg, err := s.leaderboardRepository.GetDonationAggregates(ctx)
	if err != nil {
		return domain.GlobalDonationStats{}, err
	}

	availableItems, err := s.leaderboardRepository.CountAvailableSharedItems(ctx)
	if err != nil {
		return domain.GlobalDonationStats{}, err
	}

	if agg.TotalUsers == 0 {
		return domain.GlobalDonationStats{TotalAvailableItems: availableItems}, nil
	}

	return domain.GlobalDonationStats{
		TotalUsers:             agg.TotalUsers,
		TotalItemsSaved:        agg.TotalItemsSaved,
		TotalItemsShared:       agg.TotalItemsShared,
		TotalCO2SavedKg:        impact.Round2(agg.TotalCO2SavedKg),
		TotalWaterSavedLiters:  impact.Round2(agg.TotalWaterSavedLiters),
		TotalMoneySavedDollars: impact.Round2(agg.TotalMoneySavedDollars),
		AvgItemsSharedPerUser:  impact.Round2(agg.AvgItemsSharedPerUser),
		AvgCO2SavedPerUser:     impact.Round2(agg.AvgCO2SavedPerUser),
		TotalAvailableItems:    availableItems,
	}, nil
}

func toLeaderboardRows(rows []*RankedStats) []domain.LeaderboardRow {
	result := make([]domain.LeaderboardRow, 0, len(rows))
	for i, row := range rows {
		username := anonymousDonor
		if row.Username != nil && *row.Username != "" {
			username = *row.Username
		}

		profilePicture := ""
		if row.ProfilePicture != nil {
			profilePicture = *row.ProfilePicture
		}

		result = append(result, domain.LeaderboardRow{
			UserID:            row.UserID,
			Username:          username,
			ProfilePicture:    profilePicture,
			ItemsShared:       row.ItemsShared,
			ItemsSaved:        row.ItemsSaved,
			CO2SavedKg:        row.CO2SavedKg,
			WaterSavedLiters:  row.WaterSavedLiters,
			MoneySavedDollars: row.MoneySavedDollars,
			Rank:              i + 1,
		})
	}
	return result
}
