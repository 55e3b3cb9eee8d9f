package handlers

import (
	"strconv"

	"Track2Give-Backend/domain"
	"Track2Give-Backend/internal/api/presenters"
	"Track2Give-Backend/pkg/leaderboard"

	"github.com/gofiber/fiber/v2"
)

type (
	LeaderboardHandler interface {
		GetTopDonors(c *fiber.Ctx) error
		GetTopCarbonSavers(c *fiber.Ctx) error
		GetMyRank(c *fiber.Ctx) error
		GetGlobalDonationStats(c *fiber.Ctx) error
	}

	leaderboardHandler struct {
		leaderboardService leaderboard.LeaderboardService
	}
)

func NewLeaderboardHandler(leaderboardService leaderboard.LeaderboardService) LeaderboardHandler {
	return &leaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

func (h *leaderboardHandler) GetTopDonors(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	res, err := h.leaderboardService.GetTopDonors(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTopDonors, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTopDonors)
}

func (h *leaderboardHandler) GetTopCarbonSavers(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	res, err := h.leaderboardService.GetTopCarbonSavers(c.Context(), limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTopSavers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTopSavers)
}

func (h *leaderboardHandler) GetMyRank(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.leaderboardService.GetUserRank(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUserRank, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserRank)
}

func (h *leaderboardHandler) GetGlobalDonationStats(c *fiber.Ctx) error {
	res, err := h.leaderboardService.GetGlobalDonationStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonationStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonationStats)
}
