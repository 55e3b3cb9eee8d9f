package handlers

import (
	"Track2Give-Backend/domain"
	"Track2Give-Backend/internal/api/presenters"
	"Track2Give-Backend/pkg/carbon"
	"Track2Give-Backend/pkg/impact"

	"github.com/gofiber/fiber/v2"
)

type (
	CarbonHandler interface {
		GetUserImpact(c *fiber.Ctx) error
		GetCarbonHistory(c *fiber.Ctx) error
		GetCarbonBreakdown(c *fiber.Ctx) error
		GetGlobalCarbonStats(c *fiber.Ctx) error
		GetPotentialSavings(c *fiber.Ctx) error
	}

	carbonHandler struct {
		carbonService carbon.CarbonService
		impactService impact.ImpactService
	}
)

func NewCarbonHandler(carbonService carbon.CarbonService, impactService impact.ImpactService) CarbonHandler {
	return &carbonHandler{
		carbonService: carbonService,
		impactService: impactService,
	}
}

func (h *carbonHandler) GetUserImpact(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.impactService.GetUserImpact(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUserImpact, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUserImpact)
}

func (h *carbonHandler) GetCarbonHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	period := c.Query("period", carbon.PeriodMonth)

	res, err := h.carbonService.GetUserCarbonHistory(c.Context(), userID, period)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCarbonHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCarbonHistory)
}

func (h *carbonHandler) GetCarbonBreakdown(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.carbonService.GetCarbonBreakdownByCategory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCarbonBreakdown, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCarbonBreakdown)
}

func (h *carbonHandler) GetGlobalCarbonStats(c *fiber.Ctx) error {
	res, err := h.carbonService.GetGlobalCarbonStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGlobalCarbon, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGlobalCarbon)
}

func (h *carbonHandler) GetPotentialSavings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.carbonService.GetPotentialCarbonSavings(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPotentialCarbon, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPotentialCarbon)
}
