package handlers

import (
	"strconv"

	"Track2Give-Backend/domain"
	"Track2Give-Backend/internal/api/presenters"
	"Track2Give-Backend/pkg/community"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommunityHandler interface {
		ShareFoodItem(c *fiber.Ctx) error
		GetAvailableItems(c *fiber.Ctx) error
		GetMySharedItems(c *fiber.Ctx) error
		ClaimSharedItem(c *fiber.Ctx) error
		CompleteShare(c *fiber.Ctx) error
		RemoveSharedItem(c *fiber.Ctx) error
	}

	communityHandler struct {
		communityService community.CommunityService
		validator        *validator.Validate
	}
)

func NewCommunityHandler(communityService community.CommunityService, validator *validator.Validate) CommunityHandler {
	return &communityHandler{
		communityService: communityService,
		validator:        validator,
	}
}

func (h *communityHandler) ShareFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ShareFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareFoodItem, err)
	}

	res, err := h.communityService.ShareFoodItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessShareFoodItem)
}

func (h *communityHandler) GetAvailableItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	search := c.Query("search")

	items, count, err := h.communityService.GetAvailableItems(c.Context(), userID, search, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSharedItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"total": count,
		"page":  page,
		"limit": limit,
	}, fiber.StatusOK, domain.MessageSuccessGetSharedItems)
}

func (h *communityHandler) GetMySharedItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.communityService.GetMySharedItems(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSharedItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetMySharedItems)
}

func (h *communityHandler) ClaimSharedItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.communityService.ClaimSharedItem(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClaimSharedItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClaimSharedItem)
}

func (h *communityHandler) CompleteShare(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.communityService.CompleteShare(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteShare, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteShare)
}

func (h *communityHandler) RemoveSharedItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.communityService.RemoveSharedItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveSharedItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveSharedItem)
}
