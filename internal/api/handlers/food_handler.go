package handlers

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/internal/api/presenters"
	"Fridge-Elf-Backend/pkg/food"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		UpdateFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetFoodItemDetails(c *fiber.Ctx) error
		ArchiveFoodItem(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Params("id")
	req := new(domain.AddFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	res, err := h.foodService.AddFoodItem(c.Context(), fridgeID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) UpdateFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	if err := h.foodService.UpdateFoodItem(c.Context(), itemID, *req, userID); err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.foodService.DeleteFoodItem(c.Context(), itemID, userID); err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFoodItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Params("id")
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.foodService.GetFoodItems(c.Context(), fridgeID, userID, status, page, limit)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItemDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	res, err := h.foodService.GetFoodItemByID(c.Context(), itemID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodItem)
}

func (h *foodHandler) ArchiveFoodItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.ArchiveFoodItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedArchiveFoodItem, err)
	}

	res, err := h.foodService.ArchiveFoodItem(c.Context(), itemID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedArchiveFoodItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedArchiveFoodItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessArchiveFoodItem)
}
