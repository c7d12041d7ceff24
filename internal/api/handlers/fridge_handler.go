package handlers

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/internal/api/presenters"
	"Fridge-Elf-Backend/pkg/fridge"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FridgeHandler interface {
		CreateFridge(c *fiber.Ctx) error
		GetFridges(c *fiber.Ctx) error
		GetFridgeDetail(c *fiber.Ctx) error
		UpdateFridge(c *fiber.Ctx) error
		CreateCompartment(c *fiber.Ctx) error
		ReorderCompartments(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService fridge.FridgeService
		validator     *validator.Validate
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService, validator *validator.Validate) FridgeHandler {
	return &fridgeHandler{
		fridgeService: fridgeService,
		validator:     validator,
	}
}

func (h *fridgeHandler) CreateFridge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFridge, err)
	}

	res, err := h.fridgeService.CreateFridge(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFridge)
}

func (h *fridgeHandler) GetFridges(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.fridgeService.GetFridges(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridges, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFridges)
}

func (h *fridgeHandler) GetFridgeDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Params("id")

	res, err := h.fridgeService.GetFridgeDetail(c.Context(), fridgeID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFridgeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridgeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFridgeDetail)
}

func (h *fridgeHandler) UpdateFridge(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Params("id")
	req := new(domain.UpdateFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFridge, err)
	}

	res, err := h.fridgeService.UpdateFridge(c.Context(), fridgeID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateFridge, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFridge)
}

func (h *fridgeHandler) CreateCompartment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Params("id")
	req := new(domain.CreateCompartmentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCompartment, err)
	}

	res, err := h.fridgeService.CreateCompartment(c.Context(), fridgeID, *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateCompartment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCompartment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCompartment)
}

func (h *fridgeHandler) ReorderCompartments(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	fridgeID := c.Params("id")
	req := new(domain.ReorderCompartmentsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReorderCompartments, err)
	}

	if err := h.fridgeService.ReorderCompartments(c.Context(), fridgeID, *req, userID); err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedReorderCompartments, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReorderCompartments, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessReorderCompartments)
}
