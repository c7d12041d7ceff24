package handlers

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/internal/api/presenters"
	"Fridge-Elf-Backend/pkg/notification"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetSettings(c *fiber.Ctx) error
		UpdateSettings(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewNotificationHandler(notificationService notification.NotificationService, validator *validator.Validate) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *notificationHandler) GetSettings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.notificationService.GetSettings(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotificationSettings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotificationSettings)
}

func (h *notificationHandler) UpdateSettings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateNotificationSettingsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNotificationSettings, err)
	}

	res, err := h.notificationService.UpdateSettings(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateNotificationSettings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateNotificationSettings)
}
