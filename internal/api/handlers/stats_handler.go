package handlers

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/internal/api/presenters"
	"Fridge-Elf-Backend/pkg/stats"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type (
	StatsHandler interface {
		GetMonthlyStats(c *fiber.Ctx) error
		SendMonthlyStats(c *fiber.Ctx) error
		SendAllMonthlyStats(c *fiber.Ctx) error
	}

	statsHandler struct {
		statsService stats.StatsService
		log          zerolog.Logger
	}
)

func NewStatsHandler(statsService stats.StatsService, log zerolog.Logger) StatsHandler {
	return &statsHandler{
		statsService: statsService,
		log:          log,
	}
}

func (h *statsHandler) GetMonthlyStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var month *time.Time
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMonthlyStats, domain.ErrInvalidMonthFormat)
		}
		month = &parsed
	}

	res, err := h.statsService.GetMonthlyStats(c.Context(), userID, month)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMonthlyStats, err)
	}
	if res == nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetMonthlyStats, domain.ErrNoStatsData)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMonthlyStats)
}

// SendMonthlyStats computes the caller's report synchronously, then dispatches
// the push in the background so a slow LINE API never blocks the request.
func (h *statsHandler) SendMonthlyStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.statsService.GetMonthlyStats(c.Context(), userID, nil)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendMonthlyStats, err)
	}
	if res == nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSendMonthlyStats, domain.ErrNoStatsData)
	}

	go func() {
		if _, err := h.statsService.SendMonthlyReport(context.Background(), userID); err != nil {
			h.log.Error().Err(err).Str("user_id", userID).Msg("failed to send monthly report")
		}
	}()

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSendMonthlyStats)
}

// SendAllMonthlyStats aggregates every user's report once, replies with the
// count, and dispatches the already-computed reports in the background.
func (h *statsHandler) SendAllMonthlyStats(c *fiber.Ctx) error {
	allStats, err := h.statsService.GetAllMonthlyStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendAllStats, err)
	}

	go func() {
		h.statsService.DispatchMonthlyReports(context.Background(), allStats)
	}()

	return presenters.SuccessResponse(c, domain.SendAllStatsResponse{
		SentCount: len(allStats),
	}, fiber.StatusOK, domain.MessageSuccessSendAllStats)
}
