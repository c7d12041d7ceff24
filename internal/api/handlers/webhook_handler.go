package handlers

import (
	"Fridge-Elf-Backend/internal/utils"
	"Fridge-Elf-Backend/pkg/line"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/rs/zerolog"
)

type (
	WebhookHandler interface {
		LineWebhook(c *fiber.Ctx) error
	}

	webhookHandler struct {
		lineService line.LineService
		log         zerolog.Logger
	}
)

func NewWebhookHandler(lineService line.LineService, log zerolog.Logger) WebhookHandler {
	return &webhookHandler{
		lineService: lineService,
		log:         log,
	}
}

func (h *webhookHandler) LineWebhook(c *fiber.Ctx) error {
	body := c.Body()
	signature := c.Get("X-Line-Signature")

	if !verifySignature(utils.GetConfig("LINE_CHANNEL_SECRET"), body, signature) {
		h.log.Warn().Msg("LINE webhook signature verification failed")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid signature"})
	}

	var payload struct {
		Events []*linebot.Event `json:"events"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		h.log.Error().Err(err).Msg("failed to parse LINE webhook payload")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid payload"})
	}

	h.lineService.HandleEvents(c.Context(), payload.Events)

	return c.JSON(fiber.Map{"status": "ok"})
}

// verifySignature checks the X-Line-Signature header: a base64-encoded
// HMAC-SHA256 of the raw request body keyed with the channel secret.
func verifySignature(channelSecret string, body []byte, signature string) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), decoded)
}
