package line

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/internal/utils"
	"Fridge-Elf-Backend/pkg/user"
	"context"
	"fmt"
	"strings"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/rs/zerolog"
)

// maxExpiryItemsShown limits the rows rendered in the expiry bubble. The
// notification still reports the true total count.
const maxExpiryItemsShown = 5

type (
	LineService interface {
		SendTextMessage(lineUserID string, text string) error
		SendExpiryNotification(lineUserID string, items []domain.ExpiringItemNotice) error
		SendSpaceWarning(lineUserID string, usagePercentage float64) error
		SendMonthlyStats(lineUserID string, stats domain.MonthlyStats) error
		HandleEvents(ctx context.Context, events []*linebot.Event)
	}

	lineService struct {
		bot         *linebot.Client
		userService user.UserService
		liffID      string
		log         zerolog.Logger
	}
)

func NewLineService(userService user.UserService, log zerolog.Logger) (LineService, error) {
	bot, err := linebot.New(
		utils.GetConfig("LINE_CHANNEL_SECRET"),
		utils.GetConfig("LINE_CHANNEL_ACCESS_TOKEN"),
	)
	if err != nil {
		return nil, err
	}
	return &lineService{
		bot:         bot,
		userService: userService,
		liffID:      utils.GetConfig("LIFF_ID"),
		log:         log,
	}, nil
}

func (s *lineService) SendTextMessage(lineUserID string, text string) error {
	_, err := s.bot.PushMessage(lineUserID, linebot.NewTextMessage(text)).Do()
	if err != nil {
		s.log.Error().Err(err).Str("line_user_id", lineUserID).Msg("failed to push text message")
		return err
	}
	return nil
}

func (s *lineService) SendExpiryNotification(lineUserID string, items []domain.ExpiringItemNotice) error {
	if len(items) == 0 {
		return nil
	}

	shown := items
	if len(shown) > maxExpiryItemsShown {
		shown = shown[:maxExpiryItemsShown]
	}

	rows := make([]linebot.FlexComponent, 0, len(shown))
	for _, item := range shown {
		daysText, color := expiryLabel(item.DaysRemaining)
		rows = append(rows, &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeHorizontal,
			Margin: linebot.FlexComponentMarginTypeMd,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:  linebot.FlexComponentTypeText,
					Text:  item.Name,
					Size:  linebot.FlexTextSizeTypeSm,
					Color: "#555555",
				},
				&linebot.TextComponent{
					Type:  linebot.FlexComponentTypeText,
					Text:  daysText,
					Size:  linebot.FlexTextSizeTypeSm,
					Color: color,
					Align: linebot.FlexComponentAlignTypeEnd,
				},
			},
		})
	}

	bubble := &linebot.BubbleContainer{
		Type: linebot.FlexContainerTypeBubble,
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   "Expiry reminder",
					Weight: linebot.FlexTextWeightTypeBold,
					Size:   linebot.FlexTextSizeTypeLg,
					Color:  "#1DB446",
				},
				&linebot.TextComponent{
					Type:   linebot.FlexComponentTypeText,
					Text:   fmt.Sprintf("%d item(s) in your fridge need attention", len(items)),
					Size:   linebot.FlexTextSizeTypeSm,
					Color:  "#999999",
					Margin: linebot.FlexComponentMarginTypeMd,
				},
				&linebot.SeparatorComponent{
					Type:   linebot.FlexComponentTypeSeparator,
					Margin: linebot.FlexComponentMarginTypeLg,
				},
				&linebot.BoxComponent{
					Type:     linebot.FlexComponentTypeBox,
					Layout:   linebot.FlexBoxLayoutTypeVertical,
					Margin:   linebot.FlexComponentMarginTypeLg,
					Contents: rows,
				},
			},
		},
		Footer: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.ButtonComponent{
					Type:   linebot.FlexComponentTypeButton,
					Style:  linebot.FlexButtonStyleTypePrimary,
					Color:  "#1DB446",
					Action: linebot.NewURIAction("Open fridge", "https://liff.line.me/"+s.liffID),
				},
			},
		},
	}

	altText := fmt.Sprintf("%d item(s) in your fridge expire soon", len(items))
	_, err := s.bot.PushMessage(lineUserID, linebot.NewFlexMessage(altText, bubble)).Do()
	if err != nil {
		s.log.Error().Err(err).Str("line_user_id", lineUserID).Msg("failed to push expiry notification")
		return err
	}
	return nil
}

func (s *lineService) SendSpaceWarning(lineUserID string, usagePercentage float64) error {
	text := fmt.Sprintf(
		"Space reminder\n\nYour fridge is %.1f%% full. Consider tidying it up or using some items.",
		usagePercentage,
	)
	return s.SendTextMessage(lineUserID, text)
}

func (s *lineService) SendMonthlyStats(lineUserID string, stats domain.MonthlyStats) error {
	return s.SendTextMessage(lineUserID, buildMonthlyStatsMessage(stats, s.liffID))
}

// HandleEvents processes webhook events. A failing event is logged and
// skipped so LINE never retries the whole batch.
func (s *lineService) HandleEvents(ctx context.Context, events []*linebot.Event) {
	for _, event := range events {
		switch event.Type {
		case linebot.EventTypeFollow:
			s.handleFollow(ctx, event)
		case linebot.EventTypeMessage:
			if message, ok := event.Message.(*linebot.TextMessage); ok {
				s.handleTextMessage(ctx, event, message)
			}
		}
	}
}

func (s *lineService) handleFollow(ctx context.Context, event *linebot.Event) {
	lineUserID := event.Source.UserID

	displayName := ""
	if profile, err := s.bot.GetProfile(lineUserID).Do(); err == nil {
		displayName = profile.DisplayName
	}

	if _, err := s.userService.EnsureLineUser(ctx, lineUserID, displayName); err != nil {
		s.log.Error().Err(err).Str("line_user_id", lineUserID).Msg("failed to register followed user")
		return
	}

	welcome := "Welcome to Fridge Elf!\n\nOpen the LIFF app to set up your fridge and start tracking your food."
	if _, err := s.bot.ReplyMessage(event.ReplyToken, linebot.NewTextMessage(welcome)).Do(); err != nil {
		s.log.Error().Err(err).Str("line_user_id", lineUserID).Msg("failed to reply to follow event")
	}
}

func (s *lineService) handleTextMessage(ctx context.Context, event *linebot.Event, message *linebot.TextMessage) {
	lineUserID := event.Source.UserID
	text := strings.TrimSpace(message.Text)

	s.log.Info().Str("line_user_id", lineUserID).Str("text", text).Msg("received text message")

	var reply string
	switch strings.ToLower(text) {
	case "hello", "hi", "hey":
		reply = "Hello! Welcome to Fridge Elf.\n\nUse the LIFF app to manage your fridge."
	case "help":
		reply = "Fridge Elf can:\n\n" +
			"1. Track food items in your fridge\n" +
			"2. Remind you before items expire\n" +
			"3. Warn you when the fridge gets full\n" +
			"4. Send a monthly savings report\n\n" +
			"Open the menu below to get started!"
	default:
		reply = fmt.Sprintf("You said: %q\n\nThis command is not available yet. Please use the LIFF app to manage your food.", text)
	}

	if _, err := s.bot.ReplyMessage(event.ReplyToken, linebot.NewTextMessage(reply)).Do(); err != nil {
		s.log.Error().Err(err).Str("line_user_id", lineUserID).Msg("failed to reply to text message")
	}
}

func expiryLabel(daysRemaining int) (string, string) {
	switch {
	case daysRemaining < 0:
		return fmt.Sprintf("expired %d day(s) ago", -daysRemaining), "#FF0000"
	case daysRemaining == 0:
		return "expires today", "#FF0000"
	default:
		return fmt.Sprintf("expires in %d day(s)", daysRemaining), "#FF9900"
	}
}

func buildMonthlyStatsMessage(stats domain.MonthlyStats, liffID string) string {
	parts := []string{
		fmt.Sprintf("%s savings report", stats.Month),
		"",
		"This month's results:",
		fmt.Sprintf("Money saved: $%.2f", stats.SavedMoney),
		fmt.Sprintf("Save rate: %.1f%%", stats.SaveRate),
		fmt.Sprintf("Items used up: %d", stats.UsedCount),
	}

	if stats.WastedCount > 0 {
		parts = append(parts, fmt.Sprintf("Items wasted: %d ($%.2f)", stats.WastedCount, stats.WastedMoney))
	}

	if len(stats.Suggestions) > 0 {
		parts = append(parts, "", "Suggestions for you:")
		for _, suggestion := range stats.Suggestions {
			parts = append(parts, "- "+suggestion)
		}
	}

	parts = append(parts, "", "See the details here: https://liff.line.me/"+liffID)
	return strings.Join(parts, "\n")
}
