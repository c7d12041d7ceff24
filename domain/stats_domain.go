package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	MessageSuccessGetMonthlyStats  = "monthly stats retrieved successfully"
	MessageSuccessSendMonthlyStats = "monthly stats notification scheduled"
	MessageSuccessSendAllStats     = "monthly stats notifications scheduled for all users"

	MessageFailedGetMonthlyStats  = "failed to retrieve monthly stats"
	MessageFailedSendMonthlyStats = "failed to send monthly stats notification"
	MessageFailedSendAllStats     = "failed to send monthly stats notifications"

	ErrInvalidMonthFormat = errors.New("month must be in YYYY-MM format")
	ErrNoStatsData        = errors.New("no stats data for this month")
)

type (
	// MonthlyStats is computed fresh on every request and never persisted.
	MonthlyStats struct {
		SavedMoney         float64   `json:"saved_money"`
		WastedMoney        float64   `json:"wasted_money"`
		TotalPurchased     float64   `json:"total_purchased"`
		SaveRate           float64   `json:"save_rate"`
		WasteRate          float64   `json:"waste_rate"`
		UsedCount          int       `json:"used_count"`
		WastedCount        int       `json:"wasted_count"`
		PurchasedCount     int       `json:"purchased_count"`
		MostWastedCategory *string   `json:"most_wasted_category,omitempty"`
		Suggestions        []string  `json:"suggestions"`
		Month              string    `json:"month"`
		UserID             uuid.UUID `json:"user_id"`
		FridgeID           uuid.UUID `json:"fridge_id"`
	}

	// ExpiringItemNotice is one row of an expiry warning notification.
	ExpiringItemNotice struct {
		Name          string `json:"name"`
		ExpiryDate    string `json:"expiry_date"` // ISO date
		DaysRemaining int    `json:"days_remaining"`
	}

	SendAllStatsResponse struct {
		SentCount int `json:"sent_count"`
	}
)
