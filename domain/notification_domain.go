package domain

import (
	"errors"
)

var (
	MessageSuccessGetNotificationSettings    = "notification settings retrieved successfully"
	MessageSuccessUpdateNotificationSettings = "notification settings updated successfully"

	MessageFailedGetNotificationSettings    = "failed to retrieve notification settings"
	MessageFailedUpdateNotificationSettings = "failed to update notification settings"

	ErrInvalidNotificationTime = errors.New("notification time must be in HH:MM format")
)

type (
	UpdateNotificationSettingsRequest struct {
		ExpiryWarningEnabled  *bool   `json:"expiry_warning_enabled" validate:"omitempty"`
		ExpiryWarningDays     *int    `json:"expiry_warning_days" validate:"omitempty,min=1,max=30"`
		LowStockEnabled       *bool   `json:"low_stock_enabled" validate:"omitempty"`
		LowStockThreshold     *int    `json:"low_stock_threshold" validate:"omitempty,min=1"`
		SpaceWarningEnabled   *bool   `json:"space_warning_enabled" validate:"omitempty"`
		SpaceWarningThreshold *int    `json:"space_warning_threshold" validate:"omitempty,min=0,max=100"`
		NotificationTime      *string `json:"notification_time" validate:"omitempty"`
	}

	NotificationSettingsResponse struct {
		ExpiryWarningEnabled  bool   `json:"expiry_warning_enabled"`
		ExpiryWarningDays     int    `json:"expiry_warning_days"`
		LowStockEnabled       bool   `json:"low_stock_enabled"`
		LowStockThreshold     int    `json:"low_stock_threshold"`
		SpaceWarningEnabled   bool   `json:"space_warning_enabled"`
		SpaceWarningThreshold int    `json:"space_warning_threshold"`
		NotificationTime      string `json:"notification_time"`
	}
)
