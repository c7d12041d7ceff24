package notification

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		GetSettings(ctx context.Context, userID string) (domain.NotificationSettingsResponse, error)
		UpdateSettings(ctx context.Context, userID string, req domain.UpdateNotificationSettingsRequest) (domain.NotificationSettingsResponse, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func (s *notificationService) GetSettings(ctx context.Context, userID string) (domain.NotificationSettingsResponse, error) {
	settings, err := s.getOrCreateSettings(ctx, userID)
	if err != nil {
		return domain.NotificationSettingsResponse{}, err
	}
	return toSettingsResponse(settings), nil
}

func (s *notificationService) UpdateSettings(ctx context.Context, userID string, req domain.UpdateNotificationSettingsRequest) (domain.NotificationSettingsResponse, error) {
	settings, err := s.getOrCreateSettings(ctx, userID)
	if err != nil {
		return domain.NotificationSettingsResponse{}, err
	}

	if req.ExpiryWarningEnabled != nil {
		settings.ExpiryWarningEnabled = *req.ExpiryWarningEnabled
	}
	if req.ExpiryWarningDays != nil {
		settings.ExpiryWarningDays = *req.ExpiryWarningDays
	}
	if req.LowStockEnabled != nil {
		settings.LowStockEnabled = *req.LowStockEnabled
	}
	if req.LowStockThreshold != nil {
		settings.LowStockThreshold = *req.LowStockThreshold
	}
	if req.SpaceWarningEnabled != nil {
		settings.SpaceWarningEnabled = *req.SpaceWarningEnabled
	}
	if req.SpaceWarningThreshold != nil {
		settings.SpaceWarningThreshold = *req.SpaceWarningThreshold
	}
	if req.NotificationTime != nil {
		if _, err := time.Parse("15:04", *req.NotificationTime); err != nil {
			return domain.NotificationSettingsResponse{}, domain.ErrInvalidNotificationTime
		}
		settings.NotificationTime = *req.NotificationTime
	}

	if err := s.notificationRepository.Update(ctx, settings); err != nil {
		return domain.NotificationSettingsResponse{}, err
	}
	return toSettingsResponse(settings), nil
}

// getOrCreateSettings lazily creates default settings the first time a user's
// settings are touched.
func (s *notificationService) getOrCreateSettings(ctx context.Context, userID string) (*entities.NotificationSettings, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	settings, err := s.notificationRepository.GetByUserID(ctx, userUUID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = DefaultSettings(userUUID)
	if err := s.notificationRepository.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// DefaultSettings returns the fixed defaults applied on first contact.
func DefaultSettings(userID uuid.UUID) *entities.NotificationSettings {
	return &entities.NotificationSettings{
		ID:                    uuid.New(),
		UserID:                userID,
		ExpiryWarningEnabled:  true,
		ExpiryWarningDays:     3,
		LowStockEnabled:       false,
		LowStockThreshold:     1,
		SpaceWarningEnabled:   true,
		SpaceWarningThreshold: 80,
		NotificationTime:      "09:00",
	}
}

func toSettingsResponse(settings *entities.NotificationSettings) domain.NotificationSettingsResponse {
	return domain.NotificationSettingsResponse{
		ExpiryWarningEnabled:  settings.ExpiryWarningEnabled,
		ExpiryWarningDays:     settings.ExpiryWarningDays,
		LowStockEnabled:       settings.LowStockEnabled,
		LowStockThreshold:     settings.LowStockThreshold,
		SpaceWarningEnabled:   settings.SpaceWarningEnabled,
		SpaceWarningThreshold: settings.SpaceWarningThreshold,
		NotificationTime:      settings.NotificationTime,
	}
}
