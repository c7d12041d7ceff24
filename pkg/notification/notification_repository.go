package notification

import (
	"Fridge-Elf-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.NotificationSettings, error)
		Create(ctx context.Context, settings *entities.NotificationSettings) error
		Update(ctx context.Context, settings *entities.NotificationSettings) error

		// Job scope queries: settings rows with the relevant warning enabled,
		// with the owning user preloaded for the push address.
		GetByExpiryWarningEnabled(ctx context.Context) ([]entities.NotificationSettings, error)
		GetBySpaceWarningEnabled(ctx context.Context) ([]entities.NotificationSettings, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.NotificationSettings, error) {
	var settings entities.NotificationSettings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *notificationRepository) Create(ctx context.Context, settings *entities.NotificationSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *notificationRepository) Update(ctx context.Context, settings *entities.NotificationSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *notificationRepository) GetByExpiryWarningEnabled(ctx context.Context) ([]entities.NotificationSettings, error) {
	var settingsList []entities.NotificationSettings
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("expiry_warning_enabled = ?", true).
		Find(&settingsList).Error; err != nil {
		return nil, err
	}
	return settingsList, nil
}

func (r *notificationRepository) GetBySpaceWarningEnabled(ctx context.Context) ([]entities.NotificationSettings, error) {
	var settingsList []entities.NotificationSettings
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("space_warning_enabled = ?", true).
		Find(&settingsList).Error; err != nil {
		return nil, err
	}
	return settingsList, nil
}
