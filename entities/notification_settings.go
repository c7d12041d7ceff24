package entities

import (
	"github.com/google/uuid"
)

type NotificationSettings struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID                uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	ExpiryWarningEnabled  bool      `gorm:"default:true" json:"expiry_warning_enabled"`
	ExpiryWarningDays     int       `gorm:"default:3" json:"expiry_warning_days"`
	LowStockEnabled       bool      `gorm:"default:false" json:"low_stock_enabled"`
	LowStockThreshold     int       `gorm:"default:1" json:"low_stock_threshold"`
	SpaceWarningEnabled   bool      `gorm:"default:true" json:"space_warning_enabled"`
	SpaceWarningThreshold int       `gorm:"default:80" json:"space_warning_threshold"` // percentage 0-100
	NotificationTime      string    `gorm:"default:'09:00'" json:"notification_time"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
