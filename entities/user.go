package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LineUserID  string    `gorm:"uniqueIndex" json:"line_user_id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`

	Timestamp
}
