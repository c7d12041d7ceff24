package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	FoodStatusActive   = "active"
	FoodStatusArchived = "archived"

	DisposalReasonUsed   = "used"
	DisposalReasonWasted = "wasted"
)

type FoodItem struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FridgeID       uuid.UUID  `json:"fridge_id"`
	CompartmentID  *uuid.UUID `json:"compartment_id,omitempty"`
	Name           string     `json:"name"`
	Category       *string    `json:"category,omitempty"`
	Price          *float64   `json:"price,omitempty"`
	Quantity       int        `json:"quantity"`
	PurchaseDate   time.Time  `gorm:"type:date" json:"purchase_date"`
	ExpiryDate     *time.Time `gorm:"type:date" json:"expiry_date,omitempty"`
	Status         string     `gorm:"default:active" json:"status"` // "active", "archived"
	DisposalReason *string    `json:"disposal_reason,omitempty"`    // "used", "wasted"
	ArchivedAt     *time.Time `json:"archived_at,omitempty"`

	Fridge *Fridge `gorm:"foreignKey:FridgeID" json:"-"`
	Timestamp
}
