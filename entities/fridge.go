package entities

import (
	"github.com/google/uuid"
)

type Fridge struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	ModelName           string    `json:"model_name"`
	TotalCapacityLiters int       `json:"total_capacity_liters,omitempty"`

	User         *User               `gorm:"foreignKey:UserID" json:"-"`
	Compartments []FridgeCompartment `gorm:"foreignKey:FridgeID" json:"compartments,omitempty"`
	Timestamp
}

type FridgeCompartment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FridgeID  uuid.UUID `json:"fridge_id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`

	Timestamp
}
