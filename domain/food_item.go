package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodItem     = "food item added successfully"
	MessageSuccessUpdateFoodItem  = "food item updated successfully"
	MessageSuccessDeleteFoodItem  = "food item deleted successfully"
	MessageSuccessGetFoodItems    = "food items retrieved successfully"
	MessageSuccessGetFoodItem     = "food item retrieved successfully"
	MessageSuccessArchiveFoodItem = "food item archived successfully"

	MessageFailedAddFoodItem     = "failed to add food item"
	MessageFailedUpdateFoodItem  = "failed to update food item"
	MessageFailedDeleteFoodItem  = "failed to delete food item"
	MessageFailedGetFoodItems    = "failed to retrieve food items"
	MessageFailedGetFoodItem     = "failed to retrieve food item"
	MessageFailedArchiveFoodItem = "failed to archive food item"

	ErrFoodItemNotFound      = errors.New("food item not found")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrInvalidPurchaseDate   = errors.New("invalid purchase date")
	ErrInvalidPrice          = errors.New("price must not be negative")
	ErrItemAlreadyArchived   = errors.New("food item already archived")
	ErrInvalidDisposalReason = errors.New("disposal reason must be used or wasted")
	ErrUnauthorizedAccess    = errors.New("unauthorized access to food item")
)

type (
	AddFoodItemRequest struct {
		Name          string   `json:"name" validate:"required"`
		Category      *string  `json:"category" validate:"omitempty"`
		Price         *float64 `json:"price" validate:"omitempty,gte=0"`
		Quantity      int      `json:"quantity" validate:"required,min=1"`
		PurchaseDate  string   `json:"purchase_date" validate:"required"`
		ExpiryDate    string   `json:"expiry_date" validate:"omitempty"`
		CompartmentID string   `json:"compartment_id" validate:"omitempty,uuid"`
	}

	UpdateFoodItemRequest struct {
		Name       string   `json:"name" validate:"omitempty"`
		Category   *string  `json:"category" validate:"omitempty"`
		Price      *float64 `json:"price" validate:"omitempty,gte=0"`
		Quantity   int      `json:"quantity" validate:"omitempty,min=1"`
		ExpiryDate string   `json:"expiry_date" validate:"omitempty"`
	}

	ArchiveFoodItemRequest struct {
		DisposalReason string `json:"disposal_reason" validate:"required,oneof=used wasted"`
	}

	FoodItemResponse struct {
		ID             string     `json:"id"`
		FridgeID       string     `json:"fridge_id"`
		Name           string     `json:"name"`
		Category       *string    `json:"category,omitempty"`
		Price          *float64   `json:"price,omitempty"`
		Quantity       int        `json:"quantity"`
		PurchaseDate   time.Time  `json:"purchase_date"`
		ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
		Status         string     `json:"status"`
		DisposalReason *string    `json:"disposal_reason,omitempty"`
		ArchivedAt     *time.Time `json:"archived_at,omitempty"`
		CreatedAt      time.Time  `json:"created_at"`
	}
)
