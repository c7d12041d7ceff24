package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateFridge        = "fridge created successfully"
	MessageSuccessGetFridges          = "fridges retrieved successfully"
	MessageSuccessGetFridgeDetail     = "fridge detail retrieved successfully"
	MessageSuccessUpdateFridge        = "fridge updated successfully"
	MessageSuccessCreateCompartment   = "compartment created successfully"
	MessageSuccessReorderCompartments = "compartments reordered successfully"

	MessageFailedCreateFridge        = "failed to create fridge"
	MessageFailedGetFridges          = "failed to retrieve fridges"
	MessageFailedGetFridgeDetail     = "failed to retrieve fridge detail"
	MessageFailedUpdateFridge        = "failed to update fridge"
	MessageFailedCreateCompartment   = "failed to create compartment"
	MessageFailedReorderCompartments = "failed to reorder compartments"

	ErrFridgeNotFound      = errors.New("fridge not found")
	ErrCompartmentNotFound = errors.New("compartment not found")
)

type (
	CreateFridgeRequest struct {
		ModelName           string `json:"model_name" validate:"required"`
		TotalCapacityLiters int    `json:"total_capacity_liters" validate:"omitempty,min=1"`
	}

	UpdateFridgeRequest struct {
		ModelName           string `json:"model_name" validate:"omitempty"`
		TotalCapacityLiters int    `json:"total_capacity_liters" validate:"omitempty,min=1"`
	}

	FridgeResponse struct {
		ID                  string    `json:"id"`
		UserID              string    `json:"user_id"`
		ModelName           string    `json:"model_name"`
		TotalCapacityLiters int       `json:"total_capacity_liters,omitempty"`
		CompartmentMode     string    `json:"compartment_mode"` // "simple" or "detailed"
		CreatedAt           time.Time `json:"created_at"`
	}

	FridgeDetailResponse struct {
		FridgeResponse
		Compartments []CompartmentResponse `json:"compartments"`
	}

	CreateCompartmentRequest struct {
		Name      string `json:"name" validate:"required"`
		SortOrder int    `json:"sort_order" validate:"omitempty,min=0"`
	}

	CompartmentResponse struct {
		ID        string `json:"id"`
		FridgeID  string `json:"fridge_id"`
		Name      string `json:"name"`
		SortOrder int    `json:"sort_order"`
	}

	CompartmentOrder struct {
		ID        string `json:"id" validate:"required,uuid"`
		SortOrder int    `json:"sort_order" validate:"min=0"`
	}

	ReorderCompartmentsRequest struct {
		Orders []CompartmentOrder `json:"orders" validate:"required,dive"`
	}
)
