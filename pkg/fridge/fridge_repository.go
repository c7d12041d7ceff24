package fridge

import (
	"Fridge-Elf-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeRepository interface {
		Create(ctx context.Context, fridge *entities.Fridge) error
		Update(ctx context.Context, fridge *entities.Fridge) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Fridge, error)
		GetByUser(ctx context.Context, userID uuid.UUID) ([]entities.Fridge, error)
		GetFirstByUser(ctx context.Context, userID uuid.UUID) (*entities.Fridge, error)
		DistinctUserIDs(ctx context.Context) ([]uuid.UUID, error)

		CreateCompartment(ctx context.Context, compartment *entities.FridgeCompartment) error
		GetCompartments(ctx context.Context, fridgeID uuid.UUID) ([]entities.FridgeCompartment, error)
		UpdateCompartmentOrder(ctx context.Context, fridgeID, compartmentID uuid.UUID, sortOrder int) error
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

func (r *fridgeRepository) Create(ctx context.Context, fridge *entities.Fridge) error {
	return r.db.WithContext(ctx).Create(fridge).Error
}

func (r *fridgeRepository) Update(ctx context.Context, fridge *entities.Fridge) error {
	return r.db.WithContext(ctx).Save(fridge).Error
}

func (r *fridgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Fridge, error) {
	var fridge entities.Fridge
	if err := r.db.WithContext(ctx).
		Preload("Compartments").
		Where("id = ?", id).
		First(&fridge).Error; err != nil {
		return nil, err
	}
	return &fridge, nil
}

func (r *fridgeRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]entities.Fridge, error) {
	var fridges []entities.Fridge
	if err := r.db.WithContext(ctx).
		Preload("Compartments").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&fridges).Error; err != nil {
		return nil, err
	}
	return fridges, nil
}

// GetFirstByUser returns the user's oldest fridge. Monthly statistics are
// computed against this fridge only, even when a user owns several.
func (r *fridgeRepository) GetFirstByUser(ctx context.Context, userID uuid.UUID) (*entities.Fridge, error) {
	var fridge entities.Fridge
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		First(&fridge).Error; err != nil {
		return nil, err
	}
	return &fridge, nil
}

func (r *fridgeRepository) DistinctUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&entities.Fridge{}).
		Distinct("user_id").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}

func (r *fridgeRepository) CreateCompartment(ctx context.Context, compartment *entities.FridgeCompartment) error {
	return r.db.WithContext(ctx).Create(compartment).Error
}

func (r *fridgeRepository) GetCompartments(ctx context.Context, fridgeID uuid.UUID) ([]entities.FridgeCompartment, error) {
	var compartments []entities.FridgeCompartment
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ?", fridgeID).
		Order("sort_order asc, created_at asc").
		Find(&compartments).Error; err != nil {
		return nil, err
	}
	return compartments, nil
}

func (r *fridgeRepository) UpdateCompartmentOrder(ctx context.Context, fridgeID, compartmentID uuid.UUID, sortOrder int) error {
	return r.db.WithContext(ctx).
		Model(&entities.FridgeCompartment{}).
		Where("id = ? AND fridge_id = ?", compartmentID, fridgeID).
		Update("sort_order", sortOrder).Error
}
