package food

import (
	"Fridge-Elf-Backend/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id uuid.UUID) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id uuid.UUID) error
		GetFoodItems(ctx context.Context, fridgeID uuid.UUID, status string, page, limit int) ([]entities.FoodItem, int64, error)

		// Scheduled-job queries. Every job run reads fresh state; nothing
		// here is cached between invocations.
		GetExpiringItems(ctx context.Context, userID uuid.UUID, warningDate time.Time) ([]entities.FoodItem, error)
		CountActiveItems(ctx context.Context, fridgeID uuid.UUID) (int64, error)
		GetArchivedInRange(ctx context.Context, fridgeID uuid.UUID, start, end time.Time) ([]entities.FoodItem, error)
		GetPurchasedInRange(ctx context.Context, fridgeID uuid.UUID, start, end time.Time) ([]entities.FoodItem, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id uuid.UUID) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Preload("Fridge").
		Where("id = ?", id).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(foodItem).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetFoodItems(ctx context.Context, fridgeID uuid.UUID, status string, page, limit int) ([]entities.FoodItem, int64, error) {
	var foodItems []entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("fridge_id = ?", fridgeID)
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc").Find(&foodItems).Error; err != nil {
		return nil, 0, err
	}

	return foodItems, count, nil
}

// GetExpiringItems returns every active item across the user's fridges with an
// expiry date on or before warningDate. Already-expired items are included.
func (r *foodRepository) GetExpiringItems(ctx context.Context, userID uuid.UUID, warningDate time.Time) ([]entities.FoodItem, error) {
	var foodItems []entities.FoodItem
	if err := r.db.WithContext(ctx).
		Joins("JOIN fridges ON fridges.id = food_items.fridge_id").
		Where("fridges.user_id = ?", userID).
		Where("food_items.status = ?", entities.FoodStatusActive).
		Where("food_items.expiry_date IS NOT NULL").
		Where("food_items.expiry_date <= ?", warningDate).
		Order("food_items.expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) CountActiveItems(ctx context.Context, fridgeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.FoodItem{}).
		Where("fridge_id = ? AND status = ?", fridgeID, entities.FoodStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *foodRepository) GetArchivedInRange(ctx context.Context, fridgeID uuid.UUID, start, end time.Time) ([]entities.FoodItem, error) {
	var foodItems []entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ? AND status = ?", fridgeID, entities.FoodStatusArchived).
		Where("archived_at BETWEEN ? AND ?", start, end).
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

func (r *foodRepository) GetPurchasedInRange(ctx context.Context, fridgeID uuid.UUID, start, end time.Time) ([]entities.FoodItem, error) {
	var foodItems []entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ?", fridgeID).
		Where("purchase_date BETWEEN ? AND ?", start, end).
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}
