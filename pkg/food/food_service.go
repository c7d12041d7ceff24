package food

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/entities"
	"Fridge-Elf-Backend/pkg/fridge"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, fridgeID string, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetFoodItems(ctx context.Context, fridgeID string, userID string, status string, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		ArchiveFoodItem(ctx context.Context, id string, req domain.ArchiveFoodItemRequest, userID string) (domain.FoodItemResponse, error)
	}

	foodService struct {
		foodRepository   FoodRepository
		fridgeRepository fridge.FridgeRepository
	}
)

func NewFoodService(foodRepository FoodRepository, fridgeRepository fridge.FridgeRepository) FoodService {
	return &foodService{
		foodRepository:   foodRepository,
		fridgeRepository: fridgeRepository,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, fridgeID string, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	ownedFridge, err := s.getOwnedFridge(ctx, fridgeID, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidPurchaseDate
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiryDate = &parsed
	}

	if req.Price != nil && *req.Price < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidPrice
	}

	var compartmentID *uuid.UUID
	if req.CompartmentID != "" {
		parsed, err := uuid.Parse(req.CompartmentID)
		if err != nil {
			return domain.FoodItemResponse{}, domain.ErrParseUUID
		}
		compartmentID = &parsed
	}

	foodItem := &entities.FoodItem{
		ID:            uuid.New(),
		FridgeID:      ownedFridge.ID,
		CompartmentID: compartmentID,
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		Quantity:      req.Quantity,
		PurchaseDate:  purchaseDate,
		ExpiryDate:    expiryDate,
		Status:        entities.FoodStatusActive,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error {
	foodItem, err := s.getOwnedFoodItem(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}
	if req.Category != nil {
		foodItem.Category = req.Category
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return domain.ErrInvalidPrice
		}
		foodItem.Price = req.Price
	}
	if req.Quantity > 0 {
		foodItem.Quantity = req.Quantity
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		foodItem.ExpiryDate = &expiryDate
	}

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.getOwnedFoodItem(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.foodRepository.DeleteFoodItem(ctx, foodItem.ID)
}

func (s *foodService) GetFoodItems(ctx context.Context, fridgeID string, userID string, status string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	ownedFridge, err := s.getOwnedFridge(ctx, fridgeID, userID)
	if err != nil {
		return nil, 0, err
	}

	items, count, err := s.foodRepository.GetFoodItems(ctx, ownedFridge.ID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	res := make([]domain.FoodItemResponse, 0, len(items))
	for i := range items {
		res = append(res, toFoodItemResponse(&items[i]))
	}
	return res, count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwnedFoodItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}
	return toFoodItemResponse(foodItem), nil
}

// ArchiveFoodItem ends an item's active lifecycle, recording the disposal
// reason and the archive timestamp. The transition happens at most once.
func (s *foodService) ArchiveFoodItem(ctx context.Context, id string, req domain.ArchiveFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.getOwnedFoodItem(ctx, id, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	if foodItem.Status == entities.FoodStatusArchived {
		return domain.FoodItemResponse{}, domain.ErrItemAlreadyArchived
	}

	if req.DisposalReason != entities.DisposalReasonUsed && req.DisposalReason != entities.DisposalReasonWasted {
		return domain.FoodItemResponse{}, domain.ErrInvalidDisposalReason
	}

	now := time.Now()
	reason := req.DisposalReason
	foodItem.Status = entities.FoodStatusArchived
	foodItem.DisposalReason = &reason
	foodItem.ArchivedAt = &now

	if err := s.foodRepository.UpdateFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}
	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) getOwnedFridge(ctx context.Context, fridgeID string, userID string) (*entities.Fridge, error) {
	fridgeUUID, err := uuid.Parse(fridgeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	ownedFridge, err := s.fridgeRepository.GetByID(ctx, fridgeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFridgeNotFound
		}
		return nil, err
	}
	if ownedFridge.UserID.String() != userID {
		return nil, domain.ErrFridgeNotFound
	}
	return ownedFridge, nil
}

func (s *foodService) getOwnedFoodItem(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	itemUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, itemUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if foodItem.Fridge == nil || foodItem.Fridge.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedAccess
	}
	return foodItem, nil
}

func toFoodItemResponse(foodItem *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:             foodItem.ID.String(),
		FridgeID:       foodItem.FridgeID.String(),
		Name:           foodItem.Name,
		Category:       foodItem.Category,
		Price:          foodItem.Price,
		Quantity:       foodItem.Quantity,
		PurchaseDate:   foodItem.PurchaseDate,
		ExpiryDate:     foodItem.ExpiryDate,
		Status:         foodItem.Status,
		DisposalReason: foodItem.DisposalReason,
		ArchivedAt:     foodItem.ArchivedAt,
		CreatedAt:      foodItem.CreatedAt,
	}
}
