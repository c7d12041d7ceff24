package fridge

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeService interface {
		CreateFridge(ctx context.Context, req domain.CreateFridgeRequest, userID string) (domain.FridgeResponse, error)
		GetFridges(ctx context.Context, userID string) ([]domain.FridgeResponse, error)
		GetFridgeDetail(ctx context.Context, id string, userID string) (domain.FridgeDetailResponse, error)
		UpdateFridge(ctx context.Context, id string, req domain.UpdateFridgeRequest, userID string) (domain.FridgeResponse, error)
		CreateCompartment(ctx context.Context, fridgeID string, req domain.CreateCompartmentRequest, userID string) (domain.CompartmentResponse, error)
		ReorderCompartments(ctx context.Context, fridgeID string, req domain.ReorderCompartmentsRequest, userID string) error
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
	}
)

func NewFridgeService(fridgeRepository FridgeRepository) FridgeService {
	return &fridgeService{fridgeRepository: fridgeRepository}
}

func (s *fridgeService) CreateFridge(ctx context.Context, req domain.CreateFridgeRequest, userID string) (domain.FridgeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FridgeResponse{}, domain.ErrParseUUID
	}

	fridge := &entities.Fridge{
		ID:                  uuid.New(),
		UserID:              userUUID,
		ModelName:           req.ModelName,
		TotalCapacityLiters: req.TotalCapacityLiters,
	}

	if err := s.fridgeRepository.Create(ctx, fridge); err != nil {
		return domain.FridgeResponse{}, err
	}

	return toFridgeResponse(fridge), nil
}

func (s *fridgeService) GetFridges(ctx context.Context, userID string) ([]domain.FridgeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	fridges, err := s.fridgeRepository.GetByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.FridgeResponse, 0, len(fridges))
	for i := range fridges {
		res = append(res, toFridgeResponse(&fridges[i]))
	}
	return res, nil
}

func (s *fridgeService) GetFridgeDetail(ctx context.Context, id string, userID string) (domain.FridgeDetailResponse, error) {
	fridge, err := s.getOwnedFridge(ctx, id, userID)
	if err != nil {
		return domain.FridgeDetailResponse{}, err
	}

	compartments, err := s.fridgeRepository.GetCompartments(ctx, fridge.ID)
	if err != nil {
		return domain.FridgeDetailResponse{}, err
	}

	compRes := make([]domain.CompartmentResponse, 0, len(compartments))
	for _, c := range compartments {
		compRes = append(compRes, domain.CompartmentResponse{
			ID:        c.ID.String(),
			FridgeID:  c.FridgeID.String(),
			Name:      c.Name,
			SortOrder: c.SortOrder,
		})
	}

	return domain.FridgeDetailResponse{
		FridgeResponse: toFridgeResponse(fridge),
		Compartments:   compRes,
	}, nil
}

func (s *fridgeService) UpdateFridge(ctx context.Context, id string, req domain.UpdateFridgeRequest, userID string) (domain.FridgeResponse, error) {
	fridge, err := s.getOwnedFridge(ctx, id, userID)
	if err != nil {
		return domain.FridgeResponse{}, err
	}

	if req.ModelName != "" {
		fridge.ModelName = req.ModelName
	}
	if req.TotalCapacityLiters > 0 {
		fridge.TotalCapacityLiters = req.TotalCapacityLiters
	}

	if err := s.fridgeRepository.Update(ctx, fridge); err != nil {
		return domain.FridgeResponse{}, err
	}
	return toFridgeResponse(fridge), nil
}

func (s *fridgeService) CreateCompartment(ctx context.Context, fridgeID string, req domain.CreateCompartmentRequest, userID string) (domain.CompartmentResponse, error) {
	fridge, err := s.getOwnedFridge(ctx, fridgeID, userID)
	if err != nil {
		return domain.CompartmentResponse{}, err
	}

	compartment := &entities.FridgeCompartment{
		ID:        uuid.New(),
		FridgeID:  fridge.ID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	}
	if err := s.fridgeRepository.CreateCompartment(ctx, compartment); err != nil {
		return domain.CompartmentResponse{}, err
	}

	return domain.CompartmentResponse{
		ID:        compartment.ID.String(),
		FridgeID:  compartment.FridgeID.String(),
		Name:      compartment.Name,
		SortOrder: compartment.SortOrder,
	}, nil
}

func (s *fridgeService) ReorderCompartments(ctx context.Context, fridgeID string, req domain.ReorderCompartmentsRequest, userID string) error {
	fridge, err := s.getOwnedFridge(ctx, fridgeID, userID)
	if err != nil {
		return err
	}

	for _, order := range req.Orders {
		compartmentUUID, err := uuid.Parse(order.ID)
		if err != nil {
			return domain.ErrParseUUID
		}
		if err := s.fridgeRepository.UpdateCompartmentOrder(ctx, fridge.ID, compartmentUUID, order.SortOrder); err != nil {
			return err
		}
	}
	return nil
}

func (s *fridgeService) getOwnedFridge(ctx context.Context, id string, userID string) (*entities.Fridge, error) {
	fridgeUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	fridge, err := s.fridgeRepository.GetByID(ctx, fridgeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFridgeNotFound
		}
		return nil, err
	}

	if fridge.UserID.String() != userID {
		return nil, domain.ErrFridgeNotFound
	}
	return fridge, nil
}

func toFridgeResponse(fridge *entities.Fridge) domain.FridgeResponse {
	mode := "simple"
	if len(fridge.Compartments) > 0 {
		mode = "detailed"
	}
	return domain.FridgeResponse{
		ID:                  fridge.ID.String(),
		UserID:              fridge.UserID.String(),
		ModelName:           fridge.ModelName,
		TotalCapacityLiters: fridge.TotalCapacityLiters,
		CompartmentMode:     mode,
		CreatedAt:           fridge.CreatedAt,
	}
}
