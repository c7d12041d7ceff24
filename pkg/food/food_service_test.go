package food

import (
	"context"
	"testing"
	"time"

	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// MockFoodRepository is a mock implementation of FoodRepository.
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) AddFoodItem(ctx context.Context, item *entities.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodRepository) GetFoodItemByID(ctx context.Context, id uuid.UUID) (*entities.FoodItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockFoodRepository) DeleteFoodItem(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFoodRepository) GetFoodItems(ctx context.Context, fridgeID uuid.UUID, status string, page, limit int) ([]entities.FoodItem, int64, error) {
	args := m.Called(ctx, fridgeID, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entities.FoodItem), args.Get(1).(int64), args.Error(2)
}

func (m *MockFoodRepository) GetExpiringItems(ctx context.Context, userID uuid.UUID, warningDate time.Time) ([]entities.FoodItem, error) {
	args := m.Called(ctx, userID, warningDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) CountActiveItems(ctx context.Context, fridgeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, fridgeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFoodRepository) GetArchivedInRange(ctx context.Context, fridgeID uuid.UUID, start, end time.Time) ([]entities.FoodItem, error) {
	args := m.Called(ctx, fridgeID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FoodItem), args.Error(1)
}

func (m *MockFoodRepository) GetPurchasedInRange(ctx context.Context, fridgeID uuid.UUID, start, end time.Time) ([]entities.FoodItem, error) {
	args := m.Called(ctx, fridgeID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FoodItem), args.Error(1)
}

// MockFridgeRepository is a mock implementation of fridge.FridgeRepository.
type MockFridgeRepository struct {
	mock.Mock
}

func (m *MockFridgeRepository) Create(ctx context.Context, f *entities.Fridge) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFridgeRepository) Update(ctx context.Context, f *entities.Fridge) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFridgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Fridge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Fridge), args.Error(1)
}

func (m *MockFridgeRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]entities.Fridge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Fridge), args.Error(1)
}

func (m *MockFridgeRepository) GetFirstByUser(ctx context.Context, userID uuid.UUID) (*entities.Fridge, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Fridge), args.Error(1)
}

func (m *MockFridgeRepository) DistinctUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockFridgeRepository) CreateCompartment(ctx context.Context, c *entities.FridgeCompartment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockFridgeRepository) GetCompartments(ctx context.Context, fridgeID uuid.UUID) ([]entities.FridgeCompartment, error) {
	args := m.Called(ctx, fridgeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.FridgeCompartment), args.Error(1)
}

func (m *MockFridgeRepository) UpdateCompartmentOrder(ctx context.Context, fridgeID, compartmentID uuid.UUID, sortOrder int) error {
	args := m.Called(ctx, fridgeID, compartmentID, sortOrder)
	return args.Error(0)
}

func activeItem(userID uuid.UUID) *entities.FoodItem {
	fridgeID := uuid.New()
	return &entities.FoodItem{
		ID:           uuid.New(),
		FridgeID:     fridgeID,
		Name:         "Milk",
		Quantity:     1,
		PurchaseDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:       entities.FoodStatusActive,
		Fridge:       &entities.Fridge{ID: fridgeID, UserID: userID},
	}
}

func TestAddFoodItem_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	fridgeID := uuid.New()

	fridgeRepo := new(MockFridgeRepository)
	foodRepo := new(MockFoodRepository)

	fridgeRepo.On("GetByID", ctx, fridgeID).
		Return(&entities.Fridge{ID: fridgeID, UserID: userID}, nil)
	foodRepo.On("AddFoodItem", ctx, mock.MatchedBy(func(item *entities.FoodItem) bool {
		return item.FridgeID == fridgeID && item.Status == entities.FoodStatusActive
	})).Return(nil)

	svc := NewFoodService(foodRepo, fridgeRepo)

	price := 35.5
	res, err := svc.AddFoodItem(ctx, fridgeID.String(), domain.AddFoodItemRequest{
		Name:         "Milk",
		Price:        &price,
		Quantity:     2,
		PurchaseDate: "2026-01-01",
		ExpiryDate:   "2026-01-08",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "Milk", res.Name)
	assert.Equal(t, entities.FoodStatusActive, res.Status)
	require.NotNil(t, res.ExpiryDate)
	assert.Equal(t, "2026-01-08", res.ExpiryDate.Format("2006-01-02"))
	foodRepo.AssertExpectations(t)
}

func TestAddFoodItem_RejectsBadDates(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	fridgeID := uuid.New()

	fridgeRepo := new(MockFridgeRepository)
	fridgeRepo.On("GetByID", ctx, fridgeID).
		Return(&entities.Fridge{ID: fridgeID, UserID: userID}, nil)

	svc := NewFoodService(new(MockFoodRepository), fridgeRepo)

	_, err := svc.AddFoodItem(ctx, fridgeID.String(), domain.AddFoodItemRequest{
		Name:         "Milk",
		Quantity:     1,
		PurchaseDate: "01/01/2026",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidPurchaseDate)

	_, err = svc.AddFoodItem(ctx, fridgeID.String(), domain.AddFoodItemRequest{
		Name:         "Milk",
		Quantity:     1,
		PurchaseDate: "2026-01-01",
		ExpiryDate:   "next week",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestAddFoodItem_FridgeOwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	fridgeID := uuid.New()

	fridgeRepo := new(MockFridgeRepository)
	fridgeRepo.On("GetByID", ctx, fridgeID).
		Return(&entities.Fridge{ID: fridgeID, UserID: uuid.New()}, nil)

	svc := NewFoodService(new(MockFoodRepository), fridgeRepo)

	_, err := svc.AddFoodItem(ctx, fridgeID.String(), domain.AddFoodItemRequest{
		Name:         "Milk",
		Quantity:     1,
		PurchaseDate: "2026-01-01",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrFridgeNotFound)
}

func TestArchiveFoodItem_Transition(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	item := activeItem(userID)

	foodRepo := new(MockFoodRepository)
	foodRepo.On("GetFoodItemByID", ctx, item.ID).Return(item, nil)
	foodRepo.On("UpdateFoodItem", ctx, item).Return(nil)

	svc := NewFoodService(foodRepo, new(MockFridgeRepository))

	res, err := svc.ArchiveFoodItem(ctx, item.ID.String(), domain.ArchiveFoodItemRequest{
		DisposalReason: entities.DisposalReasonWasted,
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, entities.FoodStatusArchived, res.Status)
	require.NotNil(t, res.DisposalReason)
	assert.Equal(t, entities.DisposalReasonWasted, *res.DisposalReason)
	assert.NotNil(t, res.ArchivedAt)
	foodRepo.AssertExpectations(t)
}

func TestArchiveFoodItem_AlreadyArchived(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	item := activeItem(userID)
	item.Status = entities.FoodStatusArchived

	foodRepo := new(MockFoodRepository)
	foodRepo.On("GetFoodItemByID", ctx, item.ID).Return(item, nil)

	svc := NewFoodService(foodRepo, new(MockFridgeRepository))

	_, err := svc.ArchiveFoodItem(ctx, item.ID.String(), domain.ArchiveFoodItemRequest{
		DisposalReason: entities.DisposalReasonUsed,
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrItemAlreadyArchived)
	foodRepo.AssertNotCalled(t, "UpdateFoodItem", mock.Anything, mock.Anything)
}

func TestArchiveFoodItem_OtherUsersItemIsDenied(t *testing.T) {
	ctx := context.Background()
	item := activeItem(uuid.New())

	foodRepo := new(MockFoodRepository)
	foodRepo.On("GetFoodItemByID", ctx, item.ID).Return(item, nil)

	svc := NewFoodService(foodRepo, new(MockFridgeRepository))

	_, err := svc.ArchiveFoodItem(ctx, item.ID.String(), domain.ArchiveFoodItemRequest{
		DisposalReason: entities.DisposalReasonUsed,
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
}

func TestUpdateFoodItem_PartialFields(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	item := activeItem(userID)

	foodRepo := new(MockFoodRepository)
	foodRepo.On("GetFoodItemByID", ctx, item.ID).Return(item, nil)
	foodRepo.On("UpdateFoodItem", ctx, item).Return(nil)

	svc := NewFoodService(foodRepo, new(MockFridgeRepository))

	err := svc.UpdateFoodItem(ctx, item.ID.String(), domain.UpdateFoodItemRequest{
		Quantity:   3,
		ExpiryDate: "2026-02-01",
	}, userID.String())
	require.NoError(t, err)

	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, 3, item.Quantity)
	require.NotNil(t, item.ExpiryDate)
	assert.Equal(t, "2026-02-01", item.ExpiryDate.Format("2006-01-02"))
}

func TestDeleteFoodItem_NotFound(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()

	foodRepo := new(MockFoodRepository)
	foodRepo.On("GetFoodItemByID", ctx, itemID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewFoodService(foodRepo, new(MockFridgeRepository))

	err := svc.DeleteFoodItem(ctx, itemID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}
