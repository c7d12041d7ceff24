package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/entities"

	"github.com/google/uuid"
	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

// MockFoodRepository is a mock implementation of food.FoodRepository.
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

// MockUserRepository is a mock implementation of user.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByLineUserID(ctx context.Context, lineUserID string) (*entities.User, error) {
	args := m.Called(ctx, lineUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *entities.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *entities.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// MockLineService is a mock implementation of line.LineService.
type MockLineService struct {
	mock.Mock
}

func (m *MockLineService) SendTextMessage(lineUserID string, text string) error {
	args := m.Called(lineUserID, text)
	return args.Error(0)
}

func (m *MockLineService) SendExpiryNotification(lineUserID string, items []domain.ExpiringItemNotice) error {
	args := m.Called(lineUserID, items)
	return args.Error(0)
}

func (m *MockLineService) SendSpaceWarning(lineUserID string, usagePercentage float64) error {
	args := m.Called(lineUserID, usagePercentage)
	return args.Error(0)
}

func (m *MockLineService) SendMonthlyStats(lineUserID string, stats domain.MonthlyStats) error {
	args := m.Called(lineUserID, stats)
	return args.Error(0)
}

func (m *MockLineService) HandleEvents(ctx context.Context, events []*linebot.Event) {
	m.Called(ctx, events)
}

// MockMailer is a mock implementation of Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(toEmail, subject, body string) error {
	args := m.Called(toEmail, subject, body)
	return args.Error(0)
}

func newTestStatsService(
	fridgeRepo *MockFridgeRepository,
	foodRepo *MockFoodRepository,
	userRepo *MockUserRepository,
	lineSvc *MockLineService,
	mailer *MockMailer,
) *statsService {
	svc := NewStatsService(fridgeRepo, foodRepo, userRepo, lineSvc, mailer, time.UTC, zerolog.Nop()).(*statsService)
	svc.now = func() time.Time {
		return time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestGetMonthlyStats_ComputesRates(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	fridgeID := uuid.New()

	fridgeRepo := new(MockFridgeRepository)
	foodRepo := new(MockFoodRepository)

	fridgeRepo.On("GetFirstByUser", ctx, userID).
		Return(&entities.Fridge{ID: fridgeID, UserID: userID}, nil)

	usedPrice := 100.0
	wastedPrice := 50.0
	archived := []entities.FoodItem{
		{Name: "Milk", Price: &usedPrice, DisposalReason: strPtr(entities.DisposalReasonUsed)},
		{Name: "Lettuce", Price: &wastedPrice, Category: strPtr("vegetables"), DisposalReason: strPtr(entities.DisposalReasonWasted)},
	}
	purchasedA, purchasedB := 120.0, 80.0
	purchased := []entities.FoodItem{
		{Name: "Milk", Price: &purchasedA},
		{Name: "Lettuce", Price: &purchasedB},
	}

	// Default window is the previous month relative to the injected clock.
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	foodRepo.On("GetArchivedInRange", ctx, fridgeID, start, end).Return(archived, nil)
	foodRepo.On("GetPurchasedInRange", ctx, fridgeID, start, end).Return(purchased, nil)

	svc := newTestStatsService(fridgeRepo, foodRepo, new(MockUserRepository), new(MockLineService), new(MockMailer))

	stats, err := svc.GetMonthlyStats(ctx, userID.String(), nil)
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 100.0, stats.SavedMoney)
	assert.Equal(t, 50.0, stats.WastedMoney)
	assert.Equal(t, 200.0, stats.TotalPurchased)
	assert.Equal(t, 50.0, stats.SaveRate)
	assert.Equal(t, 25.0, stats.WasteRate)
	assert.Equal(t, 1, stats.UsedCount)
	assert.Equal(t, 1, stats.WastedCount)
	assert.Equal(t, 2, stats.PurchasedCount)
	require.NotNil(t, stats.MostWastedCategory)
	assert.Equal(t, "vegetables", *stats.MostWastedCategory)
	assert.Equal(t, "2026-01", stats.Month)
	assert.NotEmpty(t, stats.Suggestions)

	fridgeRepo.AssertExpectations(t)
	foodRepo.AssertExpectations(t)
}

func TestGetMonthlyStats_ExplicitMonthWindow(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	fridgeID := uuid.New()

	fridgeRepo := new(MockFridgeRepository)
	foodRepo := new(MockFoodRepository)

	fridgeRepo.On("GetFirstByUser", ctx, userID).
		Return(&entities.Fridge{ID: fridgeID, UserID: userID}, nil)

	start := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 30, 23, 59, 59, 0, time.UTC)
	foodRepo.On("GetArchivedInRange", ctx, fridgeID, start, end).Return([]entities.FoodItem{}, nil)
	foodRepo.On("GetPurchasedInRange", ctx, fridgeID, start, end).Return([]entities.FoodItem{}, nil)

	svc := newTestStatsService(fridgeRepo, foodRepo, new(MockUserRepository), new(MockLineService), new(MockMailer))

	month := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	stats, err := svc.GetMonthlyStats(ctx, userID.String(), &month)
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, "2025-11", stats.Month)
	assert.Zero(t, stats.TotalPurchased)
	assert.Zero(t, stats.SaveRate)
	assert.Nil(t, stats.MostWastedCategory)
	foodRepo.AssertExpectations(t)
}

func TestGetMonthlyStats_NoFridgeReturnsNil(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	fridgeRepo := new(MockFridgeRepository)
	fridgeRepo.On("GetFirstByUser", ctx, userID).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestStatsService(fridgeRepo, new(MockFoodRepository), new(MockUserRepository), new(MockLineService), new(MockMailer))

	stats, err := svc.GetMonthlyStats(ctx, userID.String(), nil)
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestGetMonthlyStats_InvalidUserID(t *testing.T) {
	svc := newTestStatsService(new(MockFridgeRepository), new(MockFoodRepository), new(MockUserRepository), new(MockLineService), new(MockMailer))

	_, err := svc.GetMonthlyStats(context.Background(), "not-a-uuid", nil)
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestMostWastedCategory_FirstEncounteredWinsTies(t *testing.T) {
	price := 10.0
	wasted := []entities.FoodItem{
		{Category: strPtr("dairy"), Price: &price},
		{Category: strPtr("vegetables"), Price: &price},
		{Category: strPtr("vegetables"), Price: &price},
		{Category: strPtr("dairy"), Price: &price},
	}

	// dairy and vegetables tie at 2; dairy appeared first so it wins, even
	// though vegetables was the first to reach the final count.
	got := mostWastedCategory(wasted)
	require.NotNil(t, got)
	assert.Equal(t, "dairy", *got)
}

func TestMostWastedCategory_HigherCountStillBeatsEarlier(t *testing.T) {
	price := 10.0
	wasted := []entities.FoodItem{
		{Category: strPtr("dairy"), Price: &price},
		{Category: strPtr("vegetables"), Price: &price},
		{Category: strPtr("vegetables"), Price: &price},
	}

	got := mostWastedCategory(wasted)
	require.NotNil(t, got)
	assert.Equal(t, "vegetables", *got)
}

func TestMostWastedCategory_UncategorizedFallback(t *testing.T) {
	wasted := []entities.FoodItem{{}, {Category: strPtr("")}}

	got := mostWastedCategory(wasted)
	require.NotNil(t, got)
	assert.Equal(t, "uncategorized", *got)
}

func TestSendMonthlyReport_NoDataError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	fridgeRepo := new(MockFridgeRepository)
	fridgeRepo.On("GetFirstByUser", ctx, userID).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestStatsService(fridgeRepo, new(MockFoodRepository), new(MockUserRepository), new(MockLineService), new(MockMailer))

	_, err := svc.SendMonthlyReport(ctx, userID.String())
	assert.ErrorIs(t, err, domain.ErrNoStatsData)
}

func TestSendMonthlyReportToAll_IsolatesFailures(t *testing.T) {
	ctx := context.Background()
	okUser := uuid.New()
	badUser := uuid.New()
	okFridge := uuid.New()
	badFridge := uuid.New()

	fridgeRepo := new(MockFridgeRepository)
	foodRepo := new(MockFoodRepository)
	userRepo := new(MockUserRepository)
	lineSvc := new(MockLineService)
	mailer := new(MockMailer)

	fridgeRepo.On("DistinctUserIDs", ctx).Return([]uuid.UUID{okUser, badUser}, nil)
	fridgeRepo.On("GetFirstByUser", ctx, okUser).
		Return(&entities.Fridge{ID: okFridge, UserID: okUser}, nil)
	fridgeRepo.On("GetFirstByUser", ctx, badUser).
		Return(&entities.Fridge{ID: badFridge, UserID: badUser}, nil)

	foodRepo.On("GetArchivedInRange", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return([]entities.FoodItem{}, nil)
	foodRepo.On("GetPurchasedInRange", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return([]entities.FoodItem{}, nil)

	userRepo.On("GetByID", ctx, okUser).
		Return(&entities.User{ID: okUser, LineUserID: "U-ok"}, nil)
	userRepo.On("GetByID", ctx, badUser).
		Return(&entities.User{ID: badUser, LineUserID: "U-bad"}, nil)

	lineSvc.On("SendMonthlyStats", "U-ok", mock.Anything).Return(nil)
	lineSvc.On("SendMonthlyStats", "U-bad", mock.Anything).Return(errors.New("push failed"))

	svc := newTestStatsService(fridgeRepo, foodRepo, userRepo, lineSvc, mailer)

	sent, total, err := svc.SendMonthlyReportToAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 2, total)
	lineSvc.AssertExpectations(t)
}

func TestDispatchMonthlyReports_NoRecompute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	fridgeRepo := new(MockFridgeRepository)
	foodRepo := new(MockFoodRepository)
	userRepo := new(MockUserRepository)
	lineSvc := new(MockLineService)

	userRepo.On("GetByID", ctx, userID).
		Return(&entities.User{ID: userID, LineUserID: "U-1"}, nil)
	lineSvc.On("SendMonthlyStats", "U-1", mock.Anything).Return(nil)

	svc := newTestStatsService(fridgeRepo, foodRepo, userRepo, lineSvc, new(MockMailer))

	// Dispatching precomputed reports never touches the repositories again.
	sent := svc.DispatchMonthlyReports(ctx, []domain.MonthlyStats{{UserID: userID, Month: "2026-01"}})
	assert.Equal(t, 1, sent)
	fridgeRepo.AssertNotCalled(t, "GetFirstByUser", mock.Anything, mock.Anything)
	foodRepo.AssertNotCalled(t, "GetArchivedInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	lineSvc.AssertExpectations(t)
}

func TestDispatch_EmailFailureIsBestEffort(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := new(MockUserRepository)
	lineSvc := new(MockLineService)
	mailer := new(MockMailer)

	userRepo.On("GetByID", ctx, userID).
		Return(&entities.User{ID: userID, LineUserID: "U-1", Email: "a@b.c"}, nil)
	lineSvc.On("SendMonthlyStats", "U-1", mock.Anything).Return(nil)
	mailer.On("Send", "a@b.c", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := newTestStatsService(new(MockFridgeRepository), new(MockFoodRepository), userRepo, lineSvc, mailer)

	err := svc.dispatch(ctx, domain.MonthlyStats{UserID: userID, Month: "2026-01"})
	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestComputeStats_Rounding(t *testing.T) {
	p1, p2, p3 := 10.567, 5.333, 47.111
	archived := []entities.FoodItem{
		{Price: &p1, DisposalReason: strPtr(entities.DisposalReasonUsed)},
		{Price: &p2, DisposalReason: strPtr(entities.DisposalReasonWasted)},
	}
	purchased := []entities.FoodItem{{Price: &p3}}

	stats := computeStats(archived, purchased)
	assert.Equal(t, 10.57, stats.SavedMoney)
	assert.Equal(t, 5.33, stats.WastedMoney)
	assert.Equal(t, 47.11, stats.TotalPurchased)
	assert.Equal(t, 22.4, stats.SaveRate)
	assert.Equal(t, 11.3, stats.WasteRate)
}
