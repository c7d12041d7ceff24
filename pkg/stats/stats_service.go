package stats

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/entities"
	"Fridge-Elf-Backend/pkg/fridge"
	"Fridge-Elf-Backend/pkg/food"
	"Fridge-Elf-Backend/pkg/line"
	"Fridge-Elf-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const uncategorizedLabel = "uncategorized"

type (
	StatsService interface {
		// GetMonthlyStats returns nil without error when the user owns no
		// fridge: no data is not a failure.
		GetMonthlyStats(ctx context.Context, userID string, month *time.Time) (*domain.MonthlyStats, error)
		GetAllMonthlyStats(ctx context.Context) ([]domain.MonthlyStats, error)
		SendMonthlyReport(ctx context.Context, userID string) (*domain.MonthlyStats, error)
		SendMonthlyReportToAll(ctx context.Context) (int, int, error)
		// DispatchMonthlyReports pushes already-computed reports, returning
		// how many were delivered. Failures are logged per report.
		DispatchMonthlyReports(ctx context.Context, reports []domain.MonthlyStats) int
	}

	// Mailer delivers the email copy of the monthly report.
	Mailer interface {
		Send(toEmail, subject, body string) error
	}

	statsService struct {
		fridgeRepository fridge.FridgeRepository
		foodRepository   food.FoodRepository
		userRepository   user.UserRepository
		lineService      line.LineService
		mailer           Mailer
		loc              *time.Location
		log              zerolog.Logger
		now              func() time.Time
	}
)

func NewStatsService(
	fridgeRepository fridge.FridgeRepository,
	foodRepository food.FoodRepository,
	userRepository user.UserRepository,
	lineService line.LineService,
	mailer Mailer,
	loc *time.Location,
	log zerolog.Logger,
) StatsService {
	return &statsService{
		fridgeRepository: fridgeRepository,
		foodRepository:   foodRepository,
		userRepository:   userRepository,
		lineService:      lineService,
		mailer:           mailer,
		loc:              loc,
		log:              log,
		now:              time.Now,
	}
}

func (s *statsService) GetMonthlyStats(ctx context.Context, userID string, month *time.Time) (*domain.MonthlyStats, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	userFridge, err := s.fridgeRepository.GetFirstByUser(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var start, end time.Time
	if month != nil {
		start, end = monthWindow(month.Year(), month.Month(), s.loc)
	} else {
		start, end = previousMonthWindow(s.now().In(s.loc))
	}

	archived, err := s.foodRepository.GetArchivedInRange(ctx, userFridge.ID, start, end)
	if err != nil {
		return nil, err
	}
	purchased, err := s.foodRepository.GetPurchasedInRange(ctx, userFridge.ID, start, end)
	if err != nil {
		return nil, err
	}

	stats := computeStats(archived, purchased)
	stats.Month = start.Format("2006-01")
	stats.UserID = userUUID
	stats.FridgeID = userFridge.ID
	return &stats, nil
}

func (s *statsService) GetAllMonthlyStats(ctx context.Context) ([]domain.MonthlyStats, error) {
	userIDs, err := s.fridgeRepository.DistinctUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.MonthlyStats, 0, len(userIDs))
	for _, id := range userIDs {
		stats, err := s.GetMonthlyStats(ctx, id.String(), nil)
		if err != nil {
			s.log.Error().Err(err).Str("user_id", id.String()).Msg("failed to compute monthly stats")
			continue
		}
		if stats == nil {
			continue
		}
		results = append(results, *stats)
	}
	return results, nil
}

func (s *statsService) SendMonthlyReport(ctx context.Context, userID string) (*domain.MonthlyStats, error) {
	stats, err := s.GetMonthlyStats(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, domain.ErrNoStatsData
	}

	if err := s.dispatch(ctx, *stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// SendMonthlyReportToAll pushes last month's report to every user who owns a
// fridge. One user's failure never aborts the batch; the returned counts are
// (sent, eligible).
func (s *statsService) SendMonthlyReportToAll(ctx context.Context) (int, int, error) {
	allStats, err := s.GetAllMonthlyStats(ctx)
	if err != nil {
		return 0, 0, err
	}

	sent := s.DispatchMonthlyReports(ctx, allStats)
	return sent, len(allStats), nil
}

func (s *statsService) DispatchMonthlyReports(ctx context.Context, reports []domain.MonthlyStats) int {
	sent := 0
	for _, stats := range reports {
		if err := s.dispatch(ctx, stats); err != nil {
			s.log.Error().Err(err).Str("user_id", stats.UserID.String()).Msg("failed to send monthly report")
			continue
		}
		sent++
	}

	s.log.Info().Int("sent", sent).Int("total", len(reports)).Msg("monthly reports dispatched")
	return sent
}

func (s *statsService) dispatch(ctx context.Context, stats domain.MonthlyStats) error {
	reportUser, err := s.userRepository.GetByID(ctx, stats.UserID)
	if err != nil {
		return err
	}

	if err := s.lineService.SendMonthlyStats(reportUser.LineUserID, stats); err != nil {
		return err
	}

	// Email copy is best effort; a broken mailbox must not fail the push.
	if reportUser.Email != "" {
		subject := fmt.Sprintf("Your %s savings report", stats.Month)
		if err := s.mailer.Send(reportUser.Email, subject, buildReportEmail(stats)); err != nil {
			s.log.Warn().Err(err).Str("user_id", stats.UserID.String()).Msg("failed to email monthly report")
		}
	}
	return nil
}

func computeStats(archived, purchased []entities.FoodItem) domain.MonthlyStats {
	var used, wasted []entities.FoodItem
	for _, item := range archived {
		if Classify(item) == entities.DisposalReasonWasted {
			wasted = append(wasted, item)
		} else {
			used = append(used, item)
		}
	}

	savedMoney := sumPrices(used)
	wastedMoney := sumPrices(wasted)
	totalPurchased := sumPrices(purchased)

	var saveRate, wasteRate float64
	if totalPurchased > 0 {
		saveRate = savedMoney / totalPurchased * 100
		wasteRate = wastedMoney / totalPurchased * 100
	}

	mostWasted := mostWastedCategory(wasted)
	saveRate = round1(saveRate)
	wasteRate = round1(wasteRate)

	return domain.MonthlyStats{
		SavedMoney:         round2(savedMoney),
		WastedMoney:        round2(wastedMoney),
		TotalPurchased:     round2(totalPurchased),
		SaveRate:           saveRate,
		WasteRate:          wasteRate,
		UsedCount:          len(used),
		WastedCount:        len(wasted),
		PurchasedCount:     len(purchased),
		MostWastedCategory: mostWasted,
		Suggestions:        generateSuggestions(saveRate, wasteRate, mostWasted),
	}
}

// mostWastedCategory picks the category with the highest count among wasted
// items. Ties go to the category encountered first in item order.
func mostWastedCategory(wasted []entities.FoodItem) *string {
	if len(wasted) == 0 {
		return nil
	}

	counts := make(map[string]int, len(wasted))
	order := make([]string, 0, len(wasted))
	for _, item := range wasted {
		category := uncategorizedLabel
		if item.Category != nil && *item.Category != "" {
			category = *item.Category
		}
		if _, seen := counts[category]; !seen {
			order = append(order, category)
		}
		counts[category]++
	}

	best := order[0]
	for _, category := range order[1:] {
		if counts[category] > counts[best] {
			best = category
		}
	}
	return &best
}

func sumPrices(items []entities.FoodItem) float64 {
	var total float64
	for _, item := range items {
		if item.Price != nil {
			total += *item.Price
		}
	}
	return total
}

func monthWindow(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

func previousMonthWindow(now time.Time) (time.Time, time.Time) {
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := firstOfThisMonth.AddDate(0, -1, 0)
	return monthWindow(lastMonth.Year(), lastMonth.Month(), now.Location())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func buildReportEmail(stats domain.MonthlyStats) string {
	body := fmt.Sprintf(
		"<h2>%s savings report</h2>"+
			"<p>Saved: $%.2f (%.1f%%)<br>"+
			"Wasted: $%.2f (%.1f%%)<br>"+
			"Items used: %d / wasted: %d</p>",
		stats.Month,
		stats.SavedMoney, stats.SaveRate,
		stats.WastedMoney, stats.WasteRate,
		stats.UsedCount, stats.WastedCount,
	)
	if len(stats.Suggestions) > 0 {
		body += "<ul>"
		for _, suggestion := range stats.Suggestions {
			body += "<li>" + suggestion + "</li>"
		}
		body += "</ul>"
	}
	return body
}
