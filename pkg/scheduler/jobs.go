package scheduler

import (
	"Fridge-Elf-Backend/domain"
	"Fridge-Elf-Backend/pkg/food"
	"Fridge-Elf-Backend/pkg/fridge"
	"Fridge-Elf-Backend/pkg/line"
	"Fridge-Elf-Backend/pkg/notification"
	"Fridge-Elf-Backend/pkg/stats"
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultFridgeCapacity estimates how many items a fridge holds when the
// space scan converts an item count into a usage percentage.
const DefaultFridgeCapacity = 50

// Jobs holds the scheduled job bodies. Each run reads fresh state from the
// repositories and keeps no state between invocations, so concurrently firing
// jobs never share mutable data.
type Jobs struct {
	notificationRepository notification.NotificationRepository
	fridgeRepository       fridge.FridgeRepository
	foodRepository         food.FoodRepository
	statsService           stats.StatsService
	lineService            line.LineService
	capacity               int
	loc                    *time.Location
	log                    zerolog.Logger
	now                    func() time.Time
}

func NewJobs(
	notificationRepository notification.NotificationRepository,
	fridgeRepository fridge.FridgeRepository,
	foodRepository food.FoodRepository,
	statsService stats.StatsService,
	lineService line.LineService,
	capacity int,
	loc *time.Location,
	log zerolog.Logger,
) *Jobs {
	if capacity <= 0 {
		capacity = DefaultFridgeCapacity
	}
	return &Jobs{
		notificationRepository: notificationRepository,
		fridgeRepository:       fridgeRepository,
		foodRepository:         foodRepository,
		statsService:           statsService,
		lineService:            lineService,
		capacity:               capacity,
		loc:                    loc,
		log:                    log,
		now:                    time.Now,
	}
}

// CheckExpiringItems warns every opted-in user about items expiring within
// their configured horizon. Already-expired items are included. One user's
// failure never stops the scan.
func (j *Jobs) CheckExpiringItems(ctx context.Context) {
	j.log.Info().Msg("expiry scan started")

	settingsList, err := j.notificationRepository.GetByExpiryWarningEnabled(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("expiry scan: failed to load notification settings")
		return
	}
	j.log.Info().Int("users", len(settingsList)).Msg("expiry scan: users with expiry warnings enabled")

	notified := 0
	for _, settings := range settingsList {
		if settings.User == nil {
			j.log.Error().Str("user_id", settings.UserID.String()).Msg("expiry scan: settings row without user")
			continue
		}

		today := dateIn(j.now(), j.loc)
		warningDate := today.AddDate(0, 0, settings.ExpiryWarningDays)

		items, err := j.foodRepository.GetExpiringItems(ctx, settings.UserID, warningDate)
		if err != nil {
			j.log.Error().Err(err).Str("user_id", settings.UserID.String()).Msg("expiry scan: query failed")
			continue
		}
		if len(items) == 0 {
			continue
		}

		notices := make([]domain.ExpiringItemNotice, 0, len(items))
		for _, item := range items {
			if item.ExpiryDate == nil {
				continue
			}
			notices = append(notices, domain.ExpiringItemNotice{
				Name:          item.Name,
				ExpiryDate:    item.ExpiryDate.Format("2006-01-02"),
				DaysRemaining: daysBetween(today, *item.ExpiryDate),
			})
		}

		if err := j.lineService.SendExpiryNotification(settings.User.LineUserID, notices); err != nil {
			j.log.Error().Err(err).Str("user_id", settings.UserID.String()).Msg("expiry scan: notification failed")
			continue
		}
		notified++
	}

	j.log.Info().Int("notified", notified).Int("total", len(settingsList)).Msg("expiry scan finished")
}

// CheckSpaceUsage warns opted-in users whose fridges exceed their usage
// threshold. Usage is estimated from the active item count against a fixed
// capacity. Failures are isolated per user and per fridge.
func (j *Jobs) CheckSpaceUsage(ctx context.Context) {
	j.log.Info().Msg("space scan started")

	settingsList, err := j.notificationRepository.GetBySpaceWarningEnabled(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("space scan: failed to load notification settings")
		return
	}
	j.log.Info().Int("users", len(settingsList)).Msg("space scan: users with space warnings enabled")

	for _, settings := range settingsList {
		if settings.User == nil {
			j.log.Error().Str("user_id", settings.UserID.String()).Msg("space scan: settings row without user")
			continue
		}

		fridges, err := j.fridgeRepository.GetByUser(ctx, settings.UserID)
		if err != nil {
			j.log.Error().Err(err).Str("user_id", settings.UserID.String()).Msg("space scan: failed to load fridges")
			continue
		}

		for _, userFridge := range fridges {
			count, err := j.foodRepository.CountActiveItems(ctx, userFridge.ID)
			if err != nil {
				j.log.Error().Err(err).Str("fridge_id", userFridge.ID.String()).Msg("space scan: count failed")
				continue
			}

			usage := float64(count) / float64(j.capacity) * 100
			if usage < float64(settings.SpaceWarningThreshold) {
				continue
			}

			j.log.Info().
				Str("fridge_id", userFridge.ID.String()).
				Float64("usage", usage).
				Int("threshold", settings.SpaceWarningThreshold).
				Msg("space scan: threshold exceeded")

			if err := j.lineService.SendSpaceWarning(settings.User.LineUserID, usage); err != nil {
				j.log.Error().Err(err).Str("fridge_id", userFridge.ID.String()).Msg("space scan: warning failed")
			}
		}
	}

	j.log.Info().Msg("space scan finished")
}

// SendMonthlyStats pushes last month's savings report to every eligible user.
func (j *Jobs) SendMonthlyStats(ctx context.Context) {
	j.log.Info().Msg("monthly report job started")

	sent, total, err := j.statsService.SendMonthlyReportToAll(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("monthly report job failed")
		return
	}

	j.log.Info().Int("sent", sent).Int("total", total).Msg("monthly report job finished")
}

func dateIn(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// daysBetween compares the calendar dates of from and to, ignoring clock time
// and zone differences between stored dates and local today.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
