package stats

import (
	"testing"
	"time"

	"Fridge-Elf-Backend/entities"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestClassify_ExplicitReasonWins(t *testing.T) {
	// A recorded disposal reason overrides whatever the dates say.
	expiry := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	archivedLate := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

	item := entities.FoodItem{
		DisposalReason: strPtr(entities.DisposalReasonUsed),
		ExpiryDate:     timePtr(expiry),
		ArchivedAt:     timePtr(archivedLate),
	}
	assert.Equal(t, entities.DisposalReasonUsed, Classify(item))

	item.DisposalReason = strPtr(entities.DisposalReasonWasted)
	item.ArchivedAt = timePtr(expiry.AddDate(0, 0, -5))
	assert.Equal(t, entities.DisposalReasonWasted, Classify(item))
}

func TestClassify_DateComparison(t *testing.T) {
	expiry := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		archived time.Time
		want     string
	}{
		{
			name:     "archived before expiry is used",
			archived: time.Date(2026, 1, 8, 15, 30, 0, 0, time.UTC),
			want:     entities.DisposalReasonUsed,
		},
		{
			name:     "archived on expiry day is still used",
			archived: time.Date(2026, 1, 10, 23, 59, 59, 0, time.UTC),
			want:     entities.DisposalReasonUsed,
		},
		{
			name:     "archived the day after expiry is wasted",
			archived: time.Date(2026, 1, 11, 0, 0, 1, 0, time.UTC),
			want:     entities.DisposalReasonWasted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := entities.FoodItem{
				ExpiryDate: timePtr(expiry),
				ArchivedAt: timePtr(tt.archived),
			}
			assert.Equal(t, tt.want, Classify(item))
		})
	}
}

func TestClassify_MissingDatesGetBenefitOfDoubt(t *testing.T) {
	assert.Equal(t, entities.DisposalReasonUsed, Classify(entities.FoodItem{}))

	noExpiry := entities.FoodItem{
		ArchivedAt: timePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	assert.Equal(t, entities.DisposalReasonUsed, Classify(noExpiry))

	notArchived := entities.FoodItem{
		ExpiryDate: timePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	assert.Equal(t, entities.DisposalReasonUsed, Classify(notArchived))
}

func TestClassify_UnknownReasonFallsBackToDates(t *testing.T) {
	expiry := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	item := entities.FoodItem{
		DisposalReason: strPtr("donated"),
		ExpiryDate:     timePtr(expiry),
		ArchivedAt:     timePtr(expiry.AddDate(0, 0, 3)),
	}
	assert.Equal(t, entities.DisposalReasonWasted, Classify(item))
}
