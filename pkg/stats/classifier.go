package stats

import (
	"Fridge-Elf-Backend/entities"
	"time"
)

// Classify decides whether an archived item counts as a saving or as waste.
// An explicit disposal reason always wins. Without one, an item archived on or
// before its expiry date counts as used; past it, wasted. Items with no expiry
// date get the benefit of the doubt.
func Classify(item entities.FoodItem) string {
	if item.DisposalReason != nil {
		switch *item.DisposalReason {
		case entities.DisposalReasonUsed:
			return entities.DisposalReasonUsed
		case entities.DisposalReasonWasted:
			return entities.DisposalReasonWasted
		}
	}

	if item.ExpiryDate != nil && item.ArchivedAt != nil {
		if dateOf(*item.ArchivedAt).After(dateOf(*item.ExpiryDate)) {
			return entities.DisposalReasonWasted
		}
		return entities.DisposalReasonUsed
	}

	return entities.DisposalReasonUsed
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
