package stats

import (
	"fmt"
)

const maxSuggestions = 3

// generateSuggestions builds the monthly report's suggestion list: exactly one
// save-rate message, an optional low-waste bonus or category tip, and one
// closing message, truncated to three entries.
func generateSuggestions(saveRate, wasteRate float64, mostWastedCategory *string) []string {
	suggestions := make([]string, 0, 4)

	switch {
	case saveRate >= 90:
		suggestions = append(suggestions, "Outstanding! You are a true money-saving champion with near-perfect food management.")
	case saveRate >= 80:
		suggestions = append(suggestions, "Great job! You manage your food really well. Keep it up!")
	case saveRate >= 70:
		suggestions = append(suggestions, "Well done! Almost nothing went to waste this month.")
	case saveRate >= 60:
		suggestions = append(suggestions, "A solid saving performance. A little more attention and it will be perfect.")
	case saveRate >= 40:
		suggestions = append(suggestions, "There is plenty of room to improve. Keep working on your food management!")
	case saveRate >= 20:
		suggestions = append(suggestions, "Try paying closer attention to expiry dates. You can definitely do better.")
	default:
		suggestions = append(suggestions, "No worries, everyone starts somewhere. Give your fridge a little more care from now on.")
	}

	switch {
	case wasteRate == 0:
		suggestions = append(suggestions, "Zero waste this month! Your fridge thanks you, and so does the planet.")
	case wasteRate <= 5:
		suggestions = append(suggestions, "Almost zero waste! Your eco-awareness is impressive.")
	case wasteRate <= 15:
		suggestions = append(suggestions, "Very little waste. Your habits are paying off.")
	case wasteRate > 30:
		if mostWastedCategory != nil {
			suggestions = append(suggestions, fmt.Sprintf("You often waste %q. Try splitting it into smaller portions before storing.", *mostWastedCategory))
		}
	case wasteRate > 15:
		if mostWastedCategory != nil {
			suggestions = append(suggestions, fmt.Sprintf("When buying %q, double-check how much you actually need.", *mostWastedCategory))
		}
	}

	if saveRate >= 70 {
		suggestions = append(suggestions, "Keep this great habit going next month. You are doing amazing!")
	} else {
		suggestions = append(suggestions, "Let's aim for a higher save rate together next month!")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
