package shopping

import (
	"strings"

	"eng-backend/entities"
)

const planningWeekDays = 7

// ClassifyWorkout buckets a workout into a day type by case-insensitive
// substring match on its name. Precedence: "rest", then "low carb", then
// "high carb", everything else is a training day.
func ClassifyWorkout(name string) DayType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "rest"):
		return DayTypeRest
	case strings.Contains(lower, "low carb"):
		return DayTypeLowCarb
	case strings.Contains(lower, "high carb"):
		return DayTypeHighCarb
	default:
		return DayTypeTraining
	}
}

// SuggestFrequencies counts each workout's day-type bucket and pads the week
// out to 7 days with rest days. The padding assumes a fixed 7-day cycle:
// workouts may not map to distinct calendar days, so this is a suggestion,
// not a guarantee. Only the four classifiable day types are ever suggested.
func SuggestFrequencies(workouts []*entities.Workout) []DayTypeFrequency {
	counts := map[DayType]int{}
	for _, w := range workouts {
		if w == nil {
			continue
		}
		counts[ClassifyWorkout(w.Name)]++
	}

	total := counts[DayTypeTraining] + counts[DayTypeRest] + counts[DayTypeLowCarb] + counts[DayTypeHighCarb]
	if total < planningWeekDays {
		counts[DayTypeRest] += planningWeekDays - total
	}

	suggested := make([]DayTypeFrequency, 0, 4)
	for _, dt := range []DayType{DayTypeTraining, DayTypeRest, DayTypeLowCarb, DayTypeHighCarb} {
		suggested = append(suggested, DayTypeFrequency{DayType: dt, Frequency: counts[dt]})
	}
	return suggested
}
