package shopping

import (
	"testing"

	"eng-backend/entities"
)

func workouts(names ...string) []*entities.Workout {
	ws := make([]*entities.Workout, 0, len(names))
	for _, n := range names {
		ws = append(ws, &entities.Workout{Name: n})
	}
	return ws
}

func frequencyOf(entries []DayTypeFrequency, dt DayType) int {
	for _, e := range entries {
		if e.DayType == dt {
			return e.Frequency
		}
	}
	return 0
}

func TestClassifyWorkout(t *testing.T) {
	tests := []struct {
		name string
		want DayType
	}{
		{"Upper Body", DayTypeTraining},
		{"REST day", DayTypeRest},
		{"Low Carb Cardio", DayTypeLowCarb},
		{"high carb legs", DayTypeHighCarb},
		{"Active Rest & Low Carb", DayTypeRest}, // "rest" wins over "low carb"
		{"", DayTypeTraining},
	}
	for _, tt := range tests {
		if got := ClassifyWorkout(tt.name); got != tt.want {
			t.Fatalf("ClassifyWorkout(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSuggestFrequenciesPadsWeekWithRestDays(t *testing.T) {
	// 3 training + 1 rest = 4 accounted days; the 3-day shortfall goes to rest.
	suggested := SuggestFrequencies(workouts("Push", "Pull", "Legs", "Rest"))

	if got := frequencyOf(suggested, DayTypeTraining); got != 3 {
		t.Fatalf("expected 3 training days, got %d", got)
	}
	if got := frequencyOf(suggested, DayTypeRest); got != 4 {
		t.Fatalf("expected 1+3 rest days, got %d", got)
	}
}

func TestSuggestFrequenciesFullWeekIsNotPadded(t *testing.T) {
	suggested := SuggestFrequencies(workouts(
		"Push", "Pull", "Legs", "Upper", "Lower", "Low Carb Cardio", "High Carb Legs", "Arms",
	))
	if got := frequencyOf(suggested, DayTypeRest); got != 0 {
		t.Fatalf("expected rest to stay 0 when accounted days >= 7, got %d", got)
	}
	if got := frequencyOf(suggested, DayTypeTraining); got != 6 {
		t.Fatalf("expected 6 training days, got %d", got)
	}
}

func TestSuggestFrequenciesNoWorkoutsIsAllRest(t *testing.T) {
	suggested := SuggestFrequencies(nil)
	if got := frequencyOf(suggested, DayTypeRest); got != 7 {
		t.Fatalf("expected an empty program to suggest 7 rest days, got %d", got)
	}
}

func TestSuggestFrequenciesOnlySuggestsFourDayTypes(t *testing.T) {
	suggested := SuggestFrequencies(workouts("Refeed Prep", "Deload Week", "Competition Peak"))
	allowed := map[DayType]bool{
		DayTypeTraining: true, DayTypeRest: true, DayTypeLowCarb: true, DayTypeHighCarb: true,
	}
	for _, e := range suggested {
		if !allowed[e.DayType] {
			t.Fatalf("suggested day type %v outside the fixed set", e.DayType)
		}
	}
	// Names without a matching substring land in the training bucket.
	if got := frequencyOf(suggested, DayTypeTraining); got != 3 {
		t.Fatalf("expected 3 training days, got %d", got)
	}
}
