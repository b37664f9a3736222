package shopping

import "testing"

func TestClampFrequency(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{3, 3},
		{3.9, 3},
		{0, 0},
		{-2, 0},
		{-0.5, 0},
	}
	for _, tt := range tests {
		if got := ClampFrequency(tt.in); got != tt.want {
			t.Fatalf("ClampFrequency(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeFrequenciesDropsZeroEntries(t *testing.T) {
	normalized := NormalizeFrequencies([]DayTypeFrequency{
		{DayType: DayTypeTraining, Frequency: 3},
		{DayType: DayTypeRest, Frequency: 0},
	})
	if len(normalized) != 1 {
		t.Fatalf("expected 1 entry after dropping zeros, got %d", len(normalized))
	}
	if normalized[0].DayType != DayTypeTraining || normalized[0].Frequency != 3 {
		t.Fatalf("unexpected entry %+v", normalized[0])
	}
}

func TestNormalizeFrequenciesLastWriteWinsPerDayType(t *testing.T) {
	normalized := NormalizeFrequencies([]DayTypeFrequency{
		{DayType: DayTypeTraining, Frequency: 2},
		{DayType: DayTypeTraining, Frequency: 5},
	})
	if len(normalized) != 1 {
		t.Fatalf("expected duplicates collapsed, got %d entries", len(normalized))
	}
	if normalized[0].Frequency != 5 {
		t.Fatalf("expected last write 5, got %d", normalized[0].Frequency)
	}
}

func TestNormalizeFrequenciesDuplicateResolvingToZeroIsDropped(t *testing.T) {
	normalized := NormalizeFrequencies([]DayTypeFrequency{
		{DayType: DayTypeRest, Frequency: 4},
		{DayType: DayTypeRest, Frequency: 0},
	})
	if len(normalized) != 0 {
		t.Fatalf("expected last-write zero to drop the entry, got %+v", normalized)
	}
}
