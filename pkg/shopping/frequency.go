package shopping

import "math"

// DayTypeFrequency pairs a day type with how many days of the planning week
// it occupies. The week is nominally 7 days but the total is not enforced.
type DayTypeFrequency struct {
	DayType   DayType `json:"day_type"`
	Frequency int     `json:"frequency"`
}

// ClampFrequency coerces a raw frequency input to a non-negative integer.
func ClampFrequency(v float64) int {
	f := math.Floor(v)
	if f < 0 {
		return 0
	}
	return int(f)
}

// NormalizeFrequencies clamps every entry, resolves duplicate day types with
// last-write-wins, and drops zero-frequency entries. Zero-frequency day types
// carry no information, so they are never persisted or emitted. Order of the
// surviving entries follows AllDayTypes so output is deterministic.
func NormalizeFrequencies(entries []DayTypeFrequency) []DayTypeFrequency {
	byType := make(map[DayType]int, len(entries))
	for _, e := range entries {
		f := e.Frequency
		if f < 0 {
			f = 0
		}
		byType[e.DayType] = f
	}

	normalized := make([]DayTypeFrequency, 0, len(byType))
	for _, dt := range AllDayTypes {
		if f, ok := byType[dt]; ok && f > 0 {
			normalized = append(normalized, DayTypeFrequency{DayType: dt, Frequency: f})
		}
	}
	return normalized
}

// frequencyLookup indexes entries by day type. Day types absent from the
// mapping aggregate with frequency 0.
func frequencyLookup(entries []DayTypeFrequency) map[DayType]int {
	lookup := make(map[DayType]int, len(entries))
	for _, e := range entries {
		lookup[e.DayType] = e.Frequency
	}
	return lookup
}
