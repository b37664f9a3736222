package shopping

// DayType is a categorical label for a day's nutritional strategy. The set is
// closed: meals and frequency entries only ever carry one of these values.
type DayType string

const (
	DayTypeTraining     DayType = "Training Day"
	DayTypeRest         DayType = "Rest Day"
	DayTypeLowCarb      DayType = "Low Carb Day"
	DayTypeHighCarb     DayType = "High Carb Day"
	DayTypeModerateCarb DayType = "Moderate Carb Day"
	DayTypeRefeed       DayType = "Refeed Day"
	DayTypeDeload       DayType = "Deload Day"
	DayTypeCompetition  DayType = "Competition Day"
	DayTypeTravel       DayType = "Travel Day"
	DayTypeCustom       DayType = "Custom"
)

// AllDayTypes lists every valid day type in display order.
var AllDayTypes = []DayType{
	DayTypeTraining,
	DayTypeRest,
	DayTypeLowCarb,
	DayTypeHighCarb,
	DayTypeModerateCarb,
	DayTypeRefeed,
	DayTypeDeload,
	DayTypeCompetition,
	DayTypeTravel,
	DayTypeCustom,
}

func IsValidDayType(s string) bool {
	for _, dt := range AllDayTypes {
		if string(dt) == s {
			return true
		}
	}
	return false
}
