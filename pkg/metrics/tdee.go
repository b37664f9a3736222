package metrics

import (
	"math"
	"time"

	"eng-backend/entities"
)

// activityMultipliers maps activity level labels to their TDEE multiplier.
// Also the source of truth for valid activity levels.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// ComputeTDEE computes BMR (Mifflin-St Jeor) and TDEE from profile fields.
// Returns ok=false when a required field is missing or the derived age is
// implausible.
func ComputeTDEE(user *entities.User, at time.Time) (bmr, tdee int, ok bool) {
	if user == nil || user.Sex == "" || user.DateOfBirth == nil ||
		user.HeightCM == nil || user.WeightKG == nil || user.ActivityLevel == "" {
		return 0, 0, false
	}

	age := at.Year() - user.DateOfBirth.Year()
	if at.Before(user.DateOfBirth.AddDate(age, 0, 0)) {
		age--
	}
	if age < 0 || age > 130 {
		return 0, 0, false
	}

	bmrF := 10**user.WeightKG + 6.25**user.HeightCM - 5*float64(age)
	if user.Sex == "male" {
		bmrF += 5
	} else {
		bmrF -= 161
	}

	mult, found := activityMultipliers[user.ActivityLevel]
	if !found {
		return 0, 0, false
	}
	tdeeF := bmrF * mult

	return int(math.Round(bmrF)), int(math.Round(tdeeF)), true
}
