package metrics

import (
	"testing"
	"time"

	"eng-backend/entities"
)

func profileFor(sex string, ageYears int, heightCM, weightKG float64, activity string, at time.Time) *entities.User {
	dob := at.AddDate(-ageYears, 0, 0)
	return &entities.User{
		Sex:           sex,
		DateOfBirth:   &dob,
		HeightCM:      &heightCM,
		WeightKG:      &weightKG,
		ActivityLevel: activity,
	}
}

func TestComputeTDEEMale(t *testing.T) {
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	// Mifflin-St Jeor, male: 10*80 + 6.25*180 - 5*30 + 5 = 1780
	bmr, tdee, ok := ComputeTDEE(profileFor("male", 30, 180, 80, "moderate", at), at)
	if !ok {
		t.Fatalf("expected ok")
	}
	if bmr != 1780 {
		t.Fatalf("expected BMR 1780, got %d", bmr)
	}
	if tdee != 2759 { // round(1780 * 1.55)
		t.Fatalf("expected TDEE 2759, got %d", tdee)
	}
}

func TestComputeTDEEFemale(t *testing.T) {
	at := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	// female: 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
	bmr, tdee, ok := ComputeTDEE(profileFor("female", 25, 165, 60, "sedentary", at), at)
	if !ok {
		t.Fatalf("expected ok")
	}
	if bmr != 1345 {
		t.Fatalf("expected BMR 1345, got %d", bmr)
	}
	if tdee != 1614 { // round(1345.25 * 1.2)
		t.Fatalf("expected TDEE 1614, got %d", tdee)
	}
}

func TestComputeTDEEIncompleteProfile(t *testing.T) {
	at := time.Now()
	user := profileFor("male", 30, 180, 80, "moderate", at)
	user.HeightCM = nil
	if _, _, ok := ComputeTDEE(user, at); ok {
		t.Fatalf("expected incomplete profile to fail")
	}
	if _, _, ok := ComputeTDEE(nil, at); ok {
		t.Fatalf("expected nil profile to fail")
	}
}

func TestComputeTDEEUnknownActivityLevel(t *testing.T) {
	at := time.Now()
	user := profileFor("male", 30, 180, 80, "extreme", at)
	if _, _, ok := ComputeTDEE(user, at); ok {
		t.Fatalf("expected unknown activity level to fail")
	}
}

func TestComputeTDEEImplausibleAge(t *testing.T) {
	at := time.Now()
	user := profileFor("male", -1, 180, 80, "moderate", at) // DOB in the future
	if _, _, ok := ComputeTDEE(user, at); ok {
		t.Fatalf("expected future date of birth to fail")
	}
}
