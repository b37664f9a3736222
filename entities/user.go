package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	Password     string     `json:"-"`
	Role         string     `json:"role"` // "coach", "athlete"
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Sex          string     `json:"sex,omitempty"` // "male", "female"
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	HeightCM     *float64   `json:"height_cm,omitempty"`
	WeightKG     *float64   `json:"weight_kg,omitempty"`
	ActivityLevel string    `json:"activity_level,omitempty"` // "sedentary", "light", "moderate", "active", "very_active"
	CoachID      *uuid.UUID `json:"coach_id,omitempty"`
	InviteStatus string     `json:"invite_status,omitempty"` // "Pending", "Accepted"
	Verified     bool       `json:"verified"`

	Coach *User `gorm:"foreignKey:CoachID"`
	Timestamp
}
