package entities

import (
	"time"

	"github.com/google/uuid"
)

type CheckIn struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AthleteID    uuid.UUID  `json:"athlete_id"`
	Date         time.Time  `gorm:"type:date" json:"date"`
	Notes        string     `json:"notes,omitempty"`
	BodyWeightKG *float64   `json:"body_weight_kg,omitempty"`
	PhotoURL     string     `json:"photo_url,omitempty"`
	VideoURL     string     `json:"video_url,omitempty"`
	Status       string     `json:"status"` // "Submitted", "Reviewed"
	Feedback     string     `json:"feedback,omitempty"`
	ReviewedBy   *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`

	Athlete  *User `gorm:"foreignKey:AthleteID"`
	Reviewer *User `gorm:"foreignKey:ReviewedBy"`
	Timestamp
}
