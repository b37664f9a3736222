package entities

import (
	"time"

	"github.com/google/uuid"
)

type BodyMetric struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Date       time.Time `gorm:"type:date" json:"date"`
	WeightKG   *float64  `json:"weight_kg,omitempty"`
	BodyFatPct *float64  `json:"body_fat_pct,omitempty"`
	WaistCM    *float64  `json:"waist_cm,omitempty"`
	Notes      string    `json:"notes,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
