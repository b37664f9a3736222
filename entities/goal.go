package entities

import (
	"time"

	"github.com/google/uuid"
)

type StepGoal struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	DailySteps int       `json:"daily_steps"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type StepEntry struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Date   time.Time `gorm:"type:date" json:"date"`
	Steps  int       `json:"steps"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type WaterGoal struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	TargetML int       `json:"target_ml"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type WaterEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Date     time.Time `gorm:"type:date" json:"date"`
	AmountML int       `json:"amount_ml"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
