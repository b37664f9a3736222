package entities

import (
	"time"

	"github.com/google/uuid"
)

type ProgramTemplate struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CoachID     uuid.UUID `json:"coach_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	WeeksCount  int       `json:"weeks_count"`

	Coach    *User      `gorm:"foreignKey:CoachID"`
	Workouts []*Workout `gorm:"foreignKey:ProgramTemplateID"`
	Timestamp
}

type Workout struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProgramTemplateID uuid.UUID `json:"program_template_id"`
	Name              string    `json:"name"`
	DayOfWeek         int       `json:"day_of_week"`
	OrderInProgram    int       `json:"order_in_program"`
	Notes             string    `json:"notes,omitempty"`

	ProgramTemplate *ProgramTemplate `gorm:"foreignKey:ProgramTemplateID"`
	Timestamp
}

type AssignedPlan struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AthleteID         uuid.UUID  `json:"athlete_id"`
	CoachID           uuid.UUID  `json:"coach_id"`
	ProgramTemplateID *uuid.UUID `json:"program_template_id,omitempty"`
	NutritionPlanID   *uuid.UUID `json:"nutrition_plan_id,omitempty"`
	StartDate         time.Time  `json:"start_date"`
	AssignedAt        time.Time  `gorm:"type:timestamp" json:"assigned_at"`

	Athlete         *User            `gorm:"foreignKey:AthleteID"`
	Coach           *User            `gorm:"foreignKey:CoachID"`
	ProgramTemplate *ProgramTemplate `gorm:"foreignKey:ProgramTemplateID"`
	NutritionPlan   *NutritionPlan   `gorm:"foreignKey:NutritionPlanID"`
	Timestamp
}
