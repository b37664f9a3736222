package entities

import (
	"github.com/google/uuid"
)

type FoodItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodName      string    `json:"food_name"`
	NutrientBasis string    `json:"nutrient_basis"` // "100g", "serving"
	ServingSizeG  *float64  `json:"serving_size_g,omitempty"`
	CaloriesKcal  float64   `json:"calories_kcal"`
	ProteinG      float64   `json:"protein_g"`
	CarbsG        float64   `json:"carbs_g"`
	FatG          float64   `json:"fat_g"`

	Timestamp
}
