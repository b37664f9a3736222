package entities

import (
	"github.com/google/uuid"
)

type NutritionPlan struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CoachID     uuid.UUID `json:"coach_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`

	Coach *User   `gorm:"foreignKey:CoachID"`
	Meals []*Meal `gorm:"foreignKey:NutritionPlanID"`
	Timestamp
}

type Meal struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	NutritionPlanID uuid.UUID `json:"nutrition_plan_id"`
	Name            string    `json:"name"`
	DayType         *string   `json:"day_type,omitempty"` // nil meals are excluded from shopping aggregation
	OrderInPlan     int       `json:"order_in_plan"`

	NutritionPlan *NutritionPlan  `gorm:"foreignKey:NutritionPlanID"`
	FoodItems     []*MealFoodItem `gorm:"foreignKey:MealID"`
	Timestamp
}

type MealFoodItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MealID     uuid.UUID `json:"meal_id"`
	FoodItemID uuid.UUID `json:"food_item_id"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"` // "g", "serving", ...

	Meal     *Meal     `gorm:"foreignKey:MealID"`
	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID"`
	Timestamp
}
