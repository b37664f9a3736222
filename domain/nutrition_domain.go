package domain

import (
	"errors"
)

var (
	MessageSuccessCreateFoodItem = "food item created successfully"
	MessageSuccessUpdateFoodItem = "food item updated successfully"
	MessageSuccessDeleteFoodItem = "food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessCreatePlan     = "nutrition plan created successfully"
	MessageSuccessUpdatePlan     = "nutrition plan updated successfully"
	MessageSuccessDeletePlan     = "nutrition plan deleted successfully"
	MessageSuccessGetPlans       = "nutrition plans retrieved successfully"
	MessageSuccessGetPlanDetail  = "nutrition plan detail retrieved successfully"
	MessageSuccessAddMeal        = "meal added successfully"
	MessageSuccessUpdateMeal     = "meal updated successfully"
	MessageSuccessDeleteMeal     = "meal deleted successfully"
	MessageSuccessAddMealFood    = "meal food item added successfully"
	MessageSuccessRemoveMealFood = "meal food item removed successfully"

	MessageFailedCreateFoodItem = "failed to create food item"
	MessageFailedUpdateFoodItem = "failed to update food item"
	MessageFailedDeleteFoodItem = "failed to delete food item"
	MessageFailedGetFoodItems   = "failed to retrieve food items"
	MessageFailedCreatePlan     = "failed to create nutrition plan"
	MessageFailedUpdatePlan     = "failed to update nutrition plan"
	MessageFailedDeletePlan     = "failed to delete nutrition plan"
	MessageFailedGetPlans       = "failed to retrieve nutrition plans"
	MessageFailedGetPlanDetail  = "failed to retrieve nutrition plan detail"
	MessageFailedAddMeal        = "failed to add meal"
	MessageFailedUpdateMeal     = "failed to update meal"
	MessageFailedDeleteMeal     = "failed to delete meal"
	MessageFailedAddMealFood    = "failed to add meal food item"
	MessageFailedRemoveMealFood = "failed to remove meal food item"

	ErrFoodItemNotFound  = errors.New("food item not found")
	ErrPlanNotFound      = errors.New("nutrition plan not found")
	ErrMealNotFound      = errors.New("meal not found")
	ErrMealFoodNotFound  = errors.New("meal food item not found")
	ErrUnauthorizedPlan  = errors.New("unauthorized access to nutrition plan")
	ErrInvalidDayType    = errors.New("invalid day type")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
)

type (
	CreateFoodItemRequest struct {
		FoodName      string   `json:"food_name" validate:"required"`
		NutrientBasis string   `json:"nutrient_basis" validate:"required,oneof=100g serving"`
		ServingSizeG  *float64 `json:"serving_size_g" validate:"omitempty,gt=0"`
		CaloriesKcal  float64  `json:"calories_kcal" validate:"omitempty,gte=0"`
		ProteinG      float64  `json:"protein_g" validate:"omitempty,gte=0"`
		CarbsG        float64  `json:"carbs_g" validate:"omitempty,gte=0"`
		FatG          float64  `json:"fat_g" validate:"omitempty,gte=0"`
	}

	FoodItemResponse struct {
		ID            string   `json:"id"`
		FoodName      string   `json:"food_name"`
		NutrientBasis string   `json:"nutrient_basis"`
		ServingSizeG  *float64 `json:"serving_size_g,omitempty"`
		CaloriesKcal  float64  `json:"calories_kcal"`
		ProteinG      float64  `json:"protein_g"`
		CarbsG        float64  `json:"carbs_g"`
		FatG          float64  `json:"fat_g"`
	}

	CreatePlanRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdatePlanRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
	}

	AddMealRequest struct {
		Name        string  `json:"name" validate:"required"`
		DayType     *string `json:"day_type" validate:"omitempty"`
		OrderInPlan int     `json:"order_in_plan" validate:"omitempty,min=0"`
	}

	UpdateMealRequest struct {
		Name        string  `json:"name" validate:"omitempty"`
		DayType     *string `json:"day_type" validate:"omitempty"`
		OrderInPlan int     `json:"order_in_plan" validate:"omitempty,min=0"`
	}

	AddMealFoodRequest struct {
		FoodItemID string  `json:"food_item_id" validate:"required,uuid"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		Unit       string  `json:"unit" validate:"required"`
	}

	MealFoodResponse struct {
		ID       string           `json:"id"`
		Quantity float64          `json:"quantity"`
		Unit     string           `json:"unit"`
		FoodItem FoodItemResponse `json:"food_item"`
	}

	MealResponse struct {
		ID          string             `json:"id"`
		Name        string             `json:"name"`
		DayType     *string            `json:"day_type,omitempty"`
		OrderInPlan int                `json:"order_in_plan"`
		FoodItems   []MealFoodResponse `json:"food_items"`
	}

	PlanResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}

	PlanDetailResponse struct {
		ID          string         `json:"id"`
		Name        string         `json:"name"`
		Description string         `json:"description,omitempty"`
		Meals       []MealResponse `json:"meals"`
	}
)
