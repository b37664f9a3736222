package domain

import (
	"errors"
)

var (
	MessageSuccessGenerateList      = "shopping list generated successfully"
	MessageSuccessSuggestFrequency  = "day type frequencies suggested successfully"
	MessageSuccessSaveFrequencies   = "day type frequencies saved successfully"
	MessageSuccessGetFrequencies    = "day type frequencies retrieved successfully"

	MessageFailedGenerateList     = "failed to generate shopping list"
	MessageFailedSuggestFrequency = "failed to suggest day type frequencies"
	MessageFailedSaveFrequencies  = "failed to save day type frequencies"
	MessageFailedGetFrequencies   = "failed to retrieve day type frequencies"

	ErrPlanHasNoMeals = errors.New("nutrition plan has no meals")
)

type (
	DayTypeFrequencyRequest struct {
		DayType   string  `json:"day_type" validate:"required"`
		Frequency float64 `json:"frequency" validate:"omitempty"`
	}

	GenerateShoppingListRequest struct {
		PlanID      string                    `json:"plan_id" validate:"required,uuid"`
		Frequencies []DayTypeFrequencyRequest `json:"frequencies" validate:"required,dive"`
	}

	SaveFrequenciesRequest struct {
		PlanID      string                    `json:"plan_id" validate:"required,uuid"`
		Frequencies []DayTypeFrequencyRequest `json:"frequencies" validate:"required,dive"`
	}

	// ShoppingCartItem is one deduplicated ingredient total for the planning
	// week. OriginalUnit is informational only, it plays no part in the math.
	ShoppingCartItem struct {
		FoodItemID   string  `json:"food_item_id"`
		FoodName     string  `json:"food_name"`
		TotalGrams   float64 `json:"total_grams"`
		OriginalUnit string  `json:"original_unit,omitempty"`
		SearchLinks  struct {
			Retailer1 string `json:"retailer1"`
			Retailer2 string `json:"retailer2"`
		} `json:"search_links"`
	}

	ShoppingListResponse struct {
		PlanID  string             `json:"plan_id"`
		Items   []ShoppingCartItem `json:"items"`
		NoMeals bool               `json:"no_meals,omitempty"`
	}

	DayTypeFrequencyResponse struct {
		DayType   string `json:"day_type"`
		Frequency int    `json:"frequency"`
	}

	SuggestFrequenciesResponse struct {
		Frequencies []DayTypeFrequencyResponse `json:"frequencies"`
	}

	SavedFrequenciesResponse struct {
		PlanID      string                     `json:"plan_id,omitempty"`
		Frequencies []DayTypeFrequencyResponse `json:"frequencies"`
	}
)
