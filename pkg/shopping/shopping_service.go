package shopping

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"eng-backend/domain"

	"gorm.io/gorm"
)

const (
	preferenceKeyFrequencies = "shopping.day_type_frequencies"
	preferenceKeyLastPlanID  = "shopping.last_plan_id"
)

type (
	ShoppingService interface {
		GenerateShoppingList(ctx context.Context, userID string, req domain.GenerateShoppingListRequest) (domain.ShoppingListResponse, error)
		SuggestFrequencies(ctx context.Context, userID string) (domain.SuggestFrequenciesResponse, error)
		SaveFrequencies(ctx context.Context, userID string, req domain.SaveFrequenciesRequest) (domain.SavedFrequenciesResponse, error)
		GetSavedFrequencies(ctx context.Context, userID string) (domain.SavedFrequenciesResponse, error)
	}

	shoppingService struct {
		shoppingRepository ShoppingRepository
		preferences        PreferenceStore
	}
)

func NewShoppingService(shoppingRepository ShoppingRepository, preferences PreferenceStore) ShoppingService {
	return &shoppingService{
		shoppingRepository: shoppingRepository,
		preferences:        preferences,
	}
}

func (s *shoppingService) GenerateShoppingList(ctx context.Context, userID string, req domain.GenerateShoppingListRequest) (domain.ShoppingListResponse, error) {
	frequencies := frequenciesFromRequest(req.Frequencies)

	plan, err := s.shoppingRepository.GetPlanWithMeals(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListResponse{}, domain.ErrPlanNotFound
		}
		return domain.ShoppingListResponse{}, err
	}

	if len(plan.Meals) == 0 {
		// A plan without meals is a valid state, not a failure.
		return domain.ShoppingListResponse{
			PlanID:  req.PlanID,
			Items:   []domain.ShoppingCartItem{},
			NoMeals: true,
		}, nil
	}

	items := BuildShoppingList(plan.Meals, frequencies)

	response := domain.ShoppingListResponse{
		PlanID: req.PlanID,
		Items:  make([]domain.ShoppingCartItem, 0, len(items)),
	}
	for _, item := range items {
		cartItem := domain.ShoppingCartItem{
			FoodItemID:   item.FoodItemID,
			FoodName:     item.FoodName,
			TotalGrams:   item.TotalGrams,
			OriginalUnit: item.OriginalUnit,
		}
		cartItem.SearchLinks.Retailer1, cartItem.SearchLinks.Retailer2 = RetailerSearchLinks(item.FoodName)
		response.Items = append(response.Items, cartItem)
	}

	// Remember the plan so reopening the editor can repopulate. Best effort:
	// the generated list is already in hand.
	if err := s.preferences.Set(ctx, userID, preferenceKeyLastPlanID, req.PlanID); err != nil {
		log.Printf("failed to store last shopping plan id: %v", err)
	}

	return response, nil
}

// SuggestFrequencies derives a frequency suggestion from the user's current
// program assignment. Every failure here is log-only: the frequency editor
// must stay usable with an empty suggestion set.
func (s *shoppingService) SuggestFrequencies(ctx context.Context, userID string) (domain.SuggestFrequenciesResponse, error) {
	empty := domain.SuggestFrequenciesResponse{Frequencies: []domain.DayTypeFrequencyResponse{}}

	assignment, err := s.shoppingRepository.GetLatestAssignment(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("failed to fetch program assignment for suggestions: %v", err)
		}
		return empty, nil
	}
	if assignment.ProgramTemplateID == nil {
		return empty, nil
	}

	workouts, err := s.shoppingRepository.GetWorkoutsByTemplate(ctx, assignment.ProgramTemplateID.String())
	if err != nil {
		log.Printf("failed to fetch workouts for suggestions: %v", err)
		return empty, nil
	}

	suggested := SuggestFrequencies(workouts)
	return domain.SuggestFrequenciesResponse{Frequencies: frequenciesToResponse(suggested)}, nil
}

func (s *shoppingService) SaveFrequencies(ctx context.Context, userID string, req domain.SaveFrequenciesRequest) (domain.SavedFrequenciesResponse, error) {
	normalized := NormalizeFrequencies(frequenciesFromRequest(req.Frequencies))

	serialized, err := json.Marshal(normalized)
	if err != nil {
		return domain.SavedFrequenciesResponse{}, err
	}
	if err := s.preferences.Set(ctx, userID, preferenceKeyFrequencies, string(serialized)); err != nil {
		return domain.SavedFrequenciesResponse{}, err
	}
	if err := s.preferences.Set(ctx, userID, preferenceKeyLastPlanID, req.PlanID); err != nil {
		return domain.SavedFrequenciesResponse{}, err
	}

	return domain.SavedFrequenciesResponse{
		PlanID:      req.PlanID,
		Frequencies: frequenciesToResponse(normalized),
	}, nil
}

func (s *shoppingService) GetSavedFrequencies(ctx context.Context, userID string) (domain.SavedFrequenciesResponse, error) {
	response := domain.SavedFrequenciesResponse{Frequencies: []domain.DayTypeFrequencyResponse{}}

	planID, found, err := s.preferences.Get(ctx, userID, preferenceKeyLastPlanID)
	if err != nil {
		return domain.SavedFrequenciesResponse{}, err
	}
	if found {
		response.PlanID = planID
	}

	serialized, found, err := s.preferences.Get(ctx, userID, preferenceKeyFrequencies)
	if err != nil {
		return domain.SavedFrequenciesResponse{}, err
	}
	if !found {
		return response, nil
	}

	var saved []DayTypeFrequency
	if err := json.Unmarshal([]byte(serialized), &saved); err != nil {
		// Stale or hand-edited value; treat the same as nothing saved.
		log.Printf("failed to decode saved frequencies: %v", err)
		return response, nil
	}

	response.Frequencies = frequenciesToResponse(saved)
	return response, nil
}

// frequenciesFromRequest clamps raw editor input to non-negative integers.
func frequenciesFromRequest(entries []domain.DayTypeFrequencyRequest) []DayTypeFrequency {
	frequencies := make([]DayTypeFrequency, 0, len(entries))
	for _, e := range entries {
		frequencies = append(frequencies, DayTypeFrequency{
			DayType:   DayType(e.DayType),
			Frequency: ClampFrequency(e.Frequency),
		})
	}
	return frequencies
}

func frequenciesToResponse(entries []DayTypeFrequency) []domain.DayTypeFrequencyResponse {
	response := make([]domain.DayTypeFrequencyResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, domain.DayTypeFrequencyResponse{
			DayType:   string(e.DayType),
			Frequency: e.Frequency,
		})
	}
	return response
}
