package nutrition

import (
	"context"
	"errors"

	"eng-backend/domain"
	"eng-backend/entities"
	"eng-backend/pkg/shopping"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NutritionService interface {
		CreateFoodItem(ctx context.Context, req domain.CreateFoodItemRequest) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.CreateFoodItemRequest) error
		DeleteFoodItem(ctx context.Context, id string) error
		GetFoodItems(ctx context.Context, search string, page, limit int) ([]domain.FoodItemResponse, int64, error)

		CreatePlan(ctx context.Context, coachID string, req domain.CreatePlanRequest) (domain.PlanResponse, error)
		UpdatePlan(ctx context.Context, coachID string, planID string, req domain.UpdatePlanRequest) error
		DeletePlan(ctx context.Context, coachID string, planID string) error
		GetPlans(ctx context.Context, coachID string) ([]domain.PlanResponse, error)
		GetPlanDetail(ctx context.Context, planID string) (domain.PlanDetailResponse, error)

		AddMeal(ctx context.Context, coachID string, planID string, req domain.AddMealRequest) (domain.MealResponse, error)
		UpdateMeal(ctx context.Context, coachID string, mealID string, req domain.UpdateMealRequest) error
		DeleteMeal(ctx context.Context, coachID string, mealID string) error

		AddMealFoodItem(ctx context.Context, coachID string, mealID string, req domain.AddMealFoodRequest) (domain.MealFoodResponse, error)
		RemoveMealFoodItem(ctx context.Context, coachID string, itemID string) error
	}

	nutritionService struct {
		nutritionRepository NutritionRepository
	}
)

func NewNutritionService(nutritionRepository NutritionRepository) NutritionService {
	return &nutritionService{nutritionRepository: nutritionRepository}
}

func (s *nutritionService) CreateFoodItem(ctx context.Context, req domain.CreateFoodItemRequest) (domain.FoodItemResponse, error) {
	item := &entities.FoodItem{
		ID:            uuid.New(),
		FoodName:      req.FoodName,
		NutrientBasis: req.NutrientBasis,
		ServingSizeG:  req.ServingSizeG,
		CaloriesKcal:  req.CaloriesKcal,
		ProteinG:      req.ProteinG,
		CarbsG:        req.CarbsG,
		FatG:          req.FatG,
	}
	if err := s.nutritionRepository.CreateFoodItem(ctx, item); err != nil {
		return domain.FoodItemResponse{}, err
	}
	return foodItemResponse(item), nil
}

func (s *nutritionService) UpdateFoodItem(ctx context.Context, id string, req domain.CreateFoodItemRequest) error {
	item, err := s.nutritionRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	item.FoodName = req.FoodName
	item.NutrientBasis = req.NutrientBasis
	item.ServingSizeG = req.ServingSizeG
	item.CaloriesKcal = req.CaloriesKcal
	item.ProteinG = req.ProteinG
	item.CarbsG = req.CarbsG
	item.FatG = req.FatG

	return s.nutritionRepository.UpdateFoodItem(ctx, item)
}

func (s *nutritionService) DeleteFoodItem(ctx context.Context, id string) error {
	if _, err := s.nutritionRepository.GetFoodItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}
	return s.nutritionRepository.DeleteFoodItem(ctx, id)
}

func (s *nutritionService) GetFoodItems(ctx context.Context, search string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	items, count, err := s.nutritionRepository.GetFoodItems(ctx, search, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, foodItemResponse(item))
	}
	return response, count, nil
}

func (s *nutritionService) CreatePlan(ctx context.Context, coachID string, req domain.CreatePlanRequest) (domain.PlanResponse, error) {
	coachUUID, err := uuid.Parse(coachID)
	if err != nil {
		return domain.PlanResponse{}, domain.ErrParseUUID
	}

	plan := &entities.NutritionPlan{
		ID:          uuid.New(),
		CoachID:     coachUUID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.nutritionRepository.CreatePlan(ctx, plan); err != nil {
		return domain.PlanResponse{}, err
	}

	return domain.PlanResponse{ID: plan.ID.String(), Name: plan.Name, Description: plan.Description}, nil
}

func (s *nutritionService) UpdatePlan(ctx context.Context, coachID string, planID string, req domain.UpdatePlanRequest) error {
	plan, err := s.ownedPlan(ctx, coachID, planID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		plan.Name = req.Name
	}
	if req.Description != "" {
		plan.Description = req.Description
	}

	return s.nutritionRepository.UpdatePlan(ctx, plan)
}

func (s *nutritionService) DeletePlan(ctx context.Context, coachID string, planID string) error {
	if _, err := s.ownedPlan(ctx, coachID, planID); err != nil {
		return err
	}
	return s.nutritionRepository.DeletePlan(ctx, planID)
}

func (s *nutritionService) GetPlans(ctx context.Context, coachID string) ([]domain.PlanResponse, error) {
	plans, err := s.nutritionRepository.GetPlansByCoach(ctx, coachID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		response = append(response, domain.PlanResponse{
			ID:          plan.ID.String(),
			Name:        plan.Name,
			Description: plan.Description,
		})
	}
	return response, nil
}

func (s *nutritionService) GetPlanDetail(ctx context.Context, planID string) (domain.PlanDetailResponse, error) {
	plan, err := s.nutritionRepository.GetPlanWithMeals(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PlanDetailResponse{}, domain.ErrPlanNotFound
		}
		return domain.PlanDetailResponse{}, err
	}

	detail := domain.PlanDetailResponse{
		ID:          plan.ID.String(),
		Name:        plan.Name,
		Description: plan.Description,
		Meals:       make([]domain.MealResponse, 0, len(plan.Meals)),
	}
	for _, meal := range plan.Meals {
		mealResponse := domain.MealResponse{
			ID:          meal.ID.String(),
			Name:        meal.Name,
			DayType:     meal.DayType,
			OrderInPlan: meal.OrderInPlan,
			FoodItems:   make([]domain.MealFoodResponse, 0, len(meal.FoodItems)),
		}
		for _, line := range meal.FoodItems {
			if line.FoodItem == nil {
				continue
			}
			mealResponse.FoodItems = append(mealResponse.FoodItems, domain.MealFoodResponse{
				ID:       line.ID.String(),
				Quantity: line.Quantity,
				Unit:     line.Unit,
				FoodItem: foodItemResponse(line.FoodItem),
			})
		}
		detail.Meals = append(detail.Meals, mealResponse)
	}
	return detail, nil
}

func (s *nutritionService) AddMeal(ctx context.Context, coachID string, planID string, req domain.AddMealRequest) (domain.MealResponse, error) {
	plan, err := s.ownedPlan(ctx, coachID, planID)
	if err != nil {
		return domain.MealResponse{}, err
	}

	if req.DayType != nil && !shopping.IsValidDayType(*req.DayType) {
		return domain.MealResponse{}, domain.ErrInvalidDayType
	}

	meal := &entities.Meal{
		ID:              uuid.New(),
		NutritionPlanID: plan.ID,
		Name:            req.Name,
		DayType:         req.DayType,
		OrderInPlan:     req.OrderInPlan,
	}
	if err := s.nutritionRepository.AddMeal(ctx, meal); err != nil {
		return domain.MealResponse{}, err
	}

	return domain.MealResponse{
		ID:          meal.ID.String(),
		Name:        meal.Name,
		DayType:     meal.DayType,
		OrderInPlan: meal.OrderInPlan,
		FoodItems:   []domain.MealFoodResponse{},
	}, nil
}

func (s *nutritionService) UpdateMeal(ctx context.Context, coachID string, mealID string, req domain.UpdateMealRequest) error {
	meal, err := s.ownedMeal(ctx, coachID, mealID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		meal.Name = req.Name
	}
	if req.DayType != nil {
		// An empty string clears the day type, taking the meal out of
		// shopping aggregation.
		if *req.DayType == "" {
			meal.DayType = nil
		} else {
			if !shopping.IsValidDayType(*req.DayType) {
				return domain.ErrInvalidDayType
			}
			meal.DayType = req.DayType
		}
	}
	if req.OrderInPlan > 0 {
		meal.OrderInPlan = req.OrderInPlan
	}

	return s.nutritionRepository.UpdateMeal(ctx, meal)
}

func (s *nutritionService) DeleteMeal(ctx context.Context, coachID string, mealID string) error {
	if _, err := s.ownedMeal(ctx, coachID, mealID); err != nil {
		return err
	}
	return s.nutritionRepository.DeleteMeal(ctx, mealID)
}

func (s *nutritionService) AddMealFoodItem(ctx context.Context, coachID string, mealID string, req domain.AddMealFoodRequest) (domain.MealFoodResponse, error) {
	meal, err := s.ownedMeal(ctx, coachID, mealID)
	if err != nil {
		return domain.MealFoodResponse{}, err
	}

	if req.Quantity <= 0 {
		return domain.MealFoodResponse{}, domain.ErrInvalidQuantity
	}

	food, err := s.nutritionRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealFoodResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.MealFoodResponse{}, err
	}

	item := &entities.MealFoodItem{
		ID:         uuid.New(),
		MealID:     meal.ID,
		FoodItemID: food.ID,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
	}
	if err := s.nutritionRepository.AddMealFoodItem(ctx, item); err != nil {
		return domain.MealFoodResponse{}, err
	}

	return domain.MealFoodResponse{
		ID:       item.ID.String(),
		Quantity: item.Quantity,
		Unit:     item.Unit,
		FoodItem: foodItemResponse(food),
	}, nil
}

func (s *nutritionService) RemoveMealFoodItem(ctx context.Context, coachID string, itemID string) error {
	item, err := s.nutritionRepository.GetMealFoodItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealFoodNotFound
		}
		return err
	}
	if _, err := s.ownedMeal(ctx, coachID, item.MealID.String()); err != nil {
		return err
	}
	return s.nutritionRepository.DeleteMealFoodItem(ctx, itemID)
}

func (s *nutritionService) ownedPlan(ctx context.Context, coachID string, planID string) (*entities.NutritionPlan, error) {
	plan, err := s.nutritionRepository.GetPlanByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}
	if plan.CoachID.String() != coachID {
		return nil, domain.ErrUnauthorizedPlan
	}
	return plan, nil
}

func (s *nutritionService) ownedMeal(ctx context.Context, coachID string, mealID string) (*entities.Meal, error) {
	meal, err := s.nutritionRepository.GetMealByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}
	if _, err := s.ownedPlan(ctx, coachID, meal.NutritionPlanID.String()); err != nil {
		return nil, err
	}
	return meal, nil
}

func foodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:            item.ID.String(),
		FoodName:      item.FoodName,
		NutrientBasis: item.NutrientBasis,
		ServingSizeG:  item.ServingSizeG,
		CaloriesKcal:  item.CaloriesKcal,
		ProteinG:      item.ProteinG,
		CarbsG:        item.CarbsG,
		FatG:          item.FatG,
	}
}
