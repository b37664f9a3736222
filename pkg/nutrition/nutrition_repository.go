package nutrition

import (
	"context"

	"eng-backend/entities"

	"gorm.io/gorm"
)

type (
	NutritionRepository interface {
		CreateFoodItem(ctx context.Context, item *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error)
		GetFoodItems(ctx context.Context, search string, page, limit int) ([]*entities.FoodItem, int64, error)
		UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id string) error

		CreatePlan(ctx context.Context, plan *entities.NutritionPlan) error
		GetPlanByID(ctx context.Context, id string) (*entities.NutritionPlan, error)
		GetPlanWithMeals(ctx context.Context, id string) (*entities.NutritionPlan, error)
		GetPlansByCoach(ctx context.Context, coachID string) ([]*entities.NutritionPlan, error)
		UpdatePlan(ctx context.Context, plan *entities.NutritionPlan) error
		DeletePlan(ctx context.Context, id string) error

		AddMeal(ctx context.Context, meal *entities.Meal) error
		GetMealByID(ctx context.Context, id string) (*entities.Meal, error)
		UpdateMeal(ctx context.Context, meal *entities.Meal) error
		DeleteMeal(ctx context.Context, id string) error

		AddMealFoodItem(ctx context.Context, item *entities.MealFoodItem) error
		GetMealFoodItemByID(ctx context.Context, id string) (*entities.MealFoodItem, error)
		DeleteMealFoodItem(ctx context.Context, id string) error
	}

	nutritionRepository struct {
		db *gorm.DB
	}
)

func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) CreateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *nutritionRepository) GetFoodItemByID(ctx context.Context, id string) (*entities.FoodItem, error) {
	var item entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *nutritionRepository) GetFoodItems(ctx context.Context, search string, page, limit int) ([]*entities.FoodItem, int64, error) {
	var items []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.FoodItem{})
	if search != "" {
		query = query.Where("food_name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("food_name asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *nutritionRepository) UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *nutritionRepository) DeleteFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *nutritionRepository) CreatePlan(ctx context.Context, plan *entities.NutritionPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *nutritionRepository) GetPlanByID(ctx context.Context, id string) (*entities.NutritionPlan, error) {
	var plan entities.NutritionPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetPlanWithMeals returns the plan fully joined down to food items so
// callers never deal with partially-loaded relations.
func (r *nutritionRepository) GetPlanWithMeals(ctx context.Context, id string) (*entities.NutritionPlan, error) {
	var plan entities.NutritionPlan
	if err := r.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_in_plan asc")
		}).
		Preload("Meals.FoodItems").
		Preload("Meals.FoodItems.FoodItem").
		Where("id = ?", id).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *nutritionRepository) GetPlansByCoach(ctx context.Context, coachID string) ([]*entities.NutritionPlan, error) {
	var plans []*entities.NutritionPlan
	if err := r.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Order("created_at desc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *nutritionRepository) UpdatePlan(ctx context.Context, plan *entities.NutritionPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *nutritionRepository) DeletePlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.NutritionPlan{}).Error
}

func (r *nutritionRepository) AddMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *nutritionRepository) GetMealByID(ctx context.Context, id string) (*entities.Meal, error) {
	var meal entities.Meal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *nutritionRepository) UpdateMeal(ctx context.Context, meal *entities.Meal) error {
	return r.db.WithContext(ctx).Save(meal).Error
}

func (r *nutritionRepository) DeleteMeal(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Meal{}).Error
}

func (r *nutritionRepository) AddMealFoodItem(ctx context.Context, item *entities.MealFoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *nutritionRepository) GetMealFoodItemByID(ctx context.Context, id string) (*entities.MealFoodItem, error) {
	var item entities.MealFoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *nutritionRepository) DeleteMealFoodItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealFoodItem{}).Error
}
