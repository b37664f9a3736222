package shopping

import (
	"context"
	"errors"

	"eng-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		GetPlanWithMeals(ctx context.Context, planID string) (*entities.NutritionPlan, error)
		GetLatestAssignment(ctx context.Context, athleteID string) (*entities.AssignedPlan, error)
		GetWorkoutsByTemplate(ctx context.Context, templateID string) ([]*entities.Workout, error)
	}

	// PreferenceStore holds small per-user key/value state, e.g. the last
	// saved day-type frequencies. Injected so services and tests can swap in
	// a fake without a database.
	PreferenceStore interface {
		Get(ctx context.Context, userID string, key string) (string, bool, error)
		Set(ctx context.Context, userID string, key string, value string) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}

	preferenceStore struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func NewPreferenceStore(db *gorm.DB) PreferenceStore {
	return &preferenceStore{db: db}
}

// GetPlanWithMeals loads the plan with meals, meal food items and their food
// items fully joined, ordered the way the plan presents them. Aggregation
// code downstream never sees a partially-shaped relation.
func (r *shoppingRepository) GetPlanWithMeals(ctx context.Context, planID string) (*entities.NutritionPlan, error) {
	var plan entities.NutritionPlan
	if err := r.db.WithContext(ctx).
		Preload("Meals", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_in_plan asc")
		}).
		Preload("Meals.FoodItems").
		Preload("Meals.FoodItems.FoodItem").
		Where("id = ?", planID).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *shoppingRepository) GetLatestAssignment(ctx context.Context, athleteID string) (*entities.AssignedPlan, error) {
	var assignment entities.AssignedPlan
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("assigned_at desc").
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *shoppingRepository) GetWorkoutsByTemplate(ctx context.Context, templateID string) ([]*entities.Workout, error) {
	var workouts []*entities.Workout
	if err := r.db.WithContext(ctx).
		Where("program_template_id = ?", templateID).
		Order("day_of_week asc, order_in_program asc").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *preferenceStore) Get(ctx context.Context, userID string, key string) (string, bool, error) {
	var pref entities.UserPreference
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return pref.Value, true, nil
}

func (s *preferenceStore) Set(ctx context.Context, userID string, key string, value string) error {
	var pref entities.UserPreference
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		userUUID, parseErr := uuid.Parse(userID)
		if parseErr != nil {
			return parseErr
		}
		pref = entities.UserPreference{
			ID:     uuid.New(),
			UserID: userUUID,
			Key:    key,
			Value:  value,
		}
		return s.db.WithContext(ctx).Create(&pref).Error
	}
	if err != nil {
		return err
	}
	pref.Value = value
	return s.db.WithContext(ctx).Save(&pref).Error
}
