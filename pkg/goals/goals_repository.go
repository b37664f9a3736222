package goals

import (
	"context"
	"errors"
	"time"

	"eng-backend/entities"

	"gorm.io/gorm"
)

type (
	GoalsRepository interface {
		UpsertStepGoal(ctx context.Context, goal *entities.StepGoal) error
		GetStepGoal(ctx context.Context, userID string) (*entities.StepGoal, error)
		UpsertStepEntry(ctx context.Context, entry *entities.StepEntry) error
		GetStepEntries(ctx context.Context, userID string, from, to time.Time) ([]*entities.StepEntry, error)

		UpsertWaterGoal(ctx context.Context, goal *entities.WaterGoal) error
		GetWaterGoal(ctx context.Context, userID string) (*entities.WaterGoal, error)
		CreateWaterEntry(ctx context.Context, entry *entities.WaterEntry) error
		GetWaterEntries(ctx context.Context, userID string, from, to time.Time) ([]*entities.WaterEntry, error)
	}

	goalsRepository struct {
		db *gorm.DB
	}
)

func NewGoalsRepository(db *gorm.DB) GoalsRepository {
	return &goalsRepository{db: db}
}

func (r *goalsRepository) UpsertStepGoal(ctx context.Context, goal *entities.StepGoal) error {
	var existing entities.StepGoal
	err := r.db.WithContext(ctx).Where("user_id = ?", goal.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(goal).Error
	}
	if err != nil {
		return err
	}
	existing.DailySteps = goal.DailySteps
	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *goalsRepository) GetStepGoal(ctx context.Context, userID string) (*entities.StepGoal, error) {
	var goal entities.StepGoal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpsertStepEntry replaces the step count for the day: step trackers report
// a running daily total, not deltas.
func (r *goalsRepository) UpsertStepEntry(ctx context.Context, entry *entities.StepEntry) error {
	var existing entities.StepEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", entry.UserID, entry.Date).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(entry).Error
	}
	if err != nil {
		return err
	}
	existing.Steps = entry.Steps
	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *goalsRepository) GetStepEntries(ctx context.Context, userID string, from, to time.Time) ([]*entities.StepEntry, error) {
	var entries []*entities.StepEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *goalsRepository) UpsertWaterGoal(ctx context.Context, goal *entities.WaterGoal) error {
	var existing entities.WaterGoal
	err := r.db.WithContext(ctx).Where("user_id = ?", goal.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(goal).Error
	}
	if err != nil {
		return err
	}
	existing.TargetML = goal.TargetML
	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *goalsRepository) GetWaterGoal(ctx context.Context, userID string) (*entities.WaterGoal, error) {
	var goal entities.WaterGoal
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// CreateWaterEntry always appends: water is logged glass by glass and summed.
func (r *goalsRepository) CreateWaterEntry(ctx context.Context, entry *entities.WaterEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *goalsRepository) GetWaterEntries(ctx context.Context, userID string, from, to time.Time) ([]*entities.WaterEntry, error) {
	var entries []*entities.WaterEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
