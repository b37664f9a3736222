package program

import (
	"context"

	"eng-backend/entities"

	"gorm.io/gorm"
)

type (
	ProgramRepository interface {
		CreateProgram(ctx context.Context, program *entities.ProgramTemplate) error
		GetProgramByID(ctx context.Context, id string) (*entities.ProgramTemplate, error)
		GetProgramsByCoach(ctx context.Context, coachID string) ([]*entities.ProgramTemplate, error)
		UpdateProgram(ctx context.Context, program *entities.ProgramTemplate) error
		DeleteProgram(ctx context.Context, id string) error

		AddWorkout(ctx context.Context, workout *entities.Workout) error
		GetWorkoutByID(ctx context.Context, id string) (*entities.Workout, error)
		GetWorkoutsByTemplate(ctx context.Context, templateID string) ([]*entities.Workout, error)
		UpdateWorkout(ctx context.Context, workout *entities.Workout) error
		DeleteWorkout(ctx context.Context, id string) error

		CreateAssignment(ctx context.Context, assignment *entities.AssignedPlan) error
		GetLatestAssignment(ctx context.Context, athleteID string) (*entities.AssignedPlan, error)
	}

	programRepository struct {
		db *gorm.DB
	}
)

func NewProgramRepository(db *gorm.DB) ProgramRepository {
	return &programRepository{db: db}
}

func (r *programRepository) CreateProgram(ctx context.Context, program *entities.ProgramTemplate) error {
	return r.db.WithContext(ctx).Create(program).Error
}

func (r *programRepository) GetProgramByID(ctx context.Context, id string) (*entities.ProgramTemplate, error) {
	var program entities.ProgramTemplate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&program).Error; err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *programRepository) GetProgramsByCoach(ctx context.Context, coachID string) ([]*entities.ProgramTemplate, error) {
	var programs []*entities.ProgramTemplate
	if err := r.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Order("created_at desc").
		Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *programRepository) UpdateProgram(ctx context.Context, program *entities.ProgramTemplate) error {
	return r.db.WithContext(ctx).Save(program).Error
}

func (r *programRepository) DeleteProgram(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ProgramTemplate{}).Error
}

func (r *programRepository) AddWorkout(ctx context.Context, workout *entities.Workout) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

func (r *programRepository) GetWorkoutByID(ctx context.Context, id string) (*entities.Workout, error) {
	var workout entities.Workout
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *programRepository) GetWorkoutsByTemplate(ctx context.Context, templateID string) ([]*entities.Workout, error) {
	var workouts []*entities.Workout
	if err := r.db.WithContext(ctx).
		Where("program_template_id = ?", templateID).
		Order("day_of_week asc, order_in_program asc").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *programRepository) UpdateWorkout(ctx context.Context, workout *entities.Workout) error {
	return r.db.WithContext(ctx).Save(workout).Error
}

func (r *programRepository) DeleteWorkout(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Workout{}).Error
}

func (r *programRepository) CreateAssignment(ctx context.Context, assignment *entities.AssignedPlan) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *programRepository) GetLatestAssignment(ctx context.Context, athleteID string) (*entities.AssignedPlan, error) {
	var assignment entities.AssignedPlan
	if err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("assigned_at desc").
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}
