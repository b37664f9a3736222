package program

import (
	"context"
	"errors"
	"time"

	"eng-backend/domain"
	"eng-backend/entities"
	"eng-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProgramService interface {
		CreateProgram(ctx context.Context, coachID string, req domain.CreateProgramRequest) (domain.ProgramResponse, error)
		UpdateProgram(ctx context.Context, coachID string, programID string, req domain.UpdateProgramRequest) error
		DeleteProgram(ctx context.Context, coachID string, programID string) error
		GetPrograms(ctx context.Context, coachID string) ([]domain.ProgramResponse, error)

		AddWorkout(ctx context.Context, coachID string, programID string, req domain.AddWorkoutRequest) (domain.WorkoutResponse, error)
		UpdateWorkout(ctx context.Context, coachID string, workoutID string, req domain.UpdateWorkoutRequest) error
		DeleteWorkout(ctx context.Context, coachID string, workoutID string) error
		GetWorkouts(ctx context.Context, programID string) ([]domain.WorkoutResponse, error)

		AssignPlan(ctx context.Context, coachID string, req domain.AssignPlanRequest) (domain.AssignmentResponse, error)
		GetMyAssignment(ctx context.Context, athleteID string) (domain.AssignmentResponse, error)
	}

	programService struct {
		programRepository ProgramRepository
		userRepository    user.UserRepository
	}
)

func NewProgramService(programRepository ProgramRepository, userRepository user.UserRepository) ProgramService {
	return &programService{
		programRepository: programRepository,
		userRepository:    userRepository,
	}
}

func (s *programService) CreateProgram(ctx context.Context, coachID string, req domain.CreateProgramRequest) (domain.ProgramResponse, error) {
	coachUUID, err := uuid.Parse(coachID)
	if err != nil {
		return domain.ProgramResponse{}, domain.ErrParseUUID
	}

	program := &entities.ProgramTemplate{
		ID:          uuid.New(),
		CoachID:     coachUUID,
		Name:        req.Name,
		Description: req.Description,
		WeeksCount:  req.WeeksCount,
	}
	if err := s.programRepository.CreateProgram(ctx, program); err != nil {
		return domain.ProgramResponse{}, err
	}

	return programResponse(program), nil
}

func (s *programService) UpdateProgram(ctx context.Context, coachID string, programID string, req domain.UpdateProgramRequest) error {
	program, err := s.ownedProgram(ctx, coachID, programID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		program.Name = req.Name
	}
	if req.Description != "" {
		program.Description = req.Description
	}
	if req.WeeksCount > 0 {
		program.WeeksCount = req.WeeksCount
	}

	return s.programRepository.UpdateProgram(ctx, program)
}

func (s *programService) DeleteProgram(ctx context.Context, coachID string, programID string) error {
	if _, err := s.ownedProgram(ctx, coachID, programID); err != nil {
		return err
	}
	return s.programRepository.DeleteProgram(ctx, programID)
}

func (s *programService) GetPrograms(ctx context.Context, coachID string) ([]domain.ProgramResponse, error) {
	programs, err := s.programRepository.GetProgramsByCoach(ctx, coachID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProgramResponse, 0, len(programs))
	for _, program := range programs {
		response = append(response, programResponse(program))
	}
	return response, nil
}

func (s *programService) AddWorkout(ctx context.Context, coachID string, programID string, req domain.AddWorkoutRequest) (domain.WorkoutResponse, error) {
	program, err := s.ownedProgram(ctx, coachID, programID)
	if err != nil {
		return domain.WorkoutResponse{}, err
	}

	workout := &entities.Workout{
		ID:                uuid.New(),
		ProgramTemplateID: program.ID,
		Name:              req.Name,
		DayOfWeek:         req.DayOfWeek,
		OrderInProgram:    req.OrderInProgram,
		Notes:             req.Notes,
	}
	if err := s.programRepository.AddWorkout(ctx, workout); err != nil {
		return domain.WorkoutResponse{}, err
	}

	return workoutResponse(workout), nil
}

func (s *programService) UpdateWorkout(ctx context.Context, coachID string, workoutID string, req domain.UpdateWorkoutRequest) error {
	workout, err := s.programRepository.GetWorkoutByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrWorkoutNotFound
		}
		return err
	}
	if _, err := s.ownedProgram(ctx, coachID, workout.ProgramTemplateID.String()); err != nil {
		return err
	}

	if req.Name != "" {
		workout.Name = req.Name
	}
	if req.DayOfWeek > 0 {
		workout.DayOfWeek = req.DayOfWeek
	}
	if req.OrderInProgram > 0 {
		workout.OrderInProgram = req.OrderInProgram
	}
	if req.Notes != "" {
		workout.Notes = req.Notes
	}

	return s.programRepository.UpdateWorkout(ctx, workout)
}

func (s *programService) DeleteWorkout(ctx context.Context, coachID string, workoutID string) error {
	workout, err := s.programRepository.GetWorkoutByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrWorkoutNotFound
		}
		return err
	}
	if _, err := s.ownedProgram(ctx, coachID, workout.ProgramTemplateID.String()); err != nil {
		return err
	}
	return s.programRepository.DeleteWorkout(ctx, workoutID)
}

func (s *programService) GetWorkouts(ctx context.Context, programID string) ([]domain.WorkoutResponse, error) {
	workouts, err := s.programRepository.GetWorkoutsByTemplate(ctx, programID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.WorkoutResponse, 0, len(workouts))
	for _, workout := range workouts {
		response = append(response, workoutResponse(workout))
	}
	return response, nil
}

func (s *programService) AssignPlan(ctx context.Context, coachID string, req domain.AssignPlanRequest) (domain.AssignmentResponse, error) {
	if req.ProgramTemplateID == "" && req.NutritionPlanID == "" {
		return domain.AssignmentResponse{}, domain.ErrNothingToAssign
	}

	coachUUID, err := uuid.Parse(coachID)
	if err != nil {
		return domain.AssignmentResponse{}, domain.ErrParseUUID
	}

	athlete, err := s.userRepository.GetUserByID(ctx, req.AthleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AssignmentResponse{}, domain.ErrUserNotFound
		}
		return domain.AssignmentResponse{}, err
	}
	if athlete.CoachID == nil || *athlete.CoachID != coachUUID {
		return domain.AssignmentResponse{}, domain.ErrAthleteNotLinked
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return domain.AssignmentResponse{}, domain.ErrInvalidDate
	}

	assignment := &entities.AssignedPlan{
		ID:         uuid.New(),
		AthleteID:  athlete.ID,
		CoachID:    coachUUID,
		StartDate:  startDate,
		AssignedAt: time.Now(),
	}
	if req.ProgramTemplateID != "" {
		templateUUID, err := uuid.Parse(req.ProgramTemplateID)
		if err != nil {
			return domain.AssignmentResponse{}, domain.ErrParseUUID
		}
		if _, err := s.ownedProgram(ctx, coachID, req.ProgramTemplateID); err != nil {
			return domain.AssignmentResponse{}, err
		}
		assignment.ProgramTemplateID = &templateUUID
	}
	if req.NutritionPlanID != "" {
		planUUID, err := uuid.Parse(req.NutritionPlanID)
		if err != nil {
			return domain.AssignmentResponse{}, domain.ErrParseUUID
		}
		assignment.NutritionPlanID = &planUUID
	}

	if err := s.programRepository.CreateAssignment(ctx, assignment); err != nil {
		return domain.AssignmentResponse{}, err
	}

	return assignmentResponse(assignment), nil
}

func (s *programService) GetMyAssignment(ctx context.Context, athleteID string) (domain.AssignmentResponse, error) {
	assignment, err := s.programRepository.GetLatestAssignment(ctx, athleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AssignmentResponse{}, domain.ErrAssignmentNotFound
		}
		return domain.AssignmentResponse{}, err
	}
	return assignmentResponse(assignment), nil
}

func (s *programService) ownedProgram(ctx context.Context, coachID string, programID string) (*entities.ProgramTemplate, error) {
	program, err := s.programRepository.GetProgramByID(ctx, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProgramNotFound
		}
		return nil, err
	}
	if program.CoachID.String() != coachID {
		return nil, domain.ErrUnauthorizedProgram
	}
	return program, nil
}

func programResponse(program *entities.ProgramTemplate) domain.ProgramResponse {
	return domain.ProgramResponse{
		ID:          program.ID.String(),
		Name:        program.Name,
		Description: program.Description,
		WeeksCount:  program.WeeksCount,
		CreatedAt:   program.CreatedAt,
	}
}

func workoutResponse(workout *entities.Workout) domain.WorkoutResponse {
	return domain.WorkoutResponse{
		ID:             workout.ID.String(),
		Name:           workout.Name,
		DayOfWeek:      workout.DayOfWeek,
		OrderInProgram: workout.OrderInProgram,
		Notes:          workout.Notes,
	}
}

func assignmentResponse(assignment *entities.AssignedPlan) domain.AssignmentResponse {
	response := domain.AssignmentResponse{
		ID:         assignment.ID.String(),
		AthleteID:  assignment.AthleteID.String(),
		StartDate:  assignment.StartDate,
		AssignedAt: assignment.AssignedAt,
	}
	if assignment.ProgramTemplateID != nil {
		response.ProgramTemplateID = assignment.ProgramTemplateID.String()
	}
	if assignment.NutritionPlanID != nil {
		response.NutritionPlanID = assignment.NutritionPlanID.String()
	}
	return response
}
