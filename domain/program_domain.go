package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateProgram  = "program template created successfully"
	MessageSuccessUpdateProgram  = "program template updated successfully"
	MessageSuccessDeleteProgram  = "program template deleted successfully"
	MessageSuccessGetPrograms    = "program templates retrieved successfully"
	MessageSuccessAddWorkout     = "workout added successfully"
	MessageSuccessUpdateWorkout  = "workout updated successfully"
	MessageSuccessDeleteWorkout  = "workout deleted successfully"
	MessageSuccessGetWorkouts    = "workouts retrieved successfully"
	MessageSuccessAssignPlan     = "plan assigned successfully"
	MessageSuccessGetAssignment  = "assignment retrieved successfully"

	MessageFailedCreateProgram  = "failed to create program template"
	MessageFailedUpdateProgram  = "failed to update program template"
	MessageFailedDeleteProgram  = "failed to delete program template"
	MessageFailedGetPrograms    = "failed to retrieve program templates"
	MessageFailedAddWorkout     = "failed to add workout"
	MessageFailedUpdateWorkout  = "failed to update workout"
	MessageFailedDeleteWorkout  = "failed to delete workout"
	MessageFailedGetWorkouts    = "failed to retrieve workouts"
	MessageFailedAssignPlan     = "failed to assign plan"
	MessageFailedGetAssignment  = "failed to retrieve assignment"

	ErrProgramNotFound        = errors.New("program template not found")
	ErrWorkoutNotFound        = errors.New("workout not found")
	ErrAssignmentNotFound     = errors.New("no assignment found")
	ErrNothingToAssign        = errors.New("assignment needs a program template or a nutrition plan")
	ErrUnauthorizedProgram    = errors.New("unauthorized access to program template")
	ErrAthleteNotLinked       = errors.New("athlete is not linked to this coach")
)

type (
	CreateProgramRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
		WeeksCount  int    `json:"weeks_count" validate:"omitempty,min=1"`
	}

	UpdateProgramRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		WeeksCount  int    `json:"weeks_count" validate:"omitempty,min=1"`
	}

	ProgramResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		WeeksCount  int       `json:"weeks_count"`
		CreatedAt   time.Time `json:"created_at"`
	}

	AddWorkoutRequest struct {
		Name           string `json:"name" validate:"required"`
		DayOfWeek      int    `json:"day_of_week" validate:"required,min=1,max=7"`
		OrderInProgram int    `json:"order_in_program" validate:"omitempty,min=0"`
		Notes          string `json:"notes" validate:"omitempty"`
	}

	UpdateWorkoutRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		DayOfWeek      int    `json:"day_of_week" validate:"omitempty,min=1,max=7"`
		OrderInProgram int    `json:"order_in_program" validate:"omitempty,min=0"`
		Notes          string `json:"notes" validate:"omitempty"`
	}

	WorkoutResponse struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		DayOfWeek      int    `json:"day_of_week"`
		OrderInProgram int    `json:"order_in_program"`
		Notes          string `json:"notes,omitempty"`
	}

	AssignPlanRequest struct {
		AthleteID         string `json:"athlete_id" validate:"required,uuid"`
		ProgramTemplateID string `json:"program_template_id" validate:"omitempty,uuid"`
		NutritionPlanID   string `json:"nutrition_plan_id" validate:"omitempty,uuid"`
		StartDate         string `json:"start_date" validate:"required"`
	}

	AssignmentResponse struct {
		ID                string    `json:"id"`
		AthleteID         string    `json:"athlete_id"`
		ProgramTemplateID string    `json:"program_template_id,omitempty"`
		NutritionPlanID   string    `json:"nutrition_plan_id,omitempty"`
		StartDate         time.Time `json:"start_date"`
		AssignedAt        time.Time `json:"assigned_at"`
	}
)
