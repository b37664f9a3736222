package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSetStepGoal   = "step goal set successfully"
	MessageSuccessLogSteps      = "steps logged successfully"
	MessageSuccessGetStepStats  = "step statistics retrieved successfully"
	MessageSuccessSetWaterGoal  = "water goal set successfully"
	MessageSuccessLogWater      = "water intake logged successfully"
	MessageSuccessGetWaterStats = "water statistics retrieved successfully"

	MessageFailedSetStepGoal   = "failed to set step goal"
	MessageFailedLogSteps      = "failed to log steps"
	MessageFailedGetStepStats  = "failed to retrieve step statistics"
	MessageFailedSetWaterGoal  = "failed to set water goal"
	MessageFailedLogWater      = "failed to log water intake"
	MessageFailedGetWaterStats = "failed to retrieve water statistics"

	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("amount must be positive")
)

type (
	SetStepGoalRequest struct {
		DailySteps int `json:"daily_steps" validate:"required,min=1"`
	}

	LogStepsRequest struct {
		Date  string `json:"date" validate:"required"`
		Steps int    `json:"steps" validate:"required,min=1"`
	}

	StepEntryResponse struct {
		Date  time.Time `json:"date"`
		Steps int       `json:"steps"`
	}

	StepStatsResponse struct {
		DailyGoal  int                 `json:"daily_goal"`
		TotalSteps int                 `json:"total_steps"`
		Entries    []StepEntryResponse `json:"entries"`
	}

	SetWaterGoalRequest struct {
		TargetML int `json:"target_ml" validate:"required,min=1"`
	}

	LogWaterRequest struct {
		Date     string `json:"date" validate:"required"`
		AmountML int    `json:"amount_ml" validate:"required,min=1"`
	}

	WaterEntryResponse struct {
		Date     time.Time `json:"date"`
		AmountML int       `json:"amount_ml"`
	}

	WaterStatsResponse struct {
		TargetML int                  `json:"target_ml"`
		TotalML  int                  `json:"total_ml"`
		Entries  []WaterEntryResponse `json:"entries"`
	}
)
