package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessLogMetric   = "body metric logged successfully"
	MessageSuccessGetMetrics  = "body metrics retrieved successfully"
	MessageSuccessDeleteMetric = "body metric deleted successfully"
	MessageSuccessComputeTDEE = "energy expenditure computed successfully"

	MessageFailedLogMetric   = "failed to log body metric"
	MessageFailedGetMetrics  = "failed to retrieve body metrics"
	MessageFailedDeleteMetric = "failed to delete body metric"
	MessageFailedComputeTDEE = "failed to compute energy expenditure"

	ErrMetricNotFound    = errors.New("body metric not found")
	ErrProfileIncomplete = errors.New("profile is missing fields required for the calculation")
)

type (
	LogMetricRequest struct {
		Date       string   `json:"date" validate:"required"`
		WeightKG   *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
		BodyFatPct *float64 `json:"body_fat_pct" validate:"omitempty,gte=0,lte=100"`
		WaistCM    *float64 `json:"waist_cm" validate:"omitempty,gt=0"`
		Notes      string   `json:"notes" validate:"omitempty"`
	}

	BodyMetricResponse struct {
		ID         string    `json:"id"`
		Date       time.Time `json:"date"`
		WeightKG   *float64  `json:"weight_kg,omitempty"`
		BodyFatPct *float64  `json:"body_fat_pct,omitempty"`
		WaistCM    *float64  `json:"waist_cm,omitempty"`
		Notes      string    `json:"notes,omitempty"`
	}

	TDEEResponse struct {
		BMR  int `json:"bmr"`
		TDEE int `json:"tdee"`
	}
)
