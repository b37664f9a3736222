package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessSubmitCheckIn = "check-in submitted successfully"
	MessageSuccessGetCheckIns   = "check-ins retrieved successfully"
	MessageSuccessReviewCheckIn = "check-in reviewed successfully"
	MessageSuccessUploadMedia   = "check-in media uploaded successfully"

	MessageFailedSubmitCheckIn = "failed to submit check-in"
	MessageFailedGetCheckIns   = "failed to retrieve check-ins"
	MessageFailedReviewCheckIn = "failed to review check-in"
	MessageFailedUploadMedia   = "failed to upload check-in media"

	ErrCheckInNotFound     = errors.New("check-in not found")
	ErrUnauthorizedCheckIn = errors.New("unauthorized access to check-in")
)

type (
	SubmitCheckInRequest struct {
		Date         string   `json:"date" validate:"required"`
		Notes        string   `json:"notes" validate:"omitempty"`
		BodyWeightKG *float64 `json:"body_weight_kg" validate:"omitempty,gt=0"`
	}

	UploadCheckInMediaRequest struct {
		CheckInID string                `json:"check_in_id" form:"check_in_id" validate:"required,uuid"`
		Media     *multipart.FileHeader `json:"media" form:"media" validate:"required"`
	}

	ReviewCheckInRequest struct {
		Feedback string `json:"feedback" validate:"required"`
	}

	CheckInResponse struct {
		ID           string     `json:"id"`
		AthleteID    string     `json:"athlete_id"`
		Date         time.Time  `json:"date"`
		Notes        string     `json:"notes,omitempty"`
		BodyWeightKG *float64   `json:"body_weight_kg,omitempty"`
		PhotoURL     string     `json:"photo_url,omitempty"`
		VideoURL     string     `json:"video_url,omitempty"`
		Status       string     `json:"status"`
		Feedback     string     `json:"feedback,omitempty"`
		ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	}
)
