package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetProfile    = "profile retrieved successfully"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessInviteAthlete = "athlete invited successfully"
	MessageSuccessAcceptInvite  = "invitation accepted successfully"
	MessageSuccessGetAthletes   = "athletes retrieved successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetProfile    = "failed to retrieve profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedInviteAthlete = "failed to invite athlete"
	MessageFailedAcceptInvite  = "failed to accept invitation"
	MessageFailedGetAthletes   = "failed to retrieve athletes"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNotACoach          = errors.New("user is not a coach")
	ErrInviteNotPending   = errors.New("invitation is not pending")
)

type (
	RegisterRequest struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		Role      string `json:"role" validate:"required,oneof=coach athlete"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"required"`
	}

	RegisterResponse struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		FirstName     string   `json:"first_name" validate:"omitempty"`
		LastName      string   `json:"last_name" validate:"omitempty"`
		Sex           string   `json:"sex" validate:"omitempty,oneof=male female"`
		DateOfBirth   string   `json:"date_of_birth" validate:"omitempty"`
		HeightCM      *float64 `json:"height_cm" validate:"omitempty,gt=0"`
		WeightKG      *float64 `json:"weight_kg" validate:"omitempty,gt=0"`
		ActivityLevel string   `json:"activity_level" validate:"omitempty,oneof=sedentary light moderate active very_active"`
	}

	InviteAthleteRequest struct {
		Email     string `json:"email" validate:"required,email"`
		FirstName string `json:"first_name" validate:"required"`
		LastName  string `json:"last_name" validate:"omitempty"`
	}

	AcceptInviteRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	ProfileResponse struct {
		ID            string     `json:"id"`
		Email         string     `json:"email"`
		Role          string     `json:"role"`
		FirstName     string     `json:"first_name"`
		LastName      string     `json:"last_name"`
		Sex           string     `json:"sex,omitempty"`
		DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
		HeightCM      *float64   `json:"height_cm,omitempty"`
		WeightKG      *float64   `json:"weight_kg,omitempty"`
		ActivityLevel string     `json:"activity_level,omitempty"`
		CoachID       string     `json:"coach_id,omitempty"`
		InviteStatus  string     `json:"invite_status,omitempty"`
	}
)
