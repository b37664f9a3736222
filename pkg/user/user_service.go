package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"eng-backend/domain"
	"eng-backend/entities"
	"eng-backend/internal/utils"
	"eng-backend/internal/utils/mailing"
	"eng-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.ProfileResponse, error)
		UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error
		InviteAthlete(ctx context.Context, coachID string, req domain.InviteAthleteRequest) (domain.ProfileResponse, error)
		AcceptInvite(ctx context.Context, req domain.AcceptInviteRequest) (domain.ProfileResponse, error)
		GetAthletes(ctx context.Context, coachID string) ([]domain.ProfileResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	exists, err := s.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  string(hashed),
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	return domain.LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}
	return profileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Sex != "" {
		user.Sex = req.Sex
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return domain.ErrInvalidDate
		}
		user.DateOfBirth = &dob
	}
	if req.HeightCM != nil {
		user.HeightCM = req.HeightCM
	}
	if req.WeightKG != nil {
		user.WeightKG = req.WeightKG
	}
	if req.ActivityLevel != "" {
		user.ActivityLevel = req.ActivityLevel
	}

	return s.userRepository.UpdateUser(ctx, user)
}

// InviteAthlete creates a pending athlete profile linked to the coach and
// sends the invitation email. The mail failure is log-only: the athlete row
// exists and the coach can resend.
func (s *userService) InviteAthlete(ctx context.Context, coachID string, req domain.InviteAthleteRequest) (domain.ProfileResponse, error) {
	coach, err := s.userRepository.GetUserByID(ctx, coachID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}
	if coach.Role != domain.RoleCoach {
		return domain.ProfileResponse{}, domain.ErrNotACoach
	}

	exists, err := s.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	if exists {
		return domain.ProfileResponse{}, domain.ErrEmailAlreadyExists
	}

	coachUUID := coach.ID
	athlete := &entities.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Role:         domain.RoleAthlete,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CoachID:      &coachUUID,
		InviteStatus: "Pending",
	}
	if err := s.userRepository.CreateUser(ctx, athlete); err != nil {
		return domain.ProfileResponse{}, err
	}

	inviteToken, err := s.jwtService.GenerateTokenInvite(
		map[string]any{"email": athlete.Email},
		time.Hour*72,
	)
	if err != nil {
		log.Printf("failed to sign invitation token for %s: %v", athlete.Email, err)
	}

	subject := fmt.Sprintf("%s %s invited you to ENG App", coach.FirstName, coach.LastName)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>%s %s has invited you to join their coaching roster.</p>"+
			"<p><a href=\"%s/invite?token=%s\">Accept the invitation</a> to set up your account.</p>",
		athlete.FirstName, coach.FirstName, coach.LastName,
		utils.GetConfig("APP_URL"), inviteToken,
	)
	if err := mailing.SendMail(athlete.Email, subject, body); err != nil {
		log.Printf("failed to send invitation mail to %s: %v", athlete.Email, err)
	}

	return profileResponse(athlete), nil
}

func (s *userService) AcceptInvite(ctx context.Context, req domain.AcceptInviteRequest) (domain.ProfileResponse, error) {
	claims, err := s.jwtService.ValidateTokenInvite(req.Token)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return domain.ProfileResponse{}, domain.ErrTokenInvalid
	}

	athlete, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrUserNotFound
		}
		return domain.ProfileResponse{}, err
	}
	if athlete.InviteStatus != "Pending" {
		return domain.ProfileResponse{}, domain.ErrInviteNotPending
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.ProfileResponse{}, err
	}
	athlete.Password = string(hashed)
	athlete.InviteStatus = "Accepted"

	if err := s.userRepository.UpdateUser(ctx, athlete); err != nil {
		return domain.ProfileResponse{}, err
	}
	return profileResponse(athlete), nil
}

func (s *userService) GetAthletes(ctx context.Context, coachID string) ([]domain.ProfileResponse, error) {
	athletes, err := s.userRepository.GetAthletesByCoach(ctx, coachID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.ProfileResponse, 0, len(athletes))
	for _, athlete := range athletes {
		response = append(response, profileResponse(athlete))
	}
	return response, nil
}

func profileResponse(user *entities.User) domain.ProfileResponse {
	response := domain.ProfileResponse{
		ID:            user.ID.String(),
		Email:         user.Email,
		Role:          user.Role,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Sex:           user.Sex,
		DateOfBirth:   user.DateOfBirth,
		HeightCM:      user.HeightCM,
		WeightKG:      user.WeightKG,
		ActivityLevel: user.ActivityLevel,
		InviteStatus:  user.InviteStatus,
	}
	if user.CoachID != nil {
		response.CoachID = user.CoachID.String()
	}
	return response
}
