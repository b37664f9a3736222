package checkin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eng-backend/domain"
	"eng-backend/entities"
	"eng-backend/internal/utils/storage"
	"eng-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CheckInService interface {
		SubmitCheckIn(ctx context.Context, athleteID string, req domain.SubmitCheckInRequest) (domain.CheckInResponse, error)
		UploadMedia(ctx context.Context, athleteID string, req domain.UploadCheckInMediaRequest) (domain.CheckInResponse, error)
		GetMyCheckIns(ctx context.Context, athleteID string, page, limit int) ([]domain.CheckInResponse, int64, error)
		GetAthleteCheckIns(ctx context.Context, coachID string, athleteID string, page, limit int) ([]domain.CheckInResponse, int64, error)
		ReviewCheckIn(ctx context.Context, coachID string, checkInID string, req domain.ReviewCheckInRequest) error
	}

	checkInService struct {
		checkInRepository CheckInRepository
		userRepository    user.UserRepository
		s3                storage.AwsS3
	}
)

func NewCheckInService(checkInRepository CheckInRepository, userRepository user.UserRepository, s3 storage.AwsS3) CheckInService {
	return &checkInService{
		checkInRepository: checkInRepository,
		userRepository:    userRepository,
		s3:                s3,
	}
}

func (s *checkInService) SubmitCheckIn(ctx context.Context, athleteID string, req domain.SubmitCheckInRequest) (domain.CheckInResponse, error) {
	athleteUUID, err := uuid.Parse(athleteID)
	if err != nil {
		return domain.CheckInResponse{}, domain.ErrParseUUID
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.CheckInResponse{}, domain.ErrInvalidDate
	}

	checkIn := &entities.CheckIn{
		ID:           uuid.New(),
		AthleteID:    athleteUUID,
		Date:         date,
		Notes:        req.Notes,
		BodyWeightKG: req.BodyWeightKG,
		Status:       "Submitted",
	}
	if err := s.checkInRepository.CreateCheckIn(ctx, checkIn); err != nil {
		return domain.CheckInResponse{}, err
	}

	return checkInResponse(checkIn), nil
}

// UploadMedia attaches a progress photo or form video to an existing
// check-in. Content type decides which slot the upload fills.
func (s *checkInService) UploadMedia(ctx context.Context, athleteID string, req domain.UploadCheckInMediaRequest) (domain.CheckInResponse, error) {
	checkIn, err := s.checkInRepository.GetCheckInByID(ctx, req.CheckInID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckInResponse{}, domain.ErrCheckInNotFound
		}
		return domain.CheckInResponse{}, err
	}
	if checkIn.AthleteID.String() != athleteID {
		return domain.CheckInResponse{}, domain.ErrUnauthorizedCheckIn
	}

	isVideo := strings.HasPrefix(req.Media.Header.Get("Content-Type"), "video/")

	fileName := fmt.Sprintf("check-in-%s-photo", checkIn.ID.String())
	allowed := storage.AllowImage
	if isVideo {
		fileName = fmt.Sprintf("check-in-%s-video", checkIn.ID.String())
		allowed = storage.AllowVideo
	}

	existingURL := checkIn.PhotoURL
	if isVideo {
		existingURL = checkIn.VideoURL
	}

	var objectKey string
	var uploadErr error
	if existingURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(existingURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Media, allowed...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Media, "check-ins", allowed...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Media, "check-ins", allowed...)
	}
	if uploadErr != nil {
		return domain.CheckInResponse{}, uploadErr
	}

	if isVideo {
		checkIn.VideoURL = s.s3.GetPublicLinkKey(objectKey)
	} else {
		checkIn.PhotoURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.checkInRepository.UpdateCheckIn(ctx, checkIn); err != nil {
		return domain.CheckInResponse{}, err
	}
	return checkInResponse(checkIn), nil
}

func (s *checkInService) GetMyCheckIns(ctx context.Context, athleteID string, page, limit int) ([]domain.CheckInResponse, int64, error) {
	return s.listCheckIns(ctx, athleteID, page, limit)
}

func (s *checkInService) GetAthleteCheckIns(ctx context.Context, coachID string, athleteID string, page, limit int) ([]domain.CheckInResponse, int64, error) {
	athlete, err := s.userRepository.GetUserByID(ctx, athleteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, domain.ErrUserNotFound
		}
		return nil, 0, err
	}
	if athlete.CoachID == nil || athlete.CoachID.String() != coachID {
		return nil, 0, domain.ErrAthleteNotLinked
	}
	return s.listCheckIns(ctx, athleteID, page, limit)
}

func (s *checkInService) ReviewCheckIn(ctx context.Context, coachID string, checkInID string, req domain.ReviewCheckInRequest) error {
	checkIn, err := s.checkInRepository.GetCheckInByID(ctx, checkInID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCheckInNotFound
		}
		return err
	}

	athlete, err := s.userRepository.GetUserByID(ctx, checkIn.AthleteID.String())
	if err != nil {
		return err
	}
	if athlete.CoachID == nil || athlete.CoachID.String() != coachID {
		return domain.ErrUnauthorizedCheckIn
	}

	coachUUID, err := uuid.Parse(coachID)
	if err != nil {
		return domain.ErrParseUUID
	}
	now := time.Now()
	checkIn.Status = "Reviewed"
	checkIn.Feedback = req.Feedback
	checkIn.ReviewedBy = &coachUUID
	checkIn.ReviewedAt = &now

	return s.checkInRepository.UpdateCheckIn(ctx, checkIn)
}

func (s *checkInService) listCheckIns(ctx context.Context, athleteID string, page, limit int) ([]domain.CheckInResponse, int64, error) {
	checkIns, count, err := s.checkInRepository.GetCheckInsByAthlete(ctx, athleteID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.CheckInResponse, 0, len(checkIns))
	for _, checkIn := range checkIns {
		response = append(response, checkInResponse(checkIn))
	}
	return response, count, nil
}

func checkInResponse(checkIn *entities.CheckIn) domain.CheckInResponse {
	return domain.CheckInResponse{
		ID:           checkIn.ID.String(),
		AthleteID:    checkIn.AthleteID.String(),
		Date:         checkIn.Date,
		Notes:        checkIn.Notes,
		BodyWeightKG: checkIn.BodyWeightKG,
		PhotoURL:     checkIn.PhotoURL,
		VideoURL:     checkIn.VideoURL,
		Status:       checkIn.Status,
		Feedback:     checkIn.Feedback,
		ReviewedAt:   checkIn.ReviewedAt,
	}
}
