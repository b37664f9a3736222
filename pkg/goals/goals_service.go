package goals

import (
	"context"
	"errors"
	"time"

	"eng-backend/domain"
	"eng-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GoalsService interface {
		SetStepGoal(ctx context.Context, userID string, req domain.SetStepGoalRequest) error
		LogSteps(ctx context.Context, userID string, req domain.LogStepsRequest) error
		GetStepStats(ctx context.Context, userID string, from, to string) (domain.StepStatsResponse, error)

		SetWaterGoal(ctx context.Context, userID string, req domain.SetWaterGoalRequest) error
		LogWater(ctx context.Context, userID string, req domain.LogWaterRequest) error
		GetWaterStats(ctx context.Context, userID string, from, to string) (domain.WaterStatsResponse, error)
	}

	goalsService struct {
		goalsRepository GoalsRepository
	}
)

func NewGoalsService(goalsRepository GoalsRepository) GoalsService {
	return &goalsService{goalsRepository: goalsRepository}
}

func (s *goalsService) SetStepGoal(ctx context.Context, userID string, req domain.SetStepGoalRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.goalsRepository.UpsertStepGoal(ctx, &entities.StepGoal{
		ID:         uuid.New(),
		UserID:     userUUID,
		DailySteps: req.DailySteps,
	})
}

func (s *goalsService) LogSteps(ctx context.Context, userID string, req domain.LogStepsRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.ErrInvalidDate
	}
	return s.goalsRepository.UpsertStepEntry(ctx, &entities.StepEntry{
		ID:     uuid.New(),
		UserID: userUUID,
		Date:   date,
		Steps:  req.Steps,
	})
}

func (s *goalsService) GetStepStats(ctx context.Context, userID string, from, to string) (domain.StepStatsResponse, error) {
	fromDate, toDate, err := parseRange(from, to)
	if err != nil {
		return domain.StepStatsResponse{}, err
	}

	stats := domain.StepStatsResponse{Entries: []domain.StepEntryResponse{}}

	goal, err := s.goalsRepository.GetStepGoal(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.StepStatsResponse{}, err
	}
	if goal != nil {
		stats.DailyGoal = goal.DailySteps
	}

	entries, err := s.goalsRepository.GetStepEntries(ctx, userID, fromDate, toDate)
	if err != nil {
		return domain.StepStatsResponse{}, err
	}
	for _, entry := range entries {
		stats.TotalSteps += entry.Steps
		stats.Entries = append(stats.Entries, domain.StepEntryResponse{Date: entry.Date, Steps: entry.Steps})
	}
	return stats, nil
}

func (s *goalsService) SetWaterGoal(ctx context.Context, userID string, req domain.SetWaterGoalRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.goalsRepository.UpsertWaterGoal(ctx, &entities.WaterGoal{
		ID:       uuid.New(),
		UserID:   userUUID,
		TargetML: req.TargetML,
	})
}

func (s *goalsService) LogWater(ctx context.Context, userID string, req domain.LogWaterRequest) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.ErrInvalidDate
	}
	return s.goalsRepository.CreateWaterEntry(ctx, &entities.WaterEntry{
		ID:       uuid.New(),
		UserID:   userUUID,
		Date:     date,
		AmountML: req.AmountML,
	})
}

func (s *goalsService) GetWaterStats(ctx context.Context, userID string, from, to string) (domain.WaterStatsResponse, error) {
	fromDate, toDate, err := parseRange(from, to)
	if err != nil {
		return domain.WaterStatsResponse{}, err
	}

	stats := domain.WaterStatsResponse{Entries: []domain.WaterEntryResponse{}}

	goal, err := s.goalsRepository.GetWaterGoal(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.WaterStatsResponse{}, err
	}
	if goal != nil {
		stats.TargetML = goal.TargetML
	}

	entries, err := s.goalsRepository.GetWaterEntries(ctx, userID, fromDate, toDate)
	if err != nil {
		return domain.WaterStatsResponse{}, err
	}
	for _, entry := range entries {
		stats.TotalML += entry.AmountML
		stats.Entries = append(stats.Entries, domain.WaterEntryResponse{Date: entry.Date, AmountML: entry.AmountML})
	}
	return stats, nil
}

// parseRange parses the from/to query dates, defaulting to the last 7 days.
func parseRange(from, to string) (time.Time, time.Time, error) {
	now := time.Now()
	fromDate := now.AddDate(0, 0, -7)
	toDate := now

	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidDate
		}
		fromDate = parsed
	}
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidDate
		}
		toDate = parsed
	}
	return fromDate, toDate, nil
}
