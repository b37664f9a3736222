package metrics

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
	MetricsService interface {
		LogMetric(ctx context.Context, userID string, req domain.LogMetricRequest) (domain.BodyMetricResponse, error)
		GetMetrics(ctx context.Context, userID string, from, to string) ([]domain.BodyMetricResponse, error)
		DeleteMetric(ctx context.Context, userID string, metricID string) error
		ComputeTDEE(ctx context.Context, userID string) (domain.TDEEResponse, error)
	}

	metricsService struct {
		metricsRepository MetricsRepository
		userRepository    user.UserRepository
	}
)

func NewMetricsService(metricsRepository MetricsRepository, userRepository user.UserRepository) MetricsService {
	return &metricsService{
		metricsRepository: metricsRepository,
		userRepository:    userRepository,
	}
}

func (s *metricsService) LogMetric(ctx context.Context, userID string, req domain.LogMetricRequest) (domain.BodyMetricResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BodyMetricResponse{}, domain.ErrParseUUID
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.BodyMetricResponse{}, domain.ErrInvalidDate
	}

	metric := &entities.BodyMetric{
		ID:         uuid.New(),
		UserID:     userUUID,
		Date:       date,
		WeightKG:   req.WeightKG,
		BodyFatPct: req.BodyFatPct,
		WaistCM:    req.WaistCM,
		Notes:      req.Notes,
	}
	if err := s.metricsRepository.CreateMetric(ctx, metric); err != nil {
		return domain.BodyMetricResponse{}, err
	}

	return metricResponse(metric), nil
}

func (s *metricsService) GetMetrics(ctx context.Context, userID string, from, to string) ([]domain.BodyMetricResponse, error) {
	now := time.Now()
	fromDate := now.AddDate(0, -3, 0)
	toDate := now

	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		fromDate = parsed
	}
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}
		toDate = parsed
	}

	metrics, err := s.metricsRepository.GetMetrics(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	response := make([]domain.BodyMetricResponse, 0, len(metrics))
	for _, metric := range metrics {
		response = append(response, metricResponse(metric))
	}
	return response, nil
}

func (s *metricsService) DeleteMetric(ctx context.Context, userID string, metricID string) error {
	metric, err := s.metricsRepository.GetMetricByID(ctx, metricID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMetricNotFound
		}
		return err
	}
	if metric.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	return s.metricsRepository.DeleteMetric(ctx, metricID)
}

func (s *metricsService) ComputeTDEE(ctx context.Context, userID string) (domain.TDEEResponse, error) {
	profile, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TDEEResponse{}, domain.ErrUserNotFound
		}
		return domain.TDEEResponse{}, err
	}

	bmr, tdee, ok := ComputeTDEE(profile, time.Now())
	if !ok {
		return domain.TDEEResponse{}, domain.ErrProfileIncomplete
	}
	return domain.TDEEResponse{BMR: bmr, TDEE: tdee}, nil
}

func metricResponse(metric *entities.BodyMetric) domain.BodyMetricResponse {
	return domain.BodyMetricResponse{
		ID:         metric.ID.String(),
		Date:       metric.Date,
		WeightKG:   metric.WeightKG,
		BodyFatPct: metric.BodyFatPct,
		WaistCM:    metric.WaistCM,
		Notes:      metric.Notes,
	}
}
