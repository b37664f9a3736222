package metrics

import (
	"context"
	"time"

	"eng-backend/entities"

	"gorm.io/gorm"
)

type (
	MetricsRepository interface {
		CreateMetric(ctx context.Context, metric *entities.BodyMetric) error
		GetMetricByID(ctx context.Context, id string) (*entities.BodyMetric, error)
		GetMetrics(ctx context.Context, userID string, from, to time.Time) ([]*entities.BodyMetric, error)
		DeleteMetric(ctx context.Context, id string) error
	}

	metricsRepository struct {
		db *gorm.DB
	}
)

func NewMetricsRepository(db *gorm.DB) MetricsRepository {
	return &metricsRepository{db: db}
}

func (r *metricsRepository) CreateMetric(ctx context.Context, metric *entities.BodyMetric) error {
	return r.db.WithContext(ctx).Create(metric).Error
}

func (r *metricsRepository) GetMetricByID(ctx context.Context, id string) (*entities.BodyMetric, error) {
	var metric entities.BodyMetric
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&metric).Error; err != nil {
		return nil, err
	}
	return &metric, nil
}

func (r *metricsRepository) GetMetrics(ctx context.Context, userID string, from, to time.Time) ([]*entities.BodyMetric, error) {
	var metrics []*entities.BodyMetric
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date asc").
		Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (r *metricsRepository) DeleteMetric(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.BodyMetric{}).Error
}
