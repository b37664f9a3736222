package checkin

import (
	"context"

	"eng-backend/entities"

	"gorm.io/gorm"
)

type (
	CheckInRepository interface {
		CreateCheckIn(ctx context.Context, checkIn *entities.CheckIn) error
		GetCheckInByID(ctx context.Context, id string) (*entities.CheckIn, error)
		GetCheckInsByAthlete(ctx context.Context, athleteID string, page, limit int) ([]*entities.CheckIn, int64, error)
		UpdateCheckIn(ctx context.Context, checkIn *entities.CheckIn) error
	}

	checkInRepository struct {
		db *gorm.DB
	}
)

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) CreateCheckIn(ctx context.Context, checkIn *entities.CheckIn) error {
	return r.db.WithContext(ctx).Create(checkIn).Error
}

func (r *checkInRepository) GetCheckInByID(ctx context.Context, id string) (*entities.CheckIn, error) {
	var checkIn entities.CheckIn
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&checkIn).Error; err != nil {
		return nil, err
	}
	return &checkIn, nil
}

func (r *checkInRepository) GetCheckInsByAthlete(ctx context.Context, athleteID string, page, limit int) ([]*entities.CheckIn, int64, error) {
	var checkIns []*entities.CheckIn
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.CheckIn{}).Where("athlete_id = ?", athleteID)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Offset(offset).Limit(limit).Order("date desc").Find(&checkIns).Error; err != nil {
		return nil, 0, err
	}

	return checkIns, count, nil
}

func (r *checkInRepository) UpdateCheckIn(ctx context.Context, checkIn *entities.CheckIn) error {
	return r.db.WithContext(ctx).Save(checkIn).Error
}
