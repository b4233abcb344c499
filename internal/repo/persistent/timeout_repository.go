package persistent

import (
	"errors"

	"funfans/internal/entity"
	"funfans/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TimeoutRepository interface {
	Upsert(timeout *entity.UserTimeout) error
	GetByUserID(userID string) (*entity.UserTimeout, error)
}

type timeoutRepository struct {
	db *gorm.DB
}

func NewTimeoutRepository(db *gorm.DB) TimeoutRepository {
	return &timeoutRepository{db: db}
}

// Upsert keeps a single timeout row per user; setting a new timeout
// overwrites the previous one entirely.
func (r *timeoutRepository) Upsert(timeout *entity.UserTimeout) error {
	m := &model.UserTimeoutModel{
		UserID:  timeout.UserID,
		EndTime: timeout.EndTime,
		Message: timeout.Message,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"end_time", "message", "updated_at"}),
	}).Create(m).Error
}

func (r *timeoutRepository) GetByUserID(userID string) (*entity.UserTimeout, error) {
	var m model.UserTimeoutModel
	if err := r.db.Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToTimeoutEntity(&m), nil
}
