package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserTimeoutModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserTimeoutModel) TableName() string {
	return "user_timeouts"
}

func (u *UserTimeoutModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
