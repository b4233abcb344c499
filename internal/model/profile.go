package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileModel struct {
	ID                string     `gorm:"type:uuid;primary_key" json:"id"`
	Username          string     `gorm:"not null" json:"username"`
	ProfilePictureURL string     `json:"profile_picture_url"`
	VitrineSlug       string     `gorm:"uniqueIndex" json:"vitrine_slug"`
	Bio               string     `json:"bio"`
	Role              string     `gorm:"type:varchar(20);default:'user'" json:"role"`
	CreditsBalance    float64    `gorm:"default:0" json:"credits_balance"`
	EarnedBalance     float64    `gorm:"default:0" json:"earned_balance"`
	LastWithdrawalAt  *time.Time `json:"last_withdrawal_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (p *ProfileModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

type FollowerModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	FollowerID  string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (FollowerModel) TableName() string {
	return "followers"
}

func (f *FollowerModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
