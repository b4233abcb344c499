package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContentItemModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	CreatorID string    `gorm:"type:uuid;not null;index" json:"creator_id"`
	Title     string    `gorm:"not null" json:"title"`
	Price     float64   `gorm:"not null;default:0" json:"price"`
	BlurLevel int       `gorm:"default:0" json:"blur_level"`
	Tags      string    `json:"tags"` // comma separated
	IsHidden  bool      `gorm:"default:false;index" json:"is_hidden"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Media []MediaModel `gorm:"foreignKey:ContentItemID" json:"media"`
}

func (ContentItemModel) TableName() string {
	return "content_items"
}

func (c *ContentItemModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

type MediaModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	ContentItemID string    `gorm:"type:uuid;not null;index" json:"content_item_id"`
	MediaType     string    `gorm:"type:varchar(10);not null" json:"media_type"`
	StoragePath   string    `gorm:"not null" json:"storage_path"`
	DisplayOrder  int       `gorm:"default:0;index" json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
}

func (MediaModel) TableName() string {
	return "media"
}

func (m *MediaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

type LikeModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	ContentItemID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_like_item_user" json:"content_item_id"`
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex:idx_like_item_user" json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type ShareModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	ContentItemID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_share_item_user" json:"content_item_id"`
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex:idx_share_item_user" json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (ShareModel) TableName() string {
	return "shares"
}

func (s *ShareModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type ReactionModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	ContentItemID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_reaction_item_user" json:"content_item_id"`
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex:idx_reaction_item_user" json:"user_id"`
	Emoji         string    `gorm:"not null" json:"emoji"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (ReactionModel) TableName() string {
	return "reactions"
}

func (r *ReactionModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
