package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionModel struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        string    `gorm:"type:varchar(20);not null" json:"type"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

type CreatorTransactionModel struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	CreatorID      string    `gorm:"type:uuid;not null;index" json:"creator_id"`
	ContentItemID  string    `gorm:"type:uuid;not null" json:"content_item_id"`
	Title          string    `json:"title"`
	BuyerID        string    `gorm:"type:uuid;not null" json:"buyer_id"`
	AmountReceived float64   `gorm:"not null" json:"amount_received"`
	OriginalPrice  float64   `gorm:"not null" json:"original_price"`
	ImageCount     int       `json:"image_count"`
	VideoCount     int       `json:"video_count"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`
}

func (CreatorTransactionModel) TableName() string {
	return "creator_transactions"
}

func (t *CreatorTransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// UnlockModel rows are insert-only: entitlement is never revoked by the
// normal flow.
type UnlockModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_item" json:"user_id"`
	ContentItemID string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_item" json:"content_item_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (UnlockModel) TableName() string {
	return "unlocked_content"
}

func (u *UnlockModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
