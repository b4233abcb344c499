package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	PlanID        string    `gorm:"not null" json:"plan_id"`
	PlanName      string    `json:"plan_name"`
	PriceUSD      float64   `json:"price_usd"`
	Credits       float64   `json:"credits"`
	RenewsOn      time.Time `json:"renews_on"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type SubscriptionPlanModel struct {
	ID        string    `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	PriceUSD  float64   `json:"price_usd"`
	Credits   float64   `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SubscriptionPlanModel) TableName() string {
	return "subscription_plans"
}

type CreditPackageModel struct {
	ID        string    `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	PriceUSD  float64   `json:"price_usd"`
	Credits   float64   `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CreditPackageModel) TableName() string {
	return "credit_packages"
}
