package persistent

import (
	"errors"

	"funfans/internal/entity"
	"funfans/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	Upsert(sub *entity.UserSubscription) error
	GetByUserID(userID string) (*entity.UserSubscription, error)
	Delete(userID string) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Upsert replaces any existing subscription for the user in place.
// Re-subscribing is last-write-wins; there is no refund or proration.
func (r *subscriptionRepository) Upsert(sub *entity.UserSubscription) error {
	m := &model.SubscriptionModel{
		UserID:        sub.UserID,
		PlanID:        sub.PlanID,
		PlanName:      sub.PlanName,
		PriceUSD:      sub.PriceUSD,
		Credits:       sub.Credits,
		RenewsOn:      sub.RenewsOn,
		PaymentMethod: sub.PaymentMethod,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"plan_id", "plan_name", "price_usd", "credits", "renews_on", "payment_method", "updated_at",
		}),
	}).Create(m).Error
}

func (r *subscriptionRepository) GetByUserID(userID string) (*entity.UserSubscription, error) {
	var m model.SubscriptionModel
	if err := r.db.Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToSubscriptionEntity(&m), nil
}

func (r *subscriptionRepository) Delete(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.SubscriptionModel{}).Error
}
