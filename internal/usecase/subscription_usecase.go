package usecase

import (
	"fmt"
	"time"

	"funfans/internal/entity"
	"funfans/internal/repo/persistent"
	"funfans/pkg/logger"
)

const (
	paymentMethodCard  = "Credit Card ending **** 4242"
	paymentMethodAdmin = "Admin Assigned"
)

type SubscriptionUseCase interface {
	Subscribe(userID, planID string) (*entity.UserSubscription, error)
	Cancel(userID string) error
	SubscribeUser(userID, planID string) (*entity.UserSubscription, error)
	CancelUser(userID string) error
	Get(userID string) (*entity.UserSubscription, error)
}

type subscriptionUseCase struct {
	subscriptionRepo persistent.SubscriptionRepository
	catalogRepo      persistent.CatalogRepository
	ledgerRepo       persistent.LedgerRepository
	logger           *logger.Logger
	now              func() time.Time
}

func NewSubscriptionUseCase(
	subscriptionRepo persistent.SubscriptionRepository,
	catalogRepo persistent.CatalogRepository,
	ledgerRepo persistent.LedgerRepository,
	logger *logger.Logger,
) SubscriptionUseCase {
	return &subscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		catalogRepo:      catalogRepo,
		ledgerRepo:       ledgerRepo,
		logger:           logger,
		now:              time.Now,
	}
}

// Subscribe snapshots the plan onto the user's single subscription row and
// grants the plan's monthly credits up front. Re-subscribing replaces the
// previous row; there is no refund or proration.
func (uc *subscriptionUseCase) Subscribe(userID, planID string) (*entity.UserSubscription, error) {
	sub, err := uc.subscribe(userID, planID, paymentMethodCard)
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Subscription credits for %s plan", sub.PlanName)
	if err := uc.ledgerRepo.AdjustBalance(userID, sub.Credits, entity.TransactionTypeSubscription, description); err != nil {
		uc.logger.Error("Failed to grant subscription credits to %s: %v", userID, err)
		return nil, err
	}

	return sub, nil
}

// SubscribeUser is the administrative variant: it assigns the plan without
// granting credits.
func (uc *subscriptionUseCase) SubscribeUser(userID, planID string) (*entity.UserSubscription, error) {
	return uc.subscribe(userID, planID, paymentMethodAdmin)
}

func (uc *subscriptionUseCase) subscribe(userID, planID, paymentMethod string) (*entity.UserSubscription, error) {
	plan, err := uc.catalogRepo.GetPlan(planID)
	if err != nil {
		return nil, err
	}

	sub := &entity.UserSubscription{
		UserID:        userID,
		PlanID:        plan.ID,
		PlanName:      plan.Name,
		PriceUSD:      plan.PriceUSD,
		Credits:       plan.Credits,
		RenewsOn:      uc.now().AddDate(0, 1, 0),
		PaymentMethod: paymentMethod,
	}
	if err := uc.subscriptionRepo.Upsert(sub); err != nil {
		uc.logger.Error("Failed to save subscription for %s: %v", userID, err)
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}
	return sub, nil
}

func (uc *subscriptionUseCase) Cancel(userID string) error {
	sub, err := uc.subscriptionRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if sub == nil {
		return entity.ErrNoSubscription
	}

	description := fmt.Sprintf("Canceled %s plan", sub.PlanName)
	return uc.cancel(userID, description)
}

func (uc *subscriptionUseCase) CancelUser(userID string) error {
	sub, err := uc.subscriptionRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if sub == nil {
		return entity.ErrNoSubscription
	}

	description := fmt.Sprintf("Admin Canceled %s for %s", sub.PlanName, userID)
	return uc.cancel(userID, description)
}

// cancel leaves a zero-amount marker in the transaction log so the history
// shows when the subscription ended, then removes the row.
func (uc *subscriptionUseCase) cancel(userID, description string) error {
	if err := uc.ledgerRepo.AdjustBalance(userID, 0, entity.TransactionTypeSubscription, description); err != nil {
		uc.logger.Error("Failed to record cancellation for %s: %v", userID, err)
		return err
	}
	return uc.subscriptionRepo.Delete(userID)
}

func (uc *subscriptionUseCase) Get(userID string) (*entity.UserSubscription, error) {
	return uc.subscriptionRepo.GetByUserID(userID)
}
