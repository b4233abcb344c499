package usecase

import (
	"testing"
	"time"

	"funfans/internal/entity"
	"funfans/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var subscribeNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newSubscriptionUC(subRepo *MockSubscriptionRepository, catalogRepo *MockCatalogRepository, ledgerRepo *MockLedgerRepository) *subscriptionUseCase {
	uc := NewSubscriptionUseCase(subRepo, catalogRepo, ledgerRepo, logger.New()).(*subscriptionUseCase)
	uc.now = func() time.Time { return subscribeNow }
	return uc
}

func TestSubscribe_GrantsPlanCredits(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	catalogRepo := new(MockCatalogRepository)
	ledgerRepo := new(MockLedgerRepository)

	plan := &entity.SubscriptionPlan{ID: "plan-basic", Name: "Basic", PriceUSD: 9.99, Credits: 200}
	catalogRepo.On("GetPlan", "plan-basic").Return(plan, nil)
	subRepo.On("Upsert", mock.MatchedBy(func(sub *entity.UserSubscription) bool {
		return sub.UserID == "user-1" &&
			sub.PlanID == "plan-basic" &&
			sub.Credits == 200 &&
			sub.PaymentMethod == "Credit Card ending **** 4242" &&
			sub.RenewsOn.Equal(subscribeNow.AddDate(0, 1, 0))
	})).Return(nil)
	ledgerRepo.On("AdjustBalance", "user-1", 200.0, entity.TransactionTypeSubscription, "Subscription credits for Basic plan").Return(nil)

	uc := newSubscriptionUC(subRepo, catalogRepo, ledgerRepo)
	sub, err := uc.Subscribe("user-1", "plan-basic")

	assert.NoError(t, err)
	assert.Equal(t, "Basic", sub.PlanName)
	subRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
}

func TestSubscribe_UnknownPlan(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	catalogRepo := new(MockCatalogRepository)
	ledgerRepo := new(MockLedgerRepository)

	catalogRepo.On("GetPlan", "missing").Return(nil, entity.ErrNotFound)

	uc := newSubscriptionUC(subRepo, catalogRepo, ledgerRepo)
	_, err := uc.Subscribe("user-1", "missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
	subRepo.AssertNotCalled(t, "Upsert", mock.Anything)
}

func TestSubscribeUser_NoCreditGrant(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	catalogRepo := new(MockCatalogRepository)
	ledgerRepo := new(MockLedgerRepository)

	plan := &entity.SubscriptionPlan{ID: "plan-pro", Name: "Pro", PriceUSD: 24.99, Credits: 600}
	catalogRepo.On("GetPlan", "plan-pro").Return(plan, nil)
	subRepo.On("Upsert", mock.MatchedBy(func(sub *entity.UserSubscription) bool {
		return sub.UserID == "user-2" && sub.PaymentMethod == "Admin Assigned"
	})).Return(nil)

	uc := newSubscriptionUC(subRepo, catalogRepo, ledgerRepo)
	sub, err := uc.SubscribeUser("user-2", "plan-pro")

	assert.NoError(t, err)
	assert.Equal(t, "Admin Assigned", sub.PaymentMethod)
	ledgerRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_RecordsZeroAmountMarker(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	catalogRepo := new(MockCatalogRepository)
	ledgerRepo := new(MockLedgerRepository)

	sub := &entity.UserSubscription{UserID: "user-1", PlanID: "plan-basic", PlanName: "Basic"}
	subRepo.On("GetByUserID", "user-1").Return(sub, nil)
	ledgerRepo.On("AdjustBalance", "user-1", 0.0, entity.TransactionTypeSubscription, "Canceled Basic plan").Return(nil)
	subRepo.On("Delete", "user-1").Return(nil)

	uc := newSubscriptionUC(subRepo, catalogRepo, ledgerRepo)
	err := uc.Cancel("user-1")

	assert.NoError(t, err)
	subRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
}

func TestCancel_NoSubscription(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	catalogRepo := new(MockCatalogRepository)
	ledgerRepo := new(MockLedgerRepository)

	subRepo.On("GetByUserID", "user-1").Return(nil, nil)

	uc := newSubscriptionUC(subRepo, catalogRepo, ledgerRepo)
	err := uc.Cancel("user-1")

	assert.ErrorIs(t, err, entity.ErrNoSubscription)
	subRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCancelUser_AdminDescription(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	catalogRepo := new(MockCatalogRepository)
	ledgerRepo := new(MockLedgerRepository)

	sub := &entity.UserSubscription{UserID: "user-3", PlanID: "plan-pro", PlanName: "Pro"}
	subRepo.On("GetByUserID", "user-3").Return(sub, nil)
	ledgerRepo.On("AdjustBalance", "user-3", 0.0, entity.TransactionTypeSubscription, "Admin Canceled Pro for user-3").Return(nil)
	subRepo.On("Delete", "user-3").Return(nil)

	uc := newSubscriptionUC(subRepo, catalogRepo, ledgerRepo)
	err := uc.CancelUser("user-3")

	assert.NoError(t, err)
	ledgerRepo.AssertExpectations(t)
}
