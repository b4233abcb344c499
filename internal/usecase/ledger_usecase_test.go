package usecase

import (
	"testing"

	"funfans/internal/entity"
	"funfans/pkg/config"
	"funfans/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLedgerTestConfig() *config.Config {
	return &config.Config{
		PlatformCommission: 0.50,
		RewardAmount:       10,
	}
}

func TestPurchase_Success(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	buyer := &entity.Profile{ID: "buyer-1", CreditsBalance: 100}
	item := &entity.ContentItem{ID: "item-1", CreatorID: "creator-1", Title: "Sunset set", Price: 30}

	profileRepo.On("GetByID", "buyer-1").Return(buyer, nil)
	contentRepo.On("GetByID", "item-1").Return(item, nil)
	ledgerRepo.On("IsUnlocked", "buyer-1", "item-1").Return(false, nil)
	// 30 credits at 50% commission leaves the creator 15.
	ledgerRepo.On("ExecutePurchase", "buyer-1", item, 15.0).Return(nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.Purchase("buyer-1", "item-1")

	assert.NoError(t, err)
	ledgerRepo.AssertExpectations(t)
}

func TestPurchase_SelfPurchase(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	creator := &entity.Profile{ID: "creator-1", CreditsBalance: 100}
	item := &entity.ContentItem{ID: "item-1", CreatorID: "creator-1", Price: 30}

	profileRepo.On("GetByID", "creator-1").Return(creator, nil)
	contentRepo.On("GetByID", "item-1").Return(item, nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.Purchase("creator-1", "item-1")

	assert.ErrorIs(t, err, entity.ErrSelfPurchase)
	ledgerRepo.AssertNotCalled(t, "ExecutePurchase", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchase_AlreadyUnlocked(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	buyer := &entity.Profile{ID: "buyer-1", CreditsBalance: 100}
	item := &entity.ContentItem{ID: "item-1", CreatorID: "creator-1", Price: 30}

	profileRepo.On("GetByID", "buyer-1").Return(buyer, nil)
	contentRepo.On("GetByID", "item-1").Return(item, nil)
	ledgerRepo.On("IsUnlocked", "buyer-1", "item-1").Return(true, nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.Purchase("buyer-1", "item-1")

	assert.ErrorIs(t, err, entity.ErrAlreadyUnlocked)
	ledgerRepo.AssertNotCalled(t, "ExecutePurchase", mock.Anything, mock.Anything, mock.Anything)
}

// A concurrent buy can slip past the pre-check and lose at the unique unlock
// index inside the transaction; the sentinel must still reach the caller.
func TestPurchase_ConcurrentUnlockLosesRace(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	buyer := &entity.Profile{ID: "buyer-1", CreditsBalance: 100}
	item := &entity.ContentItem{ID: "item-1", CreatorID: "creator-1", Price: 30}

	profileRepo.On("GetByID", "buyer-1").Return(buyer, nil)
	contentRepo.On("GetByID", "item-1").Return(item, nil)
	ledgerRepo.On("IsUnlocked", "buyer-1", "item-1").Return(false, nil)
	ledgerRepo.On("ExecutePurchase", "buyer-1", item, 15.0).Return(entity.ErrAlreadyUnlocked)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.Purchase("buyer-1", "item-1")

	assert.ErrorIs(t, err, entity.ErrAlreadyUnlocked)
}

func TestPurchase_InsufficientBalance(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	buyer := &entity.Profile{ID: "buyer-1", CreditsBalance: 20}
	item := &entity.ContentItem{ID: "item-1", CreatorID: "creator-1", Price: 30}

	profileRepo.On("GetByID", "buyer-1").Return(buyer, nil)
	contentRepo.On("GetByID", "item-1").Return(item, nil)
	ledgerRepo.On("IsUnlocked", "buyer-1", "item-1").Return(false, nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.Purchase("buyer-1", "item-1")

	assert.ErrorIs(t, err, entity.ErrInsufficientBalance)
	ledgerRepo.AssertNotCalled(t, "ExecutePurchase", mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchase_BuyerNotFound(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	profileRepo.On("GetByID", "ghost").Return(nil, nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.Purchase("ghost", "item-1")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestPurchase_ItemNotFound(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	buyer := &entity.Profile{ID: "buyer-1", CreditsBalance: 100}
	profileRepo.On("GetByID", "buyer-1").Return(buyer, nil)
	contentRepo.On("GetByID", "missing").Return(nil, entity.ErrNotFound)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.Purchase("buyer-1", "missing")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestPurchase_FreeItem(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	buyer := &entity.Profile{ID: "buyer-1", CreditsBalance: 0}
	item := &entity.ContentItem{ID: "item-1", CreatorID: "creator-1", Price: 0}

	profileRepo.On("GetByID", "buyer-1").Return(buyer, nil)
	contentRepo.On("GetByID", "item-1").Return(item, nil)
	ledgerRepo.On("IsUnlocked", "buyer-1", "item-1").Return(false, nil)
	ledgerRepo.On("ExecutePurchase", "buyer-1", item, 0.0).Return(nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.Purchase("buyer-1", "item-1")

	assert.NoError(t, err)
	ledgerRepo.AssertExpectations(t)
}

func TestAddReward(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	ledgerRepo.On("AdjustBalance", "user-1", 10.0, entity.TransactionTypeReward, "Credits from watching ad").Return(nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.AddReward("user-1")

	assert.NoError(t, err)
	ledgerRepo.AssertExpectations(t)
}

func TestGrantCredits(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	ledgerRepo.On("AdjustBalance", "user-1", 500.0, entity.TransactionTypeAdminGrant, "Admin grant for user user-1").Return(nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.GrantCredits("user-1", 500)

	assert.NoError(t, err)
	ledgerRepo.AssertExpectations(t)
}

func TestAddCredits_NegativeAdjustment(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	ledgerRepo.On("AdjustBalance", "user-1", -25.0, entity.TransactionTypeAdminGrant, "Correction").Return(nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	err := uc.AddCredits("user-1", -25, "Correction", entity.TransactionTypeAdminGrant)

	assert.NoError(t, err)
	ledgerRepo.AssertExpectations(t)
}

func TestGetBalance(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	profileRepo.On("GetByID", "user-1").Return(&entity.Profile{ID: "user-1", CreditsBalance: 70, EarnedBalance: 15}, nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())

	balance, err := uc.GetBalance("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 70.0, balance)

	earned, err := uc.GetEarnedBalance("user-1")
	assert.NoError(t, err)
	assert.Equal(t, 15.0, earned)
}

func TestGetTransactions(t *testing.T) {
	ledgerRepo := new(MockLedgerRepository)
	profileRepo := new(MockProfileRepository)
	contentRepo := new(MockContentRepository)

	expected := []*entity.Transaction{
		{ID: "t2", UserID: "user-1", Type: entity.TransactionTypePurchase, Amount: -30},
		{ID: "t1", UserID: "user-1", Type: entity.TransactionTypeReward, Amount: 10},
	}
	ledgerRepo.On("GetTransactions", "user-1", 20, 0).Return(expected, nil)

	uc := NewLedgerUseCase(ledgerRepo, profileRepo, contentRepo, nil, newLedgerTestConfig(), logger.New())
	transactions, err := uc.GetTransactions("user-1", 20, 0)

	assert.NoError(t, err)
	assert.Equal(t, expected, transactions)
}
