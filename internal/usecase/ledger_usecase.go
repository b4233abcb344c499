package usecase

import (
	"fmt"
	"time"

	"funfans/internal/entity"
	"funfans/internal/repo/persistent"
	"funfans/pkg/config"
	"funfans/pkg/logger"
	"funfans/pkg/queue"
)

type LedgerUseCase interface {
	Purchase(buyerID, itemID string) error
	AddCredits(userID string, amount float64, description string, txType entity.TransactionType) error
	AddReward(userID string) error
	GrantCredits(targetUserID string, amount float64) error
	GetBalance(userID string) (float64, error)
	GetEarnedBalance(userID string) (float64, error)
	GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error)
	GetCreatorTransactions(creatorID string, limit, offset int) ([]*entity.CreatorTransaction, error)
	GetUnlockedContentIDs(userID string) ([]string, error)
}

type ledgerUseCase struct {
	ledgerRepo  persistent.LedgerRepository
	profileRepo persistent.ProfileRepository
	contentRepo persistent.ContentRepository
	queueClient *queue.Client
	cfg         *config.Config
	logger      *logger.Logger
}

func NewLedgerUseCase(
	ledgerRepo persistent.LedgerRepository,
	profileRepo persistent.ProfileRepository,
	contentRepo persistent.ContentRepository,
	queueClient *queue.Client,
	cfg *config.Config,
	logger *logger.Logger,
) LedgerUseCase {
	return &ledgerUseCase{
		ledgerRepo:  ledgerRepo,
		profileRepo: profileRepo,
		contentRepo: contentRepo,
		queueClient: queueClient,
		cfg:         cfg,
		logger:      logger,
	}
}

// Purchase debits the buyer, splits revenue with the creator, records both
// sides of the sale and grants the entitlement, all in one storage
// transaction. The commission rate is read at purchase time; changing it
// later never rewrites past sales.
func (uc *ledgerUseCase) Purchase(buyerID, itemID string) error {
	buyer, err := uc.profileRepo.GetByID(buyerID)
	if err != nil {
		uc.logger.Error("Failed to load buyer %s: %v", buyerID, err)
		return fmt.Errorf("failed to load buyer: %w", err)
	}
	if buyer == nil {
		return entity.ErrNotFound
	}

	item, err := uc.contentRepo.GetByID(itemID)
	if err != nil {
		return err
	}

	if item.CreatorID == buyerID {
		return entity.ErrSelfPurchase
	}

	unlocked, err := uc.ledgerRepo.IsUnlocked(buyerID, itemID)
	if err != nil {
		uc.logger.Error("Failed to check entitlement for %s/%s: %v", buyerID, itemID, err)
		return fmt.Errorf("failed to check entitlement: %w", err)
	}
	if unlocked {
		return entity.ErrAlreadyUnlocked
	}

	if buyer.CreditsBalance < item.Price {
		return entity.ErrInsufficientBalance
	}

	earnings := item.Price * (1 - uc.cfg.PlatformCommission)
	if err := uc.ledgerRepo.ExecutePurchase(buyerID, item, earnings); err != nil {
		return err
	}

	if uc.queueClient != nil {
		event := queue.SaleEvent{
			CreatorID:      item.CreatorID,
			BuyerID:        buyerID,
			ContentItemID:  item.ID,
			Title:          item.Title,
			AmountReceived: earnings,
			OriginalPrice:  item.Price,
			OccurredAt:     time.Now(),
		}
		go func() {
			if err := uc.queueClient.PublishSaleEvent(event); err != nil {
				uc.logger.Error("Failed to publish sale event for item %s: %v", event.ContentItemID, err)
			}
		}()
	}

	return nil
}

// AddCredits applies a signed adjustment and appends the transaction. It
// deliberately has no floor: rewards, grants and subscription credits all
// flow through here, and correcting adjustments may be negative.
func (uc *ledgerUseCase) AddCredits(userID string, amount float64, description string, txType entity.TransactionType) error {
	if err := uc.ledgerRepo.AdjustBalance(userID, amount, txType, description); err != nil {
		uc.logger.Error("Failed to adjust balance for %s by %.2f: %v", userID, amount, err)
		return err
	}
	return nil
}

func (uc *ledgerUseCase) AddReward(userID string) error {
	return uc.AddCredits(userID, uc.cfg.RewardAmount, "Credits from watching ad", entity.TransactionTypeReward)
}

func (uc *ledgerUseCase) GrantCredits(targetUserID string, amount float64) error {
	description := fmt.Sprintf("Admin grant for user %s", targetUserID)
	return uc.AddCredits(targetUserID, amount, description, entity.TransactionTypeAdminGrant)
}

func (uc *ledgerUseCase) GetBalance(userID string) (float64, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 0, entity.ErrNotFound
	}
	return profile.CreditsBalance, nil
}

func (uc *ledgerUseCase) GetEarnedBalance(userID string) (float64, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 0, entity.ErrNotFound
	}
	return profile.EarnedBalance, nil
}

func (uc *ledgerUseCase) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	transactions, err := uc.ledgerRepo.GetTransactions(userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to get transactions for %s: %v", userID, err)
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

func (uc *ledgerUseCase) GetCreatorTransactions(creatorID string, limit, offset int) ([]*entity.CreatorTransaction, error) {
	transactions, err := uc.ledgerRepo.GetCreatorTransactions(creatorID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to get creator transactions for %s: %v", creatorID, err)
		return nil, fmt.Errorf("failed to get creator transactions: %w", err)
	}
	return transactions, nil
}

func (uc *ledgerUseCase) GetUnlockedContentIDs(userID string) ([]string, error) {
	return uc.ledgerRepo.GetUnlockedContentIDs(userID)
}
