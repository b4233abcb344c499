package persistent

import (
	"errors"

	"funfans/internal/entity"
	"funfans/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LedgerRepository interface {
	ExecutePurchase(buyerID string, item *entity.ContentItem, earnings float64) error
	AdjustBalance(userID string, amount float64, txType entity.TransactionType, description string) error
	GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error)
	GetCreatorTransactions(creatorID string, limit, offset int) ([]*entity.CreatorTransaction, error)
	IsUnlocked(userID, contentItemID string) (bool, error)
	GetUnlockedContentIDs(userID string) ([]string, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

// ExecutePurchase runs the whole purchase sequence as one database
// transaction: conditional debit of the buyer, atomic credit of the
// creator's earned balance, both transaction records and the entitlement
// row. Either everything commits or nothing does; concurrent purchases of
// the same creator's content cannot lose earnings updates.
func (r *ledgerRepository) ExecutePurchase(buyerID string, item *entity.ContentItem, earnings float64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ProfileModel{}).
			Where("id = ? AND credits_balance >= ?", buyerID, item.Price).
			UpdateColumn("credits_balance", clause.Expr{SQL: "credits_balance - ?", Vars: []interface{}{item.Price}})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrInsufficientBalance
		}

		res = tx.Model(&model.ProfileModel{}).
			Where("id = ?", item.CreatorID).
			UpdateColumn("earned_balance", clause.Expr{SQL: "earned_balance + ?", Vars: []interface{}{earnings}})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}

		txn := &model.TransactionModel{
			UserID:      buyerID,
			Type:        string(entity.TransactionTypePurchase),
			Amount:      -item.Price,
			Description: "Purchase of " + item.Title,
		}
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		ctxn := &model.CreatorTransactionModel{
			CreatorID:      item.CreatorID,
			ContentItemID:  item.ID,
			Title:          item.Title,
			BuyerID:        buyerID,
			AmountReceived: earnings,
			OriginalPrice:  item.Price,
			ImageCount:     item.MediaCount.Images,
			VideoCount:     item.MediaCount.Videos,
		}
		if err := tx.Create(ctxn).Error; err != nil {
			return err
		}

		unlock := &model.UnlockModel{
			UserID:        buyerID,
			ContentItemID: item.ID,
		}
		if err := tx.Create(unlock).Error; err != nil {
			// The unique (user_id, content_item_id) index backs the
			// exactly-once entitlement guarantee under races.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return entity.ErrAlreadyUnlocked
			}
			return err
		}

		return nil
	})
}

// AdjustBalance applies a signed delta and appends the transaction record
// atomically. No floor is enforced here; purchase is the only flow that
// guards against overdraft.
func (r *ledgerRepository) AdjustBalance(userID string, amount float64, txType entity.TransactionType, description string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.ProfileModel{}).
			Where("id = ?", userID).
			UpdateColumn("credits_balance", clause.Expr{SQL: "credits_balance + ?", Vars: []interface{}{amount}})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}

		txn := &model.TransactionModel{
			UserID:      userID,
			Type:        string(txType),
			Amount:      amount,
			Description: description,
		}
		return tx.Create(txn).Error
	})
}

func (r *ledgerRepository) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	var rows []model.TransactionModel
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(rows))
	for i := range rows {
		transactions[i] = ToTransactionEntity(&rows[i])
	}
	return transactions, nil
}

func (r *ledgerRepository) GetCreatorTransactions(creatorID string, limit, offset int) ([]*entity.CreatorTransaction, error) {
	var rows []model.CreatorTransactionModel
	query := r.db.Where("creator_id = ?", creatorID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.CreatorTransaction, len(rows))
	for i := range rows {
		transactions[i] = ToCreatorTransactionEntity(&rows[i])
	}
	return transactions, nil
}

func (r *ledgerRepository) IsUnlocked(userID, contentItemID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.UnlockModel{}).
		Where("user_id = ? AND content_item_id = ?", userID, contentItemID).
		Count(&count).Error
	return count > 0, err
}

func (r *ledgerRepository) GetUnlockedContentIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.UnlockModel{}).
		Where("user_id = ?", userID).
		Pluck("content_item_id", &ids).Error
	return ids, err
}
