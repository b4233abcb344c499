package entity

import "time"

type TransactionType string

const (
	TransactionTypePurchase       TransactionType = "purchase"
	TransactionTypeReward         TransactionType = "reward"
	TransactionTypeSubscription   TransactionType = "subscription"
	TransactionTypeCreditPurchase TransactionType = "credit_purchase"
	TransactionTypeAdminGrant     TransactionType = "admin_grant"
)

// Transaction is an immutable, append-only record of a spendable-balance
// change. Amount is signed: debits are negative.
type Transaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreatorTransaction records a single sale on the creator's side. It is a
// separate stream from Transaction and carries the net amount after the
// platform commission was applied at sale time.
type CreatorTransaction struct {
	ID             string    `json:"id"`
	CreatorID      string    `json:"creator_id"`
	ContentItemID  string    `json:"content_item_id"`
	Title          string    `json:"title"`
	BuyerID        string    `json:"buyer_id"`
	AmountReceived float64   `json:"amount_received"`
	OriginalPrice  float64   `json:"original_price"`
	ImageCount     int       `json:"image_count"`
	VideoCount     int       `json:"video_count"`
	CreatedAt      time.Time `json:"created_at"`
}
