package entity

import "time"

type SubscriptionPlan struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PriceUSD float64 `json:"price_usd"`
	Credits  float64 `json:"credits"`
}

type CreditPackage struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	PriceUSD float64 `json:"price_usd"`
	Credits  float64 `json:"credits"`
}

// UserSubscription snapshots the plan at subscribe time; later plan edits do
// not rewrite existing subscriptions. At most one per user.
type UserSubscription struct {
	UserID        string    `json:"user_id"`
	PlanID        string    `json:"plan_id"`
	PlanName      string    `json:"plan_name"`
	PriceUSD      float64   `json:"price_usd"`
	Credits       float64   `json:"credits"`
	RenewsOn      time.Time `json:"renews_on"`
	PaymentMethod string    `json:"payment_method"`
}
