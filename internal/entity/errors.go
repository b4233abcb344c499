package entity

import "errors"

// Precondition failures. Handlers map these to 4xx responses; anything else
// is an internal error.
var (
	ErrNotFound            = errors.New("not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrSelfPurchase        = errors.New("cannot purchase your own content")
	ErrAlreadyUnlocked     = errors.New("content already unlocked")
	ErrCooldownActive      = errors.New("withdrawal cooldown active")
	ErrContentTooYoung     = errors.New("content can only be deleted 24 hours after publishing")
	ErrNotOwner            = errors.New("not the owner of this content")
	ErrNoSubscription      = errors.New("no active subscription")
)
