package entity

import "time"

// UserTimeout is a moderation suspension window. One active timeout per
// user, last write wins; expiry is detected lazily on read.
type UserTimeout struct {
	UserID  string    `json:"user_id"`
	EndTime time.Time `json:"end_time"`
	Message string    `json:"message"`
}
