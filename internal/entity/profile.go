package entity

import "time"

type Profile struct {
	ID                string     `json:"id"`
	Username          string     `json:"username"`
	ProfilePictureURL string     `json:"profile_picture_url"`
	VitrineSlug       string     `json:"vitrine_slug"`
	Bio               string     `json:"bio"`
	Role              Role       `json:"role"`
	CreditsBalance    float64    `json:"credits_balance"`
	EarnedBalance     float64    `json:"earned_balance"`
	LastWithdrawalAt  *time.Time `json:"last_withdrawal_at,omitempty"`
	Followers         []string   `json:"followers"`
	Following         []string   `json:"following"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ProfileUpdate is a partial field set; nil fields are left untouched.
type ProfileUpdate struct {
	Username          *string `json:"username,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	VitrineSlug       *string `json:"vitrine_slug,omitempty"`
	Bio               *string `json:"bio,omitempty"`
}
