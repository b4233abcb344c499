package entity

import "time"

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type Media struct {
	ID           string    `json:"id"`
	MediaType    MediaType `json:"media_type"`
	StoragePath  string    `json:"-"`
	URL          string    `json:"url"`
	DisplayOrder int       `json:"display_order"`
}

type MediaCount struct {
	Images int `json:"images"`
	Videos int `json:"videos"`
}

type ContentItem struct {
	ID        string    `json:"id"`
	CreatorID string    `json:"creator_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	BlurLevel int       `json:"blur_level"`
	Tags      []string  `json:"tags"`
	IsHidden  bool      `json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`

	Media      []Media           `json:"media"`
	LikedBy    []string          `json:"liked_by"`
	SharedBy   []string          `json:"shared_by"`
	Reactions  map[string]string `json:"reactions"` // user id -> emoji, one per user
	MediaCount MediaCount        `json:"media_count"`
	Unlocked   bool              `json:"unlocked"`
}
