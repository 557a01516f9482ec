package models

import "time"

type Video struct {
	ID          string     `json:"id"`
	VideoID     string     `json:"videoId"` // platform id, unique per platform
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Thumbnail   string     `json:"thumbnail"`
	IsFeatured  bool       `json:"isFeatured"`
	PublishedAt string     `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (v Video) CatalogCategory() string { return "" }
func (v Video) CatalogFeatured() bool   { return v.IsFeatured }
func (v Video) CatalogDate() time.Time  { return v.CreatedAt }

// VideoCandidate is a video found on the platform during discovery.
type VideoCandidate struct {
	VideoID     string `json:"videoId"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	IsExisting  bool   `json:"isExisting"`
	PublishedAt string `json:"publishedAt"`
}

// PlatformVideo is the raw shape returned by the platform client.
type PlatformVideo struct {
	VideoID     string
	Title       string
	Description string
	Thumbnail   string
	PublishedAt string
}
