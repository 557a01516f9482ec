package models

import "time"

type Album struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Artist      string     `json:"artist"`
	ReleaseDate string     `json:"releaseDate"` // yyyy-mm-dd as entered by the admin
	Category    string     `json:"category"`
	Distributor string     `json:"distributor"`
	Description string     `json:"description"` // html, stored verbatim
	ImageURL    string     `json:"imageUrl"`
	YoutubeURL  string     `json:"youtubeUrl"`
	IsFeatured  bool       `json:"isFeatured"`
	IsHidden    bool       `json:"isHidden"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func (a Album) CatalogCategory() string { return a.Category }
func (a Album) CatalogFeatured() bool   { return a.IsFeatured }
func (a Album) CatalogDate() time.Time  { return ParseLooseDate(a.ReleaseDate) }

func (a Album) SearchText() []string { return []string{a.Title, a.Artist} }
