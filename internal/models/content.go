package models

import "time"

type Banner struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Subtitle        string     `json:"subtitle,omitempty"`
	ImageURL        string     `json:"imageUrl"`
	ImageType       string     `json:"imageType,omitempty"`
	DesktopWidth    int        `json:"desktopWidth,omitempty"`
	DesktopHeight   int        `json:"desktopHeight,omitempty"`
	MobileWidth     int        `json:"mobileWidth,omitempty"`
	MobileHeight    int        `json:"mobileHeight,omitempty"`
	TextColor       string     `json:"textColor,omitempty"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	ButtonText      string     `json:"buttonText,omitempty"`
	ButtonLink      string     `json:"buttonLink,omitempty"`
	Link            string     `json:"link,omitempty"`
	IsActive        bool       `json:"isActive"`
	Priority        int        `json:"priority,omitempty"`
	Position        string     `json:"position"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

type Popup struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"imageUrl"`
	ImageType   string     `json:"imageType,omitempty"`
	LinkURL     string     `json:"linkUrl,omitempty"`
	ButtonText  string     `json:"buttonText,omitempty"`
	ButtonLink  string     `json:"buttonLink,omitempty"`
	ShowDetails bool       `json:"showDetails,omitempty"`
	IsActive    bool       `json:"isActive"`
	StartDate   string     `json:"startDate,omitempty"`
	EndDate     string     `json:"endDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// VisibleAt reports whether the popup is active and now falls inside its
// window. An unset or unparseable bound is open.
func (p Popup) VisibleAt(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if start := ParseLooseDate(p.StartDate); !start.IsZero() && now.Before(start) {
		return false
	}
	if end := ParseLooseDate(p.EndDate); !end.IsZero() && now.After(end) {
		return false
	}
	return true
}

type FAQ struct {
	ID        string     `json:"id"`
	Category  string     `json:"category"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	Order     int        `json:"order"`
	IsHidden  bool       `json:"isHidden"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type ContactMessage struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"isRead"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type AdminSession struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s AdminSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
