package model

import "time"

// Announcement is a community notice shown on the site and on the sign.
// Eligible for display when active and not expired.
type Announcement struct {
	ID               int        `db:"id"                json:"id"`
	Title            string     `db:"title"             json:"title"`
	Description      string     `db:"description"       json:"description"`
	AnnouncementDate time.Time  `db:"announcement_date" json:"announcement_date"`
	ImageURL         *string    `db:"image_url"         json:"image_url,omitempty"`
	IsActive         bool       `db:"is_active"         json:"is_active"`
	PostedAt         time.Time  `db:"posted_at"         json:"posted_at"`
	ExpirationDate   *time.Time `db:"expiration_date"   json:"expiration_date,omitempty"`
}

// Eligible reports whether the announcement may be displayed on the given day.
func (a Announcement) Eligible(today time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.ExpirationDate == nil {
		return true
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return !a.ExpirationDate.Before(day)
}
