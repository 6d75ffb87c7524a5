package model

import "time"

// SignSettingsID is the fixed id of the singleton settings row.
const SignSettingsID = 1

// MinRotationInterval is the floor for the carousel period, enforced at
// save time and again at read time.
const MinRotationInterval = 5

// DefaultRotationInterval is used when no settings row exists yet.
const DefaultRotationInterval = 15

// SignSettings is the singleton digital sign configuration.
type SignSettings struct {
	ID                      int       `db:"id"                        json:"id"`
	MaxAnnouncements        int       `db:"max_announcements"         json:"max_announcements"`
	ShowDescriptions        bool      `db:"show_descriptions"         json:"show_descriptions"`
	ShowImages              bool      `db:"show_images"               json:"show_images"`
	RotationIntervalSeconds int       `db:"rotation_interval_seconds" json:"rotation_interval_seconds"`
	UpdatedAt               time.Time `db:"updated_at"                json:"updated_at"`
}
