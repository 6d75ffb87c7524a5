package model

import (
	"time"

	"github.com/lib/pq"
)

// Downtime rule types.
const (
	DowntimeTimeRange    = "time_range"
	DowntimePrayerIqamah = "prayer_iqamah"
)

// DowntimeRule suppresses all non-prayer sign content while it matches.
// Exactly one payload shape is populated per type; the other's fields are
// null. A rule only applies on days listed in DaysOfWeek.
type DowntimeRule struct {
	ID         int            `db:"id"           json:"id"`
	RuleType   string         `db:"rule_type"    json:"rule_type"`
	DaysOfWeek pq.StringArray `db:"days_of_week" json:"days_of_week"`
	IsActive   bool           `db:"is_active"    json:"is_active"`

	// time_range payload
	StartTime *string `db:"start_time" json:"start_time,omitempty"`
	EndTime   *string `db:"end_time"   json:"end_time,omitempty"`

	// prayer_iqamah payload
	PrayerName          *string `db:"prayer_name"           json:"prayer_name,omitempty"`
	MinutesBeforeIqamah *int    `db:"minutes_before_iqamah" json:"minutes_before_iqamah,omitempty"`
	MinutesAfterIqamah  *int    `db:"minutes_after_iqamah"  json:"minutes_after_iqamah,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AppliesOn reports whether the rule is configured for the given weekday.
func (r DowntimeRule) AppliesOn(day time.Weekday) bool {
	name := day.String()
	for _, d := range r.DaysOfWeek {
		if d == name {
			return true
		}
	}
	return false
}
