package model

import "time"

// Daily prayer slots. Jumuah is a weekly display value only and never
// participates in the daily countdown.
const (
	PrayerFajr    = "Fajr"
	PrayerDhuhr   = "Dhuhr"
	PrayerAsr     = "Asr"
	PrayerMaghrib = "Maghrib"
	PrayerIsha    = "Isha"
	PrayerJumuah  = "Jumuah"
)

// DailyPrayerNames is the fixed countdown order of the five daily prayers.
var DailyPrayerNames = []string{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

// ValidPrayerName reports whether name is one of the managed prayer slots,
// Jumuah included.
func ValidPrayerName(name string) bool {
	if name == PrayerJumuah {
		return true
	}
	for _, n := range DailyPrayerNames {
		if n == name {
			return true
		}
	}
	return false
}

// IqamahTime is the admin-managed congregational start time for one prayer.
// The time is a wall-clock "HH:MM" string; anything else is displayed as-is
// and never used for arithmetic.
type IqamahTime struct {
	PrayerName string    `db:"prayer_name" json:"prayer_name"`
	IqamahTime string    `db:"iqamah_time" json:"iqamah_time"`
	UpdatedAt  time.Time `db:"updated_at"  json:"updated_at"`
}

// PrayerSchedule pairs the externally sourced adhan times with the stored
// iqamah times for a single day.
type PrayerSchedule struct {
	AdhanTimes  map[string]string `json:"adhan_times"`
	IqamahTimes map[string]string `json:"iqamah_times"`
	Gregorian   string            `json:"gregorian_date"`
	Hijri       string            `json:"hijri_date"`
}

// PrayerOccurrence is a resolved upcoming prayer instant. It exists only
// transiently, recomputed every tick.
type PrayerOccurrence struct {
	Name      string    `json:"name"`
	At        time.Time `json:"at"`
	Display   string    `json:"display"`
	Countdown string    `json:"countdown"`
}
