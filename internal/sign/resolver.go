package sign

import (
	"sort"
	"time"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

// Resolution is the output of Resolve: the next upcoming daily prayer and
// the one-hour-before marker, either of which may be nil.
type Resolution struct {
	Next          *model.PrayerOccurrence `json:"next,omitempty"`
	OneHourBefore *model.PrayerOccurrence `json:"one_hour_before,omitempty"`
}

// Resolve determines the next upcoming prayer occurrence (today or
// tomorrow) from a map of prayer name to "HH:MM" adhan time. It is a pure
// function of its inputs; the scheduler re-invokes it once per second and
// whenever the schedule changes.
//
// Invalid time strings are skipped, not errored. An empty or fully invalid
// schedule yields a zero Resolution.
func Resolve(adhan map[string]string, now time.Time) Resolution {
	type candidate struct {
		name string
		at   time.Time
	}

	candidates := make([]candidate, 0, 2*len(model.DailyPrayerNames))
	for _, name := range model.DailyPrayerNames {
		at, ok := ClockOn(adhan[name], now)
		if !ok {
			continue
		}
		candidates = append(candidates,
			candidate{name, at},
			candidate{name, at.AddDate(0, 0, 1)},
		)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].at.Before(candidates[j].at)
	})

	for _, c := range candidates {
		if !c.at.After(now) {
			continue
		}
		res := Resolution{Next: occurrence(c.name, c.at, now)}
		marker := c.at.Add(-time.Hour)
		if marker.After(now) {
			res.OneHourBefore = occurrence(c.name, marker, now)
		}
		return res
	}
	return Resolution{}
}

func occurrence(name string, at, now time.Time) *model.PrayerOccurrence {
	return &model.PrayerOccurrence{
		Name:      name,
		At:        at,
		Display:   at.Format("3:04 PM"),
		Countdown: FormatCountdown(at.Sub(now)),
	}
}
