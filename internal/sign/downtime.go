package sign

import (
	"time"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

// IsDowntime reports whether any active downtime rule matches now. While a
// rule matches, the sign shows only prayer times. Rules are boolean OR; the
// first match wins.
//
// A missing or invalid iqamah time silently disqualifies a prayer_iqamah
// rule; it never errors.
func IsDowntime(rules []model.DowntimeRule, iqamah map[string]string, now time.Time) bool {
	for _, r := range rules {
		if !r.IsActive {
			continue
		}
		switch r.RuleType {
		case model.DowntimeTimeRange:
			if timeRangeMatches(r, now) {
				return true
			}
		case model.DowntimePrayerIqamah:
			if iqamahWindowMatches(r, iqamah, now) {
				return true
			}
		}
	}
	return false
}

// timeRangeMatches evaluates an explicit start/end window. An end clock
// numerically before the start clock means the window wraps past midnight;
// such a window is owned by the day it starts on, so early-morning instants
// are tested against yesterday's anchor as well.
func timeRangeMatches(r model.DowntimeRule, now time.Time) bool {
	if r.StartTime == nil || r.EndTime == nil {
		return false
	}
	sh, sm, ok := ParseClock(*r.StartTime)
	if !ok {
		return false
	}
	eh, em, ok := ParseClock(*r.EndTime)
	if !ok {
		return false
	}
	wraps := eh*60+em < sh*60+sm

	if r.AppliesOn(now.Weekday()) {
		start, _ := ClockOn(*r.StartTime, now)
		end, _ := ClockOn(*r.EndTime, now)
		if wraps {
			end = end.AddDate(0, 0, 1)
		}
		if within(now, start, end) {
			return true
		}
	}
	if wraps {
		yesterday := now.AddDate(0, 0, -1)
		if r.AppliesOn(yesterday.Weekday()) {
			start, _ := ClockOn(*r.StartTime, yesterday)
			end, _ := ClockOn(*r.EndTime, now)
			if within(now, start, end) {
				return true
			}
		}
	}
	return false
}

// iqamahWindowMatches evaluates a [iqamah-before, iqamah+after] window for
// the rule's prayer. When now is already past today's window it also tests
// tomorrow's equivalent window, since a wide window can span midnight.
func iqamahWindowMatches(r model.DowntimeRule, iqamah map[string]string, now time.Time) bool {
	if !r.AppliesOn(now.Weekday()) || r.PrayerName == nil {
		return false
	}
	iq, ok := ClockOn(iqamah[*r.PrayerName], now)
	if !ok {
		return false
	}
	var before, after time.Duration
	if r.MinutesBeforeIqamah != nil {
		before = time.Duration(*r.MinutesBeforeIqamah) * time.Minute
	}
	if r.MinutesAfterIqamah != nil {
		after = time.Duration(*r.MinutesAfterIqamah) * time.Minute
	}

	start, end := iq.Add(-before), iq.Add(after)
	if within(now, start, end) {
		return true
	}
	if now.After(end) {
		return within(now, start.AddDate(0, 0, 1), end.AddDate(0, 0, 1))
	}
	return false
}

// within is inclusive on both bounds.
func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
