package sign

import (
	"fmt"
	"time"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

// ReminderKind identifies which channel armed the current overlay.
type ReminderKind string

const (
	ReminderOneHour   ReminderKind = "one_hour"
	ReminderTenMinute ReminderKind = "ten_minute"
	ReminderAdhan     ReminderKind = "adhan"
)

const (
	// OverlayDisplayTime is the shared overlay's own auto-close timer. It
	// is deliberately shorter than the channels' internal de-dup windows.
	OverlayDisplayTime = 30 * time.Second

	oneHourDismiss   = 30 * time.Second
	tenMinuteDismiss = 10 * time.Minute

	// oneHourArmWindow bounds how long after the marker crossing the
	// one-hour channel may still arm.
	oneHourArmWindow = time.Minute

	// adhanArmWindow bounds how long after the adhan instant the exact
	// channel may still arm.
	adhanArmWindow = 5 * time.Second

	// DefaultAdhanFallback clears the exact channel if the audio-finished
	// callback never arrives.
	DefaultAdhanFallback = 5 * time.Minute
)

// Overlay is the reminder banner currently presented on the sign.
type Overlay struct {
	Kind      ReminderKind `json:"kind"`
	Prayer    string       `json:"prayer"`
	Message   string       `json:"message"`
	PlayAudio bool         `json:"play_audio"`
	ShownAt   time.Time    `json:"shown_at"`
}

// channel is one reminder lane: idle until armed, then self-clearing at
// dismissAt so the same prayer can be reminded again tomorrow but never
// twice for the same occurrence.
type channel struct {
	lastArmed string
	dismissAt time.Time
}

func (c *channel) arm(prayer string, dismissAt time.Time) {
	c.lastArmed = prayer
	c.dismissAt = dismissAt
}

func (c *channel) expire(now time.Time) {
	if !c.dismissAt.IsZero() && !now.Before(c.dismissAt) {
		c.lastArmed = ""
		c.dismissAt = time.Time{}
	}
}

// Reminders drives the three reminder channels off the 1 Hz tick.
// It is not safe for concurrent use; the owning scheduler serializes access.
type Reminders struct {
	oneHour   channel
	tenMinute channel
	adhan     channel

	active   *Overlay
	lastNext *model.PrayerOccurrence
	crossed  *model.PrayerOccurrence

	adhanFallback time.Duration
	playAudio     func(prayer string)
}

// NewReminders builds the reminder engine. playAudio is invoked
// fire-and-forget when the exact-adhan channel arms; it may be nil.
func NewReminders(adhanFallback time.Duration, playAudio func(prayer string)) *Reminders {
	if adhanFallback <= 0 {
		adhanFallback = DefaultAdhanFallback
	}
	return &Reminders{adhanFallback: adhanFallback, playAudio: playAudio}
}

// Tick evaluates all three channels for one second of wall time. Channels
// are checked in priority order (one-hour, ten-minute, exact-adhan); the
// first channel to arm in a tick suppresses the later ones for that tick.
func (r *Reminders) Tick(res Resolution, now time.Time) {
	r.oneHour.expire(now)
	r.tenMinute.expire(now)
	r.adhan.expire(now)

	next := res.Next
	if next == nil {
		r.lastNext = nil
		r.crossed = nil
		return
	}
	// Once an occurrence passes, Resolve has already rolled next forward;
	// the crossing is remembered so the exact channel can still arm on a
	// later tick if a higher-priority channel suppressed it.
	if r.lastNext != nil && !r.lastNext.At.Equal(next.At) {
		r.crossed = r.lastNext
	}
	r.lastNext = next
	if r.crossed != nil && now.Sub(r.crossed.At) >= adhanArmWindow {
		r.crossed = nil
	}

	// One-hour channel: the marker crossed within the last minute.
	marker := next.At.Add(-time.Hour)
	sinceMarker := now.Sub(marker)
	if sinceMarker >= 0 && sinceMarker < oneHourArmWindow && r.oneHour.lastArmed != next.Name {
		// The marker must stay armed through the whole arm window or the
		// channel would re-present the same occurrence after clearing.
		dismiss := now.Add(oneHourDismiss)
		if end := marker.Add(oneHourArmWindow); end.After(dismiss) {
			dismiss = end
		}
		r.oneHour.arm(next.Name, dismiss)
		r.show(ReminderOneHour, next.Name, fmt.Sprintf("%s in 1 Hour!", next.Name), false, now)
		return
	}

	// Ten-minute channel: the occurrence is at most ten minutes away.
	until := next.At.Sub(now)
	if until > 0 && until <= tenMinuteDismiss && r.tenMinute.lastArmed != next.Name {
		r.tenMinute.arm(next.Name, now.Add(tenMinuteDismiss))
		r.show(ReminderTenMinute, next.Name, fmt.Sprintf("%s coming soon.", next.Name), false, now)
		return
	}

	// Exact-adhan channel: a crossing within the arm window, at most once
	// per occurrence, never for the weekly-only Jumuah slot.
	if r.crossed == nil {
		return
	}
	prayer := r.crossed.Name
	if now.Before(r.crossed.At) || prayer == model.PrayerJumuah || r.adhan.lastArmed == prayer {
		return
	}
	r.crossed = nil
	r.adhan.arm(prayer, now.Add(r.adhanFallback))
	r.show(ReminderAdhan, prayer, fmt.Sprintf("%s Adhan is now!", prayer), true, now)
	if r.playAudio != nil {
		r.playAudio(prayer)
	}
}

// Overlay returns the overlay to present, or nil once its 30 second display
// time has elapsed. The channels' own de-dup windows keep running
// underneath.
func (r *Reminders) Overlay(now time.Time) *Overlay {
	if r.active == nil {
		return nil
	}
	if now.Sub(r.active.ShownAt) >= OverlayDisplayTime {
		r.active = nil
		return nil
	}
	return r.active
}

// AudioFinished is the primary trigger that clears the exact-adhan channel
// when playback completes naturally; the fallback timer only covers a
// missing callback.
func (r *Reminders) AudioFinished() {
	r.adhan.lastArmed = ""
	r.adhan.dismissAt = time.Time{}
	if r.active != nil && r.active.Kind == ReminderAdhan {
		r.active = nil
	}
}

func (r *Reminders) show(kind ReminderKind, prayer, message string, audio bool, now time.Time) {
	r.active = &Overlay{
		Kind:      kind,
		Prayer:    prayer,
		Message:   message,
		PlayAudio: audio,
		ShownAt:   now,
	}
}
