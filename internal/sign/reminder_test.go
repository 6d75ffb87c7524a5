package sign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

// tickThrough evaluates the reminder engine once per second over [from, to].
func tickThrough(r *Reminders, schedule map[string]string, from, to time.Time) {
	for now := from; !now.After(to); now = now.Add(time.Second) {
		r.Tick(Resolve(schedule, now), now)
	}
}

func TestAdhanFiresExactlyOncePerOccurrence(t *testing.T) {
	var played []string
	r := NewReminders(0, func(prayer string) { played = append(played, prayer) })

	schedule := map[string]string{model.PrayerAsr: "15:45"}
	tickThrough(r, schedule, at(15, 44, 55), at(15, 45, 10))

	assert.Equal(t, []string{model.PrayerAsr}, played)

	overlay := r.Overlay(at(15, 45, 10))
	require.NotNil(t, overlay)
	assert.Equal(t, ReminderAdhan, overlay.Kind)
	assert.Equal(t, "Asr Adhan is now!", overlay.Message)
	assert.True(t, overlay.PlayAudio)
}

func TestAdhanSkipsWhenCrossingMissedByMoreThanWindow(t *testing.T) {
	var played []string
	r := NewReminders(0, func(prayer string) { played = append(played, prayer) })
	schedule := map[string]string{model.PrayerAsr: "15:45"}

	// tick before the crossing, then next tick 10s after: outside the arm window
	r.Tick(Resolve(schedule, at(15, 44, 59)), at(15, 44, 59))
	r.Tick(Resolve(schedule, at(15, 45, 10)), at(15, 45, 10))

	assert.Empty(t, played)
}

func TestTenMinuteChannelFiresOnce(t *testing.T) {
	r := NewReminders(0, nil)
	schedule := map[string]string{model.PrayerIsha: "19:30"}

	tickThrough(r, schedule, at(19, 19, 55), at(19, 20, 30))

	overlay := r.Overlay(at(19, 20, 5))
	require.NotNil(t, overlay)
	assert.Equal(t, ReminderTenMinute, overlay.Kind)
	assert.Equal(t, "Isha coming soon.", overlay.Message)
	assert.False(t, overlay.PlayAudio)

	// the channel stays armed for the full ten minutes, so ticking further
	// into the window must not re-present a dismissed overlay
	shownAt := overlay.ShownAt
	tickThrough(r, schedule, at(19, 21, 0), at(19, 22, 0))
	overlay = r.Overlay(at(19, 22, 0))
	assert.Nil(t, overlay, "overlay auto-dismissed after 30s and must not re-arm")
	_ = shownAt
}

func TestOneHourChannel(t *testing.T) {
	r := NewReminders(0, nil)
	schedule := map[string]string{model.PrayerMaghrib: "18:02"}

	// marker is 17:02; crossing it arms the channel
	r.Tick(Resolve(schedule, at(17, 2, 0)), at(17, 2, 0))
	overlay := r.Overlay(at(17, 2, 0))
	require.NotNil(t, overlay)
	assert.Equal(t, ReminderOneHour, overlay.Kind)
	assert.Equal(t, "Maghrib in 1 Hour!", overlay.Message)
}

func TestOneHourFiresOncePerOccurrence(t *testing.T) {
	r := NewReminders(0, nil)
	schedule := map[string]string{model.PrayerMaghrib: "18:02"}

	// walk the whole arm window and past it, collecting distinct presentations
	shown := map[time.Time]bool{}
	for now := at(17, 2, 0); !now.After(at(17, 3, 10)); now = now.Add(time.Second) {
		r.Tick(Resolve(schedule, now), now)
		if o := r.Overlay(now); o != nil && o.Kind == ReminderOneHour {
			shown[o.ShownAt] = true
		}
	}
	assert.Len(t, shown, 1, "one occurrence must present the one-hour overlay once")
}

func TestOverlayAutoDismissAfter30Seconds(t *testing.T) {
	r := NewReminders(0, nil)
	schedule := map[string]string{model.PrayerMaghrib: "18:02"}

	r.Tick(Resolve(schedule, at(17, 2, 0)), at(17, 2, 0))
	assert.NotNil(t, r.Overlay(at(17, 2, 29)))
	assert.Nil(t, r.Overlay(at(17, 2, 30)))
}

func TestChannelPriorityWithinOneTick(t *testing.T) {
	var played []string
	r := NewReminders(0, func(prayer string) { played = append(played, prayer) })
	// Maghrib and Isha close together: at the Maghrib crossing, next rolls
	// to Isha which is already inside the ten-minute window. Ten-minute
	// outranks exact-adhan on that tick; the exact channel arms on the
	// following tick instead of being lost.
	schedule := map[string]string{
		model.PrayerMaghrib: "18:02",
		model.PrayerIsha:    "18:10",
	}

	r.Tick(Resolve(schedule, at(18, 1, 59)), at(18, 1, 59))
	crossing := at(18, 2, 0)
	r.Tick(Resolve(schedule, crossing), crossing)
	overlay := r.Overlay(crossing)
	require.NotNil(t, overlay)
	assert.Equal(t, ReminderTenMinute, overlay.Kind)
	assert.Empty(t, played)

	next := at(18, 2, 1)
	r.Tick(Resolve(schedule, next), next)
	overlay = r.Overlay(next)
	require.NotNil(t, overlay)
	assert.Equal(t, ReminderAdhan, overlay.Kind)
	assert.Equal(t, []string{model.PrayerMaghrib}, played)
}

func TestAudioFinishedClearsAdhanChannel(t *testing.T) {
	r := NewReminders(time.Hour, nil)
	schedule := map[string]string{model.PrayerAsr: "15:45"}

	tickThrough(r, schedule, at(15, 44, 58), at(15, 45, 2))
	overlay := r.Overlay(at(15, 45, 2))
	require.NotNil(t, overlay)
	require.Equal(t, ReminderAdhan, overlay.Kind)

	r.AudioFinished()
	assert.Nil(t, r.Overlay(at(15, 45, 3)))
	assert.Empty(t, r.adhan.lastArmed)
}

func TestAdhanFallbackClearsMarker(t *testing.T) {
	r := NewReminders(DefaultAdhanFallback, nil)
	schedule := map[string]string{model.PrayerAsr: "15:45"}

	tickThrough(r, schedule, at(15, 44, 58), at(15, 45, 2))
	require.NotEmpty(t, r.adhan.lastArmed)

	// past the fallback window the marker self-clears
	late := at(15, 50, 3)
	r.Tick(Resolve(schedule, late), late)
	assert.Empty(t, r.adhan.lastArmed)
}

func TestNoRemindersWithoutSchedule(t *testing.T) {
	r := NewReminders(0, nil)
	r.Tick(Resolve(nil, at(12, 0, 0)), at(12, 0, 0))
	assert.Nil(t, r.Overlay(at(12, 0, 0)))
}
