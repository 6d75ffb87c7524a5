package sign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

var chicago = time.FixedZone("CST", -6*60*60)

func fullSchedule() map[string]string {
	return map[string]string{
		model.PrayerFajr:    "05:30",
		model.PrayerDhuhr:   "12:15",
		model.PrayerAsr:     "15:45",
		model.PrayerMaghrib: "18:02",
		model.PrayerIsha:    "19:30",
	}
}

func at(hour, min, sec int) time.Time {
	return time.Date(2025, time.March, 3, hour, min, sec, 0, chicago)
}

func TestResolveNextIsStrictlyInTheFuture(t *testing.T) {
	now := at(12, 15, 0) // exactly Dhuhr
	res := Resolve(fullSchedule(), now)

	require.NotNil(t, res.Next)
	assert.Equal(t, model.PrayerAsr, res.Next.Name)
	assert.True(t, res.Next.At.After(now))
}

func TestResolvePicksNearestUpcoming(t *testing.T) {
	res := Resolve(fullSchedule(), at(13, 0, 0))
	require.NotNil(t, res.Next)
	assert.Equal(t, model.PrayerAsr, res.Next.Name)
	assert.Equal(t, "02h 45m 00s", res.Next.Countdown)
	assert.Equal(t, "3:45 PM", res.Next.Display)
}

func TestResolveRollsOverToTomorrowsFajr(t *testing.T) {
	now := at(22, 0, 0) // after Isha
	res := Resolve(fullSchedule(), now)

	require.NotNil(t, res.Next)
	assert.Equal(t, model.PrayerFajr, res.Next.Name)
	assert.Equal(t, now.Day()+1, res.Next.At.Day())
	assert.Equal(t, "07h 30m 00s", res.Next.Countdown)
}

func TestResolveCountdownDecreasesTickOverTick(t *testing.T) {
	prev := ""
	for sec := 0; sec < 5; sec++ {
		res := Resolve(fullSchedule(), at(15, 0, sec))
		require.NotNil(t, res.Next)
		if prev != "" {
			assert.Less(t, res.Next.Countdown, prev)
		}
		prev = res.Next.Countdown
	}
}

func TestResolveOneHourBefore(t *testing.T) {
	res := Resolve(fullSchedule(), at(14, 0, 0))
	require.NotNil(t, res.Next)
	require.NotNil(t, res.OneHourBefore)
	assert.Equal(t, time.Hour, res.Next.At.Sub(res.OneHourBefore.At))

	// inside the last hour the marker has passed
	res = Resolve(fullSchedule(), at(15, 0, 0))
	require.NotNil(t, res.Next)
	assert.Nil(t, res.OneHourBefore)
}

func TestResolveSkipsInvalidTimes(t *testing.T) {
	schedule := map[string]string{
		model.PrayerFajr:  "N/A",
		model.PrayerDhuhr: "noonish",
		model.PrayerAsr:   "15:45",
		model.PrayerIsha:  "25:00",
	}
	res := Resolve(schedule, at(9, 0, 0))
	require.NotNil(t, res.Next)
	assert.Equal(t, model.PrayerAsr, res.Next.Name)
}

func TestResolveEmptySchedule(t *testing.T) {
	res := Resolve(nil, at(9, 0, 0))
	assert.Nil(t, res.Next)
	assert.Nil(t, res.OneHourBefore)

	res = Resolve(map[string]string{model.PrayerFajr: "N/A"}, at(9, 0, 0))
	assert.Nil(t, res.Next)
}

func TestParseClockStrictness(t *testing.T) {
	cases := map[string]bool{
		"00:00": true,
		"23:59": true,
		"05:30": true,
		"5:30":  false,
		"24:00": false,
		"12:60": false,
		"12:5":  false,
		"":      false,
		"N/A":   false,
	}
	for in, ok := range cases {
		_, _, got := ParseClock(in)
		assert.Equal(t, ok, got, "ParseClock(%q)", in)
	}
}

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "00h 00m 00s", FormatCountdown(0))
	assert.Equal(t, "00h 00m 59s", FormatCountdown(59*time.Second))
	assert.Equal(t, "02h 45m 00s", FormatCountdown(2*time.Hour+45*time.Minute))
	assert.Equal(t, "26h 00m 01s", FormatCountdown(26*time.Hour+time.Second))
	assert.Equal(t, "00h 00m 00s", FormatCountdown(-time.Minute))
}
