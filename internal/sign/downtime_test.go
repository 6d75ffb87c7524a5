package sign

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

var everyDay = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func timeRangeRule(start, end string, days ...string) model.DowntimeRule {
	if len(days) == 0 {
		days = everyDay
	}
	return model.DowntimeRule{
		ID:         1,
		RuleType:   model.DowntimeTimeRange,
		DaysOfWeek: pq.StringArray(days),
		IsActive:   true,
		StartTime:  strptr(start),
		EndTime:    strptr(end),
	}
}

func iqamahRule(prayer string, before, after int) model.DowntimeRule {
	return model.DowntimeRule{
		ID:                  2,
		RuleType:            model.DowntimePrayerIqamah,
		DaysOfWeek:          pq.StringArray(everyDay),
		IsActive:            true,
		PrayerName:          strptr(prayer),
		MinutesBeforeIqamah: intptr(before),
		MinutesAfterIqamah:  intptr(after),
	}
}

func TestDowntimeTimeRange(t *testing.T) {
	rules := []model.DowntimeRule{timeRangeRule("09:00", "11:00")}

	assert.True(t, IsDowntime(rules, nil, at(9, 0, 0)))
	assert.True(t, IsDowntime(rules, nil, at(10, 30, 0)))
	assert.True(t, IsDowntime(rules, nil, at(11, 0, 0)))
	assert.False(t, IsDowntime(rules, nil, at(8, 59, 59)))
	assert.False(t, IsDowntime(rules, nil, at(11, 0, 1)))
}

func TestDowntimeOvernightWraparound(t *testing.T) {
	// 2025-03-03 is a Monday
	rules := []model.DowntimeRule{timeRangeRule("23:00", "02:00", "Monday")}

	assert.True(t, IsDowntime(rules, nil, at(23, 30, 0)))

	tuesday := at(1, 30, 0).AddDate(0, 0, 1)
	assert.True(t, IsDowntime(rules, nil, tuesday))

	late := at(3, 0, 0).AddDate(0, 0, 1)
	assert.False(t, IsDowntime(rules, nil, late))

	// a Tuesday-only rule does not cover Monday night
	tuesdayOnly := []model.DowntimeRule{timeRangeRule("23:00", "02:00", "Tuesday")}
	assert.False(t, IsDowntime(tuesdayOnly, nil, at(23, 30, 0)))
}

func TestDowntimePrayerIqamahWindow(t *testing.T) {
	rules := []model.DowntimeRule{iqamahRule(model.PrayerDhuhr, 10, 5)}
	iqamah := map[string]string{model.PrayerDhuhr: "13:00"}

	assert.True(t, IsDowntime(rules, iqamah, at(12, 51, 0)))
	assert.True(t, IsDowntime(rules, iqamah, at(13, 0, 0)))
	assert.True(t, IsDowntime(rules, iqamah, at(13, 5, 0)))
	assert.False(t, IsDowntime(rules, iqamah, at(12, 49, 0)))
	assert.False(t, IsDowntime(rules, iqamah, at(13, 6, 0)))
}

func TestDowntimeIqamahMissingOrInvalidTime(t *testing.T) {
	rules := []model.DowntimeRule{iqamahRule(model.PrayerFajr, 15, 15)}

	assert.False(t, IsDowntime(rules, nil, at(6, 0, 0)))
	assert.False(t, IsDowntime(rules, map[string]string{model.PrayerFajr: "N/A"}, at(6, 0, 0)))
}

func TestDowntimeInactiveRuleIgnored(t *testing.T) {
	rule := timeRangeRule("00:00", "23:59")
	rule.IsActive = false
	assert.False(t, IsDowntime([]model.DowntimeRule{rule}, nil, at(12, 0, 0)))
}

func TestDowntimeDayOfWeekGating(t *testing.T) {
	rules := []model.DowntimeRule{timeRangeRule("09:00", "11:00", "Friday")}
	// 2025-03-03 is a Monday
	assert.False(t, IsDowntime(rules, nil, at(10, 0, 0)))

	friday := at(10, 0, 0).AddDate(0, 0, 4)
	assert.True(t, IsDowntime(rules, nil, friday))
}

func TestDowntimeAnyMatchWins(t *testing.T) {
	rules := []model.DowntimeRule{
		timeRangeRule("01:00", "02:00"),
		iqamahRule(model.PrayerAsr, 5, 5),
	}
	iqamah := map[string]string{model.PrayerAsr: "16:00"}
	assert.True(t, IsDowntime(rules, iqamah, at(16, 2, 0)))
	assert.False(t, IsDowntime(rules, iqamah, at(12, 0, 0)))
}
