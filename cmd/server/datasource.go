package main

import (
	"context"
	"time"

	"github.com/isevvweb/ISE-Website-sub000/internal/calendar"
	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
	"github.com/isevvweb/ISE-Website-sub000/internal/prayerapi"
	"github.com/isevvweb/ISE-Website-sub000/internal/sign"
)

// signDataSource backs the scheduler and the public endpoints with the
// database, the Aladhan client, and the calendar feeds.
type signDataSource struct {
	store    db.Store
	prayers  *prayerapi.Client
	calendar *calendar.Client
}

var _ sign.DataSource = (*signDataSource)(nil)

func newSignDataSource(store db.Store, prayers *prayerapi.Client, cal *calendar.Client) *signDataSource {
	return &signDataSource{store: store, prayers: prayers, calendar: cal}
}

func (s *signDataSource) PrayerSchedule(ctx context.Context, day time.Time) (model.PrayerSchedule, error) {
	iqamah, err := s.store.GetIqamahMap()
	if err != nil {
		// adhan times alone are still useful on the sign
		iqamah = map[string]string{}
	}
	return s.prayers.Schedule(ctx, day, iqamah)
}

func (s *signDataSource) SignSettings(ctx context.Context) (model.SignSettings, error) {
	return s.store.GetSignSettings()
}

func (s *signDataSource) DowntimeRules(ctx context.Context) ([]model.DowntimeRule, error) {
	return s.store.ListDowntimeRules(true)
}

func (s *signDataSource) Announcements(ctx context.Context, today time.Time, limit int) ([]model.Announcement, error) {
	return s.store.ListEligibleAnnouncements(today, limit)
}

func (s *signDataSource) UpcomingEvents(ctx context.Context, now time.Time) ([]model.CalendarEvent, error) {
	return s.calendar.UpcomingEvents(ctx, now)
}
