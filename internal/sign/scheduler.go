package sign

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

// DataSource supplies the scheduler's cached snapshots. Each method may hit
// the database or an external API; the scheduler tolerates brief staleness
// and a failing source only degrades its own section.
type DataSource interface {
	PrayerSchedule(ctx context.Context, day time.Time) (model.PrayerSchedule, error)
	SignSettings(ctx context.Context) (model.SignSettings, error)
	DowntimeRules(ctx context.Context) ([]model.DowntimeRule, error)
	Announcements(ctx context.Context, today time.Time, limit int) ([]model.Announcement, error)
	UpcomingEvents(ctx context.Context, now time.Time) ([]model.CalendarEvent, error)
}

// State is the full sign snapshot served to kiosks.
type State struct {
	Schedule      model.PrayerSchedule    `json:"schedule"`
	Next          *model.PrayerOccurrence `json:"next,omitempty"`
	OneHourBefore *model.PrayerOccurrence `json:"one_hour_before,omitempty"`
	Downtime      bool                    `json:"downtime"`
	Views         []View                  `json:"views"`
	CurrentView   int                     `json:"current_view"`
	Overlay       *Overlay                `json:"overlay,omitempty"`
	Settings      model.SignSettings      `json:"settings"`
	Events        []model.CalendarEvent   `json:"events"`
}

// Scheduler holds the latest data snapshots and recomputes derived sign
// state on every tick and on every snapshot change.
type Scheduler struct {
	mu  sync.Mutex
	src DataSource
	loc *time.Location
	now func() time.Time

	schedule      model.PrayerSchedule
	settings      model.SignSettings
	rules         []model.DowntimeRule
	announcements []model.Announcement
	events        []model.CalendarEvent

	resolution Resolution
	downtime   bool
	reminders  *Reminders
	rotation   Rotation

	overlayVisible bool
	viewsChanged   bool

	snapshotEvery time.Duration
	prayerEvery   time.Duration
	eventsEvery   time.Duration
}

// NewScheduler wires the sign engine. playAudio is called when the exact
// adhan channel arms (e.g. to push a play command to kiosks); it may be nil.
func NewScheduler(src DataSource, loc *time.Location, adhanFallback time.Duration, playAudio func(prayer string)) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		src:           src,
		loc:           loc,
		now:           func() time.Time { return time.Now() },
		settings:      model.SignSettings{RotationIntervalSeconds: model.DefaultRotationInterval},
		reminders:     NewReminders(adhanFallback, playAudio),
		snapshotEvery: 5 * time.Minute,
		prayerEvery:   time.Hour,
		eventsEvery:   30 * time.Minute,
	}
}

// Run drives the 1 Hz tick, the rotation timer and the background polls
// until ctx is cancelled. The rotation timer is torn down and recreated
// whenever the configured interval or the view set changes, preventing
// stale-interval drift and partial periods against a replaced carousel.
func (s *Scheduler) Run(ctx context.Context) {
	s.RefreshAll(ctx)

	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	snapshots := time.NewTicker(s.snapshotEvery)
	defer snapshots.Stop()
	prayers := time.NewTicker(s.prayerEvery)
	defer prayers.Stop()
	events := time.NewTicker(s.eventsEvery)
	defer events.Stop()

	interval := s.rotationInterval()
	rotate := time.NewTimer(interval)
	defer rotate.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("sign scheduler stopped")
			return
		case <-tick.C:
			s.tick(s.now())
			if next := s.rotationInterval(); next != interval {
				interval = next
				resetTimer(rotate, interval)
			}
			if s.overlayJustDismissed() || s.viewsJustChanged() {
				// resume rotation with a fresh timer
				resetTimer(rotate, interval)
			}
		case <-rotate.C:
			s.advance()
			rotate.Reset(interval)
		case <-snapshots.C:
			s.refreshSnapshots(ctx)
		case <-prayers.C:
			s.refreshPrayerSchedule(ctx)
		case <-events.C:
			s.refreshEvents(ctx)
		}
	}
}

// RefreshAll reloads every snapshot at once, used at startup and when an
// admin mutation invalidates cached content.
func (s *Scheduler) RefreshAll(ctx context.Context) {
	s.refreshPrayerSchedule(ctx)
	s.refreshEvents(ctx)
	s.refreshSnapshots(ctx)
	s.tick(s.now())
}

// AudioFinished clears the exact-adhan overlay when a kiosk reports natural
// playback completion.
func (s *Scheduler) AudioFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders.AudioFinished()
}

// State returns the current sign snapshot for the kiosk endpoint.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Schedule:      s.schedule,
		Next:          s.resolution.Next,
		OneHourBefore: s.resolution.OneHourBefore,
		Downtime:      s.downtime,
		Views:         s.rotation.Views(),
		CurrentView:   s.rotation.Index(),
		Overlay:       s.reminders.Overlay(s.now()),
		Settings:      s.settings,
		Events:        s.events,
	}
}

// tick recomputes all derived state for one instant.
func (s *Scheduler) tick(now time.Time) {
	now = now.In(s.loc)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resolution = Resolve(s.schedule.AdhanTimes, now)
	s.reminders.Tick(s.resolution, now)
	s.downtime = IsDowntime(s.rules, s.schedule.IqamahTimes, now)
	if s.rotation.SetViews(AssembleViews(s.downtime, s.settings, s.announcements, s.events)) {
		s.viewsChanged = true
	}
}

func (s *Scheduler) advance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	// rotation is suspended entirely while a reminder overlay is showing
	if s.reminders.Overlay(s.now()) != nil {
		return
	}
	s.rotation.Advance()
}

func (s *Scheduler) rotationInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RotationInterval(s.settings)
}

// viewsJustChanged reports a view-set replacement exactly once, so the
// rotation timer restarts with a full period for the new first view.
func (s *Scheduler) viewsJustChanged() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.viewsChanged
	s.viewsChanged = false
	return changed
}

// overlayJustDismissed reports the visible->hidden transition exactly once.
func (s *Scheduler) overlayJustDismissed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	visible := s.reminders.Overlay(s.now()) != nil
	dismissed := s.overlayVisible && !visible
	s.overlayVisible = visible
	return dismissed
}

func (s *Scheduler) refreshPrayerSchedule(ctx context.Context) {
	day := s.now().In(s.loc)
	schedule, err := s.src.PrayerSchedule(ctx, day)
	if err != nil {
		log.Warn().Err(err).Msg("prayer schedule refresh failed, keeping last snapshot")
		return
	}
	s.mu.Lock()
	s.schedule = schedule
	s.mu.Unlock()
}

func (s *Scheduler) refreshEvents(ctx context.Context) {
	events, err := s.src.UpcomingEvents(ctx, s.now().In(s.loc))
	if err != nil {
		log.Warn().Err(err).Msg("calendar refresh failed, keeping last snapshot")
		return
	}
	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
}

func (s *Scheduler) refreshSnapshots(ctx context.Context) {
	now := s.now().In(s.loc)

	settings, err := s.src.SignSettings(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("sign settings refresh failed, keeping last snapshot")
	} else {
		s.mu.Lock()
		s.settings = settings
		s.mu.Unlock()
	}

	rules, err := s.src.DowntimeRules(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("downtime rules refresh failed, keeping last snapshot")
	} else {
		s.mu.Lock()
		s.rules = rules
		s.mu.Unlock()
	}

	limit := s.maxAnnouncements()
	announcements, err := s.src.Announcements(ctx, now, limit)
	if err != nil {
		log.Warn().Err(err).Msg("announcements refresh failed, keeping last snapshot")
	} else {
		s.mu.Lock()
		s.announcements = announcements
		s.mu.Unlock()
	}
}

func (s *Scheduler) maxAnnouncements() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.MaxAnnouncements
}

func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}
