package sign

import (
	"fmt"
	"strings"
	"time"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

// ViewKind discriminates the sign's view variants.
type ViewKind string

const (
	ViewPrayerTimes    ViewKind = "prayer_times"
	ViewAnnouncement   ViewKind = "announcement"
	ViewUpcomingEvents ViewKind = "upcoming_events"
	ViewCommunityQR    ViewKind = "community_qr"
)

// View is one slide of the sign carousel. Only announcement views carry a
// payload; the other kinds render from data owned elsewhere.
type View struct {
	Kind         ViewKind            `json:"kind"`
	Announcement *model.Announcement `json:"announcement,omitempty"`
}

// AssembleViews builds the ordered view list. During downtime the carousel
// collapses to the prayer times view alone. The events view is included
// only when at least one upcoming event exists, and at most
// settings.MaxAnnouncements announcement views are appended in the order
// given (callers list announcements posted_at descending).
func AssembleViews(
	downtime bool,
	settings model.SignSettings,
	announcements []model.Announcement,
	events []model.CalendarEvent,
) []View {
	if downtime {
		return []View{{Kind: ViewPrayerTimes}}
	}

	views := []View{{Kind: ViewPrayerTimes}}
	if len(events) > 0 {
		views = append(views, View{Kind: ViewUpcomingEvents})
	}
	views = append(views, View{Kind: ViewCommunityQR})

	max := settings.MaxAnnouncements
	if max < 0 {
		max = 0
	}
	for i := range announcements {
		if i >= max {
			break
		}
		a := announcements[i]
		views = append(views, View{Kind: ViewAnnouncement, Announcement: &a})
	}
	return views
}

// RotationInterval applies the configured carousel period with the floor
// re-applied at read time as defense against stale rows.
func RotationInterval(settings model.SignSettings) time.Duration {
	secs := settings.RotationIntervalSeconds
	if secs == 0 {
		secs = model.DefaultRotationInterval
	}
	if secs < model.MinRotationInterval {
		secs = model.MinRotationInterval
	}
	return time.Duration(secs) * time.Second
}

// Rotation owns carousel ordering and position, nothing else.
type Rotation struct {
	views     []View
	signature string
	index     int
}

// SetViews replaces the view list and reports whether it changed. The index
// resets to 0 whenever the set of views changes, so it can never point past
// the end of a shrunk list.
func (r *Rotation) SetViews(views []View) bool {
	sig := viewSignature(views)
	if sig == r.signature {
		return false
	}
	r.views = views
	r.signature = sig
	r.index = 0
	return true
}

// Advance moves to the next view, wrapping.
func (r *Rotation) Advance() {
	if len(r.views) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.views)
}

// Current returns the active view, or a zero View when the list is empty.
func (r *Rotation) Current() View {
	if len(r.views) == 0 {
		return View{}
	}
	return r.views[r.index]
}

func (r *Rotation) Views() []View { return r.views }
func (r *Rotation) Index() int    { return r.index }

func viewSignature(views []View) string {
	var b strings.Builder
	for _, v := range views {
		b.WriteString(string(v.Kind))
		if v.Announcement != nil {
			fmt.Fprintf(&b, ":%d", v.Announcement.ID)
		}
		b.WriteByte('|')
	}
	return b.String()
}
