package sign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

func announcements(n int) []model.Announcement {
	out := make([]model.Announcement, n)
	for i := range out {
		out[i] = model.Announcement{ID: i + 1, Title: "a", IsActive: true}
	}
	return out
}

func TestAssembleViewsDowntimeCollapsesToPrayerTimes(t *testing.T) {
	views := AssembleViews(true, model.SignSettings{MaxAnnouncements: 3},
		announcements(3), []model.CalendarEvent{{ID: "e1"}})

	require.Len(t, views, 1)
	assert.Equal(t, ViewPrayerTimes, views[0].Kind)
}

func TestAssembleViewsHonorsMaxAnnouncements(t *testing.T) {
	views := AssembleViews(false, model.SignSettings{MaxAnnouncements: 2},
		announcements(5), nil)

	// prayer times, community QR, then exactly two announcements in order
	require.Len(t, views, 4)
	assert.Equal(t, ViewPrayerTimes, views[0].Kind)
	assert.Equal(t, ViewCommunityQR, views[1].Kind)
	assert.Equal(t, 1, views[2].Announcement.ID)
	assert.Equal(t, 2, views[3].Announcement.ID)
}

func TestAssembleViewsZeroAnnouncements(t *testing.T) {
	views := AssembleViews(false, model.SignSettings{MaxAnnouncements: 0},
		announcements(5), nil)
	for _, v := range views {
		assert.NotEqual(t, ViewAnnouncement, v.Kind)
	}
}

func TestAssembleViewsEventsOnlyWhenPresent(t *testing.T) {
	without := AssembleViews(false, model.SignSettings{}, nil, nil)
	for _, v := range without {
		assert.NotEqual(t, ViewUpcomingEvents, v.Kind)
	}

	with := AssembleViews(false, model.SignSettings{}, nil,
		[]model.CalendarEvent{{ID: "e1"}})
	assert.Equal(t, ViewUpcomingEvents, with[1].Kind)
}

func TestRotationAdvanceWraps(t *testing.T) {
	var r Rotation
	r.SetViews(AssembleViews(false, model.SignSettings{MaxAnnouncements: 1}, announcements(1), nil))

	require.Equal(t, 0, r.Index())
	n := len(r.Views())
	for i := 1; i <= n; i++ {
		r.Advance()
		assert.Equal(t, i%n, r.Index())
	}
}

func TestRotationIndexResetsWhenViewSetChanges(t *testing.T) {
	var r Rotation
	r.SetViews(AssembleViews(false, model.SignSettings{MaxAnnouncements: 5}, announcements(5), nil))
	r.Advance()
	r.Advance()
	require.Equal(t, 2, r.Index())

	// an announcement expires mid-rotation, shrinking the list; the change
	// is reported so the owner can restart its rotation timer
	changed := r.SetViews(AssembleViews(false, model.SignSettings{MaxAnnouncements: 5}, announcements(4), nil))
	assert.True(t, changed)
	assert.Equal(t, 0, r.Index())

	// re-applying an identical set keeps position and reports no change
	r.Advance()
	changed = r.SetViews(AssembleViews(false, model.SignSettings{MaxAnnouncements: 5}, announcements(4), nil))
	assert.False(t, changed)
	assert.Equal(t, 1, r.Index())
}

func TestRotationIntervalFloorAndDefault(t *testing.T) {
	assert.Equal(t, 15*time.Second, RotationInterval(model.SignSettings{}))
	assert.Equal(t, 5*time.Second, RotationInterval(model.SignSettings{RotationIntervalSeconds: 3}))
	assert.Equal(t, 45*time.Second, RotationInterval(model.SignSettings{RotationIntervalSeconds: 45}))
}

func TestRotationEmptyViews(t *testing.T) {
	var r Rotation
	r.Advance()
	assert.Equal(t, View{}, r.Current())
}
