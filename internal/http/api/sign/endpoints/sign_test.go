package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
	"github.com/isevvweb/ISE-Website-sub000/internal/sign"
)

type fakeStore struct {
	db.Store

	paired map[string]bool
}

func (f *fakeStore) IsScreenPairedByDeviceID(deviceID string) (bool, error) {
	return f.paired[deviceID], nil
}

type staticSource struct{}

func (staticSource) PrayerSchedule(ctx context.Context, day time.Time) (model.PrayerSchedule, error) {
	return model.PrayerSchedule{}, nil
}
func (staticSource) SignSettings(ctx context.Context) (model.SignSettings, error) {
	return model.SignSettings{}, nil
}
func (staticSource) DowntimeRules(ctx context.Context) ([]model.DowntimeRule, error) {
	return nil, nil
}
func (staticSource) Announcements(ctx context.Context, today time.Time, limit int) ([]model.Announcement, error) {
	return nil, nil
}
func (staticSource) UpcomingEvents(ctx context.Context, now time.Time) ([]model.CalendarEvent, error) {
	return nil, nil
}

func newSignRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	scheduler := sign.NewScheduler(staticSource{}, time.UTC, 5*time.Minute, nil)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/sign"}, SignModule(store, scheduler))
	return r
}

func TestGetStateRequiresDeviceID(t *testing.T) {
	r := newSignRouter(&fakeStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sign/state", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStateRejectsUnpairedDevice(t *testing.T) {
	r := newSignRouter(&fakeStore{paired: map[string]bool{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sign/state?device_id=tv-1", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetStateServesPairedDevice(t *testing.T) {
	r := newSignRouter(&fakeStore{paired: map[string]bool{"tv-1": true}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sign/state?device_id=tv-1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var state sign.State
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.False(t, state.Downtime)
}

func TestAudioDoneRequiresPairedDevice(t *testing.T) {
	r := newSignRouter(&fakeStore{paired: map[string]bool{"tv-1": true}})

	body, _ := json.Marshal(gin.H{"device_id": "rogue"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sign/audio_done", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	body, _ = json.Marshal(gin.H{"device_id": "tv-1"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/sign/audio_done", bytes.NewReader(body)))
	assert.Equal(t, http.StatusOK, w.Code)
}
