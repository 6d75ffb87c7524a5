package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/mail"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

type fakeStore struct {
	db.Store

	subscribers map[string]bool
}

func (f *fakeStore) CreateSubscriber(email string, name *string) (model.Subscriber, error) {
	if f.subscribers == nil {
		f.subscribers = map[string]bool{}
	}
	f.subscribers[email] = true
	return model.Subscriber{ID: 1, Email: email, Name: name}, nil
}

func (f *fakeStore) DeleteSubscriberByEmail(email string) error {
	delete(f.subscribers, email)
	return nil
}

type fakeSource struct {
	schedule model.PrayerSchedule
	fail     bool
}

func (f *fakeSource) PrayerSchedule(ctx context.Context, day time.Time) (model.PrayerSchedule, error) {
	if f.fail {
		return model.PrayerSchedule{}, errors.New("upstream down")
	}
	return f.schedule, nil
}
func (f *fakeSource) SignSettings(ctx context.Context) (model.SignSettings, error) {
	return model.SignSettings{}, nil
}
func (f *fakeSource) DowntimeRules(ctx context.Context) ([]model.DowntimeRule, error) {
	return nil, nil
}
func (f *fakeSource) Announcements(ctx context.Context, today time.Time, limit int) ([]model.Announcement, error) {
	return nil, nil
}
func (f *fakeSource) UpcomingEvents(ctx context.Context, now time.Time) ([]model.CalendarEvent, error) {
	return nil, nil
}

type recordingMailer struct {
	sent []*mail.Message
}

func (m *recordingMailer) SendMessages(messages ...*mail.Message) {
	m.sent = append(m.sent, messages...)
}

func newPublicRouter(store db.Store, src *fakeSource, mailer mail.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/public"},
		PublicModule(store, src, mailer, "office@example.org", time.UTC))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetPrayerTimes(t *testing.T) {
	src := &fakeSource{schedule: model.PrayerSchedule{
		AdhanTimes: map[string]string{"Fajr": "05:12"},
		Hijri:      "10 Rabi al-Awwal 1447",
	}}
	r := newPublicRouter(&fakeStore{}, src, &recordingMailer{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/prayer-times", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var got model.PrayerSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "05:12", got.AdhanTimes["Fajr"])
	assert.Equal(t, "10 Rabi al-Awwal 1447", got.Hijri)
}

func TestGetPrayerTimesUpstreamFailure(t *testing.T) {
	r := newPublicRouter(&fakeStore{}, &fakeSource{fail: true}, &recordingMailer{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/public/prayer-times", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContactFormSendsToOffice(t *testing.T) {
	mailer := &recordingMailer{}
	r := newPublicRouter(&fakeStore{}, &fakeSource{}, mailer)

	w := postJSON(t, r, "/api/public/contact", gin.H{
		"name":    "Aisha",
		"email":   "aisha@example.org",
		"message": "Salaam, when is the open house?",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"office@example.org"}, mailer.sent[0].To)
	assert.Equal(t, "aisha@example.org", mailer.sent[0].ReplyTo)
}

func TestContactFormValidation(t *testing.T) {
	mailer := &recordingMailer{}
	r := newPublicRouter(&fakeStore{}, &fakeSource{}, mailer)

	w := postJSON(t, r, "/api/public/contact", gin.H{"name": "Aisha"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, mailer.sent)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	store := &fakeStore{}
	r := newPublicRouter(store, &fakeSource{}, &recordingMailer{})

	w := postJSON(t, r, "/api/public/subscribe", gin.H{"email": "sister@example.org"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, store.subscribers["sister@example.org"])

	w = postJSON(t, r, "/api/public/unsubscribe", gin.H{"email": "sister@example.org"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, store.subscribers["sister@example.org"])
}
