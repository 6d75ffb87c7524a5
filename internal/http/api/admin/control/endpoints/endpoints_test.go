package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isevvweb/ISE-Website-sub000/internal/db"
	"github.com/isevvweb/ISE-Website-sub000/internal/http/api"
	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

// fakeStore overrides only the methods a test needs; calling anything
// else panics through the embedded nil interface.
type fakeStore struct {
	db.Store

	iqamah   map[string]string
	settings model.SignSettings
	rules    []model.DowntimeRule
	nextID   int
}

func (f *fakeStore) UpsertIqamahTime(prayerName, iqamahTime string) error {
	if f.iqamah == nil {
		f.iqamah = map[string]string{}
	}
	f.iqamah[prayerName] = iqamahTime
	return nil
}

func (f *fakeStore) ListIqamahTimes() ([]model.IqamahTime, error) {
	out := make([]model.IqamahTime, 0, len(f.iqamah))
	for name, t := range f.iqamah {
		out = append(out, model.IqamahTime{PrayerName: name, IqamahTime: t})
	}
	return out, nil
}

func (f *fakeStore) GetSignSettings() (model.SignSettings, error) {
	return f.settings, nil
}

func (f *fakeStore) SaveSignSettings(s model.SignSettings) (model.SignSettings, error) {
	f.settings = s
	return s, nil
}

func (f *fakeStore) ListDowntimeRules(activeOnly bool) ([]model.DowntimeRule, error) {
	return f.rules, nil
}

func (f *fakeStore) CreateDowntimeRule(r model.DowntimeRule) (model.DowntimeRule, error) {
	f.nextID++
	r.ID = f.nextID
	f.rules = append(f.rules, r)
	return r, nil
}

func newRouter(store db.Store, modules ...api.Module) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			c.Set("currentUser", &model.User{ID: 1, Email: "admin@example.org"})
		}},
	}, modules...)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateIqamahRejectsMalformedTime(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store, IqamahModule(store))

	w := doJSON(t, r, http.MethodPut, "/api/admin/iqamah", gin.H{
		"prayer_name": "Fajr",
		"iqamah_time": "24:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/iqamah", gin.H{
		"prayer_name": "Fajr",
		"iqamah_time": "5:45",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.iqamah)
}

func TestUpdateIqamahRejectsUnknownPrayer(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store, IqamahModule(store))

	w := doJSON(t, r, http.MethodPut, "/api/admin/iqamah", gin.H{
		"prayer_name": "Tahajjud",
		"iqamah_time": "03:30",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateIqamahStoresValidTime(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store, IqamahModule(store))

	w := doJSON(t, r, http.MethodPut, "/api/admin/iqamah", gin.H{
		"prayer_name": "Maghrib",
		"iqamah_time": "18:10",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "18:10", store.iqamah["Maghrib"])
}

func TestSaveSettingsRejectsSubFloorRotationInterval(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store, SettingsModule(store))

	w := doJSON(t, r, http.MethodPut, "/api/admin/sign/settings", gin.H{
		"max_announcements":         3,
		"rotation_interval_seconds": 2,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, store.settings.RotationIntervalSeconds, "rejected save must not persist")
}

func TestSaveSettingsDefaultsRotationInterval(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store, SettingsModule(store))

	w := doJSON(t, r, http.MethodPut, "/api/admin/sign/settings", gin.H{
		"max_announcements": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.DefaultRotationInterval, store.settings.RotationIntervalSeconds)
	assert.Equal(t, 5, store.settings.MaxAnnouncements)
}

func TestCreateDowntimeRuleValidatesPayloadShape(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store, DowntimeModule(store))

	// time_range without end_time
	w := doJSON(t, r, http.MethodPost, "/api/admin/sign/downtime", gin.H{
		"rule_type":  "time_range",
		"start_time": "13:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// prayer_iqamah with an unknown prayer
	w = doJSON(t, r, http.MethodPost, "/api/admin/sign/downtime", gin.H{
		"rule_type":             "prayer_iqamah",
		"prayer_name":           "Witr",
		"minutes_before_iqamah": 10,
		"minutes_after_iqamah":  5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown rule type fails binding
	w = doJSON(t, r, http.MethodPost, "/api/admin/sign/downtime", gin.H{
		"rule_type": "lunar_eclipse",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, store.rules)
}

func TestCreateDowntimeRuleDropsForeignPayloadFields(t *testing.T) {
	store := &fakeStore{}
	r := newRouter(store, DowntimeModule(store))

	w := doJSON(t, r, http.MethodPost, "/api/admin/sign/downtime", gin.H{
		"rule_type":             "time_range",
		"days_of_week":          []string{"Monday"},
		"start_time":            "23:00",
		"end_time":              "02:00",
		"prayer_name":           "Fajr",
		"minutes_before_iqamah": 10,
		"minutes_after_iqamah":  5,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.rules, 1)

	rule := store.rules[0]
	assert.Equal(t, model.DowntimeTimeRange, rule.RuleType)
	assert.Nil(t, rule.PrayerName)
	assert.Nil(t, rule.MinutesBeforeIqamah)
	assert.Equal(t, "23:00", *rule.StartTime)
	assert.True(t, rule.IsActive)
}
