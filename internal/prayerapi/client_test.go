package prayerapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const timingsBody = `{
  "code": 200,
  "data": {
    "timings": {
      "Fajr": "05:34 (CDT)",
      "Dhuhr": "13:02",
      "Asr": "16:45 (CDT)",
      "Maghrib": "19:58",
      "Isha": "21:20",
      "Sunrise": "06:51"
    },
    "date": {
      "readable": "03 Mar 2025",
      "hijri": {
        "day": "3",
        "year": "1446",
        "month": {"en": "Ramadan"}
      }
    }
  }
}`

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("Chicago", "US", 2)
	c.baseURL = srv.URL
	return c, srv
}

func TestScheduleStripsTimezoneSuffixes(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(timingsBody))
	})
	defer srv.Close()

	sched, err := c.Schedule(context.Background(), time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		map[string]string{"Fajr": "06:00"})
	require.NoError(t, err)

	assert.Equal(t, "05:34", sched.AdhanTimes["Fajr"])
	assert.Equal(t, "16:45", sched.AdhanTimes["Asr"])
	assert.Equal(t, "13:02", sched.AdhanTimes["Dhuhr"])
	assert.NotContains(t, sched.AdhanTimes, "Sunrise")
	assert.Equal(t, "06:00", sched.IqamahTimes["Fajr"])
	assert.Equal(t, "03 Mar 2025", sched.Gregorian)
	assert.Equal(t, "3 Ramadan 1446", sched.Hijri)
}

func TestScheduleSkipsUnparseableTimings(t *testing.T) {
	body := `{"code":200,"data":{"timings":{"Fajr":"soon","Dhuhr":"13:02"},"date":{"readable":"x","hijri":{"day":"1","year":"1446","month":{"en":"Shawwal"}}}}}`
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	defer srv.Close()

	sched, err := c.Schedule(context.Background(), time.Now(), nil)
	require.NoError(t, err)
	assert.NotContains(t, sched.AdhanTimes, "Fajr")
	assert.Equal(t, "13:02", sched.AdhanTimes["Dhuhr"])
}

func TestScheduleErrorWithoutCache(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	_, err := c.Schedule(context.Background(), time.Now(), nil)
	assert.Error(t, err)
}

func TestCleanTiming(t *testing.T) {
	assert.Equal(t, "05:34", cleanTiming("05:34 (CDT)"))
	assert.Equal(t, "05:34", cleanTiming("05:34"))
	assert.Equal(t, "05:34", cleanTiming(" 05:34 "))
}
