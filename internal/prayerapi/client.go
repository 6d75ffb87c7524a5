// Package prayerapi fetches daily adhan times from the Aladhan service
// and caches the last good response in Redis so the sign keeps working
// through upstream outages.
package prayerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
	"github.com/isevvweb/ISE-Website-sub000/internal/redis"
	"github.com/isevvweb/ISE-Website-sub000/internal/sign"
)

const (
	defaultBaseURL = "https://api.aladhan.com/v1"
	cacheTTL       = 48 * time.Hour
)

type Client struct {
	baseURL string
	city    string
	country string
	method  int
	http    *http.Client
}

func NewClient(city, country string, method int) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		city:    city,
		country: country,
		method:  method,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
		Date    struct {
			Readable string `json:"readable"`
			Hijri    struct {
				Day   string `json:"day"`
				Year  string `json:"year"`
				Month struct {
					En string `json:"en"`
				} `json:"month"`
			} `json:"hijri"`
		} `json:"date"`
	} `json:"data"`
}

// Schedule returns adhan times for day, merged with the stored iqamah
// map by the caller. On fetch failure the last cached schedule for that
// date is returned instead.
func (c *Client) Schedule(ctx context.Context, day time.Time, iqamah map[string]string) (model.PrayerSchedule, error) {
	dateStr := day.Format("02-01-2006")
	cacheKey := "prayerapi:timings:" + day.Format("2006-01-02")

	sched, err := c.fetch(ctx, dateStr)
	if err != nil {
		log.Warn().Err(err).Str("date", dateStr).Msg("aladhan fetch failed, trying cache")
		cached, cerr := redis.Get(ctx, cacheKey)
		if cerr != nil {
			return model.PrayerSchedule{}, err
		}
		var out model.PrayerSchedule
		if jerr := json.Unmarshal([]byte(cached), &out); jerr != nil {
			return model.PrayerSchedule{}, err
		}
		out.IqamahTimes = iqamah
		return out, nil
	}

	if raw, jerr := json.Marshal(sched); jerr == nil {
		_ = redis.Set(ctx, cacheKey, raw, cacheTTL)
	}
	sched.IqamahTimes = iqamah
	return sched, nil
}

func (c *Client) fetch(ctx context.Context, dateStr string) (model.PrayerSchedule, error) {
	u := fmt.Sprintf("%s/timingsByCity/%s?city=%s&country=%s&method=%d",
		c.baseURL, dateStr,
		url.QueryEscape(c.city), url.QueryEscape(c.country), c.method)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.PrayerSchedule{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return model.PrayerSchedule{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return model.PrayerSchedule{}, fmt.Errorf("aladhan returned %d", resp.StatusCode)
	}

	var body timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.PrayerSchedule{}, fmt.Errorf("decode aladhan response: %w", err)
	}
	if body.Code != http.StatusOK {
		return model.PrayerSchedule{}, fmt.Errorf("aladhan code %d", body.Code)
	}

	adhan := make(map[string]string, len(model.DailyPrayerNames))
	for _, name := range model.DailyPrayerNames {
		raw, ok := body.Data.Timings[name]
		if !ok {
			continue
		}
		t := cleanTiming(raw)
		if _, _, ok := sign.ParseClock(t); !ok {
			log.Warn().Str("prayer", name).Str("raw", raw).Msg("aladhan timing unparseable, skipping")
			continue
		}
		adhan[name] = t
	}

	hijri := body.Data.Date.Hijri
	return model.PrayerSchedule{
		AdhanTimes: adhan,
		Gregorian:  body.Data.Date.Readable,
		Hijri:      strings.TrimSpace(fmt.Sprintf("%s %s %s", hijri.Day, hijri.Month.En, hijri.Year)),
	}, nil
}

// cleanTiming strips timezone suffixes like "05:34 (CDT)".
func cleanTiming(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	return s
}
