// Package calendar pulls upcoming events from public Google Calendar
// JSON feeds for the sign's events view and the website.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/isevvweb/ISE-Website-sub000/internal/model"
)

const (
	defaultBaseURL = "https://www.googleapis.com/calendar/v3"
	maxEvents      = 25
)

type Client struct {
	baseURL     string
	apiKey      string
	calendarIDs []string
	http        *http.Client
}

func NewClient(apiKey string, calendarIDs []string) *Client {
	return &Client{
		baseURL:     defaultBaseURL,
		apiKey:      apiKey,
		calendarIDs: calendarIDs,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

type eventsResponse struct {
	Items []struct {
		ID          string `json:"id"`
		Summary     string `json:"summary"`
		Description string `json:"description"`
		Location    string `json:"location"`
		Status      string `json:"status"`
		Start       struct {
			DateTime string `json:"dateTime"`
			Date     string `json:"date"`
		} `json:"start"`
		End struct {
			DateTime string `json:"dateTime"`
			Date     string `json:"date"`
		} `json:"end"`
	} `json:"items"`
}

// UpcomingEvents merges events from every configured calendar, sorted by
// start time and capped at 25. A calendar that fails to load is skipped
// so one bad feed does not empty the view.
func (c *Client) UpcomingEvents(ctx context.Context, now time.Time) ([]model.CalendarEvent, error) {
	if c.apiKey == "" || len(c.calendarIDs) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool)
	var out []model.CalendarEvent
	for _, calID := range c.calendarIDs {
		events, err := c.fetchCalendar(ctx, calID, now)
		if err != nil {
			log.Warn().Err(err).Str("calendar_id", calID).Msg("calendar fetch failed, skipping")
			continue
		}
		for _, ev := range events {
			if seen[ev.ID] {
				continue
			}
			seen[ev.ID] = true
			out = append(out, ev)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	if len(out) > maxEvents {
		out = out[:maxEvents]
	}
	return out, nil
}

func (c *Client) fetchCalendar(ctx context.Context, calID string, now time.Time) ([]model.CalendarEvent, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("timeMin", now.UTC().Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")
	q.Set("maxResults", fmt.Sprintf("%d", maxEvents))

	u := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(calID), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar API returned %d", resp.StatusCode)
	}

	var body eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode calendar response: %w", err)
	}

	out := make([]model.CalendarEvent, 0, len(body.Items))
	for _, item := range body.Items {
		if item.Status == "cancelled" {
			continue
		}
		start, allDay, ok := parseEventTime(item.Start.DateTime, item.Start.Date)
		if !ok {
			continue
		}
		end, _, _ := parseEventTime(item.End.DateTime, item.End.Date)
		out = append(out, model.CalendarEvent{
			ID:          item.ID,
			Title:       item.Summary,
			Description: item.Description,
			Location:    item.Location,
			Start:       start,
			End:         end,
			AllDay:      allDay,
		})
	}
	return out, nil
}

func parseEventTime(dateTime, date string) (time.Time, bool, bool) {
	if dateTime != "" {
		t, err := time.Parse(time.RFC3339, dateTime)
		if err != nil {
			return time.Time{}, false, false
		}
		return t, false, true
	}
	if date != "" {
		t, err := time.Parse("2006-01-02", date)
		if err != nil {
			return time.Time{}, false, false
		}
		return t, true, true
	}
	return time.Time{}, false, false
}
