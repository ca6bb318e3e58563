package strava

import (
	"alcyxob/training-tracker/internal/domain"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	dateLayout       = "2006-01-02"
	activitiesPerDay = 100
)

// ActivitiesForDate returns the runs recorded within the UTC calendar day of date.
// It fails with ErrNotConnected when no valid token is available and with *UpstreamError
// when the provider call fails or times out.
func (c *Client) ActivitiesForDate(ctx context.Context, date time.Time) (*domain.ActivityList, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dateKey := day.Format(dateLayout)

	accessToken, ok := c.ValidToken(ctx)
	if !ok {
		c.countRequest("unauthorized")
		return nil, ErrNotConnected
	}

	if list, ok := c.cachedActivities(dateKey); ok {
		return list, nil
	}

	started := time.Now()
	raw, err := c.listActivities(ctx, accessToken, day.Unix(), day.Add(24*time.Hour).Unix())
	if c.metrics != nil {
		c.metrics.HistStravaDuration.Observe(time.Since(started).Seconds())
	}
	if err != nil {
		if errors.Is(err, ErrNotConnected) {
			c.countRequest("unauthorized")
		} else {
			c.countRequest("upstream")
		}
		return nil, err
	}
	c.countRequest("ok")

	activities := normalizeActivities(raw)
	list := &domain.ActivityList{
		Date:       dateKey,
		Activities: activities,
		Count:      len(activities),
	}
	c.storeActivities(dateKey, list)
	return list, nil
}

func (c *Client) listActivities(ctx context.Context, accessToken string, after, before int64) ([]apiActivity, error) {
	q := url.Values{}
	q.Set("after", strconv.FormatInt(after, 10))
	q.Set("before", strconv.FormatInt(before, 10))
	q.Set("per_page", strconv.Itoa(activitiesPerDay))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/athlete/activities?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, upstreamError("list activities", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// The token was revoked on the provider side.
		return nil, ErrNotConnected
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Op: "list activities", StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, upstreamError("list activities", err)
	}
	var raw []apiActivity
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, upstreamError("list activities", fmt.Errorf("decode response: %w", err))
	}
	return raw, nil
}

func (c *Client) cachedActivities(dateKey string) (*domain.ActivityList, bool) {
	if c.cache == nil {
		return nil, false
	}
	cached, err := c.cache.Get([]byte(dateKey))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("strava: activity cache get %s: %s", dateKey, err)
		}
		c.countCache("miss")
		return nil, false
	}
	list := &domain.ActivityList{}
	if err := json.Unmarshal(cached, list); err != nil {
		log.Errorf("strava: unmarshal cached activities for %s: %s", dateKey, err)
		c.countCache("miss")
		return nil, false
	}
	c.countCache("hit")
	return list, true
}

func (c *Client) storeActivities(dateKey string, list *domain.ActivityList) {
	if c.cache == nil {
		return
	}
	b, err := json.Marshal(list)
	if err != nil {
		log.Errorf("strava: marshal activities for %s: %s", dateKey, err)
		return
	}
	if err := c.cache.Set([]byte(dateKey), b, int(c.cacheTTL.Seconds())); err != nil {
		log.Errorf("strava: activity cache set %s: %s", dateKey, err)
	}
}

func (c *Client) countRequest(result string) {
	if c.metrics != nil {
		c.metrics.CounterStravaRequests.WithLabelValues(result).Inc()
	}
}

func (c *Client) countCache(result string) {
	if c.metrics != nil {
		c.metrics.CounterActivityCache.WithLabelValues(result).Inc()
	}
}
