// Package holidays fetches the UK bank-holiday calendar consumed by the
// working-day calendar.
package holidays

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/database/redis"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

const (
	dateLayout       = "2006-01-02"
	cacheKeyPrefix   = "holidays:"
	maxFeedBodyBytes = 1 << 20
)

// feedDocument mirrors the gov.uk bank-holidays.json layout: one entry per
// division, each with a list of dated events.
type feedDocument map[string]struct {
	Division string `json:"division"`
	Events   []struct {
		Title string `json:"title"`
		Date  string `json:"date"`
	} `json:"events"`
}

// GovUKSource retrieves bank holidays for one division from the gov.uk feed,
// with an optional redis cache in front of the HTTP call.  It implements
// calendar.HolidaySource.
type GovUKSource struct {
	client   *http.Client
	feedURL  string
	division string
	cache    *redis.Client
	cacheTTL time.Duration
	metrics  *prometheus.Metrics
	logger   logging.Logger
}

// NewGovUKSource constructs a source from cfg.  cache and metrics may be nil.
func NewGovUKSource(cfg config.HolidayConfig, cache *redis.Client, metrics *prometheus.Metrics, logger logging.Logger) *GovUKSource {
	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GovUKSource{
		client:   &http.Client{Timeout: timeout},
		feedURL:  cfg.FeedURL,
		division: cfg.Division,
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		metrics:  metrics,
		logger:   logger.Named("holidays.govuk"),
	}
}

// RetrieveAll returns every bank-holiday date for the configured division.
func (s *GovUKSource) RetrieveAll(ctx context.Context) ([]time.Time, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	dates, err := s.fetch(ctx)
	if err != nil {
		s.metrics.ObserveHolidayFeedError()
		return nil, err
	}

	s.toCache(ctx, dates)
	s.logger.Info("bank holidays loaded",
		logging.String("division", s.division),
		logging.Int("count", len(dates)))
	return dates, nil
}

func (s *GovUKSource) fetch(ctx context.Context) ([]time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeHolidayFeedUnavailable, "build feed request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeHolidayFeedUnavailable, "fetch "+s.feedURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeHolidayFeedUnavailable,
			"holiday feed returned status "+resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBodyBytes))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeHolidayFeedUnavailable, "read feed body")
	}

	var doc feedDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeHolidayFeedMalformed, "decode holiday feed")
	}

	division, ok := doc[s.division]
	if !ok {
		return nil, errors.New(errors.ErrCodeHolidayFeedMalformed,
			"division "+s.division+" absent from holiday feed")
	}

	dates := make([]time.Time, 0, len(division.Events))
	for _, event := range division.Events {
		d, err := time.Parse(dateLayout, event.Date)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeHolidayFeedMalformed,
				"bad event date "+event.Date)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func (s *GovUKSource) fromCache(ctx context.Context) ([]time.Time, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, cacheKeyPrefix+s.division)
	if err != nil {
		s.logger.Warn("holiday cache read failed", logging.Err(err))
		return nil, false
	}
	if raw == nil {
		return nil, false
	}

	var keys []string
	if err := json.Unmarshal(raw, &keys); err != nil {
		s.logger.Warn("holiday cache entry malformed, ignoring", logging.Err(err))
		return nil, false
	}
	dates := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		d, err := time.Parse(dateLayout, k)
		if err != nil {
			return nil, false
		}
		dates = append(dates, d)
	}
	return dates, true
}

func (s *GovUKSource) toCache(ctx context.Context, dates []time.Time) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		keys = append(keys, d.Format(dateLayout))
	}
	raw, err := json.Marshal(keys)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKeyPrefix+s.division, raw, s.cacheTTL); err != nil {
		s.logger.Warn("holiday cache write failed", logging.Err(err))
	}
}
