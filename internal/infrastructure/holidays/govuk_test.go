package holidays

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/testutil"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

const feedBody = `{
  "england-and-wales": {
    "division": "england-and-wales",
    "events": [
      {"title": "Early May bank holiday", "date": "2025-05-05"},
      {"title": "Summer bank holiday", "date": "2025-08-25"}
    ]
  },
  "scotland": {
    "division": "scotland",
    "events": [
      {"title": "2nd January", "date": "2025-01-02"}
    ]
  }
}`

func newSource(t *testing.T, handler http.HandlerFunc, division string) *GovUKSource {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.HolidayConfig{
		FeedURL:      srv.URL,
		Division:     division,
		FetchTimeout: 2 * time.Second,
	}
	return NewGovUKSource(cfg, nil, nil, testutil.NewRecordingLogger())
}

func TestRetrieveAll(t *testing.T) {
	src := newSource(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feedBody))
	}, "england-and-wales")

	dates, err := src.RetrieveAll(context.Background())
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC), dates[1])
}

func TestRetrieveAll_UnknownDivision(t *testing.T) {
	src := newSource(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(feedBody))
	}, "northern-ireland")

	_, err := src.RetrieveAll(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodeHolidayFeedMalformed))
}

func TestRetrieveAll_ServerError(t *testing.T) {
	src := newSource(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}, "england-and-wales")

	_, err := src.RetrieveAll(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodeHolidayFeedUnavailable))
}

func TestRetrieveAll_MalformedBody(t *testing.T) {
	src := newSource(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}, "england-and-wales")

	_, err := src.RetrieveAll(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodeHolidayFeedMalformed))
}

func TestRetrieveAll_BadEventDate(t *testing.T) {
	src := newSource(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"england-and-wales":{"division":"england-and-wales","events":[{"title":"x","date":"25/08/2025"}]}}`))
	}, "england-and-wales")

	_, err := src.RetrieveAll(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodeHolidayFeedMalformed))
}
