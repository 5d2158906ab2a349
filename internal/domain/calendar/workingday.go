// Package calendar implements the business-day calendar and the deadline
// arithmetic built on top of it.  The calendar answers a single question —
// whether a date is a working day — given the weekend rule and an injected
// set of public-holiday dates.
package calendar

import (
	"context"
	"time"

	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/pkg/types/common"
)

// HolidaySource supplies the set of public-holiday dates.  Implementations
// live in the infrastructure layer (bank-holiday feed, fixtures).
type HolidaySource interface {
	// RetrieveAll returns every known holiday date.  Time-of-day and location
	// components are ignored; only the calendar date is significant.
	RetrieveAll(ctx context.Context) ([]time.Time, error)
}

// StaticHolidaySource is a HolidaySource backed by a fixed slice of dates.
// Used by tests and by offline tooling that reads holidays from a file.
type StaticHolidaySource []time.Time

// RetrieveAll implements HolidaySource.
func (s StaticHolidaySource) RetrieveAll(context.Context) ([]time.Time, error) {
	return s, nil
}

// WorkingDayCalendar reports whether a date is a working day.  The holiday
// set is loaded once at construction and never refreshed; the calendar is
// therefore immutable and safe to share across concurrent callers without
// synchronisation.
type WorkingDayCalendar struct {
	holidays map[string]struct{}
}

// NewWorkingDayCalendar loads the holiday set from source and returns a ready
// calendar.  A source failure must not block deadline computation: the
// calendar falls back to an empty holiday set (weekend detection alone) and
// the failure is logged as a warning.
func NewWorkingDayCalendar(ctx context.Context, source HolidaySource, logger logging.Logger) *WorkingDayCalendar {
	cal := &WorkingDayCalendar{holidays: make(map[string]struct{})}

	if source == nil {
		return cal
	}
	dates, err := source.RetrieveAll(ctx)
	if err != nil {
		logger.Warn("holiday source unavailable, falling back to weekend-only calendar",
			logging.Err(err))
		return cal
	}
	for _, d := range dates {
		cal.holidays[common.DateKey(d)] = struct{}{}
	}
	return cal
}

// IsWorkingDay reports whether date is a working day: not a Saturday or
// Sunday and not in the holiday set.
func (c *WorkingDayCalendar) IsWorkingDay(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return !c.IsHoliday(date)
}

// IsHoliday reports whether date is in the loaded holiday set.
func (c *WorkingDayCalendar) IsHoliday(date time.Time) bool {
	_, ok := c.holidays[common.DateKey(date)]
	return ok
}

// HolidayCount returns the number of loaded holiday dates.
func (c *WorkingDayCalendar) HolidayCount() int {
	return len(c.holidays)
}
