package calendar

import "time"

// DefaultEndOfBusinessHour is the hour-of-day applicant-response deadlines
// are fixed to when no explicit hour is configured.
const DefaultEndOfBusinessHour = 16

// DeadlineCalculator computes the two deadline flavours used by the decision
// engine.  Applicant-response deadlines count working days against the
// calendar; judicial-order deadlines count calendar days and shift off
// weekends only — public holidays are deliberately not consulted for the
// latter.
type DeadlineCalculator struct {
	calendar          *WorkingDayCalendar
	endOfBusinessHour int
}

// NewDeadlineCalculator constructs a calculator over cal.  An
// endOfBusinessHour outside [0, 23] falls back to DefaultEndOfBusinessHour.
func NewDeadlineCalculator(cal *WorkingDayCalendar, endOfBusinessHour int) *DeadlineCalculator {
	if endOfBusinessHour < 0 || endOfBusinessHour > 23 {
		endOfBusinessHour = DefaultEndOfBusinessHour
	}
	return &DeadlineCalculator{calendar: cal, endOfBusinessHour: endOfBusinessHour}
}

// ApplicantResponseDeadline advances base by workingDaysToAdd working days,
// skipping weekends and holidays, and fixes the time-of-day to the end of
// the business day.  The base date itself is never counted: each added day
// moves to the next working day, so a start on a holiday or weekend behaves
// identically to a start on the preceding working day.  Negative windows are
// treated as zero.
func (c *DeadlineCalculator) ApplicantResponseDeadline(base time.Time, workingDaysToAdd int) time.Time {
	day := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location())
	for i := 0; i < workingDaysToAdd; i++ {
		day = day.AddDate(0, 0, 1)
		for !c.calendar.IsWorkingDay(day) {
			day = day.AddDate(0, 0, 1)
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), c.endOfBusinessHour, 0, 0, 0, base.Location())
}

// JudicialOrderDeadlineDate advances base by calendarDaysToAdd calendar days
// and then applies a weekend-only shift: a Saturday landing moves two days
// forward, a Sunday landing one day forward.  Holidays do not shift the
// result.  The returned value is a date (midnight in base's location).
func (c *DeadlineCalculator) JudicialOrderDeadlineDate(base time.Time, calendarDaysToAdd int) time.Time {
	day := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location())
	day = day.AddDate(0, 0, calendarDaysToAdd)
	switch day.Weekday() {
	case time.Saturday:
		day = day.AddDate(0, 0, 2)
	case time.Sunday:
		day = day.AddDate(0, 0, 1)
	}
	return day
}
