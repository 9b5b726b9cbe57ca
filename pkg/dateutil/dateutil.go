// Package dateutil provides stateless Gregorian calendar helpers: parsing,
// formatting, weekday and week-number arithmetic, period checks and
// work/off-day schedule generation.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidDate is returned when a date string cannot be parsed
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidArgument is returned for out-of-range numeric arguments
	ErrInvalidArgument = errors.New("invalid argument")
)

// ScheduleLayout is the DD-MM-YYYY layout used by work schedules
const ScheduleLayout = "02-01-2006"

const msPerDay = 24 * 60 * 60 * 1000

// Period is a pair of date strings. The layout depends on the caller:
// ISO 8601 for IsDateInPeriod, DD-MM-YYYY for GetWorkSchedule.
type Period struct {
	Start string
	End   string
}

// Validate checks that both ends parse with parse and that Start <= End
func (p Period) Validate(parse func(string) (time.Time, error)) error {
	start, err := parse(p.Start)
	if err != nil {
		return fmt.Errorf("period start: %w", err)
	}
	end, err := parse(p.End)
	if err != nil {
		return fmt.Errorf("period end: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: period end %s is before start %s", ErrInvalidArgument, p.End, p.Start)
	}
	return nil
}

func (p Period) String() string {
	return p.Start + " .. " + p.End
}

// Layouts without a zone are read in local time; date-only layouts are UTC.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.000Z0700",
		"2006-01-02T15:04:05-0700",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.000",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
	}
	dateLayouts = []string{
		"2006-01-02",
		ScheduleLayout,
		"02.01.2006",
	}
)

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
}

// ParseScheduleDate parses a DD-MM-YYYY date as UTC midnight
func ParseScheduleDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(ScheduleLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected DD-MM-YYYY", ErrInvalidDate, dateStr)
	}
	return t, nil
}

// FormatScheduleDate formats date as DD-MM-YYYY
func FormatScheduleDate(date time.Time) string {
	return date.Format(ScheduleLayout)
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsLeapYear reports whether the year of date is a Gregorian leap year
func IsLeapYear(date time.Time) bool {
	return isLeap(date.Year())
}

// GetCountDaysInMonth returns the number of days in month (1-12) of year
func GetCountDaysInMonth(month, year int) (int, error) {
	if err := checkMonthYear(month, year); err != nil {
		return 0, err
	}
	return daysIn(time.Month(month), year), nil
}

// GetCountDaysOnPeriod returns the number of days between start and end,
// counting both ends.
func GetCountDaysOnPeriod(start, end string) (int, error) {
	from, err := ParseDate(start)
	if err != nil {
		return 0, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return 0, err
	}
	return floorDays(to.UnixMilli()-from.UnixMilli()) + 1, nil
}

// IsDateInPeriod reports whether period.Start <= date <= period.End
func IsDateInPeriod(date string, period Period) (bool, error) {
	t, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	start, err := ParseDate(period.Start)
	if err != nil {
		return false, fmt.Errorf("period start: %w", err)
	}
	end, err := ParseDate(period.End)
	if err != nil {
		return false, fmt.Errorf("period end: %w", err)
	}
	return !t.Before(start) && !t.After(end), nil
}

// GetCountWeekendsInMonth counts Saturdays and Sundays in month (1-12) of year
func GetCountWeekendsInMonth(month, year int) (int, error) {
	if err := checkMonthYear(month, year); err != nil {
		return 0, err
	}

	count := 0
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < daysIn(time.Month(month), year); d++ {
		if IsWeekend(first.AddDate(0, 0, d)) {
			count++
		}
	}
	return count, nil
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(month time.Month, year int) int {
	switch month {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func checkMonthYear(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidArgument, month)
	}
	if year < 1 {
		return fmt.Errorf("%w: year %d", ErrInvalidArgument, year)
	}
	return nil
}

// floorDays converts ms milliseconds to whole days, rounding toward negative
// infinity. time.Duration is not used: it overflows past ~292 years.
func floorDays(ms int64) int {
	n := ms / msPerDay
	if ms%msPerDay < 0 {
		n--
	}
	return int(n)
}
