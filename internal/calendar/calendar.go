package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/username/calendar-utils/pkg/dateutil"
)

var (
	// ErrOutOfPeriod is returned for dates outside the schedule period
	ErrOutOfPeriod = errors.New("date outside calendar period")
	// ErrDayNotFound is returned when a calendar has no entry for a day
	ErrDayNotFound = errors.New("day not found in calendar")
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeOff
	DayTypeHoliday
	DayTypeShortened
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeOff:
		return "off"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeShortened:
		return "shortened"
	default:
		return fmt.Sprintf("DayType(%d)", int(t))
	}
}

// ParseDayType parses the names used in override files
func ParseDayType(s string) (DayType, error) {
	switch s {
	case "workday":
		return DayTypeWorkday, nil
	case "off", "weekend":
		return DayTypeOff, nil
	case "holiday":
		return DayTypeHoliday, nil
	case "shortened":
		return DayTypeShortened, nil
	default:
		return 0, fmt.Errorf("unknown day type: %s", s)
	}
}

// IsWorkday reports whether days of this type are worked
func (t DayType) IsWorkday() bool {
	return t == DayTypeWorkday || t == DayTypeShortened
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date         time.Time
	Type         DayType
	WorkingHours int
	IsWorkday    bool
	Note         string
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year         int
	Month        time.Month
	WorkingHours int // Total working hours in the month
	WorkDays     int
	OffDays      int
	Holidays     int
	Weekends     int // Saturdays and Sundays of the whole month
	Days         []DayInfo
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) (bool, int, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) (*DayInfo, error)
}

func newMonthInfo(year int, month time.Month, days []DayInfo) (*MonthInfo, error) {
	weekends, err := dateutil.GetCountWeekendsInMonth(int(month), year)
	if err != nil {
		return nil, err
	}

	info := &MonthInfo{
		Year:     year,
		Month:    month,
		Weekends: weekends,
		Days:     days,
	}
	for _, day := range days {
		switch {
		case day.IsWorkday:
			info.WorkDays++
			info.WorkingHours += day.WorkingHours
		case day.Type == DayTypeHoliday:
			info.Holidays++
		default:
			info.OffDays++
		}
	}
	return info, nil
}

func dayKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// normalizeDay maps date to UTC midnight of its own calendar day
func normalizeDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
