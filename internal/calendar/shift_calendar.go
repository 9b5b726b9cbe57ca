package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/username/calendar-utils/pkg/dateutil"
)

// ShiftCalendar implements Calendar from a repeating work/off cycle
type ShiftCalendar struct {
	period      dateutil.Period
	start       time.Time
	end         time.Time
	hoursPerDay int
	schedule    []string
	workdays    map[string]struct{} // key: "YYYY-MM-DD"
	logger      *zap.Logger
}

// NewShiftCalendar creates a ShiftCalendar for period (DD-MM-YYYY) with
// workDays on and offDays off, starting on period.Start.
func NewShiftCalendar(period dateutil.Period, workDays, offDays, hoursPerDay int, logger *zap.Logger) (*ShiftCalendar, error) {
	start, err := dateutil.ParseScheduleDate(period.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule period start: %w", err)
	}
	end, err := dateutil.ParseScheduleDate(period.End)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule period end: %w", err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: schedule period %s ends before it starts", dateutil.ErrInvalidArgument, period)
	}
	if hoursPerDay < 0 {
		return nil, fmt.Errorf("%w: hours per day must not be negative", dateutil.ErrInvalidArgument)
	}

	dates, err := dateutil.WorkDates(period, workDays, offDays)
	if err != nil {
		return nil, fmt.Errorf("failed to build work schedule: %w", err)
	}

	sc := &ShiftCalendar{
		period:      period,
		start:       start,
		end:         end,
		hoursPerDay: hoursPerDay,
		schedule:    make([]string, 0, len(dates)),
		workdays:    make(map[string]struct{}, len(dates)),
		logger:      logger,
	}
	for _, d := range dates {
		sc.schedule = append(sc.schedule, dateutil.FormatScheduleDate(d))
		sc.workdays[dayKey(d)] = struct{}{}
	}

	logger.Debug("Shift calendar built",
		zap.String("period", period.String()),
		zap.Int("work_days", workDays),
		zap.Int("off_days", offDays),
		zap.Int("scheduled", len(dates)))

	return sc, nil
}

// Schedule returns the working days as DD-MM-YYYY strings
func (sc *ShiftCalendar) Schedule() []string {
	out := make([]string, len(sc.schedule))
	copy(out, sc.schedule)
	return out
}

// Period returns the schedule period
func (sc *ShiftCalendar) Period() dateutil.Period {
	return sc.period
}

// IsWorkday checks if the given date is a working day
func (sc *ShiftCalendar) IsWorkday(date time.Time) (bool, int, error) {
	dayInfo, err := sc.GetDayInfo(date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetDayInfo returns detailed info for a specific day
func (sc *ShiftCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	day := normalizeDay(date)
	if day.Before(sc.start) || day.After(sc.end) {
		return nil, fmt.Errorf("%w: %s not in %s", ErrOutOfPeriod, dayKey(day), sc.period)
	}

	info := sc.dayInfo(day)
	return &info, nil
}

// GetMonthInfo returns calendar info for the days of the month inside the period
func (sc *ShiftCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	count, err := dateutil.GetCountDaysInMonth(int(month), year)
	if err != nil {
		return nil, err
	}

	var days []DayInfo
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		day := first.AddDate(0, 0, i)
		if day.Before(sc.start) || day.After(sc.end) {
			continue
		}
		days = append(days, sc.dayInfo(day))
	}

	if len(days) == 0 {
		return nil, fmt.Errorf("%w: month %d-%02d not in %s", ErrOutOfPeriod, year, month, sc.period)
	}

	return newMonthInfo(year, month, days)
}

func (sc *ShiftCalendar) dayInfo(day time.Time) DayInfo {
	if _, ok := sc.workdays[dayKey(day)]; ok {
		return DayInfo{
			Date:         day,
			Type:         DayTypeWorkday,
			WorkingHours: sc.hoursPerDay,
			IsWorkday:    true,
		}
	}
	return DayInfo{
		Date: day,
		Type: DayTypeOff,
	}
}
