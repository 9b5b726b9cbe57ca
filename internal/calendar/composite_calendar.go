package calendar

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: FileCalendar (per-day overrides)
// Fallback: ShiftCalendar (work/off cycle)
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// IsWorkday checks if the given date is a working day
func (cc *CompositeCalendar) IsWorkday(date time.Time) (bool, int, error) {
	dayInfo, err := cc.GetDayInfo(date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetDayInfo returns detailed info for a specific day
func (cc *CompositeCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	// Try primary first
	dayInfo, err := cc.primary.GetDayInfo(date)
	if err == nil {
		return dayInfo, nil
	}

	cc.logPrimaryMiss(err, zap.Time("date", date))

	return cc.fallback.GetDayInfo(date)
}

// GetMonthInfo returns the fallback month with primary days laid over it.
// Primary days outside the fallback's range are included as well, so the
// month view agrees with GetDayInfo.
func (cc *CompositeCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	base, baseErr := cc.fallback.GetMonthInfo(year, month)
	if baseErr != nil && !errors.Is(baseErr, ErrOutOfPeriod) {
		return nil, baseErr
	}

	overrides, err := cc.primary.GetMonthInfo(year, month)
	if err != nil {
		cc.logPrimaryMiss(err,
			zap.Int("year", year),
			zap.Int("month", int(month)))
		if baseErr != nil {
			return nil, baseErr
		}
		return base, nil
	}

	byDay := make(map[string]DayInfo, len(overrides.Days))
	for _, day := range overrides.Days {
		byDay[dayKey(day.Date)] = day
	}

	var days []DayInfo
	if base != nil {
		for _, day := range base.Days {
			key := dayKey(day.Date)
			if override, ok := byDay[key]; ok {
				day = override
				delete(byDay, key)
			}
			days = append(days, day)
		}
	}
	for _, day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return newMonthInfo(year, month, days)
}

// LoadPrimary loads the primary calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadPrimary() error {
	if fc, ok := cc.primary.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load override calendar: %w", err)
		}
		cc.logger.Info("Override calendar loaded successfully")
	}
	return nil
}

func (cc *CompositeCalendar) logPrimaryMiss(err error, fields ...zap.Field) {
	// Missing overrides are the common case
	if errors.Is(err, ErrDayNotFound) {
		cc.logger.Debug("No override, using schedule", append(fields, zap.Error(err))...)
		return
	}
	cc.logger.Warn("Primary calendar failed, falling back to schedule", append(fields, zap.Error(err))...)
}
