package dateutil

import (
	"fmt"
	"time"
)

// GetWorkSchedule lists the working days of a repeating cycle of workDays
// consecutive days on followed by offDays days off, starting on
// period.Start. Dates in and out are DD-MM-YYYY. Generation stops at the
// first working day past period.End.
func GetWorkSchedule(period Period, workDays, offDays int) ([]string, error) {
	dates, err := WorkDates(period, workDays, offDays)
	if err != nil {
		return nil, err
	}

	schedule := make([]string, len(dates))
	for i, d := range dates {
		schedule[i] = FormatScheduleDate(d)
	}
	return schedule, nil
}

// WorkDates is GetWorkSchedule returning UTC midnights instead of strings
func WorkDates(period Period, workDays, offDays int) ([]time.Time, error) {
	if workDays <= 0 {
		return nil, fmt.Errorf("%w: work days must be positive, got %d", ErrInvalidArgument, workDays)
	}
	if offDays < 0 {
		return nil, fmt.Errorf("%w: off days must not be negative, got %d", ErrInvalidArgument, offDays)
	}

	start, err := ParseScheduleDate(period.Start)
	if err != nil {
		return nil, fmt.Errorf("period start: %w", err)
	}
	end, err := ParseScheduleDate(period.End)
	if err != nil {
		return nil, fmt.Errorf("period end: %w", err)
	}

	var dates []time.Time
	current := start
	for {
		for i := 0; i < workDays; i++ {
			if current.After(end) {
				return dates, nil
			}
			dates = append(dates, current)
			current = current.AddDate(0, 0, 1)
		}
		current = current.AddDate(0, 0, offDays)
	}
}
