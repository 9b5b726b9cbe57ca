package calendar

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/username/calendar-utils/pkg/dateutil"
)

// FileCalendar implements Calendar interface using a local text file of
// per-day overrides
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	days     map[string]DayInfo   // key: "YYYY-MM-DD"
	months   map[string][]DayInfo // key: "YYYY-MM"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		days:     make(map[string]DayInfo),
		months:   make(map[string][]DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Format: DD-MM-YYYY type working_hours [note]
		// Example: 08-03-2024 holiday 0 International Women's Day
		dayInfo, err := parseOverride(line)
		if err != nil {
			fc.logger.Warn("Skipping calendar line",
				zap.Int("line", lineNo),
				zap.String("text", line),
				zap.Error(err))
			continue
		}

		fc.add(dayInfo)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.days)),
		zap.Int("months", len(fc.months)))

	return nil
}

func parseOverride(line string) (DayInfo, error) {
	parts := strings.SplitN(line, " ", 4)
	if len(parts) < 3 {
		return DayInfo{}, fmt.Errorf("expected 'DD-MM-YYYY type hours [note]'")
	}

	date, err := dateutil.ParseScheduleDate(parts[0])
	if err != nil {
		return DayInfo{}, err
	}

	dayType, err := ParseDayType(parts[1])
	if err != nil {
		return DayInfo{}, err
	}

	hours, err := strconv.Atoi(parts[2])
	if err != nil || hours < 0 {
		return DayInfo{}, fmt.Errorf("invalid working hours: %s", parts[2])
	}
	if !dayType.IsWorkday() {
		hours = 0
	}

	note := ""
	if len(parts) == 4 {
		note = strings.TrimSpace(parts[3])
	}

	return DayInfo{
		Date:         date,
		Type:         dayType,
		WorkingHours: hours,
		IsWorkday:    dayType.IsWorkday(),
		Note:         note,
	}, nil
}

// add stores dayInfo, replacing an earlier line for the same date
func (fc *FileCalendar) add(dayInfo DayInfo) {
	key := dayKey(dayInfo.Date)
	monthKey := fc.getMonthKey(dayInfo.Date.Year(), dayInfo.Date.Month())

	if _, exists := fc.days[key]; exists {
		days := fc.months[monthKey]
		for i := range days {
			if dayKey(days[i].Date) == key {
				days[i] = dayInfo
			}
		}
	} else {
		days := append(fc.months[monthKey], dayInfo)
		sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
		fc.months[monthKey] = days
	}
	fc.days[key] = dayInfo
}

// IsWorkday checks if the given date is a working day
func (fc *FileCalendar) IsWorkday(date time.Time) (bool, int, error) {
	dayInfo, err := fc.GetDayInfo(date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetMonthInfo returns calendar info for the days listed for the month
func (fc *FileCalendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	days, ok := fc.months[fc.getMonthKey(year, month)]
	if !ok {
		return nil, fmt.Errorf("%w: month %s", ErrDayNotFound, fc.getMonthKey(year, month))
	}

	out := make([]DayInfo, len(days))
	copy(out, days)
	return newMonthInfo(year, month, out)
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	dayInfo, ok := fc.days[dayKey(normalizeDay(date))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, date.Format("2006-01-02"))
	}

	return &dayInfo, nil
}

func (fc *FileCalendar) getMonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%02d", year, month)
}
