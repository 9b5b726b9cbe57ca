package dateutil

import (
	"fmt"
	"time"
)

// DateToTimestamp parses date and returns it as epoch milliseconds
func DateToTimestamp(date string) (int64, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// TimestampToDate converts epoch milliseconds back to a UTC time
func TimestampToDate(msec int64) time.Time {
	return time.UnixMilli(msec).UTC()
}

// GetTime returns the time of day of date as HH:MM:SS in date's location
func GetTime(date time.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d", date.Hour(), date.Minute(), date.Second())
}

// FormatDate formats the UTC components of date as "M/D/YYYY, h:mm:ss AM".
// Hours 13-23 are shifted down by 12; midnight is rendered as hour 0.
func FormatDate(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	t = t.UTC()

	hour := t.Hour()
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	if hour > 12 {
		hour -= 12
	}

	return fmt.Sprintf("%d/%d/%d, %d:%02d:%02d %s",
		int(t.Month()), t.Day(), t.Year(),
		hour, t.Minute(), t.Second(), meridiem), nil
}
