package dateutil

import "time"

var dayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// GetDayName returns the English weekday name of date
func GetDayName(date time.Time) string {
	return dayNames[date.Weekday()]
}

// GetNextFriday returns the first Friday strictly after date, keeping the
// time of day. A Friday input yields the Friday a week later.
func GetNextFriday(date time.Time) time.Time {
	days := (int(time.Friday) - int(date.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return date.AddDate(0, 0, days)
}

// GetWeekNumberByDate returns the ISO 8601 week number for the given date
// (weeks start on Monday, week 1 holds the first Thursday of the year).
// Days at a year boundary report the week of the neighbouring ISO year:
// 2016-01-01 is in week 53 and 2024-12-30 is in week 1.
func GetWeekNumberByDate(date time.Time) int {
	_, week := date.ISOWeek()
	return week
}

// GetNextFridayThe13th returns midnight of the next Friday that falls on a
// 13th. The search starts in date's own month unless date is already past
// the 13th, so a Friday the 13th input is returned as is.
func GetNextFridayThe13th(date time.Time) time.Time {
	year, month := date.Year(), date.Month()
	if date.Day() > 13 {
		month++
	}

	for {
		candidate := time.Date(year, month, 13, 0, 0, 0, 0, date.Location())
		if candidate.Weekday() == time.Friday {
			return candidate
		}
		month++
	}
}

// GetQuarter returns the quarter (1-4) of the year that date falls in
func GetQuarter(date time.Time) int {
	return (int(date.Month())-1)/3 + 1
}
