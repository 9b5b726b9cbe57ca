package dateutil

import (
	"testing"
	"time"
)

// d is a test helper to construct dates.
func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestGetDayName(t *testing.T) {
	tests := []struct {
		input time.Time
		want  string
	}{
		{d(2024, time.January, 7), "Sunday"},
		{d(2024, time.January, 1), "Monday"},
		{d(2024, time.January, 2), "Tuesday"},
		{d(2024, time.January, 3), "Wednesday"},
		{d(2024, time.January, 4), "Thursday"},
		{d(2024, time.January, 5), "Friday"},
		{d(2024, time.January, 6), "Saturday"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := GetDayName(tt.input); got != tt.want {
				t.Errorf("GetDayName(%v) = %v, want %v", tt.input.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestGetNextFriday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "Wednesday returns same week Friday",
			input: time.Date(2024, 2, 21, 10, 30, 0, 0, time.UTC),
			want:  time.Date(2024, 2, 23, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "Friday returns next week",
			input: time.Date(2024, 2, 23, 10, 30, 0, 0, time.UTC),
			want:  time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			name:  "Saturday crosses month",
			input: time.Date(2024, 2, 24, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Thursday before new year",
			input: time.Date(2026, 12, 31, 18, 0, 0, 0, time.UTC),
			want:  time.Date(2027, 1, 1, 18, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetNextFriday(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("GetNextFriday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"),
					got.Format("2006-01-02 Mon"),
					tt.want.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestGetNextFriday_Properties(t *testing.T) {
	start := d(2024, time.January, 1)
	for i := 0; i < 60; i++ {
		input := start.AddDate(0, 0, i).Add(13 * time.Hour)
		got := GetNextFriday(input)

		if !got.After(input) {
			t.Errorf("GetNextFriday(%v) = %v, not after input", input, got)
		}
		if got.Weekday() != time.Friday {
			t.Errorf("GetNextFriday(%v) = %v, weekday %v", input, got, got.Weekday())
		}
		if got.Sub(input) > 7*24*time.Hour {
			t.Errorf("GetNextFriday(%v) = %v, more than 7 days later", input, got)
		}
	}
}

func TestGetWeekNumberByDate(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  int
	}{
		{"January 1 2024", d(2024, time.January, 1), 1},
		{"January 7 2024 Sunday", d(2024, time.January, 7), 1},
		{"January 8 2024 Monday", d(2024, time.January, 8), 2},
		{"January 31 2024", d(2024, time.January, 31), 5},
		{"February 23 2024", d(2024, time.February, 23), 8},
		{"Mid January 2025", d(2025, time.January, 15), 3},
		{"January 1 2021 belongs to week 53", d(2021, time.January, 1), 53},
		{"January 1 2016 belongs to week 53", d(2016, time.January, 1), 53},
		{"December 30 2024 belongs to week 1", d(2024, time.December, 30), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetWeekNumberByDate(tt.input); got != tt.want {
				t.Errorf("GetWeekNumberByDate(%v) = %v, want %v", tt.input.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestGetNextFridayThe13th(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{"January 13 2024", d(2024, time.January, 13), d(2024, time.September, 13)},
		{"Searches from own month", d(2024, time.September, 1), d(2024, time.September, 13)},
		{"Friday the 13th is returned", d(2024, time.September, 13), d(2024, time.September, 13)},
		{"Past the 13th skips month", d(2024, time.September, 14), d(2024, time.December, 13)},
		{"Rolls over year", d(2024, time.December, 20), d(2025, time.June, 13)},
		{
			"Time of day dropped",
			time.Date(2024, time.January, 13, 17, 45, 0, 0, time.UTC),
			d(2024, time.September, 13),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetNextFridayThe13th(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("GetNextFridayThe13th(%v) = %v, want %v",
					tt.input.Format("2006-01-02"), got.Format("2006-01-02 Mon"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestGetQuarter(t *testing.T) {
	counts := make(map[int]int)
	for month := time.January; month <= time.December; month++ {
		q := GetQuarter(d(2024, month, 15))
		want := (int(month) + 2) / 3
		if q != want {
			t.Errorf("GetQuarter(%v) = %v, want %v", month, q, want)
		}
		counts[q]++
	}

	for q := 1; q <= 4; q++ {
		if counts[q] != 3 {
			t.Errorf("quarter %d has %d months, want 3", q, counts[q])
		}
	}
	if len(counts) != 4 {
		t.Errorf("got %d quarters, want 4", len(counts))
	}
}
