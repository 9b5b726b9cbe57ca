package calendar

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/username/calendar-utils/pkg/dateutil"
)

func newTestShiftCalendar(t *testing.T) *ShiftCalendar {
	t.Helper()
	cal, err := NewShiftCalendar(
		dateutil.Period{Start: "01-01-2024", End: "15-01-2024"},
		1, 3, 8, zap.NewNop())
	if err != nil {
		t.Fatalf("NewShiftCalendar() error = %v", err)
	}
	return cal
}

func TestShiftCalendar_IsWorkday(t *testing.T) {
	cal := newTestShiftCalendar(t)
	msk := time.FixedZone("MSK", 3*60*60)

	tests := []struct {
		name      string
		date      time.Time
		wantWork  bool
		wantHours int
		wantErr   error
	}{
		{"First day", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true, 8, nil},
		{"Second cycle", time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC), true, 8, nil},
		{"Off day", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), false, 0, nil},
		{"Last workday", time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC), true, 8, nil},
		{"Last day off", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false, 0, nil},
		{"Own calendar day in other zone", time.Date(2024, 1, 9, 23, 30, 0, 0, msk), true, 8, nil},
		{"Before period", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false, 0, ErrOutOfPeriod},
		{"After period", time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), false, 0, ErrOutOfPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isWorkday, hours, err := cal.IsWorkday(tt.date)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("IsWorkday(%v) error = %v, want %v", tt.date, err, tt.wantErr)
			}
			if isWorkday != tt.wantWork || hours != tt.wantHours {
				t.Errorf("IsWorkday(%v) = (%v, %d), want (%v, %d)",
					tt.date.Format("2006-01-02"), isWorkday, hours, tt.wantWork, tt.wantHours)
			}
		})
	}
}

func TestShiftCalendar_Schedule(t *testing.T) {
	cal := newTestShiftCalendar(t)

	want := []string{"01-01-2024", "05-01-2024", "09-01-2024", "13-01-2024"}
	if got := cal.Schedule(); !reflect.DeepEqual(got, want) {
		t.Errorf("Schedule() = %v, want %v", got, want)
	}

	got := cal.Schedule()
	got[0] = "changed"
	if cal.Schedule()[0] != "01-01-2024" {
		t.Error("Schedule() exposes internal slice")
	}
}

func TestShiftCalendar_GetMonthInfo(t *testing.T) {
	cal := newTestShiftCalendar(t)

	info, err := cal.GetMonthInfo(2024, time.January)
	if err != nil {
		t.Fatalf("GetMonthInfo() error = %v", err)
	}

	if len(info.Days) != 15 {
		t.Errorf("Days count = %d, want 15", len(info.Days))
	}
	if info.WorkDays != 4 {
		t.Errorf("WorkDays = %d, want 4", info.WorkDays)
	}
	if info.OffDays != 11 {
		t.Errorf("OffDays = %d, want 11", info.OffDays)
	}
	if info.WorkingHours != 32 {
		t.Errorf("WorkingHours = %d, want 32", info.WorkingHours)
	}
	if info.Weekends != 8 {
		t.Errorf("Weekends = %d, want 8", info.Weekends)
	}

	if _, err := cal.GetMonthInfo(2024, time.February); !errors.Is(err, ErrOutOfPeriod) {
		t.Errorf("GetMonthInfo(February) error = %v, want ErrOutOfPeriod", err)
	}
	if _, err := cal.GetMonthInfo(2024, time.Month(13)); !errors.Is(err, dateutil.ErrInvalidArgument) {
		t.Errorf("GetMonthInfo(13) error = %v, want ErrInvalidArgument", err)
	}
}

func TestNewShiftCalendar_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		period   dateutil.Period
		workDays int
		offDays  int
		hours    int
		wantErr  error
	}{
		{"Reversed period", dateutil.Period{Start: "15-01-2024", End: "01-01-2024"}, 1, 1, 8, dateutil.ErrInvalidArgument},
		{"ISO dates", dateutil.Period{Start: "2024-01-01", End: "2024-01-15"}, 1, 1, 8, dateutil.ErrInvalidDate},
		{"Bad end date", dateutil.Period{Start: "01-01-2024", End: "31-02-2024"}, 1, 1, 8, dateutil.ErrInvalidDate},
		{"Zero work days", dateutil.Period{Start: "01-01-2024", End: "15-01-2024"}, 0, 1, 8, dateutil.ErrInvalidArgument},
		{"Negative hours", dateutil.Period{Start: "01-01-2024", End: "15-01-2024"}, 1, 1, -1, dateutil.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShiftCalendar(tt.period, tt.workDays, tt.offDays, tt.hours, zap.NewNop())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewShiftCalendar() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
