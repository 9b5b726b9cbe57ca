package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/username/calendar-utils/internal/calendar"
	"github.com/username/calendar-utils/pkg/dateutil"
)

// parseDateArg reads an optional date argument; "now" or no argument means
// the current local time.
func parseDateArg(args []string) (time.Time, error) {
	if len(args) == 0 || strings.EqualFold(args[0], "now") {
		return time.Now(), nil
	}
	// A bare year is read as January 1st of that year
	if year, err := strconv.Atoi(args[0]); err == nil && len(args[0]) == 4 {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}
	return dateutil.ParseDate(args[0])
}

func parseMonthYear(args []string) (int, int, error) {
	month, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", args[0], dateutil.ErrInvalidArgument)
	}
	year, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q: %w", args[1], dateutil.ErrInvalidArgument)
	}
	return month, year, nil
}

// dateCmd builds a command taking one optional date-like argument
func dateCmd(use, short string, run func(out io.Writer, date time.Time) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [date|now]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args)
			if err != nil {
				return err
			}
			logger.Debug("Running date command",
				zap.String("command", use),
				zap.Time("date", date))
			return run(cmd.OutOrStdout(), date)
		},
	}
}

func timestampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timestamp <date>",
		Short: "Convert a date to epoch milliseconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := dateutil.DateToTimestamp(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ms)
			return nil
		},
	}
}

func timeCmd() *cobra.Command {
	return dateCmd("time", "Print the time of day as HH:MM:SS", func(out io.Writer, date time.Time) error {
		fmt.Fprintln(out, dateutil.GetTime(date))
		return nil
	})
}

func dayNameCmd() *cobra.Command {
	return dateCmd("day-name", "Print the weekday name", func(out io.Writer, date time.Time) error {
		fmt.Fprintln(out, dateutil.GetDayName(date))
		return nil
	})
}

func nextFridayCmd() *cobra.Command {
	return dateCmd("next-friday", "Print the next Friday after the date", func(out io.Writer, date time.Time) error {
		fmt.Fprintln(out, dateutil.GetNextFriday(date).Format(time.RFC3339))
		return nil
	})
}

func weekCmd() *cobra.Command {
	return dateCmd("week", "Print the ISO 8601 week number", func(out io.Writer, date time.Time) error {
		fmt.Fprintln(out, dateutil.GetWeekNumberByDate(date))
		return nil
	})
}

func friday13Cmd() *cobra.Command {
	return dateCmd("friday13", "Print the next Friday the 13th", func(out io.Writer, date time.Time) error {
		fmt.Fprintln(out, dateutil.GetNextFridayThe13th(date).Format("2006-01-02 (Monday)"))
		return nil
	})
}

func quarterCmd() *cobra.Command {
	return dateCmd("quarter", "Print the quarter of the year (1-4)", func(out io.Writer, date time.Time) error {
		fmt.Fprintln(out, dateutil.GetQuarter(date))
		return nil
	})
}

func leapCmd() *cobra.Command {
	return dateCmd("leap", "Report whether the year is a leap year", func(out io.Writer, date time.Time) error {
		fmt.Fprintln(out, dateutil.IsLeapYear(date))
		return nil
	})
}

func daysInMonthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days-in-month <month> <year>",
		Short: "Print the number of days in a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, year, err := parseMonthYear(args)
			if err != nil {
				return err
			}
			count, err := dateutil.GetCountDaysInMonth(month, year)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}

func weekendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weekends <month> <year>",
		Short: "Count Saturdays and Sundays in a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, year, err := parseMonthYear(args)
			if err != nil {
				return err
			}
			count, err := dateutil.GetCountWeekendsInMonth(month, year)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}

func daysInPeriodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days-in-period <start> <end>",
		Short: "Count days in a period, both ends included",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := dateutil.GetCountDaysOnPeriod(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}
}

func inPeriodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "in-period <date> <start> <end>",
		Short: "Report whether a date lies within a period, both ends included",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := dateutil.IsDateInPeriod(args[0], dateutil.Period{Start: args[1], End: args[2]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), in)
			return nil
		},
	}
}

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <date>",
		Short: "Format a date as M/D/YYYY, h:mm:ss AM/PM (UTC)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatted, err := dateutil.FormatDate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	}
}

func scheduleCmd() *cobra.Command {
	var start, end string
	var workDays, offDays int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List working days of a repeating work/off cycle",
		Long:  "List working days (DD-MM-YYYY) of a cycle of --work days on and --off days off. Flags override the schedule section of the config.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			period := cfg.Schedule.Period()
			if cmd.Flags().Changed("start") {
				period.Start = start
			}
			if cmd.Flags().Changed("end") {
				period.End = end
			}
			if !cmd.Flags().Changed("work") {
				workDays = cfg.Schedule.WorkDays
			}
			if !cmd.Flags().Changed("off") {
				offDays = cfg.Schedule.OffDays
			}
			if period.Start == "" || period.End == "" {
				return fmt.Errorf("schedule period is required: set --start/--end or schedule.start/schedule.end")
			}

			logger.Info("Generating work schedule",
				zap.String("period", period.String()),
				zap.Int("work_days", workDays),
				zap.Int("off_days", offDays))

			schedule, err := dateutil.GetWorkSchedule(period, workDays, offDays)
			if err != nil {
				return fmt.Errorf("failed to generate schedule: %w", err)
			}
			for _, day := range schedule {
				fmt.Fprintln(cmd.OutOrStdout(), day)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First day of the cycle (DD-MM-YYYY)")
	cmd.Flags().StringVar(&end, "end", "", "Last day of the period (DD-MM-YYYY)")
	cmd.Flags().IntVar(&workDays, "work", 5, "Consecutive working days per cycle")
	cmd.Flags().IntVar(&offDays, "off", 2, "Consecutive off days per cycle")

	return cmd
}

func monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month [month year]",
		Short: "Show the work calendar for a month of the configured schedule",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := dateutil.StartOfDay(time.Now())
			month, year := int(today.Month()), today.Year()
			if len(args) == 1 {
				return fmt.Errorf("month and year must be given together")
			}
			if len(args) == 2 {
				var err error
				if month, year, err = parseMonthYear(args); err != nil {
					return err
				}
			}

			cal, err := initializeCalendar()
			if err != nil {
				return err
			}

			info, err := cal.GetMonthInfo(year, time.Month(month))
			if err != nil {
				return fmt.Errorf("failed to get month info: %w", err)
			}

			printMonthInfo(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func initializeCalendar() (calendar.Calendar, error) {
	if !cfg.Schedule.HasPeriod() {
		return nil, fmt.Errorf("schedule.start and schedule.end are required for the work calendar")
	}

	shiftCal, err := calendar.NewShiftCalendar(
		cfg.Schedule.Period(),
		cfg.Schedule.WorkDays,
		cfg.Schedule.OffDays,
		cfg.Calendar.HoursPerDay,
		logger,
	)
	if err != nil {
		return nil, err
	}

	if cfg.Calendar.OverridesFile == "" {
		logger.Info("Using schedule calendar without overrides")
		return shiftCal, nil
	}

	overrides := calendar.NewFileCalendar(cfg.Calendar.OverridesFile, logger)
	compositeCal := calendar.NewCompositeCalendar(overrides, shiftCal, logger)

	if err := compositeCal.LoadPrimary(); err != nil {
		logger.Warn("Failed to load override calendar, continuing with schedule only",
			zap.Error(err))
	}

	return compositeCal, nil
}

func printMonthInfo(out io.Writer, info *calendar.MonthInfo) {
	fmt.Fprintf(out, "%s %d\n", info.Month, info.Year)
	fmt.Fprintln(out, "═══════════════════════════════════════")

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tDay\tType\tHours\tNote")
	for _, day := range info.Days {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			dateutil.FormatScheduleDate(day.Date),
			dateutil.GetDayName(day.Date),
			day.Type,
			day.WorkingHours,
			day.Note)
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\n  Work days:      %d (%dh)\n", info.WorkDays, info.WorkingHours)
	fmt.Fprintf(out, "  Off days:       %d\n", info.OffDays)
	fmt.Fprintf(out, "  Holidays:       %d\n", info.Holidays)
	fmt.Fprintf(out, "  Weekend days:   %d  - Saturdays and Sundays of the month\n", info.Weekends)
}
