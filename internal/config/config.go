package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/username/calendar-utils/pkg/dateutil"
)

// Config represents application configuration
type Config struct {
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
}

// ScheduleConfig represents the work/off cycle
type ScheduleConfig struct {
	Start    string `mapstructure:"start"` // DD-MM-YYYY
	End      string `mapstructure:"end"`   // DD-MM-YYYY
	WorkDays int    `mapstructure:"work_days"`
	OffDays  int    `mapstructure:"off_days"`
}

// CalendarConfig represents work calendar configuration
type CalendarConfig struct {
	OverridesFile string `mapstructure:"overrides_file"`
	HoursPerDay   int    `mapstructure:"hours_per_day"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing file is only an error when
// configPath was given explicitly.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.calendar-utils")
		v.AddConfigPath("/etc/calendar-utils")
	}

	// Read environment variables
	v.SetEnvPrefix("CALENDAR_UTILS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("schedule.work_days", 5)
	v.SetDefault("schedule.off_days", 2)
	v.SetDefault("calendar.hours_per_day", 8)
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Schedule period is optional, but both ends go together
	if (c.Schedule.Start == "") != (c.Schedule.End == "") {
		return fmt.Errorf("schedule.start and schedule.end must be set together")
	}
	if c.Schedule.HasPeriod() {
		if err := c.Schedule.Period().Validate(dateutil.ParseScheduleDate); err != nil {
			return fmt.Errorf("schedule: %w", err)
		}
	}
	if c.Schedule.WorkDays <= 0 {
		return fmt.Errorf("schedule.work_days must be positive")
	}
	if c.Schedule.OffDays < 0 {
		return fmt.Errorf("schedule.off_days must not be negative")
	}

	if c.Calendar.HoursPerDay < 0 || c.Calendar.HoursPerDay > 24 {
		return fmt.Errorf("calendar.hours_per_day must be between 0 and 24")
	}

	return nil
}

// HasPeriod reports whether a schedule period is configured
func (s *ScheduleConfig) HasPeriod() bool {
	return s.Start != "" && s.End != ""
}

// Period returns the schedule period
func (s *ScheduleConfig) Period() dateutil.Period {
	return dateutil.Period{Start: s.Start, End: s.End}
}

// GetLogLevel returns the log level, defaulting to info
func (c *LogConfig) GetLogLevel() string {
	if c.Level == "" {
		return "info"
	}
	return c.Level
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Calendar.OverridesFile = os.ExpandEnv(c.Calendar.OverridesFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
