package analysis

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings contains the configurable thresholds and identifiers the
// analysis engine and its warning rules operate on. Nothing in the rule
// set hardcodes business meaning; a deployment tunes all of it here.
type Settings struct {
	// DiscretionaryCategoryID is the category watched for overspend (e.g. dining out).
	DiscretionaryCategoryID string `mapstructure:"discretionary_category_id"`
	// DiscretionaryCategoryLabel is the human-readable name used in warning messages.
	DiscretionaryCategoryLabel string `mapstructure:"discretionary_category_label"`
	// EveningStartHour/EveningEndHour bound the evening bucket as [start, end).
	EveningStartHour int `mapstructure:"evening_start_hour"`
	EveningEndHour   int `mapstructure:"evening_end_hour"`
	// WeekendExcessMultiplier flags weekends costing more than weekday average times this factor (default: 1.5).
	WeekendExcessMultiplier float64 `mapstructure:"weekend_excess_multiplier"`
	// CategoryRatioThreshold is the share of total spending above which the
	// discretionary category is considered disproportionate (default: 0.15).
	CategoryRatioThreshold float64 `mapstructure:"category_ratio_threshold"`
	// CategoryFloorDays and CategoryFloorFactor form the absolute floor
	// overallAvg * days * factor that keeps tiny totals from triggering.
	CategoryFloorDays   int     `mapstructure:"category_floor_days"`
	CategoryFloorFactor float64 `mapstructure:"category_floor_factor"`
	// TimePatternWeekday/TimePatternHour select the habitual slot to watch
	// (default: Wednesday from 18:00 on).
	TimePatternWeekday time.Weekday `mapstructure:"time_pattern_weekday"`
	TimePatternHour    int          `mapstructure:"time_pattern_hour"`
	// TimePatternThreshold is the slot total, in the same monetary unit as
	// the records, above which the pattern is flagged (default: 10000).
	TimePatternThreshold float64 `mapstructure:"time_pattern_threshold"`
}

// DefaultSettings returns the thresholds the engine ships with.
func DefaultSettings() Settings {
	return Settings{
		DiscretionaryCategoryID:    "dining_out",
		DiscretionaryCategoryLabel: "dining out",
		EveningStartHour:           18,
		EveningEndHour:             24,
		WeekendExcessMultiplier:    1.5,
		CategoryRatioThreshold:     0.15,
		CategoryFloorDays:          30,
		CategoryFloorFactor:        0.5,
		TimePatternWeekday:         time.Wednesday,
		TimePatternHour:            18,
		TimePatternThreshold:       10000,
	}
}

// LoadSettings reads engine settings from a config file, falling back to
// defaults for any key the file omits.
func LoadSettings(path string) (Settings, error) {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("discretionary_category_id", defaults.DiscretionaryCategoryID)
	v.SetDefault("discretionary_category_label", defaults.DiscretionaryCategoryLabel)
	v.SetDefault("evening_start_hour", defaults.EveningStartHour)
	v.SetDefault("evening_end_hour", defaults.EveningEndHour)
	v.SetDefault("weekend_excess_multiplier", defaults.WeekendExcessMultiplier)
	v.SetDefault("category_ratio_threshold", defaults.CategoryRatioThreshold)
	v.SetDefault("category_floor_days", defaults.CategoryFloorDays)
	v.SetDefault("category_floor_factor", defaults.CategoryFloorFactor)
	v.SetDefault("time_pattern_weekday", int(defaults.TimePatternWeekday))
	v.SetDefault("time_pattern_hour", defaults.TimePatternHour)
	v.SetDefault("time_pattern_threshold", defaults.TimePatternThreshold)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("failed to read analysis settings: %w", err)
	}

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return Settings{}, fmt.Errorf("failed to parse analysis settings: %w", err)
	}
	return cfg, nil
}
