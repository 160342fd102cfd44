package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

var (
	ValidStrategies   = []string{"shared", "exclusive"}
	ValidFormats      = []string{"table", "json", "csv", "pdf"}
	ValidDiagnostics  = []string{"faithful", "extended"}
	ValidPreferences  = []string{"professor", "group"}
	ValidLogFormats   = []string{"console", "json"}
	defaultConfigFile = ".env"
)

type Config struct {
	Env       string
	Log       LogConfig
	Timetable TimetableConfig
}

type LogConfig struct {
	Level  string
	Format string
}

// TimetableConfig holds the defaults of the command line flags
type TimetableConfig struct {
	Strategy        string
	Format          string
	Diagnostics     string
	PreferenceOrder string
	Audit           bool
}

// Load reads the configuration from the given env file (".env" when empty) and the environment.
// A missing file is not an error
func Load(file string) (*Config, error) {
	if file == "" {
		file = defaultConfigFile
	}
	_ = godotenv.Load(file)

	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{
		Env: v.GetString("TIMETABLE_ENV"),
		Log: LogConfig{
			Level:  v.GetString("TIMETABLE_LOG_LEVEL"),
			Format: v.GetString("TIMETABLE_LOG_FORMAT"),
		},
		Timetable: TimetableConfig{
			Strategy:        v.GetString("TIMETABLE_STRATEGY"),
			Format:          v.GetString("TIMETABLE_FORMAT"),
			Diagnostics:     v.GetString("TIMETABLE_DIAGNOSTICS"),
			PreferenceOrder: v.GetString("TIMETABLE_PREFERENCE_ORDER"),
			Audit:           v.GetBool("TIMETABLE_AUDIT"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	if !lo.Contains(ValidStrategies, cfg.Timetable.Strategy) {
		return fmt.Errorf("%v is not a valid strategy", cfg.Timetable.Strategy)
	} else if !lo.Contains(ValidFormats, cfg.Timetable.Format) {
		return fmt.Errorf("%v is not a valid output format", cfg.Timetable.Format)
	} else if !lo.Contains(ValidDiagnostics, cfg.Timetable.Diagnostics) {
		return fmt.Errorf("%v is not a valid diagnostics mode", cfg.Timetable.Diagnostics)
	} else if !lo.Contains(ValidPreferences, cfg.Timetable.PreferenceOrder) {
		return fmt.Errorf("%v is not a valid preference order", cfg.Timetable.PreferenceOrder)
	} else if !lo.Contains(ValidLogFormats, cfg.Log.Format) {
		return fmt.Errorf("%v is not a valid log format", cfg.Log.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("TIMETABLE_ENV", EnvDevelopment)

	v.SetDefault("TIMETABLE_LOG_LEVEL", "warn")
	v.SetDefault("TIMETABLE_LOG_FORMAT", "console")

	v.SetDefault("TIMETABLE_STRATEGY", "shared")
	v.SetDefault("TIMETABLE_FORMAT", "table")
	v.SetDefault("TIMETABLE_DIAGNOSTICS", "faithful")
	v.SetDefault("TIMETABLE_PREFERENCE_ORDER", "professor")
	v.SetDefault("TIMETABLE_AUDIT", false)
}
