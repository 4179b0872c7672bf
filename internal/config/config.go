// Package config provides configuration management for sopgen.
// Configurations are loaded from TOML files with XDG-compliant paths.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/sopgen/sopgen/internal/pipeline"
	"github.com/sopgen/sopgen/internal/services/masterdata"
	"github.com/sopgen/sopgen/internal/util"
)

// Upper bounds that keep a misconfigured run from exhausting memory.
const (
	MaxHorizonDays         = 3660
	MaxTimeDimensionMonths = 1200
	MaxForecasts           = 100000
	MaxEntities            = 100000
)

// Config holds the complete application configuration.
type Config struct {
	Generation GenerationConfig `toml:"generation"`
	MasterData MasterDataConfig `toml:"master_data"`
	Output     OutputConfig     `toml:"output"`
	Display    DisplayConfig    `toml:"display"`
	Logging    LoggingConfig    `toml:"logging"`
}

// GenerationConfig controls the simulated horizon and the random seed.
type GenerationConfig struct {
	Seed                int64  `toml:"seed"`
	StartDate           string `toml:"start_date"`
	HorizonDays         int    `toml:"horizon_days"`
	TimeDimensionMonths int    `toml:"time_dimension_months"`
	Forecasts           int    `toml:"forecasts"`
}

// MasterDataConfig sets the size of every master table.
type MasterDataConfig struct {
	Products       int `toml:"products"`
	Locations      int `toml:"locations"`
	Customers      int `toml:"customers"`
	Suppliers      int `toml:"suppliers"`
	Resources      int `toml:"resources"`
	TransportLanes int `toml:"transport_lanes"`
}

// OutputConfig controls where the dataset is written. An empty SQLitePath
// disables the SQLite export.
type OutputConfig struct {
	Directory  string `toml:"directory"`
	SQLitePath string `toml:"sqlite_path"`
}

// DisplayConfig controls the progress UI and the run summary.
type DisplayConfig struct {
	ColorScheme ColorScheme `toml:"color_scheme"`
}

// ColorScheme defines the terminal color scheme.
type ColorScheme string

const (
	ColorSchemeGreen ColorScheme = "green"
	ColorSchemeAmber ColorScheme = "amber"
	ColorSchemeWhite ColorScheme = "white"
)

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Generation.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("generation: %w", err))
	}

	if err := c.MasterData.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("master_data: %w", err))
	}

	if err := c.Output.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("output: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks that the generation configuration is valid.
func (g *GenerationConfig) Validate() error {
	var errs []error

	if _, err := g.StartDateTime(); err != nil {
		errs = append(errs, fmt.Errorf("invalid start_date (expected YYYY-MM-DD): %w", err))
	}

	if g.HorizonDays < 1 || g.HorizonDays > MaxHorizonDays {
		errs = append(errs, fmt.Errorf("horizon_days must be between 1 and %d", MaxHorizonDays))
	}

	if g.TimeDimensionMonths < 0 || g.TimeDimensionMonths > MaxTimeDimensionMonths {
		errs = append(errs, fmt.Errorf("time_dimension_months must be between 0 and %d", MaxTimeDimensionMonths))
	}

	if g.Forecasts < 0 || g.Forecasts > MaxForecasts {
		errs = append(errs, fmt.Errorf("forecasts must be between 0 and %d", MaxForecasts))
	}

	return errors.Join(errs...)
}

// Validate checks that every table size is in range.
func (m *MasterDataConfig) Validate() error {
	var errs []error

	counts := []struct {
		name string
		n    int
		min  int
	}{
		{"products", m.Products, 1},
		{"locations", m.Locations, 1},
		{"customers", m.Customers, 0},
		{"suppliers", m.Suppliers, 0},
		{"resources", m.Resources, 0},
		{"transport_lanes", m.TransportLanes, 0},
	}

	for _, c := range counts {
		if c.n < c.min || c.n > MaxEntities {
			errs = append(errs, fmt.Errorf("%s must be between %d and %d", c.name, c.min, MaxEntities))
		}
	}

	if m.TransportLanes > 0 && m.Locations < 2 {
		errs = append(errs, errors.New("transport_lanes require at least 2 locations"))
	}

	return errors.Join(errs...)
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Directory == "" {
		return errors.New("directory is required")
	}
	return nil
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	switch d.ColorScheme {
	case ColorSchemeGreen, ColorSchemeAmber, ColorSchemeWhite, "":
		return nil
	default:
		return fmt.Errorf("invalid color_scheme: %s", d.ColorScheme)
	}
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	validLevels := map[LogLevel]bool{
		LogLevelDebug: true,
		LogLevelInfo:  true,
		LogLevelWarn:  true,
		LogLevelError: true,
	}

	if !validLevels[l.Level] && l.Level != "" {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}
	return nil
}

// Default returns a configuration with the standard run settings.
func Default() *Config {
	def := pipeline.DefaultConfig()
	return &Config{
		Generation: GenerationConfig{
			Seed:                def.Seed,
			StartDate:           util.FormatDate(def.StartDate),
			HorizonDays:         def.HorizonDays,
			TimeDimensionMonths: def.TimeDimensionMonths,
			Forecasts:           def.Forecasts,
		},
		MasterData: MasterDataConfig{
			Products:       def.Counts.Products,
			Locations:      def.Counts.Locations,
			Customers:      def.Counts.Customers,
			Suppliers:      def.Counts.Suppliers,
			Resources:      def.Counts.Resources,
			TransportLanes: def.Counts.TransportLanes,
		},
		Output: OutputConfig{
			Directory: "sample_data",
		},
		Display: DisplayConfig{
			ColorScheme: ColorSchemeGreen,
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
		},
	}
}

// StartDateTime returns the first simulated day.
func (g *GenerationConfig) StartDateTime() (time.Time, error) {
	if g.StartDate == "" {
		return time.Time{}, errors.New("start_date is not set")
	}
	return util.ParseDate(g.StartDate)
}

// Pipeline converts the configuration into the settings of a generation run.
func (c *Config) Pipeline() (pipeline.Config, error) {
	start, err := c.Generation.StartDateTime()
	if err != nil {
		return pipeline.Config{}, err
	}

	return pipeline.Config{
		Seed:                c.Generation.Seed,
		StartDate:           start,
		HorizonDays:         c.Generation.HorizonDays,
		TimeDimensionMonths: c.Generation.TimeDimensionMonths,
		Forecasts:           c.Generation.Forecasts,
		Counts: masterdata.Counts{
			Products:       c.MasterData.Products,
			Locations:      c.MasterData.Locations,
			Customers:      c.MasterData.Customers,
			Suppliers:      c.MasterData.Suppliers,
			Resources:      c.MasterData.Resources,
			TransportLanes: c.MasterData.TransportLanes,
		},
	}, nil
}
