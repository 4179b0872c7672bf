// sopgen generates a reproducible synthetic Sales & Operations Planning
// dataset: master data, demand forecasts, inventory, production plans and
// KPIs, written as CSV files and optionally a SQLite database.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sopgen/sopgen/internal/config"
	"github.com/sopgen/sopgen/internal/database"
	"github.com/sopgen/sopgen/internal/export"
	"github.com/sopgen/sopgen/internal/pipeline"
	"github.com/sopgen/sopgen/internal/tui"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

type options struct {
	configPath  string
	writeConfig string
	seed        int64
	out         string
	sqlitePath  string
	days        int
	forecasts   int
	useTUI      bool
	debugMode   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.writeConfig, "write-config", "", "Write the effective configuration to this path and exit")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed (overrides config)")
	flag.StringVar(&opts.out, "out", "", "CSV output directory (overrides config)")
	flag.StringVar(&opts.sqlitePath, "sqlite", "", "Also write the dataset to this SQLite file")
	flag.IntVar(&opts.days, "days", 0, "Simulated horizon in days (overrides config)")
	flag.IntVar(&opts.forecasts, "forecasts", 0, "Number of demand forecast series (overrides config)")
	flag.BoolVar(&opts.useTUI, "tui", false, "Show interactive progress while generating")
	flag.BoolVar(&opts.debugMode, "debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sopgen version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, set); err != nil {
		slog.Error("application error", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, set map[string]bool) error {
	cfg, cfgPath, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	applyOverrides(cfg, opts, set)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	closeLog, err := setupLogging(cfg, opts.debugMode, opts.useTUI)
	if err != nil {
		return err
	}
	defer closeLog()

	slog.Info("sopgen starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
	)

	if opts.writeConfig != "" {
		if err := config.Save(cfg, opts.writeConfig); err != nil {
			return fmt.Errorf("writing configuration: %w", err)
		}
		slog.Info("configuration written", "path", opts.writeConfig)
		return nil
	}

	pcfg, err := cfg.Pipeline()
	if err != nil {
		return fmt.Errorf("building run configuration: %w", err)
	}

	theme := tui.NewTheme(cfg.Display.ColorScheme)
	began := time.Now()

	var ds *pipeline.Dataset
	if opts.useTUI {
		ds, err = tui.Run(ctx, pcfg, theme)
	} else {
		ds, err = pipeline.NewGenerator(pcfg).Generate(ctx)
	}
	if err != nil {
		return fmt.Errorf("generating dataset: %w", err)
	}

	tables := export.Tables(ds)

	csvSink := export.NewCSVSink(cfg.Output.Directory)
	written, err := csvSink.Write(ctx, tables)
	if err != nil {
		return fmt.Errorf("writing CSV files: %w", err)
	}

	if cfg.Output.SQLitePath != "" {
		if err := writeSQLite(ctx, cfg.Output.SQLitePath, ds, tables); err != nil {
			return err
		}
	}

	summary := tui.NewSummary(ds, written, csvSink.Dir(), cfg.Output.SQLitePath, time.Since(began))
	fmt.Println(tui.RenderSummary(summary, theme))

	slog.Info("sopgen complete", "run_id", ds.RunID, "rows", summary.TotalRows())
	return nil
}

// applyOverrides copies explicitly set flags over the file configuration.
func applyOverrides(cfg *config.Config, opts options, set map[string]bool) {
	if set["seed"] {
		cfg.Generation.Seed = opts.seed
	}
	if set["out"] {
		cfg.Output.Directory = opts.out
	}
	if set["sqlite"] {
		cfg.Output.SQLitePath = opts.sqlitePath
	}
	if set["days"] {
		cfg.Generation.HorizonDays = opts.days
	}
	if set["forecasts"] {
		cfg.Generation.Forecasts = opts.forecasts
	}
	if opts.debugMode {
		cfg.Logging.Level = config.LogLevelDebug
	}
}

// setupLogging installs the default slog logger.
func setupLogging(cfg *config.Config, debugMode, useTUI bool) (func(), error) {
	handler, closeLog, err := newLogHandler(cfg, debugMode, useTUI, os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(handler))
	return closeLog, nil
}

// newLogHandler builds the log handler for a run. Logs go to the configured
// file as JSON, otherwise to stderr as text. The progress display owns the
// terminal, so without a log file a TUI run discards its logs.
func newLogHandler(cfg *config.Config, debugMode, useTUI bool, stderr io.Writer) (slog.Handler, func(), error) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			logLevel = slog.LevelDebug
		case config.LogLevelWarn:
			logLevel = slog.LevelWarn
		case config.LogLevelError:
			logLevel = slog.LevelError
		}
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}

	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return slog.NewJSONHandler(logFile, handlerOpts), func() { logFile.Close() }, nil
	}

	out := stderr
	if useTUI {
		out = io.Discard
	}
	return slog.NewTextHandler(out, handlerOpts), func() {}, nil
}

func writeSQLite(ctx context.Context, path string, ds *pipeline.Dataset, tables []export.Table) error {
	report, err := database.PrepareOutput(ctx, path)
	if err != nil {
		return fmt.Errorf("checking existing database: %w", err)
	}
	if report.Result == database.RecoveryReplaced {
		slog.Warn("existing database was damaged and has been replaced", "moved_to", report.MovedTo)
	}

	db, err := database.Open(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	sink := export.NewSQLiteSink(db, export.RunOf(ds))
	if _, err := sink.Write(ctx, tables); err != nil {
		return fmt.Errorf("writing SQLite database: %w", err)
	}

	if err := db.Checkpoint(ctx); err != nil {
		slog.Warn("wal checkpoint failed", "error", err)
	}
	return nil
}
