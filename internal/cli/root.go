// Package cli implements the bikeshare CLI commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rcliao/bikeshare/internal/config"
	"github.com/rcliao/bikeshare/internal/model"
	"github.com/rcliao/bikeshare/internal/report"
	"github.com/rcliao/bikeshare/internal/store"
)

var (
	dataDir    string
	configPath string
	logLevel   string
	formatFlag string
)

// RootCmd is the top-level command. Run without a subcommand it starts the
// interactive explorer.
var RootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Explore US bikeshare trip data",
	Long: "Interactive statistics over bikeshare trips for chicago, new york city and washington.\n" +
		"Pick a city, month and weekday; get popular times, stations, trip durations and user stats.",
	Run: runExplore,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "", "Directory holding the city CSV files (default: $BIKESHARE_DATA_DIR, config, or .)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $BIKESHARE_CONFIG or ~/.bikeshare/config.ini)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
}

func loadConfig() (config.Config, error) {
	path, optional := configPath, false
	if path == "" {
		if env := os.Getenv("BIKESHARE_CONFIG"); env != "" {
			path = env
		} else {
			path, optional = config.DefaultPath(), true
		}
	}

	cfg, err := config.Load(path, optional)
	if err != nil {
		return cfg, err
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	} else if env := os.Getenv("BIKESHARE_DATA_DIR"); env != "" {
		cfg.DataDir = env
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*slog.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// setup resolves config and logger for a command, exiting on failure.
func setup() (config.Config, *slog.Logger) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		exitErr("logger", err)
	}
	return cfg, logger
}

func openTrips(ctx context.Context, cfg config.Config, logger *slog.Logger, f model.Filter) (*store.SQLiteStore, error) {
	path, err := cfg.CityPath(f.City)
	if err != nil {
		return nil, err
	}
	logger.Debug("loading trips", "city", f.City, "path", path)
	return store.Load(ctx, path, f, store.Options{Logger: logger})
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("city", "", "City: chicago, new york city, washington (required)")
	cmd.Flags().StringP("month", "m", model.All, "Month january..june, or all")
	cmd.Flags().String("day", model.All, "Day of week, or all")
	cmd.MarkFlagRequired("city")
}

func filterFromFlags(cmd *cobra.Command) model.Filter {
	city, _ := cmd.Flags().GetString("city")
	month, _ := cmd.Flags().GetString("month")
	day, _ := cmd.Flags().GetString("day")

	f, err := model.ParseFilter(city, month, day)
	if err != nil {
		exitErr("filter", err)
	}
	return f
}

// stdoutStyles colors output only when stdout is a terminal.
func stdoutStyles() *report.Styles {
	st := report.PlainStyles()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		st = report.DefaultStyles(os.Stdout)
	}
	return &st
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
