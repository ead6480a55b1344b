// Package cmd implements the tally CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/tally/internal/config"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/logging"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagDataDir  string
	flagQuiet    bool
	flagLogLevel string

	flagCategory string
	flagFrom     string
	flagTo       string
	flagSort     string
	flagOrder    string
)

// appCfg is the effective configuration, loaded before any command runs.
var appCfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:               "tally",
	Short:             "Local expense tracker",
	Long:              "Record expenses, set per-category budgets, and see where the money goes.",
	RunE:              runSummary,
	PersistentPreRunE: loadEnvironment,
	SilenceUsage:      true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding tally.db (default $XDG_DATA_HOME/tally)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.PersistentFlags().StringVarP(&flagCategory, "category", "c", "", "Only include this category (exact match)")
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "Only include expenses on or after this date (YYYY-MM-DD, compared as a date string)")
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", "Only include expenses dated up to this bound (YYYY-MM-DD, compared as a date string, so timestamps on the end date itself are excluded)")
	rootCmd.PersistentFlags().StringVar(&flagSort, "sort", "", "Sort field: date, amount, description, category")
	rootCmd.PersistentFlags().StringVar(&flagOrder, "order", "", "Sort order: asc, desc")
}

// loadEnvironment reads .env, the config file, and sets up logging.
func loadEnvironment(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "  Ignoring .env: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appCfg = cfg

	level := appCfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if cmd.Name() == "tui" {
		return nil // the dashboard logs to a file, see runTUI
	}
	if _, err := logging.Setup(level, appCfg.Log.Format); err != nil {
		return err
	}
	return nil
}

// dataDir resolves the data directory: flag, then env/config, then XDG default.
func dataDir() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return appCfg.DataDir()
}

// session bundles an opened ledger with its backing database.
type session struct {
	ctx    context.Context
	db     *store.SQLite
	state  *ledger.State
	mirror *ledger.Mirror
}

func (s *session) Close() error { return s.db.Close() }

// saved reports the mirror's last write error, if any.
func (s *session) saved() error {
	if err := s.mirror.LastError(); err != nil {
		return fmt.Errorf("saving changes: %w", err)
	}
	return nil
}

// openSession is the shared data loading path used by all commands.
func openSession(ctx context.Context) (*session, error) {
	path := filepath.Join(dataDir(), store.DBName)
	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}

	// Stored dates are UTC, so month labels and budget periods use UTC
	// to agree with the string-compared date filter.
	state, mirror := ledger.Open(ctx, db, ledger.Options{
		Categories: appCfg.CategoryList(),
		Locale:     appCfg.General.Locale,
		Location:   time.UTC,
		Sort:       appCfg.Sort(),
		Logger:     slog.Default().With("db", path),
	})

	s := &session{ctx: ctx, db: db, state: state, mirror: mirror}
	if err := applyViewFlags(state); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// applyViewFlags validates the filter and sort flags and sets them on state.
func applyViewFlags(state *ledger.State) error {
	for name, v := range map[string]string{"--from": flagFrom, "--to": flagTo} {
		if v == "" {
			continue
		}
		if _, err := model.ParseDay(v); err != nil {
			return fmt.Errorf("invalid %s date %q, want YYYY-MM-DD", name, v)
		}
	}
	state.SetFilter(model.Filter{Category: flagCategory, Start: flagFrom, End: flagTo})

	sortCfg := state.Sort()
	if flagSort != "" {
		f, ok := model.ParseSortField(flagSort)
		if !ok {
			return fmt.Errorf("invalid --sort %q, want one of date, amount, description, category", flagSort)
		}
		sortCfg.Field = f
	}
	if flagOrder != "" {
		o, ok := model.ParseSortOrder(flagOrder)
		if !ok {
			return fmt.Errorf("invalid --order %q, want asc or desc", flagOrder)
		}
		sortCfg.Order = o
	}
	state.SetSort(sortCfg)
	return nil
}

// describeFilter renders the active filter for titles, or "" when unset.
func describeFilter(f model.Filter) string {
	var s string
	if f.Category != "" {
		s += "  " + f.Category
	}
	switch {
	case f.Start != "" && f.End != "":
		s += fmt.Sprintf("  %s to %s", f.Start, f.End)
	case f.Start != "":
		s += "  from " + f.Start
	case f.End != "":
		s += "  until " + f.End
	}
	return s
}

func infof(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Printf(format, args...)
}
