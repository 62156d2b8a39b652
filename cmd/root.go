package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dchen/streaklog/internal/analytics"
	"github.com/dchen/streaklog/internal/catalog"
	"github.com/dchen/streaklog/internal/parser"
	"github.com/dchen/streaklog/internal/store"
	"github.com/dchen/streaklog/internal/streaks"
)

var rootCmd = &cobra.Command{
	Use:   "streaklog",
	Short: "Track your daily puzzle results",
	Long:  "Streaklog records share text from daily puzzle games and tracks streaks, trends, and personal bests.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STREAKLOG_DB env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(bestsCmd)
	rootCmd.AddCommand(weeklyCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then STREAKLOG_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// newLogger builds the CLI logger. Debug output only shows up with
// --verbose; everything goes to stderr so command output stays clean.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.WarnLevel
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// app bundles the constructed application components. Everything is
// dependency-injected: built once per command invocation and torn down
// with it.
type app struct {
	store   *store.Store
	catalog *catalog.Catalog
	parser  *parser.Parser
	tracker *streaks.Tracker
	orch    *analytics.Orchestrator
	log     zerolog.Logger
}

// openApp opens the store and wires the component graph.
func openApp(cmd *cobra.Command) (*app, error) {
	log := newLogger(cmd)
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cat := catalog.Default()
	tracker := streaks.NewTracker(st.ResultRepo(), st.SnapshotRepo(), log)
	if err := tracker.Load(cmd.Context()); err != nil {
		st.Close()
		return nil, fmt.Errorf("load streak state: %w", err)
	}

	cache := analytics.NewCache(analytics.DefaultCacheTTL)
	return &app{
		store:   st,
		catalog: cat,
		parser:  parser.New(cat),
		tracker: tracker,
		orch:    analytics.NewOrchestrator(st.ResultRepo(), tracker, cat, cache, log),
		log:     log,
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn().Err(err).Msg("close store")
	}
}
