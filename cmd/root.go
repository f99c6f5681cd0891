package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/marcus/pick/internal/catalog"
	"github.com/marcus/pick/internal/config"
)

var (
	version string
	baseDir string

	logFile string
	debug   bool
	dbPath  string

	logOut io.Closer
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

var rootCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick items from lists in the terminal",
	Long: `pick - dropdown selection for the terminal.

Lists live in a small SQLite catalog. Run 'pick seed' once, then 'pick demo'
for a scrolling page of dropdowns or 'pick select <list>' to choose one item
from a script.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logOut != nil {
			logOut.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "catalog database path (default .pick/catalog.db)")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlag)
}

// normalizeFlag accepts --log_file for --log-file.
func normalizeFlag(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the directory settings and the catalog are resolved
// against
func getBaseDir() string {
	return baseDir
}

// setupLogging points the default slog logger at --log-file. Without one,
// logs are discarded: the terminal belongs to the UI.
func setupLogging() error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = f
		logOut = f
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// loadSettings reads the settings file and applies flag overrides.
func loadSettings() (config.Settings, error) {
	cfg, err := config.Load(getBaseDir())
	if err != nil {
		return config.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	s := cfg.WithDefaults()
	if dbPath != "" {
		s.DBPath = dbPath
	}
	return s, nil
}

// catalogPath resolves the catalog location against the base directory.
func catalogPath(dir string, s config.Settings) string {
	if filepath.IsAbs(s.DBPath) {
		return s.DBPath
	}
	return filepath.Join(dir, s.DBPath)
}

func openCatalog(s config.Settings) (*catalog.DB, error) {
	path := catalogPath(getBaseDir(), s)
	db, err := catalog.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return db, nil
}
