package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/fraudlens/internal/config"
	"github.com/zero-day-ai/fraudlens/internal/observability"
)

// Global flags shared by all subcommands.
var (
	configFile  string
	verboseMode bool
	logJSON     bool
)

var rootCmd = &cobra.Command{
	Use:   "fraudlens",
	Short: "FraudLens - Graph-Based Fraud Pattern Detection",
	Long: `FraudLens loads a financial activity graph of users, devices,
accounts, and transactions, then runs pattern queries that surface
fraud signals: shared devices, rapid transfer bursts, large or
offshore transactions, account takeover indicators, and suspicious
user networks.

Run 'fraudlens detect' against a YAML dataset, or without --data to
analyze the built-in demo graph.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

// newLogger builds the command logger. Verbose mode forces debug level
// and --log-json switches to machine-readable output for log shipping.
func newLogger(w io.Writer, level string) *slog.Logger {
	if verboseMode {
		level = "debug"
	}
	if logJSON {
		return observability.NewJSONLogger(w, level)
	}
	return observability.NewLogger(w, level)
}

// loadConfig layers the config file, environment, and defaults.
func loadConfig() (config.Config, error) {
	path := configFile
	if path == "" {
		path = os.Getenv("FRAUDLENS_CONFIG")
	}
	return config.Load(path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&verboseMode, "verbose", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON instead of text")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
