package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/zero-day-ai/fraudlens/internal/dataset"
	"github.com/zero-day-ai/fraudlens/internal/fraud"
	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/observability"
	"github.com/zero-day-ai/fraudlens/pkg/version"
)

var (
	detectDataFile string
	detectJSON     bool
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Run all fraud pattern queries against a dataset",
	Long: `Load a financial activity graph and run every fraud pattern query
against it: device sharing, rapid transfers, large transactions,
money laundering, account takeover, and network connections.

Without --data, the built-in demo dataset is analyzed.`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectDataFile, "data", "", "Path to a YAML dataset file (default: built-in demo)")
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Emit the report as JSON instead of the console view")
}

func runDetect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)

	provider, err := observability.InitTracing(ctx, cfg.Tracing, version.Version)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := observability.ShutdownTracing(shutdownCtx, provider); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	store, err := loadStore(logger, detectDataFile)
	if err != nil {
		return err
	}
	logger.Info("graph loaded",
		"users", store.UserCount(),
		"devices", store.DeviceCount(),
		"accounts", store.AccountCount(),
		"transactions", store.TransactionCount(),
		"relationships", store.RelationshipCount())

	detector, err := fraud.NewDetector(store, cfg.Thresholds)
	if err != nil {
		return err
	}

	var queries fraud.Queries = detector
	if cfg.Tracing.Enabled {
		queries = fraud.NewTracedDetector(detector, otel.Tracer("fraudlens"))
	}

	engine, err := fraud.NewEngine(queries, logger)
	if err != nil {
		return err
	}

	report, err := engine.Run(ctx)
	if err != nil {
		return err
	}

	if detectJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	renderReport(cmd.OutOrStdout(), report)
	return nil
}

// loadStore reads the dataset at path, or the built-in demo graph when
// path is empty.
func loadStore(logger *slog.Logger, path string) (*graph.Store, error) {
	if path != "" {
		logger.Info("loading dataset", "path", path)
		return dataset.LoadFile(path)
	}
	logger.Info("loading built-in demo dataset")
	return dataset.Demo()
}
