package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/fraudlens/internal/export"
)

var (
	exportDataFile string
	exportURI      string
	exportUser     string
	exportPassword string
	exportDatabase string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the activity graph to a Neo4j database",
	Long: `Load a financial activity graph and mirror it into Neo4j: one node
per user, device, account, and transaction, plus USES, OWNS, SENDS,
RECEIVES, SHARES_PHONE, and SIMILAR_EMAIL relationships.

Connection settings come from the configuration file and can be
overridden with flags.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDataFile, "data", "", "Path to a YAML dataset file (default: built-in demo)")
	exportCmd.Flags().StringVar(&exportURI, "uri", "", "Neo4j connection URI (overrides config)")
	exportCmd.Flags().StringVar(&exportUser, "username", "", "Neo4j username (overrides config)")
	exportCmd.Flags().StringVar(&exportPassword, "password", "", "Neo4j password (overrides config)")
	exportCmd.Flags().StringVar(&exportDatabase, "database", "", "Neo4j database name (overrides config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)

	neoCfg := cfg.Neo4j
	if exportURI != "" {
		neoCfg.URI = exportURI
	}
	if exportUser != "" {
		neoCfg.Username = exportUser
	}
	if exportPassword != "" {
		neoCfg.Password = exportPassword
	}
	if exportDatabase != "" {
		neoCfg.Database = exportDatabase
	}

	store, err := loadStore(logger, exportDataFile)
	if err != nil {
		return err
	}

	client, err := export.NewNeo4jClient(neoCfg)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Close(closeCtx); err != nil {
			logger.Warn("failed to close Neo4j connection", "error", err)
		}
	}()

	exporter := export.NewExporter(client, logger)
	stats, err := exporter.Export(ctx, store)
	if err != nil {
		return err
	}

	cmd.Printf("Exported %d nodes and %d relationships to %s\n",
		stats.Nodes, stats.Relationships, neoCfg.URI)
	return nil
}
