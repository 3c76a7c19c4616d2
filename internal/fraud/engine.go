package fraud

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zero-day-ai/fraudlens/internal/types"
)

// Report bundles the output of every detection query over one frozen store
// snapshot.
type Report struct {
	GeneratedAt        time.Time                  `json:"generated_at"`
	DeviceSharing      []DeviceSharingFinding     `json:"device_sharing"`
	RapidTransfers     []RapidTransferFinding     `json:"rapid_transfers"`
	LargeTransactions  []LargeTransactionFinding  `json:"large_transactions"`
	MoneyLaundering    []LaunderingFinding        `json:"money_laundering"`
	AccountTakeover    []TakeoverFinding          `json:"account_takeover"`
	NetworkConnections []NetworkConnectionFinding `json:"network_connections"`
	Summary            RiskSummary                `json:"summary"`
}

// FindingCount returns the total number of findings across all queries,
// excluding the summary.
func (r *Report) FindingCount() int {
	return len(r.DeviceSharing) + len(r.RapidTransfers) + len(r.LargeTransactions) +
		len(r.MoneyLaundering) + len(r.AccountTakeover) + len(r.NetworkConnections)
}

// Engine runs every detection query concurrently over the detector's frozen
// store. Queries are independent pure reads, so parallel evaluation is safe;
// the group context only matters for early exit on cancellation.
type Engine struct {
	queries Queries
	logger  *slog.Logger
}

// NewEngine creates an Engine over the given query surface, typically a
// *Detector or a TracedDetector wrapping one. A nil logger discards output.
func NewEngine(queries Queries, logger *slog.Logger) (*Engine, error) {
	if queries == nil {
		return nil, types.NewError(types.DETECT_STORE_REQUIRED, "engine requires a query surface")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{queries: queries, logger: logger}, nil
}

// Run executes all queries and assembles a Report. The context is checked
// at entry and between queries via the errgroup; the queries themselves do
// no I/O and need no timeout.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{GeneratedAt: start}

	parent := ctx
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report.DeviceSharing = e.queries.DetectDeviceSharing(ctx)
		return nil
	})
	g.Go(func() error {
		report.RapidTransfers = e.queries.DetectRapidTransfers(ctx)
		return nil
	})
	g.Go(func() error {
		report.LargeTransactions = e.queries.DetectLargeTransactions(ctx)
		return nil
	})
	g.Go(func() error {
		report.MoneyLaundering = e.queries.DetectMoneyLaundering(ctx)
		return nil
	})
	g.Go(func() error {
		report.AccountTakeover = e.queries.DetectAccountTakeover(ctx)
		return nil
	})
	g.Go(func() error {
		report.NetworkConnections = e.queries.DetectNetworkConnections(ctx)
		return nil
	})
	g.Go(func() error {
		report.Summary = e.queries.Summarize(ctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The errgroup context is canceled once Wait returns; only caller
	// cancellation should abort the run.
	if err := parent.Err(); err != nil {
		return nil, err
	}

	e.logger.Info("detection run complete",
		"findings", report.FindingCount(),
		"duration", time.Since(start),
	)
	return report, nil
}
