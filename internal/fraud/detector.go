package fraud

import (
	"context"
	"time"

	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

// Queries is the read-only surface of the detection engine. All methods are
// safe for concurrent use over a frozen store and never return an error:
// unresolvable relationship endpoints are absorbed, not surfaced.
type Queries interface {
	DetectDeviceSharing(ctx context.Context) []DeviceSharingFinding
	DetectRapidTransfers(ctx context.Context) []RapidTransferFinding
	DetectLargeTransactions(ctx context.Context) []LargeTransactionFinding
	DetectMoneyLaundering(ctx context.Context) []LaunderingFinding
	DetectAccountTakeover(ctx context.Context) []TakeoverFinding
	DetectNetworkConnections(ctx context.Context) []NetworkConnectionFinding
	Summarize(ctx context.Context) RiskSummary
}

// Detector runs the detection queries against one explicitly owned store
// instance. It holds no mutable state of its own, so a single Detector may
// serve concurrent callers.
type Detector struct {
	store      *graph.Store
	thresholds Thresholds
	now        func() time.Time
}

var _ Queries = (*Detector)(nil)

// DetectorOption is a functional option for configuring a Detector.
type DetectorOption func(*Detector)

// WithClock overrides the wall-clock source used for time-window filters.
// Tests freeze it; production code leaves the default time.Now.
func WithClock(now func() time.Time) DetectorOption {
	return func(d *Detector) {
		d.now = now
	}
}

// NewDetector creates a Detector over the given store. Thresholds are
// validated here so malformed configuration is rejected at construction
// time rather than deep inside a query.
func NewDetector(store *graph.Store, thresholds Thresholds, opts ...DetectorOption) (*Detector, error) {
	if store == nil {
		return nil, types.NewError(types.DETECT_STORE_REQUIRED, "detector requires a graph store")
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	d := &Detector{
		store:      store,
		thresholds: thresholds,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Store returns the underlying graph store.
func (d *Detector) Store() *graph.Store {
	return d.store
}

// Thresholds returns the validated threshold configuration.
func (d *Detector) Thresholds() Thresholds {
	return d.thresholds
}

// bankOf resolves an account identifier to its bank name, or OwnerUnknown
// when the account was never loaded.
func (d *Detector) bankOf(accountID string) string {
	if a, ok := d.store.AccountByID(accountID); ok {
		return a.Bank
	}
	return OwnerUnknown
}
