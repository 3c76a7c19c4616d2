package fraud

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names for detection queries.
const (
	SpanDeviceSharing      = "fraudlens.detect.device_sharing"
	SpanRapidTransfers     = "fraudlens.detect.rapid_transfers"
	SpanLargeTransactions  = "fraudlens.detect.large_transactions"
	SpanMoneyLaundering    = "fraudlens.detect.money_laundering"
	SpanAccountTakeover    = "fraudlens.detect.account_takeover"
	SpanNetworkConnections = "fraudlens.detect.network_connections"
	SpanSummarize          = "fraudlens.detect.summarize"
)

// TracedDetector wraps a Queries implementation with OpenTelemetry tracing.
// Each query runs inside its own span carrying the finding count and query
// duration.
//
// Thread-safety: safe for concurrent use (delegates to the inner detector).
type TracedDetector struct {
	inner  Queries
	tracer trace.Tracer
}

var _ Queries = (*TracedDetector)(nil)

// NewTracedDetector wraps inner with tracing on the given tracer.
func NewTracedDetector(inner Queries, tracer trace.Tracer) *TracedDetector {
	return &TracedDetector{inner: inner, tracer: tracer}
}

func (t *TracedDetector) traced(ctx context.Context, name string, run func(context.Context) int) {
	ctx, span := t.tracer.Start(ctx, name)
	defer span.End()

	start := time.Now()
	count := run(ctx)

	span.SetAttributes(
		attribute.Int("fraudlens.findings", count),
		attribute.Float64("fraudlens.duration_ms", float64(time.Since(start).Milliseconds())),
	)
	span.SetStatus(codes.Ok, "")
}

// DetectDeviceSharing runs the device-sharing query inside a span.
func (t *TracedDetector) DetectDeviceSharing(ctx context.Context) []DeviceSharingFinding {
	var out []DeviceSharingFinding
	t.traced(ctx, SpanDeviceSharing, func(ctx context.Context) int {
		out = t.inner.DetectDeviceSharing(ctx)
		return len(out)
	})
	return out
}

// DetectRapidTransfers runs the rapid-transfer query inside a span.
func (t *TracedDetector) DetectRapidTransfers(ctx context.Context) []RapidTransferFinding {
	var out []RapidTransferFinding
	t.traced(ctx, SpanRapidTransfers, func(ctx context.Context) int {
		out = t.inner.DetectRapidTransfers(ctx)
		return len(out)
	})
	return out
}

// DetectLargeTransactions runs the large-transaction query inside a span.
func (t *TracedDetector) DetectLargeTransactions(ctx context.Context) []LargeTransactionFinding {
	var out []LargeTransactionFinding
	t.traced(ctx, SpanLargeTransactions, func(ctx context.Context) int {
		out = t.inner.DetectLargeTransactions(ctx)
		return len(out)
	})
	return out
}

// DetectMoneyLaundering runs the laundering sentinel query inside a span.
func (t *TracedDetector) DetectMoneyLaundering(ctx context.Context) []LaunderingFinding {
	var out []LaunderingFinding
	t.traced(ctx, SpanMoneyLaundering, func(ctx context.Context) int {
		out = t.inner.DetectMoneyLaundering(ctx)
		return len(out)
	})
	return out
}

// DetectAccountTakeover runs the takeover query inside a span.
func (t *TracedDetector) DetectAccountTakeover(ctx context.Context) []TakeoverFinding {
	var out []TakeoverFinding
	t.traced(ctx, SpanAccountTakeover, func(ctx context.Context) int {
		out = t.inner.DetectAccountTakeover(ctx)
		return len(out)
	})
	return out
}

// DetectNetworkConnections runs the network-connection query inside a span.
func (t *TracedDetector) DetectNetworkConnections(ctx context.Context) []NetworkConnectionFinding {
	var out []NetworkConnectionFinding
	t.traced(ctx, SpanNetworkConnections, func(ctx context.Context) int {
		out = t.inner.DetectNetworkConnections(ctx)
		return len(out)
	})
	return out
}

// Summarize runs the summary aggregation inside a span.
func (t *TracedDetector) Summarize(ctx context.Context) RiskSummary {
	var out RiskSummary
	t.traced(ctx, SpanSummarize, func(ctx context.Context) int {
		out = t.inner.Summarize(ctx)
		return 0
	})
	return out
}
