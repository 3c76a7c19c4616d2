package fraud

import (
	"context"

	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

type accountPair struct {
	from string
	to   string
}

// DetectRapidTransfers groups transactions by ordered (from, to) account
// pair and reports pairs with at least MinRapidTransfers transfers inside
// the trailing RapidWindow. "Now" is captured once at entry so the window is
// internally consistent across the query. The pair's total is the sum of
// the recent transfers; risk level is HIGH when it exceeds RapidTotalAmount,
// MEDIUM otherwise.
//
// Endpoint banks are resolved best-effort; a pair below the count threshold
// never appears regardless of amount.
func (d *Detector) DetectRapidTransfers(ctx context.Context) []RapidTransferFinding {
	cutoff := d.now().Add(-d.thresholds.RapidWindow)

	groups := make(map[accountPair][]graph.Transaction)
	var order []accountPair
	for _, tx := range d.store.Transactions() {
		key := accountPair{from: tx.FromAccount, to: tx.ToAccount}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], tx)
	}

	var findings []RapidTransferFinding
	for _, key := range order {
		count := 0
		total := 0.0
		for _, tx := range groups[key] {
			if !tx.Timestamp.After(cutoff) {
				continue
			}
			count++
			total += tx.Amount
		}
		if count < d.thresholds.MinRapidTransfers {
			continue
		}

		level := RiskMedium
		if total > d.thresholds.RapidTotalAmount {
			level = RiskHigh
		}

		findings = append(findings, RapidTransferFinding{
			ID:            types.NewID(),
			FromAccount:   key.from,
			ToAccount:     key.to,
			FromBank:      d.bankOf(key.from),
			ToBank:        d.bankOf(key.to),
			TransferCount: count,
			TotalAmount:   total,
			RiskLevel:     level,
		})
	}
	return findings
}
