package fraud

import (
	"context"

	"github.com/zero-day-ai/fraudlens/internal/graph"
)

// Summary weighting factors. Device sharing and high-risk users weigh more
// than raw transaction and account counts.
const (
	weightHighRiskUsers   = 0.3
	weightSuspiciousTx    = 0.2
	weightDeviceSharing   = 0.3
	weightOffshoreAccount = 0.2
)

// Summarize aggregates portfolio-level exposure: users above the high-risk
// score, transactions that are large or still pending, user pairs sharing a
// device, and accounts at the offshore sentinel bank, combined into a
// weighted total. A device shared by n users contributes n*(n-1)/2 incidents,
// one per sharing pair.
func (d *Detector) Summarize(ctx context.Context) RiskSummary {
	var s RiskSummary

	for _, u := range d.store.Users() {
		if u.RiskScore > d.thresholds.HighRiskUserScore {
			s.HighRiskUsers++
		}
	}

	for _, tx := range d.store.Transactions() {
		if tx.Amount > d.thresholds.LargeAmount || tx.Status == graph.StatusPending {
			s.SuspiciousTransactions++
		}
	}

	for _, f := range d.DetectDeviceSharing(ctx) {
		n := len(f.UserIDs)
		s.DeviceSharingIncidents += n * (n - 1) / 2
	}

	for _, a := range d.store.Accounts() {
		if a.Bank == d.thresholds.OffshoreBank {
			s.OffshoreAccounts++
		}
	}

	s.TotalRiskScore = float64(s.HighRiskUsers)*weightHighRiskUsers +
		float64(s.SuspiciousTransactions)*weightSuspiciousTx +
		float64(s.DeviceSharingIncidents)*weightDeviceSharing +
		float64(s.OffshoreAccounts)*weightOffshoreAccount
	return s
}
