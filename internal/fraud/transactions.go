package fraud

import (
	"context"
	"sort"

	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

// DetectLargeTransactions reports every transaction with an amount above
// LargeAmount, attributed to the owning user of the source account. The
// owner is the first OWNS relationship, in store insertion order, whose
// target is the source account and whose source resolves to a loaded user;
// when none resolves the finding carries OwnerUnknown rather than failing.
//
// Risk level is CRITICAL above CriticalAmount, HIGH otherwise. Output is
// stably sorted by amount descending, so ties keep encounter order.
func (d *Detector) DetectLargeTransactions(ctx context.Context) []LargeTransactionFinding {
	var findings []LargeTransactionFinding
	for _, tx := range d.store.Transactions() {
		if tx.Amount <= d.thresholds.LargeAmount {
			continue
		}

		owner := OwnerUnknown
		d.store.EachRelationship(graph.RelationOwns, func(r graph.Relationship) bool {
			if r.ToID != tx.FromAccount {
				return true
			}
			if u, ok := d.store.UserByID(r.FromID); ok {
				owner = u.Name
				return false
			}
			return true
		})

		level := RiskHigh
		if tx.Amount > d.thresholds.CriticalAmount {
			level = RiskCritical
		}

		findings = append(findings, LargeTransactionFinding{
			ID:            types.NewID(),
			TransactionID: tx.ID,
			UserName:      owner,
			Amount:        tx.Amount,
			FromBank:      d.bankOf(tx.FromAccount),
			ToBank:        d.bankOf(tx.ToAccount),
			Timestamp:     tx.Timestamp,
			RiskLevel:     level,
		})
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Amount > findings[j].Amount
	})
	return findings
}

// DetectMoneyLaundering flags every transaction above LaunderingAmount
// whose source or destination account belongs to the offshore sentinel
// bank. All flagged transactions are HIGH; output follows transaction
// insertion order.
//
// This is a single-transaction indicator: it deliberately does not chase
// multi-hop chains through intermediate accounts.
func (d *Detector) DetectMoneyLaundering(ctx context.Context) []LaunderingFinding {
	var findings []LaunderingFinding
	for _, tx := range d.store.Transactions() {
		if tx.Amount <= d.thresholds.LaunderingAmount {
			continue
		}

		fromBank := d.bankOf(tx.FromAccount)
		toBank := d.bankOf(tx.ToAccount)
		if fromBank != d.thresholds.OffshoreBank && toBank != d.thresholds.OffshoreBank {
			continue
		}

		findings = append(findings, LaunderingFinding{
			ID:            types.NewID(),
			TransactionID: tx.ID,
			Amount:        tx.Amount,
			FromBank:      fromBank,
			ToBank:        toBank,
			RiskLevel:     RiskHigh,
		})
	}
	return findings
}
