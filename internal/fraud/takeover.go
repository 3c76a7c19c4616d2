package fraud

import (
	"context"
	"sort"

	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

// DetectAccountTakeover computes a composite footprint score per user:
// USES out-edge count + OWNS out-edge count + count of used devices whose
// location is the unknown sentinel. Edge counts include edges to entities
// that never loaded (the relationship itself is the signal); the
// unknown-location term only counts devices that resolve.
//
// Users score into the output at TakeoverReportScore and become CRITICAL at
// TakeoverCriticalScore. Output is stably sorted by composite score
// descending, ties keeping user insertion order.
func (d *Detector) DetectAccountTakeover(ctx context.Context) []TakeoverFinding {
	var findings []TakeoverFinding
	for _, user := range d.store.Users() {
		deviceCount := 0
		unknownLocation := 0
		for _, r := range d.store.RelationshipsFrom(user.ID, graph.RelationUses) {
			deviceCount++
			if dev, ok := d.store.DeviceByID(r.ToID); ok && dev.Location == graph.LocationUnknown {
				unknownLocation++
			}
		}
		accountCount := len(d.store.RelationshipsFrom(user.ID, graph.RelationOwns))

		score := deviceCount + accountCount + unknownLocation
		if score < d.thresholds.TakeoverReportScore {
			continue
		}

		level := RiskHigh
		if score >= d.thresholds.TakeoverCriticalScore {
			level = RiskCritical
		}

		findings = append(findings, TakeoverFinding{
			ID:                     types.NewID(),
			UserID:                 user.ID,
			UserName:               user.Name,
			UserRisk:               user.RiskScore,
			DeviceCount:            deviceCount,
			AccountCount:           accountCount,
			UnknownLocationDevices: unknownLocation,
			RiskScore:              score,
			RiskLevel:              level,
		})
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].RiskScore > findings[j].RiskScore
	})
	return findings
}
