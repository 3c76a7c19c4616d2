package fraud

import (
	"context"

	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

// DetectDeviceSharing groups USES relationships by device and reports every
// device used by at least MinSharedUsers distinct users. The finding carries
// the arithmetic mean of the users' risk scores; risk level is HIGH when the
// mean exceeds HighAvgRisk, MEDIUM otherwise.
//
// Edges whose endpoints do not resolve to a loaded user and device are
// skipped. Findings are grouped by device in device first-encounter order.
func (d *Detector) DetectDeviceSharing(ctx context.Context) []DeviceSharingFinding {
	deviceUsers := make(map[string][]string)
	seen := make(map[string]map[string]struct{})
	var deviceOrder []string

	d.store.EachRelationship(graph.RelationUses, func(r graph.Relationship) bool {
		if _, ok := d.store.UserByID(r.FromID); !ok {
			return true
		}
		if _, ok := d.store.DeviceByID(r.ToID); !ok {
			return true
		}
		if _, ok := seen[r.ToID]; !ok {
			seen[r.ToID] = make(map[string]struct{})
			deviceOrder = append(deviceOrder, r.ToID)
		}
		if _, dup := seen[r.ToID][r.FromID]; dup {
			return true
		}
		seen[r.ToID][r.FromID] = struct{}{}
		deviceUsers[r.ToID] = append(deviceUsers[r.ToID], r.FromID)
		return true
	})

	var findings []DeviceSharingFinding
	for _, deviceID := range deviceOrder {
		userIDs := deviceUsers[deviceID]
		if len(userIDs) < d.thresholds.MinSharedUsers {
			continue
		}

		device, _ := d.store.DeviceByID(deviceID)
		names := make([]string, 0, len(userIDs))
		sum := 0.0
		for _, userID := range userIDs {
			u, _ := d.store.UserByID(userID)
			names = append(names, u.Name)
			sum += u.RiskScore
		}
		avg := sum / float64(len(userIDs))

		level := RiskMedium
		if avg > d.thresholds.HighAvgRisk {
			level = RiskHigh
		}

		findings = append(findings, DeviceSharingFinding{
			ID:           types.NewID(),
			DeviceID:     deviceID,
			DeviceIP:     device.IP,
			UserIDs:      userIDs,
			UserNames:    names,
			AvgRiskScore: avg,
			RiskLevel:    level,
		})
	}
	return findings
}
