package fraud

import (
	"context"
	"sort"

	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

type userPair struct {
	a string // lower user id
	b string
}

func orderPair(u1, u2 string) userPair {
	if u2 < u1 {
		u1, u2 = u2, u1
	}
	return userPair{a: u1, b: u2}
}

// DetectNetworkConnections scores unordered pairs of users that share at
// least one device, adding one point per shared device plus one each for a
// SHARES_PHONE or SIMILAR_EMAIL relationship in either direction between
// them. Pairs are CRITICAL at NetworkCriticalScore, HIGH at
// NetworkHighScore, MEDIUM otherwise, sorted by score descending with
// stable ties in pair first-encounter order.
func (d *Detector) DetectNetworkConnections(ctx context.Context) []NetworkConnectionFinding {
	// distinct users per device, both endpoints resolved
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

	sharedDevices := make(map[userPair]int)
	var pairOrder []userPair
	for _, deviceID := range deviceOrder {
		users := deviceUsers[deviceID]
		for i := 0; i < len(users); i++ {
			for j := i + 1; j < len(users); j++ {
				key := orderPair(users[i], users[j])
				if _, ok := sharedDevices[key]; !ok {
					pairOrder = append(pairOrder, key)
				}
				sharedDevices[key]++
			}
		}
	}

	pairFlag := func(relType graph.RelationType) map[userPair]bool {
		flags := make(map[userPair]bool)
		d.store.EachRelationship(relType, func(r graph.Relationship) bool {
			if _, ok := d.store.UserByID(r.FromID); !ok {
				return true
			}
			if _, ok := d.store.UserByID(r.ToID); !ok {
				return true
			}
			flags[orderPair(r.FromID, r.ToID)] = true
			return true
		})
		return flags
	}
	phone := pairFlag(graph.RelationSharesPhone)
	email := pairFlag(graph.RelationSimilarEmail)

	var findings []NetworkConnectionFinding
	for _, key := range pairOrder {
		sharesPhone := 0
		if phone[key] {
			sharesPhone = 1
		}
		similarEmail := 0
		if email[key] {
			similarEmail = 1
		}
		score := sharedDevices[key] + sharesPhone + similarEmail

		level := RiskMedium
		switch {
		case score >= d.thresholds.NetworkCriticalScore:
			level = RiskCritical
		case score >= d.thresholds.NetworkHighScore:
			level = RiskHigh
		}

		u1, _ := d.store.UserByID(key.a)
		u2, _ := d.store.UserByID(key.b)
		findings = append(findings, NetworkConnectionFinding{
			ID:              types.NewID(),
			UserID1:         key.a,
			UserID2:         key.b,
			UserName1:       u1.Name,
			UserName2:       u2.Name,
			SharedDevices:   sharedDevices[key],
			SharesPhone:     sharesPhone,
			SimilarEmail:    similarEmail,
			ConnectionScore: score,
			RiskLevel:       level,
		})
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].ConnectionScore > findings[j].ConnectionScore
	})
	return findings
}
