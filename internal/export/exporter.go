package export

import (
	"context"
	"log/slog"

	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

// Node labels used in the exported graph.
const (
	LabelUser        = "User"
	LabelDevice      = "Device"
	LabelAccount     = "Account"
	LabelTransaction = "Transaction"
)

// Stats counts what one export run wrote.
type Stats struct {
	Nodes         int `json:"nodes"`
	Relationships int `json:"relationships"`
}

// Exporter publishes a frozen store to a Client. Nodes are written before
// relationships so endpoint MATCHes resolve. Transactions additionally get
// SENDS and RECEIVES edges synthesized from their endpoint accounts, the
// shape a graph database models transfers in:
//
//	(Account)-[:SENDS]->(Transaction)-[:RECEIVES]->(Account)
//
// Edges whose endpoints never loaded are skipped, matching the detection
// engine's treatment of dangling references.
type Exporter struct {
	client Client
	logger *slog.Logger
}

// NewExporter creates an Exporter over a connected client. A nil logger
// discards output.
func NewExporter(client Client, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{client: client, logger: logger}
}

// Export writes every entity and relationship of the store. The store must
// be frozen; exporting a store still in its write phase is rejected.
func (e *Exporter) Export(ctx context.Context, store *graph.Store) (Stats, error) {
	var stats Stats
	if !store.Frozen() {
		return stats, types.NewError(types.GRAPH_STORE_FROZEN, "export requires a frozen store")
	}

	for _, u := range store.Users() {
		props := map[string]any{
			"name":       u.Name,
			"email":      u.Email,
			"phone":      u.Phone,
			"risk_score": u.RiskScore,
		}
		if err := e.client.CreateNode(ctx, LabelUser, u.ID, props); err != nil {
			return stats, err
		}
		stats.Nodes++
	}

	for _, d := range store.Devices() {
		props := map[string]any{
			"type":     d.Type,
			"ip":       d.IP,
			"location": d.Location,
		}
		if err := e.client.CreateNode(ctx, LabelDevice, d.ID, props); err != nil {
			return stats, err
		}
		stats.Nodes++
	}

	for _, a := range store.Accounts() {
		props := map[string]any{
			"bank":         a.Bank,
			"account_type": a.AccountType,
			"balance":      a.Balance,
		}
		if err := e.client.CreateNode(ctx, LabelAccount, a.ID, props); err != nil {
			return stats, err
		}
		stats.Nodes++
	}

	for _, t := range store.Transactions() {
		props := map[string]any{
			"amount":    t.Amount,
			"status":    t.Status.String(),
			"timestamp": t.Timestamp,
		}
		if err := e.client.CreateNode(ctx, LabelTransaction, t.ID, props); err != nil {
			return stats, err
		}
		stats.Nodes++
	}

	// explicit relationships, endpoints permitting
	for _, relType := range []graph.RelationType{
		graph.RelationUses, graph.RelationOwns,
		graph.RelationSharesPhone, graph.RelationSimilarEmail,
	} {
		for _, r := range store.RelationshipsOfType(relType) {
			if !e.endpointsLoaded(store, r.FromID, r.ToID) {
				e.logger.Debug("skipping relationship with dangling endpoint",
					"type", r.Type.String(), "from", r.FromID, "to", r.ToID)
				continue
			}
			if err := e.client.CreateRelationship(ctx, r.FromID, r.ToID, r.Type.String(), r.Properties); err != nil {
				return stats, err
			}
			stats.Relationships++
		}
	}

	// transfer edges synthesized from transaction endpoints
	for _, t := range store.Transactions() {
		if _, ok := store.AccountByID(t.FromAccount); ok {
			if err := e.client.CreateRelationship(ctx, t.FromAccount, t.ID, graph.RelationSends.String(), nil); err != nil {
				return stats, err
			}
			stats.Relationships++
		}
		if _, ok := store.AccountByID(t.ToAccount); ok {
			if err := e.client.CreateRelationship(ctx, t.ID, t.ToAccount, graph.RelationReceives.String(), nil); err != nil {
				return stats, err
			}
			stats.Relationships++
		}
	}

	e.logger.Info("graph export complete",
		"nodes", stats.Nodes,
		"relationships", stats.Relationships,
	)
	return stats, nil
}

func (e *Exporter) endpointsLoaded(store *graph.Store, ids ...string) bool {
	for _, id := range ids {
		if _, ok := store.UserByID(id); ok {
			continue
		}
		if _, ok := store.DeviceByID(id); ok {
			continue
		}
		if _, ok := store.AccountByID(id); ok {
			continue
		}
		if _, ok := store.TransactionByID(id); ok {
			continue
		}
		return false
	}
	return true
}
