package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/fraudlens/internal/fraud"
	"github.com/zero-day-ai/fraudlens/internal/graph"
	"github.com/zero-day-ai/fraudlens/internal/types"
)

var loadNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

const minimalYAML = `
users:
  - {id: U1, name: Alice, email: alice@mail.test, phone: "555-0101", risk_score: 0.4}
devices:
  - {id: D1, type: mobile, ip: 10.0.0.1, location: Berlin}
accounts:
  - {id: A1, bank: First National, account_type: checking, balance: 100}
transactions:
  - {id: T1, from_account: A1, to_account: A1, amount: 25, status: completed, timestamp: "2026-07-01T10:00:00Z"}
  - {id: T2, from_account: A1, to_account: A1, amount: 30, status: pending, age: 15m}
relationships:
  - {from: U1, to: D1, type: USES}
  - {from: U1, to: A1, type: OWNS, properties: {since: 2024}}
`

func TestLoad(t *testing.T) {
	store, err := Load([]byte(minimalYAML), loadNow)
	require.NoError(t, err)
	require.True(t, store.Frozen(), "loaded stores arrive frozen")

	assert.Equal(t, 1, store.UserCount())
	assert.Equal(t, 1, store.DeviceCount())
	assert.Equal(t, 1, store.AccountCount())
	assert.Equal(t, 2, store.TransactionCount())
	assert.Equal(t, 2, store.RelationshipCount())

	u, ok := store.UserByID("U1")
	require.True(t, ok)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, 0.4, u.RiskScore)

	// Absolute timestamp parsed as RFC3339.
	tx, ok := store.TransactionByID("T1")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC), tx.Timestamp)
	assert.Equal(t, graph.StatusCompleted, tx.Status)

	// Relative age resolved against load time.
	tx, ok = store.TransactionByID("T2")
	require.True(t, ok)
	assert.Equal(t, loadNow.Add(-15*time.Minute), tx.Timestamp)
	assert.Equal(t, graph.StatusPending, tx.Status)

	rels := store.RelationshipsFrom("U1", graph.RelationOwns)
	require.Len(t, rels, 1)
	assert.Equal(t, 2024, rels[0].Properties["since"])
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load([]byte("users: [unclosed"), loadNow)
	require.Error(t, err)
	assert.Equal(t, types.DATASET_PARSE_FAILED, types.CodeOf(err))
}

func TestLoad_TransactionTimestampRequired(t *testing.T) {
	doc := `
transactions:
  - {id: T1, from_account: A1, to_account: A2, amount: 10, status: completed}
`
	_, err := Load([]byte(doc), loadNow)
	require.Error(t, err)
	assert.Equal(t, types.DATASET_INVALID, types.CodeOf(err))
}

func TestLoad_InvalidAge(t *testing.T) {
	doc := `
transactions:
  - {id: T1, from_account: A1, to_account: A2, amount: 10, status: completed, age: "three minutes"}
`
	_, err := Load([]byte(doc), loadNow)
	require.Error(t, err)
	assert.Equal(t, types.DATASET_INVALID, types.CodeOf(err))
}

func TestLoad_InvalidTimestamp(t *testing.T) {
	doc := `
transactions:
  - {id: T1, from_account: A1, to_account: A2, amount: 10, status: completed, timestamp: "01/07/2026"}
`
	_, err := Load([]byte(doc), loadNow)
	require.Error(t, err)
	assert.Equal(t, types.DATASET_INVALID, types.CodeOf(err))
}

func TestLoad_AgeWinsOverTimestamp(t *testing.T) {
	doc := `
transactions:
  - {id: T1, from_account: A1, to_account: A2, amount: 10, status: completed, timestamp: "2020-01-01T00:00:00Z", age: 5m}
`
	store, err := Load([]byte(doc), loadNow)
	require.NoError(t, err)

	tx, ok := store.TransactionByID("T1")
	require.True(t, ok)
	assert.Equal(t, loadNow.Add(-5*time.Minute), tx.Timestamp)
}

func TestLoad_EntityValidationSurfaces(t *testing.T) {
	doc := `
users:
  - {name: No Id}
`
	_, err := Load([]byte(doc), loadNow)
	require.Error(t, err)
	assert.Equal(t, types.GRAPH_INVALID_ENTITY, types.CodeOf(err))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalYAML), 0o644))

	store, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, store.UserCount())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, types.DATASET_READ_FAILED, types.CodeOf(err))
}

func TestDemo(t *testing.T) {
	store, err := Demo()
	require.NoError(t, err)
	require.True(t, store.Frozen())

	assert.Equal(t, 6, store.UserCount())
	assert.Equal(t, 6, store.DeviceCount())
	assert.Equal(t, 5, store.AccountCount())
	assert.Equal(t, 8, store.TransactionCount())
}

// TestDemo_TripsEveryQuery pins the demo fixture to the detection engine:
// every query must surface the planted fraud ring.
func TestDemo_TripsEveryQuery(t *testing.T) {
	store, err := Demo()
	require.NoError(t, err)

	d, err := fraud.NewDetector(store, fraud.DefaultThresholds())
	require.NoError(t, err)

	ctx := context.Background()
	assert.NotEmpty(t, d.DetectDeviceSharing(ctx))
	assert.NotEmpty(t, d.DetectRapidTransfers(ctx))
	assert.NotEmpty(t, d.DetectLargeTransactions(ctx))
	assert.NotEmpty(t, d.DetectMoneyLaundering(ctx))
	assert.NotEmpty(t, d.DetectAccountTakeover(ctx))
	assert.NotEmpty(t, d.DetectNetworkConnections(ctx))

	summary := d.Summarize(ctx)
	assert.Equal(t, 2, summary.HighRiskUsers, "0.9 and 0.8 exceed the bound; 0.7 sits exactly on it")
	assert.Equal(t, 2, summary.OffshoreAccounts)
	assert.Greater(t, summary.TotalRiskScore, 0.0)
}
