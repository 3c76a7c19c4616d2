package fraud

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/fraudlens/internal/graph"
)

// testNow is the frozen reference clock used across detection tests.
var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func frozenClock() func() time.Time {
	return func() time.Time { return testNow }
}

// newTestDetector builds a detector over the store with default thresholds
// and a frozen clock.
func newTestDetector(t *testing.T, store *graph.Store) *Detector {
	t.Helper()
	store.Freeze()
	d, err := NewDetector(store, DefaultThresholds(), WithClock(frozenClock()))
	require.NoError(t, err)
	return d
}

func addUser(t *testing.T, s *graph.Store, id, name string, risk float64) {
	t.Helper()
	require.NoError(t, s.AddUser(graph.User{ID: id, Name: name, RiskScore: risk}))
}

func addDevice(t *testing.T, s *graph.Store, id, location string) {
	t.Helper()
	require.NoError(t, s.AddDevice(graph.Device{ID: id, Type: "mobile", IP: "192.168.1." + id, Location: location}))
}

func addAccount(t *testing.T, s *graph.Store, id, bank string) {
	t.Helper()
	require.NoError(t, s.AddAccount(graph.Account{ID: id, Bank: bank, AccountType: "checking"}))
}

func addTx(t *testing.T, s *graph.Store, id, from, to string, amount float64, ts time.Time) {
	t.Helper()
	require.NoError(t, s.AddTransaction(graph.Transaction{
		ID:          id,
		FromAccount: from,
		ToAccount:   to,
		Amount:      amount,
		Status:      graph.StatusCompleted,
		Timestamp:   ts,
	}))
}

func addRel(t *testing.T, s *graph.Store, from, to string, relType graph.RelationType) {
	t.Helper()
	require.NoError(t, s.AddRelationship(from, to, relType, nil))
}
