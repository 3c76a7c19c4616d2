package graph

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/fraudlens/internal/types"
)

func TestStore_AddEntities(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.AddUser(User{ID: "U1", Name: "Alice", RiskScore: 0.2}))
	require.NoError(t, s.AddDevice(Device{ID: "D1", Type: "mobile", IP: "10.0.0.1", Location: "Berlin"}))
	require.NoError(t, s.AddAccount(Account{ID: "A1", Bank: "First National", AccountType: "checking", Balance: 100}))
	require.NoError(t, s.AddTransaction(Transaction{ID: "T1", FromAccount: "A1", ToAccount: "A2", Amount: 50, Status: StatusCompleted, Timestamp: time.Now()}))

	assert.Equal(t, 1, s.UserCount())
	assert.Equal(t, 1, s.DeviceCount())
	assert.Equal(t, 1, s.AccountCount())
	assert.Equal(t, 1, s.TransactionCount())

	u, ok := s.UserByID("U1")
	require.True(t, ok)
	assert.Equal(t, "Alice", u.Name)

	_, ok = s.UserByID("missing")
	assert.False(t, ok)
}

func TestStore_RejectsEmptyIDs(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name string
		add  func() error
	}{
		{"user", func() error { return s.AddUser(User{}) }},
		{"device", func() error { return s.AddDevice(Device{}) }},
		{"account", func() error { return s.AddAccount(Account{}) }},
		{"transaction", func() error { return s.AddTransaction(Transaction{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.add()
			require.Error(t, err)
			assert.Equal(t, types.GRAPH_INVALID_ENTITY, types.CodeOf(err))
		})
	}
}

func TestStore_RejectsNegativeAmount(t *testing.T) {
	s := NewStore()
	err := s.AddTransaction(Transaction{ID: "T1", Amount: -10})
	require.Error(t, err)
	assert.Equal(t, types.GRAPH_INVALID_ENTITY, types.CodeOf(err))
}

func TestStore_UpsertIsLastWriteWins(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.AddUser(User{ID: "U1", Name: "Alice", RiskScore: 0.2}))
	require.NoError(t, s.AddUser(User{ID: "U2", Name: "Bob", RiskScore: 0.3}))
	require.NoError(t, s.AddUser(User{ID: "U1", Name: "Alice Updated", RiskScore: 0.9}))

	assert.Equal(t, 2, s.UserCount())

	u, ok := s.UserByID("U1")
	require.True(t, ok)
	assert.Equal(t, "Alice Updated", u.Name)
	assert.Equal(t, 0.9, u.RiskScore)

	// Re-inserting keeps the original position in iteration order.
	users := s.Users()
	require.Len(t, users, 2)
	assert.Equal(t, "U1", users[0].ID)
	assert.Equal(t, "U2", users[1].ID)
}

func TestStore_IterationOrderIsInsertionOrder(t *testing.T) {
	s := NewStore()
	ids := []string{"U5", "U2", "U9", "U1", "U7"}
	for _, id := range ids {
		require.NoError(t, s.AddUser(User{ID: id}))
	}

	users := s.Users()
	require.Len(t, users, len(ids))
	for i, id := range ids {
		assert.Equal(t, id, users[i].ID)
	}
}

func TestStore_RelationshipsAreAppendOnly(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.AddRelationship("U1", "D1", RelationUses, nil))
	require.NoError(t, s.AddRelationship("U1", "D1", RelationUses, map[string]any{"channel": "web"}))

	rels := s.RelationshipsFrom("U1", RelationUses)
	require.Len(t, rels, 2, "duplicate edges must both survive")
	assert.Nil(t, rels[0].Properties)
	assert.Equal(t, "web", rels[1].Properties["channel"])
}

func TestStore_RelationshipEndpointsNeedNotResolve(t *testing.T) {
	s := NewStore()

	// Neither endpoint is loaded; the edge is stored anyway.
	require.NoError(t, s.AddRelationship("ghost-user", "ghost-device", RelationUses, nil))

	rels := s.RelationshipsOfType(RelationUses)
	require.Len(t, rels, 1)
	assert.Equal(t, "ghost-user", rels[0].FromID)
	assert.Equal(t, "ghost-device", rels[0].ToID)
}

func TestStore_RejectsEmptyRelationshipEndpoints(t *testing.T) {
	s := NewStore()
	assert.Error(t, s.AddRelationship("", "D1", RelationUses, nil))
	assert.Error(t, s.AddRelationship("U1", "", RelationUses, nil))
}

func TestStore_EachRelationship(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddRelationship("U1", "D1", RelationUses, nil))
	require.NoError(t, s.AddRelationship("U1", "A1", RelationOwns, nil))
	require.NoError(t, s.AddRelationship("U2", "D1", RelationUses, nil))
	require.NoError(t, s.AddRelationship("U3", "D2", RelationUses, nil))

	var visited []string
	s.EachRelationship(RelationUses, func(r Relationship) bool {
		visited = append(visited, r.FromID)
		return true
	})
	assert.Equal(t, []string{"U1", "U2", "U3"}, visited, "visit order follows source insertion order")

	// Early stop after the first match.
	visited = nil
	s.EachRelationship(RelationUses, func(r Relationship) bool {
		visited = append(visited, r.FromID)
		return false
	})
	assert.Equal(t, []string{"U1"}, visited)

	assert.Equal(t, 4, s.RelationshipCount())
}

func TestStore_FreezeRejectsWrites(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddUser(User{ID: "U1"}))

	s.Freeze()
	require.True(t, s.Frozen())

	frozen := types.NewError(types.GRAPH_STORE_FROZEN, "")
	assert.True(t, errors.Is(s.AddUser(User{ID: "U2"}), frozen))
	assert.True(t, errors.Is(s.AddDevice(Device{ID: "D1"}), frozen))
	assert.True(t, errors.Is(s.AddAccount(Account{ID: "A1"}), frozen))
	assert.True(t, errors.Is(s.AddTransaction(Transaction{ID: "T1"}), frozen))
	assert.True(t, errors.Is(s.AddRelationship("U1", "D1", RelationUses, nil), frozen))

	// Freezing twice is a no-op.
	s.Freeze()
	assert.True(t, s.Frozen())

	// Existing data is still readable.
	_, ok := s.UserByID("U1")
	assert.True(t, ok)
}

func TestStore_ConcurrentReadsAfterFreeze(t *testing.T) {
	s := NewStore()
	for _, id := range []string{"U1", "U2", "U3"} {
		require.NoError(t, s.AddUser(User{ID: id}))
	}
	require.NoError(t, s.AddRelationship("U1", "D1", RelationUses, nil))
	s.Freeze()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Users()
				_, _ = s.UserByID("U2")
				_ = s.RelationshipsOfType(RelationUses)
				_ = s.RelationshipCount()
			}
		}()
	}
	wg.Wait()
}
