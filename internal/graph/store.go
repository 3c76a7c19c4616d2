package graph

import (
	"sync"

	"github.com/zero-day-ai/fraudlens/internal/types"
)

// edge is the adjacency entry for one outgoing relationship.
type edge struct {
	to         string
	relType    RelationType
	properties map[string]any
}

// Store is the in-memory property graph. Entities live in per-kind tables
// keyed by identifier; relationships live in adjacency lists keyed by source
// identifier. A Store is built single-threaded during ingestion, then frozen
// with Freeze, after which all reads may run concurrently.
//
// Writes are last-write-wins for entities and append-only for
// relationships. A Store must not be shared between goroutines before
// Freeze is called.
type Store struct {
	mu     sync.RWMutex
	frozen bool

	users        map[string]User
	devices      map[string]Device
	accounts     map[string]Account
	transactions map[string]Transaction

	// first-insertion order per kind, for deterministic iteration
	userOrder        []string
	deviceOrder      []string
	accountOrder     []string
	transactionOrder []string

	adjacency   map[string][]edge
	sourceOrder []string
}

// NewStore creates an empty Store ready for ingestion.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]User),
		devices:      make(map[string]Device),
		accounts:     make(map[string]Account),
		transactions: make(map[string]Transaction),
		adjacency:    make(map[string][]edge),
	}
}

// Freeze ends the write phase. Any subsequent Add returns
// GRAPH_STORE_FROZEN. Freezing twice is a no-op.
func (s *Store) Freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frozen = true
}

// Frozen reports whether the store has left the write phase.
func (s *Store) Frozen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frozen
}

func (s *Store) writable() error {
	if s.frozen {
		return types.NewError(types.GRAPH_STORE_FROZEN, "store is frozen; writes are not allowed after Freeze")
	}
	return nil
}

// AddUser inserts or overwrites the user record under its ID.
func (s *Store) AddUser(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}
	if u.ID == "" {
		return types.NewError(types.GRAPH_INVALID_ENTITY, "user ID cannot be empty")
	}
	if _, exists := s.users[u.ID]; !exists {
		s.userOrder = append(s.userOrder, u.ID)
	}
	s.users[u.ID] = u
	return nil
}

// AddDevice inserts or overwrites the device record under its ID.
func (s *Store) AddDevice(d Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}
	if d.ID == "" {
		return types.NewError(types.GRAPH_INVALID_ENTITY, "device ID cannot be empty")
	}
	if _, exists := s.devices[d.ID]; !exists {
		s.deviceOrder = append(s.deviceOrder, d.ID)
	}
	s.devices[d.ID] = d
	return nil
}

// AddAccount inserts or overwrites the account record under its ID.
func (s *Store) AddAccount(a Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}
	if a.ID == "" {
		return types.NewError(types.GRAPH_INVALID_ENTITY, "account ID cannot be empty")
	}
	if _, exists := s.accounts[a.ID]; !exists {
		s.accountOrder = append(s.accountOrder, a.ID)
	}
	s.accounts[a.ID] = a
	return nil
}

// AddTransaction inserts or overwrites the transaction record under its ID.
// Endpoint account identifiers are not required to resolve.
func (s *Store) AddTransaction(t Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}
	if t.ID == "" {
		return types.NewError(types.GRAPH_INVALID_ENTITY, "transaction ID cannot be empty")
	}
	if t.Amount < 0 {
		return types.NewErrorf(types.GRAPH_INVALID_ENTITY, "transaction %s has negative amount %.2f", t.ID, t.Amount)
	}
	if _, exists := s.transactions[t.ID]; !exists {
		s.transactionOrder = append(s.transactionOrder, t.ID)
	}
	s.transactions[t.ID] = t
	return nil
}

// AddRelationship appends a directed edge from fromID to toID. Multiple
// edges may exist for the same ordered pair; existing entries are never
// overwritten. Endpoints are raw identifiers and need not resolve to loaded
// entities.
func (s *Store) AddRelationship(fromID, toID string, relType RelationType, properties map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}
	if fromID == "" || toID == "" {
		return types.NewError(types.GRAPH_INVALID_ENTITY, "relationship endpoints cannot be empty")
	}
	if _, exists := s.adjacency[fromID]; !exists {
		s.sourceOrder = append(s.sourceOrder, fromID)
	}
	s.adjacency[fromID] = append(s.adjacency[fromID], edge{
		to:         toID,
		relType:    relType,
		properties: properties,
	})
	return nil
}

// UserByID looks up a user. The second return is false when absent.
func (s *Store) UserByID(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// DeviceByID looks up a device.
func (s *Store) DeviceByID(id string) (Device, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.devices[id]
	return d, ok
}

// AccountByID looks up an account.
func (s *Store) AccountByID(id string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	return a, ok
}

// TransactionByID looks up a transaction.
func (s *Store) TransactionByID(id string) (Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	return t, ok
}

// Users returns all users in first-insertion order.
func (s *Store) Users() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		out = append(out, s.users[id])
	}
	return out
}

// Devices returns all devices in first-insertion order.
func (s *Store) Devices() []Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Device, 0, len(s.deviceOrder))
	for _, id := range s.deviceOrder {
		out = append(out, s.devices[id])
	}
	return out
}

// Accounts returns all accounts in first-insertion order.
func (s *Store) Accounts() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Account, 0, len(s.accountOrder))
	for _, id := range s.accountOrder {
		out = append(out, s.accounts[id])
	}
	return out
}

// Transactions returns all transactions in first-insertion order.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, 0, len(s.transactionOrder))
	for _, id := range s.transactionOrder {
		out = append(out, s.transactions[id])
	}
	return out
}

// RelationshipsOfType returns every relationship carrying the given tag, in
// first-insertion order of source identifiers and append order within a
// source.
func (s *Store) RelationshipsOfType(relType RelationType) []Relationship {
	var out []Relationship
	s.EachRelationship(relType, func(r Relationship) bool {
		out = append(out, r)
		return true
	})
	return out
}

// EachRelationship visits relationships of the given tag in deterministic
// order, stopping early when fn returns false. This is the traversal
// primitive the detection queries build on; it never faults on endpoints
// that do not resolve.
func (s *Store) EachRelationship(relType RelationType, fn func(Relationship) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, from := range s.sourceOrder {
		for _, e := range s.adjacency[from] {
			if e.relType != relType {
				continue
			}
			cont := fn(Relationship{
				FromID:     from,
				ToID:       e.to,
				Type:       e.relType,
				Properties: e.properties,
			})
			if !cont {
				return
			}
		}
	}
}

// RelationshipsFrom returns the outgoing relationships of a source node
// carrying the given tag, in append order.
func (s *Store) RelationshipsFrom(fromID string, relType RelationType) []Relationship {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Relationship
	for _, e := range s.adjacency[fromID] {
		if e.relType != relType {
			continue
		}
		out = append(out, Relationship{
			FromID:     fromID,
			ToID:       e.to,
			Type:       e.relType,
			Properties: e.properties,
		})
	}
	return out
}

// UserCount returns the number of loaded users.
func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// DeviceCount returns the number of loaded devices.
func (s *Store) DeviceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.devices)
}

// AccountCount returns the number of loaded accounts.
func (s *Store) AccountCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// TransactionCount returns the number of loaded transactions.
func (s *Store) TransactionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transactions)
}

// RelationshipCount returns the total number of edges of all types.
func (s *Store) RelationshipCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, edges := range s.adjacency {
		n += len(edges)
	}
	return n
}
