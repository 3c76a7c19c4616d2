package export

import (
	"context"
	"fmt"
	"sync"

	"github.com/zero-day-ai/fraudlens/internal/types"
)

// MockNode is a node recorded by the mock client.
type MockNode struct {
	Label string
	ID    string
	Props map[string]any
}

// MockRelationship is a relationship recorded by the mock client.
type MockRelationship struct {
	FromID string
	ToID   string
	Type   string
	Props  map[string]any
}

// MockClient is an in-memory Client for testing the exporter. It records
// every node and relationship and can be configured to fail.
type MockClient struct {
	mu sync.RWMutex

	connected     bool
	nodes         map[string]MockNode
	nodeOrder     []string
	relationships []MockRelationship

	connectError error
	writeError   error
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a disconnected mock client.
func NewMockClient() *MockClient {
	return &MockClient{
		nodes: make(map[string]MockNode),
	}
}

// Connect marks the client connected, or returns the configured error.
func (m *MockClient) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.connectError != nil {
		return m.connectError
	}
	m.connected = true
	return nil
}

// Close marks the client disconnected.
func (m *MockClient) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// Health reports healthy while connected.
func (m *MockClient) Health(ctx context.Context) types.HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return types.Unhealthy("not connected")
	}
	return types.Healthy("mock export client")
}

// CreateNode records the node, keyed by id like the real MERGE.
func (m *MockClient) CreateNode(ctx context.Context, label string, id string, props map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return types.NewError(types.EXPORT_CONNECTION_CLOSED, "not connected")
	}
	if m.writeError != nil {
		return m.writeError
	}
	if _, exists := m.nodes[id]; !exists {
		m.nodeOrder = append(m.nodeOrder, id)
	}
	m.nodes[id] = MockNode{Label: label, ID: id, Props: props}
	return nil
}

// CreateRelationship records the relationship. Like the real client's MATCH,
// both endpoints must already exist.
func (m *MockClient) CreateRelationship(ctx context.Context, fromID, toID, relType string, props map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.connected {
		return types.NewError(types.EXPORT_CONNECTION_CLOSED, "not connected")
	}
	if m.writeError != nil {
		return m.writeError
	}
	if _, ok := m.nodes[fromID]; !ok {
		return types.NewErrorf(types.EXPORT_WRITE_FAILED, "from node not found: %s", fromID)
	}
	if _, ok := m.nodes[toID]; !ok {
		return types.NewErrorf(types.EXPORT_WRITE_FAILED, "to node not found: %s", toID)
	}
	m.relationships = append(m.relationships, MockRelationship{
		FromID: fromID,
		ToID:   toID,
		Type:   relType,
		Props:  props,
	})
	return nil
}

// SetConnectError configures Connect to fail.
func (m *MockClient) SetConnectError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectError = err
}

// SetWriteError configures write operations to fail.
func (m *MockClient) SetWriteError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

// Nodes returns recorded nodes in creation order.
func (m *MockClient) Nodes() []MockNode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]MockNode, 0, len(m.nodeOrder))
	for _, id := range m.nodeOrder {
		out = append(out, m.nodes[id])
	}
	return out
}

// NodeByID returns one recorded node.
func (m *MockClient) NodeByID(id string) (MockNode, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[id]
	return n, ok
}

// Relationships returns recorded relationships in creation order.
func (m *MockClient) Relationships() []MockRelationship {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]MockRelationship, len(m.relationships))
	copy(out, m.relationships)
	return out
}

// RelationshipsOfType filters recorded relationships by type.
func (m *MockClient) RelationshipsOfType(relType string) []MockRelationship {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []MockRelationship
	for _, r := range m.relationships {
		if r.Type == relType {
			out = append(out, r)
		}
	}
	return out
}

// String summarizes the recorded state, for test failure messages.
func (m *MockClient) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fmt.Sprintf("MockClient{nodes: %d, relationships: %d}", len(m.nodes), len(m.relationships))
}
