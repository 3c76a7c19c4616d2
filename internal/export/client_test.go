package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-day-ai/fraudlens/internal/types"
)

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty URI", func(c *Config) { c.URI = "" }},
		{"empty username", func(c *Config) { c.Username = "" }},
		{"empty password", func(c *Config) { c.Password = "" }},
		{"zero timeout", func(c *Config) { c.ConnectionTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, types.EXPORT_INVALID_CONFIG, types.CodeOf(err))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "bolt://localhost:7687", cfg.URI)
	assert.Equal(t, 50, cfg.MaxConnectionPoolSize)
	assert.Equal(t, 30*time.Second, cfg.ConnectionTimeout)
}

func TestNewNeo4jClient_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URI = ""
	_, err := NewNeo4jClient(cfg)
	require.Error(t, err)
	assert.Equal(t, types.EXPORT_INVALID_CONFIG, types.CodeOf(err))
}

func TestConnectFailed_IsRetryable(t *testing.T) {
	cause := errors.New("connection refused")
	err := connectFailed(5, cause)

	require.Error(t, err)
	assert.True(t, types.IsRetryable(err), "exhausted connection attempts should be retryable")
	assert.Equal(t, types.EXPORT_CONNECTION_FAILED, types.CodeOf(err))
	assert.ErrorIs(t, err, cause)
}

func TestMockClient_Lifecycle(t *testing.T) {
	ctx := context.Background()
	client := NewMockClient()

	assert.False(t, client.Health(ctx).IsHealthy())

	require.NoError(t, client.Connect(ctx))
	assert.True(t, client.Health(ctx).IsHealthy())

	require.NoError(t, client.CreateNode(ctx, LabelUser, "U1", map[string]any{"name": "Alice"}))
	require.NoError(t, client.CreateNode(ctx, LabelDevice, "D1", nil))
	require.NoError(t, client.CreateRelationship(ctx, "U1", "D1", "USES", nil))

	assert.Len(t, client.Nodes(), 2)
	assert.Len(t, client.Relationships(), 1)

	// Relationships to unrecorded nodes fail like the real MATCH.
	err := client.CreateRelationship(ctx, "U1", "missing", "USES", nil)
	require.Error(t, err)
	assert.Equal(t, types.EXPORT_WRITE_FAILED, types.CodeOf(err))

	require.NoError(t, client.Close(ctx))
	assert.False(t, client.Health(ctx).IsHealthy())
}

func TestMockClient_ConnectError(t *testing.T) {
	client := NewMockClient()
	client.SetConnectError(types.NewRetryableError(types.EXPORT_CONNECTION_FAILED, "refused"))

	err := client.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsRetryable(err))
}
