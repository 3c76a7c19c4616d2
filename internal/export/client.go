package export

import (
	"context"
	"time"

	"github.com/zero-day-ai/fraudlens/internal/types"
)

// Client is the write surface an export target must provide.
// Implementations must be safe for concurrent use.
type Client interface {
	// Connect establishes a connection to the graph database.
	Connect(ctx context.Context) error

	// Close releases all resources. The client is unusable afterwards.
	Close(ctx context.Context) error

	// Health reports the current state of the connection.
	Health(ctx context.Context) types.HealthStatus

	// CreateNode upserts a node keyed by the id property, with the given
	// label and properties.
	CreateNode(ctx context.Context, label string, id string, props map[string]any) error

	// CreateRelationship creates a typed relationship between two nodes
	// identified by their id properties. Missing endpoints are an error.
	CreateRelationship(ctx context.Context, fromID, toID, relType string, props map[string]any) error
}

// Config contains connection options for graph export targets.
type Config struct {
	// URI is the bolt connection URI, e.g. "bolt://localhost:7687" or
	// "neo4j+s://host" for routed TLS connections.
	URI string `yaml:"uri" json:"uri" mapstructure:"uri"`

	// Username and Password authenticate against the database.
	Username string `yaml:"username" json:"username" mapstructure:"username"`
	Password string `yaml:"password" json:"password" mapstructure:"password"`

	// Database selects the database; empty uses the server default.
	Database string `yaml:"database" json:"database" mapstructure:"database"`

	// MaxConnectionPoolSize limits driver connections; zero or negative
	// uses the driver default.
	MaxConnectionPoolSize int `yaml:"pool_size" json:"pool_size" mapstructure:"pool_size"`

	// ConnectionTimeout bounds connection acquisition.
	ConnectionTimeout time.Duration `yaml:"connection_timeout" json:"connection_timeout" mapstructure:"connection_timeout"`
}

// DefaultConfig returns a Config with local-development defaults.
func DefaultConfig() Config {
	return Config{
		URI:                   "bolt://localhost:7687",
		Username:              "neo4j",
		Password:              "password",
		MaxConnectionPoolSize: 50,
		ConnectionTimeout:     30 * time.Second,
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if c.URI == "" {
		return types.NewError(types.EXPORT_INVALID_CONFIG, "URI cannot be empty")
	}
	if c.Username == "" {
		return types.NewError(types.EXPORT_INVALID_CONFIG, "Username cannot be empty")
	}
	if c.Password == "" {
		return types.NewError(types.EXPORT_INVALID_CONFIG, "Password cannot be empty")
	}
	if c.ConnectionTimeout <= 0 {
		return types.NewError(types.EXPORT_INVALID_CONFIG, "ConnectionTimeout must be positive")
	}
	return nil
}
