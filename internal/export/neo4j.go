package export

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/zero-day-ai/fraudlens/internal/types"
)

// labelPattern restricts labels and relationship types to identifier-safe
// strings, since Cypher cannot parameterize them.
var labelPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Neo4jClient implements Client for Neo4j over bolt.
type Neo4jClient struct {
	config Config
	driver neo4j.DriverWithContext
}

var _ Client = (*Neo4jClient)(nil)

// NewNeo4jClient creates a Neo4j client with the given configuration.
// The client must be connected via Connect() before use.
func NewNeo4jClient(config Config) (*Neo4jClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Neo4jClient{config: config}, nil
}

// Connect establishes the driver connection with exponential backoff.
func (c *Neo4jClient) Connect(ctx context.Context) error {
	auth := neo4j.BasicAuth(c.config.Username, c.config.Password, "")
	driverConfig := func(config *neo4j.Config) {
		config.MaxConnectionPoolSize = c.config.MaxConnectionPoolSize
		config.ConnectionAcquisitionTimeout = c.config.ConnectionTimeout
	}

	const maxRetries = 5
	baseDelay := 100 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		driver, err := neo4j.NewDriverWithContext(c.config.URI, auth, driverConfig)
		if err == nil {
			if err = driver.VerifyConnectivity(ctx); err == nil {
				c.driver = driver
				return nil
			}
		}
		lastErr = err

		delay := baseDelay * time.Duration(math.Pow(2, float64(attempt)))
		if delay > c.config.ConnectionTimeout {
			delay = c.config.ConnectionTimeout
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return types.WrapError(types.EXPORT_CONNECTION_FAILED,
				"connection attempt cancelled", ctx.Err())
		}
	}

	return connectFailed(maxRetries, lastErr)
}

// connectFailed marks exhausted connection attempts as retryable so callers
// can tell a temporarily unreachable server from bad configuration.
func connectFailed(attempts int, cause error) error {
	err := types.NewRetryableError(types.EXPORT_CONNECTION_FAILED,
		fmt.Sprintf("failed to connect after %d attempts", attempts))
	err.Cause = cause
	return err
}

// Close releases the driver.
func (c *Neo4jClient) Close(ctx context.Context) error {
	if c.driver == nil {
		return nil
	}
	if err := c.driver.Close(ctx); err != nil {
		return types.WrapError(types.EXPORT_CONNECTION_CLOSED, "failed to close driver", err)
	}
	c.driver = nil
	return nil
}

// Health verifies connectivity with a bounded check.
func (c *Neo4jClient) Health(ctx context.Context) types.HealthStatus {
	if c.driver == nil {
		return types.Unhealthy("driver not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.driver.VerifyConnectivity(healthCtx); err != nil {
		return types.Unhealthy(fmt.Sprintf("connectivity check failed: %v", err))
	}
	return types.Healthy("connected to Neo4j")
}

// CreateNode MERGEs a node by id so repeated exports do not duplicate.
func (c *Neo4jClient) CreateNode(ctx context.Context, label string, id string, props map[string]any) error {
	if c.driver == nil {
		return types.NewError(types.EXPORT_CONNECTION_CLOSED, "driver not connected")
	}
	if !labelPattern.MatchString(label) {
		return types.NewErrorf(types.EXPORT_WRITE_FAILED, "invalid node label %q", label)
	}

	cypher := fmt.Sprintf("MERGE (n:%s {id: $id}) SET n += $props", label)
	params := map[string]any{"id": id, "props": props}

	if err := c.write(ctx, cypher, params); err != nil {
		return types.WrapError(types.EXPORT_WRITE_FAILED,
			fmt.Sprintf("failed to create %s node %s", label, id), err)
	}
	return nil
}

// CreateRelationship creates a typed edge between two nodes matched by id.
func (c *Neo4jClient) CreateRelationship(ctx context.Context, fromID, toID, relType string, props map[string]any) error {
	if c.driver == nil {
		return types.NewError(types.EXPORT_CONNECTION_CLOSED, "driver not connected")
	}
	if !labelPattern.MatchString(relType) {
		return types.NewErrorf(types.EXPORT_WRITE_FAILED, "invalid relationship type %q", relType)
	}
	if props == nil {
		props = map[string]any{}
	}

	cypher := fmt.Sprintf(`
		MATCH (from {id: $fromId}), (to {id: $toId})
		CREATE (from)-[r:%s]->(to)
		SET r = $props
	`, relType)
	params := map[string]any{"fromId": fromID, "toId": toID, "props": props}

	if err := c.write(ctx, cypher, params); err != nil {
		return types.WrapError(types.EXPORT_WRITE_FAILED,
			fmt.Sprintf("failed to create %s relationship %s->%s", relType, fromID, toID), err)
	}
	return nil
}

func (c *Neo4jClient) write(ctx context.Context, cypher string, params map[string]any) error {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.config.Database,
	})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, params)
		if err != nil {
			return nil, err
		}
		_, err = result.Consume(ctx)
		return nil, err
	})
	return err
}
