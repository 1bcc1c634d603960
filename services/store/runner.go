package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Runner executes one parameterized Cypher statement and returns a
// fully-buffered result. The indirection exists so the store can be
// exercised in tests without a live database.
type Runner interface {
	Run(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error)
}

// Executor is the production Runner backed by the bolt driver. The driver
// keeps its own connection pool; sessions are managed per statement by
// ExecuteQuery.
type Executor struct {
	Driver   neo4j.DriverWithContext
	Database string
}

// NewExecutor creates the bolt driver for the given connection details.
func NewExecutor(uri, username, password, database string) (*Executor, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("could not create neo4j driver: %w", err)
	}
	return &Executor{Driver: driver, Database: database}, nil
}

// Verify checks connectivity to the database.
func (e *Executor) Verify(ctx context.Context) error {
	return e.Driver.VerifyConnectivity(ctx)
}

// Close releases the driver and its connection pool.
func (e *Executor) Close(ctx context.Context) error {
	return e.Driver.Close(ctx)
}

func (e *Executor) Run(ctx context.Context, cypher string, params map[string]any) (*neo4j.EagerResult, error) {
	return neo4j.ExecuteQuery(
		ctx,
		e.Driver,
		cypher,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(e.Database),
	)
}
