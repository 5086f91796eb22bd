package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	errs "socialgraph/pkg/errors"
	"socialgraph/pkg/logger"
)

// Store wraps the Neo4j driver and executes parametrized Cypher statements.
// The driver is the single long-lived connection pool for the process; it is
// constructed once in main and injected here. Sessions are opened per query,
// so a Store is safe for concurrent use.
type Store struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewStore creates a store around an already-constructed driver
func NewStore(driver neo4j.DriverWithContext) *Store {
	return &Store{
		driver: driver,
		logger: logger.Get(),
	}
}

// VerifyConnectivity checks that the store can reach the database
func (s *Store) VerifyConnectivity(ctx context.Context) error {
	if s == nil || s.driver == nil {
		return errs.ErrStoreUnavailable
	}
	return s.driver.VerifyConnectivity(ctx)
}

// Close closes the underlying driver connection
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.driver == nil {
		return nil
	}
	return s.driver.Close(ctx)
}

// ExecuteRead runs a single read statement and returns the collected records
func (s *Store) ExecuteRead(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	return s.execute(ctx, neo4j.AccessModeRead, cypher, params)
}

// ExecuteWrite runs a single write statement and returns the collected records
func (s *Store) ExecuteWrite(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	return s.execute(ctx, neo4j.AccessModeWrite, cypher, params)
}

func (s *Store) execute(ctx context.Context, mode neo4j.AccessMode, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	if s == nil || s.driver == nil {
		return nil, errs.ErrStoreUnavailable
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		s.logger.Error("Query execution failed", zap.Error(err))
		return nil, errs.NewQueryFailed(cypher, err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, errs.NewQueryFailed(cypher, err)
	}

	return records, nil
}
