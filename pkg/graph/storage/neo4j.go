// Package storage provides the graph.Store backends: Neo4j for real runs
// and an in-memory graph for dry runs and tests.
package storage

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"github.com/pkg/errors"

	"github.com/pixaflow/protograph/pkg/graph"
)

// Neo4jStore implements graph.Store against a Neo4j database.
type Neo4jStore struct {
	driver   neo4j.Driver
	database string
}

// NewNeo4jStore creates the driver and verifies connectivity.
func NewNeo4jStore(uri, username, password, database string) (*Neo4jStore, error) {
	driver, err := neo4j.NewDriver(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Neo4j driver")
	}
	if err := driver.VerifyConnectivity(); err != nil {
		_ = driver.Close()
		return nil, errors.Wrapf(err, "failed to reach Neo4j at %s", uri)
	}
	return &Neo4jStore{driver: driver, database: database}, nil
}

// Session implements graph.Store.
func (s *Neo4jStore) Session(ctx context.Context) (graph.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	session := s.driver.NewSession(neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.database,
	})
	return &neo4jSession{session: session}, nil
}

// Close implements graph.Store.
func (s *Neo4jStore) Close() error {
	return s.driver.Close()
}

type neo4jSession struct {
	session neo4j.Session
}

// WriteTx runs the work function inside one write transaction, so the
// statements of a single import step apply atomically.
func (s *neo4jSession) WriteTx(ctx context.Context, work func(graph.Runner) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		return nil, work(&txRunner{tx: tx})
	})
	return err
}

func (s *neo4jSession) Close() error {
	return s.session.Close()
}

type txRunner struct {
	tx neo4j.Transaction
}

func (r *txRunner) Run(cypher string, params map[string]interface{}) error {
	result, err := r.tx.Run(cypher, params)
	if err != nil {
		return err
	}
	// Drain so statement errors surface inside the transaction.
	_, err = result.Consume()
	return err
}
