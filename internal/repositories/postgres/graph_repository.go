package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/pfried/graphperm/internal/entities"
	"github.com/pfried/graphperm/internal/repositories"
)

// PostgresGraphStore implements GraphStore using PostgreSQL
type PostgresGraphStore struct {
	db *sql.DB
}

// NewPostgresGraphStore creates a new PostgreSQL graph store
func NewPostgresGraphStore(db *sql.DB) repositories.GraphStore {
	return &PostgresGraphStore{db: db}
}

// Snapshot opens a read-only REPEATABLE READ transaction. Every lookup and
// edge expansion of one resolution sees the same committed graph state.
func (s *PostgresGraphStore) Snapshot(ctx context.Context) (repositories.GraphSnapshot, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to begin read transaction: %w", err)
	}
	return &postgresSnapshot{tx: tx}, nil
}

type postgresSnapshot struct {
	tx *sql.Tx
}

// FindNodeByLabelAndProperty returns the matching node with the lowest ID.
func (s *postgresSnapshot) FindNodeByLabelAndProperty(ctx context.Context, label, propertyKey, value string) (*entities.Node, error) {
	query := `
		SELECT id, labels, properties
		FROM nodes
		WHERE $1 = ANY(labels)
			AND properties->>$2 = $3
		ORDER BY id ASC
		LIMIT 1
	`

	var (
		id       int64
		labels   pq.StringArray
		propsRaw []byte
	)
	err := s.tx.QueryRowContext(ctx, query, label, propertyKey, value).Scan(&id, &labels, &propsRaw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to query node: %w", err)
	}

	properties := make(map[string]string)
	if len(propsRaw) > 0 {
		if err := json.Unmarshal(propsRaw, &properties); err != nil {
			return nil, fmt.Errorf("failed to decode properties of node %d: %w", id, err)
		}
	}

	return &entities.Node{
		ID:         id,
		Labels:     []string(labels),
		Properties: properties,
	}, nil
}

// EdgesInto returns the edges ending at nodeID whose type is in types,
// ordered by edge ID.
func (s *postgresSnapshot) EdgesInto(ctx context.Context, nodeID int64, types []entities.EdgeType) ([]*entities.Edge, error) {
	if len(types) == 0 {
		return nil, nil
	}

	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	query := `
		SELECT id, edge_type, start_id, end_id, COALESCE(permissions, '')
		FROM edges
		WHERE end_id = $1
			AND edge_type = ANY($2)
		ORDER BY id ASC
	`

	rows, err := s.tx.QueryContext(ctx, query, nodeID, pq.Array(typeNames))
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	var edges []*entities.Edge
	for rows.Next() {
		var (
			edge     entities.Edge
			edgeType string
		)
		if err := rows.Scan(&edge.ID, &edgeType, &edge.StartID, &edge.EndID, &edge.Permissions); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		edge.Type = entities.EdgeType(edgeType)
		edges = append(edges, &edge)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate edges: %w", err)
	}

	return edges, nil
}

// Close ends the snapshot transaction
func (s *postgresSnapshot) Close() error {
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	return nil
}
