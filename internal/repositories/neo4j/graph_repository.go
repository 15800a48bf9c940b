package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pfried/graphperm/internal/entities"
	"github.com/pfried/graphperm/internal/repositories"
)

// Neo4jGraphStore implements GraphStore on top of a Neo4j database.
// Nodes and relationships are used natively; the permissions grant lives
// in the "permissions" relationship property.
type Neo4jGraphStore struct {
	driver neo4j.Driver
}

// NewNeo4jGraphStore creates a new Neo4j graph store
func NewNeo4jGraphStore(driver neo4j.Driver) repositories.GraphStore {
	return &Neo4jGraphStore{driver: driver}
}

// Snapshot opens a read session with an explicit transaction so that the
// lookups and edge expansions of one resolution share a transaction.
func (s *Neo4jGraphStore) Snapshot(ctx context.Context) (repositories.GraphSnapshot, error) {
	session := s.driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	tx, err := session.BeginTransaction()
	if err != nil {
		session.Close()
		return nil, fmt.Errorf("failed to begin read transaction: %w", err)
	}
	return &neo4jSnapshot{session: session, tx: tx}, nil
}

type neo4jSnapshot struct {
	session neo4j.Session
	tx      neo4j.Transaction
}

// FindNodeByLabelAndProperty returns the matching node with the lowest
// internal ID.
func (s *neo4jSnapshot) FindNodeByLabelAndProperty(ctx context.Context, label, propertyKey, value string) (*entities.Node, error) {
	query := `
		MATCH (n)
		WHERE $label IN labels(n) AND n[$property] = $value
		RETURN id(n) AS id, labels(n) AS labels, properties(n) AS properties
		ORDER BY id(n) ASC
		LIMIT 1
	`

	result, err := s.tx.Run(query, map[string]interface{}{
		"label":    label,
		"property": propertyKey,
		"value":    value,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query node: %w", err)
	}

	if !result.Next() {
		if err := result.Err(); err != nil {
			return nil, fmt.Errorf("failed to read node result: %w", err)
		}
		return nil, repositories.ErrNodeNotFound
	}

	record := result.Record()

	id, ok := record.Values[0].(int64)
	if !ok {
		return nil, fmt.Errorf("unexpected node id type %T", record.Values[0])
	}

	rawLabels, ok := record.Values[1].([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected labels type %T", record.Values[1])
	}
	labels := make([]string, 0, len(rawLabels))
	for _, l := range rawLabels {
		name, ok := l.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected label type %T", l)
		}
		labels = append(labels, name)
	}

	rawProps, ok := record.Values[2].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected properties type %T", record.Values[2])
	}
	properties := make(map[string]string, len(rawProps))
	for k, v := range rawProps {
		// Non-string properties are not used for identification or grants.
		if sv, ok := v.(string); ok {
			properties[k] = sv
		}
	}

	return &entities.Node{
		ID:         id,
		Labels:     labels,
		Properties: properties,
	}, nil
}

// EdgesInto returns the relationships ending at nodeID whose type is in
// types, ordered by relationship ID.
func (s *neo4jSnapshot) EdgesInto(ctx context.Context, nodeID int64, types []entities.EdgeType) ([]*entities.Edge, error) {
	if len(types) == 0 {
		return nil, nil
	}

	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	query := `
		MATCH (a)-[r]->(b)
		WHERE id(b) = $id AND type(r) IN $types
		RETURN id(r) AS id, type(r) AS type, id(a) AS start, id(b) AS end,
			coalesce(r.permissions, '') AS permissions
		ORDER BY id(r) ASC
	`

	result, err := s.tx.Run(query, map[string]interface{}{
		"id":    nodeID,
		"types": typeNames,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}

	var edges []*entities.Edge
	for result.Next() {
		record := result.Record()

		id, ok := record.Values[0].(int64)
		if !ok {
			return nil, fmt.Errorf("unexpected edge id type %T", record.Values[0])
		}
		edgeType, ok := record.Values[1].(string)
		if !ok {
			return nil, fmt.Errorf("unexpected edge type value %T", record.Values[1])
		}
		startID, ok := record.Values[2].(int64)
		if !ok {
			return nil, fmt.Errorf("unexpected start id type %T", record.Values[2])
		}
		endID, ok := record.Values[3].(int64)
		if !ok {
			return nil, fmt.Errorf("unexpected end id type %T", record.Values[3])
		}
		permissions, ok := record.Values[4].(string)
		if !ok {
			return nil, fmt.Errorf("unexpected permissions type %T", record.Values[4])
		}

		edges = append(edges, &entities.Edge{
			ID:          id,
			Type:        entities.EdgeType(edgeType),
			StartID:     startID,
			EndID:       endID,
			Permissions: permissions,
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate edges: %w", err)
	}

	return edges, nil
}

// Close ends the snapshot transaction and its session
func (s *neo4jSnapshot) Close() error {
	txErr := s.tx.Rollback()
	sessErr := s.session.Close()
	if txErr != nil {
		return fmt.Errorf("failed to roll back snapshot transaction: %w", txErr)
	}
	if sessErr != nil {
		return fmt.Errorf("failed to close snapshot session: %w", sessErr)
	}
	return nil
}
