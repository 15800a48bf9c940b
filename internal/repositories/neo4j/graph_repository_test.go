package neo4j

import (
	"context"
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pfried/graphperm/internal/entities"
	"github.com/pfried/graphperm/internal/infrastructure/config"
	"github.com/pfried/graphperm/internal/repositories"
)

// setupTestDriver connects to the test Neo4j instance. Tests are skipped
// when none is reachable.
func setupTestDriver(t *testing.T) neo4j.Driver {
	t.Helper()

	if err := config.InitConfig("test"); err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	cfg, err := config.Load()
	if err != nil || cfg.Graph.Backend != "neo4j" {
		t.Skip("Skipping: test Neo4j instance not configured")
	}

	driver, err := neo4j.NewDriver(cfg.Neo4j.URI, neo4j.BasicAuth(cfg.Neo4j.Username, cfg.Neo4j.Password, ""))
	if err != nil {
		t.Skipf("Skipping: failed to create Neo4j driver: %v", err)
	}
	if err := driver.VerifyConnectivity(); err != nil {
		driver.Close()
		t.Skipf("Skipping: test Neo4j instance unavailable: %v", err)
	}

	t.Cleanup(func() {
		cleanupTestGraph(t, driver)
		driver.Close()
	})

	return driver
}

func cleanupTestGraph(t *testing.T, driver neo4j.Driver) {
	t.Helper()

	session := driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		return tx.Run("MATCH (n {test_run: 'graphperm'}) DETACH DELETE n", nil)
	})
	if err != nil {
		t.Logf("Warning: failed to clean up test graph: %v", err)
	}
}

// seedTestGraph creates alice --SECURITY("1010")--> report and returns
// both internal node IDs.
func seedTestGraph(t *testing.T, driver neo4j.Driver) (resourceID, principalID int64) {
	t.Helper()

	session := driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		res, err := tx.Run(`
			CREATE (d:Document {id: 'report', test_run: 'graphperm'})
			CREATE (p:Principal {id: 'alice', test_run: 'graphperm'})
			CREATE (p)-[:SECURITY {permissions: '1010'}]->(d)
			RETURN id(d), id(p)
		`, nil)
		if err != nil {
			return nil, err
		}
		if !res.Next() {
			return nil, res.Err()
		}
		return res.Record().Values, nil
	})
	if err != nil {
		t.Fatalf("Failed to seed test graph: %v", err)
	}

	values := result.([]interface{})
	return values[0].(int64), values[1].(int64)
}

func TestNeo4jGraphStore_FindNodeByLabelAndProperty(t *testing.T) {
	driver := setupTestDriver(t)
	resourceID, _ := seedTestGraph(t, driver)

	store := NewNeo4jGraphStore(driver)
	snap, err := store.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	defer snap.Close()

	node, err := snap.FindNodeByLabelAndProperty(context.Background(), "Document", "id", "report")
	if err != nil {
		t.Fatalf("FindNodeByLabelAndProperty() error = %v", err)
	}

	if node.ID != resourceID {
		t.Errorf("expected node ID %d, got %d", resourceID, node.ID)
	}
	if !node.HasLabel("Document") {
		t.Errorf("expected Document label, got %v", node.Labels)
	}
}

func TestNeo4jGraphStore_FindNodeNotFound(t *testing.T) {
	driver := setupTestDriver(t)
	seedTestGraph(t, driver)

	store := NewNeo4jGraphStore(driver)
	snap, err := store.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	defer snap.Close()

	_, err = snap.FindNodeByLabelAndProperty(context.Background(), "Document", "id", "missing")
	if !errors.Is(err, repositories.ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestNeo4jGraphStore_EdgesInto(t *testing.T) {
	driver := setupTestDriver(t)
	resourceID, principalID := seedTestGraph(t, driver)

	store := NewNeo4jGraphStore(driver)
	snap, err := store.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	defer snap.Close()

	edges, err := snap.EdgesInto(context.Background(), resourceID, entities.TraversalEdgeTypes)
	if err != nil {
		t.Fatalf("EdgesInto() error = %v", err)
	}

	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	edge := edges[0]
	if edge.Type != entities.EdgeTypeSecurity {
		t.Errorf("expected SECURITY edge, got %s", edge.Type)
	}
	if edge.StartID != principalID || edge.EndID != resourceID {
		t.Errorf("expected edge %d->%d, got %d->%d", principalID, resourceID, edge.StartID, edge.EndID)
	}
	if edge.Permissions != "1010" {
		t.Errorf("expected permissions 1010, got %q", edge.Permissions)
	}

	// Principal has no incoming traversal edges.
	none, err := snap.EdgesInto(context.Background(), principalID, entities.TraversalEdgeTypes)
	if err != nil {
		t.Fatalf("EdgesInto() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no edges into principal, got %d", len(none))
	}
}
