package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/pfried/graphperm/internal/entities"
	"github.com/pfried/graphperm/internal/repositories"
)

func TestGraph_FindNodeByLabelAndProperty(t *testing.T) {
	g := NewGraph()
	doc := g.AddNode([]string{"Document"}, map[string]string{"id": "doc1"})
	g.AddNode([]string{"Principal"}, map[string]string{"id": "alice"})

	snap, err := g.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	defer snap.Close()

	t.Run("match by label and property", func(t *testing.T) {
		got, err := snap.FindNodeByLabelAndProperty(context.Background(), "Document", "id", "doc1")
		if err != nil {
			t.Fatalf("FindNodeByLabelAndProperty() error = %v", err)
		}
		if got.ID != doc.ID {
			t.Errorf("found node %d, want %d", got.ID, doc.ID)
		}
	})

	t.Run("label mismatch", func(t *testing.T) {
		_, err := snap.FindNodeByLabelAndProperty(context.Background(), "Folder", "id", "doc1")
		if !errors.Is(err, repositories.ErrNodeNotFound) {
			t.Errorf("error = %v, want ErrNodeNotFound", err)
		}
	})

	t.Run("property mismatch", func(t *testing.T) {
		_, err := snap.FindNodeByLabelAndProperty(context.Background(), "Document", "id", "doc2")
		if !errors.Is(err, repositories.ErrNodeNotFound) {
			t.Errorf("error = %v, want ErrNodeNotFound", err)
		}
	})
}

func TestGraph_FindNode_LowestIDWins(t *testing.T) {
	g := NewGraph()
	first := g.AddNode([]string{"Document"}, map[string]string{"id": "dup"})
	g.AddNode([]string{"Document"}, map[string]string{"id": "dup"})

	snap, _ := g.Snapshot(context.Background())
	defer snap.Close()

	got, err := snap.FindNodeByLabelAndProperty(context.Background(), "Document", "id", "dup")
	if err != nil {
		t.Fatalf("FindNodeByLabelAndProperty() error = %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("tie-break picked node %d, want lowest ID %d", got.ID, first.ID)
	}
}

func TestGraph_EdgesInto(t *testing.T) {
	g := NewGraph()
	child := g.AddNode([]string{"Document"}, map[string]string{"id": "child"})
	parent := g.AddNode([]string{"Folder"}, map[string]string{"id": "parent"})
	user := g.AddNode([]string{"Principal"}, map[string]string{"id": "alice"})

	g.AddEdge(entities.EdgeTypeSubresource, parent.ID, child.ID)
	g.AddSecurityEdge(user.ID, parent.ID, "1000")

	snap, _ := g.Snapshot(context.Background())
	defer snap.Close()

	t.Run("all traversal types", func(t *testing.T) {
		edges, err := snap.EdgesInto(context.Background(), child.ID, entities.TraversalEdgeTypes)
		if err != nil {
			t.Fatalf("EdgesInto() error = %v", err)
		}
		if len(edges) != 1 {
			t.Fatalf("EdgesInto() returned %d edges, want 1", len(edges))
		}
		if edges[0].Type != entities.EdgeTypeSubresource || edges[0].StartID != parent.ID {
			t.Errorf("unexpected edge %+v", edges[0])
		}
	})

	t.Run("type filter excludes", func(t *testing.T) {
		edges, err := snap.EdgesInto(context.Background(), child.ID, []entities.EdgeType{entities.EdgeTypeSecurity})
		if err != nil {
			t.Fatalf("EdgesInto() error = %v", err)
		}
		if len(edges) != 0 {
			t.Errorf("EdgesInto() returned %d edges, want 0", len(edges))
		}
	})

	t.Run("node without incoming edges", func(t *testing.T) {
		edges, err := snap.EdgesInto(context.Background(), user.ID, entities.TraversalEdgeTypes)
		if err != nil {
			t.Fatalf("EdgesInto() error = %v", err)
		}
		if len(edges) != 0 {
			t.Errorf("EdgesInto() returned %d edges, want 0", len(edges))
		}
	})
}
