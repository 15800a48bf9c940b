package resolution

import (
	"context"
	"testing"

	"github.com/pfried/graphperm/internal/entities"
	"github.com/pfried/graphperm/internal/repositories/memory"
)

func collectPaths(t *testing.T, g *memory.Graph, startID, endID int64, maxDepth int) []*entities.Path {
	t.Helper()

	snap, err := g.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	defer snap.Close()

	var paths []*entities.Path
	err = EnumeratePaths(context.Background(), snap, startID, endID, maxDepth, func(p *entities.Path) error {
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		t.Fatalf("EnumeratePaths() error = %v", err)
	}
	return paths
}

// chainGraph builds resource <- parent <- group <- principal, three edges:
// the parent contains the resource, the group holds a grant on the parent,
// the principal is a member of the group.
func chainGraph(t *testing.T) (*memory.Graph, *entities.Node, *entities.Node) {
	t.Helper()

	g := memory.NewGraph()
	resource := g.AddNode([]string{"Document"}, map[string]string{"id": "doc1"})
	parent := g.AddNode([]string{"Folder"}, map[string]string{"id": "folder1"})
	group := g.AddNode([]string{"Group"}, map[string]string{"id": "editors"})
	principal := g.AddNode([]string{"Principal"}, map[string]string{"id": "alice"})

	g.AddEdge(entities.EdgeTypeSubresource, parent.ID, resource.ID)
	g.AddSecurityEdge(group.ID, parent.ID, "0010")
	g.AddEdge(entities.EdgeTypeMemberOf, principal.ID, group.ID)

	return g, resource, principal
}

func TestEnumeratePaths_DepthBound(t *testing.T) {
	g, resource, principal := chainGraph(t)

	// The only connecting path has exactly 3 edges.
	tests := []struct {
		name      string
		maxDepth  int
		wantPaths int
	}{
		{"one below path length", 2, 0},
		{"exactly path length", 3, 1},
		{"above path length", 20, 1},
		{"zero depth", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths := collectPaths(t, g, resource.ID, principal.ID, tt.maxDepth)
			if len(paths) != tt.wantPaths {
				t.Errorf("found %d paths, want %d", len(paths), tt.wantPaths)
			}
		})
	}
}

func TestEnumeratePaths_PathShape(t *testing.T) {
	g, resource, principal := chainGraph(t)

	paths := collectPaths(t, g, resource.ID, principal.ID, 3)
	if len(paths) != 1 {
		t.Fatalf("found %d paths, want 1", len(paths))
	}

	p := paths[0]
	if p.Length() != 3 {
		t.Errorf("path length = %d, want 3", p.Length())
	}
	if len(p.Nodes) != 4 {
		t.Fatalf("path has %d nodes, want 4", len(p.Nodes))
	}
	if p.Nodes[0] != resource.ID {
		t.Errorf("path starts at node %d, want resource %d", p.Nodes[0], resource.ID)
	}
	if p.Nodes[len(p.Nodes)-1] != principal.ID {
		t.Errorf("path ends at node %d, want principal %d", p.Nodes[len(p.Nodes)-1], principal.ID)
	}
	for i, edge := range p.Edges {
		if edge.EndID != p.Nodes[i] || edge.StartID != p.Nodes[i+1] {
			t.Errorf("edge %d (%d->%d) does not connect nodes %d and %d against its direction",
				i, edge.StartID, edge.EndID, p.Nodes[i], p.Nodes[i+1])
		}
	}
}

func TestEnumeratePaths_Disconnected(t *testing.T) {
	g := memory.NewGraph()
	resource := g.AddNode([]string{"Document"}, map[string]string{"id": "doc1"})
	principal := g.AddNode([]string{"Principal"}, map[string]string{"id": "alice"})

	paths := collectPaths(t, g, resource.ID, principal.ID, 20)
	if len(paths) != 0 {
		t.Errorf("found %d paths between disconnected nodes, want 0", len(paths))
	}
}

func TestEnumeratePaths_MultiplePaths(t *testing.T) {
	g := memory.NewGraph()
	resource := g.AddNode([]string{"Document"}, map[string]string{"id": "doc1"})
	groupA := g.AddNode([]string{"Group"}, map[string]string{"id": "a"})
	groupB := g.AddNode([]string{"Group"}, map[string]string{"id": "b"})
	principal := g.AddNode([]string{"Principal"}, map[string]string{"id": "alice"})

	// Two disjoint two-hop paths through different groups.
	g.AddSecurityEdge(groupA.ID, resource.ID, "1000")
	g.AddEdge(entities.EdgeTypeMemberOf, principal.ID, groupA.ID)
	g.AddSecurityEdge(groupB.ID, resource.ID, "0100")
	g.AddEdge(entities.EdgeTypeMemberOf, principal.ID, groupB.ID)

	paths := collectPaths(t, g, resource.ID, principal.ID, 20)
	if len(paths) != 2 {
		t.Errorf("found %d paths, want 2", len(paths))
	}
}

func TestEnumeratePaths_Simplicity(t *testing.T) {
	g := memory.NewGraph()
	resource := g.AddNode([]string{"Document"}, map[string]string{"id": "doc1"})
	folderA := g.AddNode([]string{"Folder"}, map[string]string{"id": "a"})
	folderB := g.AddNode([]string{"Folder"}, map[string]string{"id": "b"})
	principal := g.AddNode([]string{"Principal"}, map[string]string{"id": "alice"})

	// Containment cycle between the two folders plus a link to the resource.
	g.AddEdge(entities.EdgeTypeSubresource, folderA.ID, resource.ID)
	g.AddEdge(entities.EdgeTypeSubresource, folderB.ID, folderA.ID)
	g.AddEdge(entities.EdgeTypeSubresource, folderA.ID, folderB.ID)
	g.AddSecurityEdge(principal.ID, folderA.ID, "1000")
	g.AddSecurityEdge(principal.ID, folderB.ID, "0100")

	paths := collectPaths(t, g, resource.ID, principal.ID, 20)
	if len(paths) == 0 {
		t.Fatal("found no paths through the cyclic graph")
	}

	for _, p := range paths {
		seen := make(map[int64]bool)
		for _, id := range p.Nodes {
			if seen[id] {
				t.Errorf("path %v revisits node %d", p.Nodes, id)
			}
			seen[id] = true
		}
	}
}

func TestEnumeratePaths_SameStartAndEnd(t *testing.T) {
	g := memory.NewGraph()
	node := g.AddNode([]string{"Document", "Principal"}, map[string]string{"id": "self"})

	paths := collectPaths(t, g, node.ID, node.ID, 20)
	if len(paths) != 1 {
		t.Fatalf("found %d paths, want the single zero-length path", len(paths))
	}
	if paths[0].Length() != 0 {
		t.Errorf("path length = %d, want 0", paths[0].Length())
	}
}

func TestEnumeratePaths_NegativeDepth(t *testing.T) {
	g, resource, principal := chainGraph(t)

	paths := collectPaths(t, g, resource.ID, principal.ID, -1)
	if len(paths) != 0 {
		t.Errorf("found %d paths with negative depth, want 0", len(paths))
	}
}

func TestEnumeratePaths_VisitErrorAborts(t *testing.T) {
	g := memory.NewGraph()
	resource := g.AddNode([]string{"Document"}, map[string]string{"id": "doc1"})
	principal := g.AddNode([]string{"Principal"}, map[string]string{"id": "alice"})
	g.AddSecurityEdge(principal.ID, resource.ID, "1000")

	snap, err := g.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	defer snap.Close()

	wantErr := context.Canceled
	err = EnumeratePaths(context.Background(), snap, resource.ID, principal.ID, 20, func(p *entities.Path) error {
		return wantErr
	})
	if err != wantErr {
		t.Errorf("EnumeratePaths() error = %v, want %v", err, wantErr)
	}
}
