package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pfried/graphperm/internal/entities"
	"github.com/pfried/graphperm/internal/repositories"
)

// Graph implements GraphStore with an in-memory node/edge set.
// It backs tests, examples, and local development; production deployments
// use the postgres or neo4j backend.
type Graph struct {
	mu         sync.RWMutex
	nextNodeID int64
	nextEdgeID int64
	nodes      map[int64]*entities.Node
	edgesByEnd map[int64][]*entities.Edge
}

// NewGraph creates an empty in-memory graph
func NewGraph() *Graph {
	return &Graph{
		nodes:      make(map[int64]*entities.Node),
		edgesByEnd: make(map[int64][]*entities.Edge),
	}
}

// AddNode creates a node with the given labels and properties and returns it.
// IDs are assigned in insertion order starting at 1.
func (g *Graph) AddNode(labels []string, properties map[string]string) *entities.Node {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextNodeID++
	node := &entities.Node{
		ID:         g.nextNodeID,
		Labels:     labels,
		Properties: properties,
	}
	g.nodes[node.ID] = node
	return node
}

// AddEdge creates a directed edge of the given type from startID to endID
func (g *Graph) AddEdge(edgeType entities.EdgeType, startID, endID int64) *entities.Edge {
	return g.addEdge(edgeType, startID, endID, "")
}

// AddSecurityEdge creates a SECURITY grant from startID to endID carrying the
// given permissions property. The value is stored as-is; malformed values are
// resolved to "no access" at extraction time.
func (g *Graph) AddSecurityEdge(startID, endID int64, permissions string) *entities.Edge {
	return g.addEdge(entities.EdgeTypeSecurity, startID, endID, permissions)
}

func (g *Graph) addEdge(edgeType entities.EdgeType, startID, endID int64, permissions string) *entities.Edge {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextEdgeID++
	edge := &entities.Edge{
		ID:          g.nextEdgeID,
		Type:        edgeType,
		StartID:     startID,
		EndID:       endID,
		Permissions: permissions,
	}
	g.edgesByEnd[endID] = append(g.edgesByEnd[endID], edge)
	return edge
}

// Snapshot opens a read view of the graph. The in-memory store holds the
// read lock only per operation; callers that mutate the graph while a
// resolution is in flight get no consistency guarantee, which is fine for
// the test and development scenarios this backend serves.
func (g *Graph) Snapshot(ctx context.Context) (repositories.GraphSnapshot, error) {
	return &snapshot{graph: g}, nil
}

type snapshot struct {
	graph *Graph
}

func (s *snapshot) FindNodeByLabelAndProperty(ctx context.Context, label, propertyKey, value string) (*entities.Node, error) {
	s.graph.mu.RLock()
	defer s.graph.mu.RUnlock()

	// Lowest node ID wins when multiple nodes match.
	var found *entities.Node
	for _, node := range s.graph.nodes {
		if !node.HasLabel(label) {
			continue
		}
		if v, ok := node.Property(propertyKey); !ok || v != value {
			continue
		}
		if found == nil || node.ID < found.ID {
			found = node
		}
	}

	if found == nil {
		return nil, repositories.ErrNodeNotFound
	}
	return found, nil
}

func (s *snapshot) EdgesInto(ctx context.Context, nodeID int64, types []entities.EdgeType) ([]*entities.Edge, error) {
	s.graph.mu.RLock()
	defer s.graph.mu.RUnlock()

	wanted := make(map[entities.EdgeType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var edges []*entities.Edge
	for _, edge := range s.graph.edgesByEnd[nodeID] {
		if wanted[edge.Type] {
			edges = append(edges, edge)
		}
	}

	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
	return edges, nil
}

func (s *snapshot) Close() error {
	return nil
}
