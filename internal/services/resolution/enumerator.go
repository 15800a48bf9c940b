package resolution

import (
	"context"
	"fmt"

	"github.com/pfried/graphperm/internal/entities"
	"github.com/pfried/graphperm/internal/repositories"
)

// DefaultMaxDepth bounds the edge count of candidate paths when the caller
// does not ask for a specific depth. Enumeration cost grows exponentially
// with branching factor, so the depth bound is a hard resource-control knob.
const DefaultMaxDepth = 20

// frame tracks one level of the depth-first search: the node being expanded
// and the cursor into its incoming edges.
type frame struct {
	nodeID int64
	edges  []*entities.Edge
	next   int
}

// EnumeratePaths walks every simple path of at most maxDepth edges from
// startID to endID and invokes visit once per complete path. Edges are
// followed against their authored direction: a grant authored
// "grantee --SECURITY--> resource" is traversed from the resource side, so
// searching resource to principal discovers every chain of grants,
// containment, and membership connecting them, regardless of which relation
// type appears at which hop.
//
// The search is an explicit stack-based DFS with a per-branch visited set;
// no path revisits a node. Paths are streamed as they are found and the
// order among them is unspecified. An error from visit or from the snapshot
// aborts the walk and is returned unmodified aside from wrapping.
func EnumeratePaths(
	ctx context.Context,
	snap repositories.GraphSnapshot,
	startID, endID int64,
	maxDepth int,
	visit func(*entities.Path) error,
) error {
	if maxDepth < 0 {
		return nil
	}

	if startID == endID {
		// The zero-length path. Any longer path would revisit the node.
		return visit(&entities.Path{Nodes: []int64{startID}})
	}

	visited := map[int64]struct{}{startID: {}}
	nodes := []int64{startID}
	edges := []*entities.Edge{}

	into, err := snap.EdgesInto(ctx, startID, entities.TraversalEdgeTypes)
	if err != nil {
		return fmt.Errorf("failed to read edges into node %d: %w", startID, err)
	}
	stack := []*frame{{nodeID: startID, edges: into}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.next >= len(top.edges) {
			// Exhausted this branch; backtrack.
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				delete(visited, top.nodeID)
				nodes = nodes[:len(nodes)-1]
				edges = edges[:len(edges)-1]
			}
			continue
		}

		edge := top.edges[top.next]
		top.next++

		next := edge.StartID
		if _, seen := visited[next]; seen {
			continue
		}
		if len(edges)+1 > maxDepth {
			continue
		}

		if next == endID {
			path := &entities.Path{
				Nodes: append(append([]int64{}, nodes...), next),
				Edges: append(append([]*entities.Edge{}, edges...), edge),
			}
			if err := visit(path); err != nil {
				return err
			}
			// A simple path cannot continue past its endpoint.
			continue
		}

		visited[next] = struct{}{}
		nodes = append(nodes, next)
		edges = append(edges, edge)

		into, err := snap.EdgesInto(ctx, next, entities.TraversalEdgeTypes)
		if err != nil {
			return fmt.Errorf("failed to read edges into node %d: %w", next, err)
		}
		stack = append(stack, &frame{nodeID: next, edges: into})
	}

	return nil
}
