package repositories

import (
	"context"
	"errors"

	"github.com/pfried/graphperm/internal/entities"
)

// ErrNodeNotFound is returned when no node matches a label+property lookup
var ErrNodeNotFound = errors.New("node not found")

// GraphStore provides read access to the authorization graph.
// Implementations own persistence, indexing, and read isolation; the
// resolver depends only on this interface.
type GraphStore interface {
	// Snapshot opens a consistent read view of the graph. The view must stay
	// stable for the lifetime of one resolution call. The caller must Close
	// the snapshot when done.
	Snapshot(ctx context.Context) (GraphSnapshot, error)
}

// GraphSnapshot is a consistent read view of the graph for one resolution.
type GraphSnapshot interface {
	// FindNodeByLabelAndProperty returns the node carrying the given label
	// whose property matches the value. When multiple nodes match, the one
	// with the lowest store-assigned ID wins; implementations must order the
	// lookup explicitly rather than rely on store iteration order.
	// Returns ErrNodeNotFound when no node matches.
	FindNodeByLabelAndProperty(ctx context.Context, label, propertyKey, value string) (*entities.Node, error)

	// EdgesInto returns every edge of the given types pointing into the node.
	EdgesInto(ctx context.Context, nodeID int64, types []entities.EdgeType) ([]*entities.Edge, error)

	// Close releases the read view. Safe to call once per snapshot.
	Close() error
}
