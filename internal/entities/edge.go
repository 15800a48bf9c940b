package entities

import "fmt"

// EdgeType identifies the relationship types the resolver follows.
// The set is closed: only these three types establish connectivity
// between a resource and a principal.
type EdgeType string

const (
	// EdgeTypeSecurity is a permission grant, authored from the grantee
	// toward the securable resource. It carries a permissions property.
	EdgeTypeSecurity EdgeType = "SECURITY"

	// EdgeTypeSubresource is resource containment, authored from the parent
	// toward the contained resource.
	EdgeTypeSubresource EdgeType = "SUBRESOURCE"

	// EdgeTypeMemberOf is group membership, authored from the member toward
	// the group.
	EdgeTypeMemberOf EdgeType = "IS_MEMBER_OF"
)

// TraversalEdgeTypes lists every edge type followed during path enumeration
var TraversalEdgeTypes = []EdgeType{
	EdgeTypeSecurity,
	EdgeTypeSubresource,
	EdgeTypeMemberOf,
}

// ParseEdgeType converts a stored type name into an EdgeType
func ParseEdgeType(s string) (EdgeType, error) {
	switch EdgeType(s) {
	case EdgeTypeSecurity:
		return EdgeTypeSecurity, nil
	case EdgeTypeSubresource:
		return EdgeTypeSubresource, nil
	case EdgeTypeMemberOf:
		return EdgeTypeMemberOf, nil
	default:
		return "", fmt.Errorf("unknown edge type: %q", s)
	}
}

// Valid reports whether the edge type is one of the three recognized types
func (t EdgeType) Valid() bool {
	switch t {
	case EdgeTypeSecurity, EdgeTypeSubresource, EdgeTypeMemberOf:
		return true
	default:
		return false
	}
}

// String returns the stored type name
func (t EdgeType) String() string {
	return string(t)
}

// Edge is a directed relationship between two nodes in the graph store.
// Like Node, it is owned by the store and only borrowed by the resolver.
type Edge struct {
	ID      int64    // Store-assigned edge ID
	Type    EdgeType // One of the three recognized edge types
	StartID int64    // Node the edge was authored from
	EndID   int64    // Node the edge points to
	// Permissions is the raw permissions property as stored.
	// Only SECURITY edges carry a meaningful value; validation happens
	// at extraction time, not here.
	Permissions string
}
