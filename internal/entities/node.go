package entities

// Node is a handle to a node in the graph store.
// Identity is assigned by the store; the resolver only borrows references
// for the duration of one resolution call.
type Node struct {
	ID         int64             // Store-assigned node ID
	Labels     []string          // Labels attached to the node (e.g., "Document", "Principal")
	Properties map[string]string // Property mapping (key -> value)
}

// HasLabel reports whether the node carries the given label
func (n *Node) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// Property returns the value of the given property key
func (n *Node) Property(key string) (string, bool) {
	if n.Properties == nil {
		return "", false
	}
	v, ok := n.Properties[key]
	return v, ok
}
