package entities

// Path is a simple (node-disjoint) chain of edges connecting a resource to a
// principal. Nodes holds the node IDs in traversal order, resource first and
// principal last; Edges[i] connects Nodes[i] and Nodes[i+1]. Because edges
// are followed against their authored direction, Edges[i].StartID is
// Nodes[i+1] and Edges[i].EndID is Nodes[i].
//
// A Path with a single node and no edges is the zero-length path from a node
// to itself.
type Path struct {
	Nodes []int64
	Edges []*Edge
}

// Length returns the number of edges in the path
func (p *Path) Length() int {
	return len(p.Edges)
}
