package datastructure

// Flow is a traffic stream of a given volume following a fixed sequence of nodes.
type Flow struct {
	weight float64
	nodes  []Node
}

func NewFlow(weight float64, nodes []Node) Flow {
	return Flow{
		weight: weight,
		nodes:  nodes,
	}
}

func (f Flow) GetWeight() float64 {
	return f.weight
}

func (f Flow) GetNodes() []Node {
	return f.nodes
}

// Edges returns the consecutive node pairs of the path. Paths shorter than two nodes
// have no edges.
func (f Flow) Edges() []Edge {
	if len(f.nodes) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(f.nodes)-1)
	for i := 0; i+1 < len(f.nodes); i++ {
		edges = append(edges, NewEdge(f.nodes[i], f.nodes[i+1]))
	}
	return edges
}
