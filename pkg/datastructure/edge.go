package datastructure

// Edge is a directed link between two mesh nodes. (u,v) and (v,u) are different edges.
type Edge struct {
	From Node
	To   Node
}

func NewEdge(from, to Node) Edge {
	return Edge{From: from, To: to}
}

func (e Edge) GetFrom() Node {
	return e.From
}

func (e Edge) GetTo() Node {
	return e.To
}

func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From}
}

func (e Edge) String() string {
	return e.From.String() + " -> " + e.To.String()
}

// CompareEdge orders edges lexicographically on (From, To).
func CompareEdge(a, b Edge) int {
	if c := CompareNode(a.From, b.From); c != 0 {
		return c
	}
	return CompareNode(a.To, b.To)
}

func (e Edge) Less(other Edge) bool {
	return CompareEdge(e, other) < 0
}

// EdgeLoads maps a directed edge to the sum of the weights of every flow crossing it.
// Edges no flow uses are absent rather than stored as zero.
type EdgeLoads map[Edge]float64

func (el EdgeLoads) Add(e Edge, weight float64) {
	el[e] += weight
}

func (el EdgeLoads) Get(e Edge) float64 {
	return el[e]
}
