package datastructure

// BrokenLinks is a set of damaged links. A link is broken in both directions no matter
// which way it was declared.
type BrokenLinks struct {
	links    map[Edge]struct{}
	declared []Edge
}

func NewBrokenLinks() *BrokenLinks {
	return &BrokenLinks{
		links:    make(map[Edge]struct{}),
		declared: make([]Edge, 0),
	}
}

// Add marks the link between u and v as broken, inserting both (u,v) and (v,u).
func (bl *BrokenLinks) Add(u, v Node) {
	e := NewEdge(u, v)
	if _, ok := bl.links[e]; !ok {
		bl.declared = append(bl.declared, e)
	}
	bl.links[e] = struct{}{}
	bl.links[e.Reverse()] = struct{}{}
}

func (bl *BrokenLinks) Contains(u, v Node) bool {
	if bl == nil {
		return false
	}
	_, ok := bl.links[NewEdge(u, v)]
	return ok
}

// Len returns the number of directed entries, twice the number of distinct links.
func (bl *BrokenLinks) Len() int {
	if bl == nil {
		return 0
	}
	return len(bl.links)
}

// GetDeclared returns the links in declaration order, one entry per distinct link.
func (bl *BrokenLinks) GetDeclared() []Edge {
	if bl == nil {
		return nil
	}
	return bl.declared
}
