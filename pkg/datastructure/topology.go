package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidDimensions   = errors.New("datastructure: grid width and height must be positive")
	ErrBrokenLinkOutOfGrid = errors.New("datastructure: broken link references a node outside the grid")
	ErrGridTooLarge        = errors.New("datastructure: grid has too many nodes")
)

// MAX_GRID_NODES caps width*height, a 4096x4096 mesh.
const MAX_GRID_NODES = 1 << 24

// Topology is the directed adjacency relation of a width x height mesh after removing
// broken links. It is immutable once built and safe for concurrent readers.
type Topology struct {
	width, height int
	nodes         []Node
	adj           [][]Node // adj[index(n)] = neighbors of n in north, south, east, west order
	numEdges      int
	unmatched     []Edge
}

// NewTopology builds the mesh. Broken links that reference nodes outside the grid are
// accepted and never match; they are available through GetUnmatchedBrokenLinks.
func NewTopology(width, height int, broken *BrokenLinks) (*Topology, error) {
	return newTopology(width, height, broken, false)
}

// NewTopologyStrict is NewTopology but rejects broken links outside the grid.
func NewTopologyStrict(width, height int, broken *BrokenLinks) (*Topology, error) {
	return newTopology(width, height, broken, true)
}

func newTopology(width, height int, broken *BrokenLinks, strict bool) (*Topology, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MAX_GRID_NODES/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d nodes", ErrGridTooLarge, width, height, MAX_GRID_NODES)
	}

	t := &Topology{
		width:     width,
		height:    height,
		nodes:     make([]Node, 0, width*height),
		adj:       make([][]Node, width*height),
		unmatched: make([]Edge, 0),
	}

	for _, link := range broken.GetDeclared() {
		if t.InBounds(link.From) && t.InBounds(link.To) {
			if _, adjacent := DirectionBetween(link.From, link.To); !adjacent {
				t.unmatched = append(t.unmatched, link)
			}
			continue
		}
		if strict {
			return nil, fmt.Errorf("%w: %s", ErrBrokenLinkOutOfGrid, link)
		}
		t.unmatched = append(t.unmatched, link)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := NewNode(x, y)
			t.nodes = append(t.nodes, u)

			neighbors := make([]Node, 0, len(directionOffsets))
			for d := NORTH; d <= WEST; d++ {
				v := d.Step(u)
				if !t.InBounds(v) {
					continue
				}
				if broken.Contains(u, v) {
					continue
				}
				neighbors = append(neighbors, v)
			}
			t.adj[t.index(u)] = neighbors
			t.numEdges += len(neighbors)
		}
	}

	return t, nil
}

// index maps (x,y) to a row-major index: y*width + x.
func (t *Topology) index(n Node) int {
	return n.Y*t.width + n.X
}

func (t *Topology) InBounds(n Node) bool {
	return n.X >= 0 && n.X < t.width && n.Y >= 0 && n.Y < t.height
}

func (t *Topology) GetWidth() int {
	return t.width
}

func (t *Topology) GetHeight() int {
	return t.height
}

func (t *Topology) NumberOfNodes() int {
	return len(t.nodes)
}

func (t *Topology) NumberOfEdges() int {
	return t.numEdges
}

// GetNodes returns the nodes in row-major order. Callers must not modify the slice.
func (t *Topology) GetNodes() []Node {
	return t.nodes
}

// GetNeighbors returns the neighbors of u, or nil when u is outside the grid.
func (t *Topology) GetNeighbors(u Node) []Node {
	if !t.InBounds(u) {
		return nil
	}
	return t.adj[t.index(u)]
}

func (t *Topology) HasEdge(u, v Node) bool {
	for _, n := range t.GetNeighbors(u) {
		if n == v {
			return true
		}
	}
	return false
}

// GetUnmatchedBrokenLinks returns declared broken links that did not match any mesh link,
// either because an endpoint lies outside the grid or the endpoints are not neighbors.
func (t *Topology) GetUnmatchedBrokenLinks() []Edge {
	return t.unmatched
}

// ForEdges calls handle for every directed edge, grouped by tail in node order.
func (t *Topology) ForEdges(handle func(e Edge)) {
	for i, u := range t.nodes {
		for _, v := range t.adj[i] {
			handle(NewEdge(u, v))
		}
	}
}

// WriteAdjacency writes one line per node, "u : v1 v2 ...", keeping neighbor order.
func (t *Topology) WriteAdjacency(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, u := range t.nodes {
		if _, err := fmt.Fprintf(bw, "%s :", u); err != nil {
			return err
		}
		for _, v := range t.adj[i] {
			if _, err := fmt.Fprintf(bw, " %s", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(bw, "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
