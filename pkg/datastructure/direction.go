package datastructure

type Direction uint8

const (
	NORTH Direction = iota
	SOUTH
	EAST
	WEST
)

// neighbor enumeration order of the mesh: north, south, east, west.
var directionOffsets = [4][2]int{
	NORTH: {0, 1},
	SOUTH: {0, -1},
	EAST:  {1, 0},
	WEST:  {-1, 0},
}

func (d Direction) String() string {
	switch d {
	case NORTH:
		return "north"
	case SOUTH:
		return "south"
	case EAST:
		return "east"
	case WEST:
		return "west"
	default:
		return "unknown"
	}
}

// Step returns the neighbor of n in direction d. The result may lie outside the grid.
func (d Direction) Step(n Node) Node {
	off := directionOffsets[d]
	return NewNode(n.X+off[0], n.Y+off[1])
}

// DirectionBetween reports the direction that leads from u to v when they are grid
// neighbors.
func DirectionBetween(u, v Node) (Direction, bool) {
	for d := NORTH; d <= WEST; d++ {
		if d.Step(u) == v {
			return d, true
		}
	}
	return 0, false
}
