package datastructure

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidNodeID = errors.New("datastructure: node id must have the form \"x,y\"")
)

// Node is a mesh router identified by its grid coordinates.
type Node struct {
	X int
	Y int
}

func NewNode(x, y int) Node {
	return Node{X: x, Y: y}
}

// String returns the canonical external key "x,y".
func (n Node) String() string {
	return strconv.Itoa(n.X) + "," + strconv.Itoa(n.Y)
}

func (n Node) GetX() int {
	return n.X
}

func (n Node) GetY() int {
	return n.Y
}

// ParseNode parses the canonical "x,y" form. Whitespace, signs other than a leading
// minus and extra separators are rejected so that ParseNode(n.String()) == n holds.
func ParseNode(id string) (Node, error) {
	xs, ys, found := strings.Cut(id, ",")
	if !found || strings.Contains(ys, ",") {
		return Node{}, fmt.Errorf("%w: %q", ErrInvalidNodeID, id)
	}
	x, err := parseCoordinate(xs)
	if err != nil {
		return Node{}, fmt.Errorf("%w: %q", ErrInvalidNodeID, id)
	}
	y, err := parseCoordinate(ys)
	if err != nil {
		return Node{}, fmt.Errorf("%w: %q", ErrInvalidNodeID, id)
	}
	return Node{X: x, Y: y}, nil
}

func parseCoordinate(s string) (int, error) {
	if s == "" || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidNodeID
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	// reject "007" and "-0" so the string form stays canonical
	if strconv.Itoa(v) != s {
		return 0, ErrInvalidNodeID
	}
	return v, nil
}

// CompareNode orders nodes by their canonical key, which is the order the report uses.
func CompareNode(a, b Node) int {
	if a == b {
		return 0
	}
	return strings.Compare(a.String(), b.String())
}
