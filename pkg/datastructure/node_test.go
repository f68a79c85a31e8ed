package datastructure

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNode(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		want    Node
		wantErr bool
	}{
		{name: "origin", id: "0,0", want: NewNode(0, 0)},
		{name: "multi digit", id: "12,305", want: NewNode(12, 305)},
		{name: "negative", id: "-1,4", want: NewNode(-1, 4)},
		{name: "missing comma", id: "12", wantErr: true},
		{name: "extra comma", id: "1,2,3", wantErr: true},
		{name: "leading space", id: " 1,2", wantErr: true},
		{name: "space after comma", id: "1, 2", wantErr: true},
		{name: "leading zero", id: "01,2", wantErr: true},
		{name: "plus sign", id: "+1,2", wantErr: true},
		{name: "empty x", id: ",2", wantErr: true},
		{name: "not a number", id: "a,b", wantErr: true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNode(tt.id)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidNodeID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodeStringRoundTrip(t *testing.T) {
	for _, n := range []Node{NewNode(0, 0), NewNode(7, 3), NewNode(-2, 11), NewNode(100, 0)} {
		got, err := ParseNode(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestEdgeOrdering(t *testing.T) {
	edges := []Edge{
		NewEdge(NewNode(2, 0), NewNode(1, 0)),
		NewEdge(NewNode(10, 0), NewNode(9, 0)),
		NewEdge(NewNode(1, 0), NewNode(1, 1)),
		NewEdge(NewNode(1, 0), NewNode(0, 0)),
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })

	got := make([]string, 0, len(edges))
	for _, e := range edges {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{
		"1,0 -> 0,0",
		"1,0 -> 1,1",
		"10,0 -> 9,0",
		"2,0 -> 1,0",
	}, got)
}

func TestEdgeDirectionality(t *testing.T) {
	a, b := NewNode(0, 0), NewNode(1, 0)
	loads := EdgeLoads{}
	loads.Add(NewEdge(a, b), 2)
	loads.Add(NewEdge(a, b), 3)

	assert.Equal(t, 5.0, loads.Get(NewEdge(a, b)))
	assert.Equal(t, 0.0, loads.Get(NewEdge(b, a)))
	_, stored := loads[NewEdge(b, a)]
	assert.False(t, stored)
}

func TestFlowEdges(t *testing.T) {
	testCases := []struct {
		name  string
		nodes []Node
		want  []Edge
	}{
		{name: "empty path", nodes: nil, want: nil},
		{name: "single node", nodes: []Node{NewNode(0, 0)}, want: nil},
		{
			name:  "three nodes",
			nodes: []Node{NewNode(0, 0), NewNode(1, 0), NewNode(1, 1)},
			want: []Edge{
				NewEdge(NewNode(0, 0), NewNode(1, 0)),
				NewEdge(NewNode(1, 0), NewNode(1, 1)),
			},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewFlow(1, tt.nodes).Edges())
		})
	}
}
